package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubmissionContextUserID(t *testing.T) {
	tests := []struct {
		name string
		ctx  *SubmissionContext
		want string
	}{
		{"nil context", nil, UnknownUserID},
		{"no user", &SubmissionContext{InitData: "query_id=abc"}, UnknownUserID},
		{"zero id", &SubmissionContext{User: &User{FirstName: "Budi"}}, UnknownUserID},
		{"numeric id stringified", &SubmissionContext{User: &User{ID: 123456789, FirstName: "Budi"}}, "123456789"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.ctx.UserID())
		})
	}
}
