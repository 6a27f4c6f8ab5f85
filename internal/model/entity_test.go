package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServiceTypeDisplayName(t *testing.T) {
	tests := []struct {
		name string
		in   ServiceType
		want string
	}{
		{"graphic design", ServiceTypeGraphicDesign, "Desain Grafis"},
		{"article writing", ServiceTypeArticleWriting, "Penulisan Artikel"},
		{"translation", ServiceTypeTranslation, "Penerjemahan"},
		{"video editing", ServiceTypeVideoEditing, "Edit Video"},
		{"website development", ServiceTypeWebsiteDevelopment, "Pembuatan Website"},
		{"unknown code falls back to raw value", ServiceType("voice_over"), "voice_over"},
		{"empty code falls back to empty", ServiceType(""), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.DisplayName())
		})
	}
}

func TestServiceTypeKnown(t *testing.T) {
	assert.True(t, ServiceTypeTranslation.Known())
	assert.False(t, ServiceType("voice_over").Known())
}

func TestOrderStatusDisplayName(t *testing.T) {
	tests := []struct {
		name string
		in   OrderStatus
		want string
	}{
		{"new", OrderStatusNew, "Baru"},
		{"in progress", OrderStatusInProgress, "Diproses"},
		{"completed", OrderStatusCompleted, "Selesai"},
		{"cancelled", OrderStatusCancelled, "Dibatalkan"},
		{"unknown code falls back to raw value", OrderStatus("archived"), "archived"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.DisplayName())
		})
	}
}

func TestOrderStatuses(t *testing.T) {
	statuses := OrderStatuses()
	assert.Equal(t, []OrderStatus{OrderStatusNew, OrderStatusInProgress, OrderStatusCompleted, OrderStatusCancelled}, statuses)
	for _, st := range statuses {
		assert.True(t, st.Known(), "status %q", st)
	}
}
