package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPriceIDR(t *testing.T) {
	tests := []struct {
		name string
		in   int64
		want string
	}{
		{"zero", 0, "Rp 0"},
		{"below one rupiah truncates", 99, "Rp 0"},
		{"five thousand", 500000, "Rp 5.000"},
		{"one hundred fifty thousand", 15000000, "Rp 150.000"},
		{"half a million", 50000000, "Rp 500.000"},
		{"millions group twice", 250000000, "Rp 2.500.000"},
		{"negative", -500000, "-Rp 5.000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PriceIDR(tt.in))
		})
	}
}

func TestDate(t *testing.T) {
	d := time.Date(2025, time.August, 9, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "9 Agustus 2025", Date(d))

	d = time.Date(2026, time.January, 31, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "31 Januari 2026", Date(d))
}
