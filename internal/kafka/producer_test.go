package kafka

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBrokers(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"single", "localhost:9092", []string{"localhost:9092"}},
		{"multiple with spaces", " a:9092, b:9092 ,", []string{"a:9092", "b:9092"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseBrokers(tt.in))
		})
	}
}

func TestProducerNoopWhenUnconfigured(t *testing.T) {
	p := NewProducer(nil, "")
	// Must not panic or block.
	p.ProduceOrderEvent(context.Background(), "order.created", map[string]interface{}{"order_id": "O1"})
	assert.NoError(t, p.Close())

	p = NewProducer([]string{"localhost:9092"}, "")
	p.ProduceOrderEvent(context.Background(), "order.created", nil)
	assert.NoError(t, p.Close())
}
