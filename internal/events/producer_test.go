package events

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProducer_RequiresBrokers(t *testing.T) {
	t.Parallel()

	p, err := NewProducer(nil)
	require.Error(t, err)
	assert.Nil(t, p)
}

func TestPublishEvent_RejectsUnencodableEvent(t *testing.T) {
	t.Parallel()

	p, err := NewProducer([]string{"127.0.0.1:1"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Close() })

	err = p.PublishEvent(context.Background(), "order_events", "1", map[string]any{"bad": make(chan int)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "json.Marshal")
}
