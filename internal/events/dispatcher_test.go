package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryDispatcher(t *testing.T) {
	t.Run("delivers to subscribers of the type", func(t *testing.T) {
		d := NewInMemoryDispatcher()

		var created, changed int
		d.Subscribe(EventTicketCreated, func(context.Context, Event) error {
			created++
			return nil
		})
		d.Subscribe(EventTicketStatusChanged, func(context.Context, Event) error {
			changed++
			return nil
		})

		require.NoError(t, d.Publish(context.Background(), Event{Type: EventTicketCreated}))
		assert.Equal(t, 1, created)
		assert.Equal(t, 0, changed)
	})

	t.Run("handler error does not stop delivery", func(t *testing.T) {
		d := NewInMemoryDispatcher()

		var second bool
		d.Subscribe(EventTicketCreated, func(context.Context, Event) error {
			return errors.New("boom")
		})
		d.Subscribe(EventTicketCreated, func(context.Context, Event) error {
			second = true
			return nil
		})

		require.NoError(t, d.Publish(context.Background(), Event{Type: EventTicketCreated}))
		assert.True(t, second)
	})

	t.Run("publish without subscribers is a no-op", func(t *testing.T) {
		d := NewInMemoryDispatcher()
		assert.NoError(t, d.Publish(context.Background(), Event{Type: EventTicketStatusChanged}))
	})
}
