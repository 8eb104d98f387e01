package ws

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startHub(t *testing.T) *Hub {
	t.Helper()
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)
	return hub
}

func receive(t *testing.T, c *Client) []byte {
	t.Helper()
	select {
	case payload := <-c.send:
		return payload
	case <-time.After(time.Second):
		t.Fatal("no message delivered")
		return nil
	}
}

func TestHub_BroadcastReachesOnlyBookingSubscribers(t *testing.T) {
	hub := startHub(t)
	subscriber := NewClient(nil, hub, 42, 1)
	other := NewClient(nil, hub, 7, 2)
	require.True(t, hub.Register(subscriber))
	require.True(t, hub.Register(other))

	require.NoError(t, hub.BroadcastToBooking(42, "chat_message", map[string]any{"message": "hi"}))

	var got struct {
		Type string         `json:"type"`
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(receive(t, subscriber), &got))
	assert.Equal(t, "chat_message", got.Type)
	assert.Equal(t, "hi", got.Data["message"])

	select {
	case <-other.send:
		t.Fatal("subscriber of another booking received message")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_UnregisterRemovesClient(t *testing.T) {
	hub := startHub(t)
	c := NewClient(nil, hub, 42, 0)
	require.True(t, hub.Register(c))
	require.Eventually(t, func() bool { return hub.ClientCount(42) == 1 }, time.Second, 10*time.Millisecond)

	c.Close()
	c.Close()

	require.Eventually(t, func() bool { return hub.ClientCount(42) == 0 }, time.Second, 10*time.Millisecond)
	_, open := <-c.send
	assert.False(t, open)
}

func TestHub_StoppedHubRejectsWork(t *testing.T) {
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(stopped)
	}()
	cancel()
	<-stopped

	assert.False(t, hub.Register(NewClient(nil, hub, 1, 0)))
	assert.Error(t, hub.BroadcastToBooking(1, "chat_message", nil))
}
