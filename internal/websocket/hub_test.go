package websocket

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"compare-audius-be/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startHub(t *testing.T) *Hub {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	hub := NewHub(logger.NewNopLogger())
	go func() { _ = hub.Run(ctx) }()
	return hub
}

func TestHub_NotifyReachesClients(t *testing.T) {
	hub := startHub(t)
	a := &Client{hub: hub, Email: "a@audius.co", Send: make(chan []byte, 1)}
	b := &Client{hub: hub, Email: "b@audius.co", Send: make(chan []byte, 1)}
	hub.register <- a
	hub.register <- b
	require.Eventually(t, func() bool { return hub.Count() == 2 }, time.Second, 5*time.Millisecond)

	hub.Notify(Notice{Type: NoticePagesRevalidated, Paths: []string{"/", "/spotify"}})

	for _, c := range []*Client{a, b} {
		var n Notice
		require.NoError(t, json.Unmarshal(<-c.Send, &n))
		assert.Equal(t, NoticePagesRevalidated, n.Type)
		assert.Equal(t, []string{"/", "/spotify"}, n.Paths)
		assert.False(t, n.At.IsZero())
	}
}

func TestHub_DropsSlowClients(t *testing.T) {
	hub := startHub(t)
	slow := &Client{hub: hub, Email: "slow@audius.co", Send: make(chan []byte, 1)}
	hub.register <- slow
	require.Eventually(t, func() bool { return hub.Count() == 1 }, time.Second, 5*time.Millisecond)

	hub.Notify(Notice{Type: NoticePagesRevalidated})
	hub.Notify(Notice{Type: NoticePagesRevalidated})

	assert.Equal(t, 0, hub.Count())
	<-slow.Send
	_, open := <-slow.Send
	assert.False(t, open, "send channel closed on drop")
}

func TestHub_UnregisterIsIdempotent(t *testing.T) {
	hub := startHub(t)
	c := &Client{hub: hub, Email: "x@audius.co", Send: make(chan []byte, 1)}
	hub.register <- c
	require.Eventually(t, func() bool { return hub.Count() == 1 }, time.Second, 5*time.Millisecond)

	hub.remove(c)
	hub.unregister <- c
	require.Eventually(t, func() bool { return len(hub.unregister) == 0 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, 0, hub.Count())
}
