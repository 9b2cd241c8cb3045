package ws

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFeedServer(t *testing.T, hub *Hub) *httptest.Server {
	t.Helper()
	up := websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := up.Upgrade(w, r, nil)
		require.NoError(t, err)
		Serve(hub, conn)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func dialFeed(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestHubPublish(t *testing.T) {
	hub := NewHub()
	srv := newFeedServer(t, hub)
	conn := dialFeed(t, srv)

	require.Eventually(t, func() bool { return hub.ClientCount() == 1 },
		time.Second, 10*time.Millisecond)

	hub.Publish("task.created", map[string]string{"id": "abc"})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
	_, frame, err := conn.ReadMessage()
	require.NoError(t, err)

	var ev Event
	require.NoError(t, json.Unmarshal(frame, &ev))
	assert.Equal(t, "task.created", ev.Event)
	assert.False(t, ev.At.IsZero())

	data, ok := ev.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "abc", data["id"])
}

func TestHubBroadcastsToAllClients(t *testing.T) {
	hub := NewHub()
	srv := newFeedServer(t, hub)
	a := dialFeed(t, srv)
	b := dialFeed(t, srv)

	require.Eventually(t, func() bool { return hub.ClientCount() == 2 },
		time.Second, 10*time.Millisecond)

	hub.Publish("task.deleted", map[string]string{"id": "xyz"})

	for _, conn := range []*websocket.Conn{a, b} {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
		_, frame, err := conn.ReadMessage()
		require.NoError(t, err)
		assert.Contains(t, string(frame), "task.deleted")
	}
}

func TestHubRemovesClosedClients(t *testing.T) {
	hub := NewHub()
	srv := newFeedServer(t, hub)
	conn := dialFeed(t, srv)

	require.Eventually(t, func() bool { return hub.ClientCount() == 1 },
		time.Second, 10*time.Millisecond)

	conn.Close()
	require.Eventually(t, func() bool { return hub.ClientCount() == 0 },
		time.Second, 10*time.Millisecond)
}

func TestHubPublishNoClients(t *testing.T) {
	hub := NewHub()
	// must not block or panic with nobody connected
	hub.Publish("task.updated", map[string]string{"id": "1"})
	assert.Zero(t, hub.ClientCount())
}
