package ws

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testUpgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// newConnPair dials a throwaway websocket server and returns both ends.
func newConnPair(t *testing.T) (serverConn, clientConn *websocket.Conn) {
	t.Helper()

	accepted := make(chan *websocket.Conn, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := testUpgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		accepted <- conn
	}))
	t.Cleanup(srv.Close)

	wsURL := strings.Replace(srv.URL, "http", "ws", 1)
	clientConn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = clientConn.Close() })

	return <-accepted, clientConn
}

func TestManager_RegisterAndSend(t *testing.T) {
	serverConn, clientConn := newConnPair(t)

	m := NewManager()
	m.Register("u1", serverConn)

	assert.True(t, m.IsConnected("u1"))
	assert.Equal(t, []string{"u1"}, m.List())

	require.NoError(t, m.Send("u1", []byte(`{"type":"qrcode.created"}`)))

	mt, payload, err := clientConn.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, websocket.TextMessage, mt)
	assert.JSONEq(t, `{"type":"qrcode.created"}`, string(payload))
}

func TestManager_SendNotConnected(t *testing.T) {
	m := NewManager()
	err := m.Send("nobody", []byte("x"))
	assert.EqualError(t, err, "account not connected")
}

func TestManager_Unregister(t *testing.T) {
	serverConn, _ := newConnPair(t)

	m := NewManager()
	m.Register("u1", serverConn)
	m.Unregister("u1", serverConn)

	assert.False(t, m.IsConnected("u1"))
	assert.Empty(t, m.List())
	assert.Error(t, m.Send("u1", []byte("x")))
}

func TestManager_RegisterReplacesOldSession(t *testing.T) {
	firstConn, _ := newConnPair(t)
	secondConn, secondClient := newConnPair(t)

	m := NewManager()
	m.Register("u1", firstConn)
	m.Register("u1", secondConn)

	assert.Equal(t, []string{"u1"}, m.List())

	// messages go to the new session
	require.NoError(t, m.Send("u1", []byte("hello")))
	_, payload, err := secondClient.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, "hello", string(payload))
}

func TestManager_UnregisterIgnoresReplacedConn(t *testing.T) {
	firstConn, _ := newConnPair(t)
	secondConn, secondClient := newConnPair(t)

	m := NewManager()
	m.Register("u1", firstConn)
	m.Register("u1", secondConn)

	// the superseded session unregisters on exit; the new session
	// must stay registered
	m.Unregister("u1", firstConn)

	assert.True(t, m.IsConnected("u1"))
	require.NoError(t, m.Send("u1", []byte("still here")))
	_, payload, err := secondClient.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, "still here", string(payload))

	m.Unregister("u1", secondConn)
	assert.False(t, m.IsConnected("u1"))
}
