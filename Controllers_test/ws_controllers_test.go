package Controllers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goodzap/backoffice/controllers"
	"github.com/goodzap/backoffice/hub"
	"github.com/goodzap/backoffice/middlewares"
	"github.com/goodzap/backoffice/utils"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialPanel(t *testing.T, allowed, origin string) (*websocket.Conn, *http.Response, error) {
	t.Helper()
	utils.InitLogger("text")
	router := newRouter()
	router.GET("/ws", controllers.WebSocketHandler(hub.New(), middlewares.ParseOrigins(allowed)))
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	header := http.Header{}
	if origin != "" {
		header.Set("Origin", origin)
	}
	return websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/ws", header)
}

func TestWebSocketAcceptsListedOrigin(t *testing.T) {
	ws, _, err := dialPanel(t, "http://panel.local", "http://panel.local")
	require.NoError(t, err)
	defer ws.Close()

	var hello hub.Message
	require.NoError(t, ws.ReadJSON(&hello))
	assert.Equal(t, hub.EventHello, hello.Event)
}

func TestWebSocketRejectsUnlistedOrigin(t *testing.T) {
	_, resp, err := dialPanel(t, "http://panel.local", "http://evil.local")
	require.ErrorIs(t, err, websocket.ErrBadHandshake)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestWebSocketWildcardAndNoOrigin(t *testing.T) {
	ws, _, err := dialPanel(t, "*", "http://anything.local")
	require.NoError(t, err)
	ws.Close()

	ws, _, err = dialPanel(t, "http://panel.local", "")
	require.NoError(t, err)
	ws.Close()
}
