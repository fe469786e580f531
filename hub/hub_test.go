package hub

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goodzap/backoffice/utils"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct{ got []Message }

func (r *recorder) Publish(msg Message) { r.got = append(r.got, msg) }

func TestInvalidateMessage(t *testing.T) {
	msg := Invalidate("menu")
	assert.Equal(t, EventInvalidate, msg.Event)
	assert.Equal(t, map[string]string{"resource": "menu"}, msg.Data)
}

func TestFanoutSkipsNil(t *testing.T) {
	a, b := &recorder{}, &recorder{}
	Fanout{a, nil, b, Discard}.Publish(Invalidate("orders"))
	assert.Len(t, a.got, 1)
	assert.Len(t, b.got, 1)
}

func TestHubBroadcastsToClients(t *testing.T) {
	utils.InitLogger("text")
	h := New()
	upgrader := websocket.Upgrader{}
	registered := make(chan struct{})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		h.Register(conn, r.RemoteAddr)
		close(registered)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.Unregister(conn)
				return
			}
		}
	}))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer client.Close()

	select {
	case <-registered:
	case <-time.After(2 * time.Second):
		t.Fatal("client was not registered")
	}
	assert.Equal(t, 1, h.Count())

	h.Publish(Invalidate("company"))

	client.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := client.ReadMessage()
	require.NoError(t, err)

	var msg struct {
		Event string            `json:"event"`
		Data  map[string]string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(data, &msg))
	assert.Equal(t, "invalidate", msg.Event)
	assert.Equal(t, "company", msg.Data["resource"])
}
