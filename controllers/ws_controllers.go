package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/goodzap/backoffice/hub"
	"github.com/goodzap/backoffice/middlewares"
	"github.com/goodzap/backoffice/utils"
	"github.com/gorilla/websocket"
)

// WebSocketHandler -> keeps an admin panel subscribed to invalidation events.
// Browsers skip CORS on upgrades, so the Origin header is checked against the
// same list. Requests without Origin come from non-browser clients.
func WebSocketHandler(h *hub.Hub, origins middlewares.OriginList) gin.HandlerFunc {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			return origin == "" || origins.Allows(origin)
		},
	}

	return func(c *gin.Context) {
		ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			utils.ErrorLogger.Printf("WebSocket upgrade failed: %v", err)
			return
		}

		// greet before registering, the hub owns all writes afterwards
		if err := ws.WriteJSON(hub.Message{Event: hub.EventHello, Data: gin.H{"clients": h.Count() + 1}}); err != nil {
			ws.Close()
			return
		}

		addr := c.ClientIP()
		h.Register(ws, addr)
		utils.InfoLogger.Printf("Panel connected from %s (%d open)", addr, h.Count())

		// panels never send anything meaningful, reading only detects disconnects
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				break
			}
		}

		h.Unregister(ws)
		utils.InfoLogger.Printf("Panel disconnected from %s", addr)
	}
}
