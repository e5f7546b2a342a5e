package controllers

import (
	"net/http"

	"github.com/amandier/restaurant-backend/live"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// LiveHandler upgrades an authenticated admin connection to a websocket
// that receives record-change events from the hub.
func LiveHandler(c *gin.Context) {
	if _, exists := c.Get("user_id"); !exists {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	live.RegisterClient(ws)

	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			break
		}
	}

	live.UnregisterClient(ws)
}
