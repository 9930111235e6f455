package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/helpkhazaana-eng/production-app/hub"
	"github.com/helpkhazaana-eng/production-app/utils"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Origin is enforced by the CORS middleware in front of the router.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type StreamController struct{}

func NewStreamController() *StreamController {
	return &StreamController{}
}

// Stream upgrades to a websocket and registers the surface with the hub. The
// client receives its own cart updates plus storefront-wide events until the
// connection drops; inbound frames are read only to detect the close.
func (sc *StreamController) Stream(c *gin.Context) {
	id := clientID(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.ErrorLogger.Printf("stream: upgrade for %s: %v", id, err)
		return
	}

	hub.RegisterClient(conn, id)

	go func() {
		defer hub.UnregisterClient(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
