// cart_ws.go
package cartControllers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/AnkanRoychowdhury/EcomCartManagementSystem/models"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

var wsClients = make(map[*websocket.Conn]bool)

// CartEvent is pushed to connected dashboard clients on every cart mutation.
type CartEvent struct {
	Action string       `json:"action"`
	Cart   *models.Cart `json:"cart"`
}

// GET /admin/carts/live
func CartEventsHandler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()
	wsClients[conn] = true

	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			delete(wsClients, conn)
			break
		}
	}
}

func broadcastCartEvent(action string, cart *models.Cart) {
	data, err := json.Marshal(CartEvent{Action: action, Cart: cart})
	if err != nil {
		return
	}
	for client := range wsClients {
		client.WriteMessage(websocket.TextMessage, data)
	}
}
