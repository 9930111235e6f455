package hub

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/helpkhazaana-eng/production-app/utils"
)

// Event types pushed to storefront surfaces.
const (
	EventCartUpdate   = "cart_update"
	EventOrderPlaced  = "order_placed"
	EventSheetsStatus = "sheets_status"
)

type Message struct {
	Event    string      `json:"event"`
	ClientID string      `json:"client_id,omitempty"`
	Data     interface{} `json:"data"`
}

// Listener receives every broadcast message in-process. Listeners must not
// block; the hub calls them on the broadcasting goroutine.
type Listener func(Message)

// storefrontHub fans events out to websocket clients (other open surfaces of
// the same storefront) and to in-process listeners. It replaces the browser's
// cartUpdated window event.
type storefrontHub struct {
	clients   map[*websocket.Conn]string // conn -> client id
	listeners []Listener
	mutex     sync.Mutex
}

var h = storefrontHub{
	clients: make(map[*websocket.Conn]string),
}

// RegisterClient adds a websocket connection scoped to a client id.
func RegisterClient(conn *websocket.Conn, clientID string) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.clients[conn] = clientID
}

// UnregisterClient drops and closes a connection.
func UnregisterClient(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	delete(h.clients, conn)
	conn.Close()
}

// Subscribe registers an in-process listener.
func Subscribe(l Listener) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.listeners = append(h.listeners, l)
}

// BroadcastCartUpdate notifies surfaces of the given client that its cart
// changed.
func BroadcastCartUpdate(clientID string, cart interface{}) {
	broadcast(Message{Event: EventCartUpdate, ClientID: clientID, Data: cart})
}

// BroadcastOrderPlaced announces a submitted order.
func BroadcastOrderPlaced(clientID string, order interface{}) {
	broadcast(Message{Event: EventOrderPlaced, ClientID: clientID, Data: order})
}

// BroadcastSheetsStatus announces a sink health transition.
func BroadcastSheetsStatus(status interface{}) {
	broadcast(Message{Event: EventSheetsStatus, Data: status})
}

func broadcast(msg Message) {
	h.mutex.Lock()
	listeners := make([]Listener, len(h.listeners))
	copy(listeners, h.listeners)

	data, err := json.Marshal(msg)
	if err != nil {
		h.mutex.Unlock()
		if utils.ErrorLogger != nil {
			utils.ErrorLogger.Printf("hub: marshal message: %v", err)
		}
		return
	}

	for conn, clientID := range h.clients {
		// Cart updates are private to their client; everything else goes to
		// every surface.
		if msg.ClientID != "" && clientID != msg.ClientID {
			continue
		}
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			if utils.ErrorLogger != nil {
				utils.ErrorLogger.Printf("hub: write to client: %v", err)
			}
		}
	}
	h.mutex.Unlock()

	for _, l := range listeners {
		l(msg)
	}
}
