package websocket

import (
	"log"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
)

type Client struct {
	UserID  uuid.UUID
	IsAdmin bool
	Conn    *websocket.Conn
}

// BookingEvent is pushed whenever a booking or one of its payments changes
// status, so open dashboards can refresh without polling.
type BookingEvent struct {
	BookingID   uuid.UUID `json:"booking_id"`
	BookingCode string    `json:"booking_code"`
	OwnerID     uuid.UUID `json:"-"`
	Status      string    `json:"status"`
	Event       string    `json:"event"`
}

var clients = make(map[uuid.UUID]*Client)
var clientsMu sync.RWMutex
var Register = make(chan *Client)
var Unregister = make(chan *Client)
var Broadcast = make(chan BookingEvent)

func RunHub() {
	for {
		select {
		case client := <-Register:
			log.Printf("Client registered: %s", client.UserID)
			clientsMu.Lock()
			clients[client.UserID] = client
			clientsMu.Unlock()
		case client := <-Unregister:
			log.Printf("Client unregistered: %s", client.UserID)
			clientsMu.Lock()
			if existing, ok := clients[client.UserID]; ok && existing.Conn == client.Conn {
				delete(clients, client.UserID)
			}
			clientsMu.Unlock()
		case event := <-Broadcast:
			deliverEvent(event)
		}
	}
}

// deliverEvent pushes to the booking owner and every connected admin.
func deliverEvent(event BookingEvent) {
	var stale []uuid.UUID

	clientsMu.RLock()
	for userID, client := range clients {
		if userID != event.OwnerID && !client.IsAdmin {
			continue
		}
		if err := client.Conn.WriteJSON(event); err != nil {
			log.Printf("Error sending event to client %s: %v", userID, err)
			client.Conn.Close()
			stale = append(stale, userID)
		}
	}
	clientsMu.RUnlock()

	if len(stale) > 0 {
		clientsMu.Lock()
		for _, userID := range stale {
			delete(clients, userID)
		}
		clientsMu.Unlock()
	}
}

// NotifyBookingEvent is safe to call from request handlers; it never blocks
// the caller on a slow hub.
func NotifyBookingEvent(event BookingEvent) {
	select {
	case Broadcast <- event:
	default:
		log.Printf("Dropping booking event for %s: hub busy", event.BookingCode)
	}
}
