package chat

import (
	"log"
	"net/http"
	"time"

	"fitcoach/internal/models"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second

	maxMessageSize = 4096
	sendBuffer     = 16
)

const MsgTypeMessage = "message"

// Envelope is the websocket wire format in both directions. Inbound frames
// only need recipient_id and content.
type Envelope struct {
	Type        string    `json:"type"`
	ID          uint      `json:"id,omitempty"`
	SenderID    uint      `json:"sender_id,omitempty"`
	RecipientID uint      `json:"recipient_id"`
	Content     string    `json:"content"`
	SentAt      time.Time `json:"sent_at,omitempty"`
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Origin is enforced upstream by the auth middleware on the upgrade route.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type Client struct {
	id     string
	userID uint
	hub    *Hub
	conn   *websocket.Conn
	send   chan Envelope
}

// Serve upgrades the request and runs the read/write pumps until the
// connection closes.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request, userID uint) error {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	client := &Client{
		id:     uuid.New().String(),
		userID: userID,
		hub:    h,
		conn:   conn,
		send:   make(chan Envelope, sendBuffer),
	}
	h.register(client)

	go client.writePump()
	client.readPump()
	return nil
}

func (c *Client) enqueue(envelope Envelope) {
	select {
	case c.send <- envelope:
	default:
		log.Printf("Chat: dropping message for slow connection %s", c.id)
	}
}

func (c *Client) readPump() {
	defer func() {
		c.hub.unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		var inbound Envelope
		if err := c.conn.ReadJSON(&inbound); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("Chat: read error for user %d: %v", c.userID, err)
			}
			return
		}
		if inbound.RecipientID == 0 || inbound.Content == "" {
			continue
		}

		message := &models.ChatMessage{
			SenderID:    c.userID,
			RecipientID: inbound.RecipientID,
			Content:     inbound.Content,
		}
		if err := c.hub.Deliver(message); err != nil {
			log.Printf("Chat: failed to deliver message from user %d: %v", c.userID, err)
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case envelope, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(envelope); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
