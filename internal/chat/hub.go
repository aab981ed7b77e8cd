package chat

import (
	"log"
	"sync"

	"fitcoach/internal/models"
	"fitcoach/internal/repository"
)

// Hub relays chat messages between connected users and tracks who is online.
// Messages are always persisted; delivery happens only when the recipient has
// at least one open websocket connection.
type Hub struct {
	repo repository.ChatRepository

	mu      sync.RWMutex
	clients map[uint]map[string]*Client // userID -> connection id -> client
}

func NewHub(repo repository.ChatRepository) *Hub {
	return &Hub{
		repo:    repo,
		clients: make(map[uint]map[string]*Client),
	}
}

func (h *Hub) register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[c.userID] == nil {
		h.clients[c.userID] = make(map[string]*Client)
	}
	h.clients[c.userID][c.id] = c
	log.Printf("Chat: user %d connected (%s)", c.userID, c.id)
}

func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if conns, ok := h.clients[c.userID]; ok {
		if _, ok := conns[c.id]; ok {
			delete(conns, c.id)
			close(c.send)
			if len(conns) == 0 {
				delete(h.clients, c.userID)
			}
			log.Printf("Chat: user %d disconnected (%s)", c.userID, c.id)
		}
	}
}

// IsOnline reports whether the user has any open connection.
func (h *Hub) IsOnline(userID uint) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID]) > 0
}

// OnlineUsers returns the ids of all currently connected users.
func (h *Hub) OnlineUsers() []uint {
	h.mu.RLock()
	defer h.mu.RUnlock()
	users := make([]uint, 0, len(h.clients))
	for id := range h.clients {
		users = append(users, id)
	}
	return users
}

// Deliver persists the message and relays it to every connection of the
// recipient plus the sender's other connections.
func (h *Hub) Deliver(message *models.ChatMessage) error {
	if err := h.repo.Save(message); err != nil {
		return err
	}

	envelope := Envelope{
		Type:        MsgTypeMessage,
		ID:          message.ID,
		SenderID:    message.SenderID,
		RecipientID: message.RecipientID,
		Content:     message.Content,
		SentAt:      message.CreatedAt,
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, c := range h.clients[message.RecipientID] {
		c.enqueue(envelope)
	}
	for _, c := range h.clients[message.SenderID] {
		c.enqueue(envelope)
	}
	return nil
}
