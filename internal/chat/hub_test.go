package chat

import (
	"bytes"
	"errors"
	"log"
	"os"
	"testing"

	"fitcoach/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChatRepo struct {
	saved   []*models.ChatMessage
	saveErr error
}

func (s *stubChatRepo) Save(message *models.ChatMessage) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	message.ID = uint(len(s.saved) + 1)
	s.saved = append(s.saved, message)
	return nil
}

func (s *stubChatRepo) Conversation(userA, userB uint, limit int) ([]models.ChatMessage, error) {
	return nil, nil
}

func (s *stubChatRepo) MarkConversationRead(recipientID, senderID uint) error { return nil }

func (s *stubChatRepo) UnreadCount(recipientID uint) (int64, error) { return 0, nil }

func testClient(userID uint, id string) *Client {
	return &Client{
		id:     id,
		userID: userID,
		send:   make(chan Envelope, sendBuffer),
	}
}

func TestHubPresence(t *testing.T) {
	hub := NewHub(&stubChatRepo{})

	assert.False(t, hub.IsOnline(1))

	first := testClient(1, "conn-a")
	second := testClient(1, "conn-b")
	hub.register(first)
	hub.register(second)

	assert.True(t, hub.IsOnline(1))
	assert.Equal(t, []uint{1}, hub.OnlineUsers())

	hub.unregister(first)
	assert.True(t, hub.IsOnline(1), "still online via the second connection")

	hub.unregister(second)
	assert.False(t, hub.IsOnline(1))
	assert.Empty(t, hub.OnlineUsers())
}

func TestHubUnregisterUnknownClient(t *testing.T) {
	hub := NewHub(&stubChatRepo{})

	known := testClient(1, "conn-a")
	hub.register(known)

	// A client that never registered, and a repeat of an already removed one.
	// Neither may disturb presence state or log a phantom disconnect.
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	hub.unregister(testClient(2, "ghost-conn"))
	assert.True(t, hub.IsOnline(1))
	assert.NotContains(t, buf.String(), "disconnected")

	hub.unregister(known)
	assert.Contains(t, buf.String(), "disconnected")

	buf.Reset()
	hub.unregister(known)
	assert.NotContains(t, buf.String(), "disconnected")
}

func TestHubDeliver(t *testing.T) {
	repo := &stubChatRepo{}
	hub := NewHub(repo)

	sender := testClient(1, "sender-conn")
	recipient := testClient(2, "recipient-conn")
	hub.register(sender)
	hub.register(recipient)

	message := &models.ChatMessage{SenderID: 1, RecipientID: 2, Content: "hello"}
	require.NoError(t, hub.Deliver(message))

	// Persisted first, then fanned out to both parties.
	require.Len(t, repo.saved, 1)

	got := <-recipient.send
	assert.Equal(t, MsgTypeMessage, got.Type)
	assert.Equal(t, "hello", got.Content)
	assert.Equal(t, uint(1), got.SenderID)

	echo := <-sender.send
	assert.Equal(t, got.ID, echo.ID)
}

func TestHubDeliverOfflineRecipient(t *testing.T) {
	repo := &stubChatRepo{}
	hub := NewHub(repo)

	// Nobody connected: the message is still persisted.
	require.NoError(t, hub.Deliver(&models.ChatMessage{SenderID: 1, RecipientID: 2, Content: "hi"}))
	assert.Len(t, repo.saved, 1)
}

func TestHubDeliverSaveError(t *testing.T) {
	hub := NewHub(&stubChatRepo{saveErr: errors.New("db down")})

	err := hub.Deliver(&models.ChatMessage{SenderID: 1, RecipientID: 2, Content: "hi"})
	assert.Error(t, err)
}

func TestClientEnqueueDropsWhenFull(t *testing.T) {
	client := testClient(1, "slow-conn")

	for i := 0; i < sendBuffer; i++ {
		client.enqueue(Envelope{Type: MsgTypeMessage, Content: "fill"})
	}
	// Buffer is full: this must not block.
	client.enqueue(Envelope{Type: MsgTypeMessage, Content: "dropped"})

	assert.Len(t, client.send, sendBuffer)
}
