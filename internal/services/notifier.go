package services

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/streadway/amqp"
)

const notificationExchange = "fitcoach.events"

// Notifier publishes application events (connection requests, plan
// assignments, bulk updates) to a RabbitMQ topic exchange. Publishing is
// best-effort: a failed publish is logged, never surfaced to the request.
type Notifier struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	mu      sync.Mutex
}

func NewNotifier(amqpURL string) (*Notifier, error) {
	conn, err := amqp.Dial(amqpURL)
	if err != nil {
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	err = channel.ExchangeDeclare(
		notificationExchange,
		"topic",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	return &Notifier{conn: conn, channel: channel}, nil
}

func (n *Notifier) Publish(routingKey string, payload interface{}) {
	if n == nil {
		return
	}

	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal event %s: %v", routingKey, err)
		return
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	err = n.channel.Publish(
		notificationExchange,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:   "application/json",
			CorrelationId: uuid.New().String(),
			Timestamp:     time.Now(),
			Body:          body,
		},
	)
	if err != nil {
		log.Printf("Failed to publish event %s: %v", routingKey, err)
	}
}

func (n *Notifier) Close() {
	if n == nil {
		return
	}
	if n.channel != nil {
		n.channel.Close()
	}
	if n.conn != nil {
		n.conn.Close()
	}
}
