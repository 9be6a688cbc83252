package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/streadway/amqp"
)

// Routing keys on the topic exchange. Downstream consumers bind
// patterns like "revision.note.*".
const (
	routingKeyNote       = "revision.note.requested"
	routingKeyCompletion = "revision.session.completed"
)

// AMQPNotifier publishes session facts to a topic exchange on a
// RabbitMQ broker.
type AMQPNotifier struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
}

// NewAMQPNotifier connects to the broker at url and declares a durable
// topic exchange.
func NewAMQPNotifier(url, exchange string) (*AMQPNotifier, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial broker: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		exchange,
		"topic",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange %q: %w", exchange, err)
	}

	return &AMQPNotifier{conn: conn, channel: ch, exchange: exchange}, nil
}

func (n *AMQPNotifier) NoteLostMarks(_ context.Context, req NoteRequest) error {
	return n.publish(routingKeyNote, req)
}

func (n *AMQPNotifier) ReportCompletion(_ context.Context, report CompletionReport) error {
	return n.publish(routingKeyCompletion, report)
}

func (n *AMQPNotifier) publish(routingKey string, payload any) error {
	body, err := json.Marshal(map[string]any{
		"type":    routingKey,
		"payload": payload,
	})
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", routingKey, err)
	}

	err = n.channel.Publish(
		n.exchange,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish %s: %w", routingKey, err)
	}
	return nil
}

// Close releases the channel and connection.
func (n *AMQPNotifier) Close() {
	if n.channel != nil {
		_ = n.channel.Close()
	}
	if n.conn != nil {
		_ = n.conn.Close()
	}
}
