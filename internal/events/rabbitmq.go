package events

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/streadway/amqp"
)

// RabbitMQPublisher implements the Publisher interface using RabbitMQ.
type RabbitMQPublisher struct {
	conn      *amqp.Connection
	channel   *amqp.Channel
	queueName string
}

// RabbitMQPublisherConfig contains options for creating a new RabbitMQPublisher.
type RabbitMQPublisherConfig struct {
	URL       string
	QueueName string
}

// NewRabbitMQPublisher connects to RabbitMQ and declares the event queue.
func NewRabbitMQPublisher(cfg RabbitMQPublisherConfig) (Publisher, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		log.Printf("Failed to connect to RabbitMQ: %v", err)
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		log.Printf("Failed to open a channel: %v", err)
		conn.Close() // Close connection if channel opening fails
		return nil, err
	}

	if _, err := ch.QueueDeclare(
		cfg.QueueName, // name
		true,          // durable
		false,         // delete when unused
		false,         // exclusive
		false,         // no-wait
		nil,           // arguments
	); err != nil {
		log.Printf("Failed to declare queue %s: %v", cfg.QueueName, err)
		ch.Close()
		conn.Close()
		return nil, err
	}

	log.Println("Successfully connected to RabbitMQ and opened a channel")
	return &RabbitMQPublisher{conn: conn, channel: ch, queueName: cfg.QueueName}, nil
}

// PublishMessageEvent serializes the event as JSON and publishes it to the
// declared queue with persistent delivery.
func (p *RabbitMQPublisher) PublishMessageEvent(event MessageEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode message event: %w", err)
	}

	err = p.channel.Publish(
		"",          // exchange
		p.queueName, // routing key (queue name)
		false,       // mandatory
		false,       // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		})
	if err != nil {
		log.Printf("Failed to publish %s event to queue %s: %v", event.Type, p.queueName, err)
		return err
	}
	return nil
}

// Close closes the RabbitMQ channel and connection.
func (p *RabbitMQPublisher) Close() error {
	var lastErr error
	if p.channel != nil {
		if err := p.channel.Close(); err != nil {
			log.Printf("Error closing RabbitMQ channel: %v", err)
			lastErr = err
		}
	}
	if p.conn != nil {
		if err := p.conn.Close(); err != nil {
			log.Printf("Error closing RabbitMQ connection: %v", err)
			lastErr = err
		}
	}
	return lastErr
}
