package client

import (
	"context"
	"encoding/json"

	"github.com/KiltonAraujo/2025-3-atividades-02-api/internal/entity"
	amqp "github.com/rabbitmq/amqp091-go"
)

const taskEventsQueue = "task_events"

type RabbitMQClient struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   amqp.Queue
}

func NewRabbitMQClient(url string) (*RabbitMQClient, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	queue, err := channel.QueueDeclare(
		taskEventsQueue, // name
		true,            // durable
		false,           // delete when unused
		false,           // exclusive
		false,           // no-wait
		nil,             // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	return &RabbitMQClient{
		conn:    conn,
		channel: channel,
		queue:   queue,
	}, nil
}

// PublishTaskEvent sends a lifecycle event to the task_events queue.
// Messages are persisted so a restart of the broker does not lose them.
func (c *RabbitMQClient) PublishTaskEvent(ctx context.Context, event *entity.TaskEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return c.channel.PublishWithContext(
		ctx,
		"",           // exchange
		c.queue.Name, // routing key
		false,        // mandatory
		false,        // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
}

func (c *RabbitMQClient) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}
