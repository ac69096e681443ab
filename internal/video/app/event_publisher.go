package app

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"video_sharing_service/internal/video/domain"
	"video_sharing_service/pkg/database"

	"github.com/streadway/amqp"
)

// RabbitEventPublisher publish VideoEvent as JSON to a durable queue on the default exchange
type RabbitEventPublisher struct {
	rabbit database.RabbitRepo
	queue  string
}

// NewRabbitEventPublisher declare queue and create the publisher
func NewRabbitEventPublisher(rabbit database.RabbitRepo, queue string) (*RabbitEventPublisher, error) {
	if queue == "" {
		queue = domain.QueueName
	}
	if err := rabbit.DeclareQueue(queue); err != nil {
		return nil, fmt.Errorf("queue[%s] declare failed: %w", queue, err)
	}
	return &RabbitEventPublisher{rabbit: rabbit, queue: queue}, nil
}

// Publish send event, ctx is unused by the amqp client
func (p *RabbitEventPublisher) Publish(_ context.Context, event domain.VideoEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("event[%s] JSON 序列化失敗: %w", event.Type, err)
	}
	return p.rabbit.Publish(
		"",      // 預設 exchange
		p.queue, // queue 名稱
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Type:         string(event.Type),
			Timestamp:    time.Unix(event.OccurredAt, 0),
			Body:         data,
		},
	)
}
