package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"blog-api/domain/ports"
	"blog-api/pkg/logger"
)

// Publisher publishes blog events to JetStream
type Publisher struct {
	client *Client
}

// NewPublisher สร้าง Publisher ใหม่
func NewPublisher(client *Client) ports.EventPublisherPort {
	return &Publisher{
		client: client,
	}
}

// Publish ส่ง event ไปยัง JetStream
// การ publish ล้มเหลวไม่ควรทำให้ request หลักล้ม - caller เป็นคนตัดสินใจ
func (p *Publisher) Publish(ctx context.Context, event *ports.BlogEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	ack, err := p.client.js.Publish(ctx, EventSubject(event.Kind), data)
	if err != nil {
		logger.Error("Failed to publish blog event",
			"kind", event.Kind,
			"recipient_id", event.RecipientID,
			"error", err,
		)
		return fmt.Errorf("failed to publish event: %w", err)
	}

	logger.Debug("Blog event published to JetStream",
		"kind", event.Kind,
		"stream", ack.Stream,
		"sequence", ack.Sequence,
	)

	return nil
}
