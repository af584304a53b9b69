package nats

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/nats-io/nats.go/jetstream"

	"blog-api/domain/ports"
	"blog-api/domain/services"
	"blog-api/pkg/logger"
)

// NotificationConsumer อ่าน blog events จาก JetStream แล้วเขียนเป็น notification rows
type NotificationConsumer struct {
	client     *Client
	service    services.NotificationService
	consumer   jetstream.Consumer
	cancelFunc context.CancelFunc
	mu         sync.Mutex
	running    bool
}

// NewNotificationConsumer สร้าง consumer ใหม่
func NewNotificationConsumer(client *Client, service services.NotificationService) *NotificationConsumer {
	return &NotificationConsumer{
		client:  client,
		service: service,
	}
}

// Start สร้าง durable consumer และเริ่มรับ messages ใน background
func (c *NotificationConsumer) Start(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.running {
		return nil
	}

	consumer, err := c.client.js.CreateOrUpdateConsumer(ctx, StreamName, jetstream.ConsumerConfig{
		Durable:       ConsumerName,
		AckPolicy:     jetstream.AckExplicitPolicy,
		DeliverPolicy: jetstream.DeliverAllPolicy,
		AckWait:       30 * time.Second,
		MaxDeliver:    3,
	})
	if err != nil {
		logger.Error("Failed to create notification consumer", "error", err)
		return err
	}
	c.consumer = consumer

	subCtx, cancel := context.WithCancel(ctx)
	c.cancelFunc = cancel
	c.running = true

	go c.consume(subCtx)

	logger.Info("Notification consumer started", "consumer", ConsumerName)
	return nil
}

// consume รับ messages ทีละชุดจนกว่า context จะถูก cancel
func (c *NotificationConsumer) consume(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			logger.Info("Notification consumer stopping...")
			return
		default:
			msgs, err := c.consumer.Fetch(10, jetstream.FetchMaxWait(5*time.Second))
			if err != nil {
				// timeout ระหว่างรอ message ไม่ใช่ error
				continue
			}

			for msg := range msgs.Messages() {
				c.handleMessage(ctx, msg)
			}
		}
	}
}

// handleMessage แปลง event เป็น notification row
func (c *NotificationConsumer) handleMessage(ctx context.Context, msg jetstream.Msg) {
	var event ports.BlogEvent
	if err := json.Unmarshal(msg.Data(), &event); err != nil {
		logger.Error("Failed to unmarshal blog event", "error", err)
		msg.Ack() // Ack anyway to prevent redelivery
		return
	}

	if err := c.service.Record(ctx, &event); err != nil {
		logger.Warn("Failed to record notification",
			"kind", event.Kind,
			"recipient_id", event.RecipientID,
			"error", err,
		)
		msg.Nak()
		return
	}

	msg.Ack()
}

// Stop หยุด consumer เรียกซ้ำได้
func (c *NotificationConsumer) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.running {
		return
	}
	c.running = false
	if c.cancelFunc != nil {
		c.cancelFunc()
	}
	logger.Info("Notification consumer stopped")
}

// IsRunning สถานะปัจจุบันของ consumer
func (c *NotificationConsumer) IsRunning() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}
