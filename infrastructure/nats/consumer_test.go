package nats

import (
	"sync"
	"testing"
)

func TestNotificationConsumerStopLifecycle(t *testing.T) {
	consumer := NewNotificationConsumer(nil, nil)

	if consumer.IsRunning() {
		t.Error("new consumer should not be running")
	}

	// Stop ก่อน Start และ Stop ซ้ำต้องปลอดภัย
	consumer.Stop()
	consumer.Stop()

	if consumer.IsRunning() {
		t.Error("consumer should stay stopped")
	}
}

func TestNotificationConsumerConcurrentStop(t *testing.T) {
	consumer := NewNotificationConsumer(nil, nil)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			consumer.Stop()
			consumer.IsRunning()
		}()
	}
	wg.Wait()

	if consumer.IsRunning() {
		t.Error("consumer should not be running after concurrent stops")
	}
}
