package analytics

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
)

const (
	EventSimulationCompleted = "simulation_completed"
	EventWatchFinished       = "watch_finished"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Analytics publishes JSON events to Kafka. A nil *Analytics is valid and
// drops every event, which is how the service runs without brokers.
type Analytics struct {
	writer  messageWriter
	timeout time.Duration
}

func NewAnalytics(brokers []string, topic string) *Analytics {
	if len(brokers) == 0 {
		log.Println("[KAFKA] No brokers configured, analytics disabled")
		return nil
	}
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
	log.Printf("[KAFKA] Publishing analytics to %s on %v", topic, brokers)
	return &Analytics{writer: w, timeout: 2 * time.Second}
}

// Emit tags payload with the event name and a timestamp and writes it.
// The key groups all events of one batch or game on a partition.
func (a *Analytics) Emit(ctx context.Context, event, key string, payload map[string]any) error {
	if a == nil || a.writer == nil {
		return nil
	}
	payload["event"] = event
	payload["ts"] = time.Now().UTC()
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()
	if err := a.writer.WriteMessages(ctx, kafka.Message{Key: []byte(key), Value: b}); err != nil {
		log.Printf("[KAFKA] Emit %s failed: %v", event, err)
		return err
	}
	return nil
}

func (a *Analytics) Close() error {
	if a == nil || a.writer == nil {
		return nil
	}
	return a.writer.Close()
}
