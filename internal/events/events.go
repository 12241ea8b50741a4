// Package events publishes fire-and-forget domain events (user.registered,
// post.created, follower.created) to Kafka for downstream consumers such as
// notification fan-out. A publish failure never fails the request.
package events

import (
	"context"
	"encoding/json"
	"log"
	"time"

	kgo "github.com/segmentio/kafka-go"
)

type Publisher interface {
	Publish(ctx context.Context, key string, v any)
	Close() error
}

type producer struct{ w *kgo.Writer }

func NewProducer(brokerURL, topic string) Publisher {
	w := &kgo.Writer{
		Addr:         kgo.TCP(brokerURL),
		Topic:        topic,
		Balancer:     &kgo.LeastBytes{},
		RequiredAcks: kgo.RequireOne,
		BatchTimeout: 50 * time.Millisecond,
		Async:        true,
	}
	return &producer{w: w}
}

func (p *producer) Publish(ctx context.Context, key string, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		log.Printf("events: marshal %s: %v", key, err)
		return
	}
	msg := kgo.Message{Key: []byte(key), Value: b, Time: time.Now()}
	if err := p.w.WriteMessages(ctx, msg); err != nil {
		log.Printf("events: publish %s: %v", key, err)
	}
}

func (p *producer) Close() error { return p.w.Close() }

// Noop is used when no broker is configured, and in tests.
type Noop struct{}

func (Noop) Publish(context.Context, string, any) {}
func (Noop) Close() error                         { return nil }
