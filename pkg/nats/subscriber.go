package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"compare-audius-be/pkg/events"

	"github.com/nats-io/nats.go"
)

// EventHandler is a function that processes an event.
type EventHandler func(ctx context.Context, event events.Event) error

// Subscriber listens for events on core NATS subjects.
type Subscriber struct {
	nc   *nats.Conn
	subs []*nats.Subscription
}

func NewSubscriber(url string) (*Subscriber, error) {
	nc, err := connect(url, "compare-audius-subscriber")
	if err != nil {
		return nil, err
	}
	return &Subscriber{nc: nc}, nil
}

// Subscribe registers a handler for a subject. Handler failures are logged;
// core NATS has no redelivery.
func (s *Subscriber) Subscribe(ctx context.Context, subject string, handler EventHandler) error {
	sub, err := s.nc.Subscribe(subject, func(msg *nats.Msg) {
		var env events.Envelope
		if err := json.Unmarshal(msg.Data, &env); err != nil {
			log.Printf("Error unmarshalling event data on %s: %v", msg.Subject, err)
			return
		}
		if err := handler(ctx, env.Event()); err != nil {
			log.Printf("Handler failed for event %s: %v", msg.Subject, err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", subject, err)
	}
	s.subs = append(s.subs, sub)
	return nil
}

func (s *Subscriber) Close() {
	for _, sub := range s.subs {
		_ = sub.Unsubscribe()
	}
	if s.nc != nil {
		s.nc.Close()
	}
}
