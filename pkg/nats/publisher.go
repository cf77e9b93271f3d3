package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"compare-audius-be/pkg/events"

	"github.com/nats-io/nats.go"
)

// SubjectFor maps an event type to its subject: CATALOG_REVALIDATE -> events.catalog.revalidate
func SubjectFor(eventType string) string {
	return "events." + strings.ReplaceAll(strings.ToLower(eventType), "_", ".")
}

func connect(url, name string) (*nats.Conn, error) {
	nc, err := nats.Connect(url,
		nats.Name(name),
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(5),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	return nc, nil
}

// Publisher sends events on core NATS subjects. Every subscribed instance
// receives every message; nothing is persisted.
type Publisher struct {
	nc *nats.Conn
}

func NewPublisher(url string) (*Publisher, error) {
	nc, err := connect(url, "compare-audius-publisher")
	if err != nil {
		return nil, err
	}
	return &Publisher{nc: nc}, nil
}

// Publish sends an event to NATS.
func (p *Publisher) Publish(ctx context.Context, event events.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(events.ToEnvelope(event))
	if err != nil {
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}

	subject := SubjectFor(event.EventType())
	if err := p.nc.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish event to subject %s: %w", subject, err)
	}

	return nil
}

func (p *Publisher) Close() {
	if p.nc != nil {
		_ = p.nc.Drain()
	}
}
