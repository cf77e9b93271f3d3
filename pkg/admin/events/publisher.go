package events

import (
	"context"
	"time"

	"compare-audius-be/internal/pkg/logger"
	pkgEvents "compare-audius-be/pkg/events"
	pktNats "compare-audius-be/pkg/nats"
)

// Publisher tells other instances which public pages went stale
type Publisher interface {
	PublishRevalidate(ctx context.Context, origin string, paths []string)
}

// NatsPublisher implements Publisher using NATS. A nil inner publisher
// (NATS not configured) makes every call a no-op.
type NatsPublisher struct {
	publisher *pktNats.Publisher
	logger    logger.ILogger
}

func NewNatsPublisher(publisher *pktNats.Publisher, logger logger.ILogger) *NatsPublisher {
	return &NatsPublisher{
		publisher: publisher,
		logger:    logger,
	}
}

// PublishRevalidate emits CATALOG_REVALIDATE
func (p *NatsPublisher) PublishRevalidate(ctx context.Context, origin string, paths []string) {
	if p.publisher == nil {
		return
	}

	evt := pkgEvents.BaseEvent{
		Type: pkgEvents.TypeCatalogRevalidate,
		Data: map[string]interface{}{
			"origin": origin,
			"paths":  paths,
		},
		OccurredAt: time.Now(),
	}

	if err := p.publisher.Publish(ctx, evt); err != nil {
		p.logger.Error("CACHE", "Failed to publish CATALOG_REVALIDATE event", map[string]interface{}{"error": err.Error()})
	}
}
