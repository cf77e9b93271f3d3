// FILE: internal/service/revalidation_service.go
// Purges cached public pages after catalog mutations
package service

import (
	"context"
	"encoding/json"

	"compare-audius-be/internal/pkg/logger"
	adminEvents "compare-audius-be/pkg/admin/events"
	"compare-audius-be/pkg/events"
	"compare-audius-be/pkg/pagecache"
	pktNats "compare-audius-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

const WarmPagesTopic = "pages.warm"

// PageWarmer re-renders one public page into the cache
type PageWarmer interface {
	Warm(ctx context.Context, path string) error
}

// PurgeNotifier hears about every purge, local or remote
type PurgeNotifier interface {
	PagesPurged(paths []string)
}

type IRevalidationService interface {
	// RevalidatePublicPages purges the home page, every published
	// competitor page and the pages of touchedSlugs.
	RevalidatePublicPages(ctx context.Context, touchedSlugs ...string)
	// Start runs the cache warmer and, when NATS is configured, the
	// cross-instance purge listener.
	Start(ctx context.Context) error
}

type warmPagesMessage struct {
	Paths []string `json:"paths"`
}

type revalidationService struct {
	instanceId string
	catalog    ICatalogService
	pages      pagecache.Store
	pubSub     *gochannel.GoChannel
	warmer     PageWarmer
	publisher  adminEvents.Publisher
	subscriber *pktNats.Subscriber
	notifier   PurgeNotifier
	logger     logger.ILogger
}

// NewRevalidationService wires the purge pipeline. pubSub, warmer,
// subscriber and notifier may be nil.
func NewRevalidationService(
	catalog ICatalogService,
	pages pagecache.Store,
	pubSub *gochannel.GoChannel,
	warmer PageWarmer,
	publisher adminEvents.Publisher,
	subscriber *pktNats.Subscriber,
	notifier PurgeNotifier,
	logger logger.ILogger,
) IRevalidationService {
	return &revalidationService{
		instanceId: uuid.NewString(),
		catalog:    catalog,
		pages:      pages,
		pubSub:     pubSub,
		warmer:     warmer,
		publisher:  publisher,
		subscriber: subscriber,
		notifier:   notifier,
		logger:     logger,
	}
}

func (s *revalidationService) RevalidatePublicPages(ctx context.Context, touchedSlugs ...string) {
	paths := []string{"/"}
	seen := map[string]bool{"/": true}
	add := func(slug string) {
		if slug == "" {
			return
		}
		p := "/" + slug
		if !seen[p] {
			seen[p] = true
			paths = append(paths, p)
		}
	}

	slugs, err := s.catalog.GetCompetitorSlugs(ctx)
	if err != nil {
		s.logger.Error("CACHE", "Failed to list competitors for revalidation", map[string]interface{}{"error": err.Error()})
	}
	for _, slug := range slugs {
		add(slug)
	}
	for _, slug := range touchedSlugs {
		add(slug)
	}

	s.purge(ctx, paths)
	s.publisher.PublishRevalidate(ctx, s.instanceId, paths)
}

func (s *revalidationService) purge(ctx context.Context, paths []string) {
	if err := s.pages.Delete(ctx, paths...); err != nil {
		s.logger.Error("CACHE", "Failed to purge pages", map[string]interface{}{"error": err.Error(), "paths": paths})
		return
	}
	s.logger.Info("CACHE", "Pages purged", map[string]interface{}{"paths": paths})
	if s.notifier != nil {
		s.notifier.PagesPurged(paths)
	}

	if s.pubSub == nil || s.warmer == nil {
		return
	}
	payload, err := json.Marshal(warmPagesMessage{Paths: paths})
	if err != nil {
		return
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := s.pubSub.Publish(WarmPagesTopic, msg); err != nil {
		s.logger.Warn("CACHE", "Failed to enqueue page warm-up", map[string]interface{}{"error": err.Error()})
	}
}

func (s *revalidationService) Start(ctx context.Context) error {
	if s.pubSub != nil && s.warmer != nil {
		messages, err := s.pubSub.Subscribe(ctx, WarmPagesTopic)
		if err != nil {
			return err
		}
		go func() {
			for msg := range messages {
				s.warm(ctx, msg)
			}
		}()
	}

	if s.subscriber != nil {
		subject := pktNats.SubjectFor(events.TypeCatalogRevalidate)
		if err := s.subscriber.Subscribe(ctx, subject, s.handleRemote); err != nil {
			return err
		}
	}

	return nil
}

func (s *revalidationService) warm(ctx context.Context, msg *message.Message) {
	defer msg.Ack()

	var payload warmPagesMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		s.logger.Warn("CACHE", "Dropping malformed warm-up message", map[string]interface{}{"error": err.Error()})
		return
	}

	for _, path := range payload.Paths {
		if err := s.warmer.Warm(ctx, path); err != nil {
			// drafts and broken pages stay uncached and fail on request
			s.logger.Warn("CACHE", "Page warm-up failed", map[string]interface{}{"path": path, "error": err.Error()})
		}
	}
}

// handleRemote purges pages another instance reported stale
func (s *revalidationService) handleRemote(ctx context.Context, event events.Event) error {
	data := event.Payload()
	if origin, _ := data["origin"].(string); origin == s.instanceId {
		return nil
	}
	paths := events.StringSlice(data, "paths")
	if len(paths) == 0 {
		return nil
	}
	s.purge(ctx, paths)
	return nil
}
