// FILE: internal/service/page_service.go
// Renders and caches the public comparison pages
package service

import (
	"context"
	"strings"
	"time"

	"compare-audius-be/internal/config"
	"compare-audius-be/internal/pkg/apperror"
	"compare-audius-be/internal/pkg/logger"
	"compare-audius-be/internal/web"
	"compare-audius-be/pkg/pagecache"
)

const htmlContentType = "text/html; charset=utf-8"

type IPageService interface {
	// Page returns the cached page for path, rendering it on a miss
	Page(ctx context.Context, path string) (*pagecache.Entry, error)
	// Warm renders path and stores it regardless of what is cached
	Warm(ctx context.Context, path string) error
}

type pageService struct {
	catalog  ICatalogService
	pages    pagecache.Store
	renderer *web.Renderer
	site     config.SiteConfig
	ttl      time.Duration
	logger   logger.ILogger
}

func NewPageService(
	catalog ICatalogService,
	pages pagecache.Store,
	renderer *web.Renderer,
	site config.SiteConfig,
	ttl time.Duration,
	logger logger.ILogger,
) IPageService {
	return &pageService{
		catalog:  catalog,
		pages:    pages,
		renderer: renderer,
		site:     site,
		ttl:      ttl,
		logger:   logger,
	}
}

func (s *pageService) Page(ctx context.Context, path string) (*pagecache.Entry, error) {
	entry, ok, err := s.pages.Get(ctx, path)
	if err != nil {
		s.logger.Warn("CACHE", "Page cache read failed", map[string]interface{}{"path": path, "error": err.Error()})
	} else if ok {
		return entry, nil
	}

	entry, err = s.render(ctx, path)
	if err != nil {
		return nil, err
	}
	s.store(ctx, path, entry)
	return entry, nil
}

func (s *pageService) Warm(ctx context.Context, path string) error {
	entry, err := s.render(ctx, path)
	if err != nil {
		return err
	}
	s.store(ctx, path, entry)
	return nil
}

func (s *pageService) store(ctx context.Context, path string, entry *pagecache.Entry) {
	if err := s.pages.Set(ctx, path, entry, s.ttl); err != nil {
		s.logger.Warn("CACHE", "Page cache write failed", map[string]interface{}{"path": path, "error": err.Error()})
	}
}

func (s *pageService) render(ctx context.Context, path string) (*pagecache.Entry, error) {
	slug := strings.Trim(path, "/")
	if slug == "" {
		var err error
		if slug, err = s.defaultCompetitor(ctx); err != nil {
			return nil, err
		}
	}

	rows, err := s.catalog.GetComparisonData(ctx, slug)
	if err != nil {
		return nil, err
	}
	audius, err := s.catalog.GetAudius(ctx)
	if err != nil {
		return nil, err
	}
	competitor, err := s.catalog.GetPlatform(ctx, slug)
	if err != nil {
		return nil, err
	}
	competitors, err := s.catalog.GetCompetitors(ctx)
	if err != nil {
		return nil, err
	}

	leads := 0
	for _, row := range rows {
		if row.AudiusLeads() {
			leads++
		}
	}

	body, err := s.renderer.Render(web.PageComparison, web.ComparisonView{
		Site:        web.Site{Name: s.site.Name, URL: s.site.URL},
		Audius:      audius,
		Competitor:  competitor,
		Competitors: competitors,
		Rows:        rows,
		LeadCount:   leads,
	})
	if err != nil {
		return nil, apperror.Wrap(apperror.KindInternal, err, "Failed to render page")
	}

	return &pagecache.Entry{ContentType: htmlContentType, Body: body}, nil
}

// defaultCompetitor is DEFAULT_COMPETITOR while it is published, else the
// first published competitor
func (s *pageService) defaultCompetitor(ctx context.Context) (string, error) {
	if s.site.DefaultCompetitor != "" {
		ok, err := s.catalog.IsValidCompetitor(ctx, s.site.DefaultCompetitor)
		if err != nil {
			return "", err
		}
		if ok {
			return s.site.DefaultCompetitor, nil
		}
	}

	slugs, err := s.catalog.GetCompetitorSlugs(ctx)
	if err != nil {
		return "", err
	}
	if len(slugs) == 0 {
		return "", apperror.NotFound("No published competitors")
	}
	return slugs[0], nil
}
