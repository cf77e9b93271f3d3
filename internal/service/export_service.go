// FILE: internal/service/export_service.go
// Machine-readable exports: llms.txt, llms-full.txt, sitemap and robots
package service

import (
	"context"
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"compare-audius-be/internal/config"
	"compare-audius-be/internal/entity"
	"compare-audius-be/internal/pkg/logger"

	"github.com/patrickmn/go-cache"
)

const (
	exportLlms     = "llms.txt"
	exportLlmsFull = "llms-full.txt"
	exportSitemap  = "sitemap.xml"
)

type IExportService interface {
	LlmsTxt(ctx context.Context) (string, error)
	LlmsFullTxt(ctx context.Context) (string, error)
	Sitemap(ctx context.Context) ([]byte, error)
	Robots() string
	ComparisonWorkbook(ctx context.Context) ([]byte, error)
}

// exportService caches generated documents on a timer only. Catalog
// mutations do not purge them.
type exportService struct {
	catalog ICatalogService
	site    config.SiteConfig
	cache   *cache.Cache
	now     func() time.Time
	logger  logger.ILogger
}

func NewExportService(catalog ICatalogService, site config.SiteConfig, ttl time.Duration, logger logger.ILogger) IExportService {
	return &exportService{
		catalog: catalog,
		site:    site,
		cache:   cache.New(ttl, 2*ttl),
		now:     time.Now,
		logger:  logger,
	}
}

func (s *exportService) cached(key string, build func() (string, error)) (string, error) {
	if x, ok := s.cache.Get(key); ok {
		return x.(string), nil
	}
	out, err := build()
	if err != nil {
		return "", err
	}
	s.cache.SetDefault(key, out)
	s.logger.Debug("EXPORT", "Export regenerated", map[string]interface{}{"export": key, "bytes": len(out)})
	return out, nil
}

func (s *exportService) LlmsTxt(ctx context.Context) (string, error) {
	return s.cached(exportLlms, func() (string, error) { return s.buildLlms(ctx) })
}

func (s *exportService) LlmsFullTxt(ctx context.Context) (string, error) {
	return s.cached(exportLlmsFull, func() (string, error) { return s.buildLlmsFull(ctx) })
}

func (s *exportService) Sitemap(ctx context.Context) ([]byte, error) {
	out, err := s.cached(exportSitemap, func() (string, error) { return s.buildSitemap(ctx) })
	return []byte(out), err
}

func (s *exportService) Robots() string {
	var b strings.Builder
	b.WriteString("User-Agent: *\n")
	b.WriteString("Allow: /\n")
	for _, path := range []string{"/admin", "/admin/", "/api/", "/login"} {
		b.WriteString("Disallow: " + path + "\n")
	}
	b.WriteString("\nSitemap: " + s.site.URL + "/sitemap.xml\n")
	return b.String()
}

func (s *exportService) buildLlms(ctx context.Context) (string, error) {
	competitors, err := s.catalog.GetCompetitors(ctx)
	if err != nil {
		return "", err
	}

	names := make([]string, 0, len(competitors))
	for _, c := range competitors {
		names = append(names, c.Name)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s - LLM Context\n\n", s.site.Name)
	b.WriteString("> This file helps AI assistants and LLMs understand the content and purpose of this website.\n\n")
	b.WriteString("## Site Information\n\n")
	fmt.Fprintf(&b, "- **Name**: %s\n", s.site.Name)
	fmt.Fprintf(&b, "- **URL**: %s\n", s.site.URL)
	b.WriteString("- **Purpose**: Feature comparison site showing how Audius music streaming platform compares to competitors\n")
	b.WriteString("- **Owner**: Audius (https://audius.co)\n\n")
	b.WriteString("## What This Site Does\n\n")
	fmt.Fprintf(&b, "%s presents side-by-side feature comparisons between Audius and other music streaming platforms like %s.\n\n",
		s.site.Name, strings.Join(names, ", "))
	b.WriteString("## Available Pages\n\n")
	fmt.Fprintf(&b, "- `/` - Default comparison (Audius vs %s)\n", s.defaultName(competitors))
	for _, c := range competitors {
		fmt.Fprintf(&b, "- `/%s` - Audius vs %s comparison\n", c.Slug, c.Name)
	}
	b.WriteString("\n## Data Format\n\n")
	b.WriteString("- **Platforms**: Music streaming services being compared\n")
	b.WriteString("- **Features**: Specific capabilities being evaluated\n")
	b.WriteString("- **Comparisons**: Status of each feature per platform (yes/no/partial/custom value)\n\n")
	b.WriteString("## For More Details\n\n")
	b.WriteString("See `/llms-full.txt` for complete comparison data in plain text format.\n")
	return b.String(), nil
}

func (s *exportService) defaultName(competitors []*entity.Platform) string {
	for _, c := range competitors {
		if c.Slug == s.site.DefaultCompetitor {
			return c.Name
		}
	}
	if len(competitors) > 0 {
		return competitors[0].Name
	}
	return "-"
}

func (s *exportService) buildLlmsFull(ctx context.Context) (string, error) {
	platforms, err := s.catalog.GetPlatforms(ctx)
	if err != nil {
		return "", err
	}
	features, err := s.catalog.GetFeatures(ctx)
	if err != nil {
		return "", err
	}
	competitors, err := s.catalog.GetCompetitors(ctx)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s - Complete Feature Comparison Data\n\n", s.site.Name)
	b.WriteString("> This file contains the complete comparison data for AI assistants and LLMs.\n")
	b.WriteString("> This data is generated from the database and reflects the current state.\n\n")
	b.WriteString("## Site Information\n\n")
	fmt.Fprintf(&b, "- **Name**: %s\n", s.site.Name)
	fmt.Fprintf(&b, "- **URL**: %s\n", s.site.URL)
	fmt.Fprintf(&b, "- **Generated**: %s\n\n---\n\n", s.now().UTC().Format(time.RFC3339))

	b.WriteString("## Platforms Compared\n\n")
	for i, p := range platforms {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "### %s\n", p.Name)
		if p.IsAudius {
			b.WriteString("- **Type**: Decentralized music streaming platform\n- **Website**: https://audius.co\n")
		} else {
			fmt.Fprintf(&b, "- **Type**: Music streaming service\n- **Slug**: %s\n", p.Slug)
		}
	}

	b.WriteString("\n---\n\n## Feature Definitions\n\n")
	for i, f := range features {
		fmt.Fprintf(&b, "### %d. %s\n%s\n\n", i+1, f.Name, f.Description)
	}

	b.WriteString("---\n\n## Complete Feature Comparison Matrix\n\n")
	b.WriteString("### Legend\n- YES = Fully supported\n- NO = Not available\n")
	b.WriteString("- PARTIAL = Available with limitations (see notes in parentheses)\n")
	b.WriteString("- [Value] = Custom value (e.g., streaming bitrate)\n")

	for _, c := range competitors {
		rows, err := s.catalog.GetComparisonData(ctx, c.Slug)
		if err != nil {
			return "", err
		}
		b.WriteString("\n---\n\n")
		writeComparisonTable(&b, c, rows)
	}

	return b.String(), nil
}

func writeComparisonTable(b *strings.Builder, competitor *entity.Platform, rows []*entity.FeatureComparison) {
	fmt.Fprintf(b, "### Audius vs %s\n\n", competitor.Name)
	fmt.Fprintf(b, "| Feature | Audius | %s |\n", competitor.Name)
	fmt.Fprintf(b, "|---------|--------|%s|\n", strings.Repeat("-", len(competitor.Name)))

	leads := 0
	for _, row := range rows {
		fmt.Fprintf(b, "| %s | %s | %s |\n", row.Feature.Name, row.Audius.PlainText(), row.Competitor.PlainText())
		if row.AudiusLeads() {
			leads++
		}
	}
	fmt.Fprintf(b, "\n**Summary**: Audius leads on %d/%d features in this comparison.\n", leads, len(rows))
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

func (s *exportService) buildSitemap(ctx context.Context) (string, error) {
	slugs, err := s.catalog.GetCompetitorSlugs(ctx)
	if err != nil {
		return "", err
	}

	lastMod := s.now().UTC().Format("2006-01-02")
	set := sitemapURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  []sitemapURL{{Loc: s.site.URL, LastMod: lastMod, ChangeFreq: "weekly", Priority: "1.0"}},
	}
	for _, slug := range slugs {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        s.site.URL + "/" + slug,
			LastMod:    lastMod,
			ChangeFreq: "weekly",
			Priority:   "0.9",
		})
	}

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return "", err
	}
	return xml.Header + string(out) + "\n", nil
}
