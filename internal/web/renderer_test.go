package web

import (
	"io/fs"
	"testing"

	"compare-audius-be/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestNewRenderer_ParsesEveryPage(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)
	for _, name := range append(append([]string{}, publicPages...), adminPages...) {
		assert.Contains(t, r.pages, name)
	}
}

func TestRender_ComparisonPage(t *testing.T) {
	r := MustNewRenderer()
	audius := &entity.Platform{Name: "Audius", Slug: "audius", Logo: "https://img.test/a.png", IsAudius: true}
	spotify := &entity.Platform{Name: "Spotify", Slug: "spotify", Logo: "https://img.test/s.png"}

	body, err := r.Render(PageComparison, ComparisonView{
		Site:        Site{Name: "Audius Compare", URL: "https://compare.test"},
		Audius:      audius,
		Competitor:  spotify,
		Competitors: []*entity.Platform{spotify},
		Rows: []*entity.FeatureComparison{{
			Feature:    &entity.Feature{Name: "Offline <Mode>", Description: "Downloads"},
			Audius:     &entity.Comparison{Status: entity.ComparisonStatusPartial, Context: strPtr("mobile only")},
			Competitor: &entity.Comparison{Status: entity.ComparisonStatusCustom, DisplayValue: strPtr("320kbps")},
		}},
		LeadCount: 0,
	})
	require.NoError(t, err)

	html := string(body)
	assert.Contains(t, html, "Offline &lt;Mode&gt;", "content is escaped")
	assert.Contains(t, html, `class="status-partial">Partial<small>mobile only</small>`)
	assert.Contains(t, html, `class="status-custom">320kbps`)
	assert.Contains(t, html, `href="/spotify" aria-current="page"`)
	assert.Contains(t, html, "Audius leads on 0/1 features.")
}

func TestRender_UnknownPage(t *testing.T) {
	_, err := MustNewRenderer().Render("nope", nil)
	assert.EqualError(t, err, "unknown page: nope")
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "Yes", StatusLabel(&entity.Comparison{Status: entity.ComparisonStatusYes}))
	assert.Equal(t, "Available", StatusLabel(&entity.Comparison{Status: entity.ComparisonStatusCustom}))
	assert.Equal(t, "", StatusLabel(nil))
}

func TestStaticFS(t *testing.T) {
	_, err := fs.Stat(StaticFS(), "admin.js")
	assert.NoError(t, err)
}
