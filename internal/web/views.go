package web

import (
	"compare-audius-be/internal/dto"
	"compare-audius-be/internal/entity"
)

type Site struct {
	Name string
	URL  string
}

type ComparisonView struct {
	Site        Site
	Audius      *entity.Platform
	Competitor  *entity.Platform
	Competitors []*entity.Platform
	Rows        []*entity.FeatureComparison
	LeadCount   int
}

type LoginView struct {
	Site  Site
	Error string
}

type ErrorView struct {
	Site    Site
	Status  int
	Message string
}

// AdminView is embedded by every admin page
type AdminView struct {
	Site   Site
	User   *dto.SessionUser
	Active string // nav section
}

type DashboardView struct {
	AdminView
	Stats       *entity.DashboardStats
	Competitors []*entity.Platform
}

type PlatformsView struct {
	AdminView
	Platforms []*entity.Platform
}

type PlatformFormView struct {
	AdminView
	Platform *entity.Platform // nil on the create form
}

type FeatureRow struct {
	Feature      *entity.Feature
	Completeness *entity.FeatureCompleteness
}

type FeaturesView struct {
	AdminView
	Rows []FeatureRow
}

type FeatureFormView struct {
	AdminView
	Feature      *entity.Feature // nil on the create form
	Completeness *entity.FeatureCompleteness
}

// ComparisonsView is the feature x platform editing grid
type ComparisonsView struct {
	AdminView
	Features  []*entity.Feature
	Platforms []*entity.Platform
	Matrix    map[string]map[string]*entity.Comparison // featureId -> platformId
}
