package mapper

import (
	"compare-audius-be/internal/dto"
	"compare-audius-be/internal/entity"
)

func PlatformToResponse(p *entity.Platform) *dto.PlatformResponse {
	if p == nil {
		return nil
	}
	return &dto.PlatformResponse{
		Id:        p.Id,
		Name:      p.Name,
		Slug:      p.Slug,
		Logo:      p.Logo,
		IsAudius:  p.IsAudius,
		IsDraft:   p.IsDraft,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func PlatformsToResponse(platforms []*entity.Platform) []*dto.PlatformResponse {
	res := make([]*dto.PlatformResponse, 0, len(platforms))
	for _, p := range platforms {
		res = append(res, PlatformToResponse(p))
	}
	return res
}

func FeatureToResponse(f *entity.Feature) *dto.FeatureResponse {
	if f == nil {
		return nil
	}
	return &dto.FeatureResponse{
		Id:          f.Id,
		Name:        f.Name,
		Slug:        f.Slug,
		Description: f.Description,
		SortOrder:   f.SortOrder,
		IsDraft:     f.IsDraft,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}

func FeaturesToResponse(features []*entity.Feature) []*dto.FeatureResponse {
	res := make([]*dto.FeatureResponse, 0, len(features))
	for _, f := range features {
		res = append(res, FeatureToResponse(f))
	}
	return res
}

func ComparisonToResponse(c *entity.Comparison) *dto.ComparisonResponse {
	if c == nil {
		return nil
	}
	return &dto.ComparisonResponse{
		Id:           c.Id,
		PlatformId:   c.PlatformId,
		FeatureId:    c.FeatureId,
		Status:       string(c.Status),
		DisplayValue: c.DisplayValue,
		Context:      c.Context,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func ComparisonsToResponse(comparisons []*entity.Comparison) []*dto.ComparisonResponse {
	res := make([]*dto.ComparisonResponse, 0, len(comparisons))
	for _, c := range comparisons {
		res = append(res, ComparisonToResponse(c))
	}
	return res
}

func CompletenessToResponse(items []*entity.FeatureCompleteness) []*dto.FeatureCompletenessResponse {
	res := make([]*dto.FeatureCompletenessResponse, 0, len(items))
	for _, c := range items {
		res = append(res, &dto.FeatureCompletenessResponse{
			FeatureId: c.FeatureId,
			Count:     c.Count,
			Total:     c.Total,
			Complete:  c.Complete,
		})
	}
	return res
}

func DashboardToResponse(s *entity.DashboardStats) *dto.DashboardStatsResponse {
	if s == nil {
		return nil
	}
	return &dto.DashboardStatsResponse{
		TotalPlatforms:     s.TotalPlatforms,
		PublishedPlatforms: s.PublishedPlatforms,
		DraftPlatforms:     s.DraftPlatforms,
		TotalFeatures:      s.TotalFeatures,
		PublishedFeatures:  s.PublishedFeatures,
		DraftFeatures:      s.DraftFeatures,
		TotalComparisons:   s.TotalComparisons,
	}
}
