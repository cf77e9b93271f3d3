package dto

type DashboardStatsResponse struct {
	TotalPlatforms     int64 `json:"totalPlatforms"`
	PublishedPlatforms int64 `json:"publishedPlatforms"`
	DraftPlatforms     int64 `json:"draftPlatforms"`
	TotalFeatures      int64 `json:"totalFeatures"`
	PublishedFeatures  int64 `json:"publishedFeatures"`
	DraftFeatures      int64 `json:"draftFeatures"`
	TotalComparisons   int64 `json:"totalComparisons"`
}
