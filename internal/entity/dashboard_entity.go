package entity

type DashboardStats struct {
	TotalPlatforms     int64
	PublishedPlatforms int64
	DraftPlatforms     int64
	TotalFeatures      int64
	PublishedFeatures  int64
	DraftFeatures      int64
	TotalComparisons   int64
}
