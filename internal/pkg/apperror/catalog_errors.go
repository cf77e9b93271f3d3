package apperror

import "fmt"

type AudiusNotFoundError struct{}

func (e *AudiusNotFoundError) Error() string { return "Audius platform not found in data" }
func (e *AudiusNotFoundError) Kind() Kind    { return KindInvariant }

type UnknownCompetitorError struct {
	Slug string
}

func (e *UnknownCompetitorError) Error() string { return fmt.Sprintf("Unknown competitor: %s", e.Slug) }
func (e *UnknownCompetitorError) Kind() Kind    { return KindNotFound }

// DraftCompetitorError hides unpublished platforms from public callers
type DraftCompetitorError struct {
	Slug string
}

func (e *DraftCompetitorError) Error() string { return fmt.Sprintf("Competitor is not published: %s", e.Slug) }
func (e *DraftCompetitorError) Kind() Kind    { return KindNotFound }

type MissingComparisonError struct {
	Platform string
	Feature  string
}

func (e *MissingComparisonError) Error() string {
	return fmt.Sprintf("Missing %s comparison for feature: %s", e.Platform, e.Feature)
}
func (e *MissingComparisonError) Kind() Kind { return KindInvariant }

type DuplicateSlugError struct {
	Resource string // "platform" or "feature"
	Slug     string
}

func (e *DuplicateSlugError) Error() string {
	return fmt.Sprintf("A %s with this slug already exists", e.Resource)
}
func (e *DuplicateSlugError) Kind() Kind { return KindConflict }

type DuplicateComparisonError struct {
	PlatformId string
	FeatureId  string
}

func (e *DuplicateComparisonError) Error() string {
	return fmt.Sprintf("A comparison for platform %s and feature %s already exists", e.PlatformId, e.FeatureId)
}
func (e *DuplicateComparisonError) Kind() Kind { return KindConflict }

// ProtectedRecordError blocks deleting or unpublishing the Audius platform
type ProtectedRecordError struct {
	Resource string
	Id       string
	Action   string // "delete" when empty
}

func (e *ProtectedRecordError) Error() string {
	action := e.Action
	if action == "" {
		action = "delete"
	}
	return fmt.Sprintf("Cannot %s Audius %s", action, e.Resource)
}
func (e *ProtectedRecordError) Kind() Kind { return KindValidation }

// IncompleteComparisonsError rejects publishing a record whose comparisons
// do not yet cover every published counterpart.
type IncompleteComparisonsError struct {
	Resource string
	Id       string
	Count    int
	Total    int
}

func (e *IncompleteComparisonsError) Error() string {
	return fmt.Sprintf("Cannot publish %s: %d of %d comparisons complete", e.Resource, e.Count, e.Total)
}
func (e *IncompleteComparisonsError) Kind() Kind { return KindConflict }
