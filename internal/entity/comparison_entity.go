// FILE: internal/entity/comparison_entity.go
// Domain entity for platform x feature comparison values
package entity

import (
	"strings"
	"time"
)

type ComparisonStatus string

const (
	ComparisonStatusYes     ComparisonStatus = "yes"
	ComparisonStatusNo      ComparisonStatus = "no"
	ComparisonStatusPartial ComparisonStatus = "partial"
	ComparisonStatusCustom  ComparisonStatus = "custom"
)

func (s ComparisonStatus) IsValid() bool {
	switch s {
	case ComparisonStatusYes, ComparisonStatusNo, ComparisonStatusPartial, ComparisonStatusCustom:
		return true
	}
	return false
}

// Comparison is the value of one Feature for one Platform.
// (PlatformId, FeatureId) is unique.
type Comparison struct {
	Id           string
	PlatformId   string
	FeatureId    string
	Status       ComparisonStatus
	DisplayValue *string // only when Status == custom
	Context      *string // only when Status == partial
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Normalize enforces the storage contract: DisplayValue survives only for
// custom, Context only for partial, and blank strings are stored as null.
func (c *Comparison) Normalize() {
	c.DisplayValue = blankToNil(c.DisplayValue)
	c.Context = blankToNil(c.Context)
	if c.Status != ComparisonStatusCustom {
		c.DisplayValue = nil
	}
	if c.Status != ComparisonStatusPartial {
		c.Context = nil
	}
}

func blankToNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}

// FeatureComparison pairs a published feature with the Audius comparison
// and one competitor's comparison. It is never persisted.
type FeatureComparison struct {
	Feature    *Feature
	Audius     *Comparison
	Competitor *Comparison
}

// PlainText renders the value for text exports: YES, NO, PARTIAL (context),
// or the custom display value.
func (c *Comparison) PlainText() string {
	switch c.Status {
	case ComparisonStatusYes:
		return "YES"
	case ComparisonStatusNo:
		return "NO"
	case ComparisonStatusPartial:
		if c.Context != nil && *c.Context != "" {
			return "PARTIAL (" + *c.Context + ")"
		}
		return "PARTIAL"
	case ComparisonStatusCustom:
		if c.DisplayValue != nil && *c.DisplayValue != "" {
			return *c.DisplayValue
		}
		return "Available"
	}
	return "Unknown"
}

// AudiusLeads reports whether Audius beats the competitor on this feature:
// yes beats anything but yes, partial beats no. Custom values never lead.
func (fc *FeatureComparison) AudiusLeads() bool {
	a, c := fc.Audius.Status, fc.Competitor.Status
	switch {
	case a == ComparisonStatusYes:
		return c != ComparisonStatusYes
	case a == ComparisonStatusPartial:
		return c == ComparisonStatusNo
	}
	return false
}
