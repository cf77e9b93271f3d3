package web

import (
	"html/template"
	"strings"

	"compare-audius-be/internal/entity"
)

func funcMap() template.FuncMap {
	return template.FuncMap{
		"statusLabel": StatusLabel,
		"statusClass": statusClass,
		"deref":       deref,
		"cell":        cell,
		"lower":       strings.ToLower,
	}
}

// StatusLabel is the short text shown in a comparison cell
func StatusLabel(c *entity.Comparison) string {
	if c == nil {
		return ""
	}
	switch c.Status {
	case entity.ComparisonStatusYes:
		return "Yes"
	case entity.ComparisonStatusNo:
		return "No"
	case entity.ComparisonStatusPartial:
		return "Partial"
	case entity.ComparisonStatusCustom:
		if c.DisplayValue != nil && *c.DisplayValue != "" {
			return *c.DisplayValue
		}
		return "Available"
	}
	return ""
}

func statusClass(c *entity.Comparison) string {
	if c == nil {
		return "status-missing"
	}
	return "status-" + string(c.Status)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func cell(matrix map[string]map[string]*entity.Comparison, featureId, platformId string) *entity.Comparison {
	if row, ok := matrix[featureId]; ok {
		return row[platformId]
	}
	return nil
}
