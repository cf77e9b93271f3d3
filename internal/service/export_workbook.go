package service

import (
	"bytes"
	"context"
	"fmt"

	"compare-audius-be/internal/entity"

	"github.com/xuri/excelize/v2"
)

const matrixSheet = "Comparisons"

// ComparisonWorkbook lays out every feature (rows) against every platform
// (columns), drafts included and marked, for offline review
func (s *exportService) ComparisonWorkbook(ctx context.Context) ([]byte, error) {
	platforms, err := s.catalog.GetAllPlatforms(ctx)
	if err != nil {
		return nil, err
	}
	features, err := s.catalog.GetAllFeatures(ctx)
	if err != nil {
		return nil, err
	}
	comparisons, err := s.catalog.GetAllComparisons(ctx, "")
	if err != nil {
		return nil, err
	}

	matrix := make(map[string]map[string]*entity.Comparison, len(features))
	for _, c := range comparisons {
		if matrix[c.FeatureId] == nil {
			matrix[c.FeatureId] = make(map[string]*entity.Comparison)
		}
		matrix[c.FeatureId][c.PlatformId] = c
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(matrixSheet)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	_ = f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	headers := []interface{}{"Feature", "Slug", "Status"}
	for _, p := range platforms {
		name := p.Name
		if p.IsDraft {
			name += " (draft)"
		}
		headers = append(headers, name)
	}
	if err := f.SetSheetRow(matrixSheet, "A1", &headers); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	lastCol, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(matrixSheet, "A1", lastCol+"1", headerStyle); err != nil {
		return nil, fmt.Errorf("style header: %w", err)
	}

	for i, feature := range features {
		status := "Published"
		if feature.IsDraft {
			status = "Draft"
		}
		row := []interface{}{feature.Name, feature.Slug, status}
		for _, p := range platforms {
			value := ""
			if c := matrix[feature.Id][p.Id]; c != nil {
				value = c.PlainText()
			}
			row = append(row, value)
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(matrixSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := f.SetColWidth(matrixSheet, "A", "A", 28); err != nil {
		return nil, err
	}
	if err := f.SetPanes(matrixSheet, &excelize.Panes{
		Freeze:      true,
		XSplit:      1,
		YSplit:      1,
		TopLeftCell: "B2",
		ActivePane:  "bottomRight",
	}); err != nil {
		return nil, fmt.Errorf("freeze panes: %w", err)
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
