package seed

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"compare-audius-be/internal/entity"

	"gopkg.in/yaml.v3"
)

// File names of the legacy CMS export
const (
	PlatformsCSV   = "Compare _ Audius vs. Others - Platforms.csv"
	FeaturesCSV    = "Compare _ Audius vs. Others - Features.csv"
	ComparisonsCSV = "Compare _ Audius vs. Others - Comparisons.csv"
)

const unsortedFeature = 999

var (
	platformSlugAliases = map[string]string{"audiusmusic": "audius"}
	nonSlugChars        = regexp.MustCompile(`[^a-z0-9]+`)
)

type CSVSources struct {
	Platforms   io.Reader
	Features    io.Reader
	Comparisons io.Reader
}

// Slugify lowercases text and joins its alphanumeric runs with hyphens
func Slugify(text string) string {
	return strings.Trim(nonSlugChars.ReplaceAllString(strings.ToLower(text), "-"), "-")
}

func platformSlug(raw string) string {
	raw = strings.TrimSpace(raw)
	if alias, ok := platformSlugAliases[raw]; ok {
		return alias
	}
	return raw
}

// FromCSVDir reads the three export files from dir
func FromCSVDir(dir string) (*Fixture, error) {
	var files []*os.File
	defer func() {
		for _, f := range files {
			f.Close()
		}
	}()
	open := func(name string) (io.Reader, error) {
		f, err := os.Open(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		files = append(files, f)
		return f, nil
	}

	var src CSVSources
	var err error
	if src.Platforms, err = open(PlatformsCSV); err != nil {
		return nil, err
	}
	if src.Features, err = open(FeaturesCSV); err != nil {
		return nil, err
	}
	if src.Comparisons, err = open(ComparisonsCSV); err != nil {
		return nil, err
	}
	return FromCSV(src)
}

// FromCSV converts the legacy export into a fixture. Features are keyed by
// the slug of their name; the export's "Slug" column holds record ids that
// comparisons link to. A comparison with an unrecognised status becomes a
// custom value taken from its Context column.
func FromCSV(src CSVSources) (*Fixture, error) {
	platforms, err := readRecords(src.Platforms, "platforms", "Name", "Slug", "Logo")
	if err != nil {
		return nil, err
	}
	features, err := readRecords(src.Features, "features", "Feature", "Slug", "Description", "Sort (String)")
	if err != nil {
		return nil, err
	}
	comparisons, err := readRecords(src.Comparisons, "comparisons", "Linked Platform", "Linked Feature", "Status", "Context")
	if err != nil {
		return nil, err
	}

	f := &Fixture{}
	for _, row := range platforms {
		slug := platformSlug(row["Slug"])
		f.Platforms = append(f.Platforms, Platform{
			Id:       slug,
			Name:     row["Name"],
			Slug:     slug,
			Logo:     row["Logo"],
			IsAudius: slug == "audius",
		})
	}

	featureByRecord := make(map[string]string, len(features))
	for _, row := range features {
		slug := Slugify(row["Feature"])
		featureByRecord[row["Slug"]] = slug

		sortOrder, err := strconv.Atoi(row["Sort (String)"])
		if err != nil {
			sortOrder = unsortedFeature
		}
		f.Features = append(f.Features, Feature{
			Id:          slug,
			Name:        row["Feature"],
			Slug:        slug,
			Description: row["Description"],
			SortOrder:   sortOrder,
		})
	}
	sort.SliceStable(f.Features, func(i, j int) bool { return f.Features[i].SortOrder < f.Features[j].SortOrder })

	for _, row := range comparisons {
		feature, ok := featureByRecord[row["Linked Feature"]]
		if !ok {
			feature = Slugify(row["Linked Feature"])
		}
		f.Comparisons = append(f.Comparisons, comparisonFromCSV(platformSlug(row["Linked Platform"]), feature, row["Status"], row["Context"]))
	}

	return f, nil
}

func comparisonFromCSV(platform, feature, status, context string) Comparison {
	c := Comparison{Platform: platform, Feature: feature}
	var text *string
	if context != "" {
		text = &context
	}

	switch entity.ComparisonStatus(strings.ToLower(strings.TrimSpace(status))) {
	case entity.ComparisonStatusYes:
		c.Status = string(entity.ComparisonStatusYes)
	case entity.ComparisonStatusNo:
		c.Status = string(entity.ComparisonStatusNo)
	case entity.ComparisonStatusPartial:
		c.Status = string(entity.ComparisonStatusPartial)
		c.Context = text
	default:
		c.Status = string(entity.ComparisonStatusCustom)
		c.DisplayValue = text
	}
	return c
}

// readRecords maps every data row by header, requiring the named columns
func readRecords(r io.Reader, name string, required ...string) ([]map[string]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s csv: %w", name, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("read %s csv: missing header row", name)
	}

	header := make([]string, len(rows[0]))
	present := make(map[string]bool, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		present[header[i]] = true
	}
	for _, col := range required {
		if !present[col] {
			return nil, fmt.Errorf("read %s csv: missing column %q", name, col)
		}
	}

	records := make([]map[string]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		record := make(map[string]string, len(header))
		for i, h := range header {
			if i < len(row) {
				record[h] = strings.TrimSpace(row[i])
			}
		}
		records = append(records, record)
	}
	return records, nil
}

// Write encodes the fixture in the format Load reads
func (f *Fixture) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("encode fixture: %w", err)
	}
	return enc.Close()
}
