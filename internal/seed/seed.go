// Package seed loads catalog fixtures into the database. Seeded records are
// published and replace whatever the catalog held before.
package seed

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"compare-audius-be/internal/entity"
	"compare-audius-be/internal/repository/unitofwork"

	"gopkg.in/yaml.v3"
)

type Fixture struct {
	Platforms   []Platform   `yaml:"platforms"`
	Features    []Feature    `yaml:"features"`
	Comparisons []Comparison `yaml:"comparisons"`
}

type Platform struct {
	Id       string `yaml:"id"`
	Name     string `yaml:"name"`
	Slug     string `yaml:"slug"`
	Logo     string `yaml:"logo"`
	IsAudius bool   `yaml:"isAudius"`
}

type Feature struct {
	Id          string `yaml:"id"`
	Name        string `yaml:"name"`
	Slug        string `yaml:"slug"`
	Description string `yaml:"description"`
	SortOrder   int    `yaml:"sortOrder"`
}

type Comparison struct {
	Platform     string  `yaml:"platform"`
	Feature      string  `yaml:"feature"`
	Status       string  `yaml:"status"`
	DisplayValue *string `yaml:"displayValue,omitempty"`
	Context      *string `yaml:"context,omitempty"`
}

type Summary struct {
	Platforms   int
	Features    int
	Comparisons int
}

func Load(r io.Reader) (*Fixture, error) {
	var f Fixture
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode fixture: %w", err)
	}
	return &f, nil
}

func LoadFile(path string) (*Fixture, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return Load(file)
}

// Validate checks the fixture before anything is written: one Audius
// platform, unique ids and slugs, known references and statuses, and a
// comparison for every platform x feature pair since everything is seeded
// as published.
func (f *Fixture) Validate() error {
	var problems []string
	addf := func(format string, args ...interface{}) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	platformIds := make(map[string]bool)
	platformSlugs := make(map[string]bool)
	audius := 0
	for _, p := range f.Platforms {
		if p.Id == "" || p.Name == "" || p.Slug == "" || p.Logo == "" {
			addf("platform %q: id, name, slug and logo are required", p.Id)
		}
		if platformIds[p.Id] {
			addf("platform %q: duplicate id", p.Id)
		}
		if platformSlugs[p.Slug] {
			addf("platform %q: duplicate slug %q", p.Id, p.Slug)
		}
		platformIds[p.Id], platformSlugs[p.Slug] = true, true
		if p.IsAudius {
			audius++
		}
	}
	if audius != 1 {
		addf("expected exactly one Audius platform, found %d", audius)
	}

	featureIds := make(map[string]bool)
	featureSlugs := make(map[string]bool)
	for _, ft := range f.Features {
		if ft.Id == "" || ft.Name == "" || ft.Slug == "" || ft.Description == "" {
			addf("feature %q: id, name, slug and description are required", ft.Id)
		}
		if featureIds[ft.Id] {
			addf("feature %q: duplicate id", ft.Id)
		}
		if featureSlugs[ft.Slug] {
			addf("feature %q: duplicate slug %q", ft.Id, ft.Slug)
		}
		featureIds[ft.Id], featureSlugs[ft.Slug] = true, true
	}

	covered := make(map[string]bool)
	for _, c := range f.Comparisons {
		key := c.Platform + "/" + c.Feature
		if !platformIds[c.Platform] {
			addf("comparison %s: invalid platform %q", key, c.Platform)
		}
		if !featureIds[c.Feature] {
			addf("comparison %s: invalid feature %q", key, c.Feature)
		}
		if !entity.ComparisonStatus(c.Status).IsValid() {
			addf("comparison %s: invalid status %q", key, c.Status)
		}
		if covered[key] {
			addf("comparison %s: duplicate", key)
		}
		covered[key] = true
	}

	for _, p := range f.Platforms {
		for _, ft := range f.Features {
			if !covered[p.Id+"/"+ft.Id] {
				addf("missing comparison for platform %q and feature %q", p.Id, ft.Id)
			}
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid fixture:\n  - %s", strings.Join(problems, "\n  - "))
	}
	return nil
}

// Apply validates the fixture and replaces the catalog with it in one
// transaction
func Apply(ctx context.Context, factory unitofwork.RepositoryFactory, f *Fixture) (*Summary, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	uow := factory.NewUnitOfWork(ctx)
	err := unitofwork.WithTransaction(ctx, uow, func(tx unitofwork.UnitOfWork) error {
		if err := clear(ctx, tx); err != nil {
			return err
		}

		for _, p := range f.Platforms {
			if err := tx.PlatformRepository().Create(ctx, &entity.Platform{
				Id:       p.Id,
				Name:     p.Name,
				Slug:     p.Slug,
				Logo:     p.Logo,
				IsAudius: p.IsAudius,
			}); err != nil {
				return fmt.Errorf("platform %s: %w", p.Id, err)
			}
		}

		for _, ft := range f.Features {
			if err := tx.FeatureRepository().Create(ctx, &entity.Feature{
				Id:          ft.Id,
				Name:        ft.Name,
				Slug:        ft.Slug,
				Description: ft.Description,
				SortOrder:   ft.SortOrder,
			}); err != nil {
				return fmt.Errorf("feature %s: %w", ft.Id, err)
			}
		}

		for _, c := range f.Comparisons {
			cmp := &entity.Comparison{
				Id:           c.Platform + "-" + c.Feature,
				PlatformId:   c.Platform,
				FeatureId:    c.Feature,
				Status:       entity.ComparisonStatus(c.Status),
				DisplayValue: c.DisplayValue,
				Context:      c.Context,
			}
			cmp.Normalize()
			if err := tx.ComparisonRepository().Create(ctx, cmp); err != nil {
				return fmt.Errorf("comparison %s: %w", cmp.Id, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &Summary{
		Platforms:   len(f.Platforms),
		Features:    len(f.Features),
		Comparisons: len(f.Comparisons),
	}, nil
}

func clear(ctx context.Context, uow unitofwork.UnitOfWork) error {
	platforms, err := uow.PlatformRepository().FindAll(ctx)
	if err != nil {
		return err
	}
	for _, p := range platforms {
		if _, err := uow.ComparisonRepository().DeleteByPlatform(ctx, p.Id); err != nil {
			return err
		}
		if err := uow.PlatformRepository().Delete(ctx, p.Id); err != nil {
			return err
		}
	}

	features, err := uow.FeatureRepository().FindAll(ctx)
	if err != nil {
		return err
	}
	for _, ft := range features {
		if err := uow.FeatureRepository().Delete(ctx, ft.Id); err != nil {
			return err
		}
	}
	return nil
}
