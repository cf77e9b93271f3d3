package platform

import (
	"context"
	"strings"

	"compare-audius-be/internal/dto"
	"compare-audius-be/internal/entity"
	"compare-audius-be/internal/pkg/apperror"
	"compare-audius-be/internal/repository/specification"
	"compare-audius-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// Manager handles platform admin operations
type Manager struct{}

func NewManager() *Manager {
	return &Manager{}
}

// FindOne retrieves a platform by id, NotFound when absent
func (m *Manager) FindOne(ctx context.Context, uow unitofwork.UnitOfWork, id string) (*entity.Platform, error) {
	platform, err := uow.PlatformRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if platform == nil {
		return nil, apperror.NotFound("Platform not found")
	}
	return platform, nil
}

// Create inserts a draft platform. Only one platform may carry IsAudius.
func (m *Manager) Create(ctx context.Context, uow unitofwork.UnitOfWork, req dto.CreatePlatformRequest) (*entity.Platform, error) {
	if req.IsAudius {
		existing, err := uow.PlatformRepository().FindOne(ctx, specification.AudiusPlatform{})
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.Conflict("An Audius platform already exists")
		}
	}

	platform := &entity.Platform{
		Id:       uuid.NewString(),
		Name:     strings.TrimSpace(req.Name),
		Slug:     strings.TrimSpace(req.Slug),
		Logo:     strings.TrimSpace(req.Logo),
		IsAudius: req.IsAudius,
		IsDraft:  true,
	}

	if err := uow.PlatformRepository().Create(ctx, platform); err != nil {
		return nil, err
	}

	return platform, nil
}

// Update applies a partial update and returns the record together with the
// slug it had before, so callers can purge the old public page.
// Publishing requires a comparison for every published feature. The Audius
// platform cannot go back to draft.
func (m *Manager) Update(ctx context.Context, uow unitofwork.UnitOfWork, id string, req dto.UpdatePlatformRequest) (*entity.Platform, string, error) {
	platform, err := m.FindOne(ctx, uow, id)
	if err != nil {
		return nil, "", err
	}
	previousSlug := platform.Slug

	if req.Name != nil {
		platform.Name = strings.TrimSpace(*req.Name)
	}
	if req.Slug != nil {
		platform.Slug = strings.TrimSpace(*req.Slug)
	}
	if req.Logo != nil {
		platform.Logo = strings.TrimSpace(*req.Logo)
	}
	if req.IsDraft != nil {
		if platform.IsAudius && *req.IsDraft {
			return nil, "", &apperror.ProtectedRecordError{Resource: "platform", Id: platform.Id, Action: "unpublish"}
		}
		if platform.IsDraft && !*req.IsDraft {
			if err := m.ensureComplete(ctx, uow, platform); err != nil {
				return nil, "", err
			}
		}
		platform.IsDraft = *req.IsDraft
	}

	if err := uow.PlatformRepository().Update(ctx, platform); err != nil {
		return nil, "", err
	}

	return platform, previousSlug, nil
}

func (m *Manager) ensureComplete(ctx context.Context, uow unitofwork.UnitOfWork, platform *entity.Platform) error {
	total, err := uow.FeatureRepository().Count(ctx, specification.Published{})
	if err != nil {
		return err
	}
	count, err := uow.ComparisonRepository().Count(ctx,
		specification.ByPlatformID{PlatformID: platform.Id},
		specification.OnPublishedFeatures{},
	)
	if err != nil {
		return err
	}
	if count < total {
		return &apperror.IncompleteComparisonsError{
			Resource: "platform",
			Id:       platform.Id,
			Count:    int(count),
			Total:    int(total),
		}
	}
	return nil
}

// Delete removes a platform and its comparisons. The Audius platform is
// protected.
func (m *Manager) Delete(ctx context.Context, uow unitofwork.UnitOfWork, id string) (*entity.Platform, error) {
	platform, err := m.FindOne(ctx, uow, id)
	if err != nil {
		return nil, err
	}
	if platform.IsAudius {
		return nil, &apperror.ProtectedRecordError{Resource: "platform", Id: platform.Id, Action: "delete"}
	}

	if _, err := uow.ComparisonRepository().DeleteByPlatform(ctx, platform.Id); err != nil {
		return nil, err
	}
	if err := uow.PlatformRepository().Delete(ctx, platform.Id); err != nil {
		return nil, err
	}

	return platform, nil
}
