package services

import (
	"context"
	"io"
	"time"

	log "github.com/sirupsen/logrus"

	"relic-gallery-service/internal/core/domain"
	ports "relic-gallery-service/internal/core/ports/output"
)

// InterpolationUpload carries the fields of an interpolation upload.
type InterpolationUpload struct {
	Model       string
	Description string
	ImageName   string
	Image       io.Reader
	Sources     []domain.InterpolationSource
}

type InterpolationService struct {
	repo      ports.InterpolationRepository
	artifacts ports.ArtifactRepository
	store     ports.FileStore
}

func NewInterpolationService(repo ports.InterpolationRepository, artifacts ports.ArtifactRepository, store ports.FileStore) *InterpolationService {
	return &InterpolationService{repo: repo, artifacts: artifacts, store: store}
}

func (s *InterpolationService) Create(ctx context.Context, upload InterpolationUpload) (*domain.Interpolation, error) {
	if upload.Image == nil {
		return nil, domain.ErrImageRequired
	}
	sources, err := s.validateSources(ctx, upload.Sources)
	if err != nil {
		return nil, err
	}

	imagePath, err := s.store.Save(ctx, ports.CategoryInterpolations, upload.ImageName, upload.Image)
	if err != nil {
		return nil, err
	}

	interpolation := &domain.Interpolation{
		Model:       upload.Model,
		Description: upload.Description,
		ImagePath:   imagePath,
		UploadedAt:  time.Now(),
		Sources:     sources,
	}

	if err := s.repo.Create(ctx, interpolation); err != nil {
		if rmErr := s.store.Remove(imagePath); rmErr != nil {
			log.WithError(rmErr).WithField("path", imagePath).Warn("remove orphaned upload failed")
		}
		return nil, err
	}

	return interpolation, nil
}

func (s *InterpolationService) Get(ctx context.Context, id int64) (*domain.Interpolation, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *InterpolationService) List(ctx context.Context, filter ports.InterpolationListFilter) ([]*domain.Interpolation, int, error) {
	filter.Limit = ClampPageSize(filter.Limit)
	return s.repo.List(ctx, filter)
}

// ListByArtifact returns every interpolation that uses the given artifact as
// a source. The artifact must exist.
func (s *InterpolationService) ListByArtifact(ctx context.Context, artifactID int64) ([]*domain.Interpolation, error) {
	if _, err := s.artifacts.GetByID(ctx, artifactID); err != nil {
		return nil, err
	}
	return s.repo.ListByArtifact(ctx, artifactID)
}

// Update mutates model/description and, when sources is non-empty, replaces
// the source links wholesale under the same validation as Create.
func (s *InterpolationService) Update(ctx context.Context, id int64, updates map[string]interface{}, sources []domain.InterpolationSource) (*domain.Interpolation, error) {
	interpolation, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if v, ok := updates["model"]; ok && v != nil {
		interpolation.Model = v.(string)
	}
	if v, ok := updates["description"]; ok && v != nil {
		interpolation.Description = v.(string)
	}
	if len(sources) > 0 {
		validated, err := s.validateSources(ctx, sources)
		if err != nil {
			return nil, err
		}
		interpolation.Sources = validated
	}

	if err := s.repo.Update(ctx, interpolation); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, id)
}

func (s *InterpolationService) Delete(ctx context.Context, id int64) error {
	interpolation, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if interpolation.ImagePath != "" {
		if err := s.store.Remove(interpolation.ImagePath); err != nil {
			log.WithError(err).WithField("path", interpolation.ImagePath).Warn("remove image file failed")
		}
	}

	return nil
}

// validateSources enforces the structural invariant: at least two distinct
// source artifacts, all weights non-negative, every artifact present in the
// collection. Positions are assigned from the submitted order.
func (s *InterpolationService) validateSources(ctx context.Context, sources []domain.InterpolationSource) ([]domain.InterpolationSource, error) {
	if len(sources) < 2 {
		return nil, domain.ErrInsufficientSources
	}

	seen := make(map[int64]bool, len(sources))
	ids := make([]int64, 0, len(sources))
	for i := range sources {
		if sources[i].Weight < 0 {
			return nil, domain.ErrNegativeWeight
		}
		if seen[sources[i].ArtifactID] {
			return nil, domain.ErrDuplicateSource
		}
		seen[sources[i].ArtifactID] = true
		ids = append(ids, sources[i].ArtifactID)
		sources[i].Position = i
	}

	artifacts, err := s.artifacts.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(artifacts) != len(ids) {
		return nil, domain.ErrArtifactNotFound
	}

	return sources, nil
}
