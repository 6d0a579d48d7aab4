package ports

import (
	"context"

	"relic-gallery-service/internal/core/domain"
)

// ArtifactListFilter narrows and pages artifact listings.
type ArtifactListFilter struct {
	Search string
	SortBy string
	Order  string
	Limit  int
	Offset int
}

// InterpolationListFilter narrows and pages interpolation listings.
// SourceCount, when > 0, restricts results to interpolations with exactly
// that many source artifacts.
type InterpolationListFilter struct {
	Model       string
	SourceCount int
	Limit       int
	Offset      int
}

type ArtifactRepository interface {
	Create(ctx context.Context, artifact *domain.Artifact) error
	GetByID(ctx context.Context, id int64) (*domain.Artifact, error)
	GetByExternalObjectID(ctx context.Context, externalID int64) (*domain.Artifact, error)
	ListByIDs(ctx context.Context, ids []int64) ([]*domain.Artifact, error)
	List(ctx context.Context, filter ArtifactListFilter) ([]*domain.Artifact, int, error)
	Update(ctx context.Context, artifact *domain.Artifact) error
	// Delete removes the artifact and its source links, and drops any
	// interpolation left with fewer than two sources. It returns the image
	// paths of the interpolations that were dropped so the caller can clean
	// up their stored files.
	Delete(ctx context.Context, id int64) ([]string, error)
}

type InterpolationRepository interface {
	Create(ctx context.Context, interpolation *domain.Interpolation) error
	GetByID(ctx context.Context, id int64) (*domain.Interpolation, error)
	List(ctx context.Context, filter InterpolationListFilter) ([]*domain.Interpolation, int, error)
	ListByArtifact(ctx context.Context, artifactID int64) ([]*domain.Interpolation, error)
	Update(ctx context.Context, interpolation *domain.Interpolation) error
	Delete(ctx context.Context, id int64) error
}

type AdminRepository interface {
	Create(ctx context.Context, admin *domain.Admin) error
	GetByUsername(ctx context.Context, username string) (*domain.Admin, error)
	Count(ctx context.Context) (int, error)
}
