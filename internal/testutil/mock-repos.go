package testutil

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"relic-gallery-service/internal/core/domain"
	ports "relic-gallery-service/internal/core/ports/output"
)

// MockArtifactRepo is a mock of ArtifactRepository.
type MockArtifactRepo struct {
	mock.Mock
}

func (m *MockArtifactRepo) Create(ctx context.Context, artifact *domain.Artifact) error {
	args := m.Called(ctx, artifact)
	return args.Error(0)
}

func (m *MockArtifactRepo) GetByID(ctx context.Context, id int64) (*domain.Artifact, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Artifact), args.Error(1)
}

func (m *MockArtifactRepo) GetByExternalObjectID(ctx context.Context, externalID int64) (*domain.Artifact, error) {
	args := m.Called(ctx, externalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Artifact), args.Error(1)
}

func (m *MockArtifactRepo) ListByIDs(ctx context.Context, ids []int64) ([]*domain.Artifact, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Artifact), args.Error(1)
}

func (m *MockArtifactRepo) List(ctx context.Context, filter ports.ArtifactListFilter) ([]*domain.Artifact, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.Artifact), args.Int(1), args.Error(2)
}

func (m *MockArtifactRepo) Update(ctx context.Context, artifact *domain.Artifact) error {
	args := m.Called(ctx, artifact)
	return args.Error(0)
}

func (m *MockArtifactRepo) Delete(ctx context.Context, id int64) ([]string, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockInterpolationRepo is a mock of InterpolationRepository.
type MockInterpolationRepo struct {
	mock.Mock
}

func (m *MockInterpolationRepo) Create(ctx context.Context, interpolation *domain.Interpolation) error {
	args := m.Called(ctx, interpolation)
	return args.Error(0)
}

func (m *MockInterpolationRepo) GetByID(ctx context.Context, id int64) (*domain.Interpolation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Interpolation), args.Error(1)
}

func (m *MockInterpolationRepo) List(ctx context.Context, filter ports.InterpolationListFilter) ([]*domain.Interpolation, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.Interpolation), args.Int(1), args.Error(2)
}

func (m *MockInterpolationRepo) ListByArtifact(ctx context.Context, artifactID int64) ([]*domain.Interpolation, error) {
	args := m.Called(ctx, artifactID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Interpolation), args.Error(1)
}

func (m *MockInterpolationRepo) Update(ctx context.Context, interpolation *domain.Interpolation) error {
	args := m.Called(ctx, interpolation)
	return args.Error(0)
}

func (m *MockInterpolationRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockAdminRepo is a mock of AdminRepository.
type MockAdminRepo struct {
	mock.Mock
}

func (m *MockAdminRepo) Create(ctx context.Context, admin *domain.Admin) error {
	args := m.Called(ctx, admin)
	return args.Error(0)
}

func (m *MockAdminRepo) GetByUsername(ctx context.Context, username string) (*domain.Admin, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Admin), args.Error(1)
}

func (m *MockAdminRepo) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// MockFileStore is a mock of FileStore.
type MockFileStore struct {
	mock.Mock
}

func (m *MockFileStore) Save(ctx context.Context, category, originalName string, r io.Reader) (string, error) {
	args := m.Called(ctx, category, originalName, r)
	return args.String(0), args.Error(1)
}

func (m *MockFileStore) Remove(path string) error {
	args := m.Called(path)
	return args.Error(0)
}

func (m *MockFileStore) Root() string {
	args := m.Called()
	return args.String(0)
}

// MockMuseumClient is a mock of MuseumClient.
type MockMuseumClient struct {
	mock.Mock
}

func (m *MockMuseumClient) IsAvailable() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockMuseumClient) Search(ctx context.Context, query string, size int) ([]ports.MuseumSearchResult, error) {
	args := m.Called(ctx, query, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.MuseumSearchResult), args.Error(1)
}

func (m *MockMuseumClient) GetObject(ctx context.Context, objectID int64) (*ports.MuseumObject, error) {
	args := m.Called(ctx, objectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.MuseumObject), args.Error(1)
}
