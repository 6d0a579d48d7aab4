package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"relic-gallery-service/internal/core/domain"
	ports "relic-gallery-service/internal/core/ports/output"
	"relic-gallery-service/internal/testutil"
)

func TestInterpolationService_Create(t *testing.T) {
	repo := new(testutil.MockInterpolationRepo)
	artifacts := new(testutil.MockArtifactRepo)
	store := new(testutil.MockFileStore)
	svc := NewInterpolationService(repo, artifacts, store)

	artifacts.On("ListByIDs", mock.Anything, []int64{1, 2}).
		Return([]*domain.Artifact{{ID: 1}, {ID: 2}}, nil)
	store.On("Save", mock.Anything, ports.CategoryInterpolations, "blend.png", mock.Anything).
		Return("interpolations/blend.png", nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Interpolation")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Interpolation).ID = 4
		}).Return(nil)

	interp, err := svc.Create(context.Background(), InterpolationUpload{
		Model:     "sdxl",
		ImageName: "blend.png",
		Image:     strings.NewReader("img"),
		Sources: []domain.InterpolationSource{
			{ArtifactID: 1, Weight: 0.7},
			{ArtifactID: 2, Weight: 0.3},
		},
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(4), interp.ID)
	assert.Equal(t, 0, interp.Sources[0].Position)
	assert.Equal(t, 1, interp.Sources[1].Position)
}

func TestInterpolationService_Create_InsufficientSources(t *testing.T) {
	svc := NewInterpolationService(new(testutil.MockInterpolationRepo), new(testutil.MockArtifactRepo), new(testutil.MockFileStore))

	_, err := svc.Create(context.Background(), InterpolationUpload{
		ImageName: "blend.png",
		Image:     strings.NewReader("img"),
		Sources:   []domain.InterpolationSource{{ArtifactID: 1, Weight: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientSources)
}

func TestInterpolationService_Create_DuplicateSource(t *testing.T) {
	svc := NewInterpolationService(new(testutil.MockInterpolationRepo), new(testutil.MockArtifactRepo), new(testutil.MockFileStore))

	_, err := svc.Create(context.Background(), InterpolationUpload{
		ImageName: "blend.png",
		Image:     strings.NewReader("img"),
		Sources: []domain.InterpolationSource{
			{ArtifactID: 1, Weight: 0.5},
			{ArtifactID: 1, Weight: 0.5},
		},
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateSource)
}

func TestInterpolationService_Create_NegativeWeight(t *testing.T) {
	svc := NewInterpolationService(new(testutil.MockInterpolationRepo), new(testutil.MockArtifactRepo), new(testutil.MockFileStore))

	_, err := svc.Create(context.Background(), InterpolationUpload{
		ImageName: "blend.png",
		Image:     strings.NewReader("img"),
		Sources: []domain.InterpolationSource{
			{ArtifactID: 1, Weight: -0.1},
			{ArtifactID: 2, Weight: 0.5},
		},
	})
	assert.ErrorIs(t, err, domain.ErrNegativeWeight)
}

func TestInterpolationService_Create_UnknownArtifact(t *testing.T) {
	artifacts := new(testutil.MockArtifactRepo)
	svc := NewInterpolationService(new(testutil.MockInterpolationRepo), artifacts, new(testutil.MockFileStore))

	artifacts.On("ListByIDs", mock.Anything, []int64{1, 99}).
		Return([]*domain.Artifact{{ID: 1}}, nil)

	_, err := svc.Create(context.Background(), InterpolationUpload{
		ImageName: "blend.png",
		Image:     strings.NewReader("img"),
		Sources: []domain.InterpolationSource{
			{ArtifactID: 1, Weight: 0.5},
			{ArtifactID: 99, Weight: 0.5},
		},
	})
	assert.ErrorIs(t, err, domain.ErrArtifactNotFound)
}

func TestInterpolationService_Create_MissingImage(t *testing.T) {
	svc := NewInterpolationService(new(testutil.MockInterpolationRepo), new(testutil.MockArtifactRepo), new(testutil.MockFileStore))

	_, err := svc.Create(context.Background(), InterpolationUpload{
		Sources: []domain.InterpolationSource{
			{ArtifactID: 1, Weight: 0.5},
			{ArtifactID: 2, Weight: 0.5},
		},
	})
	assert.ErrorIs(t, err, domain.ErrImageRequired)
}

func TestInterpolationService_ListByArtifact_ArtifactMustExist(t *testing.T) {
	repo := new(testutil.MockInterpolationRepo)
	artifacts := new(testutil.MockArtifactRepo)
	svc := NewInterpolationService(repo, artifacts, new(testutil.MockFileStore))

	artifacts.On("GetByID", mock.Anything, int64(404)).Return(nil, domain.ErrArtifactNotFound)

	_, err := svc.ListByArtifact(context.Background(), 404)
	assert.ErrorIs(t, err, domain.ErrArtifactNotFound)
	repo.AssertNotCalled(t, "ListByArtifact", mock.Anything, mock.Anything)
}

func TestInterpolationService_Update_ReplacesSources(t *testing.T) {
	repo := new(testutil.MockInterpolationRepo)
	artifacts := new(testutil.MockArtifactRepo)
	svc := NewInterpolationService(repo, artifacts, new(testutil.MockFileStore))

	existing := &domain.Interpolation{
		ID:    9,
		Model: "sdxl",
		Sources: []domain.InterpolationSource{
			{ArtifactID: 1, Weight: 0.5, Position: 0},
			{ArtifactID: 2, Weight: 0.5, Position: 1},
		},
	}
	repo.On("GetByID", mock.Anything, int64(9)).Return(existing, nil)
	artifacts.On("ListByIDs", mock.Anything, []int64{2, 3}).
		Return([]*domain.Artifact{{ID: 2}, {ID: 3}}, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Interpolation")).Return(nil)

	updated, err := svc.Update(context.Background(), 9,
		map[string]interface{}{"description": "reblended"},
		[]domain.InterpolationSource{
			{ArtifactID: 2, Weight: 0.2},
			{ArtifactID: 3, Weight: 0.8},
		})
	assert.NoError(t, err)
	assert.Equal(t, "reblended", updated.Description)
	assert.Equal(t, int64(2), updated.Sources[0].ArtifactID)
	assert.Equal(t, int64(3), updated.Sources[1].ArtifactID)
}

func TestInterpolationService_Delete_RemovesImage(t *testing.T) {
	repo := new(testutil.MockInterpolationRepo)
	store := new(testutil.MockFileStore)
	svc := NewInterpolationService(repo, new(testutil.MockArtifactRepo), store)

	repo.On("GetByID", mock.Anything, int64(9)).
		Return(&domain.Interpolation{ID: 9, ImagePath: "interpolations/b.png"}, nil)
	repo.On("Delete", mock.Anything, int64(9)).Return(nil)
	store.On("Remove", "interpolations/b.png").Return(nil)

	err := svc.Delete(context.Background(), 9)
	assert.NoError(t, err)
	store.AssertCalled(t, "Remove", "interpolations/b.png")
}
