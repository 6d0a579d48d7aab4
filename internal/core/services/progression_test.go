package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"relic-gallery-service/internal/core/domain"
	ports "relic-gallery-service/internal/core/ports/output"
	"relic-gallery-service/internal/testutil"
)

func twoSource(id int64, aID int64, aW float64, bID int64, bW float64) *domain.Interpolation {
	return &domain.Interpolation{
		ID: id,
		Sources: []domain.InterpolationSource{
			{ArtifactID: aID, Weight: aW, Position: 0},
			{ArtifactID: bID, Weight: bW, Position: 1},
		},
	}
}

func TestProgressionService_ListAll(t *testing.T) {
	interps := new(testutil.MockInterpolationRepo)
	artifacts := new(testutil.MockArtifactRepo)
	svc := NewProgressionService(interps, artifacts)

	interps.On("List", mock.Anything, ports.InterpolationListFilter{SourceCount: 2}).
		Return([]*domain.Interpolation{
			twoSource(10, 1, 0.5, 2, 0.5),
			twoSource(11, 1, 0.9, 2, 0.1),
			// Reversed source order: still the same pair, oriented by id.
			twoSource(12, 2, 0.75, 1, 0.25),
		}, 3, nil)
	artifacts.On("ListByIDs", mock.Anything, mock.AnythingOfType("[]int64")).
		Return([]*domain.Artifact{{ID: 1, Title: "Vase"}, {ID: 2, Title: "Amphora"}}, nil)

	progressions, err := svc.ListAll(context.Background())
	assert.NoError(t, err)
	assert.Len(t, progressions, 1)

	p := progressions[0]
	assert.Equal(t, int64(1), p.Left.ID)
	assert.Equal(t, int64(2), p.Right.ID)
	assert.Len(t, p.Steps, 3)

	// Ascending by position toward the right endpoint.
	assert.Equal(t, int64(11), p.Steps[0].Interpolation.ID)
	assert.InDelta(t, 10.0, p.Steps[0].Position, 0.001)
	assert.Equal(t, int64(10), p.Steps[1].Interpolation.ID)
	assert.InDelta(t, 50.0, p.Steps[1].Position, 0.001)
	assert.Equal(t, int64(12), p.Steps[2].Interpolation.ID)
	assert.InDelta(t, 75.0, p.Steps[2].Position, 0.001)
}

func TestProgressionService_ListAll_SkipsZeroWeightPairs(t *testing.T) {
	interps := new(testutil.MockInterpolationRepo)
	artifacts := new(testutil.MockArtifactRepo)
	svc := NewProgressionService(interps, artifacts)

	interps.On("List", mock.Anything, ports.InterpolationListFilter{SourceCount: 2}).
		Return([]*domain.Interpolation{
			twoSource(10, 1, 0, 2, 0),
		}, 1, nil)

	progressions, err := svc.ListAll(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, progressions)
	artifacts.AssertNotCalled(t, "ListByIDs", mock.Anything, mock.Anything)
}

func TestProgressionService_ListAll_OrderedByEndpoints(t *testing.T) {
	interps := new(testutil.MockInterpolationRepo)
	artifacts := new(testutil.MockArtifactRepo)
	svc := NewProgressionService(interps, artifacts)

	interps.On("List", mock.Anything, ports.InterpolationListFilter{SourceCount: 2}).
		Return([]*domain.Interpolation{
			twoSource(20, 3, 0.5, 4, 0.5),
			twoSource(21, 1, 0.5, 2, 0.5),
		}, 2, nil)
	artifacts.On("ListByIDs", mock.Anything, mock.AnythingOfType("[]int64")).
		Return([]*domain.Artifact{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}}, nil)

	progressions, err := svc.ListAll(context.Background())
	assert.NoError(t, err)
	assert.Len(t, progressions, 2)
	assert.Equal(t, int64(1), progressions[0].Left.ID)
	assert.Equal(t, int64(3), progressions[1].Left.ID)
}
