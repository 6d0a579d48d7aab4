package services

import (
	"context"
	"sort"

	"relic-gallery-service/internal/core/domain"
	ports "relic-gallery-service/internal/core/ports/output"
)

type ProgressionService struct {
	interpolations ports.InterpolationRepository
	artifacts      ports.ArtifactRepository
}

func NewProgressionService(interpolations ports.InterpolationRepository, artifacts ports.ArtifactRepository) *ProgressionService {
	return &ProgressionService{interpolations: interpolations, artifacts: artifacts}
}

type pairKey struct {
	left  int64
	right int64
}

// ListAll derives every progression in the collection: two-source
// interpolations grouped by their unordered artifact pair, each group ordered
// by blend position from the left endpoint (lower artifact id) to the right.
func (s *ProgressionService) ListAll(ctx context.Context) ([]*domain.Progression, error) {
	interpolations, _, err := s.interpolations.List(ctx, ports.InterpolationListFilter{SourceCount: 2})
	if err != nil {
		return nil, err
	}

	groups := make(map[pairKey][]domain.ProgressionStep)
	for _, interp := range interpolations {
		if len(interp.Sources) != 2 {
			continue
		}
		a, b := interp.Sources[0], interp.Sources[1]
		key := pairKey{left: a.ArtifactID, right: b.ArtifactID}
		leftWeight, rightWeight := a.Weight, b.Weight
		if key.left > key.right {
			key.left, key.right = key.right, key.left
			leftWeight, rightWeight = rightWeight, leftWeight
		}

		total := leftWeight + rightWeight
		if total == 0 {
			// Both weights zero: no defined position on the axis.
			continue
		}

		groups[key] = append(groups[key], domain.ProgressionStep{
			Interpolation: interp,
			LeftWeight:    leftWeight,
			RightWeight:   rightWeight,
			Position:      rightWeight / total * 100,
		})
	}

	artifactIDs := make([]int64, 0, len(groups)*2)
	seen := make(map[int64]bool)
	for key := range groups {
		for _, id := range []int64{key.left, key.right} {
			if !seen[id] {
				seen[id] = true
				artifactIDs = append(artifactIDs, id)
			}
		}
	}

	byID := make(map[int64]*domain.Artifact, len(artifactIDs))
	if len(artifactIDs) > 0 {
		artifacts, err := s.artifacts.ListByIDs(ctx, artifactIDs)
		if err != nil {
			return nil, err
		}
		for _, a := range artifacts {
			byID[a.ID] = a
		}
	}

	progressions := make([]*domain.Progression, 0, len(groups))
	for key, steps := range groups {
		left, right := byID[key.left], byID[key.right]
		if left == nil || right == nil {
			continue
		}
		sort.Slice(steps, func(i, j int) bool {
			if steps[i].Position != steps[j].Position {
				return steps[i].Position < steps[j].Position
			}
			return steps[i].Interpolation.ID < steps[j].Interpolation.ID
		})
		progressions = append(progressions, &domain.Progression{
			Left:  left,
			Right: right,
			Steps: steps,
		})
	}

	sort.Slice(progressions, func(i, j int) bool {
		if progressions[i].Left.ID != progressions[j].Left.ID {
			return progressions[i].Left.ID < progressions[j].Left.ID
		}
		return progressions[i].Right.ID < progressions[j].Right.ID
	})

	return progressions, nil
}
