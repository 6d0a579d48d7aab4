package dto

import (
	"time"

	"relic-gallery-service/internal/core/domain"
)

type InterpolationSourceResponse struct {
	ArtifactID int64             `json:"artifact_id"`
	Weight     float64           `json:"weight"`
	Position   int               `json:"position"`
	Artifact   *ArtifactResponse `json:"artifact,omitempty"`
}

type InterpolationResponse struct {
	ID          int64                         `json:"id"`
	Model       string                        `json:"model,omitempty"`
	Description string                        `json:"description,omitempty"`
	ImagePath   string                        `json:"image_path"`
	ImageURL    string                        `json:"image_url"`
	UploadedAt  time.Time                     `json:"uploaded_at"`
	Sources     []InterpolationSourceResponse `json:"sources"`
}

// ToInterpolationResponse converts an interpolation; artifacts, when
// non-nil, embeds the source artifact records keyed by id.
func ToInterpolationResponse(i *domain.Interpolation, artifacts map[int64]*domain.Artifact) InterpolationResponse {
	sources := make([]InterpolationSourceResponse, 0, len(i.Sources))
	for _, s := range i.Sources {
		sr := InterpolationSourceResponse{
			ArtifactID: s.ArtifactID,
			Weight:     s.Weight,
			Position:   s.Position,
		}
		if a := artifacts[s.ArtifactID]; a != nil {
			resp := ToArtifactResponse(a)
			sr.Artifact = &resp
		}
		sources = append(sources, sr)
	}

	return InterpolationResponse{
		ID:          i.ID,
		Model:       i.Model,
		Description: i.Description,
		ImagePath:   i.ImagePath,
		ImageURL:    UploadsBasePath + "/" + i.ImagePath,
		UploadedAt:  i.UploadedAt,
		Sources:     sources,
	}
}

type ListInterpolationsResponse struct {
	Items      []InterpolationResponse `json:"items"`
	Total      int                     `json:"total"`
	PageSize   int                     `json:"page_size"`
	NextOffset int                     `json:"next_offset"`
}

type InterpolationSourceRequest struct {
	ArtifactID int64   `json:"artifact_id" binding:"required"`
	Weight     float64 `json:"weight"`
}

type UpdateInterpolationRequest struct {
	Model       *string                      `json:"model"`
	Description *string                      `json:"description"`
	Sources     []InterpolationSourceRequest `json:"sources"`
}
