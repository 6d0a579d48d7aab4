package dto

import "relic-gallery-service/internal/core/domain"

type ProgressionStepResponse struct {
	Interpolation InterpolationResponse `json:"interpolation"`
	LeftWeight    float64               `json:"left_weight"`
	RightWeight   float64               `json:"right_weight"`
	Position      float64               `json:"position"`
}

type ProgressionResponse struct {
	Left  ArtifactResponse          `json:"left"`
	Right ArtifactResponse          `json:"right"`
	Steps []ProgressionStepResponse `json:"steps"`
}

func ToProgressionResponse(p *domain.Progression) ProgressionResponse {
	steps := make([]ProgressionStepResponse, 0, len(p.Steps))
	for _, step := range p.Steps {
		steps = append(steps, ProgressionStepResponse{
			Interpolation: ToInterpolationResponse(step.Interpolation, nil),
			LeftWeight:    step.LeftWeight,
			RightWeight:   step.RightWeight,
			Position:      step.Position,
		})
	}
	return ProgressionResponse{
		Left:  ToArtifactResponse(p.Left),
		Right: ToArtifactResponse(p.Right),
		Steps: steps,
	}
}

type ListProgressionsResponse struct {
	Items []ProgressionResponse `json:"items"`
	Total int                   `json:"total"`
}
