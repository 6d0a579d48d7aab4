package domain

import "time"

// Interpolation is an AI-generated image blending two or more artifacts.
// Each source link carries the relative blend contribution of one artifact;
// weights are non-negative and not normalized across the links.
type Interpolation struct {
	ID          int64                 `json:"id"`
	Model       string                `json:"model"`
	Description string                `json:"description"`
	ImagePath   string                `json:"image_path"`
	UploadedAt  time.Time             `json:"uploaded_at"`
	Sources     []InterpolationSource `json:"sources"`
}

// InterpolationSource links an interpolation to one of its source artifacts.
type InterpolationSource struct {
	ArtifactID int64   `json:"artifact_id"`
	Weight     float64 `json:"weight"`
	Position   int     `json:"position"`
}
