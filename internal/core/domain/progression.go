package domain

// Progression is a derived view: all two-source interpolations between one
// unordered pair of artifacts, ordered by blend position from the left
// endpoint to the right. The artifact with the lower id is always the left
// endpoint. Progressions are never persisted.
type Progression struct {
	Left  *Artifact         `json:"left"`
	Right *Artifact         `json:"right"`
	Steps []ProgressionStep `json:"steps"`
}

// ProgressionStep pairs one interpolation with its position between the
// progression endpoints. Position is a percentage from the left endpoint
// (0 = identical to left, 100 = identical to right), computed as
// rightWeight / (leftWeight + rightWeight) * 100.
type ProgressionStep struct {
	Interpolation *Interpolation `json:"interpolation"`
	LeftWeight    float64        `json:"left_weight"`
	RightWeight   float64        `json:"right_weight"`
	Position      float64        `json:"position"`
}
