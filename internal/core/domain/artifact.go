package domain

import "time"

// Image permission levels carried over from the museum catalog. Level 0 allows
// full-size display, level 1 caps display at 256px, level 2 forbids display.
const (
	ImagePermissionFull    = 0
	ImagePermissionLimited = 1
	ImagePermissionNone    = 2
)

// Artifact is a historical artwork record in the collection. An artifact is
// either uploaded manually (ImagePath points at a stored file) or imported
// from the museum catalog (ExternalObjectID is set and the image is served
// from the catalog's CDN).
type Artifact struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Artist      string    `json:"artist"`
	Culture     string    `json:"culture"`
	Period      string    `json:"period"`
	Medium      string    `json:"medium"`
	Museum      string    `json:"museum"`
	Description string    `json:"description"`
	Metadata    string    `json:"metadata"`
	ImagePath   string    `json:"image_path"`
	UploadedAt  time.Time `json:"uploaded_at"`

	// Museum catalog fields, populated on import.
	ExternalObjectID     *int64     `json:"external_object_id,omitempty"`
	ObjectNumber         string     `json:"object_number,omitempty"`
	Classification       string     `json:"classification,omitempty"`
	Dated                string     `json:"dated,omitempty"`
	DateBegin            int        `json:"date_begin,omitempty"`
	DateEnd              int        `json:"date_end,omitempty"`
	Century              string     `json:"century,omitempty"`
	Technique            string     `json:"technique,omitempty"`
	Dimensions           string     `json:"dimensions,omitempty"`
	Provenance           string     `json:"provenance,omitempty"`
	CreditLine           string     `json:"credit_line,omitempty"`
	Department           string     `json:"department,omitempty"`
	Division             string     `json:"division,omitempty"`
	Copyright            string     `json:"copyright,omitempty"`
	VerificationLevel    int        `json:"verification_level,omitempty"`
	ImagePermissionLevel int        `json:"image_permission_level"`
	AccessLevel          int        `json:"access_level"`
	CatalogURL           string     `json:"catalog_url,omitempty"`
	PrimaryImageURL      string     `json:"primary_image_url,omitempty"`
	IIIFBaseURI          string     `json:"iiif_base_uri,omitempty"`
	LastSyncedAt         *time.Time `json:"last_synced_at,omitempty"`
}

// IsImported reports whether the artifact came from the museum catalog.
func (a *Artifact) IsImported() bool {
	return a.ExternalObjectID != nil
}
