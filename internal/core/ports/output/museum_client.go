package ports

import "context"

// MuseumObject is a catalog record with the fields the gallery stores on
// import. Field names follow the artifact schema rather than the catalog's
// wire format; the client adapter owns the translation.
type MuseumObject struct {
	ObjectID             int64
	ObjectNumber         string
	Title                string
	Artist               string
	Culture              string
	Period               string
	Medium               string
	Museum               string
	Description          string
	Classification       string
	Dated                string
	DateBegin            int
	DateEnd              int
	Century              string
	Technique            string
	Dimensions           string
	Provenance           string
	CreditLine           string
	Department           string
	Division             string
	Copyright            string
	VerificationLevel    int
	ImagePermissionLevel int
	AccessLevel          int
	CatalogURL           string
	PrimaryImageURL      string
	IIIFBaseURI          string
}

// MuseumSearchResult is a trimmed catalog record for search suggestions.
type MuseumSearchResult struct {
	ObjectID             int64  `json:"id"`
	ObjectNumber         string `json:"object_number"`
	Title                string `json:"title"`
	Artist               string `json:"artist"`
	Dated                string `json:"dated"`
	Classification       string `json:"classification"`
	Medium               string `json:"medium"`
	Culture              string `json:"culture"`
	ThumbnailURL         string `json:"thumbnail_url,omitempty"`
	CatalogURL           string `json:"catalog_url,omitempty"`
	ImagePermissionLevel int    `json:"image_permission_level"`
	CanDisplayImage      bool   `json:"can_display_image"`
}

// MuseumClient talks to the external museum catalog API.
type MuseumClient interface {
	IsAvailable() bool
	Search(ctx context.Context, query string, size int) ([]MuseumSearchResult, error)
	GetObject(ctx context.Context, objectID int64) (*MuseumObject, error)
}
