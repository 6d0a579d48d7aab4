package harvard

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"relic-gallery-service/internal/config"
	"relic-gallery-service/internal/core/domain"
	ports "relic-gallery-service/internal/core/ports/output"
)

type harvardClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
	enabled bool
}

// NewClient creates a Harvard Art Museums API client adapter.
func NewClient(cfg *config.MuseumConfig) ports.MuseumClient {
	if !cfg.Enabled || cfg.APIKey == "" {
		return &harvardClient{enabled: false}
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &harvardClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		enabled: true,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *harvardClient) IsAvailable() bool {
	return c.enabled
}

// Harvard API wire structures (object endpoint).
type objectRecord struct {
	ObjectID             int64         `json:"objectid"`
	ObjectNumber         string        `json:"objectnumber"`
	Title                string        `json:"title"`
	Culture              string        `json:"culture"`
	Period               string        `json:"period"`
	Medium               string        `json:"medium"`
	Description          string        `json:"description"`
	Classification       string        `json:"classification"`
	Dated                string        `json:"dated"`
	DateBegin            int           `json:"datebegin"`
	DateEnd              int           `json:"dateend"`
	Century              string        `json:"century"`
	Technique            string        `json:"technique"`
	Dimensions           string        `json:"dimensions"`
	Provenance           string        `json:"provenance"`
	CreditLine           string        `json:"creditline"`
	Department           string        `json:"department"`
	Division             string        `json:"division"`
	Copyright            string        `json:"copyright"`
	VerificationLevel    int           `json:"verificationlevel"`
	ImagePermissionLevel int           `json:"imagepermissionlevel"`
	AccessLevel          int           `json:"accesslevel"`
	URL                  string        `json:"url"`
	PrimaryImageURL      string        `json:"primaryimageurl"`
	People               []person      `json:"people"`
	Images               []objectImage `json:"images"`
}

type person struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

type objectImage struct {
	IIIFBaseURI string `json:"iiifbaseuri"`
}

type searchResponse struct {
	Records []objectRecord `json:"records"`
}

func (c *harvardClient) Search(ctx context.Context, query string, size int) ([]ports.MuseumSearchResult, error) {
	// A numeric query is tried as an exact object id first.
	if objectID, err := strconv.ParseInt(query, 10, 64); err == nil {
		if obj, err := c.getRecord(ctx, objectID); err == nil {
			return []ports.MuseumSearchResult{toSearchResult(obj)}, nil
		}
	}

	params := url.Values{}
	params.Set("apikey", c.apiKey)
	params.Set("keyword", query)
	params.Set("size", strconv.Itoa(size))
	params.Set("hasimage", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/object?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build search request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("museum search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("museum search: unexpected status %d", resp.StatusCode)
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	results := make([]ports.MuseumSearchResult, 0, len(body.Records))
	for i := range body.Records {
		results = append(results, toSearchResult(&body.Records[i]))
	}
	return results, nil
}

func (c *harvardClient) GetObject(ctx context.Context, objectID int64) (*ports.MuseumObject, error) {
	rec, err := c.getRecord(ctx, objectID)
	if err != nil {
		return nil, err
	}
	return toMuseumObject(rec), nil
}

func (c *harvardClient) getRecord(ctx context.Context, objectID int64) (*objectRecord, error) {
	u := fmt.Sprintf("%s/object/%d?apikey=%s", c.baseURL, objectID, url.QueryEscape(c.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build object request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch museum object %d: %w", objectID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.ErrMuseumObjectNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch museum object %d: unexpected status %d", objectID, resp.StatusCode)
	}

	var rec objectRecord
	if err := json.NewDecoder(resp.Body).Decode(&rec); err != nil {
		return nil, fmt.Errorf("decode object response: %w", err)
	}
	if rec.ObjectID == 0 {
		return nil, domain.ErrMuseumObjectNotFound
	}
	return &rec, nil
}

// artistOf prefers the person with the Artist role, falling back to the
// first listed person.
func artistOf(rec *objectRecord) string {
	for _, p := range rec.People {
		if p.Role == "Artist" {
			return p.Name
		}
	}
	if len(rec.People) > 0 {
		return rec.People[0].Name
	}
	return ""
}

// museumOf extracts the holding museum from the credit line when it names a
// Harvard museum, otherwise returns the umbrella institution.
func museumOf(rec *objectRecord) string {
	const umbrella = "Harvard Art Museums"
	if idx := strings.Index(rec.CreditLine, umbrella+"/"); idx >= 0 {
		rest := rec.CreditLine[idx+len(umbrella)+1:]
		if comma := strings.Index(rest, ","); comma >= 0 {
			rest = rest[:comma]
		}
		if rest = strings.TrimSpace(rest); rest != "" {
			return rest
		}
	}
	return umbrella
}

func toSearchResult(rec *objectRecord) ports.MuseumSearchResult {
	artist := artistOf(rec)
	if artist == "" {
		artist = "Unknown Artist"
	}

	result := ports.MuseumSearchResult{
		ObjectID:             rec.ObjectID,
		ObjectNumber:         rec.ObjectNumber,
		Title:                titleOrUntitled(rec.Title),
		Artist:               artist,
		Dated:                rec.Dated,
		Classification:       rec.Classification,
		Medium:               rec.Medium,
		Culture:              rec.Culture,
		CatalogURL:           rec.URL,
		ImagePermissionLevel: rec.ImagePermissionLevel,
		CanDisplayImage:      rec.ImagePermissionLevel < domain.ImagePermissionNone,
	}

	if result.CanDisplayImage && rec.PrimaryImageURL != "" {
		result.ThumbnailURL = rec.PrimaryImageURL
		if len(rec.Images) > 0 && rec.Images[0].IIIFBaseURI != "" {
			maxSize := 200
			if rec.ImagePermissionLevel == domain.ImagePermissionLimited {
				maxSize = 256
			}
			result.ThumbnailURL = fmt.Sprintf("%s/full/%d,/0/default.jpg", rec.Images[0].IIIFBaseURI, maxSize)
		}
	}
	return result
}

func toMuseumObject(rec *objectRecord) *ports.MuseumObject {
	iiif := ""
	if len(rec.Images) > 0 {
		iiif = rec.Images[0].IIIFBaseURI
	}
	return &ports.MuseumObject{
		ObjectID:             rec.ObjectID,
		ObjectNumber:         rec.ObjectNumber,
		Title:                titleOrUntitled(rec.Title),
		Artist:               artistOf(rec),
		Culture:              rec.Culture,
		Period:               rec.Period,
		Medium:               rec.Medium,
		Museum:               museumOf(rec),
		Description:          rec.Description,
		Classification:       rec.Classification,
		Dated:                rec.Dated,
		DateBegin:            rec.DateBegin,
		DateEnd:              rec.DateEnd,
		Century:              rec.Century,
		Technique:            rec.Technique,
		Dimensions:           rec.Dimensions,
		Provenance:           rec.Provenance,
		CreditLine:           rec.CreditLine,
		Department:           rec.Department,
		Division:             rec.Division,
		Copyright:            rec.Copyright,
		VerificationLevel:    rec.VerificationLevel,
		ImagePermissionLevel: rec.ImagePermissionLevel,
		AccessLevel:          rec.AccessLevel,
		CatalogURL:           rec.URL,
		PrimaryImageURL:      rec.PrimaryImageURL,
		IIIFBaseURI:          iiif,
	}
}

func titleOrUntitled(title string) string {
	if title == "" {
		return "Untitled"
	}
	return title
}
