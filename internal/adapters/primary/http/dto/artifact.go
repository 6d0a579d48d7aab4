package dto

import (
	"fmt"
	"time"

	"relic-gallery-service/internal/core/domain"
)

// UploadsBasePath is the route prefix under which stored images are served.
const UploadsBasePath = "/uploads"

type ArtifactResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Artist      string    `json:"artist,omitempty"`
	Culture     string    `json:"culture,omitempty"`
	Period      string    `json:"period,omitempty"`
	Medium      string    `json:"medium,omitempty"`
	Museum      string    `json:"museum,omitempty"`
	Description string    `json:"description,omitempty"`
	Metadata    string    `json:"metadata,omitempty"`
	ImagePath   string    `json:"image_path,omitempty"`
	UploadedAt  time.Time `json:"uploaded_at"`

	ExternalObjectID     *int64     `json:"external_object_id,omitempty"`
	ObjectNumber         string     `json:"object_number,omitempty"`
	Classification       string     `json:"classification,omitempty"`
	Dated                string     `json:"dated,omitempty"`
	Century              string     `json:"century,omitempty"`
	Technique            string     `json:"technique,omitempty"`
	Dimensions           string     `json:"dimensions,omitempty"`
	Provenance           string     `json:"provenance,omitempty"`
	CreditLine           string     `json:"credit_line,omitempty"`
	Department           string     `json:"department,omitempty"`
	Division             string     `json:"division,omitempty"`
	Copyright            string     `json:"copyright,omitempty"`
	ImagePermissionLevel int        `json:"image_permission_level"`
	CatalogURL           string     `json:"catalog_url,omitempty"`
	LastSyncedAt         *time.Time `json:"last_synced_at,omitempty"`

	// Computed display URLs honoring catalog image permissions.
	DisplayImageURL string `json:"display_image_url,omitempty"`
	ThumbnailURL    string `json:"thumbnail_url,omitempty"`
}

func ToArtifactResponse(a *domain.Artifact) ArtifactResponse {
	return ArtifactResponse{
		ID:                   a.ID,
		Title:                a.Title,
		Artist:               a.Artist,
		Culture:              a.Culture,
		Period:               a.Period,
		Medium:               a.Medium,
		Museum:               a.Museum,
		Description:          a.Description,
		Metadata:             a.Metadata,
		ImagePath:            a.ImagePath,
		UploadedAt:           a.UploadedAt,
		ExternalObjectID:     a.ExternalObjectID,
		ObjectNumber:         a.ObjectNumber,
		Classification:       a.Classification,
		Dated:                a.Dated,
		Century:              a.Century,
		Technique:            a.Technique,
		Dimensions:           a.Dimensions,
		Provenance:           a.Provenance,
		CreditLine:           a.CreditLine,
		Department:           a.Department,
		Division:             a.Division,
		Copyright:            a.Copyright,
		ImagePermissionLevel: a.ImagePermissionLevel,
		CatalogURL:           a.CatalogURL,
		LastSyncedAt:         a.LastSyncedAt,
		DisplayImageURL:      displayImageURL(a),
		ThumbnailURL:         thumbnailURL(a, 200),
	}
}

// displayImageURL picks the full-size image source: local uploads are served
// from the uploads route, imported artifacts from the catalog's CDN subject
// to the recorded permission level.
func displayImageURL(a *domain.Artifact) string {
	if !a.IsImported() {
		if a.ImagePath == "" {
			return ""
		}
		return UploadsBasePath + "/" + a.ImagePath
	}

	switch {
	case a.ImagePermissionLevel >= domain.ImagePermissionNone:
		return ""
	case a.ImagePermissionLevel == domain.ImagePermissionLimited && a.IIIFBaseURI != "":
		return fmt.Sprintf("%s/full/256,/0/default.jpg", a.IIIFBaseURI)
	default:
		return a.PrimaryImageURL
	}
}

func thumbnailURL(a *domain.Artifact, size int) string {
	if !a.IsImported() {
		if a.ImagePath == "" {
			return ""
		}
		return UploadsBasePath + "/" + a.ImagePath
	}

	if a.ImagePermissionLevel >= domain.ImagePermissionNone {
		return ""
	}
	if a.IIIFBaseURI != "" {
		if a.ImagePermissionLevel == domain.ImagePermissionLimited && size > 256 {
			size = 256
		}
		return fmt.Sprintf("%s/full/%d,/0/default.jpg", a.IIIFBaseURI, size)
	}
	return a.PrimaryImageURL
}

type ListArtifactsResponse struct {
	Items      []ArtifactResponse `json:"items"`
	Total      int                `json:"total"`
	PageSize   int                `json:"page_size"`
	NextOffset int                `json:"next_offset"`
}

type UpdateArtifactRequest struct {
	Title       *string `json:"title"`
	Artist      *string `json:"artist"`
	Culture     *string `json:"culture"`
	Period      *string `json:"period"`
	Medium      *string `json:"medium"`
	Museum      *string `json:"museum"`
	Description *string `json:"description"`
	Metadata    *string `json:"metadata"`
}

type ImportArtifactRequest struct {
	ObjectID int64 `json:"object_id" binding:"required"`
}
