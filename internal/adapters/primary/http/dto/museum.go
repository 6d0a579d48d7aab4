package dto

import ports "relic-gallery-service/internal/core/ports/output"

type MuseumObjectResponse struct {
	ObjectID             int64  `json:"object_id"`
	ObjectNumber         string `json:"object_number,omitempty"`
	Title                string `json:"title"`
	Artist               string `json:"artist,omitempty"`
	Culture              string `json:"culture,omitempty"`
	Period               string `json:"period,omitempty"`
	Medium               string `json:"medium,omitempty"`
	Museum               string `json:"museum,omitempty"`
	Description          string `json:"description,omitempty"`
	Classification       string `json:"classification,omitempty"`
	Dated                string `json:"dated,omitempty"`
	Century              string `json:"century,omitempty"`
	Technique            string `json:"technique,omitempty"`
	Dimensions           string `json:"dimensions,omitempty"`
	Provenance           string `json:"provenance,omitempty"`
	CreditLine           string `json:"credit_line,omitempty"`
	Department           string `json:"department,omitempty"`
	Division             string `json:"division,omitempty"`
	Copyright            string `json:"copyright,omitempty"`
	ImagePermissionLevel int    `json:"image_permission_level"`
	CatalogURL           string `json:"catalog_url,omitempty"`
	PrimaryImageURL      string `json:"primary_image_url,omitempty"`
	IIIFBaseURI          string `json:"iiif_base_uri,omitempty"`
}

func ToMuseumObjectResponse(obj *ports.MuseumObject) MuseumObjectResponse {
	return MuseumObjectResponse{
		ObjectID:             obj.ObjectID,
		ObjectNumber:         obj.ObjectNumber,
		Title:                obj.Title,
		Artist:               obj.Artist,
		Culture:              obj.Culture,
		Period:               obj.Period,
		Medium:               obj.Medium,
		Museum:               obj.Museum,
		Description:          obj.Description,
		Classification:       obj.Classification,
		Dated:                obj.Dated,
		Century:              obj.Century,
		Technique:            obj.Technique,
		Dimensions:           obj.Dimensions,
		Provenance:           obj.Provenance,
		CreditLine:           obj.CreditLine,
		Department:           obj.Department,
		Division:             obj.Division,
		Copyright:            obj.Copyright,
		ImagePermissionLevel: obj.ImagePermissionLevel,
		CatalogURL:           obj.CatalogURL,
		PrimaryImageURL:      obj.PrimaryImageURL,
		IIIFBaseURI:          obj.IIIFBaseURI,
	}
}
