package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"relic-gallery-service/internal/adapters/primary/http/dto"
	"relic-gallery-service/internal/core/domain"
	ports "relic-gallery-service/internal/core/ports/output"
	"relic-gallery-service/internal/core/services"
)

func (h *Handler) ListInterpolations(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	filter := ports.InterpolationListFilter{
		Model:  c.Query("model"),
		Limit:  limit,
		Offset: offset,
	}

	interps, total, err := h.interpolationSvc.List(c.Request.Context(), filter)
	if err != nil {
		log.WithError(err).Error("list interpolations failed")
		mapDomainError(c, err)
		return
	}

	items := make([]dto.InterpolationResponse, 0, len(interps))
	for _, interp := range interps {
		items = append(items, dto.ToInterpolationResponse(interp, nil))
	}

	c.JSON(http.StatusOK, dto.ListInterpolationsResponse{
		Items:      items,
		Total:      total,
		PageSize:   services.ClampPageSize(limit),
		NextOffset: offset + len(items),
	})
}

func (h *Handler) GetInterpolation(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid interpolation id"})
		return
	}

	interp, err := h.interpolationSvc.Get(c.Request.Context(), id)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	// Detail view embeds the source artifacts alongside their weights.
	ids := make([]int64, 0, len(interp.Sources))
	for _, s := range interp.Sources {
		ids = append(ids, s.ArtifactID)
	}
	artifacts, err := h.artifactSvc.ListByIDs(c.Request.Context(), ids)
	if err != nil {
		log.WithError(err).Error("load interpolation sources failed")
		mapDomainError(c, err)
		return
	}
	byID := make(map[int64]*domain.Artifact, len(artifacts))
	for _, a := range artifacts {
		byID[a.ID] = a
	}

	c.JSON(http.StatusOK, dto.ToInterpolationResponse(interp, byID))
}

func (h *Handler) ListArtifactInterpolations(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid artifact id"})
		return
	}

	interps, err := h.interpolationSvc.ListByArtifact(c.Request.Context(), id)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	items := make([]dto.InterpolationResponse, 0, len(interps))
	for _, interp := range interps {
		items = append(items, dto.ToInterpolationResponse(interp, nil))
	}

	c.JSON(http.StatusOK, dto.ListInterpolationsResponse{
		Items: items,
		Total: len(items),
	})
}

func (h *Handler) CreateInterpolation(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes+uploadFormOverhead)

	file, err := c.FormFile("image")
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			mapDomainError(c, domain.ErrFileTooLarge)
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrImageRequired.Error()})
		return
	}
	if file.Size > h.maxUploadBytes {
		mapDomainError(c, domain.ErrFileTooLarge)
		return
	}

	sources, err := parseSourceForm(c)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	reader, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable image upload"})
		return
	}
	defer reader.Close()

	upload := services.InterpolationUpload{
		Model:       c.PostForm("model"),
		Description: c.PostForm("description"),
		ImageName:   file.Filename,
		Image:       reader,
		Sources:     sources,
	}

	interp, err := h.interpolationSvc.Create(c.Request.Context(), upload)
	if err != nil {
		log.WithError(err).Error("create interpolation failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToInterpolationResponse(interp, nil))
}

func (h *Handler) UpdateInterpolation(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid interpolation id"})
		return
	}

	var req dto.UpdateInterpolationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := make(map[string]interface{})
	if req.Model != nil {
		updates["model"] = *req.Model
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}

	sources := make([]domain.InterpolationSource, 0, len(req.Sources))
	for _, s := range req.Sources {
		sources = append(sources, domain.InterpolationSource{
			ArtifactID: s.ArtifactID,
			Weight:     s.Weight,
		})
	}

	interp, err := h.interpolationSvc.Update(c.Request.Context(), id, updates, sources)
	if err != nil {
		log.WithError(err).Error("update interpolation failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToInterpolationResponse(interp, nil))
}

func (h *Handler) DeleteInterpolation(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid interpolation id"})
		return
	}

	if err := h.interpolationSvc.Delete(c.Request.Context(), id); err != nil {
		log.WithError(err).Error("delete interpolation failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// parseSourceForm reads the repeated artifact_id/weight form fields of an
// interpolation upload.
func parseSourceForm(c *gin.Context) ([]domain.InterpolationSource, error) {
	artifactIDs := c.PostFormArray("artifact_id")
	weights := c.PostFormArray("weight")

	if len(artifactIDs) != len(weights) {
		return nil, domain.ErrWeightCountMismatch
	}

	sources := make([]domain.InterpolationSource, 0, len(artifactIDs))
	for i := range artifactIDs {
		artifactID, err := strconv.ParseInt(artifactIDs[i], 10, 64)
		if err != nil {
			return nil, domain.ErrInvalidSourceValue
		}
		weight, err := strconv.ParseFloat(weights[i], 64)
		if err != nil {
			return nil, domain.ErrInvalidSourceValue
		}
		sources = append(sources, domain.InterpolationSource{
			ArtifactID: artifactID,
			Weight:     weight,
		})
	}
	return sources, nil
}
