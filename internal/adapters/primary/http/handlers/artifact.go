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

func (h *Handler) ListArtifacts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	filter := ports.ArtifactListFilter{
		Search: c.Query("search"),
		SortBy: c.Query("sort_by"),
		Order:  c.Query("order"),
		Limit:  limit,
		Offset: offset,
	}

	artifacts, total, err := h.artifactSvc.List(c.Request.Context(), filter)
	if err != nil {
		log.WithError(err).Error("list artifacts failed")
		mapDomainError(c, err)
		return
	}

	items := make([]dto.ArtifactResponse, 0, len(artifacts))
	for _, a := range artifacts {
		items = append(items, dto.ToArtifactResponse(a))
	}

	c.JSON(http.StatusOK, dto.ListArtifactsResponse{
		Items:      items,
		Total:      total,
		PageSize:   services.ClampPageSize(limit),
		NextOffset: offset + len(items),
	})
}

func (h *Handler) GetArtifact(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid artifact id"})
		return
	}

	artifact, err := h.artifactSvc.Get(c.Request.Context(), id)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToArtifactResponse(artifact))
}

func (h *Handler) CreateArtifact(c *gin.Context) {
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

	reader, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable image upload"})
		return
	}
	defer reader.Close()

	upload := services.ArtifactUpload{
		Title:       c.PostForm("title"),
		Artist:      c.PostForm("artist"),
		Culture:     c.PostForm("culture"),
		Period:      c.PostForm("period"),
		Medium:      c.PostForm("medium"),
		Museum:      c.PostForm("museum"),
		Description: c.PostForm("description"),
		Metadata:    c.PostForm("metadata"),
		ImageName:   file.Filename,
		Image:       reader,
	}

	artifact, err := h.artifactSvc.Create(c.Request.Context(), upload)
	if err != nil {
		log.WithError(err).Error("create artifact failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToArtifactResponse(artifact))
}

func (h *Handler) ImportArtifact(c *gin.Context) {
	var req dto.ImportArtifactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	artifact, err := h.artifactSvc.ImportFromMuseum(c.Request.Context(), req.ObjectID)
	if err != nil {
		log.WithError(err).WithField("object_id", req.ObjectID).Error("import artifact failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToArtifactResponse(artifact))
}

func (h *Handler) UpdateArtifact(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid artifact id"})
		return
	}

	var req dto.UpdateArtifactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := make(map[string]interface{})
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Artist != nil {
		updates["artist"] = *req.Artist
	}
	if req.Culture != nil {
		updates["culture"] = *req.Culture
	}
	if req.Period != nil {
		updates["period"] = *req.Period
	}
	if req.Medium != nil {
		updates["medium"] = *req.Medium
	}
	if req.Museum != nil {
		updates["museum"] = *req.Museum
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Metadata != nil {
		updates["metadata"] = *req.Metadata
	}

	artifact, err := h.artifactSvc.Update(c.Request.Context(), id, updates)
	if err != nil {
		log.WithError(err).Error("update artifact failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToArtifactResponse(artifact))
}

func (h *Handler) DeleteArtifact(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid artifact id"})
		return
	}

	if err := h.artifactSvc.Delete(c.Request.Context(), id); err != nil {
		log.WithError(err).Error("delete artifact failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func parseID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
