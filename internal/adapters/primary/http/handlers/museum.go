package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"relic-gallery-service/internal/adapters/primary/http/dto"
)

func (h *Handler) SearchMuseum(c *gin.Context) {
	size, _ := strconv.Atoi(c.DefaultQuery("size", "5"))

	results, err := h.museumSvc.Search(c.Request.Context(), c.Query("q"), size)
	if err != nil {
		log.WithError(err).Error("museum search failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MuseumSearchResponse{Suggestions: results})
}

func (h *Handler) GetMuseumObject(c *gin.Context) {
	objectID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid object id"})
		return
	}

	obj, err := h.museumSvc.GetObject(c.Request.Context(), objectID)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMuseumObjectResponse(obj))
}
