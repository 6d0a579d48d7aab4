package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"relic-gallery-service/internal/adapters/primary/http/dto"
)

func (h *Handler) ListProgressions(c *gin.Context) {
	progressions, err := h.progressionSvc.ListAll(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("list progressions failed")
		mapDomainError(c, err)
		return
	}

	items := make([]dto.ProgressionResponse, 0, len(progressions))
	for _, p := range progressions {
		items = append(items, dto.ToProgressionResponse(p))
	}

	c.JSON(http.StatusOK, dto.ListProgressionsResponse{
		Items: items,
		Total: len(items),
	})
}
