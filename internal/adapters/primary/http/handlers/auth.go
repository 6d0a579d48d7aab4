package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"relic-gallery-service/internal/adapters/primary/http/dto"
	"relic-gallery-service/internal/adapters/primary/http/middleware"
	"relic-gallery-service/internal/core/domain"
)

func (h *Handler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, admin, err := h.authSvc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		log.WithField("username", req.Username).Info("login rejected")
		mapDomainError(c, err)
		return
	}

	c.SetCookie(middleware.SessionCookie, token, int(h.authSvc.SessionTTL().Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, dto.SessionResponse{AdminID: admin.ID, Username: admin.Username})
}

func (h *Handler) Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"status": "logged out"})
}

func (h *Handler) Session(c *gin.Context) {
	token, err := c.Cookie(middleware.SessionCookie)
	if err != nil || token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": domain.ErrUnauthorized.Error()})
		return
	}

	session, err := h.authSvc.Verify(token)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SessionResponse{AdminID: session.AdminID, Username: session.Username})
}
