package handlers

import (
	"github.com/gin-gonic/gin"

	"relic-gallery-service/internal/adapters/primary/http/middleware"
	"relic-gallery-service/internal/core/services"
)

// Slack on top of the image size limit for the other multipart form fields.
const uploadFormOverhead = 1 << 20

type Handler struct {
	artifactSvc      *services.ArtifactService
	interpolationSvc *services.InterpolationService
	progressionSvc   *services.ProgressionService
	authSvc          *services.AuthService
	museumSvc        *services.MuseumService
	maxUploadBytes   int64
}

func New(
	artifactSvc *services.ArtifactService,
	interpolationSvc *services.InterpolationService,
	progressionSvc *services.ProgressionService,
	authSvc *services.AuthService,
	museumSvc *services.MuseumService,
	maxUploadBytes int64,
) *Handler {
	return &Handler{
		artifactSvc:      artifactSvc,
		interpolationSvc: interpolationSvc,
		progressionSvc:   progressionSvc,
		authSvc:          authSvc,
		museumSvc:        museumSvc,
		maxUploadBytes:   maxUploadBytes,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	// Artifacts
	r.GET("/artifacts", h.ListArtifacts)
	r.GET("/artifacts/:id", h.GetArtifact)
	r.GET("/artifacts/:id/interpolations", h.ListArtifactInterpolations)

	// Interpolations
	r.GET("/interpolations", h.ListInterpolations)
	r.GET("/interpolations/:id", h.GetInterpolation)

	// Progressions (derived, read-only)
	r.GET("/progressions", h.ListProgressions)

	// Museum catalog proxy
	r.GET("/museum/search", h.SearchMuseum)
	r.GET("/museum/objects/:id", h.GetMuseumObject)

	// Auth
	r.POST("/auth/login", h.Login)
	r.POST("/auth/logout", h.Logout)
	r.GET("/auth/session", h.Session)

	// Admin-gated mutations
	admin := r.Group("", middleware.AdminRequired(h.authSvc))
	admin.POST("/artifacts", h.CreateArtifact)
	admin.POST("/artifacts/import", h.ImportArtifact)
	admin.PATCH("/artifacts/:id", h.UpdateArtifact)
	admin.DELETE("/artifacts/:id", h.DeleteArtifact)
	admin.POST("/interpolations", h.CreateInterpolation)
	admin.PATCH("/interpolations/:id", h.UpdateInterpolation)
	admin.DELETE("/interpolations/:id", h.DeleteInterpolation)
}
