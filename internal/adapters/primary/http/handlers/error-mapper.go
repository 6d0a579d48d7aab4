package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"relic-gallery-service/internal/core/domain"
)

func mapDomainError(c *gin.Context, err error) {
	switch {
	// Not found errors
	case errors.Is(err, domain.ErrArtifactNotFound),
		errors.Is(err, domain.ErrInterpolationNotFound),
		errors.Is(err, domain.ErrMuseumObjectNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	// Conflict errors
	case errors.Is(err, domain.ErrArtifactAlreadyImported):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})

	// Bad request / validation errors
	case errors.Is(err, domain.ErrInvalidArtifactTitle),
		errors.Is(err, domain.ErrInsufficientSources),
		errors.Is(err, domain.ErrDuplicateSource),
		errors.Is(err, domain.ErrNegativeWeight),
		errors.Is(err, domain.ErrWeightCountMismatch),
		errors.Is(err, domain.ErrInvalidSourceValue),
		errors.Is(err, domain.ErrImageRequired),
		errors.Is(err, domain.ErrUnsupportedFileType):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	case errors.Is(err, domain.ErrFileTooLarge):
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})

	// Auth errors
	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})

	// Service unavailable errors
	case errors.Is(err, domain.ErrMuseumUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
