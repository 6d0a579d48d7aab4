package services

import (
	"context"
	"strings"

	"relic-gallery-service/internal/core/domain"
	ports "relic-gallery-service/internal/core/ports/output"
)

type MuseumService struct {
	client ports.MuseumClient
}

func NewMuseumService(client ports.MuseumClient) *MuseumService {
	return &MuseumService{client: client}
}

// Search proxies a keyword search against the museum catalog. Queries
// shorter than two characters return no suggestions.
func (s *MuseumService) Search(ctx context.Context, query string, size int) ([]ports.MuseumSearchResult, error) {
	if s.client == nil || !s.client.IsAvailable() {
		return nil, domain.ErrMuseumUnavailable
	}

	query = strings.TrimSpace(query)
	if len(query) < 2 {
		return []ports.MuseumSearchResult{}, nil
	}

	if size <= 0 {
		size = 5
	}
	if size > 25 {
		size = 25
	}

	return s.client.Search(ctx, query, size)
}

func (s *MuseumService) GetObject(ctx context.Context, objectID int64) (*ports.MuseumObject, error) {
	if s.client == nil || !s.client.IsAvailable() {
		return nil, domain.ErrMuseumUnavailable
	}
	return s.client.GetObject(ctx, objectID)
}
