package dto

import ports "relic-gallery-service/internal/core/ports/output"

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type SessionResponse struct {
	AdminID  int64  `json:"admin_id"`
	Username string `json:"username"`
}

type MuseumSearchResponse struct {
	Suggestions []ports.MuseumSearchResult `json:"suggestions"`
}
