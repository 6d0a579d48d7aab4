package domain

import "errors"

// ============================================================================
// Artifact Errors
// ============================================================================

var (
	ErrArtifactNotFound        = errors.New("artifact not found")
	ErrArtifactAlreadyImported = errors.New("artifact with this museum object id already exists")
	ErrInvalidArtifactTitle    = errors.New("artifact title is required")
)

// ============================================================================
// Interpolation Errors
// ============================================================================

var (
	ErrInterpolationNotFound = errors.New("interpolation not found")
)

// Validation errors
var (
	ErrInsufficientSources = errors.New("interpolation requires at least two source artifacts")
	ErrDuplicateSource     = errors.New("interpolation source artifacts must be distinct")
	ErrNegativeWeight      = errors.New("source weight must be non-negative")
	ErrWeightCountMismatch = errors.New("number of weights must match number of source artifacts")
	ErrInvalidSourceValue  = errors.New("artifact_id and weight must be numeric")
)

// ============================================================================
// Upload Errors
// ============================================================================

var (
	ErrImageRequired       = errors.New("image file is required")
	ErrUnsupportedFileType = errors.New("unsupported image file type")
	ErrFileTooLarge        = errors.New("image file exceeds the maximum upload size")
)

// ============================================================================
// Auth Errors
// ============================================================================

var (
	ErrAdminNotFound      = errors.New("admin not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUnauthorized       = errors.New("admin session required")
)

// ============================================================================
// Museum Catalog Errors
// ============================================================================

var (
	ErrMuseumUnavailable    = errors.New("museum catalog integration is not available")
	ErrMuseumObjectNotFound = errors.New("object not found in the museum catalog")
)
