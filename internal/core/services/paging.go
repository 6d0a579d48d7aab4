package services

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// ClampPageSize applies the default and upper bound for list page sizes.
// Handlers echo the clamped value so the reported page size matches what
// the repository was actually asked for.
func ClampPageSize(limit int) int {
	if limit <= 0 {
		return defaultPageSize
	}
	if limit > maxPageSize {
		return maxPageSize
	}
	return limit
}
