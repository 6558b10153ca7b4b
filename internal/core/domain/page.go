package domain

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// NormalizePage applies the listing defaults: page starts at 1 and page
// size falls in [1, MaxPageSize], DefaultPageSize when unset.
func NormalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return page, min(pageSize, MaxPageSize)
}
