// Package paging provides the pagination primitive and the result envelope
// shared by every list endpoint. Filtering happens before pagination; the
// page is then cut out of the filtered slice.
package paging

const (
	// DefaultPageNumber is used when the requested page number is not positive.
	DefaultPageNumber = 1

	// DefaultPageSize is used when the requested page size is not positive.
	DefaultPageSize = 10
)

// Page describes where a slice of items sits inside the full result set.
type Page struct {
	TotalCount  int  `json:"totalCount"`
	PageSize    int  `json:"pageSize"`
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	HasNext     bool `json:"hasNext"`
	HasPrevious bool `json:"hasPrevious"`
}

// Message carries a human-readable note attached to an envelope.
type Message struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// Envelope is the uniform response shape for list and detail results.
type Envelope[T any] struct {
	Items      []T       `json:"items"`
	Pagination Page      `json:"pagination"`
	Messages   []Message `json:"messages,omitempty"`
	StatusCode int       `json:"statusCode"`
}

// Normalize replaces non-positive page parameters with the defaults.
func Normalize(pageNumber, pageSize int) (int, int) {
	if pageNumber <= 0 {
		pageNumber = DefaultPageNumber
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return pageNumber, pageSize
}

// NewPage computes page metadata for a total item count.
// totalPages = ceil(totalCount/pageSize); an out-of-range page is not an
// error, it simply has no next page and an empty item slice.
func NewPage(totalCount, pageNumber, pageSize int) Page {
	pageNumber, pageSize = Normalize(pageNumber, pageSize)

	totalPages := (totalCount + pageSize - 1) / pageSize

	return Page{
		TotalCount:  totalCount,
		PageSize:    pageSize,
		CurrentPage: pageNumber,
		TotalPages:  totalPages,
		HasNext:     pageNumber < totalPages,
		HasPrevious: pageNumber > 1,
	}
}

// Paginate cuts the requested page out of an already filtered slice.
// Requesting a page past the end yields an empty slice, not an error.
func Paginate[T any](items []T, pageNumber, pageSize int) []T {
	pageNumber, pageSize = Normalize(pageNumber, pageSize)

	start := (pageNumber - 1) * pageSize
	if start >= len(items) {
		return []T{}
	}

	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}

	return items[start:end]
}

// NewEnvelope paginates items and wraps the page with its metadata.
func NewEnvelope[T any](items []T, pageNumber, pageSize, statusCode int, messages ...Message) Envelope[T] {
	return Envelope[T]{
		Items:      Paginate(items, pageNumber, pageSize),
		Pagination: NewPage(len(items), pageNumber, pageSize),
		Messages:   messages,
		StatusCode: statusCode,
	}
}
