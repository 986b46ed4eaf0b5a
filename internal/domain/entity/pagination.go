package entity

// Pagination describes one page of a listing.
type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalUsers  int64 `json:"totalUsers"`
	Limit       int   `json:"limit"`
}

// NewPagination computes the page count for total items split into pages of limit.
func NewPagination(page, limit int, total int64) Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}

	return Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalUsers:  total,
		Limit:       limit,
	}
}
