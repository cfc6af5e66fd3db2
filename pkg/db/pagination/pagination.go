package pagination

import (
	"errors"
	"math"
)

const (
	DefaultPerPage = 15
	MaxPerPage     = 100
)

var (
	ErrInvalidPage    = errors.New("invalid_page")
	ErrInvalidPerPage = errors.New("invalid_per_page")
)

// Page selects one window of an id-ordered listing.
type Page struct {
	Number  int
	PerPage int
}

// NewPage validates caller input. Zero values fall back to the first page and
// defaultPerPage; perPage above maxPerPage is clamped.
func NewPage(number, perPage, defaultPerPage, maxPerPage int) (Page, error) {
	if number < 0 {
		return Page{}, ErrInvalidPage
	}
	if perPage < 0 {
		return Page{}, ErrInvalidPerPage
	}
	if number == 0 {
		number = 1
	}
	if defaultPerPage <= 0 {
		defaultPerPage = DefaultPerPage
	}
	if maxPerPage <= 0 {
		maxPerPage = MaxPerPage
	}
	if perPage == 0 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	if number > MaxNumber(perPage) {
		return Page{}, ErrInvalidPage
	}
	return Page{Number: number, PerPage: perPage}, nil
}

// MaxNumber is the highest page whose offset and last row index still fit in
// an int for the given page size.
func MaxNumber(perPage int) int {
	if perPage <= 0 {
		return math.MaxInt
	}
	return math.MaxInt / perPage
}

func (p Page) Offset() int {
	if p.Number <= 1 {
		return 0
	}
	return (p.Number - 1) * p.PerPage
}

func (p Page) Limit() int {
	return p.PerPage
}

// Meta is the listing envelope metadata.
type Meta struct {
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	Total       int64 `json:"total"`
	LastPage    int   `json:"last_page"`
	From        *int  `json:"from"`
	To          *int  `json:"to"`
}

// NewMeta builds metadata for a page that returned count rows out of total.
func NewMeta(page Page, total int64, count int) Meta {
	lastPage := 1
	if page.PerPage > 0 && total > 0 {
		lastPage = int((total + int64(page.PerPage) - 1) / int64(page.PerPage))
	}

	meta := Meta{
		CurrentPage: page.Number,
		PerPage:     page.PerPage,
		Total:       total,
		LastPage:    lastPage,
	}
	if count > 0 {
		from := page.Offset() + 1
		to := page.Offset() + count
		meta.From = &from
		meta.To = &to
	}
	return meta
}

// Result is one page of items plus its metadata.
type Result[T any] struct {
	Items []T
	Meta  Meta
}
