package domain

import "errors"

// ErrNotFound is the sentinel repositories return when a row is absent.
// Usecases translate it into the owning module's domain error.
var ErrNotFound = errors.New("resource not found")

// PageMeta describes the position of a page inside a listing.
type PageMeta struct {
	CurrentPage     int   `json:"currentPage"`
	ItemsPerPage    int   `json:"itemsPerPage"`
	TotalItems      int64 `json:"totalItems"`
	TotalPages      int   `json:"totalPages"`
	HasNextPage     bool  `json:"hasNextPage"`
	HasPreviousPage bool  `json:"hasPreviousPage"`
}

// Page is the envelope every list endpoint returns.
type Page[T any] struct {
	Items []T      `json:"items"`
	Meta  PageMeta `json:"meta"`
}

func NewPage[T any](items []T, page, limit int, totalItems int64) Page[T] {
	if items == nil {
		items = []T{}
	}
	if limit < 1 {
		limit = 1
	}
	totalPages := int((totalItems + int64(limit) - 1) / int64(limit))
	return Page[T]{
		Items: items,
		Meta: PageMeta{
			CurrentPage:     page,
			ItemsPerPage:    limit,
			TotalItems:      totalItems,
			TotalPages:      totalPages,
			HasNextPage:     page < totalPages,
			HasPreviousPage: page > 1,
		},
	}
}

// ListOptions are the pagination knobs shared by list endpoints.
type ListOptions struct {
	Page  int
	Limit int
}

// Normalize clamps pagination values to the defaults the API documents.
func (o *ListOptions) Normalize() {
	if o.Page < 1 {
		o.Page = 1
	}
	if o.Limit < 1 {
		o.Limit = 10
	}
}

// Offset converts the 1-based page into a SQL offset.
func (o ListOptions) Offset() int {
	return (o.Page - 1) * o.Limit
}
