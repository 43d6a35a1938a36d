package repository

import (
	"context"
	"errors"

	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrResourceNotFound is returned by a Collection when no record has the requested id.
var ErrResourceNotFound = errors.New("resource not found")

// Collection is the minimal record contract the ownership guard and media orchestrator rely on.
type Collection[T entity.OwnedResource] interface {
	// FindByID loads one record.
	FindByID(ctx context.Context, id uuid.UUID) (T, error)

	// Create persists a new record and fills its generated fields.
	Create(ctx context.Context, item T) error

	// FindByIDAndUpdate loads the record, applies mutate and saves the result atomically.
	// The returned value is the record as written.
	FindByIDAndUpdate(ctx context.Context, id uuid.UUID, mutate func(T) error) (T, error)

	// FindByIDAndDelete removes the record and returns it as it was before deletion.
	FindByIDAndDelete(ctx context.Context, id uuid.UUID) (T, error)
}

// Page selects a window of a listing. Page numbers start at 1.
type Page struct {
	Page  int
	Limit int
}

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

// Normalize clamps the page to sane bounds.
func (p Page) Normalize() Page {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = defaultPageLimit
	}
	if p.Limit > maxPageLimit {
		p.Limit = maxPageLimit
	}

	return p
}

// Offset returns the number of records to skip.
func (p Page) Offset() int {
	n := p.Normalize()

	return (n.Page - 1) * n.Limit
}

// PageResult is one page of a listing plus the total size of the listing.
type PageResult[T any] struct {
	Items []T
	Total int64
	Page  int
	Limit int
}

// TotalPages returns how many pages the listing spans; an empty listing has one page.
func (r PageResult[T]) TotalPages() int {
	if r.Limit <= 0 || r.Total <= int64(r.Limit) {
		return 1
	}

	return int((r.Total + int64(r.Limit) - 1) / int64(r.Limit))
}
