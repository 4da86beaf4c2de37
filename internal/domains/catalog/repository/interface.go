package repository

import (
	"context"

	"book-catalog-backend/internal/domains/catalog/model"
	"book-catalog-backend/internal/shared/paging"
)

// CatalogRepository is the storage boundary for the book catalog.
type CatalogRepository interface {
	// FindBooks runs a case-insensitive substring search over title and
	// author ("match all" when query is blank), sorts by the column mapped
	// from the page request, slices with LIMIT/OFFSET and returns the
	// authoritative total count of matching rows.
	FindBooks(ctx context.Context, query string, pr paging.PageRequest) (paging.Page[model.Book], error)

	// FindBookByID returns model.ErrBookNotFound when the id is unknown.
	FindBookByID(ctx context.Context, id int64) (*model.Book, error)

	// Save persists a new book and returns it with its assigned identity.
	Save(ctx context.Context, book model.Book) (model.Book, error)
}
