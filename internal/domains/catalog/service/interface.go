package service

import (
	"context"

	"book-catalog-backend/internal/domains/catalog/model"
	"book-catalog-backend/internal/shared/paging"
)

type ServiceInterface interface {
	// SearchBooks delegates matching, sorting, slicing and counting to the
	// repository; an empty query means "match all".
	SearchBooks(ctx context.Context, query string, pr paging.PageRequest) (paging.Page[model.Book], error)

	// GetBookByID returns (nil, nil) when the book does not exist, so the
	// caller decides how absence is surfaced.
	GetBookByID(ctx context.Context, id int64) (*model.Book, error)

	// AddBook validates title then author and persists via the repository,
	// which assigns the identity.
	AddBook(ctx context.Context, book model.Book) (model.Book, error)
}
