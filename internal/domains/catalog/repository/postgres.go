package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"book-catalog-backend/internal/domains/catalog/model"
	"book-catalog-backend/internal/shared/paging"
)

type postgresCatalogRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresCatalogRepository(pool *pgxpool.Pool) CatalogRepository {
	return &postgresCatalogRepository{pool: pool}
}

// sortColumn maps the requested sort key onto a whitelisted column.
// Anything unrecognized falls back to title.
func sortColumn(sort string) string {
	switch sort {
	case "author":
		return "author"
	case "year":
		return "publication_year"
	default:
		return "title"
	}
}

func (r *postgresCatalogRepository) FindBooks(
	ctx context.Context,
	query string,
	pr paging.PageRequest,
) (paging.Page[model.Book], error) {
	var empty paging.Page[model.Book]

	searchSQL := "SELECT id, title, author, isbn, publication_year FROM books"
	countSQL := "SELECT COUNT(*) FROM books"
	orderSQL := fmt.Sprintf(" ORDER BY %s", sortColumn(pr.Sort))

	var (
		rows  pgx.Rows
		total int64
		err   error
	)

	if strings.TrimSpace(query) != "" {
		pattern := "%" + strings.ToLower(query) + "%"
		whereSQL := " WHERE LOWER(title) LIKE $1 OR LOWER(author) LIKE $1"

		rows, err = r.pool.Query(ctx,
			searchSQL+whereSQL+orderSQL+" LIMIT $2 OFFSET $3",
			pattern, pr.Size, pr.Offset())
		if err != nil {
			return empty, fmt.Errorf("failed to search books: %w", err)
		}

		books, scanErr := scanBooks(rows)
		if scanErr != nil {
			return empty, scanErr
		}

		if err := r.pool.QueryRow(ctx, countSQL+whereSQL, pattern).Scan(&total); err != nil {
			return empty, fmt.Errorf("failed to count books: %w", err)
		}

		return paging.NewPage(books, pr.Page, pr.Size, total), nil
	}

	rows, err = r.pool.Query(ctx,
		searchSQL+orderSQL+" LIMIT $1 OFFSET $2",
		pr.Size, pr.Offset())
	if err != nil {
		return empty, fmt.Errorf("failed to list books: %w", err)
	}

	books, scanErr := scanBooks(rows)
	if scanErr != nil {
		return empty, scanErr
	}

	if err := r.pool.QueryRow(ctx, countSQL).Scan(&total); err != nil {
		return empty, fmt.Errorf("failed to count books: %w", err)
	}

	return paging.NewPage(books, pr.Page, pr.Size, total), nil
}

func (r *postgresCatalogRepository) FindBookByID(ctx context.Context, id int64) (*model.Book, error) {
	query := "SELECT id, title, author, isbn, publication_year FROM books WHERE id = $1"

	book := &model.Book{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&book.ID,
		&book.Title,
		&book.Author,
		&book.ISBN,
		&book.Year,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to find book: %w", err)
	}

	return book, nil
}

func (r *postgresCatalogRepository) Save(ctx context.Context, book model.Book) (model.Book, error) {
	query := `
		INSERT INTO books (title, author, isbn, publication_year)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.pool.QueryRow(ctx, query,
		book.Title,
		book.Author,
		book.ISBN,
		book.Year,
	).Scan(&book.ID)
	if err != nil {
		return model.Book{}, fmt.Errorf("failed to save book: %w", err)
	}

	return book, nil
}

func scanBooks(rows pgx.Rows) ([]model.Book, error) {
	defer rows.Close()

	books := make([]model.Book, 0)
	for rows.Next() {
		var book model.Book
		if err := rows.Scan(
			&book.ID,
			&book.Title,
			&book.Author,
			&book.ISBN,
			&book.Year,
		); err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, book)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read books: %w", err)
	}

	return books, nil
}
