package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"book-catalog-backend/internal/domains/catalog/model"
	"book-catalog-backend/internal/shared/apperrors"
	"book-catalog-backend/internal/shared/paging"
)

type fakeCatalogRepo struct {
	books     []model.Book
	findCalls int
	saveCalls int
	lastQuery string
	lastPage  paging.PageRequest
}

func (r *fakeCatalogRepo) FindBooks(_ context.Context, query string, pr paging.PageRequest) (paging.Page[model.Book], error) {
	r.findCalls++
	r.lastQuery = query
	r.lastPage = pr
	return paging.NewPage(r.books, pr.Page, pr.Size, int64(len(r.books))), nil
}

func (r *fakeCatalogRepo) FindBookByID(_ context.Context, id int64) (*model.Book, error) {
	for i := range r.books {
		if r.books[i].ID == id {
			return &r.books[i], nil
		}
	}
	return nil, model.ErrBookNotFound
}

func (r *fakeCatalogRepo) Save(_ context.Context, book model.Book) (model.Book, error) {
	r.saveCalls++
	book.ID = int64(len(r.books) + 1)
	r.books = append(r.books, book)
	return book, nil
}

// memoryCache is an in-process cache.Cache for tests, JSON-encoded like
// the redis implementation.
type memoryCache struct {
	entries        map[string][]byte
	deletePatterns []string
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string][]byte{}}
}

func (c *memoryCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	raw, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (c *memoryCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.entries[key] = raw
	return nil
}

func (c *memoryCache) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(c.entries, k)
	}
	return nil
}

func (c *memoryCache) DeletePattern(_ context.Context, pattern string) error {
	c.deletePatterns = append(c.deletePatterns, pattern)
	c.entries = map[string][]byte{}
	return nil
}

func (c *memoryCache) Ping(_ context.Context) error { return nil }

func sampleBooks() []model.Book {
	return []model.Book{
		{ID: 1, Title: "The Go Programming Language", Author: "Donovan"},
		{ID: 2, Title: "Clean Architecture", Author: "Martin"},
	}
}

func TestSearchBooks_DelegatesToRepository(t *testing.T) {
	repo := &fakeCatalogRepo{books: sampleBooks()}
	svc := NewCatalogService(repo, newMemoryCache())

	pr := paging.NewPageRequest(0, 10, "title")
	page, err := svc.SearchBooks(context.Background(), "go", pr)

	require.NoError(t, err)
	assert.Equal(t, "go", repo.lastQuery)
	assert.Equal(t, pr, repo.lastPage)
	assert.Len(t, page.Content, 2)
	assert.Equal(t, int64(2), page.Total)
}

func TestSearchBooks_SecondCallServedFromCache(t *testing.T) {
	repo := &fakeCatalogRepo{books: sampleBooks()}
	svc := NewCatalogService(repo, newMemoryCache())

	pr := paging.NewPageRequest(0, 10, "title")
	first, err := svc.SearchBooks(context.Background(), "go", pr)
	require.NoError(t, err)

	second, err := svc.SearchBooks(context.Background(), "go", pr)
	require.NoError(t, err)

	assert.Equal(t, 1, repo.findCalls)
	assert.Equal(t, first.Total, second.Total)
	assert.Equal(t, first.Content, second.Content)
}

func TestSearchBooks_DistinctRequestsUseDistinctCacheKeys(t *testing.T) {
	repo := &fakeCatalogRepo{books: sampleBooks()}
	svc := NewCatalogService(repo, newMemoryCache())

	_, err := svc.SearchBooks(context.Background(), "go", paging.NewPageRequest(0, 10, "title"))
	require.NoError(t, err)
	_, err = svc.SearchBooks(context.Background(), "go", paging.NewPageRequest(1, 10, "title"))
	require.NoError(t, err)
	_, err = svc.SearchBooks(context.Background(), "rust", paging.NewPageRequest(0, 10, "title"))
	require.NoError(t, err)

	assert.Equal(t, 3, repo.findCalls)
}

func TestGetBookByID(t *testing.T) {
	repo := &fakeCatalogRepo{books: sampleBooks()}
	svc := NewCatalogService(repo, newMemoryCache())

	book, err := svc.GetBookByID(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, book)
	assert.Equal(t, "The Go Programming Language", book.Title)

	// Absence surfaces as nil, nil rather than an error.
	book, err = svc.GetBookByID(context.Background(), 999)
	require.NoError(t, err)
	assert.Nil(t, book)
}

func TestAddBook_Validation(t *testing.T) {
	tests := []struct {
		name    string
		book    model.Book
		wantMsg string
	}{
		{name: "missing_title", book: model.Book{Author: "Martin"}, wantMsg: "Title is required"},
		{name: "blank_title", book: model.Book{Title: "  ", Author: "Martin"}, wantMsg: "Title is required"},
		{name: "missing_author", book: model.Book{Title: "Clean Code"}, wantMsg: "Author is required"},
		{
			// Title is checked before author.
			name:    "both_missing_title_wins",
			book:    model.Book{},
			wantMsg: "Title is required",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeCatalogRepo{}
			svc := NewCatalogService(repo, newMemoryCache())

			_, err := svc.AddBook(context.Background(), tc.book)

			require.Error(t, err)
			assert.True(t, apperrors.IsValidation(err))
			assert.Equal(t, tc.wantMsg, err.Error())
			assert.Zero(t, repo.saveCalls)
		})
	}
}

func TestAddBook_InvalidatesSearchCache(t *testing.T) {
	repo := &fakeCatalogRepo{books: sampleBooks()}
	cache := newMemoryCache()
	svc := NewCatalogService(repo, cache)

	pr := paging.NewPageRequest(0, 10, "title")
	_, err := svc.SearchBooks(context.Background(), "go", pr)
	require.NoError(t, err)
	assert.Len(t, cache.entries, 1)

	saved, err := svc.AddBook(context.Background(), model.Book{Title: "New Book", Author: "Someone"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), saved.ID)
	assert.Equal(t, []string{"books:search:*"}, cache.deletePatterns)

	// The next search sees the new catalog state.
	_, err = svc.SearchBooks(context.Background(), "go", pr)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.findCalls)
}
