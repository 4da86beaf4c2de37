package service

import (
	"context"
	"crypto/md5"
	"errors"
	"fmt"
	"strings"
	"time"

	"book-catalog-backend/internal/domains/catalog/model"
	"book-catalog-backend/internal/domains/catalog/repository"
	"book-catalog-backend/internal/shared/apperrors"
	"book-catalog-backend/internal/shared/paging"
	"book-catalog-backend/pkg/cache"
	"book-catalog-backend/pkg/logger"
)

const searchCacheTTL = 10 * time.Minute

type CatalogService struct {
	repo  repository.CatalogRepository
	cache cache.Cache
}

func NewCatalogService(repo repository.CatalogRepository, cache cache.Cache) ServiceInterface {
	return &CatalogService{repo: repo, cache: cache}
}

func (s *CatalogService) SearchBooks(
	ctx context.Context,
	query string,
	pr paging.PageRequest,
) (paging.Page[model.Book], error) {
	cacheKey := searchCacheKey(query, pr)

	var cached paging.Page[model.Book]
	found, err := s.cache.Get(ctx, cacheKey, &cached)
	if err != nil {
		logger.Warn("search cache read failed", map[string]interface{}{
			"key":   cacheKey,
			"error": err.Error(),
		})
	}
	if found {
		return cached, nil
	}

	result, err := s.repo.FindBooks(ctx, query, pr)
	if err != nil {
		return paging.Page[model.Book]{}, fmt.Errorf("search books failed: %w", err)
	}

	logger.Info("books found", map[string]interface{}{
		"query": query,
		"count": len(result.Content),
		"total": result.Total,
	})

	if err := s.cache.Set(ctx, cacheKey, result, searchCacheTTL); err != nil {
		logger.Warn("search cache write failed", map[string]interface{}{
			"key":   cacheKey,
			"error": err.Error(),
		})
	}

	return result, nil
}

func (s *CatalogService) GetBookByID(ctx context.Context, id int64) (*model.Book, error) {
	book, err := s.repo.FindBookByID(ctx, id)
	if err != nil {
		// Absence is not an error at this layer; callers decide.
		if errors.Is(err, model.ErrBookNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get book failed: %w", err)
	}

	return book, nil
}

func (s *CatalogService) AddBook(ctx context.Context, book model.Book) (model.Book, error) {
	if strings.TrimSpace(book.Title) == "" {
		return model.Book{}, apperrors.NewValidation("Title is required")
	}
	if strings.TrimSpace(book.Author) == "" {
		return model.Book{}, apperrors.NewValidation("Author is required")
	}

	saved, err := s.repo.Save(ctx, book)
	if err != nil {
		return model.Book{}, fmt.Errorf("add book failed: %w", err)
	}

	logger.Info("book added", map[string]interface{}{
		"id":    saved.ID,
		"title": saved.Title,
	})

	if err := s.cache.DeletePattern(ctx, "books:search:*"); err != nil {
		logger.Warn("search cache invalidation failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	return saved, nil
}

func searchCacheKey(query string, pr paging.PageRequest) string {
	data := fmt.Sprintf("q=%s|page=%d|size=%d|sort=%s", query, pr.Page, pr.Size, pr.Sort)
	return fmt.Sprintf("books:search:%x", md5.Sum([]byte(data)))
}
