package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"scibind/internal/models"
)

// ErrBinderNotFound is returned when no binder has the requested slug
var ErrBinderNotFound = errors.New("binder not found")

// BinderStore loads binders from the database
type BinderStore struct {
	db *gorm.DB
}

// NewBinderStore creates a BinderStore
func NewBinderStore(db *gorm.DB) *BinderStore {
	return &BinderStore{db: db}
}

// FindBySlug loads the binder with its event and owner
func (s *BinderStore) FindBySlug(ctx context.Context, slug string) (*models.Binder, error) {
	var binder models.Binder
	err := s.db.WithContext(ctx).
		Preload("Event").
		Preload("Owner").
		Where("slug = ?", slug).
		First(&binder).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrBinderNotFound, slug)
		}
		return nil, fmt.Errorf("failed to load binder %s: %w", slug, err)
	}
	return &binder, nil
}

// CachedBinderStore serves binder lookups from Redis before hitting the database
type CachedBinderStore struct {
	store *BinderStore
	cache *RedisCache
	ttl   time.Duration
}

// NewCachedBinderStore wraps store with a Redis cache
func NewCachedBinderStore(store *BinderStore, cache *RedisCache, ttl time.Duration) *CachedBinderStore {
	return &CachedBinderStore{store: store, cache: cache, ttl: ttl}
}

// FindBySlug returns the cached binder or loads and caches it
func (s *CachedBinderStore) FindBySlug(ctx context.Context, slug string) (*models.Binder, error) {
	return GetOrSet(s.cache, ctx, binderCacheKey(slug), s.ttl, func() (*models.Binder, error) {
		return s.store.FindBySlug(ctx, slug)
	})
}

func binderCacheKey(slug string) string {
	return "binder:slug:" + slug
}
