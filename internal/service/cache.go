// internal/service/cache.go
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirecovip/backend/internal/cache"
	"github.com/sirecovip/backend/internal/domain"
)

// CacheService provides caching functionality with type safety and error handling
type CacheService struct {
	cache *cache.InMemoryCache
}

// CacheConfig holds configuration for the cache service
type CacheConfig struct {
	TTL         time.Duration
	CleanupFreq time.Duration
}

// NewCacheService creates a new cache service
func NewCacheService(config CacheConfig) *CacheService {
	c := cache.NewInMemoryCache(config.TTL, config.CleanupFreq)
	c.StartCleanup(context.Background())

	return &CacheService{
		cache: c,
	}
}

// Set stores a value in the cache
func (s *CacheService) Set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshaling cache value: %w", err)
	}

	s.cache.Set(key, data)
	return nil
}

// Get retrieves a value from the cache into dest. Returns domain.ErrNotFound
// when the key is absent or expired.
func (s *CacheService) Get(ctx context.Context, key string, dest interface{}) error {
	data, ok := s.cache.Get(key)
	if !ok {
		return domain.ErrNotFound
	}

	if dest == nil {
		return nil
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("unmarshaling cache value: %w", err)
	}
	return nil
}

// Delete removes a key from the cache
func (s *CacheService) Delete(ctx context.Context, key string) {
	s.cache.Delete(key)
}

// Close stops the cache cleanup routine
func (s *CacheService) Close() {
	s.cache.Close()
}
