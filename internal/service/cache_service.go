package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	appErrors "github.com/noah-isme/exam-logistics-api/pkg/errors"
)

// CacheRepository abstracts persistence for cached payloads.
type CacheRepository interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

// CacheService memoises derived dataset views across requests. Keys are scoped
// per dataset so one dataset can be dropped without touching the others.
type CacheService struct {
	repo       CacheRepository
	metrics    *MetricsService
	defaultTTL time.Duration
	logger     *zap.Logger
	enabled    bool
}

// NewCacheService constructs a cache service. A disabled service misses on every read.
func NewCacheService(repo CacheRepository, metrics *MetricsService, defaultTTL time.Duration, logger *zap.Logger, enabled bool) *CacheService {
	if defaultTTL <= 0 {
		defaultTTL = 10 * time.Minute
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CacheService{repo: repo, metrics: metrics, defaultTTL: defaultTTL, logger: logger, enabled: enabled}
}

// CacheKey joins key parts with ':'.
func CacheKey(parts ...string) string {
	return strings.Join(parts, ":")
}

func datasetScope(datasetID string) string {
	return CacheKey("dash", datasetID)
}

// DatasetKey builds a key inside the dataset's scope.
func DatasetKey(datasetID string, parts ...string) string {
	return CacheKey(append([]string{datasetScope(datasetID)}, parts...)...)
}

// Enabled indicates whether caching is active.
func (s *CacheService) Enabled() bool {
	return s != nil && s.enabled && s.repo != nil
}

// Get reads key into dest and reports a hit. Misses are not errors.
func (s *CacheService) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	if !s.Enabled() {
		return false, nil
	}
	start := time.Now()
	err := s.repo.Get(ctx, key, dest)
	s.metrics.RecordCacheOperation(err == nil, time.Since(start))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, appErrors.ErrCacheMiss):
		return false, nil
	default:
		s.logger.Warn("cache get failed", zap.String("key", key), zap.Error(err))
		return false, err
	}
}

// Set stores value under key. A zero ttl uses the default.
func (s *CacheService) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if !s.Enabled() {
		return nil
	}
	if ttl <= 0 {
		ttl = s.defaultTTL
	}
	start := time.Now()
	err := s.repo.Set(ctx, key, value, ttl)
	s.metrics.ObserveCacheWrite(time.Since(start))
	if err != nil {
		s.logger.Warn("cache set failed", zap.String("key", key), zap.Error(err))
	}
	return err
}

// InvalidateDataset drops every cached view of a dataset.
func (s *CacheService) InvalidateDataset(ctx context.Context, datasetID string) error {
	if !s.Enabled() {
		return nil
	}
	pattern := datasetScope(datasetID) + ":*"
	if err := s.repo.DeleteByPattern(ctx, pattern); err != nil {
		s.logger.Warn("cache invalidate failed", zap.String("pattern", pattern), zap.Error(err))
		return err
	}
	s.logger.Info("dataset cache invalidated", zap.String("dataset_id", datasetID))
	return nil
}

// remember returns the cached value under key, or builds it with load and stores it.
// Cache failures degrade to a rebuild; only load errors are returned.
func remember[T any](ctx context.Context, cache *CacheService, key string, ttl time.Duration, load func() (*T, error)) (*T, bool, error) {
	var cached T
	if hit, err := cache.Get(ctx, key, &cached); err == nil && hit {
		return &cached, true, nil
	}
	value, err := load()
	if err != nil {
		return nil, false, err
	}
	_ = cache.Set(ctx, key, value, ttl)
	return value, false, nil
}
