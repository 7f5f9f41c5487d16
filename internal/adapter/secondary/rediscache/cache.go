package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/ruudy-sib/taskkeeper/internal/domain"
	"github.com/ruudy-sib/taskkeeper/internal/domain/entity"
	"github.com/ruudy-sib/taskkeeper/internal/observability"
	"github.com/ruudy-sib/taskkeeper/internal/port/secondary"
)

// taskDTO is the Redis-specific representation of a task.
type taskDTO struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	UserID      int64     `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
}

func toDTO(t *entity.Task) taskDTO {
	return taskDTO{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		UserID:      t.UserID,
		CreatedAt:   t.CreatedAt,
	}
}

func toEntity(dto taskDTO) *entity.Task {
	return &entity.Task{
		ID:          dto.ID,
		Title:       dto.Title,
		Description: dto.Description,
		Status:      entity.TaskStatus(dto.Status),
		UserID:      dto.UserID,
		CreatedAt:   dto.CreatedAt,
	}
}

// kv is the subset of the Redis client the cache needs.
type kv interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// Store decorates a secondary.TaskStore with a read-through cache for
// single-task lookups. Listings always go to the inner store.
type Store struct {
	inner   secondary.TaskStore
	client  kv
	ttl     time.Duration
	metrics *observability.Metrics
	logger  *zap.Logger
}

// NewStore wraps inner with a Redis lookup cache.
func NewStore(
	inner secondary.TaskStore,
	client redis.UniversalClient,
	ttl time.Duration,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *Store {
	return newStore(inner, client, ttl, metrics, logger)
}

func newStore(inner secondary.TaskStore, client kv, ttl time.Duration, metrics *observability.Metrics, logger *zap.Logger) *Store {
	if ttl <= 0 {
		ttl = domain.DefaultCacheTTL
	}
	return &Store{
		inner:   inner,
		client:  client,
		ttl:     ttl,
		metrics: metrics,
		logger:  logger.Named("redis-cache"),
	}
}

var _ secondary.TaskStore = (*Store)(nil)

// List is not cached.
func (s *Store) List(ctx context.Context, filter entity.TaskFilter, user entity.User) ([]*entity.Task, error) {
	return s.inner.List(ctx, filter, user)
}

// FindOne serves from cache when possible and fills it on a miss.
// Empty results are not cached. Redis failures fall back to the inner store.
func (s *Store) FindOne(ctx context.Context, query entity.TaskQuery) (*entity.Task, error) {
	key := cacheKey(query.Where.UserID, query.Where.ID)

	if t, ok := s.get(ctx, key); ok {
		return t, nil
	}

	t, err := s.inner.FindOne(ctx, query)
	if err != nil || t == nil {
		return t, err
	}

	s.set(ctx, key, t)
	return t, nil
}

// Create writes through to the inner store and primes the cache.
func (s *Store) Create(ctx context.Context, input entity.CreateTaskInput, user entity.User) (*entity.Task, error) {
	t, err := s.inner.Create(ctx, input, user)
	if err != nil || t == nil {
		return t, err
	}
	s.set(ctx, cacheKey(t.UserID, t.ID), t)
	return t, nil
}

func (s *Store) get(ctx context.Context, key string) (*entity.Task, bool) {
	raw, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			s.metrics.ObserveCacheLookup(observability.CacheMiss)
		} else {
			s.metrics.ObserveCacheLookup(observability.CacheError)
			s.logger.Warn("cache read failed", zap.Error(err), zap.String("key", key))
		}
		return nil, false
	}

	var dto taskDTO
	if err := json.Unmarshal([]byte(raw), &dto); err != nil {
		s.metrics.ObserveCacheLookup(observability.CacheError)
		s.logger.Warn("invalid task data in cache", zap.Error(err), zap.String("key", key))
		return nil, false
	}

	s.metrics.ObserveCacheLookup(observability.CacheHit)
	return toEntity(dto), true
}

func (s *Store) set(ctx context.Context, key string, t *entity.Task) {
	data, err := json.Marshal(toDTO(t))
	if err != nil {
		s.logger.Warn("marshaling task for cache", zap.Error(err))
		return
	}
	if err := s.client.Set(ctx, key, data, s.ttl).Err(); err != nil {
		s.logger.Warn("cache write failed", zap.Error(err), zap.String("key", key))
	}
}

func cacheKey(userID, taskID int64) string {
	return fmt.Sprintf("%s%d:%d", domain.CacheKeyPrefix, userID, taskID)
}
