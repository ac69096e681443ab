package repository

import (
	"context"
	"errors"
	"time"

	"video_sharing_service/pkg/database"
	"video_sharing_service/pkg/logger"
	"video_sharing_service/pkg/metrics"

	"go.uber.org/zap"
)

const nameKeyPrefix = "user:name:"

// DefaultNameTTL used when no positive ttl is configured, cached names always expire
const DefaultNameTTL = 10 * time.Minute

type cachedDirectory struct {
	next    Directory
	cache   database.RedisRepository[string]
	ttl     time.Duration
	metrics *metrics.Metrics
}

// NewCachedDirectory put a redis read-through cache in front of next.
// Cache errors fall back to next and are never surfaced.
func NewCachedDirectory(next Directory, cache database.RedisRepository[string], ttl time.Duration, m *metrics.Metrics) Directory {
	if ttl <= 0 {
		ttl = DefaultNameTTL
	}
	return &cachedDirectory{
		next:    next,
		cache:   cache,
		ttl:     ttl,
		metrics: m,
	}
}

func (d *cachedDirectory) DisplayNames(ctx context.Context, ids []string) (map[string]string, error) {
	names := make(map[string]string, len(ids))
	seen := make(map[string]struct{}, len(ids))
	var missing []string

	for _, id := range ids {
		if _, ok := seen[id]; ok || id == "" {
			continue
		}
		seen[id] = struct{}{}

		name, err := d.cache.Get(ctx, nameKeyPrefix+id)
		if err == nil {
			d.metrics.Cache(true)
			names[id] = name
			continue
		}
		if !errors.Is(err, database.ErrCacheMiss) {
			logger.Log.Warn("name cache read failed", zap.String("user", id), zap.Error(err))
		}
		d.metrics.Cache(false)
		missing = append(missing, id)
	}

	if len(missing) == 0 {
		return names, nil
	}

	resolved, err := d.next.DisplayNames(ctx, missing)
	if err != nil {
		return nil, err
	}
	for id, name := range resolved {
		names[id] = name
		if err := d.cache.Set(ctx, nameKeyPrefix+id, name, d.ttl); err != nil {
			logger.Log.Warn("name cache write failed", zap.String("user", id), zap.Error(err))
		}
	}
	return names, nil
}
