package service

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/inkwell-social/inkwell/pkg/logger"
	"github.com/inkwell-social/inkwell/pkg/response"
)

// timelineCacheKey is the single shared slot for the rendered first
// page of the global timeline. The key is not viewer-specific: every
// viewer, anonymous included, sees the same body while it lives.
const timelineCacheKey = "timeline:global"

// TimelineService serves the rendered global timeline. The first page
// is memoized in redis for the configured TTL; writes do not
// invalidate it, so a fresh post stays invisible until the slot
// expires or is explicitly cleared. Concurrent population during an
// empty window is allowed: the rendering is pure for a given data
// snapshot, so computing it twice is harmless.
type TimelineService interface {
	RenderGlobal(ctx context.Context, page int) ([]byte, error)
	// ClearCache force-evicts the slot; the next request repopulates it.
	ClearCache(ctx context.Context) error
}

type timelineService struct {
	feed FeedService
	rdb  *redis.Client
	ttl  time.Duration
}

func NewTimelineService(feed FeedService, rdb *redis.Client, ttl time.Duration) TimelineService {
	if ttl <= 0 {
		ttl = 20 * time.Second
	}
	return &timelineService{feed: feed, rdb: rdb, ttl: ttl}
}

func (s *timelineService) RenderGlobal(ctx context.Context, page int) ([]byte, error) {
	cacheable := page <= 1
	if cacheable {
		if body, err := s.rdb.Get(ctx, timelineCacheKey).Bytes(); err == nil {
			return body, nil
		}
	}
	timeline, err := s.feed.Global(ctx, page)
	if err != nil {
		return nil, err
	}
	body, err := json.Marshal(response.Response{
		Code:    http.StatusOK,
		Message: "ok",
		Data:    timeline,
	})
	if err != nil {
		return nil, err
	}
	if cacheable {
		if err := s.rdb.Set(ctx, timelineCacheKey, body, s.ttl).Err(); err != nil {
			logger.Warn("timeline cache populate failed", zap.Error(err))
		}
	}
	return body, nil
}

func (s *timelineService) ClearCache(ctx context.Context) error {
	return s.rdb.Del(ctx, timelineCacheKey).Err()
}
