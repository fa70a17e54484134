package service

import (
	"context"
	"devita_backend/internal/model"
	"devita_backend/internal/util"
	"devita_backend/pkg/cache"
	"devita_backend/pkg/logger"
	"devita_backend/pkg/monitoring"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"gorm.io/gorm"
)

// LikeSyncService drains the cached post like counters into MySQL. It runs
// nightly; the cache stays authoritative between runs and the durable
// column is simply overwritten, so reruns are idempotent. Counter keys are
// left in place after a run.
type LikeSyncService struct {
	Posts PostStore
	Cache cache.CounterStore
}

func NewLikeSyncService(posts PostStore, counter cache.CounterStore) *LikeSyncService {
	return &LikeSyncService{Posts: posts, Cache: counter}
}

// LikeSyncResult summarizes one reconciliation run.
type LikeSyncResult struct {
	Synced  int
	Skipped int
}

// Run reconciles every "post:like_count:*" key. Malformed keys or values
// and deleted posts are skipped; a cache or database connectivity failure
// aborts the run (the next run picks the data up again).
func (s *LikeSyncService) Run(ctx context.Context) (LikeSyncResult, error) {
	var result LikeSyncResult

	keys, err := s.Cache.ScanPrefix(ctx, util.LikeCountKeyPrefix)
	if err != nil {
		monitoring.LikeSyncRuns.WithLabelValues("aborted").Inc()
		return result, fmt.Errorf("%w: scanning like counters: %v", util.ErrCacheUnavailable, err)
	}

	pending := make([]*model.Post, 0, util.LikeSyncChunkSize)
	flush := func() error {
		if err := s.Posts.SetLikes(pending); err != nil {
			return err
		}
		result.Synced += len(pending)
		monitoring.LikeSyncSynced.Add(float64(len(pending)))
		pending = pending[:0]
		return nil
	}

	for _, key := range keys {
		postID, ok := parseLikeKey(key)
		if !ok {
			s.skip(&result, key, "bad_key")
			continue
		}

		count, _, err := s.Cache.Get(ctx, key)
		if errors.Is(err, cache.ErrBadValue) {
			s.skip(&result, key, "bad_value")
			continue
		}
		if err != nil {
			monitoring.LikeSyncRuns.WithLabelValues("aborted").Inc()
			return result, fmt.Errorf("%w: reading %s: %v", util.ErrCacheUnavailable, key, err)
		}

		post, err := s.Posts.FindByID(postID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.skip(&result, key, "missing_post")
			continue
		}
		if err != nil {
			monitoring.LikeSyncRuns.WithLabelValues("aborted").Inc()
			return result, fmt.Errorf("loading post %d: %w", postID, err)
		}

		post.Likes = count
		pending = append(pending, post)
		if len(pending) >= util.LikeSyncChunkSize {
			if err := flush(); err != nil {
				monitoring.LikeSyncRuns.WithLabelValues("aborted").Inc()
				return result, fmt.Errorf("writing like counts: %w", err)
			}
		}
	}

	if err := flush(); err != nil {
		monitoring.LikeSyncRuns.WithLabelValues("aborted").Inc()
		return result, fmt.Errorf("writing like counts: %w", err)
	}

	monitoring.LikeSyncRuns.WithLabelValues("completed").Inc()
	logger.Log.Info("like sync completed",
		zap.Int("synced", result.Synced),
		zap.Int("skipped", result.Skipped),
	)
	return result, nil
}

func (s *LikeSyncService) skip(result *LikeSyncResult, key, reason string) {
	result.Skipped++
	monitoring.LikeSyncSkipped.WithLabelValues(reason).Inc()
	logger.Log.Warn("like sync skipped key",
		zap.String("key", key),
		zap.String("reason", reason),
	)
}

func parseLikeKey(key string) (uint, bool) {
	raw := strings.TrimPrefix(key, util.LikeCountKeyPrefix)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
