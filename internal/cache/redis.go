package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/brunomguimaraes/fsoverflow-developer-api/internal/logging"
	"github.com/brunomguimaraes/fsoverflow-developer-api/internal/model"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisCache stores rendered answered-question views. Answered is a terminal
// state, so an entry can expire but never go stale. Unanswered views are never
// stored.
type RedisCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisCache(rdb *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{rdb: rdb, ttl: ttl}
}

func viewKey(questionID int64) string {
	return fmt.Sprintf("question:%d:view", questionID)
}

func (r *RedisCache) GetView(ctx context.Context, questionID int64) (*model.QuestionView, bool) {
	data, err := r.rdb.Get(ctx, viewKey(questionID)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logError(ctx, "cache get failed", questionID, err)
		}
		return nil, false
	}

	var view model.QuestionView
	if err := json.Unmarshal(data, &view); err != nil || view.State != model.QuestionStateAnswered {
		if err == nil {
			err = fmt.Errorf("unexpected %s view", view.State)
		}
		logError(ctx, "cache entry is corrupt", questionID, err)
		r.DeleteView(ctx, questionID)
		return nil, false
	}
	return &view, true
}

func (r *RedisCache) SetView(ctx context.Context, view *model.QuestionView) {
	if view.State != model.QuestionStateAnswered || r.ttl <= 0 {
		return
	}

	data, err := json.Marshal(view)
	if err != nil {
		logError(ctx, "cache encode failed", view.ID(), err)
		return
	}
	if err := r.rdb.Set(ctx, viewKey(view.ID()), data, r.ttl).Err(); err != nil {
		logError(ctx, "cache set failed", view.ID(), err)
	}
}

func (r *RedisCache) DeleteView(ctx context.Context, questionID int64) {
	if err := r.rdb.Del(ctx, viewKey(questionID)).Err(); err != nil {
		logError(ctx, "cache delete failed", questionID, err)
	}
}

func logError(ctx context.Context, msg string, questionID int64, err error) {
	if logger, ok := logging.GetFromContext(ctx); ok {
		logger.Warn(ctx, msg, zap.Int64("question_id", questionID), zap.Error(err))
	}
}
