package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/pass-vault/internal/logger"
)

// CategoryCacheRepository caches per-user distinct category lists in
// Redis with a TTL. A cache miss is reported as an error so callers
// fall through to Postgres.
type CategoryCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

// NewCategoryCacheRepository creates a new cache repository with the given TTL.
func NewCategoryCacheRepository(client *redis.Client, expiration time.Duration) *CategoryCacheRepository {
	return &CategoryCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func categoryKey(userID int64) string {
	return fmt.Sprintf("vault_categories:%d", userID)
}

// GetCategories fetches the cached category list for a user.
func (r *CategoryCacheRepository) GetCategories(ctx context.Context, userID int64) ([]string, error) {
	key := categoryKey(userID)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow("category cache read",
			"key", key,
			"error", err,
		)
		if err == redis.Nil {
			return nil, fmt.Errorf("categories not found in cache for user %d", userID)
		}
		return nil, err
	}

	var categories []string
	if err := json.Unmarshal([]byte(val), &categories); err != nil {
		logger.Log.Errorw("category cache unmarshal failed",
			"key", key,
			"value", val,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow("category cache read",
		"key", key,
		"result", categories,
	)

	return categories, nil
}

// SetCategories stores the category list for a user with the configured TTL.
func (r *CategoryCacheRepository) SetCategories(ctx context.Context, userID int64, categories []string) error {
	key := categoryKey(userID)

	data, err := json.Marshal(categories)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow("category cache write",
		"key", key,
		"value", categories,
		"error", err,
	)

	return err
}

// InvalidateCategories drops the cached list after a vault mutation.
func (r *CategoryCacheRepository) InvalidateCategories(ctx context.Context, userID int64) error {
	key := categoryKey(userID)

	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow("category cache invalidate",
		"key", key,
		"error", err,
	)

	return err
}
