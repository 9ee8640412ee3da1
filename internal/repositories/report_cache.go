package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/Ashokchittari/dentoCare/internal/logger"
)

// ReportCacheRepository caches rendered report bytes in Redis.
// The key includes the checkup's updated_at, so any mutation makes prior
// entries unreachable and they simply expire.
type ReportCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

// NewReportCacheRepository creates a new repository instance with the given TTL.
func NewReportCacheRepository(client *redis.Client, expiration time.Duration) *ReportCacheRepository {
	return &ReportCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func reportKey(checkupID uuid.UUID, updatedAt time.Time) string {
	return fmt.Sprintf("report:%s:%d", checkupID, updatedAt.Unix())
}

// Get fetches cached report bytes. A cache miss returns (nil, nil).
func (r *ReportCacheRepository) Get(ctx context.Context, checkupID uuid.UUID, updatedAt time.Time) ([]byte, error) {
	key := reportKey(checkupID, updatedAt)

	data, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		logger.Log.Infow("report cache miss", "key", key)
		return nil, nil
	}
	if err != nil {
		logger.Log.Errorw("report cache get failed", "key", key, "error", err)
		return nil, err
	}

	logger.Log.Infow("report cache hit", "key", key, "size", len(data))
	return data, nil
}

// Set stores report bytes with the configured expiration.
func (r *ReportCacheRepository) Set(ctx context.Context, checkupID uuid.UUID, updatedAt time.Time, data []byte) error {
	key := reportKey(checkupID, updatedAt)

	err := r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow("report cache set",
		"key", key,
		"size", len(data),
		"error", err,
	)

	return err
}
