package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestReportCacheRepository(t *testing.T) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	assert.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	assert.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()

	err = rdb.Ping(ctx).Err()
	assert.NoError(t, err)

	repo := NewReportCacheRepository(rdb, 2*time.Second)

	checkupID := uuid.New()
	updatedAt := time.Now().UTC()
	report := []byte("%PDF-1.3 report bytes")

	t.Run("Set and Get report", func(t *testing.T) {
		err := repo.Set(ctx, checkupID, updatedAt, report)
		assert.NoError(t, err)

		got, err := repo.Get(ctx, checkupID, updatedAt)
		assert.NoError(t, err)
		assert.Equal(t, report, got)
	})

	t.Run("Miss returns nil without error", func(t *testing.T) {
		got, err := repo.Get(ctx, uuid.New(), updatedAt)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("New updated_at misses the old entry", func(t *testing.T) {
		got, err := repo.Get(ctx, checkupID, updatedAt.Add(time.Minute))
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Cached report expires", func(t *testing.T) {
		err := repo.Set(ctx, checkupID, updatedAt, report)
		assert.NoError(t, err)

		time.Sleep(3 * time.Second)

		got, err := repo.Get(ctx, checkupID, updatedAt)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})
}
