package redisStore

import (
	"context"
	"sync"
	"time"

	"github.com/nyayai/LegalAPI/internal/config"
	"github.com/nyayai/LegalAPI/pkg/logger_i"
	"github.com/redis/go-redis/v9"
)

var (
	instance *Store
	mu       sync.Mutex
	logger   *logger_i.Logger
	once     sync.Once
)

type Store struct {
	client *redis.Client
}

// GetRedisStore returns the shared store, or nil when redis is offline so the
// caller can fall back to its in-memory path.
func GetRedisStore(ctx context.Context, addr string) *Store {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance
	}
	return createNewStore(ctx, addr)
}

func initLogger() {
	if logger == nil {
		logger = logger_i.NewLogger("Redis Store")
	}
}

func closeRedisStore(ctx context.Context) {
	<-ctx.Done()
	logger.Info("Closing Redis Store")
	mu.Lock()
	defer mu.Unlock()
	if instance != nil {
		if err := instance.client.Close(); err != nil {
			logger.Error("Error closing redis client", "error", err)
		}
	}
	logger.Info("Redis Store Closed successfully")
}

func createNewStore(ctx context.Context, addr string) *Store {
	newClient := redis.NewClient(&redis.Options{
		Addr:                  addr,
		Password:              config.RedisPassword,
		ContextTimeoutEnabled: true,
		ReadTimeout:           30 * time.Second,
		WriteTimeout:          30 * time.Second,
	})

	initLogger()

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := newClient.Ping(pingCtx).Err(); err != nil {
		logger.Error("Redis is offline: ", "error", err.Error())
		return nil
	}

	logger.Info("Redis init successfully")

	instance = &Store{client: newClient}
	once.Do(func() {
		go closeRedisStore(ctx)
	})
	return instance
}

// Only in a _test.go file or behind a build tag
func NewTestStore(client *redis.Client) *Store {
	initLogger()
	return &Store{client: client}
}
