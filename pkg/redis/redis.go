package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"TechTalks/pkg/log"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const revokedTokenPrefix = "revoked_token:"

// IRedis keeps the denylist of logged out token ids.
type IRedis interface {
	RevokeToken(ctx context.Context, tokenID string, expiration time.Duration) error
	IsTokenRevoked(ctx context.Context, tokenID string) (bool, error)
	Close() error
}

type redisClient struct {
	client *redis.Client
}

func New(addr, password string, db int) (IRedis, error) {
	logrus.Info(fmt.Sprintf("Connecting to Redis at %s...", addr))

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		logrus.Error(fmt.Sprintf("Failed to connect to Redis: %v", err))
		_ = client.Close()
		return nil, err
	}
	logrus.Info("Successfully connected to Redis")

	return NewFromClient(client), nil
}

func NewFromClient(client *redis.Client) IRedis {
	return &redisClient{client: client}
}

func (r *redisClient) RevokeToken(ctx context.Context, tokenID string, expiration time.Duration) error {
	if expiration <= 0 {
		// already expired, nothing to deny
		return nil
	}

	log.WithRequestID(ctx).Debug(fmt.Sprintf("Revoking token %s for %v", tokenID, expiration))
	if err := r.client.Set(ctx, revokedTokenPrefix+tokenID, "1", expiration).Err(); err != nil {
		log.WithRequestID(ctx).Error(fmt.Sprintf("Error revoking token %s: %v", tokenID, err))
		return err
	}
	return nil
}

func (r *redisClient) IsTokenRevoked(ctx context.Context, tokenID string) (bool, error) {
	_, err := r.client.Get(ctx, revokedTokenPrefix+tokenID).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	} else if err != nil {
		log.WithRequestID(ctx).Error(fmt.Sprintf("Error checking token %s: %v", tokenID, err))
		return false, err
	}
	return true, nil
}

func (r *redisClient) Close() error {
	return r.client.Close()
}
