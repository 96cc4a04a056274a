package dao

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var ErrSessionNotFound = errors.New("refresh token not found")

const refreshTokenPrefix = "refresh:"

// SessionDAO keeps opaque refresh tokens in Redis, each mapped to a user ID.
type SessionDAO struct {
	rdb *redis.Client
}

func NewSessionDAO(rdb *redis.Client) *SessionDAO {
	return &SessionDAO{
		rdb: rdb,
	}
}

func (d *SessionDAO) Create(ctx context.Context, userID string, ttl time.Duration) (string, error) {
	token := uuid.NewString()
	if err := d.rdb.Set(ctx, refreshTokenPrefix+token, userID, ttl).Err(); err != nil {
		return "", err
	}

	return token, nil
}

// Consume returns the owner of token and invalidates it.
func (d *SessionDAO) Consume(ctx context.Context, token string) (string, error) {
	userID, err := d.rdb.GetDel(ctx, refreshTokenPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrSessionNotFound
		}

		return "", err
	}

	return userID, nil
}

func (d *SessionDAO) Delete(ctx context.Context, token string) error {
	return d.rdb.Del(ctx, refreshTokenPrefix+token).Err()
}
