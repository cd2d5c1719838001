package helpers

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient initializes a redis client
func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

func keyResetToken(t string) string { return "pwd:reset:token:" + t }

// GenOpaqueToken returns a URL-safe random token of n bytes entropy.
func GenOpaqueToken(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// StoreResetToken maps an opaque reset token to a user id for ttl.
func StoreResetToken(ctx context.Context, rdb *redis.Client, token, userID string, ttl time.Duration) error {
	return rdb.Set(ctx, keyResetToken(token), userID, ttl).Err()
}

// ConsumeResetToken resolves and deletes a reset token in one shot.
// Returns ("", nil) when the token is unknown or expired.
func ConsumeResetToken(ctx context.Context, rdb *redis.Client, token string) (string, error) {
	uid, err := rdb.GetDel(ctx, keyResetToken(token)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return uid, nil
}
