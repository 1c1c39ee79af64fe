package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrTokenStoreUnavailable = errors.New("token store unavailable")

const RevokedTokenPrefix = "auth:revoked"

// TokenRepository denylists logged-out bearer tokens for their remaining
// lifetime. A token absent from the denylist is valid on signature alone.
type TokenRepository struct{}

func (r *TokenRepository) Revoke(token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil // already expired, nothing to deny
	}
	key := fmt.Sprintf("%s:%s", RevokedTokenPrefix, token)
	if err := Client.Set(context.Background(), key, 1, ttl).Err(); err != nil {
		return ErrTokenStoreUnavailable
	}
	return nil
}

func (r *TokenRepository) IsRevoked(token string) (bool, error) {
	key := fmt.Sprintf("%s:%s", RevokedTokenPrefix, token)
	err := Client.Get(context.Background(), key).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, ErrTokenStoreUnavailable
	}
	return true, nil
}
