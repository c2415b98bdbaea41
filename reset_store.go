package lireddit

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

var errResetNotFound = errors.New("reset token not found")

// resetStore keeps password-reset tokens in Redis as prefix:token -> userID
// records. The token itself is the capability; the record carries nothing
// but the target user id, and Redis TTL is the only expiry mechanism.
type resetStore struct {
	redis  redis.UniversalClient
	prefix string
}

func newResetStore(redisClient redis.UniversalClient, prefix string) *resetStore {
	return &resetStore{
		redis:  redisClient,
		prefix: prefix,
	}
}

func (s *resetStore) key(token string) string {
	return s.prefix + ":" + token
}

func (s *resetStore) Save(ctx context.Context, token string, userID int64, ttl time.Duration) error {
	value := strconv.FormatInt(userID, 10)
	if err := s.redis.Set(ctx, s.key(token), value, ttl).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

// Get resolves a token to its user id. Absent and expired tokens are
// indistinguishable (errResetNotFound); a record that does not parse as a
// user id is treated the same way rather than surfacing a decode error to
// an unauthenticated caller.
func (s *resetStore) Get(ctx context.Context, token string) (int64, error) {
	value, err := s.redis.Get(ctx, s.key(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, errResetNotFound
		}
		return 0, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	userID, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, errResetNotFound
	}
	return userID, nil
}

func (s *resetStore) Delete(ctx context.Context, token string) error {
	if err := s.redis.Del(ctx, s.key(token)).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}
