package redis

import (
	"context"
	"errors"

	goredis "github.com/redis/go-redis/v9"

	"github.com/baechuer/grandveggie/internal/domain"
)

// StateStore keeps the serialized session under a plain string key.
// Keys carry no TTL: the slot lives until overwritten.
type StateStore struct {
	rdb    *goredis.Client
	prefix string
}

func NewStateStore(c *Client) *StateStore {
	var rdb *goredis.Client
	if c != nil {
		rdb = c.rdb
	}
	return &StateStore{rdb: rdb, prefix: "grandveggie:"}
}

func (s *StateStore) Load(ctx context.Context, key string) ([]byte, error) {
	if s.rdb == nil {
		return nil, domain.ErrRedisUnavailable(errors.New("redis state store not configured"))
	}
	v, err := s.rdb.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.ErrRedisUnavailable(err)
	}
	return v, nil
}

func (s *StateStore) Save(ctx context.Context, key string, value []byte) error {
	if s.rdb == nil {
		return domain.ErrRedisUnavailable(errors.New("redis state store not configured"))
	}
	if err := s.rdb.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return domain.ErrRedisUnavailable(err)
	}
	return nil
}
