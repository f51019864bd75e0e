package cache

import (
	"github.com/redis/go-redis/v9"
)

// Open parses a Redis URL and returns a client. An empty URL returns nil,
// which callers treat as "cache disabled" — every read falls through to the
// store.
func Open(redisURL string) (*redis.Client, error) {
	if redisURL == "" {
		return nil, nil
	}
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	return redis.NewClient(opts), nil
}
