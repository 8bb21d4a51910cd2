package customdict

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

const DefaultKey = "custom_dict"

// CustomDict persists word counts learned at runtime in a Redis hash.
type CustomDict struct {
	client redis.Cmdable
	key    string
}

// New creates a new CustomDict with the provided Redis client. An empty key uses DefaultKey.
func New(client redis.Cmdable, key string) *CustomDict {
	if key == "" {
		key = DefaultKey
	}
	return &CustomDict{client: client, key: key}
}

// Add records one more occurrence of word.
func (cd *CustomDict) Add(ctx context.Context, word string) error {
	return cd.client.HIncrBy(ctx, cd.key, word, 1).Err()
}

// AddCounts increments every word by its count in a single round trip.
func (cd *CustomDict) AddCounts(ctx context.Context, counts map[string]uint64) error {
	if len(counts) == 0 {
		return nil
	}
	_, err := cd.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for w, n := range counts {
			pipe.HIncrBy(ctx, cd.key, w, int64(n))
		}
		return nil
	})
	return err
}

// All returns every stored word with its count.
func (cd *CustomDict) All(ctx context.Context) (map[string]uint64, error) {
	raw, err := cd.client.HGetAll(ctx, cd.key).Result()
	if err != nil {
		return nil, err
	}
	out := make(map[string]uint64, len(raw))
	for w, v := range raw {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad count %q for %q: %w", v, w, err)
		}
		out[w] = n
	}
	return out, nil
}
