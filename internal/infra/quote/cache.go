package quote

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// KV is the small cache surface the quote layer needs; tests plug in a map.
type KV interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

type RedisKV struct {
	client *redis.Client
}

func NewRedisKV(client *redis.Client) *RedisKV {
	return &RedisKV{client: client}
}

func (r *RedisKV) Get(ctx context.Context, key string) (string, bool) {
	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func (r *RedisKV) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl).Err()
}

type cachedQuote struct {
	Declined bool      `json:"declined"`
	Approval *Approval `json:"approval,omitempty"`
}

// CachedClient is a read-through cache over a Client. Declines are cached
// alongside approvals so a rebuild with unchanged inputs skips the wire
// entirely. A cache outage degrades to pass-through.
type CachedClient struct {
	next Client
	kv   KV
	ttl  time.Duration
}

func NewCachedClient(next Client, kv KV, ttl time.Duration) *CachedClient {
	return &CachedClient{next: next, kv: kv, ttl: ttl}
}

func (c *CachedClient) Quote(ctx context.Context, req Request) (*Approval, error) {
	key := cacheKey(req)

	if raw, ok := c.kv.Get(ctx, key); ok {
		var cached cachedQuote
		if err := json.Unmarshal([]byte(raw), &cached); err == nil {
			if cached.Declined {
				return nil, ErrDeclined
			}
			return cached.Approval, nil
		}
		slog.Warn("discarding malformed cached quote", "key", key)
	}

	approval, err := c.next.Quote(ctx, req)
	switch {
	case err == nil:
		c.store(ctx, key, cachedQuote{Approval: approval})
	case errors.Is(err, ErrDeclined):
		c.store(ctx, key, cachedQuote{Declined: true})
	default:
		// Transport failures are never cached
	}
	return approval, err
}

func (c *CachedClient) store(ctx context.Context, key string, q cachedQuote) {
	raw, err := json.Marshal(q)
	if err != nil {
		return
	}
	if err := c.kv.Set(ctx, key, string(raw), c.ttl); err != nil {
		slog.Warn("failed to cache quote", "key", key, "error", err)
	}
}

// The key hashes the marshaled request so every digit of the inputs takes
// part; requests differing only past the second decimal must not share an
// entry.
func cacheKey(req Request) string {
	payload, _ := json.Marshal(req)
	sum := sha256.Sum256(payload)
	return "quote:" + hex.EncodeToString(sum[:])
}
