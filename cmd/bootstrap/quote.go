package bootstrap

import (
	"autofin/internal/infra/quote"
	"autofin/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var QuoteModule = fx.Module("quote",
	fx.Provide(
		NewQuoteClient,
	),
)

// NewQuoteClient wraps the HTTP rate client with the Redis read-through
// cache so identical requests inside the TTL never hit the wire twice.
func NewQuoteClient(cfg config.Config, redisClient *redis.Client) quote.Client {
	httpClient := quote.NewHTTPClient(cfg.Quote)
	kv := quote.NewRedisKV(redisClient)
	return quote.NewCachedClient(httpClient, kv, cfg.Redis.QuoteTTL)
}
