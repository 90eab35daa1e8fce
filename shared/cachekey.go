package shared

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"
	"tablebook/shared/cache"
	"tablebook/shared/constant"
)

func BuildCacheKey(parts ...string) string {
	return strings.Join(parts, ":")
}

func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	if err := redisCache.Clear(ctx, prefix+constant.Asterix); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}
