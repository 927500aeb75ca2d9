package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/miner1qaz-ops/Mochi/internal/core/ports"
	"github.com/miner1qaz-ops/Mochi/pkg/apperror"
)

// loadCachedView serves a read through the best-effort view cache: cache hit
// decodes into out, miss loads from the store and populates the cache. Cache
// failures log a warning and fall through to the store.
func loadCachedView(ctx context.Context, cache ports.ViewCache, log zerolog.Logger, key string, out any, load func() (any, error)) error {
	if data, err := cache.Get(ctx, key); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("view cache read failed")
	} else if data != nil {
		if err := json.Unmarshal(data, out); err == nil {
			return nil
		}
	}

	fresh, err := load()
	if err != nil {
		return err
	}
	data, err := json.Marshal(fresh)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("marshal view: %w", err))
	}
	if err := json.Unmarshal(data, out); err != nil {
		return apperror.InternalError(fmt.Errorf("unmarshal view: %w", err))
	}
	if err := cache.Set(ctx, key, data, viewCacheTTL); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("view cache write failed")
	}
	return nil
}
