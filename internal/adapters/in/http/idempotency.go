package http

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

const HeaderIdempotencyKey = "Idempotency-Key"

// IdempotencyStore reserves request keys per principal.
type IdempotencyStore interface {
	Reserve(ctx context.Context, principal int64, key string) (bool, error)
	Release(ctx context.Context, principal int64, key string) error
}

// Idempotent rejects a repeated Idempotency-Key with 409. A key is released
// again when the request fails, so the client may retry with it. When the
// store is unreachable the request goes through unguarded.
func Idempotent(store IdempotencyStore, log zerolog.Logger) echo.MiddlewareFunc {
	log = log.With().Str("component", "idempotency").Logger()
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := c.Request().Header.Get(HeaderIdempotencyKey)
			if key == "" || store == nil {
				return next(c)
			}

			ctx := c.Request().Context()
			principal := int64(principalFrom(c))

			ok, err := store.Reserve(ctx, principal, key)
			if err != nil {
				log.Warn().Err(err).Str("key", key).Msg("idempotency store unavailable")
				return next(c)
			}
			if !ok {
				return echo.NewHTTPError(http.StatusConflict,
					"A request with this Idempotency-Key was already processed.")
			}

			err = next(c)
			if err != nil || c.Response().Status >= http.StatusBadRequest {
				if relErr := store.Release(ctx, principal, key); relErr != nil {
					log.Warn().Err(relErr).Str("key", key).Msg("idempotency key not released")
				}
			}
			return err
		}
	}
}
