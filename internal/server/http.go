package server

import (
	"context"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/config"
	httperrors "github.com/gokatarajesh/trivia-api/pkg/http/errors"
)

// Routes mounts API routes onto a mux.
type Routes interface {
	Register(mux *http.ServeMux)
}

// NewHTTPServer wires base routes (health, metrics, ping) plus the API
// routes behind the request middleware. redis may be nil.
func NewHTTPServer(cfg *config.App, logger zerolog.Logger, pool *pgxpool.Pool, redis *redis.Client, routes Routes) *http.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	mux.Handle("/metrics", promhttp.Handler())

	mux.HandleFunc("/v1/ping", func(w http.ResponseWriter, r *http.Request) {
		if dep, err := pingDependencies(r.Context(), pool, redis); err != nil {
			logger.Error().Err(err).Str("dependency", dep).Msg("dependency ping failed")
			httperrors.RespondErrorWithDetails(w, http.StatusBadGateway, httperrors.ErrCodeUpstreamError, "upstream error",
				map[string]interface{}{"dependency": dep})
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"pong":true}`))
	})

	if routes != nil {
		routes.Register(mux)
	}

	return &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: Chain(mux, RequestID(), Logging(logger), Metrics(), CORS(cfg.CORS)),
	}
}

func pingDependencies(ctx context.Context, pool *pgxpool.Pool, redis *redis.Client) (string, error) {
	if err := pool.Ping(ctx); err != nil {
		return "postgres", err
	}
	if redis != nil {
		if err := redis.Ping(ctx).Err(); err != nil {
			return "redis", err
		}
	}
	return "", nil
}
