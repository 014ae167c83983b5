package config

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setPostgresEnv(t *testing.T) {
	t.Setenv("PG_HOST", "localhost")
	t.Setenv("PG_USER", "trivia")
	t.Setenv("PG_PASSWORD", "secret")
	t.Setenv("PG_DATABASE", "trivia")
}

func TestLoadDefaults(t *testing.T) {
	setPostgresEnv(t)

	cfg, err := Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Quiz.QuestionsPerPage)
	assert.Equal(t, 5*time.Minute, cfg.Quiz.CategoryCacheTTL)
	assert.Equal(t, "", cfg.Redis.Addr)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "host=localhost port=5432 user=trivia password=secret dbname=trivia sslmode=disable", cfg.Postgres.DSN())
}

func TestLoadRequiresPostgres(t *testing.T) {
	t.Setenv("PG_HOST", "")
	_, err := Load(context.Background())
	assert.Error(t, err)
}

func TestLoadRejectsZeroPageSize(t *testing.T) {
	setPostgresEnv(t)
	t.Setenv("QUESTIONS_PER_PAGE", "0")

	_, err := Load(context.Background())
	assert.Error(t, err)
}
