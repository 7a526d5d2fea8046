package bootstrap

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gomoku_exe/internal/engine"
)

func TestSetupDefaults(t *testing.T) {
	cfg, err := Setup(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "8082", cfg.GrpcPort)
	assert.Equal(t, 5, cfg.SearchDepth)
	assert.True(t, cfg.UseMTD)
	assert.Equal(t, 10*time.Minute, cfg.CacheTTL)
	assert.Equal(t, "gomoku", cfg.MongoDatabase)
	assert.Equal(t, 30, cfg.MatchRounds)
	assert.Empty(t, cfg.RedisUrl)
	assert.Empty(t, cfg.EngineGrpcAddr)
}

func TestSetupFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "SERVER_PORT=9000\nSEARCH_DEPTH=3\nUSE_MTD=false\nCACHE_TTL=90s\nREDIS_URL=localhost:6379\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("SEARCH_DEPTH", "4")

	cfg, err := Setup(path)
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.ServerPort)
	assert.Equal(t, 4, cfg.SearchDepth, "environment wins over the file")
	assert.False(t, cfg.UseMTD)
	assert.Equal(t, 90*time.Second, cfg.CacheTTL)
	assert.Equal(t, "localhost:6379", cfg.RedisUrl)
}

func TestSetupRejectsDepth(t *testing.T) {
	for _, depth := range []string{"0", "-1", strconv.Itoa(engine.MaxDepth + 1)} {
		t.Run(depth, func(t *testing.T) {
			t.Setenv("SEARCH_DEPTH", depth)
			_, err := Setup("")
			assert.Error(t, err)
		})
	}
}

func TestSetupAcceptsMaxDepth(t *testing.T) {
	t.Setenv("SEARCH_DEPTH", strconv.Itoa(engine.MaxDepth))
	cfg, err := Setup("")
	require.NoError(t, err)
	assert.Equal(t, engine.MaxDepth, cfg.SearchDepth)
}
