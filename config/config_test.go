package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nelhage/gomokuarm/ai"
	"github.com/nelhage/gomokuarm/gomoku"
)

func TestDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, gomoku.DefaultSize, cfg.BoardSize)
	assert.Equal(t, ":9090", cfg.GRPCAddr)
	w, err := cfg.Weights()
	require.NoError(t, err)
	assert.Equal(t, ai.DefaultWeights, w)
}

func TestFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gomokuarm.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
board_size: 15
primary: white
primary_attack: 2.5
http_addr: "127.0.0.1:8000"
`), 0644))
	t.Setenv("GOMOKUARM_HTTP_ADDR", "127.0.0.1:9000")
	t.Setenv("GOMOKUARM_DEBUG", "true")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 15, cfg.BoardSize)
	assert.Equal(t, "127.0.0.1:9000", cfg.HTTPAddr)
	assert.True(t, cfg.Debug)

	w, err := cfg.Weights()
	require.NoError(t, err)
	assert.Equal(t, gomoku.White, w.Primary)
	assert.Equal(t, 2.5, w.PrimaryAttack)
	assert.Equal(t, ai.DefaultWeights.SecondaryAttack, w.SecondaryAttack)
	assert.Equal(t, ai.DefaultWeights.Critical, w.Critical)
}

func TestBadPrimary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gomokuarm.yaml")
	require.NoError(t, os.WriteFile(path, []byte("primary: empty\n"), 0644))
	_, err := Load(path)
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
