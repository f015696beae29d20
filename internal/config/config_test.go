package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pdrpinto/gridpath"
	"github.com/pdrpinto/gridpath/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, Config{
		Width:             10,
		Height:            3,
		OrthogonalCost:    99,
		DiagonalCost:      100,
		ObstacleSurcharge: 1,
		BudgetMultiplier:  10,
	}, cfg)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("GRIDPATH_WIDTH", "64")
	t.Setenv("GRIDPATH_SEED", "1234")
	t.Setenv("GRIDPATH_SURCHARGE", "0")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, 64, cfg.Width)
	assert.Equal(t, 3, cfg.Height)
	assert.Equal(t, uint64(1234), cfg.Seed)
	assert.Equal(t, 0, cfg.ObstacleSurcharge)
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("GRIDPATH_BUDGET_K=3\n"), 0o600))
	// godotenv sets the variable on the process; t.Setenv restores it afterwards.
	t.Setenv("GRIDPATH_BUDGET_K", "")
	require.NoError(t, os.Unsetenv("GRIDPATH_BUDGET_K"))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.BudgetMultiplier)
}

func TestLoadInvalid(t *testing.T) {
	t.Setenv("GRIDPATH_HEIGHT", "tall")
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.ErrorContains(t, err, "GRIDPATH_HEIGHT")

	t.Setenv("GRIDPATH_HEIGHT", "3")
	t.Setenv("GRIDPATH_SEED", "-1")
	_, err = Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.ErrorContains(t, err, "GRIDPATH_SEED")
}

func TestSearchOptions(t *testing.T) {
	cfg := Config{OrthogonalCost: 10, DiagonalCost: 14, ObstacleSurcharge: 0, BudgetMultiplier: 2}
	g, err := grid.New(4, 1, make([]bool, 4))
	require.NoError(t, err)

	res, err := gridpath.Search(context.Background(), g, grid.Cell{}, grid.Cell{X: 3}, cfg.SearchOptions()...)
	require.NoError(t, err)
	assert.Equal(t, 30, res.Cost)
	assert.Equal(t, 10, res.Budget)
}
