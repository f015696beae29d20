package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pdrpinto/gridpath"
)

// Config holds the defaults for the command line tools.
type Config struct {
	Width             int    // Grid width in cells
	Height            int    // Grid height in cells
	Seed              uint64 // Map seed, 0 picks one from the clock
	OrthogonalCost    int    // Cost of a horizontal or vertical move
	DiagonalCost      int    // Cost of a diagonal move
	ObstacleSurcharge int    // Heuristic inflation per remaining move
	BudgetMultiplier  int    // K in the (width+height)*K iteration cap
}

// Load reads the files (".env" when none are given) if they exist and then
// the GRIDPATH_* environment variables. Unset variables keep their defaults.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var (
		cfg Config
		err error
	)
	if cfg.Width, err = getEnvAsInt("GRIDPATH_WIDTH", 10); err != nil {
		return Config{}, err
	}
	if cfg.Height, err = getEnvAsInt("GRIDPATH_HEIGHT", 3); err != nil {
		return Config{}, err
	}
	if cfg.Seed, err = getEnvAsUint("GRIDPATH_SEED", 0); err != nil {
		return Config{}, err
	}
	if cfg.OrthogonalCost, err = getEnvAsInt("GRIDPATH_ORTHOGONAL_COST", gridpath.DefaultOrthogonalCost); err != nil {
		return Config{}, err
	}
	if cfg.DiagonalCost, err = getEnvAsInt("GRIDPATH_DIAGONAL_COST", gridpath.DefaultDiagonalCost); err != nil {
		return Config{}, err
	}
	if cfg.ObstacleSurcharge, err = getEnvAsInt("GRIDPATH_SURCHARGE", gridpath.DefaultObstacleSurcharge); err != nil {
		return Config{}, err
	}
	if cfg.BudgetMultiplier, err = getEnvAsInt("GRIDPATH_BUDGET_K", gridpath.DefaultBudgetMultiplier); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// SearchOptions turns the cost settings into search options.
func (c Config) SearchOptions() []gridpath.Option {
	return []gridpath.Option{
		gridpath.WithCosts(c.OrthogonalCost, c.DiagonalCost),
		gridpath.WithObstacleSurcharge(c.ObstacleSurcharge),
		gridpath.WithBudgetMultiplier(c.BudgetMultiplier),
	}
}

// getEnvAsInt retrieves an integer environment variable or returns defaultValue if not set.
func getEnvAsInt(key string, defaultValue int) (int, error) {
	valueStr, ok := os.LookupEnv(key)
	if !ok || valueStr == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("environment variable %s must be an integer: %w", key, err)
	}
	return value, nil
}

func getEnvAsUint(key string, defaultValue uint64) (uint64, error) {
	valueStr, ok := os.LookupEnv(key)
	if !ok || valueStr == "" {
		return defaultValue, nil
	}
	value, err := strconv.ParseUint(valueStr, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("environment variable %s must be an unsigned integer: %w", key, err)
	}
	return value, nil
}
