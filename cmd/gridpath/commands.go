package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/pdrpinto/gridpath"
	"github.com/pdrpinto/gridpath/bench"
	"github.com/pdrpinto/gridpath/grid"
	"github.com/pdrpinto/gridpath/internal/config"
	"github.com/pdrpinto/gridpath/pkg/logger"
	"github.com/pdrpinto/gridpath/render"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type gridFlags struct {
	width  int
	height int
	seed   uint64
}

func newRootCmd(out io.Writer) *cobra.Command {
	cfg, cfgErr := config.Load()

	root := &cobra.Command{
		Use:           "gridpath",
		Short:         "A* search over seeded random obstacle grids",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return cfgErr
		},
	}
	root.SetOut(out)

	var gf gridFlags
	root.PersistentFlags().IntVar(&gf.width, "width", cfg.Width, "grid width")
	root.PersistentFlags().IntVar(&gf.height, "height", cfg.Height, "grid height")
	root.PersistentFlags().Uint64Var(&gf.seed, "seed", cfg.Seed, "map seed (0 for random)")

	root.AddCommand(newRunCmd(&cfg, &gf), newBenchCmd(&cfg, &gf))
	return root
}

func (gf *gridFlags) build() (*grid.Grid, error) {
	if gf.seed == 0 {
		gf.seed = uint64(time.Now().UnixNano())
		logger.Log.Infof("Using random map seed: %d", gf.seed)
	} else {
		logger.Log.Infof("Using explicit map seed: %d", gf.seed)
	}
	return grid.Generate(gf.width, gf.height, gf.seed)
}

func newRunCmd(cfg *config.Config, gf *gridFlags) *cobra.Command {
	var (
		startFlag, goalFlag string
		noMap               bool
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Generate a map, search it once and print the path",
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := gf.build()
			if err != nil {
				return err
			}
			start, err := parseCell(startFlag, grid.Cell{})
			if err != nil {
				return fmt.Errorf("--start: %w", err)
			}
			goal, err := parseCell(goalFlag, grid.Cell{X: g.Width() - 1, Y: g.Height() - 1})
			if err != nil {
				return fmt.Errorf("--goal: %w", err)
			}

			out := cmd.OutOrStdout()
			if !noMap {
				if err := render.Render(out, g, nil); err != nil {
					return err
				}
			}

			options := append(cfg.SearchOptions(), gridpath.WithLogger(logger.Log))
			res, err := gridpath.Search(cmd.Context(), g, start, goal, options...)
			if err != nil {
				return err
			}
			if !noMap {
				fmt.Fprintln(out)
				if err := render.Render(out, g, res); err != nil {
					return err
				}
			}
			return render.Trace(out, res)
		},
	}
	cmd.Flags().StringVar(&startFlag, "start", "", "start cell as x,y (default 0,0)")
	cmd.Flags().StringVar(&goalFlag, "goal", "", "goal cell as x,y (default bottom-right corner)")
	cmd.Flags().BoolVar(&noMap, "no-map", false, "only print the path trace")
	return cmd
}

func newBenchCmd(cfg *config.Config, gf *gridFlags) *cobra.Command {
	var trials, rounds, workers int
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time repeated searches between random open cells",
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := gf.build()
			if err != nil {
				return err
			}
			pairs, err := bench.RandomTrials(g, trials, gf.seed)
			if err != nil {
				return err
			}
			report, err := bench.Run(cmd.Context(), g, pairs, bench.Config{
				Rounds:  rounds,
				Workers: workers,
				Search:  cfg.SearchOptions(),
				Logger:  logger.Log,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, m := range report.Measurements {
				fmt.Fprintf(out, "%s %s -> %s %-9s cost=%d steps=%d iterations=%d min=%s mean=%s max=%s\n",
					m.Trial.ID, m.Trial.Start, m.Trial.Goal, m.Status, m.Cost, m.Steps, m.Iterations, m.Min, m.Mean, m.Max)
				if !m.Stable {
					logger.Log.WithField("trial", m.Trial.ID.String()).Warn("search returned different paths across rounds")
				}
			}
			logger.Log.WithFields(logrus.Fields{
				"trials": len(report.Measurements),
				"found":  report.Found(),
				"total":  report.Total,
			}).Info("bench finished")
			return nil
		},
	}
	cmd.Flags().IntVar(&trials, "trials", 32, "number of start/goal pairs")
	cmd.Flags().IntVar(&rounds, "rounds", 5, "searches per pair")
	cmd.Flags().IntVar(&workers, "workers", 0, "concurrent workers (0 for one per CPU)")
	return cmd
}

// parseCell reads "x,y". An empty string gives def.
func parseCell(s string, def grid.Cell) (grid.Cell, error) {
	if s == "" {
		return def, nil
	}
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return grid.Cell{}, fmt.Errorf("cell %q is not x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return grid.Cell{}, fmt.Errorf("cell %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return grid.Cell{}, fmt.Errorf("cell %q: %w", s, err)
	}
	return grid.Cell{X: x, Y: y}, nil
}
