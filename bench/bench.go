// Package bench times repeated searches over a shared grid.
package bench

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"runtime"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/pdrpinto/gridpath"
	"github.com/pdrpinto/gridpath/grid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

var ErrNoOpenCells = errors.New("bench: grid has no open cells")

// Trial is one start/goal pair to time.
type Trial struct {
	ID    uuid.UUID
	Start grid.Cell
	Goal  grid.Cell
}

// Config controls how trials are run.
type Config struct {
	Rounds  int
	Workers int
	Search  []gridpath.Option
	Logger  logrus.FieldLogger
}

// Measurement is the timing of one trial over every round.
type Measurement struct {
	Trial      Trial
	Status     gridpath.Status
	Cost       int
	Steps      int
	Iterations int
	Min        time.Duration
	Mean       time.Duration
	Max        time.Duration
	// Stable is false if any round returned a different path than the first.
	Stable bool
}

// Report holds measurements in trial order.
type Report struct {
	Measurements []Measurement
	Total        time.Duration
}

// Found counts trials that reached their goal.
func (r Report) Found() int {
	n := 0
	for _, m := range r.Measurements {
		if m.Status == gridpath.StatusFound {
			n++
		}
	}
	return n
}

// RandomTrials picks n start/goal pairs among the open cells of g. The same
// grid and seed always give the same pairs, apart from the random IDs.
func RandomTrials(g *grid.Grid, n int, seed uint64) ([]Trial, error) {
	open := g.OpenCells()
	if len(open) == 0 {
		return nil, ErrNoOpenCells
	}
	rng := rand.New(rand.NewPCG(seed, uint64(n)))
	cell := func() grid.Cell {
		x, y := g.Coords(open[rng.IntN(len(open))])
		return grid.Cell{X: x, Y: y}
	}
	trials := make([]Trial, n)
	for i := range trials {
		trials[i] = Trial{ID: uuid.New(), Start: cell(), Goal: cell()}
	}
	return trials, nil
}

// Run times every trial cfg.Rounds times. Trials are spread over cfg.Workers
// goroutines that all read the same grid.
func Run(ctx context.Context, g *grid.Grid, trials []Trial, cfg Config) (Report, error) {
	if cfg.Rounds <= 0 {
		cfg.Rounds = 1
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	log := cfg.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	began := time.Now()
	measurements := make([]Measurement, len(trials))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(cfg.Workers)
	for i, trial := range trials {
		group.Go(func() error {
			m, err := measure(ctx, g, trial, cfg)
			if err != nil {
				return fmt.Errorf("trial %s: %w", trial.ID, err)
			}
			measurements[i] = m
			log.WithFields(logrus.Fields{
				"trial":      trial.ID.String(),
				"start":      trial.Start.String(),
				"goal":       trial.Goal.String(),
				"status":     m.Status.String(),
				"iterations": m.Iterations,
				"mean":       m.Mean,
			}).Debug("trial timed")
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return Report{}, err
	}
	return Report{Measurements: measurements, Total: time.Since(began)}, nil
}

func measure(ctx context.Context, g *grid.Grid, trial Trial, cfg Config) (Measurement, error) {
	m := Measurement{Trial: trial, Stable: true}
	var total time.Duration
	var first []int
	for round := 0; round < cfg.Rounds; round++ {
		began := time.Now()
		res, err := gridpath.Search(ctx, g, trial.Start, trial.Goal, cfg.Search...)
		elapsed := time.Since(began)
		if err != nil {
			return Measurement{}, err
		}

		total += elapsed
		if round == 0 {
			first = res.Indices
			m.Status, m.Cost, m.Steps, m.Iterations = res.Status, res.Cost, res.Steps(), res.Iterations
			m.Min, m.Max = elapsed, elapsed
			continue
		}
		m.Min, m.Max = min(m.Min, elapsed), max(m.Max, elapsed)
		if !slices.Equal(first, res.Indices) {
			m.Stable = false
		}
	}
	m.Mean = total / time.Duration(cfg.Rounds)
	return m, nil
}
