package gridpath

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/pdrpinto/gridpath/grid"
	"github.com/sirupsen/logrus"
)

var (
	ErrNilGrid           = errors.New("gridpath: nil grid")
	ErrInvalidCoordinate = errors.New("gridpath: coordinate outside grid")
	ErrInvalidConfig     = errors.New("gridpath: invalid config")
)

// Status is the state of a search.
type Status int

const (
	StatusSearching Status = iota
	StatusFound
	StatusExhausted
)

func (s Status) String() string {
	switch s {
	case StatusSearching:
		return "searching"
	case StatusFound:
		return "found"
	case StatusExhausted:
		return "exhausted"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Reason tells an exhausted search apart. Callers treat both reasons the same.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonFrontierEmpty
	ReasonBudgetExceeded
)

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonFrontierEmpty:
		return "frontier empty"
	case ReasonBudgetExceeded:
		return "budget exceeded"
	}
	return fmt.Sprintf("Reason(%d)", int(r))
}

// Result contains the outcome of a search
type Result struct {
	Status Status
	Reason Reason
	// Path runs from the start to the goal when Found, otherwise to the
	// best-seen cell.
	Path       []grid.Cell
	Indices    []int
	Cost       int
	Iterations int
	Expanded   int
	Budget     int

	members map[int]struct{}
}

// Found reports whether the goal was reached.
func (r Result) Found() bool { return r.Status == StatusFound }

// Steps is the number of moves along the path.
func (r Result) Steps() int {
	if len(r.Path) == 0 {
		return 0
	}
	return len(r.Path) - 1
}

// Contains reports whether the cell with the given linear index is on the path.
func (r Result) Contains(index int) bool {
	_, ok := r.members[index]
	return ok
}

// Config holds the cost model and safety valve of a search.
type Config struct {
	OrthogonalCost int
	DiagonalCost   int
	// ObstacleSurcharge inflates the heuristic per remaining step. Any value
	// above zero gives up strict admissibility for fewer expansions.
	ObstacleSurcharge int
	// BudgetMultiplier is K in the (width+height)*K iteration cap.
	BudgetMultiplier int
	Logger           logrus.FieldLogger
}

const (
	DefaultOrthogonalCost    = 99
	DefaultDiagonalCost      = 100
	DefaultObstacleSurcharge = 1
	DefaultBudgetMultiplier  = 10
)

var discard = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return l
}()

// DefaultConfig returns the reference cost policy.
func DefaultConfig() Config {
	return Config{
		OrthogonalCost:    DefaultOrthogonalCost,
		DiagonalCost:      DefaultDiagonalCost,
		ObstacleSurcharge: DefaultObstacleSurcharge,
		BudgetMultiplier:  DefaultBudgetMultiplier,
		Logger:            discard,
	}
}

func (c Config) Validate() error {
	switch {
	case c.OrthogonalCost <= 0 || c.DiagonalCost <= 0:
		return fmt.Errorf("%w: step costs must be positive (orthogonal %d, diagonal %d)", ErrInvalidConfig, c.OrthogonalCost, c.DiagonalCost)
	case c.ObstacleSurcharge < 0:
		return fmt.Errorf("%w: negative obstacle surcharge %d", ErrInvalidConfig, c.ObstacleSurcharge)
	case c.BudgetMultiplier <= 0:
		return fmt.Errorf("%w: budget multiplier must be positive, got %d", ErrInvalidConfig, c.BudgetMultiplier)
	}
	return nil
}

// Option is a function that modifies Config.
type Option func(*Config)

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	return func(c *Config) { *c = cfg }
}

// WithCosts sets the orthogonal and diagonal step costs.
func WithCosts(orthogonal, diagonal int) Option {
	return func(c *Config) {
		c.OrthogonalCost = orthogonal
		c.DiagonalCost = diagonal
	}
}

func WithObstacleSurcharge(surcharge int) Option {
	return func(c *Config) { c.ObstacleSurcharge = surcharge }
}

func WithBudgetMultiplier(k int) Option {
	return func(c *Config) { c.BudgetMultiplier = k }
}

// WithLogger routes search diagnostics to logger at debug level.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *Config) { c.Logger = logger }
}

// Search runs the A* search to completion. Reaching the goal is reported as
// StatusFound; running out of frontier or iteration budget is StatusExhausted
// with the best partial path, not an error. Errors are reserved for invalid
// input and context cancellation, which is checked between iterations.
func Search(
	ctx context.Context,
	g *grid.Grid,
	start grid.Cell,
	goal grid.Cell,
	options ...Option,
) (Result, error) {
	stepper, err := NewStepper(g, start, goal, options...)
	if err != nil {
		return Result{}, err
	}
	for !stepper.Done() {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		stepper.Step()
	}
	return stepper.Result(), nil
}
