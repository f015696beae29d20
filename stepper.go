package gridpath

import (
	"fmt"

	"github.com/pdrpinto/gridpath/grid"
	"github.com/pdrpinto/gridpath/internal"
	"github.com/sirupsen/logrus"
)

// StepSnapshot exposes the per-iteration state of the search
type StepSnapshot struct {
	Current     grid.Cell
	Step        int
	OpenCount   int
	ClosedCount int
	Done        bool
	Status      Status
	// Path is only set once the search is done.
	Path []grid.Cell
}

// Stepper runs one node expansion per Step. It owns all search state, so a
// grid may be shared by any number of steppers.
type Stepper struct {
	grid      *grid.Grid
	start     grid.Cell
	goal      grid.Cell
	goalIndex int
	cfg       Config
	log       logrus.FieldLogger

	open   *frontier
	closed map[int]*searchNode
	best   *searchNode

	iterations int
	budget     int
	status     Status
	reason     Reason
	current    grid.Cell
	result     Result
}

// NewStepper validates the input and seeds the frontier with the start cell.
func NewStepper(g *grid.Grid, start, goal grid.Cell, options ...Option) (*Stepper, error) {
	cfg := DefaultConfig()
	for _, o := range options {
		o(&cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = discard
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrNilGrid
	}
	if !g.Contains(start) {
		return nil, fmt.Errorf("%w: start %s on %dx%d grid", ErrInvalidCoordinate, start, g.Width(), g.Height())
	}
	if !g.Contains(goal) {
		return nil, fmt.Errorf("%w: goal %s on %dx%d grid", ErrInvalidCoordinate, goal, g.Width(), g.Height())
	}

	s := &Stepper{
		grid:      g,
		start:     start,
		goal:      goal,
		goalIndex: g.Index(goal.X, goal.Y),
		cfg:       cfg,
		log: cfg.Logger.WithFields(logrus.Fields{
			"start": start.String(),
			"goal":  goal.String(),
		}),
		open:    newFrontier(),
		closed:  make(map[int]*searchNode),
		budget:  (g.Width() + g.Height()) * cfg.BudgetMultiplier,
		status:  StatusSearching,
		current: start,
	}

	h := cfg.heuristic(start, goal)
	startNode := &searchNode{
		cell:   start,
		index:  g.Index(start.X, start.Y),
		h:      h,
		f:      h,
		parent: internal.NoParent,
	}
	s.open.push(startNode)
	s.best = startNode
	return s, nil
}

// Done reports whether the search reached a terminal state.
func (s *Stepper) Done() bool { return s.status != StatusSearching }

// Result is the outcome of the search. Before the search is done only Status,
// Iterations and Budget are set.
func (s *Stepper) Result() Result {
	if !s.Done() {
		return Result{Status: s.status, Iterations: s.iterations, Budget: s.budget}
	}
	return s.result
}

// Step advances the search by one node expansion and returns a snapshot
func (s *Stepper) Step() StepSnapshot {
	if s.Done() {
		return s.snapshot()
	}

	current, ok := s.open.popMin()
	if !ok {
		s.finish(StatusExhausted, ReasonFrontierEmpty, s.best)
		return s.snapshot()
	}
	s.iterations++
	s.current = current.cell
	s.closed[current.index] = current

	// Only the start can be an obstacle here. It is closed without
	// expanding, so a blocked start always ends Exhausted.
	blocked := s.grid.IsObstacle(current.index)
	if current.index == s.goalIndex && !blocked {
		s.finish(StatusFound, ReasonNone, current)
		return s.snapshot()
	}
	if !blocked {
		s.expand(current)
	}

	if current.h < s.best.h || (current.h == s.best.h && current.g < s.best.g) {
		s.best = current
	}

	if s.iterations > s.budget {
		s.finish(StatusExhausted, ReasonBudgetExceeded, s.best)
	}
	return s.snapshot()
}

func (s *Stepper) expand(current *searchNode) {
	for _, o := range neighborOffsets {
		x, y := current.cell.X+o.dx, current.cell.Y+o.dy
		if !s.grid.InBounds(x, y) {
			continue
		}
		index := s.grid.Index(x, y)
		if !s.grid.IsOpen(index) {
			continue
		}
		if _, closed := s.closed[index]; closed {
			continue
		}

		tentativeG := current.g + s.cfg.stepCost(o)
		if queued, ok := s.open.lookup(index); ok && queued.g <= tentativeG {
			continue
		}

		cell := grid.Cell{X: x, Y: y}
		h := s.cfg.heuristic(cell, s.goal)
		s.open.push(&searchNode{
			cell:   cell,
			index:  index,
			g:      tentativeG,
			h:      h,
			f:      tentativeG + h,
			parent: current.index,
		})
	}
}

func (s *Stepper) finish(status Status, reason Reason, terminal *searchNode) {
	s.status = status
	s.reason = reason

	indices := internal.ReconstructPath(func(index int) int {
		node, ok := s.closed[index]
		if !ok {
			return internal.NoParent
		}
		return node.parent
	}, terminal.index, len(s.closed))

	path := make([]grid.Cell, len(indices))
	members := make(map[int]struct{}, len(indices))
	for i, index := range indices {
		x, y := s.grid.Coords(index)
		path[i] = grid.Cell{X: x, Y: y}
		members[index] = struct{}{}
	}

	s.result = Result{
		Status:     status,
		Reason:     reason,
		Path:       path,
		Indices:    indices,
		Cost:       terminal.g,
		Iterations: s.iterations,
		Expanded:   len(s.closed),
		Budget:     s.budget,
		members:    members,
	}

	s.log.WithFields(logrus.Fields{
		"status":     status.String(),
		"reason":     reason.String(),
		"iterations": s.iterations,
		"budget":     s.budget,
		"expanded":   len(s.closed),
		"cost":       terminal.g,
		"terminal":   terminal.cell.String(),
	}).Debug("search finished")
}

func (s *Stepper) snapshot() StepSnapshot {
	snap := StepSnapshot{
		Current:     s.current,
		Step:        s.iterations,
		OpenCount:   s.open.Len(),
		ClosedCount: len(s.closed),
		Done:        s.Done(),
		Status:      s.status,
	}
	if snap.Done {
		snap.Path = s.result.Path
	}
	return snap
}
