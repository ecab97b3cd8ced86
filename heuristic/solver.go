// Package heuristic implements construction and improvement heuristics for the
// multidimensional knapsack problem. All of them reduce to choosing item orders and
// packing them with a single admission pass.
package heuristic

import (
	"math/rand"
	"runtime"
	"time"

	"github.com/go-logr/logr"

	"git.solver4all.com/azaryc2s/mkp"
)

// Names reported in Solution.Heuristic.
const (
	GreedyName  = "greedy"
	RandomName  = "random"
	ImproveName = "1-exchange"
)

// PermSource provides the random permutations of the random constructor.
// *rand.Rand satisfies it.
type PermSource interface {
	Perm(n int) []int
}

// Solver runs the heuristics on one instance. The instance is only read. A Solver is
// not safe for concurrent use since Random draws from its permutation source.
type Solver struct {
	inst    *mkp.Instance
	workers int
	source  PermSource
	seed    int64
	logger  logr.Logger
	metrics *Metrics
}

type Option func(*Solver)

// WithWorkers bounds the number of goroutines evaluating candidates. Values below one
// select GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(s *Solver) {
		if n < 1 {
			n = runtime.GOMAXPROCS(0)
		}
		s.workers = n
	}
}

// WithSeed makes the random constructor reproducible.
func WithSeed(seed int64) Option {
	return func(s *Solver) {
		s.seed = seed
		s.source = rand.New(rand.NewSource(seed))
	}
}

// WithSource replaces the permutation source.
func WithSource(source PermSource) Option {
	return func(s *Solver) {
		s.seed = 0
		s.source = source
	}
}

func WithLogger(logger logr.Logger) Option {
	return func(s *Solver) {
		s.logger = logger
	}
}

func WithMetrics(m *Metrics) Option {
	return func(s *Solver) {
		s.metrics = m
	}
}

func New(inst *mkp.Instance, opts ...Option) *Solver {
	s := &Solver{
		inst:    inst,
		workers: runtime.GOMAXPROCS(0),
		logger:  logr.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.source == nil {
		WithSeed(time.Now().UnixNano())(s)
	}
	return s
}

// Seed returns the seed of the permutation source, 0 when a custom source is used.
func (s *Solver) Seed() int64 {
	return s.seed
}

func (s *Solver) Workers() int {
	return s.workers
}
