package heuristic

import (
	"time"

	"git.solver4all.com/azaryc2s/mkp"
	"git.solver4all.com/azaryc2s/mkp/logging"
)

// Random packs runs uniformly random item orders in parallel and keeps the most
// profitable one, the earliest drawn on ties. The permutations are drawn up front in
// sequence, so the first runs orders are the same for every larger runs.
func (s *Solver) Random(runs int) *mkp.Solution {
	start := time.Now()

	perms := make([][]int, max(runs, 0))
	for i := range perms {
		perms[i] = s.source.Perm(len(s.inst.Items))
	}

	best, ok := s.bestOf(len(perms), func(i int, k *kernel) {
		k.pack(perms[i])
	})
	if !ok {
		best = candidate{}
	}

	sol := solution(s.inst, RandomName, best)
	sol.Runs = len(perms)
	sol.Seed = s.seed
	sol.SetDuration(time.Since(start))

	s.metrics.observe(RandomName, len(perms), sol.Duration, sol.TotalProfit)
	s.logger.V(logging.DEBUG).Info("Random construction done",
		"runs", len(perms), "profit", sol.TotalProfit, "picked", len(sol.PickedItems),
		"workers", s.workers, "duration", sol.Duration)
	return sol
}
