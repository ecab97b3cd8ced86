package heuristic

import (
	"strings"
	"time"

	"git.solver4all.com/azaryc2s/mkp"
	"git.solver4all.com/azaryc2s/mkp/logging"
)

// Improve evaluates the 1-exchange neighborhood of incumbent in parallel and returns
// the best neighbor if it is strictly more profitable. Otherwise the returned solution
// has the incumbent's picks. Either way the pass is added to Passes and its time to
// Duration. incumbent is not modified.
func (s *Solver) Improve(incumbent *mkp.Solution) *mkp.Solution {
	sol, _ := s.improve(incumbent)
	return sol
}

// ImproveK applies Improve up to passes times and stops after the first pass that
// does not improve, since the following ones would search the same neighborhood.
func (s *Solver) ImproveK(incumbent *mkp.Solution, passes int) *mkp.Solution {
	current := incumbent.Clone()
	for i := 0; i < passes; i++ {
		next, improved := s.improve(current)
		current = next
		if !improved {
			break
		}
	}
	return current
}

func (s *Solver) improve(incumbent *mkp.Solution) (*mkp.Solution, bool) {
	start := time.Now()

	nb := NewNeighborhood(s.inst, incumbent)
	var (
		best candidate
		ok   bool
	)
	if nb.Len() > 0 {
		best, ok = s.bestOf(nb.Len(), func(i int, k *kernel) {
			n := nb.At(i)
			k.packReplaced(nb.Base, n.Position, n.Candidate)
		})
	}

	improved := ok && best.profit > incumbent.TotalProfit
	var result *mkp.Solution
	if improved {
		result = solution(s.inst, incumbent.Heuristic, best)
		result.Runs = incumbent.Runs
		result.Seed = incumbent.Seed
		result.System = incumbent.System
		result.Comment = incumbent.Comment
	} else {
		result = incumbent.Clone()
	}
	elapsed := time.Since(start)
	result.Heuristic = improvedName(incumbent.Heuristic)
	result.Passes = incumbent.Passes + 1
	result.SetDuration(incumbent.Duration + elapsed)

	s.metrics.observe(ImproveName, nb.Len(), elapsed, result.TotalProfit)
	if improved {
		s.metrics.improved(ImproveName)
	}
	s.logger.V(logging.TRACE).Info("Improvement pass done",
		"neighbors", nb.Len(), "incumbent", incumbent.TotalProfit, "profit", result.TotalProfit,
		"improved", improved, "duration", elapsed)
	return result, improved
}

func improvedName(heuristic string) string {
	suffix := "+" + ImproveName
	if heuristic == "" {
		return ImproveName
	}
	if strings.HasSuffix(heuristic, suffix) {
		return heuristic
	}
	return heuristic + suffix
}
