package heuristic

import (
	"sort"
	"time"

	"git.solver4all.com/azaryc2s/mkp"
	"git.solver4all.com/azaryc2s/mkp/logging"
)

// Greedy packs the items by efficiency descending, ties by id ascending.
func (s *Solver) Greedy() *mkp.Solution {
	start := time.Now()

	order := GreedyOrder(s.inst)
	k := newKernel(s.inst)
	k.pack(order)

	sol := solution(s.inst, GreedyName, k.snapshot())
	sol.Runs = 1
	sol.SetDuration(time.Since(start))

	s.metrics.observe(GreedyName, 1, sol.Duration, sol.TotalProfit)
	s.logger.V(logging.DEBUG).Info("Greedy construction done",
		"profit", sol.TotalProfit, "picked", len(sol.PickedItems), "duration", sol.Duration)
	return sol
}

// GreedyOrder returns the item indices of inst sorted for the greedy constructor.
func GreedyOrder(inst *mkp.Instance) []int {
	order := make([]int, len(inst.Items))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return mkp.MoreEfficient(inst.Items[order[a]], inst.Items[order[b]])
	})
	return order
}
