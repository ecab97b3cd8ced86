package heuristic

import (
	"git.solver4all.com/azaryc2s/mkp"
)

// candidate is the outcome of one admission pass over an item order.
type candidate struct {
	picks     []int // item indices in admission order
	profit    int
	remaining []int
}

// kernel walks item orders and admits every item whose weights fit the capacity left.
// It owns its buffers, so one kernel must not be shared between goroutines.
type kernel struct {
	inst      *mkp.Instance
	remaining []int
	picks     []int
	profit    int

	order []int // scratch for orders derived from another one
}

func newKernel(inst *mkp.Instance) *kernel {
	return &kernel{
		inst:      inst,
		remaining: make([]int, inst.M),
		picks:     make([]int, 0, inst.N),
	}
}

// pack runs a single pass over order, a sequence of item indices.
func (k *kernel) pack(order []int) {
	copy(k.remaining, k.inst.Capacity)
	k.picks = k.picks[:0]
	k.profit = 0

ITEMS:
	for _, idx := range order {
		item := k.inst.Items[idx]
		for d, w := range item.Weights {
			if w > k.remaining[d] {
				continue ITEMS
			}
		}
		for d, w := range item.Weights {
			k.remaining[d] -= w
		}
		k.picks = append(k.picks, idx)
		k.profit += item.Profit
	}
}

// packReplaced packs base with the element at position replaced by idx.
func (k *kernel) packReplaced(base []int, position, idx int) {
	k.order = append(k.order[:0], base...)
	k.order[position] = idx
	k.pack(k.order)
}

func (k *kernel) snapshot() candidate {
	return candidate{
		picks:     append([]int(nil), k.picks...),
		profit:    k.profit,
		remaining: append([]int(nil), k.remaining...),
	}
}

// solution converts c into a solution referring to items by id.
func solution(inst *mkp.Instance, heuristic string, c candidate) *mkp.Solution {
	ids := make([]int, len(c.picks))
	for i, idx := range c.picks {
		ids[i] = inst.Items[idx].ID
	}
	remaining := c.remaining
	if remaining == nil {
		remaining = append([]int(nil), inst.Capacity...)
	}
	return mkp.NewSolution(inst, heuristic, ids, c.profit, remaining)
}

// Pack admits the items with the given ids in the given order and returns the
// resulting solution. Unknown and repeated ids are skipped.
func Pack(inst *mkp.Instance, ids []int) *mkp.Solution {
	order := indices(inst, ids)
	k := newKernel(inst)
	k.pack(order)
	sol := solution(inst, "pack", k.snapshot())
	sol.Runs = 1
	return sol
}

func indices(inst *mkp.Instance, ids []int) []int {
	order := make([]int, 0, len(ids))
	seen := make(map[int]bool, len(ids))
	for _, id := range ids {
		if _, ok := inst.Item(id); ok && !seen[id] {
			seen[id] = true
			order = append(order, id-1)
		}
	}
	return order
}
