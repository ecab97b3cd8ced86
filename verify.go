package mkp

import (
	"fmt"
)

// Verify checks that sol is a consistent, feasible solution of inst: every id names a
// distinct item, the profit matches, no dimension exceeds its capacity and the stored
// remaining capacity and utilization agree with the picked items.
func Verify(inst *Instance, sol *Solution) error {
	used := make([]int, inst.M)
	seen := make(map[int]bool, len(sol.PickedItems))
	profit := 0
	for _, id := range sol.PickedItems {
		item, ok := inst.Item(id)
		if !ok {
			return fmt.Errorf("item %d does not exist", id)
		}
		if seen[id] {
			return fmt.Errorf("item %d picked twice", id)
		}
		seen[id] = true
		profit += item.Profit
		for d, w := range item.Weights {
			used[d] += w
		}
	}
	if profit != sol.TotalProfit {
		return fmt.Errorf("picked items sum up to a profit of %d but %d is reported", profit, sol.TotalProfit)
	}
	for d, total := range inst.Capacity {
		if used[d] > total {
			return fmt.Errorf("dimension %d uses %d of a capacity of %d", d+1, used[d], total)
		}
	}
	if sol.Remaining != nil {
		if len(sol.Remaining) != inst.M {
			return fmt.Errorf("%d remaining capacities reported for %d dimensions", len(sol.Remaining), inst.M)
		}
		for d, total := range inst.Capacity {
			if sol.Remaining[d] != total-used[d] {
				return fmt.Errorf("dimension %d has %d left but %d is reported", d+1, total-used[d], sol.Remaining[d])
			}
		}
	}
	if sol.Utilization != nil {
		remaining := make([]int, inst.M)
		for d, total := range inst.Capacity {
			remaining[d] = total - used[d]
		}
		want := FormatUtilization(inst.Capacity, remaining)
		if len(sol.Utilization) != len(want) {
			return fmt.Errorf("%d utilization values reported for %d dimensions", len(sol.Utilization), inst.M)
		}
		for d := range want {
			if sol.Utilization[d] != want[d] {
				return fmt.Errorf("dimension %d is utilized %s but %s is reported", d+1, want[d], sol.Utilization[d])
			}
		}
	}
	return nil
}
