package mkp

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// NewSolution assembles a solution of inst from the outcome of an admission pass.
// ids are the admitted item ids in admission order and remaining the capacity left
// in every dimension afterwards.
func NewSolution(inst *Instance, heuristic string, ids []int, profit int, remaining []int) *Solution {
	return &Solution{
		Heuristic:   heuristic,
		TotalProfit: profit,
		PickedItems: ids,
		Utilization: FormatUtilization(inst.Capacity, remaining),
		Remaining:   remaining,
	}
}

// SetDuration records the wall-clock time spent producing the solution.
func (s *Solution) SetDuration(d time.Duration) {
	s.Duration = d
	s.Time = d.String()
}

// Clone returns a deep copy of the solution.
func (s *Solution) Clone() *Solution {
	c := *s
	c.PickedItems = slices.Clone(s.PickedItems)
	c.Utilization = slices.Clone(s.Utilization)
	c.Remaining = slices.Clone(s.Remaining)
	if s.System != nil {
		sys := *s.System
		c.System = &sys
	}
	return &c
}

// PickedSet returns the picked ids for membership tests.
func (s *Solution) PickedSet() map[int]struct{} {
	set := make(map[int]struct{}, len(s.PickedItems))
	for _, id := range s.PickedItems {
		set[id] = struct{}{}
	}
	return set
}

// FormatDuration renders d as "<s> s" and/or "<ns> ns", leaving out zero parts.
func FormatDuration(d time.Duration) string {
	secs := int64(d / time.Second)
	nanos := int64(d % time.Second)
	var parts []string
	if secs > 0 {
		parts = append(parts, fmt.Sprintf("%d s", secs))
	}
	if nanos > 0 {
		parts = append(parts, fmt.Sprintf("%d ns", nanos))
	}
	if len(parts) == 0 {
		return "0 ns"
	}
	return strings.Join(parts, " ")
}

func (s *Solution) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n    -> Total profit: %d\n", s.TotalProfit)
	fmt.Fprintf(&b, "    -> Picked items (%d): %s\n", len(s.PickedItems), joinInts(s.PickedItems, ", "))
	fmt.Fprintf(&b, "    -> Utilization: %s\n", strings.Join(s.Utilization, " "))
	fmt.Fprintf(&b, "    -> Runs: %d\n", s.Runs)
	if s.Passes > 0 {
		fmt.Fprintf(&b, "    -> Improvement passes: %d\n", s.Passes)
	}
	fmt.Fprintf(&b, "    -> Duration: %s\n", FormatDuration(s.Duration))
	return b.String()
}
