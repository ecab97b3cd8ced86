package heuristic

import (
	"git.solver4all.com/azaryc2s/mkp"
)

// Neighbor replaces the item at Position of the incumbent's pick list with the
// unpicked item Candidate (an item index).
type Neighbor struct {
	Position  int
	Candidate int
}

// Neighborhood holds every 1-exchange neighbor of an incumbent. Neighbors are
// enumerated lazily, unpicked-major: all positions for the first unpicked item, then
// all positions for the second one and so on.
type Neighborhood struct {
	// Base are the incumbent's item indices in admission order.
	Base []int
	// Unpicked are the remaining item indices in instance order.
	Unpicked []int
}

func NewNeighborhood(inst *mkp.Instance, incumbent *mkp.Solution) *Neighborhood {
	base := indices(inst, incumbent.PickedItems)
	picked := make([]bool, len(inst.Items))
	for _, idx := range base {
		picked[idx] = true
	}
	unpicked := make([]int, 0, len(inst.Items)-len(base))
	for idx := range inst.Items {
		if !picked[idx] {
			unpicked = append(unpicked, idx)
		}
	}
	return &Neighborhood{Base: base, Unpicked: unpicked}
}

// Len is |Base| x |Unpicked|.
func (nb *Neighborhood) Len() int {
	return len(nb.Base) * len(nb.Unpicked)
}

func (nb *Neighborhood) At(i int) Neighbor {
	return Neighbor{
		Position:  i % len(nb.Base),
		Candidate: nb.Unpicked[i/len(nb.Base)],
	}
}

// Order returns the item order of neighbor i.
func (nb *Neighborhood) Order(i int) []int {
	n := nb.At(i)
	order := append([]int(nil), nb.Base...)
	order[n.Position] = n.Candidate
	return order
}
