package mkp

import (
	"math"
	"time"
)

// Item is one candidate of the knapsack. Items are built by the Instance and never
// modified afterwards.
type Item struct {
	ID      int
	Profit  int
	Weights []int

	// Efficiency is Profit divided by the sum of Weights. Items without any weight
	// are assigned +Inf so they are always tried first.
	Efficiency float64
}

func newItem(id, profit int, weights []int) *Item {
	sum := 0
	for _, w := range weights {
		sum += w
	}
	eff := math.Inf(1)
	if sum > 0 {
		eff = float64(profit) / float64(sum)
	}
	return &Item{ID: id, Profit: profit, Weights: weights, Efficiency: eff}
}

// Degenerate reports whether the item has no weight in any dimension.
func (it *Item) Degenerate() bool {
	return math.IsInf(it.Efficiency, 1)
}

// MoreEfficient orders items by efficiency descending, ties by id ascending.
func MoreEfficient(a, b *Item) bool {
	if a.Efficiency != b.Efficiency {
		return a.Efficiency > b.Efficiency
	}
	return a.ID < b.ID
}

type Instance struct {
	Name    string `json:"name" yaml:"name"`
	Comment string `json:"comment,omitempty" yaml:"comment,omitempty"`

	N int `json:"n" yaml:"n"`
	M int `json:"m" yaml:"m"`
	// Optimum is the reserved fourth header token. It is informational only.
	Optimum  int     `json:"optimum,omitempty" yaml:"optimum,omitempty"`
	Profits  []int   `json:"profits" yaml:"profits"`
	Weights  [][]int `json:"weights" yaml:"weights"`
	Capacity []int   `json:"capacity" yaml:"capacity"`

	Items []*Item `json:"-" yaml:"-"`

	Solutions []*Solution `json:"solutions,omitempty" yaml:"solutions,omitempty"`
}

// Item returns the item with the given id.
func (inst *Instance) Item(id int) (*Item, bool) {
	if id < 1 || id > len(inst.Items) {
		return nil, false
	}
	return inst.Items[id-1], true
}

type Solution struct {
	Heuristic   string   `json:"heuristic" yaml:"heuristic"`
	TotalProfit int      `json:"total_profit" yaml:"total_profit"`
	PickedItems []int    `json:"picked_items" yaml:"picked_items,flow"`
	Utilization []string `json:"utilization" yaml:"utilization,flow"`
	Remaining   []int    `json:"remaining" yaml:"remaining,flow"`

	Runs     int           `json:"runs" yaml:"runs"`
	Passes   int           `json:"passes,omitempty" yaml:"passes,omitempty"`
	Seed     int64         `json:"seed,omitempty" yaml:"seed,omitempty"`
	Duration time.Duration `json:"duration" yaml:"-"`
	Time     string        `json:"time" yaml:"time"`

	System  *SysInfo `json:"system,omitempty" yaml:"system,omitempty"`
	Comment string   `json:"comment,omitempty" yaml:"comment,omitempty"`
}

// SysInfo saves the basic system information
type SysInfo struct {
	Platform string `json:"platform" yaml:"platform"`
	CPU      string `json:"cpu" yaml:"cpu"`
	RAM      string `json:"ram" yaml:"ram"`
}
