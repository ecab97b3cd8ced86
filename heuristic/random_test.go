package heuristic

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedPerms replays the given permutations in a loop.
type fixedPerms struct {
	perms [][]int
	next  int
}

func (f *fixedPerms) Perm(int) []int {
	p := f.perms[f.next%len(f.perms)]
	f.next++
	return append([]int(nil), p...)
}

func TestRandomPicksBestPermutation(t *testing.T) {
	inst := newInstance(t, []int{10, 7, 7}, [][]int{{5, 3, 3}}, []int{6})
	source := &fixedPerms{perms: [][]int{{0, 1, 2}, {1, 2, 0}, {2, 1, 0}}}
	sol := New(inst, WithSource(source), WithWorkers(2)).Random(3)

	assert.Equal(t, 14, sol.TotalProfit)
	assert.Equal(t, []int{2, 3}, sol.PickedItems, "the first best permutation wins")
	assert.Equal(t, 3, sol.Runs)
	assert.Equal(t, RandomName, sol.Heuristic)
	assert.Equal(t, []string{"100.00%"}, sol.Utilization)
}

func TestRandomFeasibleAndBounded(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		inst := randomInstance(t, seed, 40, 3)
		sol := New(inst, WithSeed(seed)).Random(10)
		assertFeasible(t, inst, sol)
		assert.GreaterOrEqual(t, sol.TotalProfit, 0)
		assert.Equal(t, seed, sol.Seed)

		// at least as good as the first permutation drawn with the same seed
		first := New(inst, WithSeed(seed)).Random(1)
		assert.GreaterOrEqual(t, sol.TotalProfit, first.TotalProfit)
	}
}

func TestRandomMonotonicInRuns(t *testing.T) {
	inst := randomInstance(t, 17, 50, 4)
	prev := -1
	for _, runs := range []int{1, 2, 5, 10, 40} {
		sol := New(inst, WithSeed(99)).Random(runs)
		assert.GreaterOrEqual(t, sol.TotalProfit, prev, "runs=%d", runs)
		prev = sol.TotalProfit
	}
}

func TestRandomIndependentOfWorkers(t *testing.T) {
	inst := randomInstance(t, 5, 45, 3)
	want := New(inst, WithSeed(42), WithWorkers(1)).Random(25)
	for _, workers := range []int{2, 7, 64} {
		got := New(inst, WithSeed(42), WithWorkers(workers)).Random(25)
		assert.Empty(t, cmp.Diff(want, got, ignoreTiming), "workers=%d", workers)
	}
}

func TestRandomWithoutRuns(t *testing.T) {
	inst := newInstance(t, []int{1, 2}, [][]int{{1, 1}}, []int{3})
	sol := New(inst).Random(0)
	assert.Empty(t, sol.PickedItems)
	assert.Equal(t, 0, sol.TotalProfit)
	assert.Equal(t, 0, sol.Runs)
	assert.Equal(t, []int{3}, sol.Remaining)
	assert.Equal(t, []string{"0.00%"}, sol.Utilization)
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)

	inst := improvableInstance(t)
	s := New(inst, WithMetrics(metrics), WithSeed(1))
	s.ImproveK(s.Greedy(), 3)
	s.Random(4)

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Evaluations.WithLabelValues(GreedyName)))
	assert.Equal(t, 4.0, testutil.ToFloat64(metrics.Evaluations.WithLabelValues(RandomName)))
	// 2 neighbors in the first pass, 2 in the second
	assert.Equal(t, 4.0, testutil.ToFloat64(metrics.Evaluations.WithLabelValues(ImproveName)))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Improvements.WithLabelValues(ImproveName)))
	assert.Equal(t, 9.0, testutil.ToFloat64(metrics.BestProfit.WithLabelValues(GreedyName)))
	assert.Equal(t, 10.0, testutil.ToFloat64(metrics.BestProfit.WithLabelValues(ImproveName)))

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.Len(t, families, 4)
}
