package heuristic

import (
	"github.com/sourcegraph/conc/iter"
)

// chunksPerWorker oversplits the work so uneven chunks still balance across workers.
const chunksPerWorker = 4

type span struct {
	lo, hi int
}

type chunkBest struct {
	best candidate
	ok   bool
}

// split cuts [0, n) into at most parts contiguous spans.
func split(n, parts int) []span {
	if n <= 0 {
		return nil
	}
	if parts > n {
		parts = n
	}
	if parts < 1 {
		parts = 1
	}
	spans := make([]span, 0, parts)
	size, rest := n/parts, n%parts
	lo := 0
	for i := 0; i < parts; i++ {
		hi := lo + size
		if i < rest {
			hi++
		}
		spans = append(spans, span{lo: lo, hi: hi})
		lo = hi
	}
	return spans
}

// bestOf evaluates the work units 0..n-1 on the worker pool and returns the unit with
// the highest profit. eval must leave its result in the kernel it is handed. Every
// chunk keeps its first maximum and chunks are reduced in index order, so the winner is
// the lowest index among the best units whatever the number of workers.
func (s *Solver) bestOf(n int, eval func(i int, k *kernel)) (candidate, bool) {
	spans := split(n, s.workers*chunksPerWorker)
	mapper := iter.Mapper[span, chunkBest]{MaxGoroutines: s.workers}
	results := mapper.Map(spans, func(sp *span) chunkBest {
		k := newKernel(s.inst)
		var r chunkBest
		for i := sp.lo; i < sp.hi; i++ {
			eval(i, k)
			if !r.ok || k.profit > r.best.profit {
				r.best = k.snapshot()
				r.ok = true
			}
		}
		return r
	})

	var best chunkBest
	for _, r := range results {
		if r.ok && (!best.ok || r.best.profit > best.best.profit) {
			best = r
		}
	}
	return best.best, best.ok
}
