package mkp

import (
	"fmt"
	"math"
	"math/rand"
)

// Profit generation strategies for GenerateInstance.
const (
	ProfitsOne        = "ONE"
	ProfitsRandom     = "RNG"
	ProfitsCorrelated = "CORRELATED"
)

type GeneratorSpec struct {
	Name string
	N    int
	M    int
	// Tightness is the share of the total weight of a dimension granted as capacity.
	Tightness float64
	MaxWeight int
	Profits   string
}

func (spec GeneratorSpec) validate() error {
	if spec.N < 0 || spec.M < 0 {
		return fmt.Errorf("n and m must not be negative, got n=%d m=%d", spec.N, spec.M)
	}
	if spec.Tightness <= 0 || spec.Tightness > 1 {
		return fmt.Errorf("tightness must be in (0, 1], got %.2f", spec.Tightness)
	}
	if spec.MaxWeight < 1 {
		return fmt.Errorf("max weight must be positive, got %d", spec.MaxWeight)
	}
	switch spec.Profits {
	case ProfitsOne, ProfitsRandom, ProfitsCorrelated:
		return nil
	default:
		return fmt.Errorf("unsupported profit strategy: %s", spec.Profits)
	}
}

// GenerateInstance draws a random instance. Weights are uniform in 1..MaxWeight and
// every capacity is the rounded Tightness share of its dimension's total weight.
func GenerateInstance(rng *rand.Rand, spec GeneratorSpec) (*Instance, error) {
	if err := spec.validate(); err != nil {
		return nil, err
	}
	weights := make([][]int, spec.M)
	capacity := make([]int, spec.M)
	for d := range weights {
		weights[d] = make([]int, spec.N)
		total := 0
		for i := range weights[d] {
			weights[d][i] = 1 + rng.Intn(spec.MaxWeight)
			total += weights[d][i]
		}
		capacity[d] = int(math.Round(spec.Tightness * float64(total)))
	}

	profits := make([]int, spec.N)
	for i := range profits {
		switch spec.Profits {
		case ProfitsOne:
			profits[i] = 1
		case ProfitsRandom:
			profits[i] = 1 + rng.Intn(spec.MaxWeight)
		case ProfitsCorrelated:
			sum := 0
			for d := range weights {
				sum += weights[d][i]
			}
			if spec.M > 0 {
				sum /= spec.M
			}
			profits[i] = sum + rng.Intn(spec.MaxWeight/2+1)
		}
	}

	inst, err := NewInstance(profits, weights, capacity)
	if err != nil {
		return nil, err
	}
	inst.Name = spec.Name
	inst.Comment = fmt.Sprintf("generated instance with %d items, %d dimensions, %.2f tightness and profits generated as %s",
		spec.N, spec.M, spec.Tightness, spec.Profits)
	return inst, nil
}
