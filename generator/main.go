// Command generator writes random MKP instances for every combination of the given
// sizes, tightness values and profit strategies.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"path/filepath"
	"time"

	"git.solver4all.com/azaryc2s/mkp"
)

var (
	items      mkp.ArrayIntFlags
	dimensions mkp.ArrayIntFlags
	tightness  mkp.ArrayFloatFlags
	profits    mkp.ArrayStringFlags
)

func main() {
	flag.Var(&items, "n", "List of numbers of items")
	flag.Var(&dimensions, "m", "List of numbers of dimensions")
	flag.Var(&tightness, "tightness", "List of capacity ratios a: 0 < a <= 1, the share of each dimension's total weight")
	flag.Var(&profits, "profits", "List of profit-generation strategies: ONE, RNG or CORRELATED")
	name := flag.String("name", "mkp", "Name prefix for the instances")
	count := flag.Int("count", 10, "Number of instances per combination")
	maxWeight := flag.Int("maxWeight", 1000, "Max weight of an item in one dimension")
	seed := flag.Int64("seed", 0, "Seed of the generator, 0 is time based")
	format := flag.String("format", "json", "Output format: json or txt")
	dir := flag.String("dir", ".", "Target directory")
	flag.Parse()

	if *format != "json" && *format != "txt" {
		log.Fatalf("Unsupported format %s", *format)
	}
	if len(tightness) == 0 {
		tightness = mkp.ArrayFloatFlags{0.25, 0.5, 0.75}
	}
	if len(profits) == 0 {
		profits = mkp.ArrayStringFlags{mkp.ProfitsCorrelated}
	}
	if len(dimensions) == 0 {
		dimensions = mkp.ArrayIntFlags{5}
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	written := 0
	for l := 0; l < *count; l++ {
		for _, n := range items {
			for _, m := range dimensions {
				for _, a := range tightness {
					for _, p := range profits {
						instName := fmt.Sprintf("%s_%d_%d_%.2f_%s_%d", *name, n, m, a, p, l)
						inst, err := mkp.GenerateInstance(rng, mkp.GeneratorSpec{
							Name:      instName,
							N:         n,
							M:         m,
							Tightness: a,
							MaxWeight: *maxWeight,
							Profits:   p,
						})
						if err != nil {
							log.Fatalf("At %s: %s", instName, err)
						}
						path := filepath.Join(*dir, fmt.Sprintf("%s.%s", instName, *format))
						if *format == "txt" {
							err = mkp.WriteTextFile(path, inst)
						} else {
							err = mkp.WriteJSON(path, inst)
						}
						if err != nil {
							log.Fatal(err)
						}
						written++
					}
				}
			}
		}
	}
	log.Printf("Generated %d instances with seed %d", written, *seed)
}
