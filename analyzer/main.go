// Command analyzer verifies the solutions stored in a directory of instance documents
// and prints one CSV row per solution.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"git.solver4all.com/azaryc2s/mkp"
)

const header = "Name,Heuristic,Valid,Profit,Optimum,Gap,Runs,Passes,Time,N,M,Comment"

func main() {
	if len(os.Args) < 2 {
		log.Printf("No arguments passed!")
		return
	}
	if err := analyze(os.Stdout, os.Args[1]); err != nil {
		log.Fatal(err)
	}
}

func analyze(w io.Writer, dirName string) error {
	files, err := filepath.Glob(filepath.Join(dirName, "*.json"))
	if err != nil {
		return err
	}
	sort.Strings(files)
	fmt.Fprintln(w, header)
	for _, fileName := range files {
		inst, err := mkp.LoadInstance(fileName)
		if err != nil {
			log.Printf("Skipping %s: %s", fileName, err)
			continue
		}
		for _, sol := range inst.Solutions {
			fmt.Fprintln(w, row(inst, sol))
		}
	}
	return nil
}

func row(inst *mkp.Instance, sol *mkp.Solution) string {
	valid := true
	comment := sol.Comment
	if err := mkp.Verify(inst, sol); err != nil {
		valid = false
		comment += fmt.Sprintf("ANALYZER: Error = %s", err)
	}
	gap := ""
	if inst.Optimum > 0 {
		gap = fmt.Sprintf("%.4f", 100.0*float64(inst.Optimum-sol.TotalProfit)/float64(inst.Optimum))
	}
	return fmt.Sprintf("%s,%s,%t,%d,%d,%s,%d,%d,%s,%d,%d,%s",
		inst.Name, sol.Heuristic, valid, sol.TotalProfit, inst.Optimum, gap, sol.Runs, sol.Passes,
		sol.Time, inst.N, inst.M, strings.ReplaceAll(comment, ",", ";"))
}
