// Command converter-orlib turns every OR-Library mknap file (.txt) of a directory into
// one instance document per contained problem.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/juju/errors"

	"git.solver4all.com/azaryc2s/mkp"
)

func main() {
	if len(os.Args) < 2 {
		log.Printf("No arguments passed!")
		return
	}
	targetDir := os.Args[1]
	files, err := os.ReadDir(targetDir)
	if err != nil {
		log.Fatal(err)
	}
	for _, f := range files {
		if f.IsDir() || filepath.Ext(f.Name()) != ".txt" {
			continue
		}
		fileName := filepath.Join(targetDir, f.Name())
		written, err := convert(fileName)
		if err != nil {
			log.Printf("At %s: %s", fileName, errors.ErrorStack(err))
			continue
		}
		fmt.Printf("%s: %d instances\n", fileName, written)
	}
}

// convert writes <base>_<k>.json next to fileName for the k-th problem it contains.
func convert(fileName string) (int, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return 0, errors.Trace(err)
	}
	defer file.Close()

	instances, err := mkp.ParseORLibrary(file)
	if err != nil {
		return 0, errors.Annotatef(err, "parsing %s", fileName)
	}
	base := strings.TrimSuffix(fileName, filepath.Ext(fileName))
	for k, inst := range instances {
		inst.Name = fmt.Sprintf("%s_%d", filepath.Base(base), k+1)
		inst.Comment = fmt.Sprintf("problem %d of %s, OR-Library", k+1, filepath.Base(fileName))
		if err := mkp.WriteJSON(fmt.Sprintf("%s_%d.json", base, k+1), inst); err != nil {
			return k, errors.Trace(err)
		}
	}
	return len(instances), nil
}
