// Command formatter rewrites JSON documents in place with numeric arrays on one line.
package main

import (
	"log"
	"os"

	"git.solver4all.com/azaryc2s/mkp"
)

func main() {
	if len(os.Args) < 2 {
		log.Printf("No arguments passed!")
		return
	}
	for _, fileName := range os.Args[1:] {
		if err := format(fileName); err != nil {
			log.Printf("At %s: %s\n", fileName, err)
		}
	}
}

func format(fileName string) error {
	content, err := os.ReadFile(fileName)
	if err != nil {
		return err
	}
	return os.WriteFile(fileName, []byte(mkp.SanitizeJsonArrayLineBreaks(string(content))), 0644)
}
