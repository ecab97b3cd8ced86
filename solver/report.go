package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/juju/errors"
	"gopkg.in/yaml.v3"

	"git.solver4all.com/azaryc2s/mkp"
)

type Result struct {
	Label    string        `json:"label" yaml:"label"`
	Solution *mkp.Solution `json:"solution" yaml:"solution"`
}

// Report is everything one solver run prints.
type Report struct {
	Instance string    `json:"instance" yaml:"instance"`
	Results  []*Result `json:"results" yaml:"results"`
}

func (r *Report) add(label string, sol *mkp.Solution) {
	r.Results = append(r.Results, &Result{Label: label, Solution: sol})
}

func (r *Report) Solutions() []*mkp.Solution {
	sols := make([]*mkp.Solution, len(r.Results))
	for i, entry := range r.Results {
		sols[i] = entry.Solution
	}
	return sols
}

func (r *Report) Write(w io.Writer, format string) error {
	switch format {
	case FormatJSON:
		content, err := json.MarshalIndent(r, "", "\t")
		if err != nil {
			return errors.Trace(err)
		}
		_, err = fmt.Fprintln(w, mkp.SanitizeJsonArrayLineBreaks(string(content)))
		return errors.Trace(err)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return errors.Trace(err)
		}
		return errors.Trace(enc.Close())
	default:
		for _, entry := range r.Results {
			if _, err := fmt.Fprintf(w, "%s%s", entry.Label, entry.Solution); err != nil {
				return errors.Trace(err)
			}
		}
		return nil
	}
}
