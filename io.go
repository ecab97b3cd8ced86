package mkp

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/juju/errors"
)

// LoadInstance reads an instance from path. Files ending in .json are decoded as
// instance documents, everything else is parsed as the line-structured text format.
func LoadInstance(path string) (*Instance, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Annotatef(err, "reading %s", path)
	}
	var inst *Instance
	if strings.EqualFold(filepath.Ext(path), ".json") {
		inst, err = DecodeInstance(content)
	} else {
		inst, err = ParseInstance(bytes.NewReader(content))
	}
	if err != nil {
		return nil, errors.Annotatef(err, "at %s", path)
	}
	if inst.Name == "" {
		inst.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return inst, nil
}

// DecodeInstance decodes a JSON instance document, including any stored solutions.
func DecodeInstance(content []byte) (*Instance, error) {
	inst := &Instance{}
	if err := json.Unmarshal(content, inst); err != nil {
		return nil, &MalformedInstanceError{Reason: err.Error()}
	}
	if err := inst.Init(); err != nil {
		return nil, err
	}
	return inst, nil
}

// WriteJSON writes v as indented JSON with numeric arrays kept on one line.
func WriteJSON(path string, v interface{}) error {
	content, err := json.MarshalIndent(v, "", "\t")
	if err != nil {
		return errors.Trace(err)
	}
	content = []byte(SanitizeJsonArrayLineBreaks(string(content)))
	if err := os.WriteFile(path, append(content, '\n'), 0644); err != nil {
		return errors.Annotatef(err, "writing %s", path)
	}
	return nil
}

// WriteTextFile writes the instance in the line-structured text format.
func WriteTextFile(path string, inst *Instance) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Annotatef(err, "creating %s", path)
	}
	if err := inst.WriteText(f); err != nil {
		f.Close()
		return errors.Annotatef(err, "writing %s", path)
	}
	return errors.Annotatef(f.Close(), "closing %s", path)
}
