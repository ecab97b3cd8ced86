package mkp

import (
	"strconv"
	"strings"
)

// ArrayStringFlags collects a flag given several times or as a comma separated list.
type ArrayStringFlags []string

func (f *ArrayStringFlags) String() string {
	return strings.Join(*f, ",")
}

func (f *ArrayStringFlags) Set(value string) error {
	for _, v := range strings.Split(value, ",") {
		if v = strings.TrimSpace(v); v != "" {
			*f = append(*f, v)
		}
	}
	return nil
}

type ArrayIntFlags []int

func (f *ArrayIntFlags) String() string {
	return joinInts(*f, ",")
}

func (f *ArrayIntFlags) Set(value string) error {
	for _, v := range strings.Split(value, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return err
		}
		*f = append(*f, n)
	}
	return nil
}

type ArrayFloatFlags []float64

func (f *ArrayFloatFlags) String() string {
	parts := make([]string, len(*f))
	for i, v := range *f {
		parts[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strings.Join(parts, ",")
}

func (f *ArrayFloatFlags) Set(value string) error {
	for _, v := range strings.Split(value, ",") {
		x, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return err
		}
		*f = append(*f, x)
	}
	return nil
}
