package mkp

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// NewInstance validates the raw data of a problem and derives its items. weights holds
// one row of n coefficients per dimension.
func NewInstance(profits []int, weights [][]int, capacity []int) (*Instance, error) {
	inst := &Instance{
		N:        len(profits),
		M:        len(capacity),
		Profits:  profits,
		Weights:  weights,
		Capacity: capacity,
	}
	if err := inst.Init(); err != nil {
		return nil, err
	}
	return inst, nil
}

// Init checks a decoded instance document and builds Items from Profits and Weights.
func (inst *Instance) Init() error {
	if inst.N != len(inst.Profits) {
		return malformed(0, "n is %d but %d profits are given", inst.N, len(inst.Profits))
	}
	if inst.M != len(inst.Capacity) {
		return malformed(0, "m is %d but %d capacities are given", inst.M, len(inst.Capacity))
	}
	if len(inst.Weights) != inst.M {
		return malformed(0, "m is %d but %d weight rows are given", inst.M, len(inst.Weights))
	}
	for d, row := range inst.Weights {
		if len(row) != inst.N {
			return malformed(0, "weight row %d has %d entries, expected %d", d+1, len(row), inst.N)
		}
		if i := firstNegative(row); i >= 0 {
			return malformed(0, "weight row %d has negative entry %d", d+1, row[i])
		}
	}
	if i := firstNegative(inst.Profits); i >= 0 {
		return malformed(0, "profit of item %d is negative", i+1)
	}
	if i := firstNegative(inst.Capacity); i >= 0 {
		return malformed(0, "capacity of dimension %d is negative", i+1)
	}

	inst.Items = make([]*Item, inst.N)
	for i, p := range inst.Profits {
		w := make([]int, inst.M)
		for d := 0; d < inst.M; d++ {
			w[d] = inst.Weights[d][i]
		}
		inst.Items[i] = newItem(i+1, p, w)
	}
	return nil
}

func firstNegative(values []int) int {
	for i, v := range values {
		if v < 0 {
			return i
		}
	}
	return -1
}

// ParseInstance reads the line-structured text format:
//
//	n m q opt
//	p_1 ... p_n
//	w_1_1 ... w_1_n      (one line per dimension)
//	...
//	c_1 ... c_m
//
// q is ignored, opt is kept as Optimum. Trailing empty lines are tolerated.
func ParseInstance(r io.Reader) (*Instance, error) {
	var lines [][]int
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for line := 1; scanner.Scan(); line++ {
		values, err := parseLine(line, scanner.Text())
		if err != nil {
			return nil, err
		}
		lines = append(lines, values)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(lines) == 0 {
		return nil, malformed(1, "missing header")
	}
	header := lines[0]
	if len(header) != 4 {
		return nil, malformed(1, "header has %d values, expected 4 (n m q opt)", len(header))
	}
	n, m := header[0], header[1]

	// line returns the values of the 1-based line number, or fails at the end of input.
	line := func(number int, what string) ([]int, error) {
		if number > len(lines) {
			return nil, malformed(number, "unexpected end of input, expected %s", what)
		}
		return lines[number-1], nil
	}

	profits, err := line(2, "the profits")
	if err != nil {
		return nil, err
	}
	if len(profits) != n {
		return nil, malformed(2, "%d profits given, expected %d", len(profits), n)
	}
	weights := make([][]int, 0, min(m, len(lines)))
	for d := 0; d < m; d++ {
		row, err := line(3+d, fmt.Sprintf("the weights of dimension %d", d+1))
		if err != nil {
			return nil, err
		}
		if len(row) != n {
			return nil, malformed(3+d, "%d weights given for dimension %d, expected %d", len(row), d+1, n)
		}
		weights = append(weights, row)
	}
	capacity, err := line(3+m, "the capacities")
	if err != nil {
		return nil, err
	}
	if len(capacity) != m {
		return nil, malformed(3+m, "%d capacities given, expected %d", len(capacity), m)
	}
	for i := 3 + m; i < len(lines); i++ {
		if len(lines[i]) > 0 {
			return nil, malformed(i+1, "unexpected content after the capacity line")
		}
	}

	inst, err := NewInstance(profits, weights, capacity)
	if err != nil {
		return nil, err
	}
	inst.Optimum = header[3]
	return inst, nil
}

func parseLine(line int, text string) ([]int, error) {
	fields := strings.Fields(text)
	values := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, malformed(line, "%q is not an integer", f)
		}
		if v < 0 {
			return nil, malformed(line, "%d is negative", v)
		}
		values[i] = v
	}
	return values, nil
}

// WriteText encodes the instance in the format read by ParseInstance.
func (inst *Instance) WriteText(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d 0 %d\n", inst.N, inst.M, inst.Optimum)
	writeRow(bw, inst.Profits)
	for _, row := range inst.Weights {
		writeRow(bw, row)
	}
	writeRow(bw, inst.Capacity)
	return bw.Flush()
}

func writeRow(w *bufio.Writer, values []int) {
	for i, v := range values {
		if i > 0 {
			w.WriteByte(' ')
		}
		w.WriteString(strconv.Itoa(v))
	}
	w.WriteByte('\n')
}

// ParseORLibrary reads an OR-Library mknap file: the number of problems followed by,
// for every problem, "n m opt", n profits, m rows of n weights and m capacities.
// Values are whitespace separated and may wrap lines freely.
func ParseORLibrary(r io.Reader) ([]*Instance, error) {
	tok := &tokenizer{scanner: bufio.NewScanner(r)}
	tok.scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	tok.scanner.Split(scanLinesKeepCount(&tok.line))

	count, err := tok.next("problem count")
	if err != nil {
		return nil, err
	}
	instances := make([]*Instance, 0, min(count, 64))
	for k := 1; k <= count; k++ {
		inst, err := tok.problem(k)
		if err != nil {
			return nil, err
		}
		instances = append(instances, inst)
	}
	if _, err := tok.next(""); err == nil {
		return nil, malformed(tok.line, "unexpected content after problem %d", count)
	} else if err != io.EOF {
		return nil, err
	}
	return instances, nil
}

type tokenizer struct {
	scanner *bufio.Scanner
	fields  []string
	line    int
}

// scanLinesKeepCount splits by lines and counts them so errors can carry a line hint.
func scanLinesKeepCount(line *int) bufio.SplitFunc {
	return func(data []byte, atEOF bool) (int, []byte, error) {
		advance, token, err := bufio.ScanLines(data, atEOF)
		if token != nil {
			*line++
		}
		return advance, token, err
	}
}

func (t *tokenizer) next(what string) (int, error) {
	for len(t.fields) == 0 {
		if !t.scanner.Scan() {
			if err := t.scanner.Err(); err != nil {
				return 0, err
			}
			if what == "" {
				return 0, io.EOF
			}
			return 0, malformed(t.line, "unexpected end of input, expected %s", what)
		}
		t.fields = strings.Fields(t.scanner.Text())
	}
	f := t.fields[0]
	t.fields = t.fields[1:]
	v, err := strconv.Atoi(f)
	if err != nil {
		return 0, malformed(t.line, "%q is not an integer", f)
	}
	if v < 0 {
		return 0, malformed(t.line, "%d is negative", v)
	}
	return v, nil
}

func (t *tokenizer) row(count int, what string) ([]int, error) {
	values := make([]int, 0, min(count, 4096))
	for i := 0; i < count; i++ {
		v, err := t.next(what)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

func (t *tokenizer) problem(k int) (*Instance, error) {
	header, err := t.row(3, fmt.Sprintf("header of problem %d", k))
	if err != nil {
		return nil, err
	}
	n, m := header[0], header[1]
	profits, err := t.row(n, fmt.Sprintf("profits of problem %d", k))
	if err != nil {
		return nil, err
	}
	weights := make([][]int, 0, min(m, 64))
	for d := 0; d < m; d++ {
		row, err := t.row(n, fmt.Sprintf("weights of problem %d", k))
		if err != nil {
			return nil, err
		}
		weights = append(weights, row)
	}
	capacity, err := t.row(m, fmt.Sprintf("capacities of problem %d", k))
	if err != nil {
		return nil, err
	}
	inst, err := NewInstance(profits, weights, capacity)
	if err != nil {
		return nil, err
	}
	inst.Optimum = header[2]
	return inst, nil
}
