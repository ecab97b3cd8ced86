package mkp

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	jsonNumbers  = regexp.MustCompile(`\s*([0-9]+),\s+([0-9]+)(,)?`)
	jsonBrackets = regexp.MustCompile(`\[(([0-9]+,)+[0-9]+)\s+\](,?)(\s+)`)
)

// SanitizeJsonArrayLineBreaks puts integer arrays of an indented JSON document back
// on a single line.
func SanitizeJsonArrayLineBreaks(json string) string {
	res := json
	for jsonNumbers.MatchString(res) {
		res = jsonNumbers.ReplaceAllString(res, "$1,$2$3")
	}
	for jsonBrackets.MatchString(res) {
		res = jsonBrackets.ReplaceAllString(res, "[$1]$3$4")
	}
	return res
}

// FormatUtilization renders the used share of every dimension as a percentage with
// two decimals. A dimension without capacity is reported as 0.00%.
func FormatUtilization(capacity, remaining []int) []string {
	result := make([]string, len(capacity))
	for d, total := range capacity {
		used := 0.0
		if total > 0 {
			used = 100 * float64(total-remaining[d]) / float64(total)
		}
		result[d] = fmt.Sprintf("%.2f%%", used)
	}
	return result
}

func joinInts(values []int, sep string) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, sep)
}
