package fest

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// NameSum adds up the numeric suffixes of juggler names (J10 counts as 10).
func NameSum(jugglers []*Juggler) (int, error) {
	total := 0
	for _, j := range jugglers {
		n, ok := NameNumber(j.Name)
		if !ok {
			return 0, fmt.Errorf("juggler name %q has no numeric suffix", j.Name)
		}
		total += n
	}
	return total, nil
}

// NameNumber extracts the trailing decimal number of a name such as "C1970".
func NameNumber(name string) (int, bool) {
	digits := strings.TrimLeftFunc(name, func(r rune) bool { return !unicode.IsDigit(r) })
	if digits == "" || strings.IndexFunc(digits, func(r rune) bool { return !unicode.IsDigit(r) }) >= 0 {
		return 0, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return n, true
}
