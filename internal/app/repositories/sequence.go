package repositories

import (
	"fmt"
	"strconv"
	"strings"
)

// Sequence widths for generated identifiers: student numbers carry a 4-digit
// suffix after <code><yy>, employee numbers a 5-digit suffix after <code>.
const (
	studentSequenceWidth  = 4
	employeeSequenceWidth = 5
)

// sequenceScope returns a LIKE pattern matching exactly the numbers in a
// prefix's scope: the prefix followed by width more characters. Department
// codes can overlap (CS vs CSE), so a bare prefix match would pull CSE rows
// into the CS scan; fixing the total length keeps the scopes disjoint.
func sequenceScope(prefix string, width int) string {
	return prefix + strings.Repeat("_", width)
}

// parseSequence extracts the numeric suffix of a number in prefix's scope.
func parseSequence(prefix, number string, width int) (int, error) {
	if len(number) != len(prefix)+width {
		return 0, fmt.Errorf("number %q does not fit scope %q", number, prefix)
	}
	seq, err := strconv.Atoi(number[len(prefix):])
	if err != nil {
		return 0, fmt.Errorf("number %q has a non-numeric suffix: %w", number, err)
	}
	return seq, nil
}
