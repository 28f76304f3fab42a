// Package billing holds the invoice business rules: number allocation,
// payment status derivation and dashboard rollups. Everything here is pure;
// the service layer supplies store state.
package billing

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// NumberPrefix is the fixed lead of every invoice number.
const NumberPrefix = "INV-"

// Prefix returns the month-scoped numbering prefix for t, e.g. "INV-05-25-".
func Prefix(t time.Time) string {
	return fmt.Sprintf("%s%02d-%02d-", NumberPrefix, int(t.Month()), t.Year()%100)
}

// NextNumber returns the number following last within prefix. The sequence is
// the run of digits leading the segment after the final "-", so "12abc" and
// "5.7" read as 12 and 5. An empty last (no invoice yet this month) or a segment
// that does not start with a digit starts the run at 1. A sequence at or beyond
// math.MaxInt stays at math.MaxInt.
func NextNumber(prefix, last string) string {
	return prefix + strconv.Itoa(nextSequence(last))
}

func nextSequence(last string) int {
	if last == "" {
		return 1
	}
	tail := strings.TrimSpace(last[strings.LastIndex(last, "-")+1:])
	end := 0
	for end < len(tail) && tail[end] >= '0' && tail[end] <= '9' {
		end++
	}
	if end == 0 {
		return 1
	}

	seq, err := strconv.Atoi(tail[:end])
	if errors.Is(err, strconv.ErrRange) || seq == math.MaxInt {
		return math.MaxInt
	}
	return seq + 1
}

// DisplayNumber strips the "INV-" lead for printed documents.
func DisplayNumber(number string) string {
	return strings.TrimPrefix(number, NumberPrefix)
}
