package pricing

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatCents renders cents as a dollar amount with thousands separators,
// e.g. 116000 -> "$1,160.00".
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}

	whole := strconv.FormatInt(cents/100, 10)
	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return fmt.Sprintf("%s$%s.%02d", sign, b.String(), cents%100)
}

// CentsToUnits converts cents to the decimal amount payment providers expect.
func CentsToUnits(cents int64) float64 {
	return float64(cents) / 100
}
