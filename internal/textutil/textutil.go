// Package textutil provides rune counting and terminal/print width helpers.
//
// The worksheet is routinely filled in Japanese, so column sizing must treat
// East Asian wide and fullwidth runes as two cells while limits stay pure
// rune counts.
package textutil

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/width"
)

// RuneCount returns the number of runes in value. Field limits are defined
// in these units.
func RuneCount(value string) int {
	return utf8.RuneCountInString(value)
}

// DisplayWidth returns the number of display cells value occupies, counting
// East Asian wide and fullwidth runes as two.
func DisplayWidth(value string) int {
	total := 0
	for _, r := range value {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			total += 2
		default:
			total++
		}
	}
	return total
}

// ClipRunes truncates value to at most max runes, appending an ellipsis when
// anything was cut. max must be at least 1.
func ClipRunes(value string, max int) string {
	if utf8.RuneCountInString(value) <= max {
		return value
	}
	var b strings.Builder
	count := 0
	for _, r := range value {
		if count == max-1 {
			break
		}
		b.WriteRune(r)
		count++
	}
	b.WriteRune('…')
	return b.String()
}

// Ternary returns a if cond is true, b otherwise.
func Ternary[T any](cond bool, a, b T) T {
	if cond {
		return a
	}
	return b
}
