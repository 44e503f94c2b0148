package pretty

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Measure returns the display width of a single line.
type Measure func(line string) int

var eastAsian = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = true
	return c
}()

// EastAsianWidth measures a line treating East Asian ambiguous-width runes
// as two columns wide.
func EastAsianWidth(line string) int {
	return eastAsian.StringWidth(line)
}

// Width returns the widest line of s in terminal columns. Lines are split on
// "\n"; empty text has width 0.
func Width(s string) int {
	return measureText(s, uniseg.StringWidth)
}

func measureText(s string, measure Measure) int {
	widest := 0
	for _, line := range strings.Split(s, "\n") {
		if w := measure(line); w > widest {
			widest = w
		}
	}
	return widest
}
