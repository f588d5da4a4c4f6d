// Package format composes the decorated block: a centered banner, the
// bullet-joined body, and the parsed trace, framed by plain decoration.
package format

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// bannerWidth is the content width of a decoration line. The full
// banner adds the `[ ` / ` ]` frame for 29 characters total.
const bannerWidth = 25

// Banner returns the fixed-width decoration line with label centered
// between dash runs: left + right + width(label) + 2 == 25, the odd
// dash going right. Dash counts clamp at zero for oversized labels.
func Banner(label string) string {
	dashes := bannerWidth - runewidth.StringWidth(label) - 2
	left := dashes / 2
	right := dashes - left
	if left < 0 {
		left = 0
	}
	if right < 0 {
		right = 0
	}
	return "[ " + strings.Repeat("-", left) + " " + label + " " + strings.Repeat("-", right) + " ]"
}

// PlainBanner returns the unlabeled closing decoration, the same frame
// around a full dash run.
func PlainBanner() string {
	return "[ " + strings.Repeat("-", bannerWidth) + " ]"
}
