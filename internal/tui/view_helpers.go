package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const defaultWidth = 60

// fitText cuts v to at most max terminal cells and pads it to exactly max.
func fitText(v string, max int) string {
	if max <= 0 {
		return ""
	}
	v = strings.ReplaceAll(v, "\n", " ")
	return runewidth.FillRight(runewidth.Truncate(v, max, "…"), max)
}
