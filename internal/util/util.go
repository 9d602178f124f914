package util

import (
	"fmt"
	"strings"
)

// Plural formats a count with a regular English noun
func Plural(count int, noun string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, noun)
	}
	for _, suffix := range []string{"s", "x", "ch", "sh"} {
		if strings.HasSuffix(noun, suffix) {
			return fmt.Sprintf("%d %ses", count, noun)
		}
	}
	return fmt.Sprintf("%d %ss", count, noun)
}

// JoinList joins items for display, or returns placeholder when empty
func JoinList(items []string, placeholder string) string {
	if len(items) == 0 {
		return placeholder
	}
	return strings.Join(items, ", ")
}

// Truncate shortens s to at most width runes, ending with "…" when cut
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(runes[:width-1]) + "…"
}
