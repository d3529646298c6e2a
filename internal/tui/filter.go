package tui

import (
	"slices"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/matheuskafuri/paknews/internal/cache"
)

// shiftCategory returns the category delta steps away from cur, wrapping
// around the bar.
func shiftCategory(cur cache.Category, delta int) cache.Category {
	cats := cache.Categories()
	i := slices.Index(cats, cur)
	if i < 0 {
		return cats[0]
	}
	n := len(cats)
	return cats[((i+delta)%n+n)%n]
}

func renderFilterBar(active cache.Category, savedCount int, width int) string {
	sep := tabSeparatorStyle.Render("·")

	var row string
	for i, c := range cache.Categories() {
		label := string(c)
		if c == cache.Offline && savedCount > 0 {
			label += " (" + strconv.Itoa(savedCount) + ")"
		}
		style := tabInactiveStyle
		if c == active {
			style = tabActiveStyle
		}

		candidate := row
		if i > 0 {
			candidate += sep
		}
		candidate += style.Render(label)
		if lipgloss.Width(candidate) > width && row != "" {
			break
		}
		row = candidate
	}

	return lipgloss.NewStyle().Width(width).PaddingLeft(1).Render(row)
}
