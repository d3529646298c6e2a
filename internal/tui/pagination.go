package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderPagination draws "‹ prev 1 2 3 next ›" with the current page
// highlighted. Nothing is drawn for a single page.
func renderPagination(page, total, width int) string {
	if total <= 1 {
		return ""
	}

	prev := pageStyle.Render("‹ prev")
	if page <= 1 {
		prev = pageDisabledStyle.Render("‹ prev")
	}
	next := pageStyle.Render("next ›")
	if page >= total {
		next = pageDisabledStyle.Render("next ›")
	}

	parts := []string{prev}
	for i := 1; i <= total; i++ {
		if i == page {
			parts = append(parts, pageActiveStyle.Render(strconv.Itoa(i)))
		} else {
			parts = append(parts, pageStyle.Render(strconv.Itoa(i)))
		}
	}
	parts = append(parts, next)

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(parts, ""))
}
