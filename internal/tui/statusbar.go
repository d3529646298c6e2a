package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/matheuskafuri/paknews/internal/dashboard"
)

func renderStatusBar(v dashboard.View, notice, hints string, width int) string {
	left := fmt.Sprintf(" %d articles", v.Total)
	if v.Filter != "" {
		left += " · " + string(v.Filter)
	}
	if v.TotalPages > 1 {
		left += fmt.Sprintf(" · page %d/%d", v.Page, v.TotalPages)
	}
	switch {
	case v.TranslatingAll:
		left += " (translating all...)"
	case v.Refreshing:
		left += " (refreshing...)"
	}
	if notice != "" {
		left = noticeStyle.Render(" " + notice)
	}

	right := " " + hints + " "

	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right)-2, 0)
	bar := left + fmt.Sprintf("%*s", gap, "") + right

	return statusBarStyle.Width(width).Render(bar)
}
