package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/matheuskafuri/paknews/internal/cache"
)

// renderDetail builds the reading view content; the viewport scrolls it.
func renderDetail(a cache.Article, width int) string {
	contentWidth := max(width, 10)

	title := detailTitleStyle.Width(contentWidth).Render(a.Title)
	meta := fmt.Sprintf("%s · %s · %s", a.Category, a.Source, a.Published.Format("Jan 2, 2006 15:04"))

	sections := []string{title, sourceStyle.Render(meta), ""}
	if a.Summary != "" {
		sections = append(sections, categoryStyle.Render("Summary"), summaryStyle.Render(wrapText(a.Summary, contentWidth)), "")
	}
	if a.TranslatedSummary != "" {
		sections = append(sections, categoryStyle.Render("اردو خلاصہ"), urduStyle.Width(contentWidth).Render(wrapText(a.TranslatedSummary, contentWidth)), "")
	}

	body := a.Content
	if strings.TrimSpace(body) == "" {
		body = "(No content available)"
	}
	sections = append(sections,
		lipgloss.NewStyle().Foreground(colorText).Render(wrapText(body, contentWidth)),
		"",
		detailLinkStyle.Width(contentWidth).Render("Read at source: "+a.Link),
	)
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
