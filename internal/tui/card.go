package tui

import (
	"strings"
	"time"

	"github.com/matheuskafuri/paknews/internal/dashboard"
)

const summaryLines = 4

func truncateStr(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

// wrapText word-wraps s to width columns.
func wrapText(s string, width int) string {
	if width <= 0 {
		return s
	}
	var out []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			if len([]rune(line))+1+len([]rune(w)) > width {
				out = append(out, line)
				line = w
			} else {
				line += " " + w
			}
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// clampLines keeps at most n lines of s, marking the cut with an ellipsis.
func clampLines(s string, n int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= n {
		return s
	}
	lines = lines[:n]
	lines[n-1] = strings.TrimRight(lines[n-1], " ") + "…"
	return strings.Join(lines, "\n")
}

type cardOpts struct {
	selected bool
	english  bool // user toggled back from the translation
	spinner  string
	now      time.Time
	width    int
}

func renderCard(c dashboard.Card, o cardOpts) string {
	inner := max(o.width-4, 10) // border + padding
	a := c.Article

	head := categoryStyle.Render(strings.ToUpper(string(a.Category)))
	if src := truncateStr(a.Source, inner-len(a.Category)-1); src != "" {
		gap := max(inner-len(a.Category)-len([]rune(src)), 1)
		head += strings.Repeat(" ", gap) + sourceStyle.Render(src)
	}

	title := titleStyle.Render(clampLines(wrapText(a.Title, inner), 2))
	body := renderCardBody(c, o, inner)

	meta := dashboard.TimeAgo(a.Published, o.now)
	switch {
	case c.Article.TranslatedSummary != "" && o.english:
		meta += " · u اردو"
	case c.Article.TranslatedSummary != "":
		meta += " · u English"
	case c.Article.Summary != "":
		meta += " · u Urdu"
	}
	footer := metaStyle.Render(meta)
	if c.Saved {
		footer += "  " + savedStyle.Render("★ saved")
	}

	style := cardStyle
	if o.selected {
		style = cardSelectedStyle
	}
	return style.Width(o.width - 2).Render(strings.Join([]string{head, title, body, footer}, "\n"))
}

func renderCardBody(c dashboard.Card, o cardOpts, width int) string {
	st := c.Status
	a := c.Article
	switch {
	case st.Summarizing:
		return summaryStyle.Render(o.spinner + " Summarizing...")
	case st.Translating:
		return summaryStyle.Render(o.spinner + " Translating...")
	case st.Message != "":
		return inlineErrStyle.Render(wrapText(st.Message, width))
	case a.TranslatedSummary != "" && !o.english:
		return urduStyle.Width(width).Render(clampLines(wrapText(a.TranslatedSummary, width), summaryLines))
	case a.Summary != "":
		return summaryStyle.Render(clampLines(wrapText(a.Summary, width), summaryLines))
	}
	return summaryStyle.Render(o.spinner + " Waiting for summary...")
}
