package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Adaptive colors for dark/light terminals
	colorPrimary   = lipgloss.AdaptiveColor{Light: "#047857", Dark: "#34D399"}
	colorText      = lipgloss.AdaptiveColor{Light: "#1E293B", Dark: "#E2E8F0"}
	colorSecondary = lipgloss.AdaptiveColor{Light: "#475569", Dark: "#94A3B8"}
	colorDim       = lipgloss.AdaptiveColor{Light: "#94A3B8", Dark: "#64748B"}
	colorAccent    = lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#F87171"}
	colorWarn      = lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#FBBF24"}
	colorBorder    = lipgloss.AdaptiveColor{Light: "#CBD5E1", Dark: "#334155"}
	colorSurface   = lipgloss.AdaptiveColor{Light: "#F1F5F9", Dark: "#1E293B"}
	colorStatusBg  = lipgloss.AdaptiveColor{Light: "#E2E8F0", Dark: "#0F172A"}

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			PaddingLeft(1)

	headerDimStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	onlineStyle = lipgloss.NewStyle().
			Foreground(colorPrimary)

	offlineStyle = lipgloss.NewStyle().
			Foreground(colorWarn).
			Bold(true)

	tabActiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#059669")).
			Padding(0, 1).
			Bold(true)

	tabInactiveStyle = lipgloss.NewStyle().
				Foreground(colorSecondary).
				Padding(0, 1)

	tabSeparatorStyle = lipgloss.NewStyle().
				Foreground(colorDim)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	cardSelectedStyle = cardStyle.
				BorderForeground(colorPrimary)

	categoryStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	sourceStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	titleStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Bold(true)

	summaryStyle = lipgloss.NewStyle().
			Foreground(colorSecondary)

	urduStyle = summaryStyle.
			Align(lipgloss.Right)

	inlineErrStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	metaStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	savedStyle = lipgloss.NewStyle().
			Foreground(colorWarn)

	bannerStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Background(colorSurface).
			Padding(0, 2)

	noticeStyle = lipgloss.NewStyle().
			Foreground(colorWarn)

	pageActiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#059669")).
			Padding(0, 1)

	pageStyle = lipgloss.NewStyle().
			Foreground(colorSecondary).
			Padding(0, 1)

	pageDisabledStyle = lipgloss.NewStyle().
				Foreground(colorBorder).
				Padding(0, 1)

	detailTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorText).
				MarginBottom(1)

	detailLinkStyle = lipgloss.NewStyle().
			Foreground(colorDim).
			Italic(true)

	detailFrameStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorPrimary).
				Padding(0, 1)

	statusBarStyle = lipgloss.NewStyle().
			Background(colorStatusBg).
			Foreground(colorSecondary).
			PaddingLeft(1).
			PaddingRight(1)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(colorPrimary)

	helpCardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary).
			Padding(1, 3)
)
