package tui

import "github.com/charmbracelet/lipgloss"

// Color constants — pull-count trend viewer palette.
var (
	colorBlue  = lipgloss.Color("#1f77b4")
	colorGreen = lipgloss.Color("#10b981")
	colorGray  = lipgloss.Color("#6b7280")
	colorWhite = lipgloss.Color("#f8fafc")
	colorDark  = lipgloss.Color("#1e293b")
	colorAlt   = lipgloss.Color("#0f172a")
)

// StyleHeader — full-width dark header bar.
var StyleHeader = lipgloss.NewStyle().
	Background(colorDark).
	Foreground(colorWhite).
	Padding(0, 1)

// StyleTrendCard — bordered card holding the sparkline panel.
var StyleTrendCard = lipgloss.NewStyle().
	Background(colorAlt).
	Foreground(colorWhite).
	Padding(0, 1).
	Margin(0)

// StyleStatsCard — card holding the per-repository summary figures.
var StyleStatsCard = lipgloss.NewStyle().
	Background(colorAlt).
	Foreground(colorWhite).
	Padding(0, 1).
	Margin(0)

// Utility styles.
var (
	StyleLabel = lipgloss.NewStyle().Foreground(colorGray)
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite).Bold(true)
	StyleGrow  = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
	StyleDim   = lipgloss.NewStyle().Foreground(colorGray)
)
