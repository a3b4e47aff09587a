package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dm/hubtrack/internal/engine"
	"github.com/dm/hubtrack/internal/format"
	"github.com/dm/hubtrack/internal/model"
)

// repoTrend pairs a repository's summary with the trend window feeding its
// sparkline.
type repoTrend struct {
	summary model.RepoSummary
	window  *model.TrendWindow
}

// App is the root Bubble Tea model for the trend viewer. Unlike a live
// dashboard it is static: the loaded table is the complete data set, so there
// is no poll loop and no async commands — only navigation.
type App struct {
	repos    []repoTrend
	selected int

	// Layout
	width, height int

	// UI state
	showHelp bool
}

// NewApp builds the viewer over the loaded samples, one page per distinct
// repository in first-seen order. samples must be sorted ascending by
// timestamp (the store guarantees this).
func NewApp(samples []model.Sample) *App {
	var repos []repoTrend
	for _, summary := range engine.SummarizeAll(samples) {
		w := model.NewTrendWindow(0)
		for _, s := range engine.ForRepository(samples, summary.Repository) {
			w.Push(model.TrendPoint{Timestamp: s.Timestamp, PullCount: s.PullCount})
		}
		repos = append(repos, repoTrend{summary: summary, window: w})
	}
	return &App{repos: repos}
}

// Empty reports whether the viewer has no repositories to show.
func (app *App) Empty() bool {
	return len(app.repos) == 0
}

// Init implements tea.Model. There is nothing to start; the data is static.
func (app *App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model — the single state-mutation entry point.
func (app *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		app.width = msg.Width
		app.height = msg.Height

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return app, tea.Quit
		case key.Matches(msg, keys.NextRepo):
			if len(app.repos) > 0 {
				app.selected = (app.selected + 1) % len(app.repos)
			}
		case key.Matches(msg, keys.PrevRepo):
			if len(app.repos) > 0 {
				app.selected = (app.selected - 1 + len(app.repos)) % len(app.repos)
			}
		case key.Matches(msg, keys.Help):
			app.showHelp = !app.showHelp
		}
	}

	return app, nil
}

// View implements tea.Model. Renders the full viewer.
func (app *App) View() string {
	if app.Empty() {
		return StyleDim.Render("No samples loaded.")
	}

	parts := []string{
		renderHeader(app),
		renderTrendCard(app),
		renderStatsCard(app),
		renderFooter(app),
	}
	return strings.Join(parts, "\n")
}

// current returns the selected repository page.
func (app *App) current() repoTrend {
	return app.repos[app.selected]
}

// renderTrendCard renders the sparkline panel for the selected repository.
func renderTrendCard(app *App) string {
	rt := app.current()

	width := app.width
	if width <= 0 {
		width = 80
	}
	// Card padding eats 2 columns.
	sparkWidth := width - 2
	if sparkWidth < 10 {
		sparkWidth = 10
	}

	counts := rt.window.Counts()
	spark := RenderSparkline(counts, sparkWidth, colorBlue)

	rangeLine := StyleDim.Render(
		format.Number(rt.summary.Initial) + " → " + format.Number(rt.summary.Current))

	return StyleTrendCard.Width(width).Render(
		StyleLabel.Render("Pull Count Trend") + "\n" + spark + "\n" + rangeLine)
}

// renderStatsCard renders the summary figures for the selected repository.
func renderStatsCard(app *App) string {
	s := app.current().summary

	width := app.width
	if width <= 0 {
		width = 80
	}

	lines := []string{
		statLine("Current Pull Count", StyleValue.Render(format.Number(s.Current))),
		statLine("Total Growth", StyleGrow.Render(format.Growth(s.Growth))),
		statLine("Time Period", StyleValue.Render(format.Hours(s.Hours))),
		statLine("Average Growth Rate", StyleValue.Render(format.Rate(s.PerHour))),
		statLine("Latest Update", StyleValue.Render(s.LastUpdated.Format("2006-01-02 15:04:05 MST"))),
	}
	return StyleStatsCard.Width(width).Render(strings.Join(lines, "\n"))
}

func statLine(label, value string) string {
	return StyleLabel.Render(label+": ") + value
}
