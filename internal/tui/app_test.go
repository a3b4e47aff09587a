package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dm/hubtrack/internal/model"
)

func sampleAt(ts time.Time, repo string, count int64) model.Sample {
	return model.Sample{
		Timestamp:  ts,
		Namespace:  "lmcache",
		Repository: repo,
		PullCount:  count,
	}
}

func twoRepoSamples() []model.Sample {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return []model.Sample{
		sampleAt(base, "vllm-openai", 100),
		sampleAt(base.Add(time.Minute), "lmstack-router", 10),
		sampleAt(base.Add(5*time.Hour), "vllm-openai", 150),
		sampleAt(base.Add(5*time.Hour+time.Minute), "lmstack-router", 12),
	}
}

func keyMsg(s string) tea.KeyMsg {
	if s == "left" {
		return tea.KeyMsg{Type: tea.KeyLeft}
	}
	if s == "right" {
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewApp_BuildsRepoPages(t *testing.T) {
	app := NewApp(twoRepoSamples())
	require.Len(t, app.repos, 2)
	assert.Equal(t, "vllm-openai", app.repos[0].summary.Repository)
	assert.Equal(t, "lmstack-router", app.repos[1].summary.Repository)
	assert.Equal(t, 2, app.repos[0].window.Len())
	assert.False(t, app.Empty())
}

func TestNewApp_Empty(t *testing.T) {
	app := NewApp(nil)
	assert.True(t, app.Empty())
	assert.Contains(t, stripANSI(app.View()), "No samples loaded")
}

func TestUpdate_RepoNavigationWraps(t *testing.T) {
	app := NewApp(twoRepoSamples())

	app.Update(keyMsg("right"))
	assert.Equal(t, 1, app.selected)

	app.Update(keyMsg("right"))
	assert.Equal(t, 0, app.selected, "wraps past the last repository")

	app.Update(keyMsg("left"))
	assert.Equal(t, 1, app.selected, "wraps before the first repository")

	app.Update(keyMsg("l"))
	assert.Equal(t, 0, app.selected, "vim-style keys also navigate")
}

func TestUpdate_QuitReturnsQuitCmd(t *testing.T) {
	app := NewApp(twoRepoSamples())
	_, cmd := app.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestUpdate_HelpToggle(t *testing.T) {
	app := NewApp(twoRepoSamples())
	assert.False(t, app.showHelp)

	app.Update(keyMsg("?"))
	assert.True(t, app.showHelp)
	assert.Contains(t, stripANSI(app.View()), "switch repository")

	app.Update(keyMsg("?"))
	assert.False(t, app.showHelp)
}

func TestUpdate_WindowSize(t *testing.T) {
	app := NewApp(twoRepoSamples())
	app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 120, app.width)
	assert.Equal(t, 40, app.height)
}

func TestView_ShowsSelectedRepoStats(t *testing.T) {
	app := NewApp(twoRepoSamples())
	app.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	view := stripANSI(app.View())
	assert.Contains(t, view, "lmcache/vllm-openai")
	assert.Contains(t, view, "Current Pull Count: 150")
	assert.Contains(t, view, "Total Growth: +50 pulls")
	assert.Contains(t, view, "Average Growth Rate: 10.0 pulls/hour")
	assert.Contains(t, view, "repo 1/2")

	app.Update(keyMsg("right"))
	view = stripANSI(app.View())
	assert.Contains(t, view, "lmcache/lmstack-router")
	assert.Contains(t, view, "Current Pull Count: 12")
	assert.Contains(t, view, "repo 2/2")
}

func TestView_SingleSampleRepo(t *testing.T) {
	ts := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	app := NewApp([]model.Sample{sampleAt(ts, "vllm-openai", 100)})
	app.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	view := stripANSI(app.View())
	assert.Contains(t, view, "Current Pull Count: 100")
	assert.Contains(t, view, "Total Growth: +0 pulls")
	assert.Contains(t, view, "Average Growth Rate: 0.0 pulls/hour")
}

// stripANSI removes ANSI escape sequences from a string for assertions on
// rendered output.
func stripANSI(s string) string {
	var out strings.Builder
	inEscape := false
	for _, r := range s {
		if r == '\x1b' {
			inEscape = true
			continue
		}
		if inEscape {
			// CSI final bytes are in range 0x40–0x7E (@, A-Z, [, \, ], ^, _, `, a-z, {, |, }, ~)
			if r >= 0x40 && r <= 0x7E {
				inEscape = false
			}
			continue
		}
		out.WriteRune(r)
	}
	return out.String()
}
