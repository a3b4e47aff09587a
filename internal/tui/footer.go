package tui

import "fmt"

// renderFooter renders the navigation hint footer at full terminal width.
// When app.showHelp is true, shows all key bindings; otherwise a brief hint
// with the current repository position.
func renderFooter(app *App) string {
	width := app.width
	if width <= 0 {
		width = 80
	}
	text := fmt.Sprintf("repo %d/%d  ? for help", app.selected+1, len(app.repos))
	if app.showHelp {
		text = helpText
	}
	return StyleDim.Width(width).Render(text)
}
