package ui

import (
	"fyne.io/fyne/v2"
)

// PortfolioAppState holds the shared state for the entire application.
// A single instance is created when the layout is built and passed by
// pointer into every view constructor, so views share the same theme
// controller and navigator without any package-level singletons.
type PortfolioAppState struct {
	// App is the fyne application, needed for notifications, URI opening
	// and theme swaps.
	App fyne.App

	// Window is the main application window, needed for showing dialogs.
	Window fyne.Window

	// Theme owns the light/dark mode and its subscriber fan-out.
	Theme *ThemeController

	// Nav owns the section anchors and the scroll animation. It is set
	// by BuildMainLayout once the scroll container exists.
	Nav *Navigator
}

// NewPortfolioAppState creates and initializes the application state.
// This should be called once at application startup.
func NewPortfolioAppState(app fyne.App, window fyne.Window) *PortfolioAppState {
	return &PortfolioAppState{
		App:    app,
		Window: window,
		Theme:  NewThemeController(app, ModeLight),
	}
}
