package ui

import (
	"log"

	"fyne.io/fyne/v2"
)

// Mode is the active color scheme. Exactly one mode is active at any time
// and toggling is a total function with no failure mode.
type Mode int

const (
	ModeLight Mode = iota
	ModeDark
)

func (m Mode) String() string {
	if m == ModeDark {
		return "Dark"
	}
	return "Light"
}

// ThemeController owns the theme mode for the whole application.
// Views subscribe to be told when the mode flips, so anything that draws
// its own colors (cards, canvas text) can restyle itself without polling.
//
// This follows the same callback-registry approach as the rest of the UI
// state: a single instance is created at startup and passed by pointer
// through the view constructors. All calls happen on the event dispatch
// thread, so no locking is needed.
type ThemeController struct {
	// app is used to swap the fyne theme when the mode changes.
	app fyne.App

	mode Mode

	// subscribers is keyed by subscription id so views can detach on
	// teardown without leaking callbacks.
	subscribers map[int]func(Mode)
	nextID      int
}

// NewThemeController creates the controller and applies the initial mode
// to the fyne app settings. This should be called once at startup.
func NewThemeController(app fyne.App, initial Mode) *ThemeController {
	c := &ThemeController{
		app:         app,
		mode:        initial,
		subscribers: make(map[int]func(Mode)),
	}
	if app != nil {
		app.Settings().SetTheme(NewPortfolioTheme(initial))
	}
	return c
}

// Mode returns the currently active mode.
func (c *ThemeController) Mode() Mode {
	return c.mode
}

// Toggle flips Light<->Dark, swaps the fyne theme, and notifies every
// subscriber synchronously before returning. It always succeeds.
func (c *ThemeController) Toggle() {
	if c.mode == ModeLight {
		c.mode = ModeDark
	} else {
		c.mode = ModeLight
	}
	log.Printf("[UI] theme toggled to %s", c.mode)

	if c.app != nil {
		c.app.Settings().SetTheme(NewPortfolioTheme(c.mode))
	}

	for _, callback := range c.subscribers {
		callback(c.mode)
	}
}

// Subscribe registers a callback to run on every mode change and returns
// an id to unsubscribe with. The callback is not invoked for the current
// mode; read Mode() for the initial value.
func (c *ThemeController) Subscribe(callback func(Mode)) int {
	id := c.nextID
	c.nextID++
	c.subscribers[id] = callback
	return id
}

// Unsubscribe removes a previously registered callback. Unknown ids are
// ignored, so double-unsubscribe is harmless.
func (c *ThemeController) Unsubscribe(id int) {
	delete(c.subscribers, id)
}
