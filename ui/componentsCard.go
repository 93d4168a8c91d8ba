package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

// NewCard wraps content in a card-like container with a themed surface
// background. Cards give the project and skill entries visual separation
// from the page background.
//
// The background is a plain rectangle rather than a themed widget, so the
// card subscribes to the theme controller and recolors itself when the
// mode flips.
func NewCard(state *PortfolioAppState, content fyne.CanvasObject) fyne.CanvasObject {
	bg := canvas.NewRectangle(SurfaceColor(state.Theme.Mode()))
	bg.CornerRadius = 8
	bg.SetMinSize(fyne.NewSize(CardMinWidth, CardMinHeight))

	state.Theme.Subscribe(func(mode Mode) {
		bg.FillColor = SurfaceColor(mode)
		bg.Refresh()
	})

	// Stack layers the background behind the padded content
	return container.NewStack(bg, container.NewPadded(content))
}

// NewCardWithHeader creates a card with a bold title and separator above
// the content.
func NewCardWithHeader(state *PortfolioAppState, title string, content fyne.CanvasObject) fyne.CanvasObject {
	header := container.NewVBox(
		NewBoldLabel(title),
		NewSeparator(),
	)

	cardContent := container.NewBorder(
		header, // Top
		nil,    // Bottom
		nil,    // Left
		nil,    // Right
		content,
	)

	return NewCard(state, cardContent)
}
