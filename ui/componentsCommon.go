package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// NewBoldLabel creates a label with bold text styling.
func NewBoldLabel(text string) *widget.Label {
	return widget.NewLabelWithStyle(
		text,
		fyne.TextAlignLeading,
		fyne.TextStyle{Bold: true},
	)
}

// NewSeparator creates a horizontal separator line.
func NewSeparator() *widget.Separator {
	return widget.NewSeparator()
}

// NewSectionTitle creates the heading text for a content section.
// The text color follows the theme mode, so the caller's view subscribes
// it to the controller.
func NewSectionTitle(state *PortfolioAppState, text string) *canvas.Text {
	title := canvas.NewText(text, TextColor(state.Theme.Mode()))
	title.TextSize = SectionTitleTextSize
	title.TextStyle = fyne.TextStyle{Bold: true}

	state.Theme.Subscribe(func(mode Mode) {
		title.Color = TextColor(mode)
		title.Refresh()
	})

	return title
}
