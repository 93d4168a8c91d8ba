package ui

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"github.com/AhmadAli3234/my-portfolio-website/content"
)

// NewFooter creates the footer line rendered below the last section.
func NewFooter(state *PortfolioAppState) fyne.CanvasObject {
	text := fmt.Sprintf("© %d %s · Built with Go and fyne", time.Now().Year(), content.Name)

	footerText := canvas.NewText(text, SubTextColor(state.Theme.Mode()))
	footerText.TextSize = FooterTextSize
	footerText.Alignment = fyne.TextAlignCenter

	state.Theme.Subscribe(func(mode Mode) {
		footerText.Color = SubTextColor(mode)
		footerText.Refresh()
	})

	return container.NewCenter(footerText)
}
