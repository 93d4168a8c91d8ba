package ui

import (
	"errors"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/AhmadAli3234/my-portfolio-website/content"
)

// NewHeader creates the navigation bar pinned above the scrollable
// content: the owner's name on the left, one button per section, and the
// theme toggle on the right.
//
// Section buttons go through the navigator; a missing anchor is logged
// and the click is otherwise a no-op.
func NewHeader(state *PortfolioAppState) fyne.CanvasObject {
	brand := NewBoldLabel(content.Name)

	navButtons := make([]fyne.CanvasObject, 0, len(content.SectionNames))
	for _, name := range content.SectionNames {
		name := name
		navButtons = append(navButtons, widget.NewButton(name, func() {
			if err := state.Nav.ScrollTo(name); err != nil {
				if errors.Is(err, ErrSectionNotRegistered) {
					log.Printf("[NAV] %v", err)
					return
				}
				log.Printf("[NAV] scroll to %q failed: %v", name, err)
			}
		}))
	}

	// The toggle button names the mode it will switch to, so it relabels
	// itself on every theme change.
	toggle := widget.NewButton(toggleLabel(state.Theme.Mode()), nil)
	toggle.OnTapped = func() {
		state.Theme.Toggle()
	}
	state.Theme.Subscribe(func(mode Mode) {
		toggle.SetText(toggleLabel(mode))
	})

	bar := container.NewHBox(
		brand,
		layout.NewSpacer(),
	)
	for _, btn := range navButtons {
		bar.Add(btn)
	}
	bar.Add(toggle)

	return container.NewVBox(bar, NewSeparator())
}

func toggleLabel(current Mode) string {
	if current == ModeDark {
		return "Light"
	}
	return "Dark"
}
