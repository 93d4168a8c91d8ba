package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/AhmadAli3234/my-portfolio-website/assets"
	"github.com/AhmadAli3234/my-portfolio-website/content"
)

// AboutView is the bio section: photo and long-form text, side by side
// on wide viewports and stacked on narrow ones.
type AboutView struct {
	Section fyne.CanvasObject

	state *PortfolioAppState
}

// NewAboutView creates the About section.
func NewAboutView(state *PortfolioAppState) *AboutView {
	view := &AboutView{state: state}

	bio := widget.NewLabel(content.Bio)
	bio.Wrapping = fyne.TextWrapWord

	parts := []fyne.CanvasObject{}
	if photo := aboutPhoto(); photo != nil {
		parts = append(parts, container.NewCenter(photo))
	}
	parts = append(parts, bio)

	// The responsive grid collapses the two halves into one column below
	// the narrow breakpoint.
	body := NewResponsiveGrid(parts...)

	view.Section = container.NewVBox(
		NewSectionTitle(state, "About"),
		NewSeparator(),
		body,
	)
	return view
}

func aboutPhoto() fyne.CanvasObject {
	img, err := assets.Thumbnail("profile.png", ProfileImageSize, ProfileImageSize)
	if err != nil {
		log.Printf("[UI] about photo unavailable: %v", err)
		return nil
	}

	photo := canvas.NewImageFromImage(img)
	photo.FillMode = canvas.ImageFillContain
	photo.SetMinSize(fyne.NewSize(ProfileImageSize, ProfileImageSize))
	return photo
}
