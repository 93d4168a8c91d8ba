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

// IntroView is the hero section at the top of the page: avatar, name,
// tagline and the CV download button.
type IntroView struct {
	// Section is the complete canvas object, registered as the "Home"
	// navigation anchor.
	Section fyne.CanvasObject

	state *PortfolioAppState
}

// NewIntroView creates the hero section.
func NewIntroView(state *PortfolioAppState) *IntroView {
	view := &IntroView{state: state}

	name := canvas.NewText(content.Name, TextColor(state.Theme.Mode()))
	name.TextSize = HeroTextSize
	name.TextStyle = fyne.TextStyle{Bold: true}
	name.Alignment = fyne.TextAlignCenter

	tagline := canvas.NewText(content.Tagline, SubTextColor(state.Theme.Mode()))
	tagline.TextSize = TaglineTextSize
	tagline.Alignment = fyne.TextAlignCenter

	state.Theme.Subscribe(func(mode Mode) {
		name.Color = TextColor(mode)
		tagline.Color = SubTextColor(mode)
		name.Refresh()
		tagline.Refresh()
	})

	cvButton := widget.NewButton("Download CV", func() {
		OpenLink(state.App, content.CVURL)
	})

	items := []fyne.CanvasObject{}
	if avatar := heroAvatar(); avatar != nil {
		items = append(items, container.NewCenter(avatar))
	}
	items = append(items,
		name,
		tagline,
		container.NewCenter(cvButton),
	)

	view.Section = container.NewVBox(items...)
	return view
}

// heroAvatar loads the profile thumbnail, or nil if the asset is missing.
func heroAvatar() fyne.CanvasObject {
	img, err := assets.Thumbnail("profile.png", ProfileImageSize, ProfileImageSize)
	if err != nil {
		log.Printf("[UI] profile image unavailable: %v", err)
		return nil
	}

	avatar := canvas.NewImageFromImage(img)
	avatar.FillMode = canvas.ImageFillContain
	avatar.SetMinSize(fyne.NewSize(ProfileImageSize, ProfileImageSize))
	return avatar
}
