package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/AhmadAli3234/my-portfolio-website/assets"
	"github.com/AhmadAli3234/my-portfolio-website/content"
)

// mailSubject pre-fills the subject line of the contact mail.
const mailSubject = "Hello from your portfolio"

// ContactView is the contact section: email actions and social links.
type ContactView struct {
	Section fyne.CanvasObject

	state *PortfolioAppState
}

// NewContactView creates the Contact section.
func NewContactView(state *PortfolioAppState) *ContactView {
	view := &ContactView{state: state}

	emailButton := widget.NewButton("Email Me", func() {
		OpenLink(state.App, MailtoURL(content.Email, mailSubject, ""))
	})
	copyButton := widget.NewButton("Copy Email", func() {
		CopyToClipboard(state.App, content.Email)
	})

	socialButtons := container.NewHBox()
	for _, link := range content.SocialLinks {
		link := link
		open := func() {
			OpenLink(state.App, link.URL)
		}
		if icon, err := assets.Resource(link.Icon); err == nil {
			socialButtons.Add(widget.NewButtonWithIcon(link.Name, icon, open))
		} else {
			log.Printf("[UI] social icon %q unavailable: %v", link.Icon, err)
			socialButtons.Add(widget.NewButton(link.Name, open))
		}
	}

	body := container.NewVBox(
		widget.NewLabel("Want to work together, or just say hi?"),
		container.NewHBox(emailButton, copyButton),
		NewSeparator(),
		socialButtons,
	)

	view.Section = container.NewVBox(
		NewSectionTitle(state, "Contact"),
		NewSeparator(),
		NewCard(state, body),
	)
	return view
}
