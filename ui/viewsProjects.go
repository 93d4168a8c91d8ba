package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/AhmadAli3234/my-portfolio-website/assets"
	"github.com/AhmadAli3234/my-portfolio-website/content"
	"github.com/AhmadAli3234/my-portfolio-website/models"
)

// ProjectsView renders the project cards in a responsive grid:
// one column on narrow viewports, two on medium, three on wide.
type ProjectsView struct {
	Section fyne.CanvasObject

	state *PortfolioAppState
}

// NewProjectsView creates the Projects section from the compiled-in list.
func NewProjectsView(state *PortfolioAppState) *ProjectsView {
	view := &ProjectsView{state: state}

	cards := make([]fyne.CanvasObject, 0, len(content.Projects))
	for _, project := range content.Projects {
		cards = append(cards, newProjectCard(state, project))
	}

	view.Section = container.NewVBox(
		NewSectionTitle(state, "Projects"),
		NewSeparator(),
		NewResponsiveGrid(cards...),
	)
	return view
}

func newProjectCard(state *PortfolioAppState, project models.Project) fyne.CanvasObject {
	description := widget.NewLabel(project.Description)
	description.Wrapping = fyne.TextWrapWord

	buttons := container.NewHBox(
		widget.NewButton("Source", func() {
			OpenLink(state.App, project.RepoURL)
		}),
	)
	if project.DemoURL != "" {
		buttons.Add(widget.NewButton("Live Demo", func() {
			OpenLink(state.App, project.DemoURL)
		}))
	}

	body := container.NewVBox(description, buttons)
	if shot := projectImage(project.Image); shot != nil {
		body = container.NewVBox(shot, description, buttons)
	}

	return NewCardWithHeader(state, project.Title, body)
}

func projectImage(name string) fyne.CanvasObject {
	img, err := assets.Thumbnail(name, CardMinWidth, ProjectImageHeight)
	if err != nil {
		log.Printf("[UI] project image %q unavailable: %v", name, err)
		return nil
	}

	shot := canvas.NewImageFromImage(img)
	shot.FillMode = canvas.ImageFillContain
	shot.SetMinSize(fyne.NewSize(0, ProjectImageHeight))
	return shot
}
