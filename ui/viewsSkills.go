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

// SkillIconSize is the square bound for the icon beside each skill name.
const SkillIconSize = 24

// SkillsView renders one labelled progress bar per skill.
type SkillsView struct {
	Section fyne.CanvasObject

	state *PortfolioAppState
}

// NewSkillsView creates the Skills section from the compiled-in list.
func NewSkillsView(state *PortfolioAppState) *SkillsView {
	view := &SkillsView{state: state}

	rows := make([]fyne.CanvasObject, 0, len(content.Skills))
	for _, skill := range content.Skills {
		rows = append(rows, newSkillRow(skill))
	}

	view.Section = container.NewVBox(
		NewSectionTitle(state, "Skills"),
		NewSeparator(),
		NewCard(state, container.NewVBox(rows...)),
	)
	return view
}

func newSkillRow(skill models.Skill) fyne.CanvasObject {
	bar := widget.NewProgressBar()
	bar.Min = 0
	bar.Max = 1
	// The label truncates to a whole percent, it never rounds up.
	bar.TextFormatter = func() string {
		return content.PercentLabel(skill.Proficiency)
	}
	bar.SetValue(skill.Proficiency)

	label := container.NewHBox()
	if icon := skillIcon(skill.Icon); icon != nil {
		label.Add(icon)
	}
	label.Add(NewBoldLabel(skill.Name))

	return container.NewBorder(
		nil, nil,
		label,
		nil,
		bar,
	)
}

func skillIcon(name string) fyne.CanvasObject {
	img, err := assets.Thumbnail(name, SkillIconSize, SkillIconSize)
	if err != nil {
		log.Printf("[UI] skill icon %q unavailable: %v", name, err)
		return nil
	}

	icon := canvas.NewImageFromImage(img)
	icon.FillMode = canvas.ImageFillContain
	icon.SetMinSize(fyne.NewSize(SkillIconSize, SkillIconSize))
	return icon
}
