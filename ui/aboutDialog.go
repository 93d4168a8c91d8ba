package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/AhmadAli3234/my-portfolio-website/config"
	"github.com/AhmadAli3234/my-portfolio-website/content"
)

func ShowAboutDialog(app fyne.App) {
	title := widget.NewLabel("Portfolio")
	title.TextStyle = fyne.TextStyle{Bold: true}

	version := widget.NewLabel(
		"Version: " + config.Version +
			"\nCommit: " + config.GitCommit +
			"\nBuilt: " + config.BuildTime,
	)
	version.Alignment = fyne.TextAlignCenter

	description := widget.NewLabel(
		content.Name + "'s personal portfolio as a desktop application.",
	)
	description.Wrapping = fyne.TextWrapWord

	features := widget.NewLabel(
		"Features:\n" +
			"• Light and dark themes\n" +
			"• Smooth scroll section navigation\n" +
			"• Responsive single/two/three column layout\n" +
			"• Cross-platform support",
	)
	features.Wrapping = fyne.TextWrapWord

	centeredTitle := container.NewCenter(title)
	centeredVersion := container.NewCenter(version)

	// Declare window first so the close button can reference it
	var aboutWin fyne.Window
	closeBtn := widget.NewButton("Close", func() {
		aboutWin.Close()
	})

	mainContent := container.NewVBox(
		centeredTitle,
		centeredVersion,
		widget.NewSeparator(),
		description,
		widget.NewSeparator(),
		features,
	)

	scroll := container.NewScroll(mainContent)

	bottom := container.NewVBox(
		widget.NewSeparator(),
		container.NewCenter(closeBtn),
	)

	aboutContent := container.NewBorder(nil, bottom, nil, nil, scroll)

	aboutWin = app.NewWindow("About Portfolio")
	aboutWin.SetContent(aboutContent)
	aboutWin.Resize(fyne.NewSize(400, 400))
	aboutWin.SetFixedSize(true)
	aboutWin.Show()
}
