package main

// Application initialization only. All layout, components and state live
// in separate packages:
//
// - models/  : Data structures (Project, Skill, SocialLink)
// - content/ : Compiled-in portfolio data
// - assets/  : Embedded images and thumbnails
// - config/  : Version metadata and file logging
// - ui/      : Theme controller, navigator, breakpoints, components, views

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"

	"github.com/AhmadAli3234/my-portfolio-website/assets"
	"github.com/AhmadAli3234/my-portfolio-website/config"
	"github.com/AhmadAli3234/my-portfolio-website/ui"
)

func main() {
	if err := config.InitLogging(); err != nil {
		log.Printf("file logging disabled: %v", err)
	}
	defer config.CloseLogging()

	portfolioApp := app.NewWithID("com.ahmadali.portfolio") // must match AppMetadata.ID

	portfolioMetadata := fyne.AppMetadata{
		ID:      "com.ahmadali.portfolio",
		Name:    "Portfolio",
		Version: config.Version,
	}
	app.SetMetadata(portfolioMetadata)

	mainWindow := portfolioApp.NewWindow("Portfolio")

	// -------------------------
	// Set title bar & taskbar icon
	// -------------------------
	if icon, err := assets.Resource("profile.png"); err == nil {
		mainWindow.SetIcon(icon)
	} else {
		log.Printf("[UI] window icon unavailable: %v", err)
	}

	// Build the complete UI layout; the state comes back so the menus
	// and shortcuts below can reach the theme controller.
	content, state := ui.BuildMainLayout(portfolioApp, mainWindow)
	mainWindow.SetContent(content)

	// -------------------------------------------------------------------------
	// MENUS
	// -------------------------------------------------------------------------
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Logs", func() {
			log.Println("[UI] log window opened (menu)")
			ui.ShowLogWindow(portfolioApp)
		}),
	)

	viewMenu := fyne.NewMenu("View",
		fyne.NewMenuItem("Toggle Theme", func() {
			log.Println("[UI] theme toggled (menu)")
			state.Theme.Toggle()
		}),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", func() {
			log.Println("[UI] about dialog opened")
			ui.ShowAboutDialog(portfolioApp)
		}),
	)

	mainWindow.SetMainMenu(fyne.NewMainMenu(fileMenu, viewMenu, helpMenu))

	// -------------------------------------------------------------------------
	// KEYBOARD SHORTCUTS
	// -------------------------------------------------------------------------
	mainWindow.Canvas().AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyQ,
		Modifier: fyne.KeyModifierControl,
	}, func(shortcut fyne.Shortcut) {
		log.Println("[UI] user closed application (ctrl + q)")
		portfolioApp.Quit()
	})
	mainWindow.Canvas().AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyL,
		Modifier: fyne.KeyModifierControl,
	}, func(shortcut fyne.Shortcut) {
		log.Println("[UI] log window opened (ctrl + l)")
		ui.ShowLogWindow(portfolioApp)
	})
	mainWindow.Canvas().AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyT,
		Modifier: fyne.KeyModifierControl,
	}, func(shortcut fyne.Shortcut) {
		log.Println("[UI] theme toggled (ctrl + t)")
		state.Theme.Toggle()
	})

	mainWindow.SetCloseIntercept(func() {
		log.Println("[UI] user closed application (window)")
		portfolioApp.Quit()
	})

	mainWindow.Resize(fyne.NewSize(ui.DefaultWindowWidth, ui.DefaultWindowHeight))
	mainWindow.ShowAndRun()
}
