package ui

import (
	"fmt"
	"io"
	"log"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/nxadm/tail"

	"github.com/AhmadAli3234/my-portfolio-website/config"
)

const maxLogLinesShown = 1000 // Keep the label bounded for performance

// ShowLogWindow opens the live log viewer. The window follows the
// application log file as it grows and offers a simple substring search
// over the loaded lines.
func ShowLogWindow(app fyne.App) {
	logPath, err := config.LogFilePath()
	if err != nil {
		log.Printf("[UI] cannot resolve log file: %v", err)
		return
	}

	logWindow := app.NewWindow("Portfolio Log")
	logWindow.Resize(fyne.NewSize(800, 600))

	logLabel := widget.NewLabel("Waiting for log output...")
	logLabel.Wrapping = fyne.TextWrapWord

	searchEntry := widget.NewEntry()
	searchEntry.SetPlaceHolder("Search in loaded lines...")

	var allLines []string

	updateDisplay := func() {
		if len(allLines) == 0 {
			return
		}
		logLabel.SetText(strings.Join(allLines, "\n"))
	}

	searchButton := widget.NewButton("Search", func() {
		query := strings.ToLower(searchEntry.Text)
		if query == "" {
			updateDisplay()
			return
		}

		var filtered []string
		for _, line := range allLines {
			if strings.Contains(strings.ToLower(line), query) {
				filtered = append(filtered, line)
			}
		}

		if len(filtered) == 0 {
			logLabel.SetText(fmt.Sprintf("No results found for: %s", searchEntry.Text))
			return
		}
		logLabel.SetText(strings.Join(filtered, "\n") +
			fmt.Sprintf("\n\n[Found %d matches]", len(filtered)))
	})

	clearButton := widget.NewButton("Clear Search", func() {
		searchEntry.SetText("")
		updateDisplay()
	})

	// Follow the file from its current end; ReOpen survives rotation.
	follower, err := tail.TailFile(logPath, tail.Config{
		Follow: true,
		ReOpen: true,
		Location: &tail.SeekInfo{
			Offset: 0,
			Whence: io.SeekEnd,
		},
		Logger: tail.DiscardingLogger,
	})
	if err != nil {
		log.Printf("[UI] cannot follow log file: %v", err)
		logLabel.SetText(fmt.Sprintf("Cannot follow log file: %v", err))
	} else {
		go func() {
			for line := range follower.Lines {
				if line.Err != nil {
					continue
				}
				text := line.Text
				fyne.Do(func() {
					allLines = append(allLines, text)
					if len(allLines) > maxLogLinesShown {
						allLines = allLines[len(allLines)-maxLogLinesShown:]
					}
					if searchEntry.Text == "" {
						updateDisplay()
					}
				})
			}
		}()

		logWindow.SetOnClosed(func() {
			follower.Stop()
			follower.Cleanup()
		})
	}

	searchBar := container.NewBorder(
		nil, nil, nil,
		container.NewHBox(searchButton, clearButton),
		searchEntry,
	)

	content := container.NewBorder(
		searchBar, // Top
		nil, nil, nil,
		container.NewScroll(logLabel),
	)

	logWindow.SetContent(content)
	logWindow.Show()
}
