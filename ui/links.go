package ui

import (
	"log"
	"net/url"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"golang.design/x/clipboard"
)

var (
	clipboardOnce  sync.Once
	clipboardReady bool
)

// OpenLink hands a URI to the platform opener. Failure is non-fatal and
// not retried: it is logged and surfaced to the user as a transient
// notification, and the app carries on.
func OpenLink(app fyne.App, raw string) {
	parsed, err := url.Parse(raw)
	if err != nil {
		log.Printf("[UI] invalid link %q: %v", raw, err)
		notifyLinkFailure(app)
		return
	}

	log.Printf("[UI] opening link %s", raw)
	if err := app.OpenURL(parsed); err != nil {
		log.Printf("[UI] failed to open %s: %v", raw, err)
		notifyLinkFailure(app)
	}
}

func notifyLinkFailure(app fyne.App) {
	app.SendNotification(fyne.NewNotification("Link", "Failed to open link"))
}

// MailtoURL builds a mailto URI with subject and body query parameters.
// Spaces are percent-encoded rather than '+' encoded, since mail clients
// treat '+' in mailto queries literally.
func MailtoURL(to, subject, body string) string {
	query := url.Values{}
	if subject != "" {
		query.Set("subject", subject)
	}
	if body != "" {
		query.Set("body", body)
	}

	mailto := url.URL{Scheme: "mailto", Opaque: to}
	if encoded := query.Encode(); encoded != "" {
		mailto.RawQuery = strings.ReplaceAll(encoded, "+", "%20")
	}
	return mailto.String()
}

// CopyToClipboard puts text on the system clipboard and confirms with a
// notification. The clipboard is initialized lazily on first use; if the
// platform refuses (e.g. no display), the copy is dropped with a
// notification instead.
func CopyToClipboard(app fyne.App, text string) {
	clipboardOnce.Do(func() {
		if err := clipboard.Init(); err != nil {
			log.Printf("[UI] clipboard unavailable: %v", err)
			return
		}
		clipboardReady = true
	})

	if !clipboardReady {
		app.SendNotification(fyne.NewNotification("Clipboard", "Clipboard unavailable"))
		return
	}

	clipboard.Write(clipboard.FmtText, []byte(text))
	app.SendNotification(fyne.NewNotification("Clipboard", "Copied to clipboard"))
}
