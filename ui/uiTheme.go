package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Theme constants define the visual appearance of the application.
// Centralizing these values keeps the look consistent across all UI
// components and makes restyling a single-file change.

// Light palette
var (
	lightBackground = color.NRGBA{R: 0xfa, G: 0xfa, B: 0xfa, A: 0xff}
	lightSurface    = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	lightPrimary    = color.NRGBA{R: 0x35, G: 0x84, B: 0xe4, A: 0xff}
	lightText       = color.NRGBA{R: 0x1a, G: 0x1a, B: 0x1a, A: 0xff}
	lightSubText    = color.NRGBA{R: 0x5a, G: 0x5a, B: 0x5a, A: 0xff}
)

// Dark palette
var (
	darkBackground = color.NRGBA{R: 0x18, G: 0x18, B: 0x18, A: 0xff}
	darkSurface    = color.NRGBA{R: 0x25, G: 0x25, B: 0x26, A: 0xff}
	darkPrimary    = color.NRGBA{R: 0x00, G: 0x9d, B: 0xff, A: 0xff}
	darkText       = color.NRGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff}
	darkSubText    = color.NRGBA{R: 0x96, G: 0x96, B: 0x96, A: 0xff}
)

// Text size constants for consistent typography
const (
	// HeroTextSize is used for the name in the intro section
	HeroTextSize = 48

	// SectionTitleTextSize is used for section headings
	SectionTitleTextSize = 28

	// TaglineTextSize is used for the subtitle under the name
	TaglineTextSize = 16

	// FooterTextSize is used for footer text
	FooterTextSize = 14
)

// Layout constants
const (
	// DefaultWindowWidth is the initial width of the application window
	DefaultWindowWidth = 1200

	// DefaultWindowHeight is the initial height of the application window
	DefaultWindowHeight = 800

	// CardMinWidth is the minimum width for card components
	CardMinWidth = 240

	// CardMinHeight is the minimum height for card components
	CardMinHeight = 200

	// ProjectImageHeight is the pixel height project thumbnails are scaled to
	ProjectImageHeight = 140

	// ProfileImageSize is the square bound for the hero avatar
	ProfileImageSize = 180
)

// portfolioTheme renders the whole app in one of the two palettes.
// It delegates fonts, icons and sizes to the default fyne theme and only
// overrides colors, switching the set on the active mode.
type portfolioTheme struct {
	base fyne.Theme
	mode Mode
}

var _ fyne.Theme = (*portfolioTheme)(nil)

// NewPortfolioTheme returns the fyne theme for the given mode.
func NewPortfolioTheme(mode Mode) fyne.Theme {
	return &portfolioTheme{base: theme.DefaultTheme(), mode: mode}
}

func (t *portfolioTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	dark := t.mode == ModeDark

	switch name {
	case theme.ColorNameBackground:
		if dark {
			return darkBackground
		}
		return lightBackground
	case theme.ColorNameButton, theme.ColorNameOverlayBackground, theme.ColorNameInputBackground:
		if dark {
			return darkSurface
		}
		return lightSurface
	case theme.ColorNamePrimary, theme.ColorNameHyperlink, theme.ColorNameFocus:
		if dark {
			return darkPrimary
		}
		return lightPrimary
	case theme.ColorNameForeground:
		if dark {
			return darkText
		}
		return lightText
	case theme.ColorNamePlaceHolder, theme.ColorNameDisabled:
		if dark {
			return darkSubText
		}
		return lightSubText
	}

	if dark {
		return t.base.Color(name, theme.VariantDark)
	}
	return t.base.Color(name, theme.VariantLight)
}

func (t *portfolioTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

func (t *portfolioTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

func (t *portfolioTheme) Size(name fyne.ThemeSizeName) float32 {
	return t.base.Size(name)
}

// SurfaceColor returns the card background color for the given mode.
// Cards draw their own background rectangle, so they resolve this directly
// rather than through the fyne theme lookup.
func SurfaceColor(mode Mode) color.Color {
	if mode == ModeDark {
		return darkSurface
	}
	return lightSurface
}

// SubTextColor returns the muted text color for the given mode.
func SubTextColor(mode Mode) color.Color {
	if mode == ModeDark {
		return darkSubText
	}
	return lightSubText
}

// TextColor returns the main text color for the given mode.
func TextColor(mode Mode) color.Color {
	if mode == ModeDark {
		return darkText
	}
	return lightText
}
