package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// BuildMainLayout constructs the complete application UI and returns both
// the layout and the shared state, so main can wire menu items to the
// theme controller.
//
// The layout structure is:
//   - Header: brand, section navigation buttons, theme toggle (pinned)
//   - Content: vertical scroll over the section sequence
//     Home -> About -> Projects -> Skills -> Contact -> footer
//
// Each section's root object is registered with the navigator under its
// display name; the header buttons scroll to them.
func BuildMainLayout(app fyne.App, window fyne.Window) (fyne.CanvasObject, *PortfolioAppState) {
	state := NewPortfolioAppState(app, window)

	intro := NewIntroView(state)
	about := NewAboutView(state)
	projects := NewProjectsView(state)
	skills := NewSkillsView(state)
	contact := NewContactView(state)

	sections := container.NewVBox(
		intro.Section,
		about.Section,
		projects.Section,
		skills.Section,
		contact.Section,
		NewFooter(state),
	)

	// The VBox is the scroll content directly, so each section's
	// Position().Y is already an offset in scroll space.
	scroll := container.NewVScroll(sections)
	state.Nav = NewNavigator(scroll)

	// Anchor names must stay in sync with content.SectionNames; the
	// header builds its buttons from that list.
	state.Nav.Register("Home", intro.Section)
	state.Nav.Register("About", about.Section)
	state.Nav.Register("Projects", projects.Section)
	state.Nav.Register("Skills", skills.Section)
	state.Nav.Register("Contact", contact.Section)

	header := NewHeader(state)

	layout := container.NewBorder(
		header, // Top
		nil,    // Bottom
		nil,    // Left
		nil,    // Right
		scroll, // Center fills remaining space
	)

	return layout, state
}
