package models

// Project represents one portfolio entry in the projects grid.
// Projects are compiled into the binary and never change at runtime.
// The DemoURL is optional; projects without a live deployment leave it empty
// and the UI skips the demo button.
type Project struct {
	Title       string // Display name (e.g., "Flash Chat")
	Description string // Short blurb shown on the project card
	RepoURL     string // Source repository link
	DemoURL     string // Live demo link, "" if none
	Image       string // Asset name of the project screenshot
}

// Skill represents one entry in the skills section.
// Proficiency is a ratio in [0, 1]; the UI renders it both as a progress
// bar and as a truncated integer percentage label.
type Skill struct {
	Name        string  // Display name (e.g., "Go")
	Proficiency float64 // Ratio in [0, 1]
	Icon        string  // Asset name of the skill icon
}

// SocialLink represents one outbound profile link in the contact section.
type SocialLink struct {
	Name string // User-facing name (e.g., "GitHub")
	URL  string // Profile URL handed to the platform URI opener
	Icon string // Asset name of the button icon
}
