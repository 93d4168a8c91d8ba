// Package content holds the compiled-in portfolio data.
// Everything here is a build-time literal: there is no config file, no
// database and no remote source. Editing the portfolio means editing this
// file and rebuilding.
package content

import (
	"fmt"

	"github.com/AhmadAli3234/my-portfolio-website/models"
)

// Owner identity shown in the hero and contact sections.
const (
	Name    = "Ahmad Ali"
	Tagline = "Mobile & Desktop Application Developer"
	Email   = "ahmadali.dev@gmail.com"

	// CVURL points at an externally hosted copy of the CV; the app only
	// hands it to the platform URI opener, it never downloads the file
	// itself.
	CVURL = "https://drive.google.com/file/d/1kQm9qXvP2nViewCV/view"
)

// Bio is the long-form text for the About section.
var Bio = `I am a software developer focused on building polished, single-purpose
applications with clean architecture and careful attention to detail.
I enjoy taking a product from first sketch to a finished, shippable
binary, and I care as much about the parts users never see as the
ones they do.

Outside of work I contribute to open source, experiment with new
frameworks, and occasionally write about what I learn along the way.`

// SectionNames lists every navigable section in display order.
// The footer renders below Contact but is not a navigation target.
var SectionNames = []string{"Home", "About", "Projects", "Skills", "Contact"}

// Projects is the fixed project list rendered in the projects grid.
var Projects = []models.Project{
	{
		Title: "Flash Chat",
		Description: `A real-time group messaging application with account registration,
authentication and an animated conversation view.`,
		RepoURL: "https://github.com/AhmadAli3234/flash-chat",
		DemoURL: "https://flash-chat-demo.web.app",
		Image:   "project_flash_chat.png",
	},
	{
		Title: "Clima",
		Description: `A location-aware weather client showing live conditions for the
device position or any searched city, with condition-matched artwork.`,
		RepoURL: "https://github.com/AhmadAli3234/clima",
		DemoURL: "",
		Image:   "project_clima.png",
	},
	{
		Title: "Todoey",
		Description: `A task manager with swipe-to-complete lists, color-graded
categories and instant local persistence.`,
		RepoURL: "https://github.com/AhmadAli3234/todoey",
		DemoURL: "",
		Image:   "project_todoey.png",
	},
	{
		Title: "BMI Calculator",
		Description: `A body-mass-index calculator with custom sliders and a themed
result screen, built as an exercise in reusable widget composition.`,
		RepoURL: "https://github.com/AhmadAli3234/bmi-calculator",
		DemoURL: "https://bmi-calc-demo.web.app",
		Image:   "project_bmi.png",
	},
}

// Skills is the fixed skill list rendered as progress bars.
var Skills = []models.Skill{
	{Name: "Dart & Flutter", Proficiency: 0.9, Icon: "skill_flutter.png"},
	{Name: "Go", Proficiency: 0.8, Icon: "skill_go.png"},
	{Name: "Firebase", Proficiency: 0.75, Icon: "skill_firebase.png"},
	{Name: "REST APIs", Proficiency: 0.85, Icon: "skill_rest.png"},
	{Name: "UI Design", Proficiency: 0.65, Icon: "skill_design.png"},
}

// SocialLinks are the outbound profile links in the contact section.
var SocialLinks = []models.SocialLink{
	{Name: "GitHub", URL: "https://github.com/AhmadAli3234", Icon: "social_github.png"},
	{Name: "LinkedIn", URL: "https://www.linkedin.com/in/ahmadali3234", Icon: "social_linkedin.png"},
	{Name: "Twitter", URL: "https://twitter.com/AhmadAli3234", Icon: "social_twitter.png"},
}

// PercentLabel formats a proficiency ratio as a whole-number percentage.
// The fraction is truncated, not rounded: 0.658 renders as "65%".
func PercentLabel(proficiency float64) string {
	return fmt.Sprintf("%d%%", int(proficiency*100))
}
