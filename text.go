package main

import "html/template"

var (
	HomeHeadline = "Design Without Boundaries"

	HomeIntro = `Systems, security and computer vision projects, built end to end and
	written up in detail. Have a look around, or get in touch.`

	AboutMe = `I'm a computer science student who likes building things that run in the real world:
	surveillance pipelines that track people across frames, bootable tools that wipe disks to
	standard, and the small web experiments in between. Most projects start with a question about
	how something works and end with a system that answers it.`

	SkillsIntro = `Technical skills, tools, and frameworks I work with.`
)

// ProfileCard configures the tilt card on the about page. IconURL and
// GrainURL are optional overlay textures.
type ProfileCard struct {
	Name            string
	Title           string
	Handle          string
	Status          string
	ContactText     string
	AvatarURL       string
	IconURL         string
	GrainURL        string
	InnerGradient   template.CSS
	BehindGlowColor template.CSS
	BehindGlowSize  template.CSS
	ShowUserInfo    bool
	EnableTilt      bool
	EnableMobile    bool
}

var defaultProfile = ProfileCard{
	Name:            "Jay Joshi",
	Title:           "B.Tech Computer Science Student",
	Handle:          "gaminbhoot",
	Status:          "Online",
	ContactText:     "Contact Me",
	AvatarURL:       "/images/jay1.webp",
	InnerGradient:   "linear-gradient(145deg,#60496e8c 0%,#71C4FF44 100%)",
	BehindGlowColor: "rgba(125, 190, 255, 0.67)",
	BehindGlowSize:  "50%",
	ShowUserInfo:    true,
	EnableTilt:      true,
}

// NavItem is one entry in the bottom dock.
type NavItem struct {
	Label string
	Path  string
}

var dockItems = []NavItem{
	{"Home", "/"},
	{"About", "/about"},
	{"Projects", "/projects"},
	{"Skills", "/skills"},
	{"Contact", "/contact"},
}

// SkillGroup is a titled list on the skills page.
type SkillGroup struct {
	Title  string
	Skills []string
}

var skillGroups = []SkillGroup{
	{"Languages", []string{"Python", "Go", "JavaScript", "C++", "Bash"}},
	{"Computer Vision", []string{"YOLOv8", "Deep SORT", "OpenCV", "NumPy"}},
	{"Systems & Security", []string{"Linux", "PXE boot", "nvme-cli", "ATA Secure Erase"}},
	{"Web", []string{"React", "Tailwind CSS", "Flask", "Gin", "HTMX"}},
}
