// Package projects holds the portfolio's project showcase.
package projects

// Highlight is one technical point on a project summary.
type Highlight struct {
	Title       string
	Description string
}

// Showcase pairs an image with its caption.
type Showcase struct {
	Image string
	Title string
}

type Summary struct {
	Tagline         string
	KeyTechnologies []string
	Highlights      []Highlight
	Metrics         []string
	Architecture    string
	Showcase        []Showcase
}

// Section is one chapter of a project's long-form write-up.
type Section struct {
	ID    string
	Title string
	Body  string
}

type Project struct {
	ID        string
	Title     string
	Category  string
	Year      string
	Thumbnail string
	HeroImage string
	Summary   Summary
	Sections  []Section
}

// All returns every project in display order.
func All() []Project {
	return catalog
}

// Find looks a project up by exact id.
func Find(id string) (Project, bool) {
	for _, p := range catalog {
		if p.ID == id {
			return p, true
		}
	}
	return Project{}, false
}
