package models

import "fmt"

// Catalog identifies which of the two project lists a record belongs to
type Catalog int

const (
	// Internship records are numbered case studies
	Internship Catalog = iota
	// Coursework records are school projects shown in authored order
	Coursework
)

// String returns the catalog name used in JSON and templates
func (c Catalog) String() string {
	switch c {
	case Internship:
		return "internship"
	case Coursework:
		return "coursework"
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler
func (c Catalog) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (c *Catalog) UnmarshalText(text []byte) error {
	switch string(text) {
	case "internship":
		*c = Internship
	case "coursework":
		*c = Coursework
	default:
		return fmt.Errorf("unknown catalog %q", text)
	}
	return nil
}

// Project represents one portfolio entry. Optional string fields are absent when empty.
type Project struct {
	ID        string   `json:"id"`
	Catalog   Catalog  `json:"catalog"`
	Order     int      `json:"order,omitempty"` // 0 means unnumbered
	Title     string   `json:"title"`
	Role      string   `json:"role"`
	Year      string   `json:"year"`
	Summary   string   `json:"summary"`
	Tags      []string `json:"tags"`
	Image     string   `json:"image,omitempty"`
	HeroColor string   `json:"hero_color,omitempty"`
	Details   Details  `json:"details"`
}

// HasOrder reports whether the project carries a display number
func (p *Project) HasOrder() bool {
	return p.Order > 0
}

// Details holds the case study body. Every field is optional.
type Details struct {
	Overview   string   `json:"overview,omitempty"`
	Problem    string   `json:"problem,omitempty"`
	Purpose    string   `json:"purpose,omitempty"`
	Reflection string   `json:"reflection,omitempty"`
	Process    []string `json:"process,omitempty"`
	Solution   []string `json:"solution,omitempty"`
	Impact     []string `json:"impact,omitempty"`

	ProblemImage   string `json:"problem_image,omitempty"`
	ProblemImg     string `json:"problem_img,omitempty"` // older spelling, same slot
	NoProblemImage bool   `json:"no_problem_image,omitempty"`

	SolutionImages []string `json:"solution_images,omitempty"`
	SolutionImage  string   `json:"solution_image,omitempty"`
	SolutionImage2 string   `json:"solution_image_2,omitempty"`
	RoadmapImage   string   `json:"roadmap_image,omitempty"`

	ProcessImages []string `json:"process_images,omitempty"`
}

// ProjectList wraps both catalogs
type ProjectList struct {
	Internship []Project `json:"internship"`
	Coursework []Project `json:"coursework"`
}
