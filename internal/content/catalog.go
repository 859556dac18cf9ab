// Package content holds the compiled-in portfolio catalogs and site copy.
package content

import "github.com/ramchaes/portfolio/internal/models"

// ProcessLimits lists projects allowed more than the default number of process images
var ProcessLimits = map[string]int{
	"renew-tickets": 3,
}

// Catalogs returns fresh copies of both catalogs
func Catalogs() *models.ProjectList {
	return &models.ProjectList{
		Internship: Internship(),
		Coursework: Coursework(),
	}
}

// Internship returns the internship case studies in authored order
func Internship() []models.Project {
	return []models.Project{
		{
			ID:        "cmpa",
			Catalog:   models.Internship,
			Order:     1,
			Title:     "CMPA Website Accessibility Audit",
			Role:      "UX Research & Interaction Design",
			Year:      "2025",
			Tags:      []string{"WCAG 2.1", "Heuristic Eval", "Annotated Screens", "Wireframes"},
			Summary:   "A thorough accessibility & usability audit of the CMPA site with prioritized fixes for contrast, navigation, and checkout.",
			Image:     "cmpa-audit.png",
			HeroColor: "from-sky-100 to-white",
			Details: models.Details{
				Overview: "As part of my internship, I conducted a full audit of the CMPA website to identify barriers to navigation, readability, and task completion.",
				Problem:  "Low contrast, confusing navigation, and a complex checkout created friction for members and first-time visitors.",
				Process: []string{
					"Applied WCAG 2.1 AA to key templates and flows",
					"Heuristic review across Nielsen’s 10 principles",
					"Documented issues with screenshots + standard references",
				},
				Solution: []string{
					"Color/contrast updates in a soft blue palette with improved ratios",
					"‘New Here’ entry point and simplified global nav",
					"Checkout flow re-sequenced; clearer labels & form feedback",
				},
				Impact: []string{
					"Created a prioritized roadmap for Phase 1 redesign",
					"Enabled dev-ready implementation via precise annotations",
				},
				Reflection:    "Combine standards with quick user validation next—e.g., task-based tests with representative users.",
				ProblemImage:  "cmpa-contrast-issues.png",
				SolutionImage: "cmpa-nav-redesign.png",
				RoadmapImage:  "cmpa-roadmap.png",
				ProcessImages: []string{"cmpa-wcag-checklist.png", "cmpa-heuristics.png"},
			},
		},
		{
			ID:        "renew-tickets",
			Catalog:   models.Internship,
			Order:     3,
			Title:     "Renew Ticket Workflow",
			Role:      "Process Design & Documentation",
			Year:      "2025",
			Tags:      []string{"Service Design", "Jira", "Documentation"},
			Summary:   "Restructured how support tickets move from intake to resolution so the team could see ownership and status at a glance.",
			Image:     "renew-workflow.png",
			HeroColor: "from-emerald-100 to-white",
			Details: models.Details{
				Overview: "Mapped the existing ticket lifecycle and redesigned its states, labels and hand-offs with the support team.",
				Purpose:  "Give every ticket a single clear owner and a predictable path to closure.",
				Process: []string{
					"Shadowed triage sessions and logged every hand-off",
					"Card-sorted ticket categories with the support leads",
					"Drafted the new state diagram and reviewed it in two rounds",
				},
				Solution: []string{
					"Five-state workflow replacing eleven ad-hoc statuses",
					"Triage checklist embedded in the intake form",
				},
				Impact:         []string{"Fewer tickets bounced between owners", "New hires onboarded from a single page"},
				SolutionImages: []string{"renew-states.png", "renew-intake.png"},
				ProcessImages: []string{
					"renew-shadowing.png",
					"renew-card-sort.png",
					"renew-state-draft.png",
					"renew-review.png",
				},
			},
		},
		{
			ID:        "renew-app",
			Catalog:   models.Internship,
			Order:     2,
			Title:     "Renew App UX Improvements",
			Role:      "Interaction Design",
			Year:      "2025",
			Tags:      []string{"Mobile", "Prototyping", "Usability Testing"},
			Summary:   "Streamlined the booking flow of the Renew mobile app and tested the changes with returning clients.",
			Image:     "renew-app.png",
			HeroColor: "from-rose-100 to-white",
			Details: models.Details{
				Overview:       "Reviewed analytics and support feedback to find where clients abandoned bookings.",
				Problem:        "Booking took seven screens and hid the cancellation policy until the final step.",
				Process:        []string{"Funnel review with the product owner", "Three rounds of clickable prototypes"},
				Solution:       []string{"Three-step booking with the policy shown up front", "Saved preferences for repeat clients"},
				Impact:         []string{"Prototype task time dropped by a third"},
				Reflection:     "Testing with returning clients surfaced issues analytics alone did not show.",
				NoProblemImage: true,
				SolutionImages: []string{"https://youtu.be/dQw4w9WgXcQ", "renew-app-after.png"},
			},
		},
	}
}

// Coursework returns the school projects in authored order
func Coursework() []models.Project {
	return []models.Project{
		{
			ID:        "sp-wayfinding",
			Catalog:   models.Coursework,
			Title:     "Wayfinding App Concept",
			Role:      "Coursework — Interaction Design",
			Year:      "2024",
			Tags:      []string{"Mobile", "Mapping", "Usability Testing"},
			Summary:   "Campus wayfinding with landmark-based steps and accessible routing to reduce decision friction.",
			Image:     "sp-wayfinding.png",
			HeroColor: "from-violet-100 to-white",
			Details: models.Details{
				Overview: "Studio brief to design an onboarding-friendly navigation tool for new students.",
				Problem:  "Precise maps aren’t always friendly for on-foot, first-week navigation.",
				Process: []string{
					"Intercept interviews + mini journey maps",
					"Paper → mid-fi wireframes; 2 usability rounds",
					"IA tuned for single-path clarity",
				},
				Solution: []string{
					"‘Next Landmark’ guidance vs dense map labels",
					"Accessible routes toggle + contrast checks",
					"Context chips (restrooms, elevators, help desks)",
				},
				Impact:         []string{"Task success +27%", "Time-on-task −18%"},
				Reflection:     "Chunked information + anxiety-aware copy improved confidence.",
				SolutionImages: []string{"sp-wayfinding-landmarks.png"},
			},
		},
		{
			ID:        "sp-mealplanner",
			Catalog:   models.Coursework,
			Title:     "Campus Meal Planner",
			Role:      "Coursework — Service/UX",
			Year:      "2024",
			Tags:      []string{"Flows", "Content Design", "Prototyping"},
			Summary:   "Weekly planner balancing cost, nutrition, and cafeteria stock to cut waste and choice fatigue.",
			Image:     "sp-mealplanner.png",
			HeroColor: "from-lime-100 to-white",
			Details: models.Details{
				Overview: "Help students plan affordable meals with real cafeteria menus and stock.",
				Problem:  "Over-spend + repetitive choices; staff struggled with forecasting.",
				Process: []string{
					"1-week diary study on constraints",
					"‘Plan in 2 minutes’ flow",
					"Mid-fi prototype with copy-first content",
				},
				Solution: []string{
					"One-tap template + smart swaps",
					"Budget/nutrition badges at list level",
					"Out-of-stock warnings via staff inputs",
				},
				Impact:     []string{"84% planned in <3 min", "Predicted 6–10% waste reduction"},
				Reflection: "Small content cues (defaults/badges) shift behavior more than heavy analytics.",
			},
		},
		{
			ID:        "sp-museumkiosk",
			Catalog:   models.Coursework,
			Title:     "Museum Kiosk Redesign",
			Role:      "Coursework — Interaction Design",
			Year:      "2023",
			Tags:      []string{"Kiosk", "Accessibility", "Microcopy"},
			Summary:   "Touch kiosk with larger targets, better contrast, and story-led navigation.",
			Image:     "sp-museumkiosk.png",
			HeroColor: "from-orange-100 to-white",
			Details: models.Details{
				Overview: "Redesign for mixed-age visitors with varied tech familiarity.",
				Problem:  "Small targets and unclear ‘back to exhibit’ paths caused errors.",
				Process: []string{
					"Heuristic audit + field observation",
					"Tap-target sizing + color/contrast tests",
					"Story-first browse prototype",
				},
				Solution: []string{
					"44px min touch targets",
					"Persistent ‘Back to Exhibit’ affordance",
					"Narrative browse (People • Places • Objects)",
				},
				Impact:         []string{"Error taps −41%", "Clearer exits; dwell time ↑"},
				Reflection:     "Accessibility basics + narrative framing create friendlier public UX.",
				SolutionImage:  "sp-museumkiosk-before.png",
				SolutionImage2: "sp-museumkiosk-after.png",
				ProcessImages:  []string{"sp-museumkiosk-observation.png"},
			},
		},
	}
}
