package content

// Site copy shared by the page header and footer
const (
	Name         = "Esther Ramcharan"
	Headline     = "Interaction Design Student"
	Intro        = "I design accessible, thoughtful experiences—balancing research, systems thinking, and clean UI. Below are my internship case studies and three school projects."
	About        = "I’m Esther Ramcharan, an Interaction Design student at Sheridan. My internship focused on accessibility audits, ticket workflows, and app UX improvements for Renew and CMPA. I balance research, process documentation, and visual design to create accessible, thoughtful experiences."
	Email        = "estherramcharan@example.com"
	PortfolioURL = "https://ramchaes.myportfolio.com/work"
	ResumeFile   = "Esther_Ramcharan_Resume.pdf"
)
