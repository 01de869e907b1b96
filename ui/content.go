package ui

// Page copy shown behind the terminal overlay

const (
	siteName     = "Alex Example"
	siteTagline  = "Software engineer · Go · infrastructure · terminal toys"
	terminalHint = "press ` to open the terminal"
)

var profileGlyph = []string{
	" .---. ",
	"/ o o \\",
	"|  ^  |",
	"\\ '-' /",
	" '---' ",
}

type section struct {
	id    string
	title string
	body  []string
}

var sections = []section{
	{
		id:    "about",
		title: "About",
		body: []string{
			"I build backend services, developer tooling and the occasional terminal toy.",
			"Small binaries, boring infrastructure, interfaces that get out of the way.",
		},
	},
	{
		id:    "skills",
		title: "Skills",
	},
	{
		id:    "projects",
		title: "Projects",
	},
	{
		id:    "contact",
		title: "Contact",
		body: []string{
			"hello@example.dev",
			"github.com/example · linkedin.com/in/example",
		},
	},
}

var skills = []string{"Go", "TypeScript", "Python", "SQL", "Docker", "Kubernetes", "Linux", "Vim"}

type project struct {
	title string
	desc  string
}

var projects = []project{
	{"portfolio-term", "This site, in a terminal"},
	{"shortlink", "URL shortener with analytics"},
	{"vi-trainer", "Typing game for vi motions"},
	{"homelab", "Self-hosted services"},
}
