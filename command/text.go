package command

const dateLayout = "Mon Jan 2 15:04:05 MST 2006"

const helpText = `Available commands:
  help        Show this help message
  about       Who I am
  skills      Languages, tools and platforms
  projects    Selected work
  experience  Where I have worked
  education   Where I studied
  contact     How to reach me
  social      Elsewhere on the internet
  whoami      Current user
  date        Current date and time
  ls          List directory contents
  pwd         Print working directory
  sudo        Elevate privileges
  hack        Run the exploit kit
  matrix      Follow the white rabbit
  clear, cls  Clear the terminal
  exit        Close the terminal`

const aboutText = `Software engineer building backend services, developer tooling and the
occasional terminal toy. I like small binaries, boring infrastructure and
interfaces that get out of the way.`

const skillsText = `Languages : Go, TypeScript, Python, SQL, Bash
Backend   : gRPC, REST, PostgreSQL, SQLite, Redis
Infra     : Docker, Kubernetes, Terraform, Linux
Tooling   : Git, Make, GitHub Actions, Vim`

const projectsText = `[1] portfolio-term  Terminal rendition of this site with a fake shell
[2] shortlink        URL shortener with privacy-conscious analytics
[3] vi-trainer       Typing game for learning vi motions
[4] homelab          Self-hosted services on a single mini PC`

const experienceText = `2022 - now   Backend Engineer     Payments platform, Go services
2019 - 2022  Software Engineer    Logistics startup, APIs and data pipelines
2017 - 2019  Junior Developer     Agency work, web applications`

const educationText = `B.Sc. Computer Science
Coursework: distributed systems, compilers, operating systems`

const contactText = `Email  : hello@example.dev
PGP    : 0xDEADBEEFCAFEBABE
Or use the contact form on the page.`

const socialText = `GitHub   : github.com/example
LinkedIn : linkedin.com/in/example
Mastodon : @example@hachyderm.io`

const whoamiText = `visitor`

const lsText = `about.txt  contact.txt  projects/  resume.pdf  skills.json  secrets/`

const pwdText = `/home/visitor`

const sudoText = `visitor is not in the sudoers file. This incident will be reported.`

var hackLines = []string{
	"Initiating hack sequence...",
	"Connecting to mainframe... ████████████ 100%",
	"Decrypting firewall... ACCESS GRANTED",
	"Just kidding! This is just a portfolio website 😄",
}

var matrixLines = []string{
	"Wake up, Neo...",
	"The Matrix has you...",
	"Follow the white rabbit.",
	"Knock, knock, Neo. ████",
}
