package ui

import (
	"math"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/portfolio-term/constants"
	"github.com/lixenwraith/portfolio-term/effects"
	"github.com/lixenwraith/portfolio-term/timer"
)

const (
	navbarHeight = 1
	heroHeight   = 9
	skillHeight  = 3
	cardHeight   = 4
	cardMaxWidth = 30
	blockGap     = 2
	viewMargin   = 1 // In-view detection ignores the bottom row
)

// pageLayout positions page elements in page rows for one screen width
type pageLayout struct {
	width    int
	height   int
	sections []effects.Rect // Parallel to sections
	skills   []effects.Rect
	cards    []effects.Rect
}

func layoutPage(width int) pageLayout {
	l := pageLayout{width: width}
	y := heroHeight

	for _, s := range sections {
		top := y
		y += 2 // Title and gap
		y += len(s.body)

		switch s.id {
		case "skills":
			l.skills, y = flowBlocks(skillWidths(), skillHeight, width, y)
		case "projects":
			w := min(cardMaxWidth, max(width-4, 10))
			widths := make([]int, len(projects))
			for i := range widths {
				widths[i] = w
			}
			l.cards, y = flowBlocks(widths, cardHeight, width, y)
		}

		y++
		l.sections = append(l.sections, effects.Rect{X: 0, Y: top, W: width, H: y - top})
	}

	l.height = y
	return l
}

func skillWidths() []int {
	widths := make([]int, len(skills))
	for i, s := range skills {
		widths[i] = runewidth.StringWidth(s) + 4
	}
	return widths
}

// flowBlocks lays equal-height blocks left to right, wrapping at width
func flowBlocks(widths []int, h, width, y int) ([]effects.Rect, int) {
	rects := make([]effects.Rect, 0, len(widths))
	x := 2
	for _, w := range widths {
		if x > 2 && x+w > width-2 {
			x = 2
			y += h + 1
		}
		rects = append(rects, effects.Rect{X: x, Y: y, W: w, H: h})
		x += w + blockGap
	}
	if len(widths) > 0 {
		y += h
	}
	return rects, y
}

// navLink is a clickable navbar entry, in screen coordinates
type navLink struct {
	id   string
	rect effects.Rect
}

// Page is the portfolio view behind the terminal overlay
type Page struct {
	sched    timer.Scheduler
	heading  *effects.Typewriter
	observer *effects.Observer
	scroll   *effects.Debouncer

	offset  int // Rows scrolled
	applied int // Offset seen by scroll-driven effects, lags offset by the debounce
	viewH   int
	layout  pageLayout

	animated   []bool // Skills then projects
	pointerX   int
	pointerY   int
	hasPointer bool

	links     []navLink
	cardRects []effects.Rect // Last drawn, screen coordinates
}

// NewPage builds the page view; Start begins its load animations
func NewPage(sched timer.Scheduler) *Page {
	return &Page{
		sched:    sched,
		heading:  effects.NewTypewriter(siteName, sched, constants.HeadingStartDelay, constants.HeadingCharInterval),
		observer: effects.NewObserver(viewMargin),
		scroll:   effects.NewDebouncer(sched, constants.ScrollDebounce),
		animated: make([]bool, len(skills)+len(projects)),
	}
}

// Start runs the page-load effects: heading typewriter and staggered animate-in
func (p *Page) Start() {
	p.heading.Start()
	effects.Stagger(p.sched, len(p.animated), func(i int) {
		p.animated[i] = true
	})
}

// Heading returns the currently typed heading
func (p *Page) Heading() string {
	return p.heading.Visible()
}

// Offset returns the current scroll position
func (p *Page) Offset() int {
	return p.offset
}

// NavbarScrolled reports the navbar style after debounced scroll handling
func (p *Page) NavbarScrolled() bool {
	return effects.NavbarScrolled(p.applied)
}

// InView reports whether the section has been seen
func (p *Page) InView(id string) bool {
	return p.observer.InView(id)
}

// Animated reports whether the i-th skill/project block has animated in
func (p *Page) Animated(i int) bool {
	return i >= 0 && i < len(p.animated) && p.animated[i]
}

func (p *Page) maxOffset() int {
	return max(p.layout.height-p.viewH, 0)
}

// ScrollBy moves the page n rows, clamped to the content
func (p *Page) ScrollBy(n int) {
	p.scrollTo(p.offset + n)
}

// ScrollHome and ScrollEnd jump to either end
func (p *Page) ScrollHome() { p.scrollTo(0) }
func (p *Page) ScrollEnd()  { p.scrollTo(p.maxOffset()) }

// JumpTo scrolls so the section sits just below the navbar
func (p *Page) JumpTo(id string) bool {
	for i, s := range sections {
		if s.id == id && i < len(p.layout.sections) {
			p.scrollTo(effects.AnchorOffset(p.layout.sections[i].Y, navbarHeight))
			return true
		}
	}
	return false
}

func (p *Page) scrollTo(off int) {
	off = min(max(off, 0), p.maxOffset())
	if off == p.offset {
		return
	}
	p.offset = off
	p.scroll.Trigger(func() {
		p.applied = p.offset
	})
}

// Pointer records the mouse position for tilt and hover
func (p *Page) Pointer(x, y int) {
	p.pointerX, p.pointerY = x, y
	p.hasPointer = true
}

// LinkAt returns the navbar section under (x, y)
func (p *Page) LinkAt(x, y int) (string, bool) {
	for _, l := range p.links {
		if l.rect.Contains(x, y) {
			return l.id, true
		}
	}
	return "", false
}

// CardTransform returns the tilt of project card i under the current pointer
func (p *Page) CardTransform(i int) effects.Transform {
	if !p.hasPointer || i < 0 || i >= len(p.cardRects) {
		return effects.Identity
	}
	return effects.Tilt(p.cardRects[i], p.pointerX, p.pointerY)
}

// Draw renders the page into r at time now
func (p *Page) Draw(r Region, now time.Time) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	if p.layout.width != r.W || p.layout.height == 0 {
		p.layout = layoutPage(r.W)
	}
	p.viewH = r.H
	if p.offset > p.maxOffset() {
		p.offset = p.maxOffset()
	}

	r.Fill(' ', stylePage)
	p.drawStars(r)
	p.drawHero(r, now)

	drift := int(math.Round(effects.SectionDrift(p.applied)))
	p.cardRects = p.cardRects[:0]
	for i, s := range sections {
		box := p.layout.sections[i]
		p.observer.Observe(s.id, box.Y, box.H, p.offset, p.viewH)
		p.drawSection(r, i, box.Y-p.offset+drift)
	}

	p.drawNavbar(r)
}

func (p *Page) drawStars(r Region) {
	shift := int(effects.Parallax(p.applied, constants.ParallaxSpeed))
	for y := 0; y < r.H; y++ {
		row := y - shift
		for x := 0; x < r.W; x++ {
			if starAt(x, row) {
				r.Cell(x, y, '·', styleStar)
			}
		}
	}
}

// starAt is a fixed sparse pattern
func starAt(x, y int) bool {
	h := uint32(x)*73856093 ^ uint32(y)*19349663
	return h%53 == 0
}

func (p *Page) drawHero(r Region, now time.Time) {
	top := -p.offset
	heading := p.heading.Visible()
	if !p.heading.Done() {
		heading += "_"
	}
	r.Text(2, top+3, heading, styleHeading)
	r.Text(2, top+5, siteTagline, stylePage)
	r.Text(2, top+7, terminalHint, styleDim)

	glyphW := runewidth.StringWidth(profileGlyph[0])
	if r.W < glyphW+runewidth.StringWidth(siteTagline)+6 {
		return
	}
	bob := int(math.Round(effects.FloatOffset(now, constants.FloatAmplitude)))
	gx := r.W - glyphW - 3
	for i, line := range profileGlyph {
		r.Text(gx, top+2+i+bob, line, styleTitle)
	}
}

func (p *Page) drawSection(r Region, idx, top int) {
	s := sections[idx]
	seen := p.observer.InView(s.id)

	r.Text(2, top, "## "+s.title, styleTitle)
	body := stylePage
	if !seen {
		body = styleDim
	}
	for i, line := range s.body {
		r.Text(4, top+2+i, line, body)
	}

	shift := top - p.layout.sections[idx].Y
	switch s.id {
	case "skills":
		for i, rect := range p.layout.skills {
			rect.Y += shift
			p.drawSkill(r, i, rect)
		}
	case "projects":
		for i, rect := range p.layout.cards {
			rect.Y += shift
			p.cardRects = append(p.cardRects, screenRect(r, rect))
			p.drawCard(r, i, rect)
		}
	}
}

func (p *Page) drawSkill(r Region, i int, rect effects.Rect) {
	box := r.Sub(rect.X, rect.Y, rect.W, rect.H)
	if !p.animated[i] {
		box.Box(styleDim)
		return
	}
	hover := effects.Hover(p.hasPointer && screenRect(r, rect).Contains(p.pointerX, p.pointerY))
	style := styleCard
	if !hover.Resting() {
		style = styleCardHot
	}
	box.Box(style)
	box.TextCenter(1, skills[i], style.Bold(!hover.Resting()))
}

func (p *Page) drawCard(r Region, i int, rect effects.Rect) {
	box := r.Sub(rect.X, rect.Y, rect.W, rect.H)
	if !p.animated[len(skills)+i] {
		box.Box(styleDim)
		return
	}

	tilt := effects.Identity
	if p.hasPointer {
		tilt = effects.Tilt(screenRect(r, rect), p.pointerX, p.pointerY)
	}
	style := styleCard
	if !tilt.Resting() {
		style = styleCardHot
		p.drawShadow(r, rect, tilt)
	}
	box.Box(style)
	box.Text(2, 1, projects[i].title, styleTitle)
	box.Text(2, 2, projects[i].desc, stylePage)
}

// screenRect converts a region-relative rect to screen coordinates
func screenRect(r Region, rect effects.Rect) effects.Rect {
	rect.X += r.X
	rect.Y += r.Y
	return rect
}

// drawShadow casts a shade on the side the card tilts away from
func (p *Page) drawShadow(r Region, rect effects.Rect, t effects.Transform) {
	sx := rect.X + rect.W
	if t.RotateY > 0 {
		sx = rect.X - 1
	}
	for y := rect.Y + 1; y <= rect.Y+rect.H; y++ {
		r.Cell(sx, y, '░', styleShadow)
	}
	sy := rect.Y + rect.H
	if t.RotateX > 0 {
		sy = rect.Y - 1
	}
	for x := rect.X + 1; x < rect.X+rect.W; x++ {
		r.Cell(x, sy, '░', styleShadow)
	}
}

func (p *Page) drawNavbar(r Region) {
	style := styleNavbar
	if p.NavbarScrolled() {
		style = styleNavbarDk
	}
	bar := r.Sub(0, 0, r.W, navbarHeight)
	bar.Fill(' ', style)
	x := 1 + bar.Text(1, 0, siteName, style.Foreground(colorAccent))

	p.links = p.links[:0]
	for _, s := range sections {
		x += 3
		w := bar.Text(x, 0, s.title, style)
		if w > 0 {
			p.links = append(p.links, navLink{id: s.id, rect: screenRect(r, effects.Rect{X: x, W: w, H: 1})})
		}
		x += w
	}
	bar.TextRight(0, "[`] terminal ", style.Foreground(colorDim))
}
