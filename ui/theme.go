package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/portfolio-term/output"
)

// Palette
var (
	colorBg       = tcell.NewRGBColor(3, 10, 28)
	colorNavbar   = tcell.NewRGBColor(10, 20, 45)
	colorNavDark  = tcell.NewRGBColor(3, 10, 28)
	colorText     = tcell.NewRGBColor(200, 210, 230)
	colorDim      = tcell.NewRGBColor(90, 100, 125)
	colorAccent   = tcell.NewRGBColor(0, 255, 170)
	colorHighlite = tcell.NewRGBColor(120, 200, 255)
	colorStar     = tcell.NewRGBColor(50, 60, 90)
	colorTermBg   = tcell.NewRGBColor(0, 0, 0)
	colorTermText = tcell.NewRGBColor(0, 255, 65)
	colorPrompt   = tcell.NewRGBColor(80, 180, 255)
	colorError    = tcell.NewRGBColor(255, 85, 85)
	colorButton   = tcell.NewRGBColor(30, 60, 40)
)

var (
	stylePage      = tcell.StyleDefault.Background(colorBg).Foreground(colorText)
	styleDim       = stylePage.Foreground(colorDim)
	styleHeading   = stylePage.Foreground(colorAccent).Bold(true)
	styleTitle     = stylePage.Foreground(colorHighlite).Bold(true)
	styleStar      = stylePage.Foreground(colorStar)
	styleNavbar    = tcell.StyleDefault.Background(colorNavbar).Foreground(colorText)
	styleNavbarDk  = tcell.StyleDefault.Background(colorNavDark).Foreground(colorText).Bold(true)
	styleCard      = stylePage.Foreground(colorDim)
	styleCardHot   = stylePage.Foreground(colorAccent)
	styleShadow    = stylePage.Foreground(colorNavbar)
	styleTerm      = tcell.StyleDefault.Background(colorTermBg).Foreground(colorTermText)
	styleTermFrame = styleTerm.Foreground(colorAccent)
	styleTermDim   = styleTerm.Foreground(colorDim)
	styleCloseBtn  = styleTerm.Foreground(colorError).Bold(true)
	styleButton    = tcell.StyleDefault.Background(colorButton).Foreground(colorTermText)
)

// lineStyle maps an output row style to screen attributes
func lineStyle(s output.Style) tcell.Style {
	switch s {
	case output.StylePrompt:
		return styleTerm.Foreground(colorPrompt)
	case output.StyleSuccess:
		return styleTerm.Foreground(colorAccent)
	case output.StyleError:
		return styleTerm.Foreground(colorError)
	default:
		return styleTerm
	}
}
