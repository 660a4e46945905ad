package gfx

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/unicorn-run/internal/core"
)

var (
	skyTop       = color.RGBA{0x1a, 0x0b, 0x2e, 0xff}
	platformFill = color.RGBA{0x8a, 0x2b, 0xe2, 0xff}
	platformTop  = color.RGBA{0xda, 0x70, 0xd6, 0xff}
	hudText      = color.RGBA{0xff, 0xff, 0xff, 0xff}
	hudDim       = color.RGBA{0xb0, 0xa8, 0xc8, 0xff}
	heartFull    = color.RGBA{0xff, 0x14, 0x93, 0xff}
	heartEmpty   = color.RGBA{0x4a, 0x3a, 0x5a, 0xff}
	gold         = color.RGBA{0xff, 0xd7, 0x00, 0xff}
	overlayShade = color.RGBA{0x00, 0x00, 0x00, 0xa0}
)

// cellColors gives the window look of the terminal palette.
var cellColors = map[core.Color]color.RGBA{
	core.ColorRed:           {0xcc, 0x22, 0x22, 0xff},
	core.ColorGreen:         {0x22, 0xcc, 0x44, 0xff},
	core.ColorYellow:        {0xff, 0xee, 0x44, 0xff},
	core.ColorBlue:          {0x33, 0x66, 0xff, 0xff},
	core.ColorMagenta:       {0xff, 0x44, 0xff, 0xff},
	core.ColorCyan:          {0x00, 0xff, 0xff, 0xff},
	core.ColorWhite:         {0xc0, 0xc0, 0xc0, 0xff},
	core.ColorBrightRed:     {0xff, 0x33, 0x33, 0xff},
	core.ColorBrightGreen:   {0x98, 0xff, 0x98, 0xff},
	core.ColorBrightYellow:  {0xff, 0xff, 0x66, 0xff},
	core.ColorBrightBlue:    {0x66, 0x99, 0xff, 0xff},
	core.ColorBrightMagenta: {0xff, 0x88, 0xff, 0xff},
	core.ColorBrightCyan:    {0x88, 0xff, 0xff, 0xff},
	core.ColorBrightWhite:   {0xff, 0xff, 0xff, 0xff},
	core.ColorOrange:        {0xff, 0x99, 0x00, 0xff},
	core.ColorGray:          {0x80, 0x80, 0x88, 0xff},
	core.ColorPink:          {0xff, 0x69, 0xb4, 0xff},
	core.ColorPurple:        {0x93, 0x70, 0xdb, 0xff},
	core.ColorViolet:        {0x94, 0x00, 0xd3, 0xff},
	core.ColorGold:          {0xff, 0xd7, 0x00, 0xff},
}

// rgb returns the window color for a cell color; unknown colors are white.
func rgb(c core.Color) color.RGBA {
	if v, ok := cellColors[c]; ok {
		return v
	}
	return color.RGBA{0xff, 0xff, 0xff, 0xff}
}

// hue returns a saturated rainbow color at the given hue in degrees,
// with alpha in [0, 1].
func hue(deg, alpha float64) color.NRGBA {
	r, g, b := colorful.Hsv(deg, 0.8, 1).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(core.ClampF(alpha, 0, 1) * 255)}
}

// fade returns c with its alpha scaled by a in [0, 1].
func fade(c color.RGBA, a float64) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(core.ClampF(a, 0, 1) * float64(c.A))}
}
