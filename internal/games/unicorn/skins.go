package unicorn

import (
	"image/color"

	"github.com/vovakirdan/unicorn-run/internal/core"
)

// Skin is a unicorn color scheme. Terminal colors and RGB values describe
// the same look for the two frontends.
type Skin struct {
	Name string

	Body core.Color
	Mane core.Color
	Horn core.Color

	BodyRGB color.RGBA
	ManeRGB color.RGBA
	HornRGB color.RGBA
}

// Skins is the selectable catalogue; index 0 is the default.
var Skins = []Skin{
	{
		Name: "Classic",
		Body: core.ColorBrightWhite, Mane: core.ColorPink, Horn: core.ColorGold,
		BodyRGB: color.RGBA{0xe0, 0xe0, 0xe0, 0xff},
		ManeRGB: color.RGBA{0xff, 0x14, 0x93, 0xff},
		HornRGB: color.RGBA{0xff, 0xd7, 0x00, 0xff},
	},
	{
		Name: "Midnight",
		Body: core.ColorPurple, Mane: core.ColorBrightCyan, Horn: core.ColorWhite,
		BodyRGB: color.RGBA{0x4b, 0x00, 0x82, 0xff},
		ManeRGB: color.RGBA{0x00, 0xff, 0xff, 0xff},
		HornRGB: color.RGBA{0xc0, 0xc0, 0xc0, 0xff},
	},
	{
		Name: "Golden",
		Body: core.ColorGold, Mane: core.ColorBrightWhite, Horn: core.ColorOrange,
		BodyRGB: color.RGBA{0xff, 0xd7, 0x00, 0xff},
		ManeRGB: color.RGBA{0xff, 0xff, 0xff, 0xff},
		HornRGB: color.RGBA{0xff, 0x99, 0x00, 0xff},
	},
	{
		Name: "Shadow",
		Body: core.ColorGray, Mane: core.ColorBrightRed, Horn: core.ColorBrightWhite,
		BodyRGB: color.RGBA{0x40, 0x40, 0x48, 0xff},
		ManeRGB: color.RGBA{0xff, 0x33, 0x33, 0xff},
		HornRGB: color.RGBA{0xff, 0xff, 0xff, 0xff},
	},
	{
		Name: "Mint",
		Body: core.ColorBrightGreen, Mane: core.ColorViolet, Horn: core.ColorBrightYellow,
		BodyRGB: color.RGBA{0x98, 0xff, 0x98, 0xff},
		ManeRGB: color.RGBA{0x94, 0x00, 0xd3, 0xff},
		HornRGB: color.RGBA{0xff, 0xff, 0x66, 0xff},
	},
}

// SkinAt returns the skin at index, falling back to the default for out-of-range values.
func SkinAt(index int) Skin {
	if index < 0 || index >= len(Skins) {
		return Skins[0]
	}
	return Skins[index]
}

// SkinIndex looks up a skin by case-sensitive name.
func SkinIndex(name string) (int, bool) {
	for i, s := range Skins {
		if s.Name == name {
			return i, true
		}
	}
	return 0, false
}
