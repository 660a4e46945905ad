package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorPink
	ColorPurple
	ColorViolet
	ColorGold
)

// Rainbow is the seven-band palette used for trails, ordered red to violet.
var Rainbow = [7]Color{
	ColorRed,
	ColorOrange,
	ColorYellow,
	ColorGreen,
	ColorCyan,
	ColorBlue,
	ColorViolet,
}

// HueColor maps a hue in degrees to the nearest rainbow band.
func HueColor(hue float64) Color {
	for hue < 0 {
		hue += 360
	}
	for hue >= 360 {
		hue -= 360
	}
	band := int(hue / (360.0 / float64(len(Rainbow))))
	return Rainbow[Clamp(band, 0, len(Rainbow)-1)]
}
