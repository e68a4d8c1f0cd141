package core

// Color represents a foreground color for a screen cell.
// Values map to ANSI 256-color codes in the platform layer.
type Color uint8

// Palette shared by the simulation (obstacle color tags) and the renderer.
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
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorDarkGray
)

// String returns the palette name, used in logs and YAML.
func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorBlue:
		return "blue"
	case ColorMagenta:
		return "magenta"
	case ColorCyan:
		return "cyan"
	case ColorWhite:
		return "white"
	case ColorBrightRed:
		return "bright_red"
	case ColorBrightGreen:
		return "bright_green"
	case ColorBrightYellow:
		return "bright_yellow"
	case ColorBrightBlue:
		return "bright_blue"
	case ColorBrightWhite:
		return "bright_white"
	case ColorOrange:
		return "orange"
	case ColorGray:
		return "gray"
	case ColorDarkGray:
		return "dark_gray"
	default:
		return "default"
	}
}

// ParseColor maps a palette name back to a Color.
// Unknown names return ColorDefault and false.
func ParseColor(name string) (Color, bool) {
	for c := ColorDefault; c <= ColorDarkGray; c++ {
		if c.String() == name {
			return c, true
		}
	}
	return ColorDefault, false
}
