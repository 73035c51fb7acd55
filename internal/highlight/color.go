package highlight

import "fmt"

// Color is an RGBA color as found in theme definitions.
type Color struct {
	R, G, B, A uint8
}

// Fallbacks for themes that do not define the corresponding setting.
var (
	DefaultForeground = Color{A: 0xFF}
	DefaultBackground = Color{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

	// DefaultLineHighlight is yellow with a zero alpha channel,
	// so it serializes as "#ffff0000".
	DefaultLineHighlight = Color{R: 0xFF, G: 0xFF}
)

// CSS returns the shortest CSS hex form of the color:
// "#rrggbb" when fully opaque, "#rrggbbaa" otherwise.
func (c Color) CSS() string {
	if c.A != 0xFF {
		return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
