package core

import "fmt"

// RGB is a 24-bit color for a screen cell. The zero value is treated as
// "no color" by the renderer, so pure black entities should use (1,1,1).
type RGB struct {
	R, G, B uint8
}

// Scale multiplies each channel by the given factor, clamped to [0, 1].
// Used for particle fade-out.
func (c RGB) Scale(f float64) RGB {
	f = ClampF(f, 0, 1)
	return RGB{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
	}
}

// Hex returns the color as a "#rrggbb" string for terminal styling.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// IsZero reports whether the color is the "no color" zero value.
func (c RGB) IsZero() bool {
	return c.R == 0 && c.G == 0 && c.B == 0
}
