package core

// Color represents an RGB color with float64 channels, conventionally in
// [0, 1]. Values outside that range are legal during shading and are only
// clamped when the color is serialized to an image format.
type Color struct {
	R, G, B float64
}

// NewColor creates a new color from its red, green and blue channels.
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Black returns the zero color.
func Black() Color {
	return Color{}
}

// White returns the color with all channels at 1.
func White() Color {
	return Color{R: 1, G: 1, B: 1}
}

// Equals reports channel-wise equality within Epsilon.
func (c Color) Equals(other Color) bool {
	return FloatEquals(c.R, other.R) &&
		FloatEquals(c.G, other.G) &&
		FloatEquals(c.B, other.B)
}

// Add returns the channel-wise sum of two colors.
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Subtract returns the channel-wise difference of two colors.
func (c Color) Subtract(other Color) Color {
	return Color{c.R - other.R, c.G - other.G, c.B - other.B}
}

// Multiply returns the color scaled by a scalar.
func (c Color) Multiply(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar}
}

// Blend returns the Hadamard product of two colors, used to combine a
// surface color with a light's intensity.
func (c Color) Blend(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}
