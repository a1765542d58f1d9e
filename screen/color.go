package screen

// RGB is a simple color sample with byte channels, 0-255 each.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

// Normalized returns the channels scaled to [0, 1].
func (c RGB) Normalized() (r, g, b float64) {
	return float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255
}

// FromNormalized builds an RGB from [0, 1] channels, clamping values
// outside the range.
func FromNormalized(r, g, b float64) RGB {
	return RGB{R: channelByte(r), G: channelByte(g), B: channelByte(b)}
}

// channelByte converts one normalized channel to a clamped byte.
func channelByte(v float64) uint8 {
	if !(v > 0) { // also catches NaN
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
