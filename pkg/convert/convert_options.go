package convert

type Option func(c *Converter)

func WithBounds(maxW, maxH int) Option {
	return func(c *Converter) {
		c.maxW = maxW
		c.maxH = maxH
	}
}

// WithTransparency enables the alpha test; pixels with alpha <= threshold
// become bitmap.Transparent.
func WithTransparency(threshold uint8) Option {
	return func(c *Converter) {
		c.alpha = &threshold
	}
}

func WithReservedSentinel(reserved bool) Option {
	return func(c *Converter) {
		c.reserved = reserved
	}
}

func WithAutoOrientation(enabled bool) Option {
	return func(c *Converter) {
		c.autoOrient = enabled
	}
}
