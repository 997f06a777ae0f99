// Package style holds the cosmetic parameters of a sequence diagram.
// A Style is plain data with no behavior: the composer receives it as an
// explicit value instead of reading process-wide defaults.
package style

import (
	"fmt"
	"image/color"
)

// Color is an RGBA color with components in [0, 1]. In TOML style files it
// is written as a hex string, "#rrggbb" or "#rrggbbaa".
type Color struct {
	R, G, B, A float64
}

// NRGBA converts to the 8-bit form the rendering backend consumes.
func (c Color) NRGBA() color.NRGBA {
	clamp := func(v float64) uint8 {
		if v <= 0 {
			return 0
		}
		if v >= 1 {
			return 255
		}
		return uint8(v*255 + 0.5)
	}
	return color.NRGBA{R: clamp(c.R), G: clamp(c.G), B: clamp(c.B), A: clamp(c.A)}
}

func (c *Color) UnmarshalText(text []byte) error {
	s := string(text)
	if len(s) == 0 || s[0] != '#' || (len(s) != 7 && len(s) != 9) {
		return fmt.Errorf("color must be #rrggbb or #rrggbbaa, got %q", s)
	}
	hex := func(b byte) (int, error) {
		switch {
		case b >= '0' && b <= '9':
			return int(b - '0'), nil
		case b >= 'a' && b <= 'f':
			return int(b-'a') + 10, nil
		case b >= 'A' && b <= 'F':
			return int(b-'A') + 10, nil
		}
		return 0, fmt.Errorf("invalid hex digit %q in color %q", b, s)
	}
	comp := make([]float64, 0, 4)
	for i := 1; i+1 < len(s); i += 2 {
		hi, err := hex(s[i])
		if err != nil {
			return err
		}
		lo, err := hex(s[i+1])
		if err != nil {
			return err
		}
		comp = append(comp, float64(hi*16+lo)/255)
	}
	c.R, c.G, c.B = comp[0], comp[1], comp[2]
	c.A = 1
	if len(comp) == 4 {
		c.A = comp[3]
	}
	return nil
}

// Style is the flat record of cosmetic parameters for one channel or for
// the diagram as a whole.
type Style struct {
	AxesWidth float64 `toml:"axes_width"` // baseline and frame stroke width, points
	AxesColor Color   `toml:"axes_color"`
	AxesTicks bool    `toml:"axes_ticks"` // show time-axis tick marks and values

	Color     Color   `toml:"color"`      // waveform outline
	FillColor Color   `toml:"fill_color"` // area under the waveform
	LineWidth float64 `toml:"line_width"` // outline stroke width, points
	FontSize  float64 `toml:"font_size"`  // annotation text, points
	ZOrder    int     `toml:"z_order"`    // draw order of channels within a row

	// TimeAxisOnTop draws the baseline across the full grid instead of
	// only where every channel of the row is silent.
	TimeAxisOnTop bool `toml:"time_axis_on_top"`

	ArrowWidth  float64 `toml:"arrow_width"`  // time-arrow head width, points
	ArrowLength float64 `toml:"arrow_length"` // time-arrow head length, points

	// PaddingFactor stretches the shared y-limit beyond the global
	// min/max sample value.
	PaddingFactor float64 `toml:"padding_factor"`
}

// Default mirrors the house style: black axes and outlines, translucent
// gray fill, no ticks.
func Default() Style {
	return Style{
		AxesWidth:     2,
		AxesColor:     Color{0, 0, 0, 1},
		AxesTicks:     false,
		Color:         Color{0, 0, 0, 1},
		FillColor:     Color{0.5, 0.5, 0.5, 0.2},
		LineWidth:     2,
		FontSize:      20,
		ZOrder:        1,
		TimeAxisOnTop: false,
		ArrowWidth:    8,
		ArrowLength:   12,
		PaddingFactor: 1.1,
	}
}

// Palette is the default categorical palette used when a diagram asks for
// colored channels, one entry per channel in creation order.
func Palette() []Color {
	return []Color{
		{0.122, 0.467, 0.706, 1},
		{1.000, 0.498, 0.055, 1},
		{0.173, 0.627, 0.173, 1},
		{0.839, 0.153, 0.157, 1},
		{0.580, 0.404, 0.741, 1},
		{0.549, 0.337, 0.294, 1},
		{0.890, 0.467, 0.761, 1},
		{0.498, 0.498, 0.498, 1},
		{0.737, 0.741, 0.133, 1},
		{0.090, 0.745, 0.812, 1},
	}
}

// WithAlpha returns a copy of the color with the given alpha.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}
