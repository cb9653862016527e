package theme

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Gradient maps an intensity in [0, 1] to a color.
type Gradient interface {
	At(t float64) colorful.Color
}

// GradientFunc adapts a plain function to the Gradient interface.
type GradientFunc func(t float64) colorful.Color

// At calls f(t).
func (f GradientFunc) At(t float64) colorful.Color {
	return f(t)
}

// blendFunc interpolates between two colors.
type blendFunc func(a, b colorful.Color, t float64) colorful.Color

// stops is a piecewise gradient over evenly spaced color stops.
type stops struct {
	colors []colorful.Color
	blend  blendFunc
}

func newStops(blend blendFunc, hexes ...string) stops {
	colors := make([]colorful.Color, len(hexes))
	for i, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			panic("theme: bad color stop " + h + ": " + err.Error())
		}
		colors[i] = c
	}
	return stops{colors: colors, blend: blend}
}

// At interpolates between the two stops surrounding t.
func (s stops) At(t float64) colorful.Color {
	n := len(s.colors)
	switch {
	case n == 0:
		return colorful.Color{}
	case n == 1 || t <= 0:
		return s.colors[0]
	case t >= 1:
		return s.colors[n-1]
	}

	pos := t * float64(n-1)
	i := int(pos)
	if i >= n-1 {
		return s.colors[n-1]
	}
	return s.blend(s.colors[i], s.colors[i+1], pos-float64(i)).Clamped()
}

func blendRgb(a, b colorful.Color, t float64) colorful.Color { return a.BlendRgb(b, t) }
func blendLuvLCh(a, b colorful.Color, t float64) colorful.Color {
	return a.BlendLuvLCh(b, t)
}

var (
	// turbo is Google's Turbo colormap, via its published polynomial fit.
	turbo = GradientFunc(func(t float64) colorful.Color {
		r := 0.13572138 + t*(4.61539260+t*(-42.66032258+t*(132.13108234+t*(-152.94239396+t*59.28637943))))
		g := 0.09140261 + t*(2.19418839+t*(4.84296658+t*(-14.18503333+t*(4.27729857+t*2.82956604))))
		b := 0.10667330 + t*(12.64194608+t*(-60.58204836+t*(110.36276771+t*(-89.90310912+t*27.34824973))))
		return colorful.Color{R: r, G: g, B: b}.Clamped()
	})

	viridis = newStops(blendLuvLCh,
		"#440154", "#482878", "#3e4989", "#31688e", "#26828e",
		"#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725",
	)

	matrix = newStops(blendRgb, "#000000", "#00ff00")

	// rainbow walks the cubehelix hue circle once, so At(0) == At(1).
	rainbow = GradientFunc(func(t float64) colorful.Color {
		ts := math.Abs(t - 0.5)
		return cubehelix(360*t-100, 1.5-1.5*ts, 0.8-0.9*ts)
	})
)

// cubehelix converts a cubehelix (hue degrees, saturation, lightness) triple to RGB.
func cubehelix(h, s, l float64) colorful.Color {
	h = (h + 120) * math.Pi / 180
	a := s * l * (1 - l)
	cosh, sinh := math.Cos(h), math.Sin(h)
	return colorful.Color{
		R: l + a*(-0.14861*cosh+1.78277*sinh),
		G: l + a*(-0.29227*cosh-0.90649*sinh),
		B: l + a*(1.97294*cosh),
	}.Clamped()
}
