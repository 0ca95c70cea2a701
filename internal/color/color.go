// Package color converts between the hex, HSL and OKLCH representations used
// by theme palettes. All derivation math happens on integer HSL triples; hex
// is only an input/output boundary format and OKLCH is output only.
package color

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// HSL is a color as integer hue (degrees), saturation and lightness (percent).
type HSL struct {
	H int
	S int
	L int
}

// FormatError reports a malformed color string.
type FormatError struct {
	Input  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid color %q: %s", e.Input, e.Reason)
}

// maxHueMagnitude bounds parsed hue angles before they are wrapped.
const maxHueMagnitude = 36000

var hexPattern = regexp.MustCompile(`^#?([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// New builds a color, normalizing the hue into [0,360) and clamping
// saturation and lightness into [0,100].
func New(h, s, l int) HSL {
	return HSL{H: NormalizeHue(h), S: Clamp(s, 0, 100), L: Clamp(l, 0, 100)}
}

// ParseHex parses "#rgb" or "#rrggbb" (the leading # is optional).
func ParseHex(s string) (HSL, error) {
	in := strings.TrimSpace(s)
	m := hexPattern.FindStringSubmatch(in)
	if m == nil {
		return HSL{}, &FormatError{Input: s, Reason: "expected 3 or 6 hex digits"}
	}

	body := strings.ToLower(m[1])
	if len(body) == 3 {
		body = string([]byte{body[0], body[0], body[1], body[1], body[2], body[2]})
	}

	c, err := colorful.Hex("#" + body)
	if err != nil {
		return HSL{}, &FormatError{Input: s, Reason: err.Error()}
	}

	h, sat, l := c.Hsl()
	return New(roundInt(h), roundInt(sat*100), roundInt(l*100)), nil
}

// ParseHSL parses "H S% L%". Percent signs are optional and commas are
// accepted as separators.
func ParseHSL(s string) (HSL, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	if len(fields) != 3 {
		return HSL{}, &FormatError{Input: s, Reason: "expected hue, saturation and lightness"}
	}

	var vals [3]int
	for i, f := range fields {
		f = strings.TrimSuffix(f, "%")
		if i == 0 {
			f = strings.TrimSuffix(f, "deg")
		}
		v, err := strconv.ParseFloat(f, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return HSL{}, &FormatError{Input: s, Reason: fmt.Sprintf("component %d is not a number", i+1)}
		}
		if i == 0 && math.Abs(v) > maxHueMagnitude {
			return HSL{}, &FormatError{Input: s, Reason: "hue out of range"}
		}
		// Checked before rounding so huge values never reach the int conversion.
		if i > 0 && (v <= -0.5 || v >= 100.5) {
			return HSL{}, &FormatError{Input: s, Reason: "saturation and lightness must be within 0-100"}
		}
		vals[i] = roundInt(v)
	}

	return HSL{H: NormalizeHue(vals[0]), S: vals[1], L: vals[2]}, nil
}

// MustParseHSL is ParseHSL for literal tables; it panics on malformed input.
func MustParseHSL(s string) HSL {
	c, err := ParseHSL(s)
	if err != nil {
		panic(err)
	}
	return c
}

// String renders the color as "H S% L%".
func (c HSL) String() string {
	return fmt.Sprintf("%d %d%% %d%%", c.H, c.S, c.L)
}

// Hex renders the color as lower case "#rrggbb".
func (c HSL) Hex() string {
	return c.colorful().Clamped().Hex()
}

// OKLCH renders the color in the CSS oklch() notation. There is no inverse.
// Greys, black and white are written with zero chroma and hue.
func (c HSL) OKLCH() string {
	l, ch, h := c.colorful().Clamped().OkLch()
	if c.IsAchromatic() {
		ch, h = 0, 0
	}
	chroma := trimFloat(ch, 4)
	if chroma == "0" {
		h = 0
	}
	return fmt.Sprintf("oklch(%s %s %s)", trimFloat(l, 4), chroma, trimFloat(h, 2))
}

// IsAchromatic reports whether c has no hue: zero saturation, black or white.
func (c HSL) IsAchromatic() bool {
	return c.S == 0 || c.L == 0 || c.L == 100
}

// WithSL returns a copy with new saturation and lightness, clamped to [0,100].
func (c HSL) WithSL(s, l int) HSL {
	return New(c.H, s, l)
}

// Rotate shifts the hue by deg degrees.
func (c HSL) Rotate(deg int) HSL {
	return New(c.H+deg, c.S, c.L)
}

func (c HSL) colorful() colorful.Color {
	return colorful.Hsl(float64(c.H), float64(c.S)/100, float64(c.L)/100)
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// NormalizeHue wraps any integer angle into [0,360).
func NormalizeHue(h int) int {
	h %= 360
	if h < 0 {
		h += 360
	}
	return h
}

func roundInt(v float64) int {
	return int(math.Round(v))
}

func trimFloat(v float64, prec int) string {
	s := strconv.FormatFloat(v, 'f', prec, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "" || s == "-" || s == "-0" {
		return "0"
	}
	return s
}
