package status

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/cockroachdb/errors"
)

// Color represents a rgb color
type Color struct {
	R uint8
	G uint8
	B uint8
}

// String converts a color struct to a hex string repr.
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c Color) MarshalJSON() ([]byte, error) {
	b := bytes.NewBufferString("\"")
	b.WriteString(c.String())
	b.WriteString("\"")
	return b.Bytes(), nil
}

func (c *Color) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) != 9 || s[0] != '"' || s[8] != '"' {
		return errors.Wrapf(ErrInvalidColor, "%s", s)
	}
	parsed, err := ParseColor(s[1:8])
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseColor converts a hex color string (#RRGGBB) to a Color struct.
func ParseColor(hex string) (Color, error) {
	if len(hex) != 7 || hex[0] != '#' {
		return Color{}, errors.Wrapf(ErrInvalidColor, "%q", hex)
	}

	var rgb [3]uint8
	for i := range rgb {
		c, err := strconv.ParseUint(hex[2*i+1:2*i+3], 16, 8)
		if err != nil {
			return Color{}, errors.Wrapf(ErrInvalidColor, "%q: %v", hex, err)
		}
		rgb[i] = uint8(c)
	}
	return Color{rgb[0], rgb[1], rgb[2]}, nil
}

// ColorFromHex is like ParseColor but panics on invalid input. It is meant
// for color constants.
func ColorFromHex(hex string) Color {
	c, err := ParseColor(hex)
	if err != nil {
		panic(err)
	}
	return c
}
