package glyph

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Faultbox/quiver3d/pkg/scene"
)

// Shorthand colors, one letter each, matching the usual plot conventions.
var shorthandColors = map[byte]scene.Color{
	'k': {0, 0, 0},
	'r': {1, 0, 0},
	'g': {0, 1, 0},
	'b': {0, 0, 1},
	'c': {0, 1, 1},
	'm': {1, 0, 1},
	'y': {1, 1, 0},
	'w': {1, 1, 1},
}

// Tip-mode shorthand characters.
const (
	shorthandTipAlways = 'o'
	shorthandTipFacing = 'x'
)

// ParseShorthand parses a compact style token such as "r1.5x": an optional
// color letter, an optional decimal shaft width, and an optional tip-mode
// character ('o' always, 'x' facing the camera), in any order.
func ParseShorthand(token string) (Overrides, error) {
	var ov Overrides
	s := strings.TrimSpace(token)
	for len(s) > 0 {
		ch := s[0]
		switch {
		case ch == shorthandTipAlways:
			ov.TipMode = TipModePtr(TipAlways)
			s = s[1:]
		case ch == shorthandTipFacing:
			ov.TipMode = TipModePtr(TipFacing)
			s = s[1:]
		case ch >= '0' && ch <= '9' || ch == '.':
			end := 1
			for end < len(s) && (s[end] >= '0' && s[end] <= '9' || s[end] == '.') {
				end++
			}
			w, err := strconv.ParseFloat(s[:end], 32)
			if err != nil {
				return Overrides{}, fmt.Errorf("%w: shorthand width %q", ErrInvalidStyle, s[:end])
			}
			ov.ShaftWidth = Float32Ptr(float32(w))
			s = s[end:]
		default:
			c, ok := shorthandColors[ch]
			if !ok {
				return Overrides{}, fmt.Errorf("%w: unrecognized shorthand character %q", ErrInvalidStyle, string(ch))
			}
			ov.Color = ColorPtr(c)
			s = s[1:]
		}
	}
	return ov, nil
}

// ApplyShorthand parses token and layers the explicitly named overrides on
// top. Named overrides win; each collision yields a conflict advisory.
func ApplyShorthand(token string, named Overrides) (Overrides, []Advisory, error) {
	short, err := ParseShorthand(token)
	if err != nil {
		return Overrides{}, nil, err
	}

	var advs []Advisory
	conflict := func(field string) {
		advs = append(advs, Advisory{
			Kind:    AdvisoryShorthandConflict,
			Message: fmt.Sprintf("named %s override shadows shorthand %q", field, token),
		})
	}
	if short.Color != nil && named.Color != nil {
		conflict("color")
	}
	if short.ShaftWidth != nil && named.ShaftWidth != nil {
		conflict("shaft_width")
	}
	if short.TipMode != nil && named.TipMode != nil {
		conflict("tip_mode")
	}

	return named.Merge(short), advs, nil
}
