package pattern

import (
	"fmt"
)

// Parse decodes the textual pattern form:
//
//	x       the literal character x
//	.       any character
//	[xyz]   x, y or z; the first one is the primary character
//	\x      the literal character x, also inside brackets
//
// For a Word pattern p without whitespace or control characters,
// Parse(p.Expression(), Word) reproduces p.
func Parse(expr string, mode Mode) (*PatternMatch, error) {
	chars := make([]CharMatch, 0, len(expr))
	var class []rune
	inClass, escaped := false, false
	for _, ch := range expr {
		switch {
		case escaped:
			escaped = false
			if inClass {
				class = append(class, ch)
			} else {
				chars = append(chars, Exact(ch))
			}
		case ch == '\\':
			escaped = true
		case inClass && ch == ']':
			if len(class) == 0 {
				return nil, parseError(expr, "empty character class")
			}
			chars = append(chars, OneOf(class[0], class[1:]...))
			class = class[:0]
			inClass = false
		case inClass:
			class = append(class, ch)
		case ch == '[':
			inClass = true
		case ch == '.':
			chars = append(chars, AnyChar())
		default:
			chars = append(chars, Exact(ch))
		}
	}
	if escaped {
		return nil, parseError(expr, "dangling escape")
	}
	if inClass {
		return nil, parseError(expr, "unterminated character class")
	}
	return New(mode, chars...)
}

// MustParse is like Parse but panics on errors.
func MustParse(expr string, mode Mode) *PatternMatch {
	p, err := Parse(expr, mode)
	if err != nil {
		panic(err)
	}
	return p
}

func parseError(expr, msg string) error {
	tracer().Errorf("cannot parse pattern %q: %s", expr, msg)
	return fmt.Errorf("%w: %s in %q", ErrInvalidPattern, msg, expr)
}
