package interval

import (
	"strconv"
	"strings"
	"unsafe"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

// ParseFn parses a single domain value.
type ParseFn[T any] func(s string) (T, error)

// Parse parses s into an interval of d. The accepted forms are
//
//	[a,b]   closed
//	[a,b)   end exclusive
//	a-b     closed
//	a       the single value a
func Parse[T any](d Domain[T], s string, parse ParseFn[T]) (Interval[T], error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Interval[T]{}, errors.Wrap(ErrInvalid, "empty string")
	}

	var from, to string
	var exclusive bool
	switch {
	case s[0] == '[':
		switch s[len(s)-1] {
		case ']':
		case ')':
			exclusive = true
		default:
			return Interval[T]{}, errors.Wrapf(ErrInvalid, "no closing bracket in interval %q", s)
		}
		body := s[1 : len(s)-1]
		c := strings.IndexByte(body, ',')
		if c == -1 {
			return Interval[T]{}, errors.Wrapf(ErrInvalid, "no comma in interval %q", s)
		}
		from, to = strings.TrimSpace(body[:c]), strings.TrimSpace(body[c+1:])
	default:
		// a leading '-' is a sign, not the range separator
		h := strings.IndexByte(s[1:], '-')
		if h == -1 {
			v, err := parse(s)
			if err != nil {
				return Interval[T]{}, errors.Wrapf(err, "invalid value %q", s)
			}
			return New(d, v, v, false)
		}
		from, to = s[:h+1], s[h+2:]
	}

	start, err := parse(from)
	if err != nil {
		return Interval[T]{}, errors.Wrapf(err, "invalid start %q in interval %q", from, s)
	}
	end, err := parse(to)
	if err != nil {
		return Interval[T]{}, errors.Wrapf(err, "invalid end %q in interval %q", to, s)
	}
	return New(d, start, end, exclusive)
}

// ParseInt parses an integer interval, see Parse for the accepted forms.
func ParseInt[T constraints.Integer](s string) (Interval[T], error) {
	return Parse(Integers[T](), s, parseInteger[T])
}

func parseInteger[T constraints.Integer](s string) (T, error) {
	var zero T
	bits := int(unsafe.Sizeof(zero)) * 8
	if zero-1 > zero {
		u, err := strconv.ParseUint(s, 10, bits)
		return T(u), err
	}
	i, err := strconv.ParseInt(s, 10, bits)
	return T(i), err
}
