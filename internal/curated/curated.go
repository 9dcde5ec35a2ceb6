// Package curated is a small helper around the plain Go error type, used
// at the edges of this module where a caller has misused an API (rather
// than for CPU execution itself, which never returns an error: the bus is
// total and the opcode table is a closed set of 256 entries).
//
// Curated errors are created with Errorf, which behaves like fmt.Errorf
// except that the pattern string itself can later be used with Is or Has
// to test the kind of error without needing a sentinel value.
package curated

import (
	"fmt"
	"strings"
)

type curated struct {
	pattern string
	values  []interface{}
}

// Errorf creates a new curated error from a pattern and its arguments.
// Formatting is deferred until Error() is called.
func Errorf(pattern string, values ...interface{}) error {
	return curated{pattern: pattern, values: values}
}

// Error implements the error interface, dropping the first ": "-separated
// chain part when it duplicates the second.
func (e curated) Error() string {
	s := fmt.Errorf(e.pattern, e.values...).Error()

	p := strings.SplitN(s, ": ", 3)
	if len(p) > 1 && p[0] == p[1] {
		return strings.Join(p[1:], ": ")
	}

	return strings.Join(p, ": ")
}

// IsAny reports whether err was created by Errorf.
func IsAny(err error) bool {
	if err == nil {
		return false
	}
	_, ok := err.(curated)
	return ok
}

// Is reports whether err is a curated error created with the given
// pattern.
func Is(err error, pattern string) bool {
	if err == nil {
		return false
	}
	if e, ok := err.(curated); ok {
		return e.pattern == pattern
	}
	return false
}

// Has reports whether pattern occurs anywhere in err's chain of wrapped
// curated errors.
func Has(err error, pattern string) bool {
	if err == nil || !IsAny(err) {
		return false
	}
	if Is(err, pattern) {
		return true
	}
	for _, v := range err.(curated).values {
		if e, ok := v.(curated); ok {
			if Has(e, pattern) {
				return true
			}
		}
	}
	return false
}
