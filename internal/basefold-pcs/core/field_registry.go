package core

import "fmt"

// NewField constructs one of this module's two supported fields by name:
// "mersenne61ext" for the quadratic extension of 2^61-1, or "ft255" for
// the 255-bit prime field.
func NewField(name string) (Field, error) {
	switch name {
	case "mersenne61ext":
		return NewMersenne61ExtField(), nil
	case "ft255":
		return NewFt255Field(), nil
	default:
		return nil, fmt.Errorf("core: unknown field %q (want \"mersenne61ext\" or \"ft255\")", name)
	}
}
