package embedded

import "errors"

var (
	// ErrIneligibleTarget is returned by BuildCoercer when the primitive
	// matches no construction strategy. It is a setup-time fault.
	ErrIneligibleTarget = errors.New("type is not an embedded value target")

	// ErrUnsupportedInput is returned by FromKeyedMap for raw input that is
	// neither nil, an instance, nor a string keyed map.
	ErrUnsupportedInput = errors.New("unsupported embedded value input")
)

// ErrTypeMismatch is returned by CoerceTo when the coerced value is not of
// the requested type.
var ErrTypeMismatch = errors.New("coerced value type mismatch")
