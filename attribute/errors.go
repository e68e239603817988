package attribute

import "errors"

var (
	ErrUnsupportedType  = errors.New("attribute type has no coercer")
	ErrMissingAttribute = errors.New("required attribute is missing")
	ErrInvalidInput     = errors.New("input does not fit attribute")
	ErrCasterRejected   = errors.New("caster rejected value")
)

// ErrDuplicateName is reported when two fields normalize to the same
// attribute name.
var ErrDuplicateName = errors.New("duplicate attribute name")
