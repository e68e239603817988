package embedded

import "reflect"

// Type describes an embedded value attribute type.
type Type struct {
	primitive reflect.Type
}

// BuildType wraps t into a Type. The caller is expected to have checked
// eligibility; BuildType does not check it again.
func BuildType(t reflect.Type) *Type {
	return &Type{primitive: t}
}

// Primitive returns the wrapped target type.
func (t *Type) Primitive() reflect.Type {
	return t.primitive
}

func (t *Type) String() string {
	if t.primitive == nil {
		return "embedded(<nil>)"
	}

	return "embedded(" + t.primitive.String() + ")"
}
