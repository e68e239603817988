package embedded

import (
	"reflect"

	"embedded-value/composite"
)

// Host builds instances of embedded value targets. It is the construction
// capability the strategies delegate to; errors it returns reach the caller
// of Coerce untouched.
type Host interface {
	NewFromSequence(t reflect.Type, values []any) (any, error)
	NewFromMap(t reflect.Type, values map[string]any) (any, error)
}

// ReflectHost builds *T values. Targets implementing
// composite.SequenceConstructor or composite.Constructor build themselves;
// other structs are filled field by field with composite.AssignValue.
type ReflectHost struct {
	// Strict rejects keys that match no field.
	Strict bool
}

func (h ReflectHost) NewFromSequence(t reflect.Type, values []any) (any, error) {
	ptr := reflect.New(t)

	if sc, ok := ptr.Interface().(composite.SequenceConstructor); ok {
		if err := sc.ConstructFromSequence(values); err != nil {
			return nil, err
		}

		return ptr.Interface(), nil
	}

	if err := composite.AssignPositional(ptr.Elem(), values, composite.AssignValue); err != nil {
		return nil, err
	}

	return ptr.Interface(), nil
}

func (h ReflectHost) NewFromMap(t reflect.Type, values map[string]any) (any, error) {
	ptr := reflect.New(t)

	if c, ok := ptr.Interface().(composite.Constructor); ok {
		if err := c.ConstructFromMap(values); err != nil {
			return nil, err
		}

		return ptr.Interface(), nil
	}

	if err := composite.AssignKeyed(ptr.Elem(), values, composite.AssignValue, h.Strict); err != nil {
		return nil, err
	}

	return ptr.Interface(), nil
}
