package attribute

import (
	"fmt"
	"maps"
	"reflect"
	"slices"

	"embedded-value/composite"
	"embedded-value/embedded"
	"embedded-value/primitive"
)

// coerceFunc turns a raw value into a value assignable to the attribute type.
type coerceFunc func(raw any) (reflect.Value, error)

// Attribute is a declared field of a Set.
type Attribute struct {
	// Name is the attribute name used as input key.
	Name string
	// Field is the underlying struct field.
	Field composite.Field
	// Dispatcher is the coercion route chosen at declaration.
	Dispatcher DispatcherEnum
	// Required attributes must be present and non-nil unless they have a default.
	Required bool

	def        string
	hasDefault bool
	coerce     coerceFunc
	coercer    embedded.Coercer
}

// Default returns the raw default declared with the `default` tag.
func (a *Attribute) Default() (string, bool) {
	return a.def, a.hasDefault
}

// Coercer returns the embedded value coercer of an embedded attribute, or nil.
func (a *Attribute) Coercer() embedded.Coercer {
	return a.coercer
}

// Coerce converts raw into a value of the attribute type.
func (a *Attribute) Coerce(raw any) (any, error) {
	v, err := a.coerce(raw)
	if err != nil {
		return nil, err
	}

	return v.Interface(), nil
}

// coercerFor builds the coercion of type t following the dispatch table.
// The embedded coercer is returned as well for embedded values.
func (r *Registry) coercerFor(t reflect.Type) (coerceFunc, embedded.Coercer, error) {
	return r.resolve(t, make(map[reflect.Type]bool))
}

// resolve walks collection element types; collections already on the path
// contain themselves and are rejected.
func (r *Registry) resolve(t reflect.Type, path map[reflect.Type]bool) (coerceFunc, embedded.Coercer, error) {
	base := deref(t)

	switch r.Dispatch(t) {
	case DispatcherCaster:
		return r.casterCoercer(t), nil, nil
	case DispatcherEmbedded:
		c, err := embedded.BuildCoercer(embedded.BuildType(base), r.embeddedOptions())
		if err != nil {
			return nil, nil, err
		}

		return embeddedCoercer(c, t), c, nil
	case DispatcherPrimitive:
		return primitiveCoercer(base, t), nil, nil
	case DispatcherInterface:
		return func(raw any) (reflect.Value, error) {
			if raw == nil {
				return reflect.Zero(t), nil
			}

			return fit(reflect.ValueOf(raw), t)
		}, nil, nil
	case DispatcherSlice:
		if path[base] {
			return nil, nil, fmt.Errorf("%w: %v contains itself", ErrUnsupportedType, base)
		}

		path[base] = true
		defer delete(path, base)

		elem, _, err := r.resolve(base.Elem(), path)
		if err != nil {
			return nil, nil, err
		}

		return sliceCoercer(elem, base, t), nil, nil
	case DispatcherMap:
		if path[base] {
			return nil, nil, fmt.Errorf("%w: %v contains itself", ErrUnsupportedType, base)
		}

		path[base] = true
		defer delete(path, base)

		elem, _, err := r.resolve(base.Elem(), path)
		if err != nil {
			return nil, nil, err
		}

		return mapCoercer(elem, base, t), nil, nil
	default:
		return nil, nil, fmt.Errorf("%w: %v", ErrUnsupportedType, t)
	}
}

func (r *Registry) casterCoercer(t reflect.Type) coerceFunc {
	c, ok := r.casters[t]
	if !ok {
		c = r.casters[deref(t)]
	}

	return func(raw any) (reflect.Value, error) {
		if composite.IsNil(raw) {
			return reflect.Zero(t), nil
		}

		v, err := c.Call(raw)
		if err != nil {
			return reflect.Value{}, err
		}

		return fit(v, t)
	}
}

func embeddedCoercer(c embedded.Coercer, t reflect.Type) coerceFunc {
	return func(raw any) (reflect.Value, error) {
		out, err := c.Coerce(raw)
		if err != nil {
			return reflect.Value{}, err
		}

		// nil stays nil for pointer attributes instead of an empty instance
		if out == nil {
			return reflect.Zero(t), nil
		}

		return fit(reflect.ValueOf(out), t)
	}
}

func primitiveCoercer(base, t reflect.Type) coerceFunc {
	return func(raw any) (reflect.Value, error) {
		if composite.IsNil(raw) {
			return reflect.Zero(t), nil
		}

		v, err := primitive.Coerce(raw, base)
		if err != nil {
			return reflect.Value{}, err
		}

		return fit(v, t)
	}
}

func sliceCoercer(elem coerceFunc, base, t reflect.Type) coerceFunc {
	return func(raw any) (reflect.Value, error) {
		if composite.IsNil(raw) {
			return reflect.Zero(t), nil
		}

		values, ok := composite.Sequence(raw)
		if !ok {
			return reflect.Value{}, fmt.Errorf("%w: %T is not a sequence", ErrInvalidInput, raw)
		}

		var out reflect.Value
		if base.Kind() == reflect.Array {
			if len(values) > base.Len() {
				return reflect.Value{}, fmt.Errorf("%w: %d values for %v", ErrInvalidInput, len(values), base)
			}

			out = reflect.New(base).Elem()
		} else {
			out = reflect.MakeSlice(base, len(values), len(values))
		}

		for i, v := range values {
			ev, err := elem(v)
			if err != nil {
				return reflect.Value{}, fmt.Errorf("[%d]: %w", i, err)
			}

			out.Index(i).Set(ev)
		}

		return fit(out, t)
	}
}

func mapCoercer(elem coerceFunc, base, t reflect.Type) coerceFunc {
	return func(raw any) (reflect.Value, error) {
		if composite.IsNil(raw) {
			return reflect.Zero(t), nil
		}

		values, ok := composite.Keyed(raw)
		if !ok {
			return reflect.Value{}, fmt.Errorf("%w: %T is not a string keyed map", ErrInvalidInput, raw)
		}

		out := reflect.MakeMapWithSize(base, len(values))
		for _, key := range slices.Sorted(maps.Keys(values)) {
			ev, err := elem(values[key])
			if err != nil {
				return reflect.Value{}, fmt.Errorf("[%q]: %w", key, err)
			}

			out.SetMapIndex(reflect.ValueOf(key).Convert(base.Key()), ev)
		}

		return fit(out, t)
	}
}

// fit adapts v to t, wrapping into or unwrapping from a pointer when needed.
func fit(v reflect.Value, t reflect.Type) (reflect.Value, error) {
	if !v.IsValid() {
		return reflect.Zero(t), nil
	}

	vt := v.Type()

	switch {
	case vt.AssignableTo(t):
		return v, nil
	case t.Kind() == reflect.Pointer && vt.AssignableTo(t.Elem()):
		p := reflect.New(t.Elem())
		p.Elem().Set(v)

		return p, nil
	case vt.Kind() == reflect.Pointer && vt.Elem().AssignableTo(t):
		if v.IsNil() {
			return reflect.Zero(t), nil
		}

		return v.Elem(), nil
	default:
		return reflect.Value{}, fmt.Errorf("%w: %v is not %v", ErrInvalidInput, vt, t)
	}
}

func deref(t reflect.Type) reflect.Type {
	if t.Kind() == reflect.Pointer {
		return t.Elem()
	}

	return t
}
