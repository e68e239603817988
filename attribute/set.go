package attribute

import (
	"errors"
	"fmt"
	"maps"
	"reflect"
	"slices"

	"embedded-value/composite"
	"embedded-value/embedded"
	"embedded-value/internal/diagnostic"
)

// Set is the declared attribute set of a struct type. It is immutable once
// defined and safe for concurrent use.
type Set struct {
	typ    reflect.Type
	attrs  []*Attribute
	byKey  map[string]*Attribute
	strict bool
}

// Define declares the attribute set of struct type t with a registry built
// from opts.
func Define(t reflect.Type, opts ...Option) (*Set, error) {
	return NewRegistry(opts...).Set(t)
}

func (r *Registry) define(t reflect.Type) (*Set, error) {
	var diags diagnostic.Diagnostics

	typeName := t.String()
	s := &Set{
		typ:    t,
		byKey:  make(map[string]*Attribute),
		strict: r.strict,
	}

	for i := range t.NumField() {
		sf := t.Field(i)
		if !sf.IsExported() && !sf.Anonymous && sf.Tag.Get(composite.TagName) != "" {
			diags.AddWarning(diagnostic.CodeUnexportedTag, "attribute tag on unexported field is ignored", typeName, sf.Name)
		}
	}

	for _, f := range composite.Fields(t) {
		if dup, ok := s.byKey[f.Key()]; ok {
			diags.AddError(diagnostic.CodeDuplicateName, typeName, f.Name,
				fmt.Errorf("%w: %s and %s", ErrDuplicateName, dup.Field.GoName, f.GoName))

			continue
		}

		coerce, coercer, err := r.coercerFor(f.Type)
		if err != nil {
			code := diagnostic.CodeUnsupportedType
			if errors.Is(err, embedded.ErrIneligibleTarget) {
				code = diagnostic.CodeIneligibleTarget
			}

			diags.AddError(code, typeName, f.Name, err)

			continue
		}

		a := &Attribute{
			Name:       f.Name,
			Field:      f,
			Dispatcher: r.Dispatch(f.Type),
			Required:   f.Required,
			coerce:     coerce,
			coercer:    coercer,
		}

		if def, ok := f.Tag.Lookup("default"); ok {
			if _, err := coerce(def); err != nil {
				diags.AddError(diagnostic.CodeInvalidDefault, typeName, f.Name, err)
				continue
			}

			a.def, a.hasDefault = def, true
		}

		s.attrs = append(s.attrs, a)
		s.byKey[f.Key()] = a
	}

	for _, w := range diags.Warnings {
		r.logger.Warn(w.Message, "type", w.Type, "field", w.Attribute, "code", w.Code)
	}

	if err := diags.Error(); err != nil {
		return nil, err
	}

	r.logger.Debug("attribute set defined", "type", typeName, "attributes", len(s.attrs))

	return s, nil
}

// Type returns the declaring struct type.
func (s *Set) Type() reflect.Type {
	return s.typ
}

// Strict reports whether unknown keys are rejected.
func (s *Set) Strict() bool {
	return s.strict
}

// Attributes returns the attributes in field declaration order.
func (s *Set) Attributes() []*Attribute {
	return slices.Clone(s.attrs)
}

// Attribute looks an attribute up by name. Lookup is case and separator
// insensitive.
func (s *Set) Attribute(name string) (*Attribute, bool) {
	a, ok := s.byKey[composite.NormalizeKey(name)]
	return a, ok
}

// Assign coerces values into the struct dst, a settable value or a pointer
// of the set type. Absent attributes keep their value unless they have a
// default; nil or absent required attributes fail.
func (s *Set) Assign(dst reflect.Value, values map[string]any) error {
	dst, err := s.target(dst)
	if err != nil {
		return err
	}

	present := make(map[string]any, len(values))
	for _, key := range slices.Sorted(maps.Keys(values)) {
		nk := composite.NormalizeKey(key)
		if _, ok := s.byKey[nk]; !ok {
			if s.strict {
				return fmt.Errorf("%w: %s.%s", composite.ErrUnknownKey, s.typ.Name(), key)
			}

			continue
		}

		present[nk] = values[key]
	}

	for _, a := range s.attrs {
		raw, ok := present[a.Field.Key()]
		if err := s.assign(dst, a, raw, ok); err != nil {
			return err
		}
	}

	return nil
}

// AssignSequence coerces positional values into the struct dst, one per
// attribute in declaration order.
func (s *Set) AssignSequence(dst reflect.Value, values []any) error {
	dst, err := s.target(dst)
	if err != nil {
		return err
	}

	if len(values) > len(s.attrs) {
		return fmt.Errorf("%w: %s has %d attributes, got %d values",
			composite.ErrTooManyValues, s.typ.Name(), len(s.attrs), len(values))
	}

	for i, a := range s.attrs {
		var raw any
		if i < len(values) {
			raw = values[i]
		}

		if err := s.assign(dst, a, raw, i < len(values)); err != nil {
			return err
		}
	}

	return nil
}

func (s *Set) target(dst reflect.Value) (reflect.Value, error) {
	if dst.Kind() == reflect.Pointer && !dst.IsNil() {
		dst = dst.Elem()
	}

	if !dst.IsValid() || dst.Type() != s.typ {
		return reflect.Value{}, fmt.Errorf("%w: target is not a %v", ErrInvalidInput, s.typ)
	}

	if !dst.CanSet() {
		return reflect.Value{}, fmt.Errorf("%w: %v value is not settable", ErrInvalidInput, s.typ)
	}

	return dst, nil
}

func (s *Set) assign(dst reflect.Value, a *Attribute, raw any, present bool) error {
	if composite.IsNil(raw) {
		switch {
		case a.hasDefault:
			raw = a.def
		case a.Required:
			return fmt.Errorf("%w: %s.%s", ErrMissingAttribute, s.typ.Name(), a.Name)
		case !present:
			return nil
		}
	}

	v, err := a.coerce(raw)
	if err != nil {
		return fmt.Errorf("%s.%s: %w", s.typ.Name(), a.Name, err)
	}

	dst.FieldByIndex(a.Field.Index).Set(v)

	return nil
}
