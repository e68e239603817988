package composite

import (
	"errors"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"

	"embedded-value/primitive"
)

// TagName is the struct tag holding an attribute name and its options.
const TagName = "attr"

var (
	ErrNotStruct     = errors.New("target is not a struct")
	ErrTooManyValues = errors.New("too many positional values")
	ErrUnknownKey    = errors.New("unknown attribute")
	ErrFieldType     = errors.New("value does not fit field type")
)

// Field describes a struct field that takes part in construction.
type Field struct {
	Name     string            // attribute name, from the tag or the Go field name
	GoName   string            // Go field name
	Index    []int             // index for reflect.Value.FieldByIndex
	Type     reflect.Type      // field type
	Tag      reflect.StructTag // raw struct tag
	Required bool              // tag option "required"
}

// Key returns the normalized lookup key of the field.
func (f Field) Key() string {
	return NormalizeKey(f.Name)
}

// AssignFunc stores raw into dst, the value of field f.
type AssignFunc func(f Field, dst reflect.Value, raw any) error

// Fields returns the exported fields of struct type t in declaration order.
// Fields of embedded structs are promoted in place of the embedded field,
// except through embedded pointers. Fields tagged `attr:"-"` are skipped.
func Fields(t reflect.Type) []Field {
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}

	visible := reflect.VisibleFields(t)

	fields := make([]Field, 0, len(visible))
	for _, sf := range visible {
		if sf.Anonymous || !sf.IsExported() || throughPointer(t, sf.Index) {
			continue
		}

		name, opts, _ := strings.Cut(sf.Tag.Get(TagName), ",")
		if name == "-" {
			continue
		}

		if name == "" {
			name = sf.Name
		}

		fields = append(fields, Field{
			Name:     name,
			GoName:   sf.Name,
			Index:    sf.Index,
			Type:     sf.Type,
			Tag:      sf.Tag,
			Required: slices.Contains(strings.Split(opts, ","), "required"),
		})
	}

	return fields
}

// throughPointer reports whether the field at index is promoted through an
// embedded pointer, which FieldByIndex cannot follow when nil.
func throughPointer(t reflect.Type, index []int) bool {
	for _, i := range index[:len(index)-1] {
		f := t.Field(i)
		if f.Type.Kind() == reflect.Pointer {
			return true
		}

		t = f.Type
	}

	return false
}

// AssignPositional stores values into the fields of struct v in declaration
// order. Fields without a value keep their zero value.
func AssignPositional(v reflect.Value, values []any, assign AssignFunc) error {
	if v.Kind() != reflect.Struct {
		return fmt.Errorf("%w: %s", ErrNotStruct, v.Type())
	}

	fields := Fields(v.Type())
	if len(values) > len(fields) {
		return fmt.Errorf("%w: %s has %d fields, got %d values", ErrTooManyValues, v.Type(), len(fields), len(values))
	}

	for i, raw := range values {
		f := fields[i]
		if err := assign(f, v.FieldByIndex(f.Index), raw); err != nil {
			return fmt.Errorf("%s.%s: %w", v.Type().Name(), f.Name, err)
		}
	}

	return nil
}

// AssignKeyed stores values into the fields of struct v matching keys by
// NormalizeKey. Unknown keys are ignored unless strict is set.
func AssignKeyed(v reflect.Value, values map[string]any, assign AssignFunc, strict bool) error {
	if v.Kind() != reflect.Struct {
		return fmt.Errorf("%w: %s", ErrNotStruct, v.Type())
	}

	byKey := make(map[string]Field)
	for _, f := range Fields(v.Type()) {
		byKey[f.Key()] = f
	}

	// sorted so that the reported error does not depend on map order
	for _, key := range slices.Sorted(maps.Keys(values)) {
		f, ok := byKey[NormalizeKey(key)]
		if !ok {
			if strict {
				return fmt.Errorf("%w: %s.%s", ErrUnknownKey, v.Type().Name(), key)
			}

			continue
		}

		if err := assign(f, v.FieldByIndex(f.Index), values[key]); err != nil {
			return fmt.Errorf("%s.%s: %w", v.Type().Name(), f.Name, err)
		}
	}

	return nil
}

// AssignValue is the plain AssignFunc: nil zeroes the field, assignable
// values are stored as is, pointers are wrapped or dereferenced and values of
// the same kind family are converted.
func AssignValue(_ Field, dst reflect.Value, raw any) error {
	return Store(dst, raw)
}

// Store assigns raw to dst following the AssignValue rules.
func Store(dst reflect.Value, raw any) error {
	if raw == nil {
		dst.SetZero()
		return nil
	}

	rv := reflect.ValueOf(raw)
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		dst.SetZero()
		return nil
	}

	dt := dst.Type()

	switch {
	case rv.Type().AssignableTo(dt):
		dst.Set(rv)
	case dt.Kind() == reflect.Pointer && rv.Type().AssignableTo(dt.Elem()):
		p := reflect.New(dt.Elem())
		p.Elem().Set(rv)
		dst.Set(p)
	case rv.Kind() == reflect.Pointer && rv.Type().Elem().AssignableTo(dt):
		dst.Set(rv.Elem())
	case convertible(rv.Type(), dt):
		if err := primitive.CheckNumber(rv, dt); err != nil {
			return fmt.Errorf("%w: %w", ErrFieldType, err)
		}

		dst.Set(rv.Convert(dt))
	default:
		return fmt.Errorf("%w: cannot use %s as %s", ErrFieldType, rv.Type(), dt)
	}

	return nil
}

// convertible limits reflect conversion to numbers and same-kind values,
// ruling out int to string and similar surprising conversions.
func convertible(from, to reflect.Type) bool {
	if !from.ConvertibleTo(to) {
		return false
	}

	return from.Kind() == to.Kind() || (isNumber(from.Kind()) && isNumber(to.Kind()))
}

func isNumber(k reflect.Kind) bool {
	switch k {
	default:
		return false
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
}
