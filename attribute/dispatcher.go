package attribute

import (
	"reflect"

	"embedded-value/primitive"
)

//go:generate go tool stringer -type=DispatcherEnum -output=dispatcher_string.go

// DispatcherEnum names the coercion route of an attribute.
type DispatcherEnum int

const (
	DispatcherUnknown DispatcherEnum = iota
	DispatcherPrimitive
	DispatcherEmbedded
	DispatcherInterface
	DispatcherSlice
	DispatcherMap
	DispatcherCaster

	// DispatcherTotal is a constant that represents the total number of dispatchers defined
	DispatcherTotal = int(iota)
)

// Dispatch returns the coercion route for attribute type t. A single level of
// pointer is looked through; registered caster targets take precedence.
func (r *Registry) Dispatch(t reflect.Type) DispatcherEnum {
	if t == nil {
		return DispatcherUnknown
	}

	if _, ok := r.casters[t]; ok {
		return DispatcherCaster
	}

	base := t
	if base.Kind() == reflect.Pointer {
		base = base.Elem()
		if base.Kind() == reflect.Pointer {
			return DispatcherUnknown
		}

		if _, ok := r.casters[base]; ok {
			return DispatcherCaster
		}
	}

	if r.classifier.IsEligible(base) {
		return DispatcherEmbedded
	}

	if primitive.FromReflectType(base).IsValid() {
		return DispatcherPrimitive
	}

	switch base.Kind() {
	case reflect.Interface:
		return DispatcherInterface
	case reflect.Slice, reflect.Array:
		return DispatcherSlice
	case reflect.Map:
		if base.Key().Kind() == reflect.String {
			return DispatcherMap
		}
	}

	return DispatcherUnknown
}

// Dispatch returns the coercion route for t in the DefaultRegistry.
func Dispatch(t reflect.Type) DispatcherEnum {
	return DefaultRegistry.Dispatch(t)
}
