package composite

import "reflect"

// Mapper is implemented by values that expose their attributes as a map,
// such as OpenStruct.
type Mapper interface {
	ToMap() map[string]any
}

// IsNil reports untyped nil as well as nil pointers, maps and slices.
func IsNil(input any) bool {
	if input == nil {
		return true
	}

	rv := reflect.ValueOf(input)
	switch rv.Kind() {
	default:
		return false
	case reflect.Pointer, reflect.Map, reflect.Slice:
		return rv.IsNil()
	}
}

// Sequence returns the elements of a slice or array input.
func Sequence(input any) ([]any, bool) {
	if values, ok := input.([]any); ok {
		return values, true
	}

	rv := reflect.ValueOf(input)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}

	values := make([]any, rv.Len())
	for i := range values {
		values[i] = rv.Index(i).Interface()
	}

	return values, true
}

// Keyed returns input as a string keyed map. Maps whose keys are strings, or
// interfaces holding strings, qualify, as do Mapper values.
func Keyed(input any) (map[string]any, bool) {
	switch m := input.(type) {
	case map[string]any:
		return m, true
	case Mapper:
		return m.ToMap(), true
	}

	rv := reflect.ValueOf(input)
	if rv.Kind() != reflect.Map {
		return nil, false
	}

	values := make(map[string]any, rv.Len())

	iter := rv.MapRange()
	for iter.Next() {
		key := iter.Key()
		if key.Kind() == reflect.Interface {
			key = key.Elem()
		}

		if key.Kind() != reflect.String {
			return nil, false
		}

		values[key.String()] = iter.Value().Interface()
	}

	return values, true
}
