package composite

import "reflect"

// Record marks a struct as a positional composite.
//
//	type Point struct {
//		composite.Record
//		X, Y int
//	}
type Record struct{}

func (Record) embeddedRecord() {}

// Model marks a struct as declared through the attribute framework.
//
//	type Address struct {
//		composite.Model
//		Street string `attr:"street"`
//	}
type Model struct{}

func (Model) embeddedModel() {}

// Constructor is implemented by types that build themselves from a keyed map.
type Constructor interface {
	ConstructFromMap(values map[string]any) error
}

// SequenceConstructor is implemented by types that build themselves from
// positional values. Record types without it are filled field by field.
type SequenceConstructor interface {
	ConstructFromSequence(values []any) error
}

type (
	recordMarker interface{ embeddedRecord() }
	modelMarker  interface{ embeddedModel() }
	openMarker   interface{ embeddedOpen() }
)

var (
	recordMarkerType = reflect.TypeFor[recordMarker]()
	modelMarkerType  = reflect.TypeFor[modelMarker]()
	openMarkerType   = reflect.TypeFor[openMarker]()
	constructorType  = reflect.TypeFor[Constructor]()

	recordType = reflect.TypeFor[Record]()
	modelType  = reflect.TypeFor[Model]()
	openType   = reflect.TypeFor[OpenStruct]()
)

// Of returns every category t is equal to or a descendant of.
// Types that are not structs belong to no category.
func Of(t reflect.Type) Category {
	if t == nil || t.Kind() != reflect.Struct {
		return CategoryNone
	}

	// the pointer method set is a superset of the value one
	pt := reflect.PointerTo(t)

	var c Category
	if pt.Implements(recordMarkerType) {
		c |= CategoryRecord
	}

	if pt.Implements(openMarkerType) {
		c |= CategoryOpen
	}

	if pt.Implements(modelMarkerType) {
		c |= CategoryModel
	}

	if pt.Implements(constructorType) {
		c |= CategoryConstructor
	}

	return c
}

// Exact returns the category whose marker t is, or CategoryNone when t is
// not one of Record, Model or OpenStruct itself.
func Exact(t reflect.Type) Category {
	switch t {
	case recordType:
		return CategoryRecord
	case modelType:
		return CategoryModel
	case openType:
		return CategoryOpen
	default:
		return CategoryNone
	}
}
