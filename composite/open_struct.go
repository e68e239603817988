package composite

import (
	"encoding/json"
	"maps"
	"slices"
)

// OpenStruct is a composite with dynamic attributes. The zero value is an
// empty struct ready to use.
type OpenStruct struct {
	table map[string]any
}

// NewOpenStruct returns an OpenStruct holding a copy of values.
func NewOpenStruct(values map[string]any) *OpenStruct {
	o := &OpenStruct{}
	_ = o.ConstructFromMap(values)

	return o
}

func (*OpenStruct) embeddedOpen() {}

// ConstructFromMap replaces the attributes with a copy of values.
func (o *OpenStruct) ConstructFromMap(values map[string]any) error {
	o.table = make(map[string]any, len(values))
	maps.Copy(o.table, values)

	return nil
}

// Get returns the attribute value and whether it is set.
func (o *OpenStruct) Get(name string) (any, bool) {
	v, ok := o.table[name]
	return v, ok
}

// Set assigns an attribute, creating it when missing.
func (o *OpenStruct) Set(name string, value any) {
	if o.table == nil {
		o.table = make(map[string]any)
	}

	o.table[name] = value
}

// Delete removes an attribute.
func (o *OpenStruct) Delete(name string) {
	delete(o.table, name)
}

// Len returns the number of attributes.
func (o *OpenStruct) Len() int {
	return len(o.table)
}

// Fields returns the attribute names in sorted order.
func (o *OpenStruct) Fields() []string {
	return slices.Sorted(maps.Keys(o.table))
}

// ToMap returns a copy of the attributes. It never returns nil.
func (o *OpenStruct) ToMap() map[string]any {
	out := make(map[string]any, len(o.table))
	maps.Copy(out, o.table)

	return out
}

func (o *OpenStruct) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.ToMap())
}

func (o *OpenStruct) MarshalYAML() (any, error) {
	return o.ToMap(), nil
}
