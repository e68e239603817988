package attribute

import (
	"github.com/invopop/jsonschema"

	"embedded-value/composite"
)

// JSONSchema describes the input accepted by Assign. Nested embedded values
// are inlined.
func (s *Set) JSONSchema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		FieldNameTag:               composite.TagName,
		DoNotReference:             true,
		ExpandedStruct:             true,
		RequiredFromJSONSchemaTags: true,
		AllowAdditionalProperties:  !s.strict,
	}

	schema := r.ReflectFromType(s.typ)
	schema.Required = nil

	for _, a := range s.attrs {
		if a.Required {
			schema.Required = append(schema.Required, a.Name)
		}

		if !a.hasDefault || schema.Properties == nil {
			continue
		}

		if prop, ok := schema.Properties.Get(a.Name); ok && prop != nil {
			prop.Default = a.def
		}
	}

	return schema
}
