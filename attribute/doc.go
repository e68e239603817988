// Package attribute declares typed attribute sets over Go structs and
// assigns raw input to them.
//
// Every exported field of a struct becomes an attribute. Its name comes from
// the `attr` tag (falling back to the Go field name) and its coercion is
// chosen once, when the set is declared, by the dispatch table:
//
//	scalars          -> weak scalar coercion
//	embedded values  -> embedded.BuildCoercer (records, models, open structs, constructors)
//	slices, arrays   -> element-wise dispatch
//	string keyed maps-> value-wise dispatch
//	interfaces       -> stored as is
//	registered types -> user supplied caster functions
//
// A Registry caches sets per type and doubles as the embedded.Host for model
// targets, so nested models are filled through the same dispatch.
//
//	type Address struct {
//		composite.Model
//		Street  string `attr:"street"`
//		Zipcode string `attr:"zipcode"`
//		City    string `attr:"city"`
//	}
//
//	type User struct {
//		composite.Model
//		Address *Address `attr:"address"`
//	}
//
//	user, err := attribute.New[User](map[string]any{
//		"address": map[string]any{"street": "Street 1/2", "zipcode": "12345", "city": "NYC"},
//	})
package attribute
