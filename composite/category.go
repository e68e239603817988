package composite

import "strings"

// Category is a bitmask of construction protocols.
type Category int

const (
	CategoryRecord      Category = 1 << iota // positional composite: embeds Record
	CategoryOpen                             // dynamic-attribute composite: is or embeds OpenStruct
	CategoryModel                            // attribute framework model: embeds Model
	CategoryConstructor                      // pointer implements Constructor

	CategoryAll  Category = (1 << iota) - 1 // all categories combined
	CategoryNone Category = 0               // no categories selected
)

var categoryNames = [...]struct {
	c    Category
	name string
}{
	{CategoryRecord, "record"},
	{CategoryOpen, "open"},
	{CategoryModel, "model"},
	{CategoryConstructor, "constructor"},
}

// Has reports whether c shares at least one category with other.
func (c Category) Has(other Category) bool {
	return c&other != 0
}

// String returns the category names joined with "|", or "none".
func (c Category) String() string {
	if c == CategoryNone {
		return "none"
	}

	var parts []string
	for _, cn := range categoryNames {
		if c&cn.c != 0 {
			parts = append(parts, cn.name)
		}
	}

	if len(parts) == 0 {
		return "unknown"
	}

	return strings.Join(parts, "|")
}
