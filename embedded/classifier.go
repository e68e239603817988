package embedded

import (
	"reflect"

	"embedded-value/composite"
)

// Classifier decides which types are embedded value targets.
type Classifier struct {
	categories composite.Category
}

// NewClassifier returns a Classifier accepting the given categories.
func NewClassifier(categories composite.Category) *Classifier {
	return &Classifier{categories: categories}
}

var defaultClassifier = NewClassifier(composite.CategoryAll)

// IsEligible reports whether candidate is a struct reflect.Type belonging to
// one of the supported categories.
func IsEligible(candidate any) bool {
	return defaultClassifier.IsEligible(candidate)
}

// Categories returns the categories accepted by c.
func (c *Classifier) Categories() composite.Category {
	return c.categories
}

// IsEligible reports whether candidate is a struct reflect.Type belonging to
// one of the categories of c. Instances, nil and non-struct types are not.
func (c *Classifier) IsEligible(candidate any) bool {
	t, ok := candidate.(reflect.Type)
	if !ok || t == nil {
		return false
	}

	return composite.Of(t).Has(c.categories)
}
