package main

import (
	"errors"
	"fmt"
	"maps"
	"reflect"
	"slices"

	"embedded-value/composite"
	"embedded-value/primitive"
)

// Address is a model with keyed attributes.
type Address struct {
	composite.Model
	Street  string `attr:"street"`
	Zipcode string `attr:"zipcode"`
	City    string `attr:"city"`
}

// Point is a positional record.
type Point struct {
	composite.Record
	X, Y float64
}

// Settings holds arbitrary keys.
type Settings struct {
	composite.OpenStruct
}

// Money builds itself from a keyed map.
type Money struct {
	Amount   float64
	Currency string
}

var errNoCurrency = errors.New("money requires a currency")

func (m *Money) ConstructFromMap(values map[string]any) error {
	currency, _ := values["currency"].(string)
	if currency == "" {
		return errNoCurrency
	}

	amount, err := primitive.Coerce(values["amount"], reflect.TypeFor[float64]())
	if err != nil {
		return fmt.Errorf("amount: %w", err)
	}

	m.Amount, m.Currency = amount.Float(), currency

	return nil
}

// User nests every kind of embedded value.
type User struct {
	composite.Model
	Name     string    `attr:"name,required"`
	Email    string    `attr:"email"`
	Role     string    `attr:"role" default:"member"`
	Address  *Address  `attr:"address"`
	Route    []Point   `attr:"route"`
	Balance  *Money    `attr:"balance"`
	Settings *Settings `attr:"settings"`
}

var catalog = map[string]reflect.Type{
	"address":  reflect.TypeFor[Address](),
	"point":    reflect.TypeFor[Point](),
	"settings": reflect.TypeFor[Settings](),
	"money":    reflect.TypeFor[Money](),
	"user":     reflect.TypeFor[User](),
}

func lookupType(name string) (reflect.Type, error) {
	t, ok := catalog[name]
	if !ok {
		return nil, fmt.Errorf("unknown type %q, known types: %v", name, slices.Sorted(maps.Keys(catalog)))
	}

	return t, nil
}
