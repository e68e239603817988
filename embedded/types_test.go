package embedded_test

import (
	"errors"
	"fmt"

	"embedded-value/composite"
)

type address struct {
	composite.Model
	Street  string `attr:"street"`
	Zipcode string `attr:"zipcode"`
	City    string `attr:"city"`
}

type point struct {
	composite.Record
	X, Y, Z int
}

type settings struct {
	composite.OpenStruct
}

type money struct {
	Cents    int64
	Currency string
}

var errNegative = errors.New("negative amount")

func (m *money) ConstructFromMap(values map[string]any) error {
	cents, _ := values["cents"].(int)
	if cents < 0 {
		return errNegative
	}

	m.Cents = int64(cents)
	m.Currency, _ = values["currency"].(string)

	return nil
}

// pair checks its own arity.
type pair struct {
	composite.Record
	Left, Right string
}

func (p *pair) ConstructFromSequence(values []any) error {
	if len(values) != 2 {
		return fmt.Errorf("pair needs 2 values, got %d", len(values))
	}

	p.Left = fmt.Sprint(values[0])
	p.Right = fmt.Sprint(values[1])

	return nil
}

type hybrid struct {
	composite.Model
	composite.Record
	A string
}

type plain struct {
	N int
}
