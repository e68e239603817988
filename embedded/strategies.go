package embedded

import (
	"fmt"
	"reflect"

	"embedded-value/composite"
)

// FromOrderedArgs builds record-like targets from positional values.
type FromOrderedArgs struct {
	primitive reflect.Type
	host      Host
}

// NewFromOrderedArgs returns a positional strategy for primitive. A nil host
// means ReflectHost.
func NewFromOrderedArgs(primitive reflect.Type, host Host) *FromOrderedArgs {
	if host == nil {
		host = ReflectHost{}
	}

	return &FromOrderedArgs{primitive: primitive, host: host}
}

func (c *FromOrderedArgs) Primitive() reflect.Type { return c.primitive }

func (c *FromOrderedArgs) Strategy() Strategy { return StrategyOrderedArgs }

// Coerce passes slices and arrays element by element to the host. Any other
// non-nil value that is not an instance becomes the single positional value.
// Host errors are returned as is.
func (c *FromOrderedArgs) Coerce(input any) (any, error) {
	if composite.IsNil(input) {
		return nil, nil
	}

	if isInstance(input, c.primitive) {
		return input, nil
	}

	values, ok := composite.Sequence(input)
	if !ok {
		values = []any{input}
	}

	return c.host.NewFromSequence(c.primitive, values)
}

// FromKeyedMap builds targets from a single keyed map.
type FromKeyedMap struct {
	primitive reflect.Type
	host      Host
}

// NewFromKeyedMap returns a keyed strategy for primitive. A nil host means
// ReflectHost.
func NewFromKeyedMap(primitive reflect.Type, host Host) *FromKeyedMap {
	if host == nil {
		host = ReflectHost{}
	}

	return &FromKeyedMap{primitive: primitive, host: host}
}

func (c *FromKeyedMap) Primitive() reflect.Type { return c.primitive }

func (c *FromKeyedMap) Strategy() Strategy { return StrategyKeyedMap }

// Coerce passes the whole map to the host. Host errors are returned as is.
func (c *FromKeyedMap) Coerce(input any) (any, error) {
	if composite.IsNil(input) {
		return nil, nil
	}

	if isInstance(input, c.primitive) {
		return input, nil
	}

	values, ok := composite.Keyed(input)
	if !ok {
		return nil, fmt.Errorf("%w: %T for %v", ErrUnsupportedInput, input, c.primitive)
	}

	return c.host.NewFromMap(c.primitive, values)
}

func isInstance(input any, primitive reflect.Type) bool {
	t := reflect.TypeOf(input)
	return t == primitive || t == reflect.PointerTo(primitive)
}
