package embedded

import (
	"fmt"
	"log/slog"
	"reflect"

	"embedded-value/composite"
)

// Strategy identifies how a Coercer builds new instances.
type Strategy int

const (
	_ Strategy = iota // zero value is not a strategy

	StrategyOrderedArgs // positional values, one per field
	StrategyKeyedMap    // a single keyed map
)

// String returns a human-readable strategy name.
func (s Strategy) String() string {
	switch s {
	case StrategyOrderedArgs:
		return "ordered-args"
	case StrategyKeyedMap:
		return "keyed-map"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Coercer converts raw input into an instance of its primitive.
// Implementations are immutable and safe for concurrent use as long as the
// Host is.
type Coercer interface {
	// Primitive returns the target type.
	Primitive() reflect.Type
	// Strategy returns the construction strategy.
	Strategy() Strategy
	// Coerce returns nil for nil input, input itself when it already is an
	// instance of the primitive, and a newly constructed *Primitive otherwise.
	Coerce(input any) (any, error)
}

// Options configure BuildCoercer. They never influence strategy selection.
type Options struct {
	// Host builds new instances. Defaults to ReflectHost.
	Host Host
	// Logger receives setup-time debug records. Defaults to slog.Default().
	Logger *slog.Logger
}

func (o Options) host() Host {
	if o.Host == nil {
		return ReflectHost{}
	}

	return o.Host
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.Default()
	}

	return o.Logger
}

// BuildCoercer selects the strategy for typ. The first matching rule wins:
//  1. models, constructors and open structs are built from a keyed map;
//  2. records are built from ordered arguments.
//
// The bare Record and Model markers match neither rule. A primitive matching
// no rule yields ErrIneligibleTarget.
func BuildCoercer(typ *Type, opts Options) (Coercer, error) {
	primitive := typ.Primitive()
	categories := composite.Of(primitive)
	exact := composite.Exact(primitive)

	var c Coercer

	switch {
	case categories.Has(composite.CategoryModel) && exact != composite.CategoryModel,
		categories.Has(composite.CategoryConstructor),
		categories.Has(composite.CategoryOpen):
		c = NewFromKeyedMap(primitive, opts.host())
	case categories.Has(composite.CategoryRecord) && exact != composite.CategoryRecord:
		c = NewFromOrderedArgs(primitive, opts.host())
	default:
		return nil, fmt.Errorf("%w: %v (categories: %s)", ErrIneligibleTarget, primitive, categories)
	}

	opts.logger().Debug("embedded value coercer built",
		slog.String("type", primitive.String()),
		slog.String("strategy", c.Strategy().String()),
		slog.String("categories", categories.String()),
	)

	return c, nil
}

// CoerceTo applies c and returns the result as *T.
func CoerceTo[T any](c Coercer, input any) (*T, error) {
	v, err := c.Coerce(input)
	if err != nil || v == nil {
		return nil, err
	}

	switch x := v.(type) {
	case *T:
		return x, nil
	case T:
		return &x, nil
	default:
		return nil, fmt.Errorf("%w: got %T, want %v", ErrTypeMismatch, v, reflect.TypeFor[T]())
	}
}
