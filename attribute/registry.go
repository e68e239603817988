package attribute

import (
	"fmt"
	"log/slog"
	"reflect"
	"sync"

	"embedded-value/composite"
	"embedded-value/embedded"
)

// Registry declares and caches attribute sets and embedded value coercers.
// It builds model targets for the embedded value coercers it creates.
type Registry struct {
	mu       sync.RWMutex
	sets     map[reflect.Type]*Set
	coercers map[reflect.Type]embedded.Coercer

	casters    map[reflect.Type]*Caster
	classifier *embedded.Classifier
	strict     bool
	logger     *slog.Logger
}

var _ embedded.Host = (*Registry)(nil)

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger receiving declaration records.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// WithStrict makes attribute sets reject unknown keys.
func WithStrict(strict bool) Option {
	return func(r *Registry) {
		r.strict = strict
	}
}

// WithCategories limits which composite categories are treated as embedded
// values.
func WithCategories(categories composite.Category) Option {
	return func(r *Registry) {
		r.classifier = embedded.NewClassifier(categories)
	}
}

// WithCaster registers a caster function for its result type.
// It panics if fn is not a caster, see ParseCaster.
func WithCaster(fn any) Option {
	c, err := ParseCaster(fn)
	if err != nil {
		panic(fmt.Sprintf("attribute: invalid caster %T: %v", fn, err))
	}

	return func(r *Registry) {
		r.casters[c.Dst] = c
	}
}

// NewRegistry returns an empty Registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		sets:       make(map[reflect.Type]*Set),
		coercers:   make(map[reflect.Type]embedded.Coercer),
		casters:    make(map[reflect.Type]*Caster),
		classifier: embedded.NewClassifier(composite.CategoryAll),
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// DefaultRegistry is used by the package level helpers.
var DefaultRegistry = NewRegistry()

// Set returns the attribute set of struct type t, declaring it on first use.
func (r *Registry) Set(t reflect.Type) (*Set, error) {
	if t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t == nil || t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %v", composite.ErrNotStruct, t)
	}

	r.mu.RLock()
	s, ok := r.sets[t]
	r.mu.RUnlock()

	if ok {
		return s, nil
	}

	s, err := r.define(t)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.sets[t]; ok {
		return existing, nil
	}

	r.sets[t] = s

	return s, nil
}

// Coercer returns the embedded value coercer of t, building it on first use.
func (r *Registry) Coercer(t reflect.Type) (embedded.Coercer, error) {
	if !r.classifier.IsEligible(t) {
		return nil, fmt.Errorf("%w: %v", embedded.ErrIneligibleTarget, t)
	}

	r.mu.RLock()
	c, ok := r.coercers[t]
	r.mu.RUnlock()

	if ok {
		return c, nil
	}

	c, err := embedded.BuildCoercer(embedded.BuildType(t), r.embeddedOptions())
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.coercers[t]; ok {
		return existing, nil
	}

	r.coercers[t] = c

	return c, nil
}

// Assign fills the struct target points to from values.
func (r *Registry) Assign(target any, values map[string]any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("%w: target must be a non-nil pointer, got %T", ErrInvalidInput, target)
	}

	s, err := r.Set(rv.Type().Elem())
	if err != nil {
		return err
	}

	return s.Assign(rv, values)
}

// NewFromSequence builds a *t from positional values. Targets implementing
// composite.SequenceConstructor build themselves.
func (r *Registry) NewFromSequence(t reflect.Type, values []any) (any, error) {
	ptr := reflect.New(t)

	if sc, ok := ptr.Interface().(composite.SequenceConstructor); ok {
		if err := sc.ConstructFromSequence(values); err != nil {
			return nil, err
		}

		return ptr.Interface(), nil
	}

	s, err := r.Set(t)
	if err != nil {
		return nil, err
	}

	if err := s.AssignSequence(ptr, values); err != nil {
		return nil, err
	}

	return ptr.Interface(), nil
}

// NewFromMap builds a *t from a keyed map. Targets implementing
// composite.Constructor build themselves.
func (r *Registry) NewFromMap(t reflect.Type, values map[string]any) (any, error) {
	ptr := reflect.New(t)

	if c, ok := ptr.Interface().(composite.Constructor); ok {
		if err := c.ConstructFromMap(values); err != nil {
			return nil, err
		}

		return ptr.Interface(), nil
	}

	s, err := r.Set(t)
	if err != nil {
		return nil, err
	}

	if err := s.Assign(ptr, values); err != nil {
		return nil, err
	}

	return ptr.Interface(), nil
}

func (r *Registry) embeddedOptions() embedded.Options {
	return embedded.Options{Host: r, Logger: r.logger}
}

// Build coerces raw into a *T through the embedded value coercer of T.
// nil input yields a nil result.
func Build[T any](r *Registry, raw any) (*T, error) {
	c, err := r.Coercer(reflect.TypeFor[T]())
	if err != nil {
		return nil, err
	}

	return embedded.CoerceTo[T](c, raw)
}

// New builds a *T from values with the DefaultRegistry.
func New[T any](values map[string]any) (*T, error) {
	return Build[T](DefaultRegistry, values)
}

// Coerce builds a *T from raw input with the DefaultRegistry. Sequences are
// accepted for record types.
func Coerce[T any](raw any) (*T, error) {
	return Build[T](DefaultRegistry, raw)
}
