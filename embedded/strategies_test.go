package embedded_test

import (
	"fmt"
	"reflect"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"embedded-value/composite"
	"embedded-value/embedded"
)

func TestPassThrough(t *testing.T) {
	t.Run("ordered args", func(t *testing.T) {
		c := buildCoercer(t, reflect.TypeFor[point]())

		p := &point{X: 1, Y: 2, Z: 3}
		got, err := c.Coerce(p)
		require.NoError(t, err)
		assert.Same(t, p, got)

		got, err = c.Coerce(point{X: 4})
		require.NoError(t, err)
		assert.Equal(t, point{X: 4}, got)
	})

	t.Run("keyed map", func(t *testing.T) {
		c := buildCoercer(t, reflect.TypeFor[address]())

		a := &address{Street: "Main St"}
		got, err := c.Coerce(a)
		require.NoError(t, err)
		assert.Same(t, a, got)
	})

	t.Run("open struct", func(t *testing.T) {
		c := buildCoercer(t, reflect.TypeFor[composite.OpenStruct]())

		o := composite.NewOpenStruct(map[string]any{"a": 1})
		got, err := c.Coerce(o)
		require.NoError(t, err)
		assert.Same(t, o, got)
	})
}

func TestNilPropagation(t *testing.T) {
	inputs := []any{nil, (*point)(nil), (*address)(nil), map[string]any(nil), []any(nil)}

	for _, typ := range []reflect.Type{
		reflect.TypeFor[point](),
		reflect.TypeFor[address](),
		reflect.TypeFor[money](),
		reflect.TypeFor[settings](),
	} {
		c := buildCoercer(t, typ)

		for _, in := range inputs {
			got, err := c.Coerce(in)
			require.NoError(t, err, "%v <- %#v", typ, in)
			assert.Nil(t, got, "%v <- %#v", typ, in)
		}
	}
}

func TestFromOrderedArgs(t *testing.T) {
	c := buildCoercer(t, reflect.TypeFor[point]())

	tests := []struct {
		name  string
		input any
		want  *point
	}{
		{"any slice", []any{1, 2, 3}, &point{X: 1, Y: 2, Z: 3}},
		{"typed slice", []int{1, 2, 3}, &point{X: 1, Y: 2, Z: 3}},
		{"array", [3]int{1, 2, 3}, &point{X: 1, Y: 2, Z: 3}},
		{"float values", []any{1.0, 2.0}, &point{X: 1, Y: 2}},
		{"empty", []any{}, &point{}},
		{"single value", 5, &point{X: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Coerce(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFromOrderedArgsMatchesDirectConstruction(t *testing.T) {
	c := buildCoercer(t, reflect.TypeFor[point]())

	got, err := c.Coerce([]any{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, &point{X: 1, Y: 2, Z: 3}, got)
}

func TestFromOrderedArgsErrors(t *testing.T) {
	c := buildCoercer(t, reflect.TypeFor[point]())

	_, err := c.Coerce([]any{1, 2, 3, 4})
	require.ErrorIs(t, err, composite.ErrTooManyValues)

	_, err = c.Coerce([]any{"x"})
	require.ErrorIs(t, err, composite.ErrFieldType)

	_, err = c.Coerce(map[string]any{"x": 1})
	require.ErrorIs(t, err, composite.ErrFieldType)
}

func TestFromOrderedArgsSequenceConstructor(t *testing.T) {
	c := buildCoercer(t, reflect.TypeFor[pair]())

	got, err := c.Coerce([]any{"a", 1})
	require.NoError(t, err)
	assert.Equal(t, &pair{Left: "a", Right: "1"}, got)

	_, err = c.Coerce([]any{"a"})
	require.EqualError(t, err, "pair needs 2 values, got 1")
}

func TestFromKeyedMap(t *testing.T) {
	c := buildCoercer(t, reflect.TypeFor[address]())

	tests := []struct {
		name  string
		input any
	}{
		{"any map", map[string]any{"street": "Main St", "zipcode": "12345", "city": "NYC"}},
		{"string map", map[string]string{"street": "Main St", "zipcode": "12345", "city": "NYC"}},
		{"interface keys", map[any]any{"street": "Main St", "zipcode": "12345", "city": "NYC"}},
		{"open struct", composite.NewOpenStruct(map[string]any{"street": "Main St", "zipcode": "12345", "city": "NYC"})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Coerce(tt.input)
			require.NoError(t, err)
			assert.Equal(t, &address{Street: "Main St", Zipcode: "12345", City: "NYC"}, got)
		})
	}
}

func TestFromKeyedMapUnsupportedInput(t *testing.T) {
	c := buildCoercer(t, reflect.TypeFor[address]())

	for _, in := range []any{"Main St", 42, []any{"Main St"}, map[int]any{1: "x"}, map[any]any{1: "x"}} {
		_, err := c.Coerce(in)
		require.ErrorIs(t, err, embedded.ErrUnsupportedInput, "%#v", in)
	}
}

func TestFromKeyedMapOpenStruct(t *testing.T) {
	c := buildCoercer(t, reflect.TypeFor[composite.OpenStruct]())

	got, err := c.Coerce(map[string]any{"theme": "dark", "size": 3})
	require.NoError(t, err)

	o, ok := got.(*composite.OpenStruct)
	require.True(t, ok)
	assert.Equal(t, []string{"size", "theme"}, o.Fields())

	c = buildCoercer(t, reflect.TypeFor[settings]())

	got, err = c.Coerce(map[string]any{"theme": "dark"})
	require.NoError(t, err)

	s, ok := got.(*settings)
	require.True(t, ok)

	v, _ := s.Get("theme")
	assert.Equal(t, "dark", v)
}

func TestFromKeyedMapConstructorError(t *testing.T) {
	c := buildCoercer(t, reflect.TypeFor[money]())

	got, err := c.Coerce(map[string]any{"cents": 150, "currency": "EUR"})
	require.NoError(t, err)
	assert.Equal(t, &money{Cents: 150, Currency: "EUR"}, got)

	_, err = c.Coerce(map[string]any{"cents": -1})
	assert.Equal(t, errNegative, err)
}

func TestStrictReflectHost(t *testing.T) {
	c, err := embedded.BuildCoercer(
		embedded.BuildType(reflect.TypeFor[address]()),
		embedded.Options{Host: embedded.ReflectHost{Strict: true}},
	)
	require.NoError(t, err)

	_, err = c.Coerce(map[string]any{"street": "Main St", "country": "US"})
	require.ErrorIs(t, err, composite.ErrUnknownKey)
}

func TestConcurrentCoerce(t *testing.T) {
	c := buildCoercer(t, reflect.TypeFor[address]())

	var wg sync.WaitGroup

	errs := make(chan error, 16)
	for i := range 16 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			city := fmt.Sprintf("city-%d", i)

			got, err := embedded.CoerceTo[address](c, map[string]any{"city": city})
			if err != nil {
				errs <- err
				return
			}

			if got.City != city {
				errs <- fmt.Errorf("got %q, want %q", got.City, city)
			}
		}()
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
}

func ExampleBuildCoercer() {
	rt := reflect.TypeOf(address{})
	if !embedded.IsEligible(rt) {
		return
	}

	c, err := embedded.BuildCoercer(embedded.BuildType(rt), embedded.Options{})
	if err != nil {
		fmt.Println(err)
		return
	}

	a, _ := c.Coerce(map[string]any{"street": "Street 1/2", "zipcode": "12345", "city": "NYC"})
	fmt.Printf("%s %+v\n", c.Strategy(), *a.(*address))

	none, _ := c.Coerce(nil)
	fmt.Println(none)
	// Output:
	// keyed-map {Model:{} Street:Street 1/2 Zipcode:12345 City:NYC}
	// <nil>
}
