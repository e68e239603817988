package embedded_test

import (
	"bytes"
	"log/slog"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"embedded-value/composite"
	"embedded-value/embedded"
)

func buildCoercer(t *testing.T, rt reflect.Type) embedded.Coercer {
	t.Helper()

	c, err := embedded.BuildCoercer(embedded.BuildType(rt), embedded.Options{})
	require.NoError(t, err)

	return c
}

func TestBuildCoercerSelection(t *testing.T) {
	tests := []struct {
		name string
		typ  reflect.Type
		want embedded.Strategy
	}{
		{"model", reflect.TypeFor[address](), embedded.StrategyKeyedMap},
		{"constructor", reflect.TypeFor[money](), embedded.StrategyKeyedMap},
		{"open struct", reflect.TypeFor[composite.OpenStruct](), embedded.StrategyKeyedMap},
		{"open struct descendant", reflect.TypeFor[settings](), embedded.StrategyKeyedMap},
		{"record", reflect.TypeFor[point](), embedded.StrategyOrderedArgs},
		{"record with own constructor", reflect.TypeFor[pair](), embedded.StrategyOrderedArgs},
		{"model wins over record", reflect.TypeFor[hybrid](), embedded.StrategyKeyedMap},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := buildCoercer(t, tt.typ)
			assert.Equal(t, tt.want, c.Strategy())
			assert.Equal(t, tt.typ, c.Primitive())
		})
	}
}

func TestBuildCoercerDeterministic(t *testing.T) {
	for range 20 {
		c := buildCoercer(t, reflect.TypeFor[hybrid]())
		require.IsType(t, &embedded.FromKeyedMap{}, c)
	}
}

func TestBuildCoercerIneligible(t *testing.T) {
	tests := []struct {
		name string
		typ  reflect.Type
	}{
		{"record marker", reflect.TypeFor[composite.Record]()},
		{"model marker", reflect.TypeFor[composite.Model]()},
		{"plain struct", reflect.TypeFor[plain]()},
		{"int", reflect.TypeFor[int]()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := embedded.BuildCoercer(embedded.BuildType(tt.typ), embedded.Options{})
			require.ErrorIs(t, err, embedded.ErrIneligibleTarget)
			assert.Nil(t, c)
		})
	}
}

func TestBuildCoercerLogsSelection(t *testing.T) {
	var buf bytes.Buffer

	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := embedded.BuildCoercer(embedded.BuildType(reflect.TypeFor[point]()), embedded.Options{Logger: logger})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "embedded value coercer built")
	assert.Contains(t, buf.String(), "strategy=ordered-args")
	assert.Contains(t, buf.String(), "categories=record")
}

type recordingHost struct {
	sequences [][]any
	maps      []map[string]any
}

func (h *recordingHost) NewFromSequence(t reflect.Type, values []any) (any, error) {
	h.sequences = append(h.sequences, values)
	return reflect.New(t).Interface(), nil
}

func (h *recordingHost) NewFromMap(t reflect.Type, values map[string]any) (any, error) {
	h.maps = append(h.maps, values)
	return reflect.New(t).Interface(), nil
}

func TestBuildCoercerUsesHost(t *testing.T) {
	host := &recordingHost{}
	opts := embedded.Options{Host: host}

	ordered, err := embedded.BuildCoercer(embedded.BuildType(reflect.TypeFor[point]()), opts)
	require.NoError(t, err)

	keyed, err := embedded.BuildCoercer(embedded.BuildType(reflect.TypeFor[address]()), opts)
	require.NoError(t, err)

	_, err = ordered.Coerce([]int{1, 2})
	require.NoError(t, err)

	_, err = keyed.Coerce(map[string]any{"city": "NYC"})
	require.NoError(t, err)

	assert.Equal(t, [][]any{{1, 2}}, host.sequences)
	assert.Equal(t, []map[string]any{{"city": "NYC"}}, host.maps)
}

func TestStrategyString(t *testing.T) {
	assert.Equal(t, "ordered-args", embedded.StrategyOrderedArgs.String())
	assert.Equal(t, "keyed-map", embedded.StrategyKeyedMap.String())
	assert.Equal(t, "Strategy(0)", embedded.Strategy(0).String())
}

func TestCoerceTo(t *testing.T) {
	c := buildCoercer(t, reflect.TypeFor[address]())

	a, err := embedded.CoerceTo[address](c, map[string]any{"street": "Main St"})
	require.NoError(t, err)
	assert.Equal(t, "Main St", a.Street)

	a, err = embedded.CoerceTo[address](c, nil)
	require.NoError(t, err)
	assert.Nil(t, a)

	a, err = embedded.CoerceTo[address](c, address{City: "NYC"})
	require.NoError(t, err)
	assert.Equal(t, "NYC", a.City)

	_, err = embedded.CoerceTo[point](c, map[string]any{})
	require.ErrorIs(t, err, embedded.ErrTypeMismatch)
}
