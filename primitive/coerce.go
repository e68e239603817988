package primitive

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/mitchellh/mapstructure"
)

var ErrNotScalar = errors.New("target is not a scalar type")

// Coerce converts raw into a value of scalar type to. Conversions are weak:
// numeric strings become numbers, "true"/"1" become booleans, RFC 3339
// strings become time.Time and "2h45m" style strings become time.Duration.
// A nil raw yields the zero value.
func Coerce(raw any, to reflect.Type) (reflect.Value, error) {
	if !FromReflectType(to).IsValid() {
		return reflect.Value{}, fmt.Errorf("%w: %v", ErrNotScalar, to)
	}

	// weak decoding truncates and wraps numbers silently
	if err := CheckNumber(reflect.ValueOf(raw), to); err != nil {
		return reflect.Value{}, fmt.Errorf("cannot coerce %T to %v: %w", raw, to, err)
	}

	out := reflect.New(to)

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToTimeHookFunc(time.RFC3339Nano),
		),
		Result: out.Interface(),
	})
	if err != nil {
		return reflect.Value{}, err
	}

	if err := dec.Decode(raw); err != nil {
		return reflect.Value{}, fmt.Errorf("cannot coerce %T to %v: %w", raw, to, err)
	}

	return out.Elem(), nil
}
