package codec

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/fxamacker/cbor/v2"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error

	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("codec: CBOR encoder initialization failed: " + err.Error())
	}

	// maps decoded into any must be string keyed to be usable as keyed input
	decMode, err = cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		panic("codec: CBOR decoder initialization failed: " + err.Error())
	}
}

// Decode parses data into raw input: map[string]any, []any or scalars.
func Decode(format Format, data []byte) (any, error) {
	var (
		out any
		err error
	)

	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &out)
	case FormatJSON:
		err = json.Unmarshal(data, &out)
	case FormatJSONC:
		err = json.Unmarshal(jsonc.ToJSON(data), &out)
	case FormatCBOR:
		err = decMode.Unmarshal(data, &out)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to parse %s document: %w", format, err)
	}

	return out, nil
}

// Encode serializes v. JSONC is written as plain JSON.
func Encode(format Format, v any) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(v)
	case FormatJSON, FormatJSONC:
		return json.MarshalIndent(v, "", "  ")
	case FormatCBOR:
		return encMode.Marshal(v)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
