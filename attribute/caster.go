package attribute

import (
	"errors"
	"fmt"
	"path"
	"reflect"
	"runtime"
	"strings"

	"embedded-value/composite"
	"embedded-value/primitive"
)

var (
	ErrIsNotACaster         = errors.New("provided function is not a recognizable caster")
	ErrCasterIsNotAFunction = errors.New("provided caster is not a function")
	ErrDoublePointer        = errors.New("caster function does not support double pointers")
)

var errorType = reflect.TypeFor[error]()

// Caster is a user supplied function coercing raw values into Dst.
type Caster struct {
	Src, Dst     reflect.Type
	PackageAlias string
	Name         string
	HasBool      bool
	HasErr       bool

	fn reflect.Value
}

// ParseCaster inspects the provided function and returns a Caster if it is a
// valid caster function.
//
// Supports interfaces:
//   - func(src Type) (dst Type)
//   - func(src Type) (dst Type, bool)
//   - func(src Type) (dst Type, error)
//   - func(src Type) (dst Type, bool, error)
func ParseCaster(fn any) (*Caster, error) {
	fnVal := reflect.ValueOf(fn)
	if fnVal.Kind() != reflect.Func {
		return nil, ErrCasterIsNotAFunction
	}

	fnType := fnVal.Type()
	if fnType.NumIn() != 1 || fnType.NumOut() == 0 || fnType.IsVariadic() {
		return nil, ErrIsNotACaster
	}

	src, dst := fnType.In(0), fnType.Out(0)
	if isDoublePointer(src) || isDoublePointer(dst) {
		return nil, ErrDoublePointer
	}

	alias, name := funcName(fnVal)
	caster := &Caster{
		Src:          src,
		Dst:          dst,
		PackageAlias: alias,
		Name:         name,
		fn:           fnVal,
	}

	switch fnType.NumOut() {
	default:
		return nil, ErrIsNotACaster

	case 1:
		return caster, nil

	case 2:
		last := fnType.Out(1)

		switch {
		default:
			return nil, ErrIsNotACaster
		case last.Kind() == reflect.Bool:
			caster.HasBool = true
		case last.Implements(errorType):
			caster.HasErr = true
		}

		return caster, nil

	case 3:
		tbool, terr := fnType.Out(1), fnType.Out(2)
		if tbool.Kind() != reflect.Bool || !terr.Implements(errorType) {
			return nil, ErrIsNotACaster
		}

		caster.HasBool = true
		caster.HasErr = true

		return caster, nil
	}
}

// Call converts raw into Src, invokes the caster and returns its Dst result.
func (c *Caster) Call(raw any) (reflect.Value, error) {
	in, err := c.input(raw)
	if err != nil {
		return reflect.Value{}, err
	}

	out := c.fn.Call([]reflect.Value{in})

	if c.HasErr {
		if err, _ := out[len(out)-1].Interface().(error); err != nil {
			return reflect.Value{}, err
		}
	}

	if c.HasBool && !out[1].Bool() {
		return reflect.Value{}, fmt.Errorf("%w: %s.%s(%v)", ErrCasterRejected, c.PackageAlias, c.Name, raw)
	}

	return out[0], nil
}

func (c *Caster) input(raw any) (reflect.Value, error) {
	if raw == nil {
		return reflect.Zero(c.Src), nil
	}

	rv := reflect.ValueOf(raw)
	if rv.Type().AssignableTo(c.Src) {
		return rv, nil
	}

	if primitive.FromReflectType(c.Src).IsValid() {
		return primitive.Coerce(raw, c.Src)
	}

	in := reflect.New(c.Src).Elem()
	if err := composite.Store(in, raw); err != nil {
		return reflect.Value{}, err
	}

	return in, nil
}

func isDoublePointer(t reflect.Type) bool {
	return t.Kind() == reflect.Pointer && t.Elem().Kind() == reflect.Pointer
}

func funcName(fnVal reflect.Value) (alias, name string) {
	fnPC := runtime.FuncForPC(fnVal.Pointer())
	if fnPC == nil {
		return "", ""
	}

	_, file := path.Split(fnPC.Name())
	alias, name, _ = strings.Cut(file, ".")

	return alias, name
}
