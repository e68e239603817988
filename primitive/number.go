package primitive

import (
	"errors"
	"fmt"
	"math"
	"reflect"
)

var ErrNumberRange = errors.New("number does not fit target type")

// CheckNumber fails with ErrNumberRange when converting the numeric value v
// to type to would change it: out of range values, negative values for
// unsigned targets and fractional values for integer targets. Values or
// targets that are not numbers pass.
func CheckNumber(v reflect.Value, to reflect.Type) error {
	if !v.IsValid() || to == nil {
		return nil
	}

	from, target := numberClass(v.Kind()), numberClass(to.Kind())
	if from == classNone || target == classNone {
		return nil
	}

	probe := reflect.New(to).Elem()

	var ok bool

	switch from {
	case classInt:
		n := v.Int()

		switch target {
		case classInt:
			ok = !probe.OverflowInt(n)
		case classUint:
			ok = n >= 0 && !probe.OverflowUint(uint64(n))
		default:
			ok = true
		}
	case classUint:
		n := v.Uint()

		switch target {
		case classInt:
			ok = n <= math.MaxInt64 && !probe.OverflowInt(int64(n))
		case classUint:
			ok = !probe.OverflowUint(n)
		default:
			ok = true
		}
	default:
		f := v.Float()

		switch target {
		case classInt:
			// -2^63 and 2^63 are exact in float64
			ok = f == math.Trunc(f) && f >= math.MinInt64 && f < -math.MinInt64 && !probe.OverflowInt(int64(f))
		case classUint:
			ok = f == math.Trunc(f) && f >= 0 && f < 2*-math.MinInt64 && !probe.OverflowUint(uint64(f))
		default:
			ok = !probe.OverflowFloat(f)
		}
	}

	if !ok {
		return fmt.Errorf("%w: %v does not fit %v", ErrNumberRange, v.Interface(), to)
	}

	return nil
}

type class int

const (
	classNone class = iota
	classInt
	classUint
	classFloat
)

func numberClass(k reflect.Kind) class {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return classInt
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return classUint
	case reflect.Float32, reflect.Float64:
		return classFloat
	default:
		return classNone
	}
}
