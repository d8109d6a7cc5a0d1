package infer

import (
	"fmt"
	"math"

	"github.com/siegeai/jtdinfer/jtdschema"
)

// NumType identifies one of the numeric types a JTD schema can name.
type NumType int

const (
	Int8 NumType = iota
	Uint8
	Int16
	Uint16
	Int32
	Uint32
	Float32
	Float64
)

var numTypeNames = map[string]NumType{
	"int8":    Int8,
	"uint8":   Uint8,
	"int16":   Int16,
	"uint16":  Uint16,
	"int32":   Int32,
	"uint32":  Uint32,
	"float32": Float32,
	"float64": Float64,
}

// ParseNumType resolves a numeric type by its JTD name.
func ParseNumType(name string) (NumType, error) {
	t, ok := numTypeNames[name]
	if !ok {
		return 0, fmt.Errorf("unknown number type %q", name)
	}
	return t, nil
}

func (t NumType) String() string {
	return string(t.SchemaType())
}

// SchemaType returns the JTD type name for t.
func (t NumType) SchemaType() jtdschema.Type {
	switch t {
	case Int8:
		return jtdschema.TypeInt8
	case Uint8:
		return jtdschema.TypeUint8
	case Int16:
		return jtdschema.TypeInt16
	case Uint16:
		return jtdschema.TypeUint16
	case Int32:
		return jtdschema.TypeInt32
	case Uint32:
		return jtdschema.TypeUint32
	case Float32:
		return jtdschema.TypeFloat32
	}
	return jtdschema.TypeFloat64
}

func (t NumType) bounds() (min, max float64) {
	switch t {
	case Int8:
		return math.MinInt8, math.MaxInt8
	case Uint8:
		return 0, math.MaxUint8
	case Int16:
		return math.MinInt16, math.MaxInt16
	case Uint16:
		return 0, math.MaxUint16
	case Int32:
		return math.MinInt32, math.MaxInt32
	case Uint32:
		return 0, math.MaxUint32
	}
	return math.Inf(-1), math.Inf(1)
}

// Join returns the least upper bound of two numeric types under the
// widening order. Integer kinds widen to the narrowest integer kind
// whose range covers both; mixing float and integer kinds, or two
// integer kinds with no common 32-bit cover, degrades to float64.
func Join(a, b NumType) NumType {
	if a == b {
		return a
	}
	if a == Float64 || b == Float64 || a == Float32 || b == Float32 {
		// float32 only joins with itself; everything else is float64
		return Float64
	}

	amin, amax := a.bounds()
	bmin, bmax := b.bounds()
	lo := math.Min(amin, bmin)
	hi := math.Max(amax, bmax)

	for _, t := range []NumType{Int8, Uint8, Int16, Uint16, Int32, Uint32} {
		tmin, tmax := t.bounds()
		if tmin <= lo && hi <= tmax {
			return t
		}
	}
	return Float64
}

// classifyInt picks the narrowest kind that represents n exactly,
// preferring unsigned kinds for non-negative values.
func classifyInt(n int64) NumType {
	switch {
	case n >= 0 && n <= math.MaxUint8:
		return Uint8
	case n >= math.MinInt8 && n <= math.MaxInt8:
		return Int8
	case n >= 0 && n <= math.MaxUint16:
		return Uint16
	case n >= math.MinInt16 && n <= math.MaxInt16:
		return Int16
	case n >= 0 && n <= math.MaxUint32:
		return Uint32
	case n >= math.MinInt32 && n <= math.MaxInt32:
		return Int32
	}
	return Float64
}

// classifyFloat picks float32 when the fractional literal round-trips
// without precision loss.
func classifyFloat(f float64) NumType {
	if float64(float32(f)) == f {
		return Float32
	}
	return Float64
}

func classify(isInt bool, i int64, f float64) NumType {
	if isInt {
		return classifyInt(i)
	}
	return classifyFloat(f)
}

// observedRange tracks the span of numbers seen at one position. The
// configured default kind is applied at emission time, winning only
// when it covers everything observed, so the result does not depend on
// example order.
type observedRange struct {
	min, max float64
	integer  bool
	exact32  bool
}

func newObservedRange(isInt bool, f float64) observedRange {
	return observedRange{
		min:     f,
		max:     f,
		integer: isInt,
		exact32: float64(float32(f)) == f,
	}
}

func (r *observedRange) extend(isInt bool, f float64) {
	r.min = math.Min(r.min, f)
	r.max = math.Max(r.max, f)
	r.integer = r.integer && isInt
	r.exact32 = r.exact32 && float64(float32(f)) == f
}

// coveredBy reports whether t can represent every number in the range.
func (r *observedRange) coveredBy(t NumType) bool {
	switch t {
	case Float64:
		return true
	case Float32:
		return r.exact32
	}
	if !r.integer {
		return false
	}
	min, max := t.bounds()
	return min <= r.min && r.max <= max
}
