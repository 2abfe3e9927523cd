package jsonconv

import (
	"encoding/json"
	"strconv"

	"github.com/jaxydog/ochre/convert"
)

// The sized numeric converters are input-mappings over a Number leaf, so a
// bad literal is attributed to the mapping half while a non-number document
// node is attributed to the conversion half.

func newSigned[T int | int8 | int16 | int32 | int64](bits int) Converter[T] {
	return convert.MapInput(NewNumber(),
		func(n json.Number) (T, error) {
			v, err := strconv.ParseInt(n.String(), 10, bits)
			if err != nil {
				return 0, err
			}
			return T(v), nil
		},
		func(v T) (json.Number, error) {
			return json.Number(strconv.FormatInt(int64(v), 10)), nil
		},
	)
}

func newFloat[T float32 | float64](bits int) Converter[T] {
	return convert.MapInput(NewNumber(),
		func(n json.Number) (T, error) {
			v, err := strconv.ParseFloat(n.String(), bits)
			if err != nil {
				return 0, err
			}
			return T(v), nil
		},
		func(v T) (json.Number, error) {
			return json.Number(strconv.FormatFloat(float64(v), 'g', -1, bits)), nil
		},
	)
}

// NewInt returns a fresh converter for the platform int type.
func NewInt() Converter[int] { return newSigned[int](strconv.IntSize) }

// NewInt8 returns a fresh int8 converter.
func NewInt8() Converter[int8] { return newSigned[int8](8) }

// NewInt16 returns a fresh int16 converter.
func NewInt16() Converter[int16] { return newSigned[int16](16) }

// NewInt32 returns a fresh int32 converter.
func NewInt32() Converter[int32] { return newSigned[int32](32) }

// NewInt64 returns a fresh int64 converter.
func NewInt64() Converter[int64] { return newSigned[int64](64) }

// NewFloat32 returns a fresh float32 converter.
func NewFloat32() Converter[float32] { return newFloat[float32](32) }

// NewFloat64 returns a fresh float64 converter.
func NewFloat64() Converter[float64] { return newFloat[float64](64) }

// Shared numeric converters.
var (
	Int     = NewInt()
	Int8    = NewInt8()
	Int16   = NewInt16()
	Int32   = NewInt32()
	Int64   = NewInt64()
	Float32 = NewFloat32()
	Float64 = NewFloat64()
)
