// SPDX-License-Identifier: EPL-2.0

package audio

import "math"

// Fixed-point scaling follows one rule in both directions: an N-bit signed
// integer maps onto [-1, 1) by dividing by 2^(N-1), and a normalized float
// maps back by multiplying by 2^(N-1) with rounding and clamping to the
// representable range. Round-tripping an integer through float32 and back
// reproduces it within one quantization step.

const (
	scale8  = 1 << 7
	scale16 = 1 << 15
	scale24 = 1 << 23
	scale32 = 1 << 31
)

// I8ToF32 converts an 8-bit fixed-point sample to a normalized float32.
func I8ToF32(v int8) float32 {
	return clampUnit(float32(v) / scale8)
}

// I16ToF32 converts a 16-bit fixed-point sample to a normalized float32.
func I16ToF32(v int16) float32 {
	return clampUnit(float32(v) / scale16)
}

// I24ToF32 converts a 24-bit fixed-point sample (widened to 32 bits) to a
// normalized float32.
func I24ToF32(v Int24) float32 {
	return clampUnit(float32(v) / scale24)
}

// I32ToF32 converts a 32-bit fixed-point sample to a normalized float32.
func I32ToF32(v int32) float32 {
	return clampUnit(float32(v) / scale32)
}

// F32ToI8 quantizes a normalized float32 to an 8-bit fixed-point sample.
func F32ToI8(x float32) int8 {
	v := math.Round(float64(x) * scale8)
	if v > math.MaxInt8 {
		return math.MaxInt8
	}
	if v < math.MinInt8 {
		return math.MinInt8
	}
	return int8(v)
}

// F32ToI16 quantizes a normalized float32 to a 16-bit fixed-point sample.
func F32ToI16(x float32) int16 {
	v := math.Round(float64(x) * scale16)
	if v > math.MaxInt16 {
		return math.MaxInt16
	}
	if v < math.MinInt16 {
		return math.MinInt16
	}
	return int16(v)
}

// F32ToI24 quantizes a normalized float32 to a 24-bit fixed-point sample
// widened to 32 bits.
func F32ToI24(x float32) Int24 {
	v := math.Round(float64(x) * scale24)
	if v > scale24-1 {
		return scale24 - 1
	}
	if v < -scale24 {
		return -scale24
	}
	return Int24(v)
}

// F32ToI32 quantizes a normalized float32 to a 32-bit fixed-point sample.
func F32ToI32(x float32) int32 {
	v := math.Round(float64(x) * scale32)
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	if v < math.MinInt32 {
		return math.MinInt32
	}
	return int32(v)
}

// ToF32 converts any supported sample representation to the canonical
// normalized float32 form. float32 input passes through unchanged.
func ToF32[S Sample](v S) float32 {
	switch v := any(v).(type) {
	case float32:
		return v
	case int8:
		return I8ToF32(v)
	case int16:
		return I16ToF32(v)
	case Int24:
		return I24ToF32(v)
	case int32:
		return I32ToF32(v)
	}
	// Sample is a closed set; no other case exists.
	return 0
}

// FromF32 converts a canonical normalized float32 to the target sample
// representation. The conversion is total: out-of-range input is clamped,
// never rejected.
func FromF32[S Sample](x float32) S {
	var out S
	switch p := any(&out).(type) {
	case *float32:
		*p = x
	case *int8:
		*p = F32ToI8(x)
	case *int16:
		*p = F32ToI16(x)
	case *Int24:
		*p = F32ToI24(x)
	case *int32:
		*p = F32ToI32(x)
	}
	return out
}

// ConvertSample converts between any two supported sample representations
// through the canonical float32 form.
func ConvertSample[S, D Sample](v S) D {
	return FromF32[D](ToF32(v))
}

func clampUnit(x float32) float32 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}
