package color

import "math"

// encodeSteps is the resolution of the linear-to-sRGB table. 12 bits keep
// every 8-bit output within one step of the exact transfer function.
const encodeSteps = 4096

// encodeTable maps a quantized linear value to an sRGB byte.
var encodeTable [encodeSteps]uint8

func init() {
	for i := range encodeTable {
		encodeTable[i] = quantize(encode(float64(i) / (encodeSteps - 1)))
	}
}

// decode is the sRGB electro-optical transfer function.
func decode(s float64) float64 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

// encode is the inverse of decode.
func encode(l float64) float64 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*math.Pow(l, 1/2.4) - 0.055
}

// quantize maps v in [0,1] to a byte, rounding to nearest.
func quantize(v float64) uint8 {
	switch {
	case v <= 0 || math.IsNaN(v):
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}

// Linear returns the linear-light value of an sRGB component in [0,1].
func Linear(s float32) float32 {
	return float32(decode(float64(s)))
}

// Byte converts a float component to a byte with clamping.
func Byte(v float32) uint8 {
	return quantize(float64(v))
}

// EncodeByte returns the sRGB byte closest to linear value l. Values outside
// [0,1] are clamped.
func EncodeByte(l float32) uint8 {
	if !(l > 0) {
		return 0
	}
	if l >= 1 {
		return 255
	}
	return encodeTable[int(l*(encodeSteps-1)+0.5)]
}

// Bytes quantizes every component of c.
func (c ColorF32) Bytes() ColorU8 {
	return ColorU8{R: Byte(c.R), G: Byte(c.G), B: Byte(c.B), A: Byte(c.A)}
}

// ToLinear converts the colour channels of an sRGB colour to linear light.
// Alpha is left as is.
func (c ColorF32) ToLinear() ColorF32 {
	return ColorF32{R: Linear(c.R), G: Linear(c.G), B: Linear(c.B), A: c.A}
}
