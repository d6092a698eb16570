// Package helpers provides utility functions for type conversions and numeric clamping.
//
// These helpers are used at the seams of dnscodes where flag values and
// library integers cross type widths (e.g., int to uint16). They prevent
// overflow and underflow by clamping values to valid ranges for the target
// type, and they build the reverse lookup tables for the registry packages.
package helpers

import "math"

// clampInt restricts v to the range [minVal, maxVal].
// Used internally for int-based clamping.
func clampInt(v, minVal, maxVal int) int {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// ClampIntToUint8 converts v to uint8 with clamping.
// Values below 0 become 0; values above math.MaxUint8 become math.MaxUint8.
func ClampIntToUint8(v int) uint8 {
	clamped := clampInt(v, 0, math.MaxUint8)
	return uint8(clamped) //nolint:gosec // clamped to valid range
}

// ClampIntToUint16 converts v to uint16 with clamping.
// Values below 0 become 0; values above math.MaxUint16 become math.MaxUint16.
func ClampIntToUint16(v int) uint16 {
	clamped := clampInt(v, 0, math.MaxUint16)
	return uint16(clamped) //nolint:gosec // clamped to valid range
}

// ReverseMap inverts a lookup table. When two keys share a value, which key
// the result holds is unspecified.
func ReverseMap[K, V comparable](m map[K]V) map[V]K {
	out := make(map[V]K, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}
