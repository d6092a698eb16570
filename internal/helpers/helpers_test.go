package helpers_test

import (
	"math"
	"testing"

	"github.com/jroosing/dnscodes/internal/helpers"
	"github.com/stretchr/testify/assert"
)

func TestClampIntToUint8(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want uint8
	}{
		{name: "negative", in: -1, want: 0},
		{name: "zero", in: 0, want: 0},
		{name: "one", in: 1, want: 1},
		{name: "max", in: int(math.MaxUint8), want: math.MaxUint8},
		{name: "above-max", in: int(math.MaxUint8) + 1, want: math.MaxUint8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, helpers.ClampIntToUint8(tt.in))
		})
	}
}

func TestClampIntToUint16(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want uint16
	}{
		{name: "negative", in: -1, want: 0},
		{name: "zero", in: 0, want: 0},
		{name: "one", in: 1, want: 1},
		{name: "max", in: int(math.MaxUint16), want: math.MaxUint16},
		{name: "above-max", in: int(math.MaxUint16) + 1, want: math.MaxUint16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, helpers.ClampIntToUint16(tt.in))
		})
	}
}

func TestReverseMap(t *testing.T) {
	fwd := map[uint16]string{1: "ONE", 2: "TWO", 3: "THREE"}

	rev := helpers.ReverseMap(fwd)

	assert.Len(t, rev, len(fwd))
	for k, v := range fwd {
		assert.Equal(t, k, rev[v])
	}
}

func TestReverseMap_Empty(t *testing.T) {
	rev := helpers.ReverseMap(map[string]int{})
	assert.Empty(t, rev)
}
