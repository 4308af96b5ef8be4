package format

import (
	"math/big"
	"testing"

	"github.com/arrowview/cellfmt/field"
	"github.com/arrowview/cellfmt/types"
)

var decimalDesc = types.Descriptor{LogicalType: "object", StorageType: "decimal"}

func scaleMeta(scale int32) *field.Meta {
	return &field.Meta{Scale: scale}
}

func TestFormatDecimal(t *testing.T) {
	tests := []struct {
		name     string
		unscaled int64
		scale    int32
		want     string
	}{
		{"whole and fraction", 123450, 3, "123.45"},
		{"negative zero scale", -5, 0, "-5"},
		{"trailing zeros trimmed", 100, 2, "1"},
		{"leading zero whole part", 5, 3, "0.005"},
		{"negative fraction", -5, 1, "-0.5"},
		{"zero", 0, 4, "0"},
		{"scale exceeds digits", 7, 5, "0.00007"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Format(big.NewInt(tt.unscaled), decimalDesc, scaleMeta(tt.scale))
			if got != tt.want {
				t.Errorf("decimal %d scale %d = %q, want %q", tt.unscaled, tt.scale, got, tt.want)
			}
		})
	}
}

func TestFormatDecimalFromBytes(t *testing.T) {
	// 123450 as a 16-byte little-endian two's-complement buffer.
	pos := make([]byte, 16)
	pos[0], pos[1], pos[2] = 0x3A, 0xE2, 0x01
	if got := Format(pos, decimalDesc, scaleMeta(3)); got != "123.45" {
		t.Errorf("positive buffer = %q, want 123.45", got)
	}

	// -5 in the same layout: all bits set except the low byte.
	neg := make([]byte, 16)
	for i := range neg {
		neg[i] = 0xFF
	}
	neg[0] = 0xFB
	if got := Format(neg, decimalDesc, scaleMeta(0)); got != "-5" {
		t.Errorf("negative buffer = %q, want -5", got)
	}
}

func TestFormatDecimalBigMagnitude(t *testing.T) {
	// 10^30 + 1 at scale 10 keeps every digit; floats could not.
	unscaled, _ := new(big.Int).SetString("1000000000000000000000000000001", 10)
	got := Format(unscaled, decimalDesc, scaleMeta(10))
	if got != "100000000000000000000.0000000001" {
		t.Errorf("big decimal = %q", got)
	}
}

func TestFormatDecimalFallbacks(t *testing.T) {
	if got := Format("garbage", decimalDesc, scaleMeta(2)); got != "garbage" {
		t.Errorf("non-integer decimal cell = %q", got)
	}
	// Missing metadata means scale zero.
	if got := Format(big.NewInt(42), decimalDesc, nil); got != "42" {
		t.Errorf("decimal without metadata = %q, want 42", got)
	}
}
