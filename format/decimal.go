package format

import (
	"math/big"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/arrowview/cellfmt/field"
)

// formatDecimal renders a fixed-point decimal from its unscaled integer
// representation and the field's scale. The unscaled value arrives either
// as a big integer or as the raw little-endian two's-complement byte
// buffer of the storage column. Trailing fractional zeros are trimmed and
// the separator is omitted when nothing remains after it.
func formatDecimal(value interface{}, meta *field.Meta) string {
	var unscaled *big.Int
	switch v := value.(type) {
	case *big.Int:
		unscaled = v
	case []byte:
		unscaled = bigIntFromLE(v)
	case int64:
		unscaled = big.NewInt(v)
	default:
		fallback("decimal", "decimal cell is not an unscaled integer: %T", value)
		return Stringify(value)
	}
	if unscaled == nil {
		return NA
	}

	scale := int32(0)
	if meta != nil && meta.Scale > 0 {
		scale = meta.Scale
	}
	return trimFraction(decimal.NewFromBigInt(unscaled, -scale).String())
}

func trimFraction(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// bigIntFromLE decodes a little-endian two's-complement buffer, the
// layout fixed-width decimal columns use for their unscaled digits.
func bigIntFromLE(buf []byte) *big.Int {
	if len(buf) == 0 {
		return new(big.Int)
	}
	be := make([]byte, len(buf))
	for i, b := range buf {
		be[len(buf)-1-i] = b
	}
	n := new(big.Int).SetBytes(be)
	if be[0]&0x80 != 0 {
		n.Sub(n, new(big.Int).Lsh(big.NewInt(1), uint(len(buf)*8)))
	}
	return n
}
