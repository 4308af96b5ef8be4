package format

import (
	"encoding/json"
	"math/big"

	"github.com/arrowview/cellfmt/field"
)

// formatObject serializes a nested cell (struct, list, or anything the
// other families do not claim) to JSON text. Big-integer leaves are
// coerced to ordinary numbers first. For compound-typed fields, null
// leaves are dropped rather than serialized, so column-wise null padding
// introduced upstream does not leak into the output.
func formatObject(value interface{}, meta *field.Meta) string {
	dropNulls := meta != nil && meta.Compound
	b, err := json.Marshal(sanitize(value, dropNulls))
	if err != nil {
		fallback("object", "cell is not JSON-serializable: %v", err)
		return Stringify(value)
	}
	return string(b)
}

func sanitize(value interface{}, dropNulls bool) interface{} {
	switch v := value.(type) {
	case *big.Int:
		f, _ := new(big.Float).SetInt(v).Float64()
		return f
	case map[string]interface{}:
		out := make(map[string]interface{}, len(v))
		for k, item := range v {
			if item == nil && dropNulls {
				continue
			}
			out[k] = sanitize(item, dropNulls)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(v))
		for i, item := range v {
			out[i] = sanitize(item, dropNulls)
		}
		return out
	default:
		return v
	}
}
