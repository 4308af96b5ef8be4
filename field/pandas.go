package field

import (
	"encoding/json"
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"

	"github.com/arrowview/cellfmt/types"
)

// pandasMetadataKey is the schema-level metadata key under which
// pandas-written Arrow payloads embed their column type descriptors.
const pandasMetadataKey = "pandas"

type pandasColumn struct {
	Name       *string         `json:"name"`
	FieldName  string          `json:"field_name"`
	PandasType string          `json:"pandas_type"`
	NumpyType  string          `json:"numpy_type"`
	Metadata   json.RawMessage `json:"metadata"`
}

type pandasSchema struct {
	Columns []pandasColumn `json:"columns"`
}

// ParsePandasSchema extracts per-column type descriptors from the "pandas"
// schema metadata blob, keyed by Arrow field name. Returns an empty map
// when the key is absent; returns an error only for an unparsable blob.
func ParsePandasSchema(md arrow.Metadata) (map[string]types.Descriptor, error) {
	descs := make(map[string]types.Descriptor)
	blob, ok := md.GetValue(pandasMetadataKey)
	if !ok {
		return descs, nil
	}

	var ps pandasSchema
	if err := json.Unmarshal([]byte(blob), &ps); err != nil {
		return descs, fmt.Errorf("failed to parse pandas schema metadata: %w", err)
	}

	for _, col := range ps.Columns {
		desc := types.Descriptor{
			LogicalType: col.PandasType,
			StorageType: col.NumpyType,
		}
		if len(col.Metadata) > 0 {
			var meta types.DescriptorMeta
			// Column metadata varies by type; only the timezone key is
			// meaningful here and anything else is ignored.
			if err := json.Unmarshal(col.Metadata, &meta); err == nil && meta.Timezone != "" {
				desc.Meta = &meta
			}
		}
		descs[col.FieldName] = desc
	}
	return descs, nil
}
