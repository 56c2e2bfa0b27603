package hearth

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ColumnLayoutVersion tags which shape of column configuration a persisted
// document carries. Every version ever written stays readable: decoding
// yields a value tagged with the version found on disk, never a silent
// upgrade to the newest shape. Callers migrate forward explicitly, which
// keeps a config written by an old build intact when it passes through a
// newer one and back.
type ColumnLayoutVersion string

const (
	// LayoutV1 is the original fixed three-column shape.
	LayoutV1 ColumnLayoutVersion = "V1"

	// LayoutV2 replaced the fixed widths with an ordered column list.
	LayoutV2 ColumnLayoutVersion = "V2"

	// LayoutV3 split the single list into one list per view.
	LayoutV3 ColumnLayoutVersion = "V3"
)

// Column is one column's settings in a V2 or V3 layout. Width is nil when
// the column auto-sizes.
type Column struct {
	Key    string `yaml:"key"`
	Width  *int   `yaml:"width"`
	Hidden bool   `yaml:"hidden"`
}

// ColumnWidths is the V1 payload: three named widths. All three are
// required when decoding.
type ColumnWidths struct {
	LocalVersionWidth  int `yaml:"local_version_width"`
	RemoteVersionWidth int `yaml:"remote_version_width"`
	StatusWidth        int `yaml:"status_width"`
}

// ColumnList is the V2 payload: a single ordered column list.
type ColumnList struct {
	Columns []Column `yaml:"columns"`
}

// ColumnViews is the V3 payload: one column list per view. AuraColumns
// arrived after the other two, so documents written before it exists decode
// with an empty list rather than failing.
type ColumnViews struct {
	MyAddonsColumns []Column `yaml:"my_addons_columns"`
	CatalogColumns  []Column `yaml:"catalog_columns"`
	AuraColumns     []Column `yaml:"aura_columns"`
}

// ColumnConfig is the tagged union of every column layout version. Exactly
// one payload is set, matching Version. Values of different versions are
// never equal, even when their effective widths agree.
//
// On disk a ColumnConfig is a mapping with a single version-tag key:
//
//	column_config:
//	  V1:
//	    local_version_width: 150
//	    remote_version_width: 150
//	    status_width: 85
type ColumnConfig struct {
	Version ColumnLayoutVersion
	V1      *ColumnWidths
	V2      *ColumnList
	V3      *ColumnViews
}

// DefaultColumnConfig returns the V1 layout with the original default
// widths.
func DefaultColumnConfig() ColumnConfig {
	return ColumnConfig{
		Version: LayoutV1,
		V1: &ColumnWidths{
			LocalVersionWidth:  150,
			RemoteVersionWidth: 150,
			StatusWidth:        85,
		},
	}
}

// UnmarshalYAML decodes a version-tagged column layout. Unknown version
// tags, documents that are not single-key mappings, and recognized versions
// missing required fields all fail with a SchemaError.
func (c *ColumnConfig) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return NewSchemaShapeError("column layout must be a mapping carrying a version tag")
	}
	if len(node.Content) != 2 {
		return NewSchemaShapeError("column layout must carry exactly one version tag")
	}

	tagNode, payload := node.Content[0], node.Content[1]
	var tag string
	if err := tagNode.Decode(&tag); err != nil {
		return NewSchemaShapeError("column layout version tag is not a scalar")
	}

	switch ColumnLayoutVersion(tag) {
	case LayoutV1:
		if err := requirePayloadFields(payload, tag,
			"local_version_width", "remote_version_width", "status_width"); err != nil {
			return err
		}
		var widths ColumnWidths
		if err := payload.Decode(&widths); err != nil {
			return NewSchemaDecodeError(tag, err)
		}
		*c = ColumnConfig{Version: LayoutV1, V1: &widths}

	case LayoutV2:
		if err := requirePayloadFields(payload, tag, "columns"); err != nil {
			return err
		}
		var list ColumnList
		if err := payload.Decode(&list); err != nil {
			return NewSchemaDecodeError(tag, err)
		}
		*c = ColumnConfig{Version: LayoutV2, V2: &list}

	case LayoutV3:
		if err := requirePayloadFields(payload, tag,
			"my_addons_columns", "catalog_columns"); err != nil {
			return err
		}
		var views ColumnViews
		if err := payload.Decode(&views); err != nil {
			return NewSchemaDecodeError(tag, err)
		}
		if views.AuraColumns == nil {
			views.AuraColumns = []Column{}
		}
		*c = ColumnConfig{Version: LayoutV3, V3: &views}

	default:
		return NewUnknownSchemaVersionError(tag)
	}
	return nil
}

// MarshalYAML writes the single-key tagged mapping for the value's version.
// A ColumnConfig that carries no recognized version is a programming error,
// not persisted-data trouble, and fails marshaling.
func (c ColumnConfig) MarshalYAML() (any, error) {
	switch c.Version {
	case LayoutV1:
		if c.V1 == nil {
			return nil, fmt.Errorf("column layout tagged V1 has no payload")
		}
		return map[string]*ColumnWidths{string(LayoutV1): c.V1}, nil
	case LayoutV2:
		if c.V2 == nil {
			return nil, fmt.Errorf("column layout tagged V2 has no payload")
		}
		return map[string]*ColumnList{string(LayoutV2): c.V2}, nil
	case LayoutV3:
		if c.V3 == nil {
			return nil, fmt.Errorf("column layout tagged V3 has no payload")
		}
		return map[string]*ColumnViews{string(LayoutV3): c.V3}, nil
	default:
		return nil, fmt.Errorf("column layout has unrecognized version %q", string(c.Version))
	}
}

// requirePayloadFields checks that a version payload is a mapping naming
// every required field. Optional fields introduced later in a version's life
// are not listed here and default instead.
func requirePayloadFields(payload *yaml.Node, version string, fields ...string) error {
	if payload.Kind != yaml.MappingNode {
		return &SchemaError{Version: version, Reason: "payload must be a mapping"}
	}
	present := make(map[string]bool, len(payload.Content)/2)
	for i := 0; i+1 < len(payload.Content); i += 2 {
		present[payload.Content[i].Value] = true
	}
	for _, field := range fields {
		if !present[field] {
			return NewMissingSchemaFieldError(version, field)
		}
	}
	return nil
}
