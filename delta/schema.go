package delta

import "strings"

// StructField is a column of a Delta schema. Type is the Delta type string
// (e.g. "long", "string", "decimal(10,2)"); a "struct" field carries its
// children in Fields. PhysicalName is the stable identifier the column keeps
// across renames; it is assigned during conversion and never changes after.
type StructField struct {
	Name         string        `json:"name"`
	Type         string        `json:"type"`
	Nullable     bool          `json:"nullable"`
	PhysicalName string        `json:"physicalName,omitempty"`
	Fields       []StructField `json:"fields,omitempty"`
}

type StructType struct {
	Fields []StructField `json:"fields"`
}

// PathNames flattens the schema into (lower-cased dotted path, physical
// name) pairs for every field carrying a physical name. Lookups are
// case-insensitive on the logical path.
func (s StructType) PathNames() map[string]string {
	names := make(map[string]string)
	collectPathNames(s.Fields, "", names)
	return names
}

func collectPathNames(fields []StructField, prefix string, out map[string]string) {
	for _, f := range fields {
		p := strings.ToLower(f.Name)
		if prefix != "" {
			p = prefix + "." + p
		}
		if f.PhysicalName != "" {
			out[p] = f.PhysicalName
		}
		collectPathNames(f.Fields, p, out)
	}
}

// PriorSnapshot is the state of a previously converted table: its schema
// with physical names attached, and its table properties (which may carry
// sticky conversion markers).
type PriorSnapshot struct {
	Schema     StructType
	Properties map[string]string
}

// PhysicalNames returns the prior schema's path-to-physical-name mapping,
// or nil when there is no prior snapshot.
func (p *PriorSnapshot) PhysicalNames() map[string]string {
	if p == nil {
		return nil
	}
	return p.Schema.PathNames()
}

// Property reads a prior table property, tolerating a nil snapshot.
func (p *PriorSnapshot) Property(key string) string {
	if p == nil {
		return ""
	}
	return p.Properties[key]
}
