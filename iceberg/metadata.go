package iceberg

// Well-known table property keys.
const (
	// PropMaxSnapshotAge controls snapshot expiry, in milliseconds.
	PropMaxSnapshotAge = "history.expire.max-snapshot-age-ms"

	// PropNameMappingDefault carries an externally supplied column-id
	// mapping. Tables using it assign file-level column ids through the
	// mapping instead of through the schema.
	PropNameMappingDefault = "schema.name-mapping.default"
)

// Snapshot summary counter keys.
const (
	SummaryTotalDataFiles = "total-data-files"
	SummaryTotalFilesSize = "total-files-size"
)

type PartitionSpec struct {
	SpecID int              `json:"spec-id"`
	Fields []PartitionField `json:"fields"`
}

type PartitionField struct {
	SourceID  int    `json:"source-id"` // ID from the schema
	FieldID   int    `json:"field-id"`  // Unique ID for partition field
	Name      string `json:"name"`      // Partition name (e.g. "year", "month", "day")
	Transform string `json:"transform"` // identity, bucket[N], truncate[N], year, ...
}

type TableMetadata struct {
	FormatVersion     int               `json:"format-version"`
	TableUUID         string            `json:"table-uuid"`
	Location          string            `json:"location"`
	LastUpdated       int64             `json:"last-updated-ms"`
	LastColumnID      int               `json:"last-column-id"`
	SchemaID          int               `json:"current-schema-id"`
	Schemas           []SchemaV2        `json:"schemas"`
	PartitionSpecs    []PartitionSpec   `json:"partition-specs"`
	DefaultSpecID     int               `json:"default-spec-id"`
	Properties        map[string]string `json:"properties"`
	CurrentSnapshotID int64             `json:"current-snapshot-id"`
	Snapshots         []*Snapshot       `json:"snapshots"`
}

// CurrentSchema returns the schema whose id matches current-schema-id,
// falling back to the first registered schema.
func (m *TableMetadata) CurrentSchema() SchemaV2 {
	for _, s := range m.Schemas {
		if s.SchemaID == m.SchemaID {
			return s
		}
	}
	if len(m.Schemas) > 0 {
		return m.Schemas[0]
	}
	return SchemaV2{}
}

type SchemaV2 struct {
	SchemaID int     `json:"schema-id"`
	Fields   []Field `json:"fields"`
}

// FieldByID walks the field tree looking for the given column id.
func (s SchemaV2) FieldByID(id int) (Field, bool) {
	return fieldByID(s.Fields, id)
}

func fieldByID(fields []Field, id int) (Field, bool) {
	for _, f := range fields {
		if f.ID == id {
			return f, true
		}
		if child, ok := fieldByID(f.Fields, id); ok {
			return child, true
		}
	}
	return Field{}, false
}

// Field is a named column. Type is the Iceberg type string (e.g. "long",
// "string", "decimal(10, 2)"); a "struct" field carries its children in
// Fields.
type Field struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	Required bool    `json:"required"`
	Fields   []Field `json:"fields,omitempty"`
}

type Snapshot struct {
	SnapshotID       int64             `json:"snapshot-id"`
	ParentSnapshotID int64             `json:"parent-snapshot-id"`
	SequenceNumber   int64             `json:"sequence-number"`
	TimestampMs      int64             `json:"timestamp-ms"`
	ManifestList     string            `json:"manifest-list"`
	Summary          map[string]string `json:"summary"`
}
