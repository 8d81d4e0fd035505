package iceberg

import (
	"context"
	"encoding/json"
	"fmt"
	"path"

	"github.com/Spencerx/delta/storage"
)

// Table is the narrow read-only view of an Iceberg table that conversion
// needs. The single concrete implementation is backed by a loaded
// TableMetadata; tests substitute their own.
type Table interface {
	Location() string
	Schema() SchemaV2
	Properties() map[string]string
	Specs() map[int]PartitionSpec
	CurrentSpec() PartitionSpec
	CurrentSnapshot() *Snapshot
	SnapshotByID(id int64) *Snapshot
}

type metadataTable struct {
	meta *TableMetadata
}

// NewTable wraps already-loaded table metadata.
func NewTable(meta *TableMetadata) Table {
	return &metadataTable{meta: meta}
}

// OpenTable reads <tablePath>/metadata/metadata.json from the store.
func OpenTable(ctx context.Context, store storage.Storage, tablePath string) (Table, error) {
	metadataPath := path.Join(tablePath, "metadata", "metadata.json")

	r, err := store.Read(ctx, metadataPath)
	if err != nil {
		return nil, fmt.Errorf("opening metadata: %w", err)
	}
	defer r.Close()

	var meta TableMetadata
	if err := json.NewDecoder(r).Decode(&meta); err != nil {
		return nil, fmt.Errorf("decoding metadata: %w", err)
	}

	if meta.Location == "" {
		meta.Location = tablePath
	}

	return &metadataTable{meta: &meta}, nil
}

func (t *metadataTable) Location() string {
	return t.meta.Location
}

func (t *metadataTable) Schema() SchemaV2 {
	return t.meta.CurrentSchema()
}

func (t *metadataTable) Properties() map[string]string {
	return t.meta.Properties
}

func (t *metadataTable) Specs() map[int]PartitionSpec {
	specs := make(map[int]PartitionSpec, len(t.meta.PartitionSpecs))
	for _, s := range t.meta.PartitionSpecs {
		specs[s.SpecID] = s
	}
	return specs
}

func (t *metadataTable) CurrentSpec() PartitionSpec {
	for _, s := range t.meta.PartitionSpecs {
		if s.SpecID == t.meta.DefaultSpecID {
			return s
		}
	}
	return PartitionSpec{}
}

func (t *metadataTable) CurrentSnapshot() *Snapshot {
	return t.SnapshotByID(t.meta.CurrentSnapshotID)
}

func (t *metadataTable) SnapshotByID(id int64) *Snapshot {
	for _, s := range t.meta.Snapshots {
		if s.SnapshotID == id {
			return s
		}
	}
	return nil
}
