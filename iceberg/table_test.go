package iceberg

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Spencerx/delta/storage"
)

const sampleMetadata = `{
  "format-version": 2,
  "table-uuid": "9c12fd48-4c7b-49c2-9a0a-6f34f0a6a4a1",
  "location": "warehouse/db/events",
  "last-updated-ms": 1714000000000,
  "last-column-id": 3,
  "current-schema-id": 1,
  "schemas": [
    {"schema-id": 0, "fields": [
      {"id": 1, "name": "id", "type": "long", "required": true}
    ]},
    {"schema-id": 1, "fields": [
      {"id": 1, "name": "id", "type": "long", "required": true},
      {"id": 2, "name": "region", "type": "string"},
      {"id": 3, "name": "ts", "type": "timestamp"}
    ]}
  ],
  "partition-specs": [
    {"spec-id": 0, "fields": []},
    {"spec-id": 1, "fields": [
      {"source-id": 2, "field-id": 1000, "name": "region", "transform": "identity"}
    ]}
  ],
  "default-spec-id": 1,
  "properties": {"history.expire.max-snapshot-age-ms": "86400000"},
  "current-snapshot-id": 7,
  "snapshots": [
    {"snapshot-id": 7, "timestamp-ms": 1714000000000,
     "summary": {"total-data-files": "4", "total-files-size": "2048"}}
  ]
}`

func openSample(t *testing.T) Table {
	t.Helper()

	root := t.TempDir()
	metaDir := filepath.Join(root, "db", "events", "metadata")
	require.NoError(t, os.MkdirAll(metaDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(metaDir, "metadata.json"), []byte(sampleMetadata), 0644))

	table, err := OpenTable(context.Background(), storage.NewLocalStorage(root), "db/events")
	require.NoError(t, err)
	return table
}

func TestOpenTable(t *testing.T) {
	table := openSample(t)

	assert.Equal(t, "warehouse/db/events", table.Location())

	schema := table.Schema()
	assert.Equal(t, 1, schema.SchemaID)
	assert.Len(t, schema.Fields, 3)

	assert.Len(t, table.Specs(), 2)
	assert.Equal(t, 1, table.CurrentSpec().SpecID)

	assert.Equal(t, "86400000", table.Properties()[PropMaxSnapshotAge])
}

func TestSnapshotLookup(t *testing.T) {
	table := openSample(t)

	snap := table.CurrentSnapshot()
	require.NotNil(t, snap)
	assert.Equal(t, int64(7), snap.SnapshotID)
	assert.Equal(t, "4", snap.Summary[SummaryTotalDataFiles])

	assert.Nil(t, table.SnapshotByID(99))
}

func TestFieldByID(t *testing.T) {
	schema := SchemaV2{Fields: []Field{
		{ID: 1, Name: "id", Type: "long"},
		{ID: 2, Name: "address", Type: "struct", Fields: []Field{
			{ID: 3, Name: "city", Type: "string"},
		}},
	}}

	f, ok := schema.FieldByID(3)
	require.True(t, ok)
	assert.Equal(t, "city", f.Name)

	_, ok = schema.FieldByID(9)
	assert.False(t, ok)
}

func TestTransformPredicates(t *testing.T) {
	assert.True(t, IsBucket("bucket[16]"))
	assert.True(t, IsBucket("BUCKET[4]"))
	assert.False(t, IsBucket("identity"))

	assert.True(t, IsTruncate("truncate[8]"))
	assert.False(t, IsTruncate("bucket[8]"))

	assert.True(t, IsVoid("void"))
	assert.False(t, IsVoid("year"))
}
