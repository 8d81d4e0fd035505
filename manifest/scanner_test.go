package manifest

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Spencerx/delta/iceberg"
	"github.com/Spencerx/delta/storage"
)

func writeManifest(t *testing.T, root, name string, entries []iceberg.ManifestEntry) {
	t.Helper()

	dir := filepath.Join(root, "db", "events", "manifests")
	require.NoError(t, os.MkdirAll(dir, 0755))

	data, err := json.Marshal(entries)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0644))
}

func TestScannerAggregatesManifests(t *testing.T) {
	root := t.TempDir()

	writeManifest(t, root, "manifest_1.avro", []iceberg.ManifestEntry{
		{Status: iceberg.EntryStatusAdded, DataFile: iceberg.DataFile{
			FilePath: "data/a.parquet", FileSizeBytes: 100, RecordCount: 10,
		}},
		{Status: iceberg.EntryStatusExisting, DataFile: iceberg.DataFile{
			FilePath: "data/b.parquet", FileSizeBytes: 250, RecordCount: 25,
		}},
	})
	writeManifest(t, root, "manifest_2.avro", []iceberg.ManifestEntry{
		{Status: iceberg.EntryStatusDeleted, DataFile: iceberg.DataFile{
			FilePath: "data/old.parquet", FileSizeBytes: 999,
		}},
	})

	s := NewTableScanner(storage.NewLocalStorage(root), "db/events")
	ctx := context.Background()

	n, err := s.NumFiles(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n, "deleted entries do not count")

	size, err := s.SizeInBytes(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(350), size)
}

func TestScannerFallsBackToParquetFooters(t *testing.T) {
	root := t.TempDir()
	dataDir := filepath.Join(root, "db", "events", "data")
	require.NoError(t, os.MkdirAll(dataDir, 0755))

	type row struct {
		ID int64 `parquet:"id"`
	}

	f, err := os.Create(filepath.Join(dataDir, "part-0.parquet"))
	require.NoError(t, err)
	w := parquet.NewGenericWriter[row](f)
	_, err = w.Write([]row{{ID: 1}, {ID: 2}, {ID: 3}})
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, f.Close())

	// a sidecar that is not a data file must be ignored
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "_SUCCESS"), nil, 0644))

	s := NewTableScanner(storage.NewLocalStorage(root), "db/events")
	ctx := context.Background()

	n, err := s.NumFiles(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	size, err := s.SizeInBytes(ctx)
	require.NoError(t, err)
	assert.Greater(t, size, int64(0))
}

func TestScannerEmptyTable(t *testing.T) {
	s := NewTableScanner(storage.NewLocalStorage(t.TempDir()), "db/events")
	ctx := context.Background()

	n, err := s.NumFiles(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	size, err := s.SizeInBytes(ctx)
	require.NoError(t, err)
	assert.Zero(t, size)
}
