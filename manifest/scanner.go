package manifest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/parquet-go/parquet-go"

	"github.com/Spencerx/delta/iceberg"
	"github.com/Spencerx/delta/storage"
)

// Scanner aggregates file-level counters for a table. The resolver uses it
// only when the source's snapshot summary lacks the totals.
type Scanner interface {
	NumFiles(ctx context.Context) (int64, error)
	SizeInBytes(ctx context.Context) (int64, error)
}

// TableScanner reads the table's manifest entries; when the table carries
// no manifests it falls back to listing the data directory and opening each
// parquet footer.
type TableScanner struct {
	store     storage.Storage
	tablePath string
}

func NewTableScanner(store storage.Storage, tablePath string) *TableScanner {
	return &TableScanner{store: store, tablePath: tablePath}
}

func (s *TableScanner) NumFiles(ctx context.Context) (int64, error) {
	files, _, err := s.aggregate(ctx)
	return files, err
}

func (s *TableScanner) SizeInBytes(ctx context.Context) (int64, error) {
	_, size, err := s.aggregate(ctx)
	return size, err
}

func (s *TableScanner) aggregate(ctx context.Context) (int64, int64, error) {
	manifests, err := s.store.List(ctx, path.Join(s.tablePath, "manifests"))
	if err != nil {
		return 0, 0, fmt.Errorf("listing manifests: %w", err)
	}

	if len(manifests) == 0 {
		return s.scanDataFiles(ctx)
	}

	var numFiles, totalBytes int64
	for _, name := range manifests {
		entries, err := s.readManifest(ctx, name)
		if err != nil {
			return 0, 0, err
		}
		for _, e := range entries {
			if e.Status == iceberg.EntryStatusDeleted {
				continue
			}
			numFiles++
			totalBytes += e.DataFile.FileSizeBytes
		}
	}

	return numFiles, totalBytes, nil
}

func (s *TableScanner) readManifest(ctx context.Context, name string) ([]iceberg.ManifestEntry, error) {
	r, err := s.store.Read(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("opening manifest %s: %w", name, err)
	}
	defer r.Close()

	var entries []iceberg.ManifestEntry
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decoding manifest %s: %w", name, err)
	}

	return entries, nil
}

func (s *TableScanner) scanDataFiles(ctx context.Context) (int64, int64, error) {
	files, err := s.store.List(ctx, path.Join(s.tablePath, "data"))
	if err != nil {
		return 0, 0, fmt.Errorf("listing data files: %w", err)
	}

	var numFiles, totalBytes int64
	for _, name := range files {
		if !strings.HasSuffix(name, ".parquet") {
			continue
		}

		size, err := s.parquetFileSize(ctx, name)
		if err != nil {
			return 0, 0, err
		}

		numFiles++
		totalBytes += size
	}

	return numFiles, totalBytes, nil
}

func (s *TableScanner) parquetFileSize(ctx context.Context, name string) (int64, error) {
	r, err := s.store.Read(ctx, name)
	if err != nil {
		return 0, fmt.Errorf("opening data file %s: %w", name, err)
	}
	defer r.Close()

	buf := storage.NewBuffer()
	if _, err := io.Copy(buf, r); err != nil {
		return 0, fmt.Errorf("reading data file %s: %w", name, err)
	}

	pf, err := parquet.OpenFile(buf.Reader(), buf.Size())
	if err != nil {
		return 0, fmt.Errorf("opening parquet footer %s: %w", name, err)
	}

	return pf.Size(), nil
}
