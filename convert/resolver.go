package convert

import (
	"context"
	"strconv"
	"sync"

	"github.com/google/uuid"

	"github.com/Spencerx/delta/delta"
	"github.com/Spencerx/delta/iceberg"
	"github.com/Spencerx/delta/manifest"
)

// SourceFormat tags conversion plans produced from Iceberg tables.
const SourceFormat = "iceberg"

// Config holds the conversion flags. Each flag may additionally be forced
// on by a sticky marker from a prior conversion; NewResolver applies that
// merge once, at construction.
type Config struct {
	// PartitionEvolution accepts tables with multiple partition layouts and
	// converts using the current one.
	PartitionEvolution bool

	// BucketPartition accepts bucket-partitioned layouts by treating them
	// as non-partitioning.
	BucketPartition bool

	// CastTimeType widens time-of-day columns to timestamp.
	CastTimeType bool

	// CollectStats asks the surrounding command to compute per-file
	// statistics after conversion; the resolver only records it.
	CollectStats bool
}

// Resolver derives a conversion plan from a read-only Iceberg table handle
// and an optional prior snapshot of the converted table. Every derivation
// is a pure function of the construction inputs, computed at most once.
type Resolver struct {
	table iceberg.Table
	prior *delta.PriorSnapshot
	cfg   Config
	files manifest.Scanner

	specOnce sync.Once
	spec     iceberg.PartitionSpec
	specErr  error

	schemaOnce  sync.Once
	tableSchema delta.StructType
	partSchema  delta.StructType
	schemaErr   error

	propsOnce sync.Once
	props     map[string]string

	numFilesOnce sync.Once
	numFiles     int64
	numFilesErr  error

	sizeOnce  sync.Once
	sizeBytes int64
	sizeErr   error
}

// NewResolver builds a resolver. prior may be nil for a first conversion;
// files is consulted only when the source's snapshot summary lacks totals.
func NewResolver(table iceberg.Table, prior *delta.PriorSnapshot, cfg Config, files manifest.Scanner) *Resolver {
	if prior.Property(delta.PropCastTimeType) == "true" {
		cfg.CastTimeType = true
	}
	if prior.Property(delta.PropBucketPartitionEnabled) == "true" {
		cfg.BucketPartition = true
	}

	return &Resolver{
		table: table,
		prior: prior,
		cfg:   cfg,
		files: files,
	}
}

// Config returns the effective flags after the sticky-marker merge.
func (r *Resolver) Config() Config {
	return r.cfg
}

// PartitionSpec returns the single partition layout chosen for the
// conversion.
func (r *Resolver) PartitionSpec() (iceberg.PartitionSpec, error) {
	r.specOnce.Do(func() {
		r.spec, r.specErr = selectSpec(r.table, r.cfg)
	})
	return r.spec, r.specErr
}

// TableSchema returns the merged data and partition schema with physical
// names assigned.
func (r *Resolver) TableSchema() (delta.StructType, error) {
	r.resolveSchemas()
	return r.tableSchema, r.schemaErr
}

// PartitionSchema returns the typed partition columns of the chosen spec.
func (r *Resolver) PartitionSchema() (delta.StructType, error) {
	r.resolveSchemas()
	return r.partSchema, r.schemaErr
}

func (r *Resolver) resolveSchemas() {
	r.schemaOnce.Do(func() {
		spec, err := r.PartitionSpec()
		if err != nil {
			r.schemaErr = err
			return
		}
		r.tableSchema, r.partSchema, r.schemaErr = buildSchemas(r.table, spec, r.prior, r.cfg)
	})
}

// Properties returns the derived table properties.
func (r *Resolver) Properties() map[string]string {
	r.propsOnce.Do(func() {
		r.props = deriveProperties(r.table, r.cfg)
	})
	return r.props
}

// NumFiles reads the total data file count from the current snapshot
// summary, falling back to the file-manifest scanner.
func (r *Resolver) NumFiles(ctx context.Context) (int64, error) {
	r.numFilesOnce.Do(func() {
		if n, ok := r.summaryCounter(iceberg.SummaryTotalDataFiles); ok {
			r.numFiles = n
			return
		}
		r.numFiles, r.numFilesErr = r.files.NumFiles(ctx)
	})
	return r.numFiles, r.numFilesErr
}

// SizeInBytes reads the total data size from the current snapshot summary,
// falling back to the file-manifest scanner.
func (r *Resolver) SizeInBytes(ctx context.Context) (int64, error) {
	r.sizeOnce.Do(func() {
		if n, ok := r.summaryCounter(iceberg.SummaryTotalFilesSize); ok {
			r.sizeBytes = n
			return
		}
		r.sizeBytes, r.sizeErr = r.files.SizeInBytes(ctx)
	})
	return r.sizeBytes, r.sizeErr
}

func (r *Resolver) summaryCounter(key string) (int64, bool) {
	snap := r.table.CurrentSnapshot()
	if snap == nil {
		return 0, false
	}
	v, ok := snap.Summary[key]
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Validate checks that the source table's feature usage is representable.
func (r *Resolver) Validate() error {
	merged, err := r.TableSchema()
	if err != nil {
		return err
	}
	return validate(r.table, merged, r.cfg)
}

// Plan is the validated output of a resolution, consumed by the
// surrounding conversion command.
type Plan struct {
	TableID         string                `json:"tableId"`
	Format          string                `json:"format"`
	TableSchema     delta.StructType      `json:"tableSchema"`
	PartitionSchema delta.StructType      `json:"partitionSchema"`
	PartitionSpec   iceberg.PartitionSpec `json:"partitionSpec"`
	Properties      map[string]string     `json:"properties"`
	NumFiles        int64                 `json:"numFiles"`
	SizeInBytes     int64                 `json:"sizeInBytes"`
}

// Resolve runs all derivations and validation and assembles the plan.
func (r *Resolver) Resolve(ctx context.Context) (*Plan, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	spec, err := r.PartitionSpec()
	if err != nil {
		return nil, err
	}
	tableSchema, err := r.TableSchema()
	if err != nil {
		return nil, err
	}
	partSchema, err := r.PartitionSchema()
	if err != nil {
		return nil, err
	}
	numFiles, err := r.NumFiles(ctx)
	if err != nil {
		return nil, err
	}
	sizeInBytes, err := r.SizeInBytes(ctx)
	if err != nil {
		return nil, err
	}

	return &Plan{
		TableID:         uuid.New().String(),
		Format:          SourceFormat,
		TableSchema:     tableSchema,
		PartitionSchema: partSchema,
		PartitionSpec:   spec,
		Properties:      r.Properties(),
		NumFiles:        numFiles,
		SizeInBytes:     sizeInBytes,
	}, nil
}
