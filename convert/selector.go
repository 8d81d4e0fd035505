package convert

import (
	"fmt"
	"sort"

	"github.com/Spencerx/delta/iceberg"
)

// selectSpec picks the single partition layout used for the whole
// conversion.
//
// A table whose only partition fields are bucket transforms can be treated
// as unpartitioned (bucket assignment only prunes files on the source side),
// so evolution across bucket-only specs is harmless. Evolution across specs
// with real partition columns would need per-file partition reconciliation
// the target format does not model, and is rejected.
func selectSpec(table iceberg.Table, cfg Config) (iceberg.PartitionSpec, error) {
	specs := table.Specs()
	if len(specs) == 0 {
		return iceberg.PartitionSpec{}, fmt.Errorf("%w: %s", ErrNoPartitionSpecs, table.Location())
	}

	// With a single layout the choice is forced. With evolution explicitly
	// allowed, or bucket support off, the current layout is used as-is; a
	// bucket-partitioned current layout is caught by validation, not here.
	if len(specs) == 1 || cfg.PartitionEvolution || !cfg.BucketPartition {
		return table.CurrentSpec(), nil
	}

	ids := make([]int, 0, len(specs))
	for id := range specs {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	for _, id := range ids {
		if bucketOnly(specs[id]) {
			return specs[id], nil
		}
	}

	return iceberg.PartitionSpec{}, fmt.Errorf(
		"%w: table %s has %d partition specs with non-bucket partition fields",
		ErrPartitionEvolution, table.Location(), len(specs))
}

// bucketOnly reports whether every field of the spec is a bucket transform
// (or void, i.e. a dropped field).
func bucketOnly(spec iceberg.PartitionSpec) bool {
	for _, f := range spec.Fields {
		if !iceberg.IsBucket(f.Transform) && !iceberg.IsVoid(f.Transform) {
			return false
		}
	}
	return true
}
