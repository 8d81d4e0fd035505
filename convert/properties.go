package convert

import (
	"strconv"

	"github.com/Spencerx/delta/delta"
	"github.com/Spencerx/delta/iceberg"
)

// deriveProperties overlays the target-required settings on a copy of the
// source table properties. Later entries win: the target owns its reserved
// keys.
func deriveProperties(table iceberg.Table, cfg Config) map[string]string {
	src := table.Properties()

	props := make(map[string]string, len(src)+4)
	for k, v := range src {
		props[k] = v
	}

	// conversion assigns column ids through the schema, never by name
	props[delta.PropColumnMappingMode] = delta.ColumnMappingModeID

	retention := delta.DefaultLogRetentionMillis
	if v, ok := src[iceberg.PropMaxSnapshotAge]; ok {
		if ms, err := strconv.ParseInt(v, 10, 64); err == nil {
			retention = ms
		}
	}
	props[delta.PropLogRetention] = strconv.FormatInt(retention, 10)

	// sticky markers: once a table converts with a flag on, later
	// re-conversions keep the behavior even if the global default changes
	if cfg.CastTimeType {
		props[delta.PropCastTimeType] = "true"
	}
	if cfg.BucketPartition {
		props[delta.PropBucketPartitionEnabled] = "true"
	}

	return props
}
