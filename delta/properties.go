package delta

// Reserved table property keys written by conversion.
const (
	// PropColumnMappingMode selects how columns in data files are matched
	// to schema columns. Conversion always uses id-based mapping.
	PropColumnMappingMode = "delta.columnMapping.mode"

	ColumnMappingModeID = "id"

	// PropLogRetention bounds transaction-log history, in milliseconds.
	PropLogRetention = "delta.logRetentionDuration"

	// PropCastTimeType is a sticky marker: the source's time-of-day columns
	// were widened to timestamp during conversion. Once set, later
	// re-conversions must keep widening regardless of configuration.
	PropCastTimeType = "delta.convert.iceberg.castTimeType"

	// PropBucketPartitionEnabled is a sticky marker: bucket partition specs
	// were treated as non-partitioning during conversion.
	PropBucketPartitionEnabled = "delta.convert.iceberg.bucketPartition.enabled"
)

// DefaultLogRetentionMillis applies when the source table carries no
// snapshot-age property: 5 days, matching the source format's default
// snapshot expiry.
const DefaultLogRetentionMillis = int64(432000000)
