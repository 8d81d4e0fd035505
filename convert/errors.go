package convert

import "errors"

// Conversion failures are terminal and reported verbatim; nothing here is
// retried. Each condition is distinct so callers can print an actionable
// message.
var (
	// ErrNoPartitionSpecs: the source table has no registered partition
	// layouts at all.
	ErrNoPartitionSpecs = errors.New("table has no partition specs")

	// ErrPartitionEvolution: the source table evolved across partition
	// layouts with real (non-bucket) partition columns.
	ErrPartitionEvolution = errors.New("partition evolution is not supported")

	// ErrBucketPartition: the current partition layout uses bucket
	// transforms and bucket support is disabled.
	ErrBucketPartition = errors.New("bucket partitioning is not supported")

	// ErrCustomNameMapping: the source table assigns file column ids
	// through an external name mapping that id-based conversion cannot
	// trust.
	ErrCustomNameMapping = errors.New("custom column name mapping is not supported")

	// ErrCaseSensitiveColumns: the resolved schema has columns that differ
	// only by case, which a case-insensitive table cannot hold.
	ErrCaseSensitiveColumns = errors.New("found columns differing only by case")
)
