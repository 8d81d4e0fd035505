package iceberg

import "strings"

// Partition transform names. Parameterized transforms serialize with their
// argument in brackets, e.g. "bucket[16]" and "truncate[4]".
const (
	TransformIdentity = "identity"
	TransformYear     = "year"
	TransformMonth    = "month"
	TransformDay      = "day"
	TransformHour     = "hour"
	TransformVoid     = "void"
)

// IsBucket reports whether the transform hashes its source column into a
// fixed number of buckets.
func IsBucket(transform string) bool {
	return strings.HasPrefix(strings.ToLower(transform), "bucket")
}

// IsTruncate reports whether the transform truncates its source column to a
// fixed width.
func IsTruncate(transform string) bool {
	return strings.HasPrefix(strings.ToLower(transform), "truncate")
}

// IsVoid reports whether the transform always produces null. Void fields
// appear when a partition field is dropped under format v1.
func IsVoid(transform string) bool {
	return strings.ToLower(transform) == TransformVoid
}
