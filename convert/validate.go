package convert

import (
	"errors"
	"fmt"

	"github.com/Spencerx/delta/delta"
	"github.com/Spencerx/delta/iceberg"
)

// validate runs after spec selection and schema resolution and can reject
// the whole conversion. The bucket check applies to the current spec, not
// the chosen one; a chosen bucket-only spec from an older layout carries
// nothing but bucket fields.
func validate(table iceberg.Table, merged delta.StructType, cfg Config) error {
	if !cfg.BucketPartition {
		for _, f := range table.CurrentSpec().Fields {
			if iceberg.IsBucket(f.Transform) {
				return fmt.Errorf("%w: partition field %q uses transform %q",
					ErrBucketPartition, f.Name, f.Transform)
			}
		}
	}

	if _, ok := table.Properties()[iceberg.PropNameMappingDefault]; ok {
		return fmt.Errorf("%w: table %s sets %s",
			ErrCustomNameMapping, table.Location(), iceberg.PropNameMappingDefault)
	}

	if err := delta.CheckNoDuplicateNames(merged); err != nil {
		if errors.Is(err, delta.ErrDuplicateColumnNames) {
			// the target format is case-insensitive; surface the conflict as
			// a case-sensitivity condition with both names
			return fmt.Errorf("%w: %v", ErrCaseSensitiveColumns, err)
		}
		return err
	}

	return nil
}
