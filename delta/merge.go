package delta

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrSchemaMerge marks a data/partition column collision that cannot be
	// resolved by replacing the data column.
	ErrSchemaMerge = errors.New("schema merge conflict")

	// ErrDuplicateColumnNames marks two columns at the same nesting level
	// whose names are equal ignoring case.
	ErrDuplicateColumnNames = errors.New("duplicate column names")
)

// MergeDataAndPartitionSchema combines converted data columns with typed
// partition columns. A partition column replaces the data column of the
// exact same name; a name that matches only ignoring case (with
// caseSensitive false) is a conflict, never a silent override.
func MergeDataAndPartitionSchema(data, partition StructType, caseSensitive bool) (StructType, error) {
	merged := make([]StructField, len(data.Fields))
	copy(merged, data.Fields)

	for _, pf := range partition.Fields {
		exact := -1
		for i, df := range merged {
			if df.Name == pf.Name {
				exact = i
				break
			}
			if !caseSensitive && strings.EqualFold(df.Name, pf.Name) {
				return StructType{}, fmt.Errorf(
					"%w: partition column %q collides with data column %q",
					ErrSchemaMerge, pf.Name, df.Name)
			}
		}
		if exact >= 0 {
			// exclude from the data portion, reinsert as a partition column
			merged = append(merged[:exact], merged[exact+1:]...)
		}
		merged = append(merged, pf)
	}

	return StructType{Fields: merged}, nil
}

// CheckNoDuplicateNames walks every nesting level of the schema and fails
// when two sibling columns differ only by case.
func CheckNoDuplicateNames(schema StructType) error {
	return checkLevel(schema.Fields)
}

func checkLevel(fields []StructField) error {
	seen := make(map[string]string, len(fields))
	for _, f := range fields {
		key := strings.ToLower(f.Name)
		if prev, ok := seen[key]; ok {
			return fmt.Errorf("%w: %q and %q", ErrDuplicateColumnNames, prev, f.Name)
		}
		seen[key] = f.Name
	}
	for _, f := range fields {
		if err := checkLevel(f.Fields); err != nil {
			return err
		}
	}
	return nil
}
