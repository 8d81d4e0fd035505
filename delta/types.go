package delta

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Spencerx/delta/iceberg"
)

// ErrTypeConversion marks a source type that has no Delta representation.
var ErrTypeConversion = errors.New("unsupported type conversion")

// ConvertSchema maps an Iceberg schema to a Delta schema, leaving physical
// names unassigned. When castTimeType is true, time-of-day columns widen to
// timestamp; otherwise they keep a dedicated time type that the transaction
// log cannot represent (rejected later for tables that actually write it).
func ConvertSchema(src iceberg.SchemaV2, castTimeType bool) (StructType, error) {
	fields, err := convertFields(src.Fields, castTimeType)
	if err != nil {
		return StructType{}, err
	}
	return StructType{Fields: fields}, nil
}

func convertFields(src []iceberg.Field, castTimeType bool) ([]StructField, error) {
	out := make([]StructField, 0, len(src))
	for _, f := range src {
		converted, err := convertField(f, castTimeType)
		if err != nil {
			return nil, err
		}
		out = append(out, converted)
	}
	return out, nil
}

func convertField(f iceberg.Field, castTimeType bool) (StructField, error) {
	if f.Type == "struct" {
		children, err := convertFields(f.Fields, castTimeType)
		if err != nil {
			return StructField{}, err
		}
		return StructField{
			Name:     f.Name,
			Type:     "struct",
			Nullable: !f.Required,
			Fields:   children,
		}, nil
	}

	t, err := ConvertPrimitive(f.Type, castTimeType)
	if err != nil {
		return StructField{}, fmt.Errorf("column %q: %w", f.Name, err)
	}
	return StructField{
		Name:     f.Name,
		Type:     t,
		Nullable: !f.Required,
	}, nil
}

// ConvertPrimitive maps a single Iceberg primitive type string to its Delta
// counterpart.
func ConvertPrimitive(t string, castTimeType bool) (string, error) {
	lower := strings.ToLower(strings.TrimSpace(t))

	switch lower {
	case "boolean":
		return "boolean", nil
	case "int":
		return "integer", nil
	case "long":
		return "long", nil
	case "float":
		return "float", nil
	case "double":
		return "double", nil
	case "date":
		return "date", nil
	case "timestamp", "timestamptz":
		return "timestamp", nil
	case "string":
		return "string", nil
	case "uuid":
		return "string", nil
	case "binary":
		return "binary", nil
	case "time":
		if castTimeType {
			return "timestamp", nil
		}
		return "time", nil
	}

	switch {
	case strings.HasPrefix(lower, "decimal"):
		// decimal(P, S) carries over with precision and scale intact
		return strings.ReplaceAll(lower, " ", ""), nil
	case strings.HasPrefix(lower, "fixed"):
		return "binary", nil
	}

	return "", fmt.Errorf("%w: %s", ErrTypeConversion, t)
}
