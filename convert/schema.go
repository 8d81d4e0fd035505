package convert

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Spencerx/delta/delta"
	"github.com/Spencerx/delta/iceberg"
)

// nameAssigner hands out physical names for the whole resolved schema.
// Names present in the prior snapshot are reused by lower-cased field path;
// new fields keep their logical name (so schema diffs stay readable), made
// globally unique with a deterministic pre-order position suffix when taken.
type nameAssigner struct {
	prior map[string]string
	used  map[string]bool
	pos   int
}

func newNameAssigner(prior map[string]string) *nameAssigner {
	a := &nameAssigner{
		prior: prior,
		used:  make(map[string]bool, len(prior)),
	}
	// reserve every reusable name up front so a fresh assignment can never
	// steal a name a later field is entitled to reuse
	for _, name := range prior {
		a.used[strings.ToLower(name)] = true
	}
	return a
}

func (a *nameAssigner) assignAll(fields []delta.StructField, prefix string) {
	for i := range fields {
		a.pos++
		f := &fields[i]

		p := strings.ToLower(f.Name)
		if prefix != "" {
			p = prefix + "." + p
		}

		if name, ok := a.prior[p]; ok {
			f.PhysicalName = name
		} else {
			f.PhysicalName = a.fresh(f.Name)
		}

		a.assignAll(f.Fields, p)
	}
}

func (a *nameAssigner) fresh(logical string) string {
	candidate := logical
	for n := a.pos; a.used[strings.ToLower(candidate)]; n++ {
		candidate = logical + "_" + strconv.Itoa(n)
	}
	a.used[strings.ToLower(candidate)] = true
	return candidate
}

// buildSchemas derives the data-column schema, the partition schema, and
// their merge for the chosen spec.
func buildSchemas(table iceberg.Table, spec iceberg.PartitionSpec,
	prior *delta.PriorSnapshot, cfg Config) (merged, partition delta.StructType, err error) {

	srcSchema := table.Schema()

	data, err := delta.ConvertSchema(srcSchema, cfg.CastTimeType)
	if err != nil {
		return delta.StructType{}, delta.StructType{}, err
	}

	partition, err = partitionSchema(spec, srcSchema, cfg)
	if err != nil {
		return delta.StructType{}, delta.StructType{}, err
	}

	merged, err = delta.MergeDataAndPartitionSchema(data, partition, false)
	if err != nil {
		return delta.StructType{}, delta.StructType{}, err
	}

	// assign names on the merged tree so an identity partition column and
	// the data column it replaces are one assignment, not two
	assigner := newNameAssigner(prior.PhysicalNames())
	assigner.assignAll(merged.Fields, "")

	for i := range partition.Fields {
		for _, mf := range merged.Fields {
			if mf.Name == partition.Fields[i].Name {
				partition.Fields[i].PhysicalName = mf.PhysicalName
				break
			}
		}
	}

	return merged, partition, nil
}

// partitionSchema types the partition columns of the chosen spec. Bucket
// and void fields carry no partition column: bucket layouts are treated as
// non-partitioning, void fields are dropped columns.
func partitionSchema(spec iceberg.PartitionSpec, src iceberg.SchemaV2, cfg Config) (delta.StructType, error) {
	fields := make([]delta.StructField, 0, len(spec.Fields))

	for _, pf := range spec.Fields {
		if iceberg.IsBucket(pf.Transform) || iceberg.IsVoid(pf.Transform) {
			continue
		}

		srcField, ok := src.FieldByID(pf.SourceID)
		if !ok {
			return delta.StructType{}, fmt.Errorf(
				"partition field %q references unknown column id %d", pf.Name, pf.SourceID)
		}

		var typ string
		switch {
		case pf.Transform == iceberg.TransformIdentity || iceberg.IsTruncate(pf.Transform):
			t, err := delta.ConvertPrimitive(srcField.Type, cfg.CastTimeType)
			if err != nil {
				return delta.StructType{}, fmt.Errorf("partition field %q: %w", pf.Name, err)
			}
			typ = t
		case pf.Transform == iceberg.TransformYear,
			pf.Transform == iceberg.TransformMonth,
			pf.Transform == iceberg.TransformHour:
			typ = "integer"
		case pf.Transform == iceberg.TransformDay:
			typ = "date"
		default:
			return delta.StructType{}, fmt.Errorf(
				"%w: partition transform %q", delta.ErrTypeConversion, pf.Transform)
		}

		fields = append(fields, delta.StructField{
			Name:     pf.Name,
			Type:     typ,
			Nullable: true,
		})
	}

	return delta.StructType{Fields: fields}, nil
}
