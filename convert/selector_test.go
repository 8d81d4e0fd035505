package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Spencerx/delta/iceberg"
)

func bucketSpec(id int) iceberg.PartitionSpec {
	return iceberg.PartitionSpec{SpecID: id, Fields: []iceberg.PartitionField{
		{SourceID: 1, FieldID: 1000, Name: "id_bucket", Transform: "bucket[16]"},
	}}
}

func identitySpec(id int) iceberg.PartitionSpec {
	return iceberg.PartitionSpec{SpecID: id, Fields: []iceberg.PartitionField{
		{SourceID: 2, FieldID: 1000, Name: "region", Transform: "identity"},
	}}
}

func TestSelectSpecNoSpecs(t *testing.T) {
	table := &fakeTable{location: "s3://b/t"}

	_, err := selectSpec(table, Config{})
	assert.ErrorIs(t, err, ErrNoPartitionSpecs)
}

func TestSelectSpecSingleSpecIgnoresFlags(t *testing.T) {
	configs := []Config{
		{},
		{PartitionEvolution: true},
		{BucketPartition: true},
		{PartitionEvolution: true, BucketPartition: true},
	}

	for _, cfg := range configs {
		table := &fakeTable{specs: []iceberg.PartitionSpec{identitySpec(0)}}
		spec, err := selectSpec(table, cfg)
		require.NoError(t, err)
		assert.Equal(t, 0, spec.SpecID)
	}
}

func TestSelectSpecEvolutionAllowedReturnsCurrent(t *testing.T) {
	table := &fakeTable{
		specs:       []iceberg.PartitionSpec{identitySpec(0), identitySpec(1)},
		currentSpec: 1,
	}

	spec, err := selectSpec(table, Config{PartitionEvolution: true, BucketPartition: true})
	require.NoError(t, err)
	assert.Equal(t, 1, spec.SpecID)
}

func TestSelectSpecBucketDisabledReturnsCurrent(t *testing.T) {
	// with bucket support off the current spec is returned unconditionally;
	// a bucketed current spec fails later, in validation
	table := &fakeTable{
		specs:       []iceberg.PartitionSpec{identitySpec(0), bucketSpec(1)},
		currentSpec: 1,
	}

	spec, err := selectSpec(table, Config{})
	require.NoError(t, err)
	assert.Equal(t, 1, spec.SpecID)
}

func TestSelectSpecBucketOnlyEvolution(t *testing.T) {
	table := &fakeTable{
		specs:       []iceberg.PartitionSpec{bucketSpec(0), bucketSpec(1)},
		currentSpec: 1,
	}

	spec, err := selectSpec(table, Config{BucketPartition: true})
	require.NoError(t, err)
	assert.True(t, bucketOnly(spec))
}

func TestSelectSpecMixedEvolutionPrefersBucketOnly(t *testing.T) {
	table := &fakeTable{
		specs:       []iceberg.PartitionSpec{identitySpec(0), bucketSpec(1)},
		currentSpec: 0,
	}

	spec, err := selectSpec(table, Config{BucketPartition: true})
	require.NoError(t, err)
	assert.Equal(t, 1, spec.SpecID)
}

func TestSelectSpecRealEvolutionRejected(t *testing.T) {
	table := &fakeTable{
		specs:       []iceberg.PartitionSpec{identitySpec(0), identitySpec(1)},
		currentSpec: 1,
	}

	_, err := selectSpec(table, Config{BucketPartition: true})
	assert.ErrorIs(t, err, ErrPartitionEvolution)
}

func TestBucketOnlyTreatsVoidAsAbsent(t *testing.T) {
	spec := iceberg.PartitionSpec{SpecID: 0, Fields: []iceberg.PartitionField{
		{SourceID: 1, FieldID: 1000, Name: "id_bucket", Transform: "bucket[4]"},
		{SourceID: 2, FieldID: 1001, Name: "dropped", Transform: "void"},
	}}

	assert.True(t, bucketOnly(spec))
}
