package iceberg

type ManifestEntry struct {
	Status       int32    `avro:"status" json:"status"` // 1=added, 2=existing, 3=deleted
	SnapshotID   int64    `avro:"snapshot_id" json:"snapshot_id"`
	SequenceNum  int64    `avro:"sequence_number" json:"sequence_number"`
	FileSequence int64    `avro:"file_sequence_number" json:"file_sequence_number"`
	DataFile     DataFile `avro:"data_file" json:"data_file"`
}

const (
	EntryStatusAdded    int32 = 1
	EntryStatusExisting int32 = 2
	EntryStatusDeleted  int32 = 3
)

type DataFile struct {
	FilePath      string            `avro:"file_path" json:"file_path"`
	FileFormat    string            `avro:"file_format" json:"file_format"`
	SpecID        int               `avro:"spec_id" json:"spec_id"`
	Partition     map[string]string `avro:"partition" json:"partition"`
	RecordCount   int64             `avro:"record_count" json:"record_count"`
	FileSizeBytes int64             `avro:"file_size_bytes" json:"file_size_bytes"`
}
