package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/Spencerx/delta/config"
	"github.com/Spencerx/delta/convert"
	"github.com/Spencerx/delta/iceberg"
	"github.com/Spencerx/delta/manifest"
	"github.com/Spencerx/delta/storage"
)

func main() {
	configFile := flag.String("config", "config.yaml", "Path to config file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	var store storage.Storage
	if cfg.Storage.S3.Bucket != "" {
		client := s3.New(s3.Options{Region: cfg.Storage.S3.Region})
		store = storage.NewS3Storage(client, cfg.Storage.S3.Bucket, cfg.Storage.S3.Prefix)
	} else {
		store = storage.NewLocalStorage(cfg.Storage.Local.Path)
	}

	ctx := context.Background()

	table, err := iceberg.OpenTable(ctx, store, cfg.Table.Path)
	if err != nil {
		log.Fatalf("Failed to open table: %v", err)
	}

	resolver := convert.NewResolver(table, nil, convert.Config{
		PartitionEvolution: cfg.Conversion.AllowPartitionEvolution,
		BucketPartition:    cfg.Conversion.AllowBucketPartition,
		CastTimeType:       cfg.Conversion.CastTimeType,
		CollectStats:       cfg.Conversion.CollectStats,
	}, manifest.NewTableScanner(store, cfg.Table.Path))

	plan, err := resolver.Resolve(ctx)
	if err != nil {
		log.Fatalf("Conversion not possible: %v", err)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(plan); err != nil {
		log.Fatalf("Failed to encode plan: %v", err)
	}
}
