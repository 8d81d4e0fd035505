package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Storage struct {
		Local struct {
			Path string `yaml:"path"`
		} `yaml:"local"`
		S3 struct {
			Bucket string `yaml:"bucket"`
			Prefix string `yaml:"prefix"`
			Region string `yaml:"region"`
		} `yaml:"s3"`
	} `yaml:"storage"`

	Table struct {
		Path string `yaml:"path"`
	} `yaml:"table"`

	Conversion struct {
		AllowPartitionEvolution bool `yaml:"allow-partition-evolution"`
		AllowBucketPartition    bool `yaml:"allow-bucket-partition"`
		CastTimeType            bool `yaml:"cast-time-type"`
		CollectStats            bool `yaml:"collect-stats"`
	} `yaml:"conversion"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
