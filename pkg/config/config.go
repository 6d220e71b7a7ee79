// Copyright 2025 Kestrel Labs, Inc
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	DefaultCount  = 1
	DefaultFormat = "json"
)

type Config struct {
	Seed    uint64      `mapstructure:"seed" yaml:"seed" json:"seed"`
	Count   int         `mapstructure:"count" yaml:"count" json:"count"`
	Format  string      `mapstructure:"format" yaml:"format" json:"format"`
	Streams []StreamDef `mapstructure:"streams" yaml:"streams" json:"streams"`
}

// StreamDef names one output stream and carries the declarative spec of
// the generator that feeds it. The spec's type key selects the generator
// kind; the remaining keys are kind-specific.
type StreamDef struct {
	Name string         `mapstructure:"name" yaml:"name" json:"name"`
	Spec map[string]any `mapstructure:"spec" yaml:"spec" json:"spec"`
}

// LoadConfigs loads the named files in order and merges them: scalar
// fields set in later files override earlier ones, stream lists append.
// Files ending in .json are parsed as strict JSON, everything else as
// YAML. Defaults are applied after the merge.
func LoadConfigs(fnames []string) (*Config, error) {
	merged := &Config{}
	for _, fname := range fnames {
		slog.Info("Loading config", "file", fname)
		config, err := loadConfig(fname)
		if err != nil {
			return nil, err
		}
		if config.Seed != 0 {
			merged.Seed = config.Seed
		}
		if config.Count != 0 {
			merged.Count = config.Count
		}
		if config.Format != "" {
			merged.Format = config.Format
		}
		merged.Streams = append(merged.Streams, config.Streams...)
	}
	if merged.Count == 0 {
		merged.Count = DefaultCount
	}
	if merged.Format == "" {
		merged.Format = DefaultFormat
	}
	return merged, nil
}

func loadConfig(fname string) (*Config, error) {
	var config Config
	var err error
	switch filepath.Ext(fname) {
	case ".json":
		err = LoadJSON(fname, &config)
	default:
		err = LoadYAML(fname, &config)
	}
	if err != nil {
		return nil, err
	}
	return &config, nil
}

func LoadYAML(fname string, config *Config) error {
	b, err := os.ReadFile(fname)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, config)
}
