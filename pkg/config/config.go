// Copyright 2025 walteh LLC
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
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/wordsub/pkg/store"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 🔧 BatchArgs configures multi-file processing
type BatchArgs struct {
	Glob    string `json:"glob" yaml:"glob"`                             // Glob pattern selecting input files
	Jobs    int    `json:"jobs,omitempty" yaml:"jobs,omitempty"`         // Concurrent file readers
	InPlace bool   `json:"in_place,omitempty" yaml:"in_place,omitempty"` // Rewrite matched files in place
}

// 📚 Config represents the complete configuration
type Config struct {
	Input   string     `json:"input,omitempty" yaml:"input,omitempty"` // Input text file (single-file mode)
	Rules   string     `json:"rules" yaml:"rules"`                     // Replacement rules file
	Backend string     `json:"backend,omitempty" yaml:"backend,omitempty"`
	Batch   *BatchArgs `json:"batch,omitempty" yaml:"batch,omitempty"`
}

// 🎯 Load loads the configuration from a file
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	var cfg *Config
	if strings.ToLower(filepath.Ext(path)) == ".wordsub" {
		// A bare .wordsub file carries no format extension: try YAML
		// first, then HCL.
		cfg, err = parseAnyFormat(ctx, data)
		if err != nil {
			return nil, err
		}
	} else {
		p := GetParser(path)
		if p == nil {
			return nil, errors.Errorf("no parser found for file: %s", path)
		}
		cfg, err = p.Parse(ctx, data)
		if err != nil {
			return nil, errors.Errorf("parsing config: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// parseAnyFormat parses extensionless config data, trying YAML then HCL.
func parseAnyFormat(ctx context.Context, data []byte) (*Config, error) {
	cfg, yamlErr := (&YAMLParser{}).Parse(ctx, data)
	if yamlErr == nil {
		return cfg, nil
	}

	cfg, hclErr := (&HCLParser{}).Parse(ctx, data)
	if hclErr == nil {
		return cfg, nil
	}

	return nil, errors.Errorf("parsing .wordsub as YAML (%s) or HCL: %w", yamlErr, hclErr)
}

// 🔍 Validate checks if the configuration is valid
func (cfg *Config) Validate() error {
	if cfg.Rules == "" {
		return errors.Errorf("rules is required")
	}

	// Set defaults
	if cfg.Backend == "" {
		cfg.Backend = store.BackendHash
	}
	switch cfg.Backend {
	case store.BackendBST, store.BackendRBT, store.BackendHash:
	default:
		return errors.Errorf("backend must be one of bst, rbt, hash; got %q", cfg.Backend)
	}

	if cfg.Batch != nil {
		if cfg.Batch.Glob == "" {
			return errors.Errorf("batch.glob is required")
		}
		if cfg.Batch.Jobs < 0 {
			return errors.Errorf("batch.jobs must be non-negative")
		}
		if cfg.Batch.Jobs == 0 {
			cfg.Batch.Jobs = 1
		}
	} else if cfg.Input == "" {
		return errors.Errorf("input is required unless a batch block is given")
	}

	return nil
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	target := cfg.Input
	if cfg.Batch != nil {
		target = cfg.Batch.Glob
	}
	return fmt.Sprintf("%s + %s (%s)", target, cfg.Rules, cfg.Backend)
}

// 🔧 YAMLParser implements the Parser interface for YAML files
type YAMLParser struct{}

func init() {
	Register(&YAMLParser{})
}

func (p *YAMLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".yaml") || strings.HasSuffix(filename, ".yml")
}

func (p *YAMLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(strings.NewReader(string(data)))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, errors.Errorf("parsing YAML: %w", err)
	}
	return &cfg, nil
}
