// Package config loads the lvpuzzle run configuration.
//
// A configuration names the input file for each puzzle and tunes the
// runner. YAML is the primary format; files ending in .json or .jsonc are
// read as JSON with comments and trailing commas allowed.
//
//	parallelism: 4
//	log_level: debug
//	inputs:
//	  2016-09: inputs/2016-09.txt
//
// Relative input paths are resolved against the directory of the
// configuration file.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/tidwall/jsonc"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// DefaultParallelism is used when the file does not set parallelism.
const DefaultParallelism = 2

var (
	// ErrConfigNotFound indicates the configuration file does not exist.
	ErrConfigNotFound = errors.New("config: file not found")
	// ErrInvalidConfig indicates a file that cannot be parsed or fails validation.
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

var puzzleID = regexp.MustCompile(`^\d{4}-\d{2}$`)

// Config is a validated configuration.
type Config struct {
	// Path is the file the configuration was loaded from, empty for Default.
	Path        string
	Parallelism int
	LogLevel    zapcore.Level
	// Inputs maps puzzle IDs to input file paths.
	Inputs map[string]string
}

// fileConfig is the on-disk shape shared by YAML and JSON.
type fileConfig struct {
	Parallelism *int              `yaml:"parallelism" json:"parallelism"`
	LogLevel    string            `yaml:"log_level" json:"log_level"`
	Inputs      map[string]string `yaml:"inputs" json:"inputs"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Parallelism: DefaultParallelism,
		LogLevel:    zapcore.InfoLevel,
		Inputs:      map[string]string{},
	}
}

// Load reads, validates, and resolves the configuration at path.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	var dto fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		err = json.Unmarshal(jsonc.ToJSON(b), &dto)
	default:
		err = yaml.Unmarshal(b, &dto)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}

	return mapConfig(path, dto)
}

// mapConfig validates dto and converts it into a Config.
func mapConfig(path string, dto fileConfig) (*Config, error) {
	cfg := Default()
	cfg.Path = path

	if dto.Parallelism != nil {
		if *dto.Parallelism < 1 {
			return nil, fmt.Errorf("%w: %s: parallelism must be at least 1, got %d",
				ErrInvalidConfig, path, *dto.Parallelism)
		}
		cfg.Parallelism = *dto.Parallelism
	}

	if dto.LogLevel != "" {
		lvl, err := zapcore.ParseLevel(dto.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: log_level: %v", ErrInvalidConfig, path, err)
		}
		cfg.LogLevel = lvl
	}

	dir := filepath.Dir(path)
	for id, in := range dto.Inputs {
		if !puzzleID.MatchString(id) {
			return nil, fmt.Errorf("%w: %s: input key %q is not a YYYY-DD puzzle id", ErrInvalidConfig, path, id)
		}
		if strings.TrimSpace(in) == "" {
			return nil, fmt.Errorf("%w: %s: input for %s is empty", ErrInvalidConfig, path, id)
		}
		if !filepath.IsAbs(in) {
			in = filepath.Join(dir, in)
		}
		cfg.Inputs[id] = in
	}

	return cfg, nil
}

// PuzzleIDs returns the configured puzzle IDs in sorted order.
func (c *Config) PuzzleIDs() []string {
	ids := make([]string, 0, len(c.Inputs))
	for id := range c.Inputs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
