// Package config loads and validates the YAML configuration that drives the
// indexer and query service: which tag keywords to extract into the index,
// where the index store and scan root live, and how the server and logger
// are set up.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/codeninja55/go-radx/dicom/tag"
)

// Config is the top-level shape of config.yaml.
type Config struct {
	Indexer IndexerConfig `yaml:"indexer" validate:"required"`
	Server  ServerConfig  `yaml:"server" validate:"required"`
	Logging LoggingConfig `yaml:"logging"`
}

// IndexerConfig configures the filesystem scan and the index store it
// populates.
type IndexerConfig struct {
	Root    string      `yaml:"root" validate:"required"`
	DBPath  string      `yaml:"db_path" validate:"required"`
	Workers int         `yaml:"workers" validate:"omitempty,min=1"`
	Fields  FieldConfig `yaml:"fields" validate:"required"`
}

// FieldConfig lists the tag keywords extracted into each of the three index
// tables (studies, series, instances). Every keyword must resolve against
// the tag dictionary (C1) -- see the dicomkeyword custom validator below.
type FieldConfig struct {
	Study    []string `yaml:"study" validate:"required,min=1,dive,dicomkeyword"`
	Series   []string `yaml:"series" validate:"required,min=1,dive,dicomkeyword"`
	Instance []string `yaml:"instance" validate:"required,min=1,dive,dicomkeyword"`
}

// ServerConfig configures the QIDO-RS/WADO-RS HTTP listener.
type ServerConfig struct {
	Addr string `yaml:"addr" validate:"required,hostname_port"`
}

// LoggingConfig configures the charmbracelet/log front-end logger.
type LoggingConfig struct {
	Level  string `yaml:"level" validate:"omitempty,oneof=debug info warn error fatal"`
	Pretty bool   `yaml:"pretty"`
}

// Default returns a Config with sensible defaults for local development: a
// small field set covering the Patient/Study/Series/Instance module
// attributes this toolkit indexes by default.
func Default() *Config {
	return &Config{
		Indexer: IndexerConfig{
			Root:    ".",
			DBPath:  "dicom-index.db",
			Workers: 0,
			Fields: FieldConfig{
				Study:    []string{"StudyInstanceUID", "PatientID", "PatientName", "StudyDate", "StudyDescription"},
				Series:   []string{"SeriesInstanceUID", "Modality", "SeriesNumber", "SeriesDescription"},
				Instance: []string{"SOPInstanceUID", "InstanceNumber"},
			},
		},
		Server: ServerConfig{Addr: "127.0.0.1:8080"},
		Logging: LoggingConfig{
			Level:  "info",
			Pretty: true,
		},
	}
}

// Load reads and validates a YAML config file at path. Unset fields in the
// file are left at their Go zero value -- callers that want defaults should
// start from Default() and unmarshal over it (see LoadOrDefault).
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadOrDefault loads path if it exists, layering it over Default(); a
// missing file is not an error and yields Default() unchanged.
func LoadOrDefault(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validatorInstance is built once and reused, following the teacher's
// fhir/validation.NewFHIRValidator pattern of registering custom rules
// against a single *validator.Validate.
var validatorInstance = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("dicomkeyword", validateDicomKeyword)
	return v
}

// validateDicomKeyword checks that a field list entry is a keyword the tag
// dictionary (dicom/tag) actually knows about, so a typo in config.yaml is
// caught at startup rather than silently indexing nothing for that column.
func validateDicomKeyword(fl validator.FieldLevel) bool {
	keyword := fl.Field().String()
	_, err := tag.FindByKeyword(keyword)
	return err == nil
}

// Validate runs struct-tag validation over cfg, returning a wrapped error
// describing every failing field.
func Validate(cfg *Config) error {
	if err := validatorInstance.Struct(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
