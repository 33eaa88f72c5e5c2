package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// configFileName is looked up in the working directory; the file is
// optional, environment variables override it either way.
const configFileName = "config.yaml"

// Config represents the complete application configuration.
type Config struct {
	Logging    LoggingConfig    `envconfig:"LOGGING"`
	Processing ProcessingConfig `envconfig:"PROCESSING"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level    string `envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn error"`
	Output   string `envconfig:"OUTPUT" default:"both" validate:"oneof=console file both"`
	FilePath string `envconfig:"FILE_PATH" default:"logs/simcli.log" validate:"required"`
}

// ProcessingConfig controls document discovery and the batch run.
type ProcessingConfig struct {
	InputDir  string `envconfig:"INPUT_DIR" default:"." validate:"required"`
	OutputDir string `envconfig:"OUTPUT_DIR" default:"output" validate:"required"`
	Workers   int    `envconfig:"WORKERS" default:"4" validate:"min=1,max=64"`
	Workbook  bool   `envconfig:"WORKBOOK" default:"true"`
}

// fileConfig mirrors Config with pointer fields so a value the file sets
// explicitly (including false and the empty string) is distinguishable
// from one it omits.
type fileConfig struct {
	Logging struct {
		Level    *string `yaml:"level"`
		Output   *string `yaml:"output"`
		FilePath *string `yaml:"file_path"`
	} `yaml:"logging"`
	Processing struct {
		InputDir  *string `yaml:"input_dir"`
		OutputDir *string `yaml:"output_dir"`
		Workers   *int    `yaml:"workers"`
		Workbook  *bool   `yaml:"workbook"`
	} `yaml:"processing"`
}

// Load loads configuration from environment variables and the optional
// YAML file, then validates the result. File values apply wherever the
// corresponding environment variable is unset.
func Load() (*Config, error) {
	var cfg Config

	// Load from environment variables first; envconfig also fills the
	// struct defaults here.
	if err := envconfig.Process("SIMCLI", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	// Load from config file if it exists.
	if _, err := os.Stat(configFileName); err == nil {
		fileCfg, err := loadFromFile(configFileName)
		if err != nil {
			return nil, err
		}
		cfg = mergeConfigs(fileCfg, cfg)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// loadFromFile loads configuration from the YAML file.
func loadFromFile(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return &cfg, nil
}

// mergeConfigs merges file config with env config (env takes precedence).
// envconfig has already written a default into every field, so presence of
// the environment variable, not a non-zero value, decides precedence.
func mergeConfigs(fileCfg *fileConfig, envCfg Config) Config {
	if fileCfg.Logging.Level != nil && !envSet("SIMCLI_LOGGING_LEVEL") {
		envCfg.Logging.Level = *fileCfg.Logging.Level
	}
	if fileCfg.Logging.Output != nil && !envSet("SIMCLI_LOGGING_OUTPUT") {
		envCfg.Logging.Output = *fileCfg.Logging.Output
	}
	if fileCfg.Logging.FilePath != nil && !envSet("SIMCLI_LOGGING_FILE_PATH") {
		envCfg.Logging.FilePath = *fileCfg.Logging.FilePath
	}
	if fileCfg.Processing.InputDir != nil && !envSet("SIMCLI_PROCESSING_INPUT_DIR") {
		envCfg.Processing.InputDir = *fileCfg.Processing.InputDir
	}
	if fileCfg.Processing.OutputDir != nil && !envSet("SIMCLI_PROCESSING_OUTPUT_DIR") {
		envCfg.Processing.OutputDir = *fileCfg.Processing.OutputDir
	}
	if fileCfg.Processing.Workers != nil && !envSet("SIMCLI_PROCESSING_WORKERS") {
		envCfg.Processing.Workers = *fileCfg.Processing.Workers
	}
	if fileCfg.Processing.Workbook != nil && !envSet("SIMCLI_PROCESSING_WORKBOOK") {
		envCfg.Processing.Workbook = *fileCfg.Processing.Workbook
	}
	return envCfg
}

func envSet(name string) bool {
	_, ok := os.LookupEnv(name)
	return ok
}
