package common

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration
type Config struct {
	Environment string         `toml:"environment"` // "development" or "production"
	Input       InputConfig    `toml:"input"`
	Output      OutputConfig   `toml:"output"`
	Semantic    SemanticConfig `toml:"semantic"`
	Storage     StorageConfig  `toml:"storage"`
	Logging     LoggingConfig  `toml:"logging"`
}

// InputConfig describes where captured execution events come from.
type InputConfig struct {
	// Events is a JSON event file, a JSONL stream, or a spool directory of
	// one-JSON-file-per-event written by the intercept layer.
	Events string `toml:"events"`
	// UseStore reads events from the badger store instead of a file path.
	UseStore bool `toml:"use_store"`
}

// OutputConfig controls the compilation-database serializer.
type OutputConfig struct {
	Path string `toml:"path"` // compilation database file to write
	// Format selects the per-entry command field: "arguments" (list) or
	// "command" (flattened shell string).
	Format        string `toml:"format" validate:"omitempty,oneof=arguments command"`
	IncludeOutput bool   `toml:"include_output"` // emit the optional output field
}

// SemanticConfig controls the recognition core's registry.
type SemanticConfig struct {
	// KeepPreprocess includes preprocess-only invocations in the output.
	// Off by default: they yield no object artifact of interest.
	KeepPreprocess bool `toml:"keep_preprocess"`
	// Tools restricts and re-orders recognizer families by name. Empty keeps
	// the documented default priority order.
	Tools []string `toml:"tools"`
	// ExtraCompilers are additional program names recognized as GCC-syntax
	// compilers (site wrapper scripts, renamed cross compilers).
	ExtraCompilers []string `toml:"extra_compilers"`
}

type StorageConfig struct {
	Badger BadgerConfig `toml:"badger"`
}

// BadgerConfig represents BadgerDB-specific configuration
type BadgerConfig struct {
	Path           string `toml:"path"`             // Database directory path
	ResetOnStartup bool   `toml:"reset_on_startup"` // Delete database on startup for clean runs
}

type LoggingConfig struct {
	Level      string   `toml:"level"`       // "debug", "info", "warn", "error"
	Format     string   `toml:"format"`      // "json" or "text"
	Output     []string `toml:"output"`      // "stdout", "file"
	TimeFormat string   `toml:"time_format"` // Time format for logs
}

// NewDefaultConfig creates a configuration with default values.
// Only user-facing settings are exposed in agnosco.toml.
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Input: InputConfig{
			Events: "events.json",
		},
		Output: OutputConfig{
			Path:          "compile_commands.json",
			Format:        "arguments",
			IncludeOutput: false,
		},
		Semantic: SemanticConfig{
			KeepPreprocess: false,
		},
		Storage: StorageConfig{
			Badger: BadgerConfig{
				Path: "./data",
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: []string{"stdout"},
		},
	}
}

// LoadFromFile loads configuration with priority: default -> file -> env -> CLI
func LoadFromFile(path string) (*Config, error) {
	if path == "" {
		return LoadFromFiles()
	}
	return LoadFromFiles(path)
}

// LoadFromFiles loads configuration from multiple files with priority:
// default -> file1 -> file2 -> ... -> env -> CLI. Later files override
// earlier files.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	applyEnvOverrides(config)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks the resolved configuration against its declared constraints.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides to config.
// Besides the AGNOSCO_* variables, the conventional CC/CXX/FC compiler
// overrides seed the recognizer registry's extra compiler names; these are
// the only compiler-related environment variables the program reads.
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("AGNOSCO_ENV"); env != "" {
		config.Environment = env
	} else if env := os.Getenv("GO_ENV"); env != "" {
		config.Environment = env
	}

	// Input configuration
	if events := os.Getenv("AGNOSCO_INPUT_EVENTS"); events != "" {
		config.Input.Events = events
	}
	if useStore := os.Getenv("AGNOSCO_INPUT_USE_STORE"); useStore != "" {
		if us, err := strconv.ParseBool(useStore); err == nil {
			config.Input.UseStore = us
		}
	}

	// Output configuration
	if path := os.Getenv("AGNOSCO_OUTPUT_PATH"); path != "" {
		config.Output.Path = path
	}
	if format := os.Getenv("AGNOSCO_OUTPUT_FORMAT"); format != "" {
		config.Output.Format = format
	}
	if includeOutput := os.Getenv("AGNOSCO_OUTPUT_INCLUDE_OUTPUT"); includeOutput != "" {
		if inc, err := strconv.ParseBool(includeOutput); err == nil {
			config.Output.IncludeOutput = inc
		}
	}

	// Semantic configuration
	if keep := os.Getenv("AGNOSCO_SEMANTIC_KEEP_PREPROCESS"); keep != "" {
		if kp, err := strconv.ParseBool(keep); err == nil {
			config.Semantic.KeepPreprocess = kp
		}
	}
	if tools := os.Getenv("AGNOSCO_SEMANTIC_TOOLS"); tools != "" {
		if names := splitCommaList(tools); len(names) > 0 {
			config.Semantic.Tools = names
		}
	}
	if extra := os.Getenv("AGNOSCO_SEMANTIC_EXTRA_COMPILERS"); extra != "" {
		if names := splitCommaList(extra); len(names) > 0 {
			config.Semantic.ExtraCompilers = names
		}
	}

	// Conventional compiler override variables: the value's basename becomes
	// an additional recognized compiler name.
	for _, env := range []string{"CC", "CXX", "FC"} {
		if value := os.Getenv(env); value != "" {
			config.Semantic.ExtraCompilers = appendUnique(config.Semantic.ExtraCompilers, filepath.Base(value))
		}
	}

	// Storage configuration
	if badgerPath := os.Getenv("AGNOSCO_BADGER_PATH"); badgerPath != "" {
		config.Storage.Badger.Path = badgerPath
	}

	// Logging configuration
	if level := os.Getenv("AGNOSCO_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if format := os.Getenv("AGNOSCO_LOG_FORMAT"); format != "" {
		config.Logging.Format = format
	}
	if output := os.Getenv("AGNOSCO_LOG_OUTPUT"); output != "" {
		if outputs := splitCommaList(output); len(outputs) > 0 {
			config.Logging.Output = outputs
		}
	}
}

// ApplyFlagOverrides applies command-line flag overrides to config.
// Command-line flags have the highest priority.
func ApplyFlagOverrides(config *Config, events, output string) {
	if events != "" {
		config.Input.Events = events
	}
	if output != "" {
		config.Output.Path = output
	}
}

// IsProduction returns true if the environment is set to production
func (c *Config) IsProduction() bool {
	env := strings.ToLower(strings.TrimSpace(c.Environment))
	return env == "production" || env == "prod"
}

func splitCommaList(s string) []string {
	result := []string{}
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func appendUnique(list []string, value string) []string {
	for _, v := range list {
		if v == value {
			return list
		}
	}
	return append(list, value)
}
