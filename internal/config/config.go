package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"go-roster/internal/shared/apperror"

	"gopkg.in/yaml.v3"
)

const envPrefix = "ROSTER_"

type Config struct {
	InputPath  string    `yaml:"input_path" validate:"required"`
	ResultsDir string    `yaml:"results_dir" validate:"required"`
	Log        LogConfig `yaml:"log"`
}

type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=console json"`
	// Output is stderr, stdout or a file path.
	Output string `yaml:"output" validate:"required"`
}

// Overrides are values set explicitly on the command line. Empty fields
// leave the loaded value untouched.
type Overrides struct {
	InputPath  string
	ResultsDir string
	Verbose    bool
}

func Default() *Config {
	return &Config{
		InputPath:  "task.csv",
		ResultsDir: "results",
		Log: LogConfig{
			Level:  "info",
			Format: "console",
			Output: "stderr",
		},
	}
}

// Load builds the configuration from defaults, the YAML file at path (when
// it exists), ROSTER_* environment variables and finally overrides, then
// validates it.
// An empty path skips the file.
func Load(path string, o Overrides) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, apperror.IO(err, "cannot read config file")
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, apperror.Parse(err, "cannot parse config file")
			}
		}
	}

	cfg.applyEnv(os.LookupEnv)
	cfg.apply(o)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) {
	set := func(key string, dst *string) {
		if v, ok := lookup(envPrefix + key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	set("INPUT", &c.InputPath)
	set("RESULTS_DIR", &c.ResultsDir)
	set("LOG_LEVEL", &c.Log.Level)
	set("LOG_FORMAT", &c.Log.Format)
	set("LOG_OUTPUT", &c.Log.Output)
}

func (c *Config) apply(o Overrides) {
	if o.InputPath != "" {
		c.InputPath = o.InputPath
	}
	if o.ResultsDir != "" {
		c.ResultsDir = o.ResultsDir
	}
	if o.Verbose {
		c.Log.Level = "debug"
	}
}

func (c *Config) Validate() error {
	c.Log.Level = strings.ToLower(c.Log.Level)
	c.Log.Format = strings.ToLower(c.Log.Format)
	if err := apperror.Validator().Struct(c); err != nil {
		return apperror.MapValidationError(err)
	}
	return nil
}

func (c *Config) String() string {
	return fmt.Sprintf("input=%s results=%s log=%s/%s/%s",
		c.InputPath, c.ResultsDir, c.Log.Level, c.Log.Format, c.Log.Output)
}
