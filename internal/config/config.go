// Package config loads the run configuration of the generator: an optional
// YAML file, validated, on top of built-in defaults. Command line flags are
// applied over the loaded value by the caller.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"go/token"
	"io"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"property-generator/internal/analyze"
	"property-generator/internal/common"
	"property-generator/internal/conf"
	"property-generator/internal/gen"
	"property-generator/internal/logger"
	"property-generator/internal/plan"
)

// DefaultFile is looked up in the working directory when no file is given.
const DefaultFile = "property-generator.yaml"

// Config is the run configuration.
type Config struct {
	// TagKey is the struct tag key field attributes are read from.
	TagKey string `yaml:"tag_key" validate:"required,attrkey"`
	// DirectiveKey names the type comment directive, //<key>:<attributes>.
	DirectiveKey string `yaml:"directive_key" validate:"required,directivekey"`
	// Output is the name of the generated file in each package directory.
	Output string `yaml:"output" validate:"required,endswith=.go,excludes=/"`
	// Types restricts generation to the named types.
	Types []string `yaml:"types" validate:"dive,goident"`
	// BuildTags are passed to the package loader.
	BuildTags []string `yaml:"build_tags" validate:"dive,required"`
	// Tests includes the test files of each package.
	Tests bool `yaml:"tests"`
	// Comments enables doc comments on generated methods.
	Comments bool `yaml:"comments"`
	// Defaults is container attribute text applied to every type before its
	// own directives, e.g. `get(public), set(prefix="With")`.
	Defaults string `yaml:"defaults"`
	// Parallelism bounds concurrent planning. Zero means GOMAXPROCS.
	Parallelism int `yaml:"parallelism" validate:"gte=0"`

	Log LogConfig `yaml:"log"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error disabled"`
	JSON  bool   `yaml:"json"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		TagKey:       common.DefaultKey,
		DirectiveKey: common.DefaultKey,
		Output:       common.DefaultOutput,
		Comments:     true,
		Log: LogConfig{
			Level: string(logger.InfoLevel),
		},
	}
}

// Load reads the configuration from path. An empty path loads DefaultFile
// when it exists and the defaults otherwise.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}

		return nil, fmt.Errorf("failed to read configuration: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result. Unknown keys
// are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks struct constraints and the defaults attribute text.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("configuration cannot be nil")
	}

	v := validator.New()
	if err := RegisterCustomValidators(v); err != nil {
		return err
	}

	if err := v.Struct(c); err != nil {
		return err
	}

	if _, err := c.FieldDefaults(); err != nil {
		return fmt.Errorf("defaults: %w", err)
	}

	return nil
}

// FieldDefaults returns the configuration every record starts from: the
// built-in defaults with Defaults applied as container attributes.
func (c *Config) FieldDefaults() (conf.FieldConf, error) {
	if c.Defaults == "" {
		return conf.Default(), nil
	}

	return conf.ParseText(conf.Default(), c.Defaults, token.NoPos, conf.LevelContainer)
}

// AnalyzeOptions returns the loader options.
func (c *Config) AnalyzeOptions() analyze.Options {
	return analyze.Options{
		TagKey:       c.TagKey,
		DirectiveKey: c.DirectiveKey,
		Types:        c.Types,
		Tests:        c.Tests,
		BuildTags:    c.BuildTags,
	}
}

// PlanOptions returns the planner options.
func (c *Config) PlanOptions() (plan.Options, error) {
	defaults, err := c.FieldDefaults()
	if err != nil {
		return plan.Options{}, fmt.Errorf("defaults: %w", err)
	}

	return plan.Options{
		Defaults:    &defaults,
		Parallelism: c.Parallelism,
	}, nil
}

// GeneratorConfig returns the emitter configuration.
func (c *Config) GeneratorConfig() gen.GeneratorConfig {
	return gen.GeneratorConfig{
		Filename:         c.Output,
		GenerateComments: c.Comments,
	}
}

// LoggerConfig returns the logger configuration, writing to out.
func (c *Config) LoggerConfig(out io.Writer) *logger.Config {
	cfg := logger.DefaultConfig()
	cfg.Level = logger.LogLevel(c.Log.Level)
	cfg.JSON = c.Log.JSON

	if out != nil {
		cfg.Output = out
	}

	return cfg
}
