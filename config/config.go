// Package config provides configuration loading and validation for the
// binding generator.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"

	"github.com/EsotericSoftware/spine-cpp-lite-codegen/generator"
	"github.com/EsotericSoftware/spine-cpp-lite-codegen/parser"
)

// Sentinel validation errors.
var (
	ErrEmptyHeaderPath  = errors.New("header path must not be empty")
	ErrInvalidIndent    = errors.New("indent must be between 1 and 8")
	ErrInvalidLogFormat = errors.New("log format must be text or json")
	ErrEmptyHandle      = errors.New("swift handle field must not be empty")
)

// DefaultFile is read from the working directory when no config path is given.
const DefaultFile = "spinegen.yaml"

const (
	defaultHeader = "spine-cpp-lite.h"
	defaultIndent = 4
	maxIndent     = 8
	envPrefix     = "SPINEGEN"
)

// Config holds all configuration for one generator run.
type Config struct {
	Header  string        `mapstructure:"header"`
	Output  string        `mapstructure:"output"`
	Markers MarkersConfig `mapstructure:"markers"`
	Syntax  SyntaxConfig  `mapstructure:"syntax"`
	Swift   SwiftConfig   `mapstructure:"swift"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// MarkersConfig names the header sections.
type MarkersConfig struct {
	OpaqueTypes           string   `mapstructure:"opaque_types"`
	OpaqueTypesEndAliases []string `mapstructure:"opaque_types_end_aliases"`
	Enums                 string   `mapstructure:"enums"`
	Functions             string   `mapstructure:"functions"`
}

// SyntaxConfig holds the header's macro and naming conventions.
type SyntaxConfig struct {
	ExportMacro string `mapstructure:"export_macro"`
	OpaqueMacro string `mapstructure:"opaque_macro"`
	TypePrefix  string `mapstructure:"type_prefix"`
}

// SwiftConfig shapes the emitted file.
type SwiftConfig struct {
	Imports          []string `mapstructure:"imports"`
	HandleField      string   `mapstructure:"handle_field"`
	Indent           int      `mapstructure:"indent"`
	SkipEmptyClasses bool     `mapstructure:"skip_empty_classes"`
}

// LoggingConfig holds logging-specific configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads defaults, then the config file (configPath, or spinegen.yaml in
// the working directory when empty), then SPINEGEN_* environment variables.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	explicit := configPath != ""
	if !explicit {
		configPath = DefaultFile
	}
	v.SetConfigFile(configPath)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Only a missing default file is tolerated; an explicit path must exist.
	readErr := v.ReadInConfig()
	if readErr != nil && (explicit || !errors.Is(readErr, fs.ErrNotExist)) {
		return nil, fmt.Errorf("failed to read config file: %w", readErr)
	}

	var cfg Config

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	syntax := parser.DefaultSyntax()
	opts := generator.DefaultOptions()

	v.SetDefault("header", defaultHeader)
	v.SetDefault("output", "")

	v.SetDefault("markers.opaque_types", syntax.OpaqueTypesSection)
	v.SetDefault("markers.opaque_types_end_aliases", syntax.OpaqueTypesEndAliases)
	v.SetDefault("markers.enums", syntax.EnumsSection)
	v.SetDefault("markers.functions", syntax.FunctionsSection)

	v.SetDefault("syntax.export_macro", syntax.ExportMacro)
	v.SetDefault("syntax.opaque_macro", syntax.OpaqueMacro)
	v.SetDefault("syntax.type_prefix", opts.TypePrefix)

	v.SetDefault("swift.imports", opts.Imports)
	v.SetDefault("swift.handle_field", opts.Handle)
	v.SetDefault("swift.indent", defaultIndent)
	v.SetDefault("swift.skip_empty_classes", false)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

// Validate checks the values Load cannot default away.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Header) == "" {
		return ErrEmptyHeaderPath
	}

	if c.Swift.Indent < 1 || c.Swift.Indent > maxIndent {
		return fmt.Errorf("%w: %d", ErrInvalidIndent, c.Swift.Indent)
	}

	if c.Swift.HandleField == "" {
		return ErrEmptyHandle
	}

	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.Logging.Format)
	}

	return nil
}

// ParserSyntax returns the parser settings.
func (c *Config) ParserSyntax() parser.Syntax {
	return parser.Syntax{
		OpaqueTypesSection:    c.Markers.OpaqueTypes,
		OpaqueTypesEndAliases: c.Markers.OpaqueTypesEndAliases,
		EnumsSection:          c.Markers.Enums,
		FunctionsSection:      c.Markers.Functions,
		OpaqueMacro:           c.Syntax.OpaqueMacro,
		ExportMacro:           c.Syntax.ExportMacro,
	}
}

// GeneratorOptions returns the emitter settings.
func (c *Config) GeneratorOptions() generator.Options {
	return generator.Options{
		Imports:          c.Swift.Imports,
		Handle:           c.Swift.HandleField,
		TypePrefix:       c.Syntax.TypePrefix,
		Indent:           c.Swift.Indent,
		SkipEmptyClasses: c.Swift.SkipEmptyClasses,
	}
}
