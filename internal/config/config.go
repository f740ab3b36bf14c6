// Package config provides configuration management for the sqmat CLI using
// Viper for loading from a YAML file, environment variables and flags.
//
// Precedence (highest to lowest):
//  1. Command-line flags (--type, --output, --dim, --log-level)
//  2. SQMAT_<KEY> environment variables (SQMAT_ELEMENT_TYPE, SQMAT_OUTPUT, ...)
//  3. The configuration file (--config, or .sqmat.yaml in the working directory)
//  4. Built-in defaults
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Configuration keys.
const (
	KeyElementType = "element_type"
	KeyOutput      = "output"
	KeyDim         = "dim"
	KeyLogLevel    = "log_level"
)

// Element types accepted by the CLI.
const (
	ElementInt   = "int"
	ElementFloat = "float"
)

// Output formats accepted by the CLI.
const (
	OutputText = "text"
	OutputYAML = "yaml"
	OutputJSON = "json"
)

// Defaults.
const (
	DefaultElementType = ElementFloat
	DefaultOutput      = OutputText
	DefaultDim         = 0 // infer from input
	DefaultLogLevel    = "warn"

	EnvPrefix  = "SQMAT"
	ConfigName = ".sqmat"
	ConfigType = "yaml"
)

var (
	ErrUnknownElementType = errors.New("config: unknown element type")
	ErrUnknownOutput      = errors.New("config: unknown output format")
	ErrNegativeDim        = errors.New("config: dim must be >= 0")
	ErrUnknownLogLevel    = errors.New("config: unknown log level")
)

// Config is the resolved CLI configuration.
type Config struct {
	ElementType string `mapstructure:"element_type" yaml:"element_type"`
	Output      string `mapstructure:"output" yaml:"output"`
	Dim         int    `mapstructure:"dim" yaml:"dim"`
	LogLevel    string `mapstructure:"log_level" yaml:"log_level"`
}

// flagKeys maps CLI flag names to configuration keys.
var flagKeys = map[string]string{
	"type":      KeyElementType,
	"output":    KeyOutput,
	"dim":       KeyDim,
	"log-level": KeyLogLevel,
}

// New returns a Viper instance with defaults, SQMAT_ environment binding and
// the configuration file loaded. An empty cfgFile searches for .sqmat.yaml in
// the working directory; a missing default file is not an error.
func New(cfgFile string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(KeyElementType, DefaultElementType)
	v.SetDefault(KeyOutput, DefaultOutput)
	v.SetDefault(KeyDim, DefaultDim)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(ConfigName)
		v.SetConfigType(ConfigType)
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: reading config: %w", err)
		}
	}

	return v, nil
}

// BindFlags binds the known flags of fs to their configuration keys.
// Flags that are not defined on fs are skipped.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("config: binding flag %q: %w", name, err)
		}
	}

	return nil
}

// Load unmarshals and validates the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	cfg.ElementType = strings.ToLower(strings.TrimSpace(cfg.ElementType))
	cfg.Output = strings.ToLower(strings.TrimSpace(cfg.Output))
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks every field against its accepted values.
func (c *Config) Validate() error {
	switch c.ElementType {
	case ElementInt, ElementFloat:
	default:
		return fmt.Errorf("%w: %q (want %s or %s)", ErrUnknownElementType, c.ElementType, ElementInt, ElementFloat)
	}

	switch c.Output {
	case OutputText, OutputYAML, OutputJSON:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOutput, c.Output)
	}

	if c.Dim < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeDim, c.Dim)
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrUnknownLogLevel, c.LogLevel)
	}

	return nil
}
