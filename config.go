package strictjson

import (
	"bytes"
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultMaxRecursionDepth is the nesting limit of DefaultConfig.
	DefaultMaxRecursionDepth = 100
	// UnboundedRecursion disables the nesting limit when used as
	// Config.MaxRecursionDepth.
	UnboundedRecursion = 0
)

// Config is the configuration block for a Decoder.
type Config struct {
	// EnforceValidNumber checks numbers against the JSON grammar before
	// conversion. When false anything strconv.ParseFloat accepts is a number.
	EnforceValidNumber bool `yaml:"enforce_valid_number"`
	// MaxRecursionDepth bounds nesting; the document itself is depth 1.
	MaxRecursionDepth int `yaml:"max_recursion_depth"`
	// PromoteArrays turns arrays into matrices and record lists where that
	// loses nothing. When false arrays are always plain sequences.
	PromoteArrays bool `yaml:"promote_arrays"`
	// RejectLoneSurrogates makes an unpaired "\uD800"-style escape an error.
	// By default such an escape decodes as U+FFFD, so the original code unit
	// is lost.
	RejectLoneSurrogates bool `yaml:"reject_lone_surrogates"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		EnforceValidNumber:   true,
		MaxRecursionDepth:    DefaultMaxRecursionDepth,
		PromoteArrays:        true,
		RejectLoneSurrogates: false,
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.MaxRecursionDepth < 0 {
		return errors.Errorf("invalid max_recursion_depth %d: must be at least 1, or 0 for no limit", c.MaxRecursionDepth)
	}
	return nil
}

// LoadConfig reads a YAML configuration block. Fields it does not set keep
// their DefaultConfig values; unknown fields are an error.
func LoadConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, errors.Wrap(err, "parsing decoder config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
