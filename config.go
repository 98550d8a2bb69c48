package repr

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid repr configuration")

// Config holds the limits of a Generator.
type Config struct {
	MaximumLength   int `yaml:"maximum_length"`
	MaximumDepth    int `yaml:"maximum_depth"`
	MaximumElements int `yaml:"maximum_elements"`
}

func DefaultConfig() Config {
	return Config{
		MaximumLength:   50,
		MaximumDepth:    3,
		MaximumElements: 3,
	}
}

// LoadConfig reads a YAML document from r. Keys missing from the document
// keep their default value; unknown keys are an error.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("error decoding configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.MaximumLength <= 0 {
		return fmt.Errorf("%w: maximum_length must be positive, got %d", ErrInvalidConfig, c.MaximumLength)
	}
	if c.MaximumDepth < 0 {
		return fmt.Errorf("%w: maximum_depth must not be negative, got %d", ErrInvalidConfig, c.MaximumDepth)
	}
	if c.MaximumElements < 0 {
		return fmt.Errorf("%w: maximum_elements must not be negative, got %d", ErrInvalidConfig, c.MaximumElements)
	}
	return nil
}

func (c Config) NewGenerator() *Generator {
	return NewGenerator(c.MaximumLength, c.MaximumDepth, c.MaximumElements)
}
