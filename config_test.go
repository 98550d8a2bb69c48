package repr

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, Config{MaximumLength: 50, MaximumDepth: 3, MaximumElements: 3}, cfg)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader("maximum_length: 10\nmaximum_elements: 1\n"))
	require.NoError(t, err)
	assert.Equal(t, Config{MaximumLength: 10, MaximumDepth: 3, MaximumElements: 1}, cfg)

	g := cfg.NewGenerator()
	AssertGenerate(t, g, []string{"a very long string indeed", "b"}, `["a very lon..., <+1>]`)
}

func TestLoadConfigEmpty(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(strings.NewReader("maximum_width: 3\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding configuration")

	_, err = LoadConfig(strings.NewReader("maximum_length: [1]\n"))
	require.Error(t, err)

	_, err = LoadConfig(strings.NewReader("maximum_depth: -1\n"))
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		config Config
		field  string
	}{
		{Config{MaximumLength: 0, MaximumDepth: 3, MaximumElements: 3}, "maximum_length"},
		{Config{MaximumLength: 1, MaximumDepth: -1, MaximumElements: 3}, "maximum_depth"},
		{Config{MaximumLength: 1, MaximumDepth: 0, MaximumElements: -2}, "maximum_elements"},
	}

	for _, test := range tests {
		err := test.config.Validate()
		require.ErrorIs(t, err, ErrInvalidConfig)
		assert.Contains(t, err.Error(), test.field)
	}

	assert.NoError(t, Config{MaximumLength: 1}.Validate())
}
