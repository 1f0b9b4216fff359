// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package padding

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseConfig(t *testing.T) {
	config, err := ParseConfig([]byte(`
dims: 2
padding: [valid, causal]
kernel: [3, 4]
rate: 1
input: [16, 16]
`))
	require.NoError(t, err)
	assert.Equal(t, 2, config.Dims)
	assert.Equal(t, Values[Policy]{PolicyValid, PolicyCausal}, config.Padding)
	assert.Equal(t, Values[int]{3, 4}, config.Kernel)
	assert.Equal(t, Values[int]{1}, config.Rate)
	assert.Empty(t, config.Strides)
	assert.Equal(t, []int{16, 16}, config.Input)

	plan, err := config.Builder().Done()
	require.NoError(t, err)
	assert.Equal(t, Plan{{0, 0}, {3, 0}}, plan)
	outputDims, err := config.Builder().OutputDims(config.Input...)
	require.NoError(t, err)
	assert.Equal(t, []int{14, 16}, outputDims)
}

func TestParseConfigScalars(t *testing.T) {
	config, err := ParseConfig([]byte("dims: 3\npadding: same\nkernel: 3\n"))
	require.NoError(t, err)
	assert.Equal(t, Values[Policy]{PolicySame}, config.Padding)
	plan, err := config.Builder().Done()
	require.NoError(t, err)
	assert.Equal(t, Plan{{1, 1}, {1, 1}, {1, 1}}, plan)

	// JSON is a subset of YAML.
	config, err = ParseConfig([]byte(`{"dims": 1, "padding": "same", "kernel": 3, "rate": 2}`))
	require.NoError(t, err)
	plan, err = config.Builder().Done()
	require.NoError(t, err)
	assert.Equal(t, Plan{{2, 2}}, plan)

	// Empty configuration: no spatial axes.
	config, err = ParseConfig(nil)
	require.NoError(t, err)
	plan, err = config.Builder().Done()
	require.NoError(t, err)
	assert.Empty(t, plan)
}

func TestParseConfigErrors(t *testing.T) {
	_, err := ParseConfig([]byte("dims: 1\npadding: mirror\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mirror")

	_, err = ParseConfig([]byte("dims: -2\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	_, err = ParseConfig([]byte("dims: 1\nkernel: [3, x]\n"))
	require.Error(t, err)

	// Arity is only checked when the plan is built.
	config, err := ParseConfig([]byte("dims: 3\nkernel: [3, 3]\n"))
	require.NoError(t, err)
	_, err = config.Builder().Done()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrArityMismatch))
}

func TestLoadConfig(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "padding.yaml")
	require.NoError(t, os.WriteFile(filePath, []byte("dims: 1\npadding: reverse_causal\nkernel: 5\n"), 0o644))
	config, err := LoadConfig(filePath)
	require.NoError(t, err)
	plan, err := config.Builder().Done()
	require.NoError(t, err)
	assert.Equal(t, Plan{{0, 4}}, plan)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.yaml")
}

func TestConfigMarshal(t *testing.T) {
	config := &Config{
		Dims:    2,
		Padding: Values[Policy]{PolicySame, PolicyReverseCausal},
		Kernel:  Values[int]{3},
	}
	contents, err := yaml.Marshal(config)
	require.NoError(t, err)
	parsed, err := ParseConfig(contents)
	require.NoError(t, err)
	assert.Equal(t, config, parsed)
}
