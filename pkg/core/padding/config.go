// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package padding

import (
	"os"

	"github.com/gomlx/convpad/pkg/support/fsutil"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Values holds either a single value, used for every spatial axis, or one value per axis.
//
// In YAML (or JSON) it can be written as a scalar (`kernel: 3`) or as a list (`kernel: [3, 5]`).
type Values[T any] []T

// UnmarshalYAML implements yaml.Unmarshaler, accepting both a scalar and a sequence.
func (v *Values[T]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var value T
		if err := node.Decode(&value); err != nil {
			return err
		}
		*v = Values[T]{value}
		return nil
	}
	var values []T
	if err := node.Decode(&values); err != nil {
		return err
	}
	*v = values
	return nil
}

// Config describes the padding of a convolution. It can be read from YAML (or JSON) with ParseConfig
// or LoadConfig. Example:
//
//	dims: 2
//	padding: [same, causal]
//	kernel: 3
//	rate: [1, 2]
//	strides: 1
//	input: [32, 100]
type Config struct {
	// Dims is the number of spatial axes.
	Dims int `yaml:"dims" json:"dims"`

	Padding Values[Policy] `yaml:"padding,omitempty" json:"padding,omitempty"`
	Kernel  Values[int]    `yaml:"kernel,omitempty" json:"kernel,omitempty"`
	Rate    Values[int]    `yaml:"rate,omitempty" json:"rate,omitempty"`
	Strides Values[int]    `yaml:"strides,omitempty" json:"strides,omitempty"`

	// Input optionally holds the spatial dimensions of the input, used to report output dimensions.
	Input []int `yaml:"input,omitempty" json:"input,omitempty"`
}

// ParseConfig parses a YAML (or JSON) padding configuration. Fields left empty take the defaults of Build.
func ParseConfig(contents []byte) (*Config, error) {
	config := &Config{}
	if err := yaml.Unmarshal(contents, config); err != nil {
		return nil, errors.Wrap(err, "failed to parse padding configuration")
	}
	if config.Dims < 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "padding configuration has dims=%d, it must be >= 0", config.Dims)
	}
	return config, nil
}

// LoadConfig reads and parses the padding configuration in filePath. A leading "~" is expanded to the
// user's home directory.
func LoadConfig(filePath string) (*Config, error) {
	filePath, err := fsutil.ExpandHome(filePath)
	if err != nil {
		return nil, err
	}
	exists, err := fsutil.FileExists(filePath)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errors.Errorf("padding configuration file %q doesn't exist", filePath)
	}
	contents, err := os.ReadFile(filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read padding configuration from %q", filePath)
	}
	config, err := ParseConfig(contents)
	if err != nil {
		return nil, errors.WithMessagef(err, "configuration file %q", filePath)
	}
	return config, nil
}

// Builder returns a Builder configured with the values of config.
func (config *Config) Builder() *Builder {
	b := Build(config.Dims)
	if len(config.Padding) > 0 {
		b.PolicyPerAxis(config.Padding...)
	}
	if len(config.Kernel) > 0 {
		b.KernelPerAxis(config.Kernel...)
	}
	if len(config.Rate) > 0 {
		b.DilationPerAxis(config.Rate...)
	}
	if len(config.Strides) > 0 {
		b.StridePerAxis(config.Strides...)
	}
	return b
}
