// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package padding

import (
	"math"
	"slices"

	"github.com/gomlx/convpad/pkg/support/xslices"
	"github.com/pkg/errors"
)

// replicate returns values with exactly n elements, one per spatial axis.
//
// A single value is broadcast to all n axes, and n values are returned as a copy.
// Any other length fails with ErrArityMismatch, naming the argument.
func replicate[T any](values []T, n int, name string) ([]T, error) {
	switch {
	case len(values) == n:
		return slices.Clone(values), nil
	case len(values) == 1:
		return xslices.SliceWithValue(n, values[0]), nil
	}
	return nil, errors.Wrapf(ErrArityMismatch, "%q has %d values, but it must have either 1 or %d (one per spatial axis)",
		name, len(values), n)
}

// checkPositive returns ErrInvalidArgument if any of the values is < 1.
func checkPositive(values []int, name string) error {
	for axis, v := range values {
		if v < 1 {
			return errors.Wrapf(ErrInvalidArgument, "%q must be >= 1 for every axis, got %d for axis #%d",
				name, v, axis)
		}
	}
	return nil
}

// checkEffectiveKernelSizes returns ErrInvalidArgument if the effective kernel size of any axis doesn't fit an int.
// kernels and rates must already be validated to be >= 1.
func checkEffectiveKernelSizes(kernels, rates []int) error {
	for axis, kernel := range kernels {
		if kernel > 1 && rates[axis] > (math.MaxInt-1)/(kernel-1) {
			return errors.Wrapf(ErrInvalidArgument, "kernel %d with rate %d for axis #%d overflows the effective kernel size",
				kernel, rates[axis], axis)
		}
	}
	return nil
}

// axesConfig holds the padding policies, kernel sizes and dilation rates of a convolution, one per spatial axis.
type axesConfig struct {
	policies []Policy
	kernels  []int
	rates    []int
}

// newAxesConfig replicates padding, kernel and rate to n axes and validates them.
// It implements all the checks of Create.
func newAxesConfig(padding []Policy, kernel, rate []int, n int) (*axesConfig, error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "the number of spatial axes must be >= 0, got %d", n)
	}
	var err error
	c := &axesConfig{}
	if c.policies, err = replicate(padding, n, "padding"); err != nil {
		return nil, err
	}
	if c.kernels, err = replicate(kernel, n, "kernel"); err != nil {
		return nil, err
	}
	if c.rates, err = replicate(rate, n, "rate"); err != nil {
		return nil, err
	}
	if err = checkPositive(c.kernels, "kernel"); err != nil {
		return nil, err
	}
	if err = checkPositive(c.rates, "rate"); err != nil {
		return nil, err
	}
	if err = checkEffectiveKernelSizes(c.kernels, c.rates); err != nil {
		return nil, err
	}
	for axis, p := range c.policies {
		if !p.IsAPolicy() {
			return nil, errors.Wrapf(ErrInvalidArgument, "invalid padding policy %d for axis #%d: options are %v",
				int(p), axis, PolicyValues())
		}
	}
	return c, nil
}

// plan applies the policy of each axis to its effective kernel size.
func (c *axesConfig) plan() Plan {
	plan := make(Plan, len(c.policies))
	for axis := range plan {
		plan[axis] = c.policies[axis].Apply(EffectiveKernelSize(c.kernels[axis], c.rates[axis]))
	}
	return plan
}
