// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package padding

import (
	"fmt"
	"strings"

	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
)

// Policy is an enum for the supported padding policies.
//
// It is converted to snake-format strings (e.g.: PolicyReverseCausal -> "reverse_causal"), and can be converted
// from string by using PolicyString or FromName.
type Policy int

const (
	// PolicyValid doesn't pad. It is the default.
	PolicyValid Policy = iota
	PolicySame
	PolicyFull
	PolicyCausal
	PolicyReverseCausal
)

//go:generate go tool enumer -type=Policy -trimprefix=Policy -transform=snake -values -text -json -yaml policy.go

// Valid doesn't pad: the output shrinks by effectiveKernelSize-1.
func Valid(effectiveKernelSize int) (before, after int) {
	return 0, 0
}

// Same pads such that the output has the same size as the input, for stride 1.
//
// For an even-sized kernel the padding is asymmetric, with the extra unit going after.
func Same(effectiveKernelSize int) (before, after int) {
	return (effectiveKernelSize - 1) / 2, effectiveKernelSize / 2
}

// Full is the maximal padding such that the kernel never convolves over padding only.
func Full(effectiveKernelSize int) (before, after int) {
	return effectiveKernelSize - 1, effectiveKernelSize - 1
}

// Causal pads only before, so the output at each position has no dependence on the future.
func Causal(effectiveKernelSize int) (before, after int) {
	return effectiveKernelSize - 1, 0
}

// ReverseCausal pads only after, so the output at each position has no dependence on the past.
func ReverseCausal(effectiveKernelSize int) (before, after int) {
	return 0, effectiveKernelSize - 1
}

// Apply the policy to the given effective kernel size, and return the pair [before, after].
//
// effectiveKernelSize must be >= 1. It panics if the policy is not one of PolicyValues.
func (p Policy) Apply(effectiveKernelSize int) (pad [2]int) {
	switch p {
	case PolicyValid:
		pad[0], pad[1] = Valid(effectiveKernelSize)
	case PolicySame:
		pad[0], pad[1] = Same(effectiveKernelSize)
	case PolicyFull:
		pad[0], pad[1] = Full(effectiveKernelSize)
	case PolicyCausal:
		pad[0], pad[1] = Causal(effectiveKernelSize)
	case PolicyReverseCausal:
		pad[0], pad[1] = ReverseCausal(effectiveKernelSize)
	default:
		exceptions.Panicf("Policy.Apply got invalid padding policy %d: options are %v", int(p), PolicyValues())
	}
	return
}

// FromName converts the name of a padding policy to its type. Surrounding spaces are ignored, and the name
// is case-insensitive.
//
// An empty string is converted to PolicyValid.
//
// An unknown name returns an error that wraps both ErrInvalidArgument and the enum parsing error.
func FromName(name string) (Policy, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return PolicyValid, nil
	}
	p, err := PolicyString(name)
	if err != nil {
		return PolicyValid, errors.WithStack(fmt.Errorf("invalid padding policy name %q, options are %v: %w: %w",
			name, PolicyValues(), ErrInvalidArgument, err))
	}
	return p, nil
}
