// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package padding

import (
	"math"

	"github.com/pkg/errors"
)

// OutputSize returns the size of the output of a convolution (or a pooling window) along one axis, for an input
// of size inputSize padded with pad.
//
// output_size = floor((inputSize + pad[0] + pad[1] - effectiveKernelSize) / stride) + 1
//
// It returns an error wrapping ErrInvalidArgument if the padded input is smaller than the effective kernel,
// or if its size overflows an int.
func OutputSize(inputSize, effectiveKernelSize, stride int, pad [2]int) (int, error) {
	if inputSize < 1 || effectiveKernelSize < 1 || stride < 1 {
		return 0, errors.Wrapf(ErrInvalidArgument, "OutputSize requires inputSize, effectiveKernelSize and stride >= 1, "+
			"got %d, %d and %d", inputSize, effectiveKernelSize, stride)
	}
	if pad[0] < 0 || pad[1] < 0 {
		return 0, errors.Wrapf(ErrInvalidArgument, "OutputSize requires non-negative paddings, got %v", pad)
	}
	if pad[0] > math.MaxInt-inputSize || pad[1] > math.MaxInt-inputSize-pad[0] {
		return 0, errors.Wrapf(ErrInvalidArgument, "input size %d with paddings %v overflows the padded input size",
			inputSize, pad)
	}
	paddedInputSize := inputSize + pad[0] + pad[1]
	if effectiveKernelSize > paddedInputSize {
		return 0, errors.Wrapf(ErrInvalidArgument, "effective kernel size %d is larger than the padded input size %d "+
			"(input size %d, paddings %v)", effectiveKernelSize, paddedInputSize, inputSize, pad)
	}
	return (paddedInputSize-effectiveKernelSize)/stride + 1, nil
}

// OutputDims returns the spatial dimensions of the output of a convolution whose input has the spatial
// dimensions inputDims, padded by plan.
//
// kernel, rate and strides hold either one value used for every axis or one value per axis, as in Create.
func OutputDims(inputDims []int, plan Plan, kernel, rate, strides []int) ([]int, error) {
	n := len(plan)
	if len(inputDims) != n {
		return nil, errors.Wrapf(ErrArityMismatch, "%q has %d values, but the padding plan has %d spatial axes",
			"input", len(inputDims), n)
	}
	kernels, err := replicate(kernel, n, "kernel")
	if err != nil {
		return nil, err
	}
	rates, err := replicate(rate, n, "rate")
	if err != nil {
		return nil, err
	}
	stridesPerAxis, err := replicate(strides, n, "strides")
	if err != nil {
		return nil, err
	}
	for _, check := range []struct {
		values []int
		name   string
	}{{kernels, "kernel"}, {rates, "rate"}, {stridesPerAxis, "strides"}, {inputDims, "input"}} {
		if err = checkPositive(check.values, check.name); err != nil {
			return nil, err
		}
	}
	if err = checkEffectiveKernelSizes(kernels, rates); err != nil {
		return nil, err
	}

	outputDims := make([]int, n)
	for axis := range outputDims {
		outputDims[axis], err = OutputSize(inputDims[axis], EffectiveKernelSize(kernels[axis], rates[axis]),
			stridesPerAxis[axis], plan[axis])
		if err != nil {
			return nil, errors.WithMessagef(err, "axis #%d", axis)
		}
	}
	return outputDims, nil
}
