// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package padding

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder(t *testing.T) {
	// Defaults: no padding, kernel 1.
	plan, err := Build(2).Done()
	require.NoError(t, err)
	assert.Equal(t, Plan{{0, 0}, {0, 0}}, plan)

	b := Build(2).Policy(PolicySame).Kernel(3).Dilations(2)
	assert.Equal(t, 2, b.NumSpatialDims())
	plan, err = b.Done()
	require.NoError(t, err)
	assert.Equal(t, Plan{{2, 2}, {2, 2}}, plan)
	outputDims, err := b.OutputDims(10, 5)
	require.NoError(t, err)
	assert.Equal(t, []int{10, 5}, outputDims)

	b = Build(3).
		PolicyPerAxis(PolicyCausal, PolicyValid, PolicyFull).
		KernelPerAxis(3, 2, 2).
		DilationPerAxis(1, 1, 2).
		StridePerAxis(1, 2, 1)
	plan, err = b.Done()
	require.NoError(t, err)
	assert.Equal(t, Plan{{2, 0}, {0, 0}, {2, 2}}, plan)
	outputDims, err = b.OutputDims(10, 10, 10)
	require.NoError(t, err)
	assert.Equal(t, []int{10, 5, 12}, outputDims)

	outputDims, err = Build(1).Kernel(5).Strides(2).OutputDims(11)
	require.NoError(t, err)
	assert.Equal(t, []int{4}, outputDims)
}

func TestBuilderErrors(t *testing.T) {
	_, err := Build(3).KernelPerAxis(1, 2).Done()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrArityMismatch))
	assert.Contains(t, err.Error(), `"kernel"`)

	_, err = Build(2).Dilations(0).Done()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	_, err = Build(2).StridePerAxis(1, 1, 1).OutputDims(4, 4)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrArityMismatch))
	assert.Contains(t, err.Error(), `"strides"`)

	_, err = Build(2).PolicyPerAxis(PolicySame).KernelPerAxis(3, 3, 3).OutputDims(4, 4)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrArityMismatch))
}

func TestBuilderReport(t *testing.T) {
	reports, err := Build(2).PolicyPerAxis(PolicySame, PolicyCausal).Kernel(3).DilationPerAxis(2, 1).Report()
	require.NoError(t, err)
	assert.Equal(t, []AxisReport{
		{Axis: 0, Policy: PolicySame, Kernel: 3, Rate: 2, Stride: 1, EffectiveKernel: 5, Before: 2, After: 2},
		{Axis: 1, Policy: PolicyCausal, Kernel: 3, Rate: 1, Stride: 1, EffectiveKernel: 3, Before: 2, After: 0},
	}, reports)

	reports, err = Build(1).Policy(PolicyValid).Kernel(4).Strides(2).Report(1000)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, 1000, reports[0].Input)
	assert.Equal(t, 499, reports[0].Output)

	_, err = Build(1).Strides(0).Report()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	assert.Contains(t, err.Error(), `"strides"`)

	_, err = Build(2).Report(3)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrArityMismatch))

	// Every per-axis value is validated, even without input dimensions.
	_, err = Build(2).StridePerAxis(1, 2, 3).Report()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrArityMismatch))
	assert.Contains(t, err.Error(), `"strides"`)

	_, err = Build(2).KernelPerAxis(3, 3, 3).Report()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrArityMismatch))
	assert.Contains(t, err.Error(), `"kernel"`)

	_, err = Build(1).Kernel(1 << 40).Dilations(1 << 40).Report()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	assert.Contains(t, err.Error(), "overflows")
}
