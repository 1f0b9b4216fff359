// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package padding

// Builder is a helper to configure the padding of a convolution with an arbitrary number of spatial axes.
// Create it with Build, set the desired parameters and call Done to get the Plan.
//
// The setters never fail: arguments are only validated by Done and OutputDims.
type Builder struct {
	numSpatialDims int
	policies       []Policy
	kernels        []int
	dilations      []int
	strides        []int
}

// Build prepares the padding plan for numSpatialDims spatial axes (1D, 2D, 3D, etc.).
//
// The defaults are PolicyValid (no padding), kernel size 1, dilation 1 and stride 1 for every axis.
func Build(numSpatialDims int) *Builder {
	return &Builder{
		numSpatialDims: numSpatialDims,
		policies:       []Policy{PolicyValid},
		kernels:        []int{1},
		dilations:      []int{1},
		strides:        []int{1},
	}
}

// NumSpatialDims returns the number of spatial axes the builder was created for.
func (b *Builder) NumSpatialDims() int {
	return b.numSpatialDims
}

// Policy sets the padding policy used for every axis.
func (b *Builder) Policy(policy Policy) *Builder {
	b.policies = []Policy{policy}
	return b
}

// PolicyPerAxis sets one padding policy per spatial axis.
func (b *Builder) PolicyPerAxis(policies ...Policy) *Builder {
	b.policies = policies
	return b
}

// Kernel sets the kernel size used for every axis.
func (b *Builder) Kernel(kernelSize int) *Builder {
	b.kernels = []int{kernelSize}
	return b
}

// KernelPerAxis sets the kernel size for each spatial axis.
func (b *Builder) KernelPerAxis(kernelSizes ...int) *Builder {
	b.kernels = kernelSizes
	return b
}

// Dilations sets the kernel dilation used for every axis.
//
// The effective kernel size is `(kernel - 1) * dilation + 1`, obtained by inserting (dilation-1) holes
// between consecutive elements of the kernel.
func (b *Builder) Dilations(dilation int) *Builder {
	b.dilations = []int{dilation}
	return b
}

// DilationPerAxis sets the kernel dilation for each spatial axis.
func (b *Builder) DilationPerAxis(dilations ...int) *Builder {
	b.dilations = dilations
	return b
}

// Strides sets the stride used for every axis. It only affects OutputDims.
func (b *Builder) Strides(stride int) *Builder {
	b.strides = []int{stride}
	return b
}

// StridePerAxis sets the stride for each spatial axis. It only affects OutputDims.
func (b *Builder) StridePerAxis(strides ...int) *Builder {
	b.strides = strides
	return b
}

// Done returns the padding plan, one [before, after] pair per spatial axis.
func (b *Builder) Done() (Plan, error) {
	return Create(b.policies, b.kernels, b.dilations, b.numSpatialDims)
}

// OutputDims returns the spatial output dimensions of the convolution for the given spatial input dimensions,
// taking into account paddings, dilations and strides.
func (b *Builder) OutputDims(inputDims ...int) ([]int, error) {
	plan, err := b.Done()
	if err != nil {
		return nil, err
	}
	return OutputDims(inputDims, plan, b.kernels, b.dilations, b.strides)
}
