// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package padding

// AxisReport describes the padding of one spatial axis, as configured by a Builder.
type AxisReport struct {
	Axis            int    `yaml:"axis" json:"axis"`
	Policy          Policy `yaml:"policy" json:"policy"`
	Kernel          int    `yaml:"kernel" json:"kernel"`
	Rate            int    `yaml:"rate" json:"rate"`
	Stride          int    `yaml:"stride" json:"stride"`
	EffectiveKernel int    `yaml:"effective_kernel" json:"effective_kernel"`
	Before          int    `yaml:"before" json:"before"`
	After           int    `yaml:"after" json:"after"`

	// Input and Output are only set if the input dimensions were given.
	Input  int `yaml:"input,omitempty" json:"input,omitempty"`
	Output int `yaml:"output,omitempty" json:"output,omitempty"`
}

// Report returns one AxisReport per spatial axis.
//
// inputDims is optional: if given, it must have one dimension per spatial axis, and the reports
// include the input and output sizes.
func (b *Builder) Report(inputDims ...int) ([]AxisReport, error) {
	n := b.numSpatialDims
	c, err := newAxesConfig(b.policies, b.kernels, b.dilations, n)
	if err != nil {
		return nil, err
	}
	strides, err := replicate(b.strides, n, "strides")
	if err != nil {
		return nil, err
	}
	if err = checkPositive(strides, "strides"); err != nil {
		return nil, err
	}
	plan := c.plan()
	var outputDims []int
	if len(inputDims) > 0 {
		outputDims, err = OutputDims(inputDims, plan, c.kernels, c.rates, strides)
		if err != nil {
			return nil, err
		}
	}

	reports := make([]AxisReport, n)
	for axis := range reports {
		r := &reports[axis]
		r.Axis = axis
		r.Policy = c.policies[axis]
		r.Kernel = c.kernels[axis]
		r.Rate = c.rates[axis]
		r.Stride = strides[axis]
		r.EffectiveKernel = EffectiveKernelSize(r.Kernel, r.Rate)
		r.Before, r.After = plan[axis][0], plan[axis][1]
		if outputDims != nil {
			r.Input = inputDims[axis]
			r.Output = outputDims[axis]
		}
	}
	return reports, nil
}
