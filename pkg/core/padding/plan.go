// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package padding

import (
	"fmt"
	"strings"

	"github.com/gomlx/convpad/pkg/support/xslices"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Plan holds the paddings [before, after] for each spatial axis, in the axes order.
//
// It can be used directly where a [][2]int paddings argument is expected (e.g., a convolution's PaddingPerDim).
type Plan [][2]int

// String implements fmt.Stringer.
func (plan Plan) String() string {
	parts := xslices.Map(plan, func(pad [2]int) string {
		return fmt.Sprintf("(%d, %d)", pad[0], pad[1])
	})
	return "[" + strings.Join(parts, ", ") + "]"
}

// Total returns the total padding (before+after) for each axis.
func (plan Plan) Total() []int {
	return xslices.Map(plan, func(pad [2]int) int { return pad[0] + pad[1] })
}

// EffectiveKernelSize is the size of the kernel once the holes inserted by the dilation rate are accounted for.
// It is equal to kernelSize when rate is 1.
//
// It doesn't check for overflows: Create and OutputDims reject kernel sizes and rates whose effective kernel
// size doesn't fit an int.
func EffectiveKernelSize(kernelSize, rate int) int {
	return (kernelSize-1)*rate + 1
}

// Create generates the padding for each of the n spatial axes.
//
// Each of padding, kernel and rate holds either a single value, used for every axis, or one value per axis.
// kernel and rate must be >= 1: the padding policy is applied to the effective kernel size of each axis
// (see EffectiveKernelSize).
//
// It returns an error wrapping ErrArityMismatch if an argument has the wrong number of values, or
// ErrInvalidArgument for values out of their domain, including a kernel size and rate whose effective kernel
// size overflows an int. A plan is never partially computed.
//
// For n == 0 it returns an empty plan.
func Create(padding []Policy, kernel, rate []int, n int) (Plan, error) {
	c, err := newAxesConfig(padding, kernel, rate, n)
	if err != nil {
		return nil, err
	}
	plan := c.plan()
	if klog.V(2).Enabled() {
		klog.Infof("padding.Create(padding=%v, kernel=%v, rate=%v) -> %s", c.policies, c.kernels, c.rates, plan)
	}
	return plan, nil
}

// MustCreate is like Create, but it panics with the error if the arguments are invalid.
//
// Use exceptions.TryCatch[error] to recover the error: it still wraps ErrArityMismatch or ErrInvalidArgument.
func MustCreate(padding []Policy, kernel, rate []int, n int) Plan {
	plan, err := Create(padding, kernel, rate, n)
	if err != nil {
		panic(errors.WithMessage(err, "padding.MustCreate"))
	}
	return plan
}
