// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package padding computes the paddings of convolution-like operations with an arbitrary number of
// spatial axes.
//
// A padding Policy maps the effective kernel size of an axis (the kernel size once dilation holes are
// accounted for) to the number of padding elements before and after that axis:
//
//   - PolicyValid: no padding.
//   - PolicySame: the output has the same size as the input, for stride 1.
//   - PolicyFull: maximal padding such that the kernel never convolves over padding only.
//   - PolicyCausal: all padding before, the output never depends on the future.
//   - PolicyReverseCausal: all padding after, the output never depends on the past.
//
// Create (or the fluent Build) combines policies, kernel sizes and dilation rates into a Plan,
// one [before, after] pair per spatial axis:
//
//	plan, err := padding.Create([]padding.Policy{padding.PolicySame}, []int{3}, []int{2}, 1)
//	// plan == padding.Plan{{2, 2}}
//
// All functions are pure and safe for concurrent use.
package padding
