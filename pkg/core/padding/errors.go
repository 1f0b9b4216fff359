// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package padding

import "github.com/pkg/errors"

var (
	// ErrArityMismatch is returned when a per-axis argument has neither 1 value nor one value per spatial axis.
	// The error message names the offending argument.
	ErrArityMismatch = errors.New("arity mismatch")

	// ErrInvalidArgument is returned for values outside their domain: non-positive kernel sizes, dilation
	// rates, strides or input sizes, a negative number of spatial dimensions or an unknown padding policy.
	ErrInvalidArgument = errors.New("invalid argument")
)
