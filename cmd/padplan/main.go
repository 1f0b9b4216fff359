// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// padplan prints the paddings of a convolution for each spatial axis, and optionally its output dimensions.
//
// Example:
//
//	padplan -n=2 -padding=same,causal -kernel=3 -rate=1,2 -input=32,100
//
// Alternatively, the configuration can be read from a YAML file with -config.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gomlx/convpad/pkg/core/padding"
	"github.com/gomlx/convpad/pkg/support/xslices"
	"github.com/janpfeifer/must"
	"github.com/muesli/termenv"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

var (
	flagNumSpatialDims = flag.Int("n", 1, "Number of spatial axes of the convolution.")
	flagPadding        = xslices.Flag("padding", []padding.Policy{padding.PolicyValid},
		fmt.Sprintf("Comma-separated padding policies, either one for all axes or one per axis. Valid values: %v",
			padding.PolicyStrings()), parsePolicy)
	flagKernel = xslices.Flag("kernel", []int{1},
		"Comma-separated kernel sizes, either one for all axes or one per axis.", xslices.ParseInt)
	flagRate = xslices.Flag("rate", []int{1},
		"Comma-separated kernel dilation rates, either one for all axes or one per axis.", xslices.ParseInt)
	flagStrides = xslices.Flag("strides", []int{1},
		"Comma-separated strides, either one for all axes or one per axis. Only used for the output dimensions.",
		xslices.ParseInt)
	flagInput = xslices.Flag("input", nil,
		"Comma-separated input spatial dimensions, one per axis. If set, output dimensions are reported.",
		xslices.ParseInt)
	flagConfig = flag.String("config", "", "YAML file with the padding configuration. "+
		"If set, it replaces the -n, -padding, -kernel, -rate, -strides and -input flags.")
	flagFormat = flag.String("format", "table", "Output format: table, yaml or json.")
	flagPlain  = flag.Bool("plain", false, "Disable colors in the table output.")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	if len(flag.Args()) > 0 {
		klog.Errorf("Unexpected arguments %q. See 'padplan -help'.", flag.Args())
		os.Exit(1)
	}
	if *flagPlain {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	config := configFromFlags()
	if *flagConfig != "" {
		config = must.M1(padding.LoadConfig(*flagConfig))
	}
	reports, err := config.Builder().Report(config.Input...)
	if err != nil {
		klog.Errorf("Invalid padding configuration: %v", err)
		os.Exit(1)
	}
	output, err := render(reports, *flagFormat)
	if err != nil {
		klog.Errorf("Failed to render padding plan: %+v", err)
		os.Exit(1)
	}
	fmt.Println(output)
}

// configFromFlags converts the command-line flags to a padding configuration.
func configFromFlags() *padding.Config {
	return &padding.Config{
		Dims:    *flagNumSpatialDims,
		Padding: *flagPadding,
		Kernel:  *flagKernel,
		Rate:    *flagRate,
		Strides: *flagStrides,
		Input:   *flagInput,
	}
}

// parsePolicy parses one item of the -padding flag. Unlike padding.FromName, empty items are rejected, so that
// a typo like "-padding=same,,causal" doesn't silently pad the middle axis with "valid".
func parsePolicy(name string) (padding.Policy, error) {
	if strings.TrimSpace(name) == "" {
		return padding.PolicyValid, errors.Errorf("empty padding policy: options are %v", padding.PolicyStrings())
	}
	return padding.FromName(name)
}
