// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package padview displays padding plans in GoNB notebooks (github.com/janpfeifer/gonb) as HTML tables.
//
// Example:
//
//	reports, err := padding.Build(2).Policy(padding.PolicySame).Kernel(3).Report(32, 32)
//	if err != nil { ... }
//	padview.Display(reports)
package padview

import (
	"fmt"
	"html"
	"strings"

	"github.com/gomlx/convpad/pkg/core/padding"
	"github.com/janpfeifer/gonb/gonbui"
)

// ToHTML renders the reports as an HTML table, one row per spatial axis.
//
// Input and output columns are only included if the reports have them set.
func ToHTML(reports []padding.AxisReport) string {
	withSizes := len(reports) > 0 && reports[0].Input > 0
	var sb strings.Builder
	sb.WriteString("<table>\n<tr>")
	headers := []string{"Axis", "Policy", "Kernel", "Rate", "Stride", "Effective Kernel", "Before", "After"}
	if withSizes {
		headers = append(headers, "Input", "Output")
	}
	for _, header := range headers {
		fmt.Fprintf(&sb, "<th>%s</th>", header)
	}
	sb.WriteString("</tr>\n")
	for _, r := range reports {
		sb.WriteString("<tr>")
		fmt.Fprintf(&sb, "<td>%d</td><td>%s</td>", r.Axis, html.EscapeString(r.Policy.String()))
		for _, v := range []int{r.Kernel, r.Rate, r.Stride, r.EffectiveKernel, r.Before, r.After} {
			fmt.Fprintf(&sb, "<td>%d</td>", v)
		}
		if withSizes {
			fmt.Fprintf(&sb, "<td>%d</td><td>%d</td>", r.Input, r.Output)
		}
		sb.WriteString("</tr>\n")
	}
	sb.WriteString("</table>\n")
	return sb.String()
}

// Display the reports as an HTML table in the notebook. It is a no-op if not running in a notebook.
func Display(reports []padding.AxisReport) {
	if !gonbui.IsNotebook {
		return
	}
	gonbui.DisplayHtmlf("%s", ToHTML(reports))
}
