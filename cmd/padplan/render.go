// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/gomlx/convpad/pkg/core/padding"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var (
	headerRowStyle = lipgloss.NewStyle().Reverse(true).
			Padding(0, 2, 0, 2).Align(lipgloss.Center)

	oddRowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFF")).
			PaddingLeft(1).PaddingRight(1).Align(lipgloss.Right)
	evenRowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#999")).
			PaddingLeft(1).PaddingRight(1).Align(lipgloss.Right)

	titleStyle = lipgloss.NewStyle().Bold(true).Padding(1, 4, 0, 4)
)

// render the reports in the given format: "table", "yaml" or "json".
func render(reports []padding.AxisReport, format string) (string, error) {
	switch strings.ToLower(format) {
	case "table", "":
		return renderTable(reports), nil
	case "yaml":
		contents, err := yaml.Marshal(reports)
		if err != nil {
			return "", errors.Wrap(err, "failed to marshal padding plan to YAML")
		}
		return strings.TrimSuffix(string(contents), "\n"), nil
	case "json":
		contents, err := json.MarshalIndent(reports, "", "  ")
		if err != nil {
			return "", errors.Wrap(err, "failed to marshal padding plan to JSON")
		}
		return string(contents), nil
	}
	return "", errors.Errorf("unknown output format %q: valid values are table, yaml or json", format)
}

func newPlainTable() *lgtable.Table {
	return lgtable.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("99"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == lgtable.HeaderRow:
				return headerRowStyle
			case row%2 == 0:
				return evenRowStyle
			default:
				return oddRowStyle
			}
		})
}

// renderTable renders one row per spatial axis.
func renderTable(reports []padding.AxisReport) string {
	withSizes := len(reports) > 0 && reports[0].Input > 0
	headers := []string{"Axis", "Policy", "Kernel", "Rate", "Stride", "Effective", "Before", "After"}
	if withSizes {
		headers = append(headers, "Input", "Output")
	}
	table := newPlainTable().Headers(headers...)
	for _, r := range reports {
		row := []string{
			strconv.Itoa(r.Axis), r.Policy.String(),
			strconv.Itoa(r.Kernel), strconv.Itoa(r.Rate), strconv.Itoa(r.Stride),
			strconv.Itoa(r.EffectiveKernel), strconv.Itoa(r.Before), strconv.Itoa(r.After),
		}
		if withSizes {
			row = append(row, humanize.Comma(int64(r.Input)), humanize.Comma(int64(r.Output)))
		}
		table.Row(row...)
	}
	return titleStyle.Render("Padding Plan") + "\n" + table.Render()
}
