// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package csv

import (
	"fmt"
	"strings"

	"reqscan/internal/formatters"
	"reqscan/internal/formatters/shared"
	"reqscan/internal/requirement"
)

// Formatter implements CSV output formatting
type Formatter struct{}

// NewFormatter creates a new CSV formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "csv"
}

func (f *Formatter) Description() string {
	return "Comma-separated values for spreadsheet import"
}

func (f *Formatter) FileExtension() string {
	return ".csv"
}

func (f *Formatter) Format(result *requirement.ParseResult, options formatters.FormatterOptions) (string, error) {
	headers := []string{"ID", "Order", "Short Text", "Section", "Category", "Confidence Level", "Confidence", "Reference"}
	if options.Verbose {
		headers = append(headers, "Text", "Suggested Evidence", "Response", "Status", "Notes")
	}

	csvRows := []string{strings.Join(headers, ",")}
	for _, req := range result.Requirements {
		csvRows = append(csvRows, f.createCSVRow(req, options))
	}
	return strings.Join(csvRows, "\n") + "\n", nil
}

func (f *Formatter) createCSVRow(req requirement.Requirement, options formatters.FormatterOptions) string {
	fields := []string{
		escapeCSV(req.ID),
		fmt.Sprintf("%d", req.Order),
		escapeCSV(req.ShortText),
		escapeCSV(req.Section),
		escapeCSV(req.Category),
		shared.GetConfidenceLevel(req.Confidence),
		fmt.Sprintf("%.2f", req.Confidence),
		escapeCSV(req.RegulatoryRef),
	}
	if options.Verbose {
		fields = append(fields,
			escapeCSV(req.Text),
			escapeCSV(strings.Join(req.SuggestedEvidence, "; ")),
			escapeCSV(req.Response),
			escapeCSV(req.Status),
			escapeCSV(req.Notes),
		)
	}
	return strings.Join(fields, ",")
}

// escapeCSV quotes a field when it contains a comma, quote or newline
func escapeCSV(field string) string {
	if strings.ContainsAny(field, ",\"\n") {
		return "\"" + strings.ReplaceAll(field, "\"", "\"\"") + "\""
	}
	return field
}
