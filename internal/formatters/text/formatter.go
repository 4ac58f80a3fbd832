// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"fmt"
	"strings"

	"reqscan/internal/formatters"
	"reqscan/internal/formatters/shared"
	"reqscan/internal/requirement"

	"github.com/fatih/color"
)

// Formatter implements text-based output formatting
type Formatter struct {
	colors map[string]*color.Color
}

// NewFormatter creates a new text formatter
func NewFormatter() *Formatter {
	return &Formatter{
		colors: map[string]*color.Color{
			"green":  color.New(color.FgGreen),
			"yellow": color.New(color.FgYellow),
			"red":    color.New(color.FgRed),
			"cyan":   color.New(color.FgCyan),
			"blue":   color.New(color.FgBlue),
			"white":  color.New(color.FgWhite, color.Bold),
		},
	}
}

func (f *Formatter) Name() string {
	return "text"
}

func (f *Formatter) Description() string {
	return "Human-readable text output with colors"
}

func (f *Formatter) FileExtension() string {
	return ".txt"
}

func (f *Formatter) Format(result *requirement.ParseResult, options formatters.FormatterOptions) (string, error) {
	// Disable colors if requested
	if options.NoColor {
		color.NoColor = true
	}

	var builder strings.Builder
	f.appendHeader(&builder, result)

	if len(result.Requirements) == 0 {
		builder.WriteString("No requirements found.\n")
		f.appendWarnings(&builder, result)
		return builder.String(), nil
	}

	for _, req := range result.Requirements {
		if options.Verbose {
			f.appendDetailedRequirement(&builder, req)
		} else {
			f.appendSummaryLine(&builder, req)
		}
	}

	f.appendStats(&builder, result)
	f.appendWarnings(&builder, result)
	return builder.String(), nil
}

func (f *Formatter) appendHeader(builder *strings.Builder, result *requirement.ParseResult) {
	builder.WriteString(f.colors["white"].Sprintf("Document: %s (%s)\n", result.DocumentName, result.DocumentType))
	builder.WriteString(fmt.Sprintf("Structure: %s (confidence %.2f)\n\n",
		result.Structure.Type, result.Structure.Confidence))
}

func (f *Formatter) appendSummaryLine(builder *strings.Builder, req requirement.Requirement) {
	level := shared.GetConfidenceLevel(req.Confidence)
	category := req.Category
	if category == "" {
		category = "uncategorized"
	}
	line := fmt.Sprintf("%s %-6s %-26s %s",
		f.colors["cyan"].Sprintf("[%s]", req.ID),
		f.levelColor(level).Sprint(level),
		category,
		req.ShortText)
	if req.RegulatoryRef != "" {
		line += f.colors["blue"].Sprintf("  (%s)", req.RegulatoryRef)
	}
	builder.WriteString(line + "\n")
}

func (f *Formatter) appendDetailedRequirement(builder *strings.Builder, req requirement.Requirement) {
	level := shared.GetConfidenceLevel(req.Confidence)
	builder.WriteString(f.colors["cyan"].Sprintf("[%s]", req.ID))
	builder.WriteString(fmt.Sprintf(" %s (%.2f)\n", f.levelColor(level).Sprint(level), req.Confidence))
	builder.WriteString(fmt.Sprintf("  Text: %s\n", req.Text))
	if req.Section != "" {
		builder.WriteString(fmt.Sprintf("  Section: %s\n", req.Section))
	}
	if req.Subsection != "" {
		builder.WriteString(fmt.Sprintf("  Subsection: %s\n", req.Subsection))
	}
	if req.CategoryName != "" {
		builder.WriteString(fmt.Sprintf("  Category: %s (%s)\n", req.CategoryName, req.Category))
	}
	if req.RegulatoryRef != "" {
		builder.WriteString(fmt.Sprintf("  Reference: %s\n", f.colors["blue"].Sprint(req.RegulatoryRef)))
	}
	for _, evidence := range req.SuggestedEvidence {
		builder.WriteString(fmt.Sprintf("  Evidence: %s\n", evidence))
	}
	for _, hint := range req.ResponseHints {
		builder.WriteString(fmt.Sprintf("  Hint: %s\n", hint))
	}
	if len(req.SearchTerms) > 0 {
		builder.WriteString(fmt.Sprintf("  Search terms: %s\n", strings.Join(req.SearchTerms, ", ")))
	}
	builder.WriteString("\n")
}

func (f *Formatter) appendStats(builder *strings.Builder, result *requirement.ParseResult) {
	stats := result.Stats
	builder.WriteString(fmt.Sprintf("\n%d requirements: %d categorized, %d uncategorized, %d with references\n",
		stats.TotalRequirements, stats.Categorized, stats.Uncategorized, stats.WithReference))
	if len(result.References) > 0 {
		builder.WriteString(fmt.Sprintf("Regulatory references: %s\n", strings.Join(result.References, ", ")))
	}
}

func (f *Formatter) appendWarnings(builder *strings.Builder, result *requirement.ParseResult) {
	for _, warning := range result.Warnings {
		builder.WriteString(f.colors["yellow"].Sprintf("Warning: %s\n", warning))
	}
}

func (f *Formatter) levelColor(level string) *color.Color {
	switch level {
	case "HIGH":
		return f.colors["green"]
	case "MEDIUM":
		return f.colors["yellow"]
	default:
		return f.colors["red"]
	}
}
