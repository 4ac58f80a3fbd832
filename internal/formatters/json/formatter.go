// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package json

import (
	"fmt"

	"reqscan/internal/formatters"
	"reqscan/internal/portable"
	"reqscan/internal/requirement"
)

// Formatter implements JSON output formatting
type Formatter struct{}

// NewFormatter creates a new JSON formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "json"
}

func (f *Formatter) Description() string {
	return "Portable JSON document for programmatic consumption and re-import"
}

func (f *Formatter) FileExtension() string {
	return ".json"
}

func (f *Formatter) Format(result *requirement.ParseResult, options formatters.FormatterOptions) (string, error) {
	data, err := portable.ToJSON(result)
	if err != nil {
		return "", fmt.Errorf("error formatting JSON output: %w", err)
	}
	return string(data), nil
}
