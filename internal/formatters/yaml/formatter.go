// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package yaml

import (
	"fmt"

	"reqscan/internal/formatters"
	"reqscan/internal/portable"
	"reqscan/internal/requirement"

	"gopkg.in/yaml.v3"
)

// Formatter implements YAML output formatting
type Formatter struct{}

// NewFormatter creates a new YAML formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "yaml"
}

func (f *Formatter) Description() string {
	return "YAML format output, same structure as the JSON document"
}

func (f *Formatter) FileExtension() string {
	return ".yaml"
}

func (f *Formatter) Format(result *requirement.ParseResult, options formatters.FormatterOptions) (string, error) {
	data, err := yaml.Marshal(portable.Export(result))
	if err != nil {
		return "", fmt.Errorf("error formatting YAML output: %w", err)
	}
	return string(data), nil
}
