// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package formatters

import (
	"strings"
	"testing"

	"reqscan/internal/requirement"
)

type stubFormatter struct{ name string }

func (s stubFormatter) Format(result *requirement.ParseResult, options FormatterOptions) (string, error) {
	return s.name + ":" + result.DocumentName, nil
}
func (s stubFormatter) Name() string          { return s.name }
func (s stubFormatter) Description() string   { return "stub" }
func (s stubFormatter) FileExtension() string { return ".stub" }

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	r.Register(stubFormatter{name: "beta"})
	r.Register(stubFormatter{name: "alpha"})

	if _, ok := r.Get("beta"); !ok {
		t.Error("expected beta formatter to be registered")
	}
	if _, ok := r.Get("missing"); ok {
		t.Error("did not expect missing formatter")
	}

	names := r.List()
	if len(names) != 2 || names[0] != "alpha" || names[1] != "beta" {
		t.Errorf("List() = %v, want [alpha beta]", names)
	}
}

func TestExportUnknownFormat(t *testing.T) {
	_, err := Export("no-such-format", &requirement.ParseResult{}, FormatterOptions{})
	if err == nil {
		t.Fatal("expected error for unknown format")
	}
	if !strings.Contains(err.Error(), "unsupported format") {
		t.Errorf("unexpected error message: %v", err)
	}
}
