// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package csv

import (
	"strings"
	"testing"

	"reqscan/internal/core"
	"reqscan/internal/formatters"
)

func TestFormat(t *testing.T) {
	parser := core.NewParser(nil)
	result := parser.Parse("1. The pilot must hold a valid certificate, per CAR 901.54.",
		core.Options{})

	f := NewFormatter()
	out, err := f.Format(result, formatters.FormatterOptions{})
	if err != nil {
		t.Fatalf("Format returned error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header + 1 row, got %d lines:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "ID,Order,Short Text") {
		t.Errorf("unexpected header: %s", lines[0])
	}
	if !strings.HasPrefix(lines[1], "req-001,1,") {
		t.Errorf("unexpected row: %s", lines[1])
	}
	// Text contains a comma, so the short text field must be quoted.
	if !strings.Contains(lines[1], "\"") {
		t.Errorf("expected quoted field in row: %s", lines[1])
	}
}

func TestEscapeCSV(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"a,b", "\"a,b\""},
		{"say \"hi\"", "\"say \"\"hi\"\"\""},
		{"line\nbreak", "\"line\nbreak\""},
	}
	for _, tt := range tests {
		if got := escapeCSV(tt.in); got != tt.want {
			t.Errorf("escapeCSV(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
