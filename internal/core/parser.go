// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package core wires the engine together: line normalization, structure
// detection, segmentation and assembly in one synchronous pass. A parse
// is a pure function of its input text and options; there is no partial
// failure mode.
package core

import (
	"strings"
	"time"

	"reqscan/internal/assembler"
	"reqscan/internal/classifier"
	"reqscan/internal/reference"
	"reqscan/internal/requirement"
	"reqscan/internal/segmenter"
	"reqscan/internal/structure"
)

// Default option values applied when the caller leaves fields empty.
const (
	DefaultDocumentName = "Untitled Document"
	DefaultDocumentType = "custom"
)

// Options enumerates every recognized parse option.
type Options struct {
	DocumentName string
	DocumentType string
}

func (o Options) withDefaults() Options {
	if o.DocumentName == "" {
		o.DocumentName = DefaultDocumentName
	}
	if o.DocumentType == "" {
		o.DocumentType = DefaultDocumentType
	}
	return o
}

// Parser is the engine entry point. Construct once and share; it holds
// only immutable reference data.
type Parser struct {
	assembler *assembler.Assembler
}

// NewParser builds a parser over the given library. A nil library uses
// the built-in one.
func NewParser(lib *reference.Library) *Parser {
	if lib == nil {
		lib = reference.NewLibrary()
	}
	return &Parser{
		assembler: assembler.New(classifier.New(lib)),
	}
}

// Assembler exposes the parser's assembler for adapters that re-run
// assembly over externally supplied requirement rows.
func (p *Parser) Assembler() *assembler.Assembler { return p.assembler }

// Parse runs the full pipeline over raw pasted text. Malformed or empty
// input never fails: the result simply carries zero requirements and a
// warning.
func (p *Parser) Parse(rawText string, opts Options) *requirement.ParseResult {
	opts = opts.withDefaults()

	result := &requirement.ParseResult{
		DocumentName: opts.DocumentName,
		DocumentType: opts.DocumentType,
		ParsedAt:     time.Now().UTC(),
		Requirements: []requirement.Requirement{},
	}

	lines := NormalizeLines(rawText)
	if len(lines) == 0 {
		result.Structure = requirement.DetectedStructure{Type: requirement.StructureGeneric}
		result.Warnings = append(result.Warnings, "document contained no text")
		return result
	}

	result.Structure = structure.Detect(lines)
	units := segmenter.Segment(lines, result.Structure)

	for i, unit := range units {
		result.Append(p.assembler.Assemble(unit, i+1))
	}

	if result.Stats.TotalRequirements == 0 {
		result.Warnings = append(result.Warnings,
			"no requirements could be extracted; try a different paste or format")
	}
	return result
}

// NormalizeLines converts any of \n, \r\n or \r line endings, trims each
// line and drops blanks. Structure detection relies on this filtering.
func NormalizeLines(rawText string) []string {
	normalized := strings.ReplaceAll(rawText, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")

	var lines []string
	for _, line := range strings.Split(normalized, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}
