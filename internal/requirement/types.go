// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package requirement defines the result types produced by a parse run:
// individual requirement records, the aggregate parse result, and its
// summary statistics. All types are plain data; nothing here mutates a
// result after the orchestrator returns it.
package requirement

import (
	"fmt"
	"time"
)

// Requirement is a single extracted compliance obligation.
type Requirement struct {
	// ID is stable and derived from Order (e.g. "req-003").
	ID    string `json:"id"`
	Order int    `json:"order"`

	// Text is the full extracted text; ShortText is always a prefix or
	// first-sentence truncation of Text, at most ~80 characters.
	Text      string `json:"text"`
	ShortText string `json:"shortText"`

	// Section labels inherited from document structure, if any.
	Section    string `json:"section,omitempty"`
	Subsection string `json:"subsection,omitempty"`

	// RegulatoryRef is the normalized citation extracted from (or supplied
	// with) the unit, e.g. "CAR 901.54".
	RegulatoryRef string `json:"regulatoryRef,omitempty"`

	// Category is the best-matching category id; empty when nothing
	// matched. CategoryName is its display name.
	Category     string `json:"category,omitempty"`
	CategoryName string `json:"categoryName,omitempty"`

	// Confidence is in [0,1]. A requirement with no keyword or reference
	// match has confidence 0 and no category.
	Confidence float64 `json:"confidence"`

	// Up to 3 evidence suggestions and up to 3 response hints tied to the
	// primary category.
	SuggestedEvidence []string `json:"suggestedEvidence,omitempty"`
	ResponseHints     []string `json:"responseHints,omitempty"`

	// SearchTerms support downstream retrieval.
	SearchTerms []string `json:"searchTerms,omitempty"`

	// Downstream editing fields. The engine initializes them empty and
	// never touches them afterwards; the import adapter preserves
	// caller-supplied values verbatim.
	Response string `json:"response"`
	Status   string `json:"status"`
	Notes    string `json:"notes"`
}

// RequirementID derives the stable id for a given order.
func RequirementID(order int) string {
	return fmt.Sprintf("req-%03d", order)
}

// StructureType is the inferred macro-layout of a document. The segmenter
// switches exhaustively over these values; there is no "unknown" state.
type StructureType int

const (
	StructureNumberedList StructureType = iota
	StructureTable
	StructureSectioned
	StructureGeneric
)

// String returns the wire name of the structure type.
func (t StructureType) String() string {
	switch t {
	case StructureNumberedList:
		return "numbered-list"
	case StructureTable:
		return "table"
	case StructureSectioned:
		return "sectioned"
	default:
		return "generic"
	}
}

// MarshalText implements encoding.TextMarshaler so the type serializes as
// its wire name in JSON and YAML.
func (t StructureType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *StructureType) UnmarshalText(text []byte) error {
	switch string(text) {
	case "numbered-list":
		*t = StructureNumberedList
	case "table":
		*t = StructureTable
	case "sectioned":
		*t = StructureSectioned
	case "generic", "":
		*t = StructureGeneric
	default:
		return fmt.Errorf("unknown structure type %q", string(text))
	}
	return nil
}

// DetectedStructure describes the layout classification of a document.
type DetectedStructure struct {
	Type       StructureType `json:"type"`
	Confidence float64       `json:"confidence"`

	// Pattern is "numbered" or "bullet" for numbered-list structures.
	Pattern string `json:"pattern,omitempty"`

	// Delimiter is "pipe" or "tab" for table structures.
	Delimiter string `json:"delimiter,omitempty"`

	// HeaderCount is the number of section-header-shaped lines seen in
	// sectioned structures.
	HeaderCount int `json:"headerCount,omitempty"`
}

// Stats summarizes a parse run. Invariants:
//
//	TotalRequirements == len(ParseResult.Requirements)
//	Categorized + Uncategorized == TotalRequirements
type Stats struct {
	TotalRequirements int `json:"totalRequirements" yaml:"totalRequirements"`
	Categorized       int `json:"categorized" yaml:"categorized"`
	Uncategorized     int `json:"uncategorized" yaml:"uncategorized"`
	WithReference     int `json:"withReference" yaml:"withReference"`
}

// ParseResult is the complete output of one parse invocation. It is owned
// by the invocation that produced it and immutable once returned.
type ParseResult struct {
	DocumentName string    `json:"documentName"`
	DocumentType string    `json:"documentType"`
	ParsedAt     time.Time `json:"parsedAt"`

	Requirements []Requirement     `json:"requirements"`
	Structure    DetectedStructure `json:"detectedStructure"`

	// CategoryCounts maps category id to the number of requirements
	// assigned to it.
	CategoryCounts map[string]int `json:"categoryCounts,omitempty"`

	// References is the deduplicated set of distinct regulatory references
	// encountered, in first-seen order.
	References []string `json:"references,omitempty"`

	Warnings []string `json:"warnings,omitempty"`
	Stats    Stats    `json:"stats"`
}

// Append adds a requirement and folds it into the running statistics,
// keeping the Stats invariants true at every step.
func (r *ParseResult) Append(req Requirement) {
	r.Requirements = append(r.Requirements, req)
	r.Stats.TotalRequirements = len(r.Requirements)

	if req.Category != "" {
		r.Stats.Categorized++
		if r.CategoryCounts == nil {
			r.CategoryCounts = make(map[string]int)
		}
		r.CategoryCounts[req.Category]++
	} else {
		r.Stats.Uncategorized++
	}

	if req.RegulatoryRef != "" {
		r.Stats.WithReference++
		for _, ref := range r.References {
			if ref == req.RegulatoryRef {
				return
			}
		}
		r.References = append(r.References, req.RegulatoryRef)
	}
}
