// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package portable converts parse results to and from the canonical
// portable JSON representation, and projects results into reusable
// templates. Round-tripping export -> import preserves id, text,
// response, status and notes exactly; classification is always
// recomputed on import.
package portable

import (
	"encoding/json"
	"time"

	"reqscan/internal/requirement"
)

// Document is the canonical portable representation of a parse result.
type Document struct {
	Name         string            `json:"name" yaml:"name"`
	Type         string            `json:"type" yaml:"type"`
	ExportedAt   time.Time         `json:"exportedAt" yaml:"exportedAt"`
	Stats        requirement.Stats `json:"stats" yaml:"stats"`
	Requirements []Row             `json:"requirements" yaml:"requirements"`
}

// Row is one requirement in the portable representation. The alias
// fields (Description, Requirement, Reference) are accepted on import
// only; export always writes the primary names.
type Row struct {
	ID        string `json:"id,omitempty" yaml:"id,omitempty"`
	Order     int    `json:"order,omitempty" yaml:"order,omitempty"`
	Text      string `json:"text,omitempty" yaml:"text,omitempty"`
	ShortText string `json:"shortText,omitempty" yaml:"shortText,omitempty"`

	// Import aliases for Text.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Requirement string `json:"requirement,omitempty" yaml:"requirement,omitempty"`

	Section string `json:"section,omitempty" yaml:"section,omitempty"`
	// Category carries the classified category id on export; on import
	// it serves as a Section alias only for alias-shaped rows.
	Category string `json:"category,omitempty" yaml:"category,omitempty"`

	RegulatoryRef string `json:"regulatoryRef,omitempty" yaml:"regulatoryRef,omitempty"`
	// Import alias for RegulatoryRef.
	Reference string `json:"reference,omitempty" yaml:"reference,omitempty"`

	Response string `json:"response" yaml:"response"`
	Status   string `json:"status" yaml:"status"`
	Notes    string `json:"notes" yaml:"notes"`
}

// Export projects a parse result onto the canonical document.
func Export(result *requirement.ParseResult) *Document {
	doc := &Document{
		Name:         result.DocumentName,
		Type:         result.DocumentType,
		ExportedAt:   time.Now().UTC(),
		Stats:        result.Stats,
		Requirements: make([]Row, 0, len(result.Requirements)),
	}
	for _, req := range result.Requirements {
		doc.Requirements = append(doc.Requirements, Row{
			ID:            req.ID,
			Order:         req.Order,
			Text:          req.Text,
			ShortText:     req.ShortText,
			Section:       req.Section,
			RegulatoryRef: req.RegulatoryRef,
			Category:      req.Category,
			Response:      req.Response,
			Status:        req.Status,
			Notes:         req.Notes,
		})
	}
	return doc
}

// ToJSON renders the canonical document as indented JSON.
func ToJSON(result *requirement.ParseResult) ([]byte, error) {
	return json.MarshalIndent(Export(result), "", "  ")
}
