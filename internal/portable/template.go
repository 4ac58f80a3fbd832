// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package portable

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"reqscan/internal/requirement"
)

// Template is a reusable skeleton distilled from a parsed document. It
// carries the requirement text and classification but none of the
// responses, so a future document of the same kind can start from it.
type Template struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Description  string            `json:"description"`
	DocumentType string            `json:"documentType"`
	CreatedAt    time.Time         `json:"createdAt"`
	Stats        requirement.Stats `json:"stats"`
	Structure    TemplateStructure `json:"structure"`
	Requirements []TemplateRow     `json:"requirements"`
}

// TemplateStructure summarizes the category and reference shape of the
// source document.
type TemplateStructure struct {
	Categories       []string `json:"categories"`
	RequirementCount int      `json:"requirementCount"`
	CommonRegRefs    []string `json:"commonRegRefs"`
}

// TemplateRow is a single requirement with response fields stripped.
type TemplateRow struct {
	ID                string   `json:"id"`
	Order             int      `json:"order"`
	Text              string   `json:"text"`
	ShortText         string   `json:"shortText"`
	Section           string   `json:"section,omitempty"`
	RegulatoryRef     string   `json:"regulatoryRef,omitempty"`
	Category          string   `json:"category,omitempty"`
	SuggestedEvidence []string `json:"suggestedEvidence,omitempty"`
	ResponseHints     []string `json:"responseHints,omitempty"`
}

// GenerateTemplate builds a template from a parse result.
func GenerateTemplate(result *requirement.ParseResult) *Template {
	categories := make([]string, 0, len(result.CategoryCounts))
	for id := range result.CategoryCounts {
		categories = append(categories, id)
	}
	sort.Strings(categories)

	tpl := &Template{
		ID:           fmt.Sprintf("tpl-%d", time.Now().Unix()),
		Name:         result.DocumentName,
		Description:  fmt.Sprintf("Template generated from %s", result.DocumentName),
		DocumentType: result.DocumentType,
		CreatedAt:    time.Now().UTC(),
		Stats:        result.Stats,
		Structure: TemplateStructure{
			Categories:       categories,
			RequirementCount: len(result.Requirements),
			CommonRegRefs:    append([]string(nil), result.References...),
		},
		Requirements: make([]TemplateRow, 0, len(result.Requirements)),
	}
	for _, req := range result.Requirements {
		tpl.Requirements = append(tpl.Requirements, TemplateRow{
			ID:                req.ID,
			Order:             req.Order,
			Text:              req.Text,
			ShortText:         req.ShortText,
			Section:           req.Section,
			RegulatoryRef:     req.RegulatoryRef,
			Category:          req.Category,
			SuggestedEvidence: req.SuggestedEvidence,
			ResponseHints:     req.ResponseHints,
		})
	}
	return tpl
}

// TemplateToJSON renders a template as indented JSON.
func TemplateToJSON(tpl *Template) ([]byte, error) {
	data, err := json.MarshalIndent(tpl, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding template: %w", err)
	}
	return data, nil
}
