// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package assembler turns segmented units into normalized requirement
// records: classification, reference resolution, short text generation
// and evidence/hint suggestions.
package assembler

import (
	"strings"
	"unicode/utf8"

	"reqscan/internal/classifier"
	"reqscan/internal/reference"
	"reqscan/internal/requirement"
	"reqscan/internal/segmenter"
)

const (
	maxShortText   = 80
	truncateAt     = 77
	maxSuggestions = 3
	maxSearchTerms = 8
)

// Assembler builds requirement records from units. Stateless; safe to
// share.
type Assembler struct {
	classifier *classifier.Classifier
}

// New returns an assembler using the given classifier.
func New(c *classifier.Classifier) *Assembler {
	return &Assembler{classifier: c}
}

// Assemble produces the requirement record for one unit at the given
// 1-based order. Units that match nothing still come back as valid,
// uncategorized requirements with confidence 0.
func (a *Assembler) Assemble(unit segmenter.Unit, order int) requirement.Requirement {
	text := strings.TrimSpace(unit.FullText())

	// The document-supplied reference joins the classified text so its
	// tokens contribute to scoring.
	classifyInput := text
	if unit.Reference != "" {
		classifyInput += " " + unit.Reference
	}
	result := a.classifier.Classify(classifyInput)

	// A unit-supplied reference wins over extraction.
	ref := ""
	if unit.Reference != "" {
		ref = reference.NormalizeReference(unit.Reference)
	} else if len(result.RegulatoryRefs) > 0 {
		ref = result.RegulatoryRefs[0]
	}

	req := requirement.Requirement{
		ID:            requirement.RequirementID(order),
		Order:         order,
		Text:          text,
		ShortText:     ShortText(text),
		Section:       unit.Section,
		Subsection:    unit.Subsection,
		RegulatoryRef: ref,
		Confidence:    result.Confidence,
		SearchTerms:   searchTerms(ref, result.Keywords),
	}

	if len(result.Categories) > 0 {
		top := result.Categories[0]
		req.Category = top.ID
		req.CategoryName = top.Name
		if cat, ok := a.classifier.Library().Category(top.ID); ok {
			req.SuggestedEvidence = evidenceSummaries(a.classifier.Library(), cat)
			req.ResponseHints = truncateList(cat.TypicalRequirements, maxSuggestions)
		}
	}

	return req
}

// ShortText returns the first sentence of text when it fits in 80
// characters, otherwise a word-boundary-safe truncation with an
// ellipsis. The result is always a prefix of text.
func ShortText(text string) string {
	first := firstSentence(text)
	if len(first) <= maxShortText {
		return first
	}

	cut := truncateAt
	if cut > len(text) {
		cut = len(text)
	}
	// Back up to the previous word boundary, or to the previous rune
	// boundary when the prefix has no space to cut at.
	if i := strings.LastIndex(text[:cut], " "); i > 0 {
		cut = i
	} else {
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
	}
	return strings.TrimSpace(text[:cut]) + "..."
}

func firstSentence(text string) string {
	for i, r := range text {
		if r == '.' || r == '?' || r == '!' {
			return strings.TrimSpace(text[:i+1])
		}
	}
	return strings.TrimSpace(text)
}

// evidenceSummaries renders up to three evidence suggestions for a
// category as "Name: Description".
func evidenceSummaries(lib *reference.Library, cat reference.Category) []string {
	var summaries []string
	for _, id := range cat.EvidenceTypes {
		if len(summaries) == maxSuggestions {
			break
		}
		if ev, ok := lib.Evidence(id); ok {
			summaries = append(summaries, ev.Name+": "+ev.Description)
		}
	}
	return summaries
}

// searchTerms merges the reference and matched keywords into a bounded
// retrieval term list.
func searchTerms(ref string, keywords []string) []string {
	var terms []string
	if ref != "" {
		terms = append(terms, ref)
	}
	for _, kw := range keywords {
		if len(terms) == maxSearchTerms {
			break
		}
		terms = append(terms, kw)
	}
	return terms
}

func truncateList(list []string, max int) []string {
	if len(list) <= max {
		return list
	}
	return list[:max]
}
