// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package reference holds the curated compliance reference library: known
// regulatory references, compliance categories with their keyword sets,
// evidence pattern definitions, and common cross-framework question
// patterns. The library is pure data, loaded once and immutable; every
// classifier decision is grounded in these tables.
package reference

import (
	"regexp"
	"strings"
)

// Category is a compliance category used for keyword scoring.
type Category struct {
	ID          string
	Name        string
	Description string

	// Keywords are matched case-insensitively against requirement text.
	// Scores are computed as matched/len(Keywords).
	Keywords []string

	// TypicalRequirements are human-readable hints describing what
	// requirements in this category usually ask for. The assembler emits
	// them as response hints.
	TypicalRequirements []string

	// EvidenceTypes lists evidence pattern ids associated with the
	// category.
	EvidenceTypes []string
}

// Regulation is a single known regulatory reference.
type Regulation struct {
	// ID is the normalized reference string, e.g. "CAR 901.54".
	ID          string
	Title       string
	Description string

	// Category is the owning category id.
	Category string

	Topics []string

	// SubParts maps single-letter sub-part keys to nested descriptions,
	// e.g. "d" -> the guidance for CAR 903.02(d).
	SubParts map[string]string

	// EvidenceTypes lists evidence pattern ids this reference is
	// typically satisfied by.
	EvidenceTypes []string
}

// EvidencePattern is a named type of supporting documentation.
type EvidencePattern struct {
	ID          string
	Name        string
	Description string
	Keywords    []string

	// Satisfies lists category or regulation ids the evidence addresses.
	Satisfies []string

	// Sources are tags describing where such evidence normally
	// originates: "policy-document", "project-record" or "uploaded-file".
	Sources []string
}

// QuestionPattern recognizes a common cross-framework question by literal
// substring phrases and maps it onto library entries.
type QuestionPattern struct {
	ID            string
	Phrases       []string
	Category      string
	RegulatoryRef string
	EvidenceType  string
}

// Library bundles the static tables with lookup indexes.
type Library struct {
	categories  []Category
	regulations []Regulation
	evidence    []EvidencePattern
	questions   []QuestionPattern

	categoryByID   map[string]int
	regulationByID map[string]int
	evidenceByID   map[string]int
}

// NewLibrary builds the library from the built-in tables.
func NewLibrary() *Library {
	lib := &Library{
		categories:  builtinCategories,
		regulations: builtinRegulations,
		evidence:    builtinEvidence,
		questions:   builtinQuestions,
	}
	lib.reindex()
	return lib
}

func (l *Library) reindex() {
	l.categoryByID = make(map[string]int, len(l.categories))
	for i, c := range l.categories {
		l.categoryByID[c.ID] = i
	}
	l.regulationByID = make(map[string]int, len(l.regulations))
	for i, r := range l.regulations {
		l.regulationByID[NormalizeReference(r.ID)] = i
	}
	l.evidenceByID = make(map[string]int, len(l.evidence))
	for i, e := range l.evidence {
		l.evidenceByID[e.ID] = i
	}
}

// Categories returns all categories in declaration order.
func (l *Library) Categories() []Category { return l.categories }

// Regulations returns all known regulatory references.
func (l *Library) Regulations() []Regulation { return l.regulations }

// EvidencePatterns returns all evidence pattern definitions.
func (l *Library) EvidencePatterns() []EvidencePattern { return l.evidence }

// QuestionPatterns returns all question patterns.
func (l *Library) QuestionPatterns() []QuestionPattern { return l.questions }

// Category returns the category with the given id.
func (l *Library) Category(id string) (Category, bool) {
	i, ok := l.categoryByID[id]
	if !ok {
		return Category{}, false
	}
	return l.categories[i], true
}

// Evidence returns the evidence pattern with the given id.
func (l *Library) Evidence(id string) (EvidencePattern, bool) {
	i, ok := l.evidenceByID[id]
	if !ok {
		return EvidencePattern{}, false
	}
	return l.evidence[i], true
}

// RegulationInfo is a resolved reference lookup. When the lookup matched
// via sub-part stripping, SubPartKey and SubPartInfo carry the matched
// sub-part and its nested description.
type RegulationInfo struct {
	Regulation
	SubPartKey  string
	SubPartInfo string
}

// subPartSuffix matches one or more trailing sub-part markers such as
// "(d)" or "(a)(ii)".
var subPartSuffix = regexp.MustCompile(`(\([a-z0-9]+\))+$`)

// LookupReference resolves a candidate reference string against the known
// regulations. Exact (normalized) matches win; otherwise a trailing
// sub-part suffix is stripped and the base string is retried, attaching
// the matched sub-part's nested description when the base declares one.
func (l *Library) LookupReference(ref string) (RegulationInfo, bool) {
	norm := NormalizeReference(ref)
	if i, ok := l.regulationByID[norm]; ok {
		return RegulationInfo{Regulation: l.regulations[i]}, true
	}

	suffix := subPartSuffix.FindString(strings.ToLower(norm))
	if suffix == "" {
		return RegulationInfo{}, false
	}
	base := strings.TrimSpace(norm[:len(norm)-len(suffix)])
	i, ok := l.regulationByID[base]
	if !ok {
		return RegulationInfo{}, false
	}

	info := RegulationInfo{Regulation: l.regulations[i]}
	// First sub-part key, e.g. "(d)(ii)" -> "d".
	key := strings.Trim(strings.SplitN(suffix, ")", 2)[0], "(")
	if desc, ok := l.regulations[i].SubParts[key]; ok {
		info.SubPartKey = key
		info.SubPartInfo = desc
	}
	return info, true
}

// NormalizeReference uppercases a reference token and collapses internal
// whitespace, so "car  901.54" and "CAR 901.54" compare equal.
func NormalizeReference(ref string) string {
	fields := strings.Fields(strings.ToUpper(strings.TrimSpace(ref)))
	return strings.Join(fields, " ")
}

// CategoryExtension is a user-supplied library extension, typically loaded
// from the config file. Extensions with a known id append keywords to the
// existing category; unknown ids add a new category.
type CategoryExtension struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Keywords    []string `yaml:"keywords"`
}

// MergeExtensions folds user extensions into the library. The method is
// intended for use at load time, before the library is shared.
func (l *Library) MergeExtensions(exts []CategoryExtension) {
	for _, ext := range exts {
		if ext.ID == "" {
			continue
		}
		if i, ok := l.categoryByID[ext.ID]; ok {
			l.categories[i].Keywords = appendMissing(l.categories[i].Keywords, ext.Keywords)
			continue
		}
		name := ext.Name
		if name == "" {
			name = ext.ID
		}
		l.categories = append(l.categories, Category{
			ID:          ext.ID,
			Name:        name,
			Description: ext.Description,
			Keywords:    ext.Keywords,
		})
	}
	l.reindex()
}

func appendMissing(existing, extra []string) []string {
	seen := make(map[string]bool, len(existing))
	for _, k := range existing {
		seen[strings.ToLower(k)] = true
	}
	for _, k := range extra {
		if k = strings.TrimSpace(k); k != "" && !seen[strings.ToLower(k)] {
			existing = append(existing, k)
			seen[strings.ToLower(k)] = true
		}
	}
	return existing
}
