// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package classifier scores arbitrary text against the reference library:
// category keyword overlap, evidence keyword overlap, question pattern
// hits and regulatory reference extraction, combined into a single
// confidence value. Classification is purely lexical; the confidence
// score, not the category, is the honest output.
package classifier

import (
	"math"
	"sort"
	"strings"

	"reqscan/internal/reference"
)

// referenceBonus is added to the confidence numerator when at least one
// regulatory reference was extracted. Combined with the /2 divisor this
// rewards the combination of weak signals rather than requiring one
// strong one.
const referenceBonus = 0.3

// questionScore is the floor score given to a category selected by a
// question pattern hit. A literal phrase match is a stronger signal than
// partial keyword overlap.
const questionScore = 0.6

// regulationScore is the floor score given to the owning category of a
// regulatory reference that resolves in the library. A resolved citation
// outweighs partial keyword overlap but not a literal question phrase.
const regulationScore = 0.5

// KeywordScore is one ranked match against a category or evidence
// keyword set.
type KeywordScore struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	MatchedKeywords []string `json:"matchedKeywords"`

	// Score is matched keywords over total keywords for the set, in
	// [0,1].
	Score float64 `json:"score"`
}

// QuestionMatch records a question pattern whose phrase occurred in the
// text.
type QuestionMatch struct {
	ID            string `json:"id"`
	Phrase        string `json:"phrase"`
	Category      string `json:"category"`
	RegulatoryRef string `json:"regulatoryRef,omitempty"`
	EvidenceType  string `json:"evidenceType,omitempty"`
}

// Result is a full classification of one piece of text.
type Result struct {
	Categories     []KeywordScore  `json:"categories"`
	EvidenceTypes  []KeywordScore  `json:"evidenceTypes"`
	RegulatoryRefs []string        `json:"regulatoryRefs"`
	Keywords       []string        `json:"keywords"`
	Questions      []QuestionMatch `json:"questions,omitempty"`
	Confidence     float64         `json:"confidence"`
}

// Classifier scores text against a reference library. It holds no mutable
// state; one instance may be shared across goroutines.
type Classifier struct {
	lib *reference.Library
}

// New returns a classifier over the given library.
func New(lib *reference.Library) *Classifier {
	return &Classifier{lib: lib}
}

// Library exposes the underlying reference library.
func (c *Classifier) Library() *reference.Library { return c.lib }

// Classify scores text against every category, evidence type and question
// pattern in the library and extracts regulatory references.
func (c *Classifier) Classify(text string) Result {
	lower := strings.ToLower(text)

	result := Result{
		RegulatoryRefs: ExtractReferences(text),
	}

	for _, cat := range c.lib.Categories() {
		matched := matchKeywords(lower, cat.Keywords)
		if len(matched) == 0 {
			continue
		}
		result.Categories = append(result.Categories, KeywordScore{
			ID:              cat.ID,
			Name:            cat.Name,
			MatchedKeywords: matched,
			Score:           float64(len(matched)) / float64(len(cat.Keywords)),
		})
	}

	for _, ev := range c.lib.EvidencePatterns() {
		matched := matchKeywords(lower, ev.Keywords)
		if len(matched) == 0 {
			continue
		}
		result.EvidenceTypes = append(result.EvidenceTypes, KeywordScore{
			ID:              ev.ID,
			Name:            ev.Name,
			MatchedKeywords: matched,
			Score:           float64(len(matched)) / float64(len(ev.Keywords)),
		})
	}

	result.Questions = c.matchQuestions(lower)
	c.applyQuestions(&result)
	c.applyReferences(&result)

	sort.SliceStable(result.Categories, func(i, j int) bool {
		return result.Categories[i].Score > result.Categories[j].Score
	})
	sort.SliceStable(result.EvidenceTypes, func(i, j int) bool {
		return result.EvidenceTypes[i].Score > result.EvidenceTypes[j].Score
	})

	result.Keywords = flattenKeywords(result.Categories, result.EvidenceTypes)
	result.Confidence = c.confidence(result)
	return result
}

// matchQuestions returns the question patterns whose first matching
// phrase occurs in the lowered text.
func (c *Classifier) matchQuestions(lower string) []QuestionMatch {
	var hits []QuestionMatch
	for _, q := range c.lib.QuestionPatterns() {
		for _, phrase := range q.Phrases {
			if strings.Contains(lower, strings.ToLower(phrase)) {
				hits = append(hits, QuestionMatch{
					ID:            q.ID,
					Phrase:        phrase,
					Category:      q.Category,
					RegulatoryRef: q.RegulatoryRef,
					EvidenceType:  q.EvidenceType,
				})
				break
			}
		}
	}
	return hits
}

// applyQuestions folds question hits into the ranked lists: the mapped
// category is raised to at least questionScore, and the mapped reference
// joins the extracted set if absent.
func (c *Classifier) applyQuestions(result *Result) {
	for _, q := range result.Questions {
		raised := false
		for i := range result.Categories {
			if result.Categories[i].ID == q.Category {
				if result.Categories[i].Score < questionScore {
					result.Categories[i].Score = questionScore
				}
				raised = true
				break
			}
		}
		if !raised {
			if cat, ok := c.lib.Category(q.Category); ok {
				result.Categories = append(result.Categories, KeywordScore{
					ID:              cat.ID,
					Name:            cat.Name,
					MatchedKeywords: []string{q.Phrase},
					Score:           questionScore,
				})
			}
		}

		if q.RegulatoryRef != "" {
			norm := reference.NormalizeReference(q.RegulatoryRef)
			if !containsString(result.RegulatoryRefs, norm) {
				result.RegulatoryRefs = append(result.RegulatoryRefs, norm)
			}
		}
	}
}

// applyReferences folds resolved references into the ranked categories:
// the owning category of each reference known to the library is raised
// to at least regulationScore. An unresolved reference contributes only
// the confidence bonus.
func (c *Classifier) applyReferences(result *Result) {
	for _, ref := range result.RegulatoryRefs {
		info, ok := c.lib.LookupReference(ref)
		if !ok || info.Category == "" {
			continue
		}

		raised := false
		for i := range result.Categories {
			if result.Categories[i].ID == info.Category {
				if result.Categories[i].Score < regulationScore {
					result.Categories[i].Score = regulationScore
				}
				raised = true
				break
			}
		}
		if raised {
			continue
		}
		if cat, ok := c.lib.Category(info.Category); ok {
			result.Categories = append(result.Categories, KeywordScore{
				ID:              cat.ID,
				Name:            cat.Name,
				MatchedKeywords: []string{info.ID},
				Score:           regulationScore,
			})
		}
	}
}

// confidence combines the top category score, top evidence score and the
// reference bonus: min(1, (topCategory + topEvidence + bonus) / 2).
func (c *Classifier) confidence(result Result) float64 {
	var top, topEv, bonus float64
	if len(result.Categories) > 0 {
		top = result.Categories[0].Score
	}
	if len(result.EvidenceTypes) > 0 {
		topEv = result.EvidenceTypes[0].Score
	}
	if len(result.RegulatoryRefs) > 0 {
		bonus = referenceBonus
	}
	return math.Min(1, (top+topEv+bonus)/2)
}

func matchKeywords(lower string, keywords []string) []string {
	var matched []string
	for _, kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			matched = append(matched, kw)
		}
	}
	return matched
}

func flattenKeywords(groups ...[]KeywordScore) []string {
	var flat []string
	seen := make(map[string]bool)
	for _, group := range groups {
		for _, s := range group {
			for _, kw := range s.MatchedKeywords {
				if !seen[kw] {
					seen[kw] = true
					flat = append(flat, kw)
				}
			}
		}
	}
	return flat
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
