// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package classifier

import (
	"testing"

	"reqscan/internal/reference"
)

func newTestClassifier() *Classifier {
	return New(reference.NewLibrary())
}

func TestExtractReferences(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{
			"single CAR reference",
			"CAR 901.54 applies to training records.",
			[]string{"CAR 901.54"},
		},
		{
			"lowercase and sub-part",
			"see car 903.02(d) for the safety plan",
			[]string{"CAR 903.02(D)"},
		},
		{
			"deduplicated preserving order",
			"CAR 901.11 and again CAR 901.11, then CAR 901.25",
			[]string{"CAR 901.11", "CAR 901.25"},
		},
		{
			"icao annex",
			"operations must conform to ICAO Annex 2",
			[]string{"ICAO ANNEX 2"},
		},
		{
			"cfr style",
			"14 CFR Part 107 governs US operations",
			[]string{"14 CFR PART 107"},
		},
		{
			"no references",
			"the pilot must complete training",
			nil,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ExtractReferences(tc.in)
			if len(got) != len(tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("ref[%d] = %q, want %q", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestClassify_CategoryScoring(t *testing.T) {
	c := newTestClassifier()
	result := c.Classify("The pilot must complete training and hold a valid certificate.")

	if len(result.Categories) == 0 {
		t.Fatal("expected at least one category")
	}
	if result.Categories[0].ID != "training-certification" {
		t.Errorf("top category = %q, want training-certification", result.Categories[0].ID)
	}
	if len(result.Categories[0].MatchedKeywords) == 0 {
		t.Error("expected matched keywords")
	}
	if s := result.Categories[0].Score; s <= 0 || s > 1 {
		t.Errorf("score out of range: %f", s)
	}
}

func TestClassify_ResolvedReferencePromotesCategory(t *testing.T) {
	c := newTestClassifier()

	// Keyword overlap alone favors the records category here; the
	// resolved regulation must pull its owning category to the top.
	result := c.Classify("CAR 901.54 applies to training records.")

	if len(result.Categories) == 0 {
		t.Fatal("expected categories")
	}
	if result.Categories[0].ID != "training-certification" {
		t.Errorf("top category = %q, want training-certification", result.Categories[0].ID)
	}
	if result.Categories[0].Score < regulationScore {
		t.Errorf("promoted score = %f, want >= %f", result.Categories[0].Score, regulationScore)
	}

	// An unknown citation format still extracts but promotes nothing.
	unknown := c.Classify("XYZ 999.99 governs nothing in particular.")
	for _, cat := range unknown.Categories {
		if cat.Score >= regulationScore {
			t.Errorf("unexpected promotion for unresolved reference: %v", cat)
		}
	}
}

func TestClassify_NoMatch(t *testing.T) {
	c := newTestClassifier()
	result := c.Classify("zephyr gardens quarterly newsletter")

	if len(result.Categories) != 0 {
		t.Errorf("expected no categories, got %v", result.Categories)
	}
	if result.Confidence != 0 {
		t.Errorf("expected confidence 0, got %f", result.Confidence)
	}
}

func TestClassify_ConfidenceMonotonicity(t *testing.T) {
	c := newTestClassifier()
	withoutRef := c.Classify("The pilot must complete training before flight.")
	withRef := c.Classify("The pilot must complete training before flight per CAR 901.54.")

	if withRef.Confidence <= withoutRef.Confidence {
		t.Errorf("confidence with reference (%f) must exceed without (%f)",
			withRef.Confidence, withoutRef.Confidence)
	}
}

func TestClassify_ConfidenceBounds(t *testing.T) {
	c := newTestClassifier()
	// Heavy keyword soup to drive the raw sum as high as possible.
	result := c.Classify("pilot certificate certification training trained licence license " +
		"exam examination qualified qualification competency crew recency knowledge " +
		"per CAR 901.54 and training records course exam recency recurrent")
	if result.Confidence > 1 {
		t.Errorf("confidence must be capped at 1, got %f", result.Confidence)
	}
}

func TestClassify_QuestionPattern(t *testing.T) {
	c := newTestClassifier()
	result := c.Classify("Do you hold a Special Flight Operations Certificate for this work?")

	if len(result.Questions) == 0 {
		t.Fatal("expected a question pattern hit")
	}
	if result.Questions[0].ID != "q-sfoc" {
		t.Errorf("got question %q", result.Questions[0].ID)
	}
	if len(result.Categories) == 0 || result.Categories[0].ID != "flight-operations" {
		t.Errorf("question hit should promote flight-operations, got %v", result.Categories)
	}
	if !containsString(result.RegulatoryRefs, "CAR 903.01") {
		t.Errorf("question hit should attach CAR 903.01, got %v", result.RegulatoryRefs)
	}
}

func TestCache_Memoizes(t *testing.T) {
	cache := NewCache(newTestClassifier())

	first := cache.Classify("pilot training required")
	second := cache.Classify("pilot training required")

	if cache.Len() != 1 {
		t.Errorf("expected 1 cached entry, got %d", cache.Len())
	}
	if first.Confidence != second.Confidence {
		t.Error("cached result differs from computed result")
	}

	cache.Classify("a different requirement about maintenance")
	if cache.Len() != 2 {
		t.Errorf("expected 2 cached entries, got %d", cache.Len())
	}

	cache.Purge()
	if cache.Len() != 0 {
		t.Errorf("expected empty cache after purge, got %d", cache.Len())
	}
}
