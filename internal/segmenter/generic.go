// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package segmenter

import (
	"regexp"
	"strings"
)

// minSentenceLength filters out fragments the generic fallback should not
// promote to requirements.
const minSentenceLength = 30

var obligationWords = []string{
	"shall", "must", "require", "demonstrate", "provide", "describe",
	"explain",
}

var interrogativeOpeners = []string{
	"how do", "how does", "how will", "what is", "what are",
}

// referenceToken is a loose reference-shaped pattern; presence alone
// marks a sentence as requirement-like.
var referenceToken = regexp.MustCompile(`\b[A-Z]{2,5}\s?\d{3}\.\d{2}`)

// segmentGeneric is the unstructured fallback: join everything, split on
// sentence boundaries and keep sentences that look like requirements.
func segmentGeneric(lines []string) []Unit {
	var units []Unit
	for _, sentence := range splitSentences(strings.Join(lines, " ")) {
		if len(sentence) <= minSentenceLength {
			continue
		}
		if looksLikeRequirement(sentence) {
			units = append(units, Unit{Text: sentence})
		}
	}
	return units
}

// splitSentences breaks text on '.', '?' or '!' followed by whitespace,
// keeping the terminator with its sentence.
func splitSentences(text string) []string {
	var sentences []string
	start := 0
	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		switch runes[i] {
		case '.', '?', '!':
			if i+1 >= len(runes) || runes[i+1] == ' ' || runes[i+1] == '\t' {
				s := strings.TrimSpace(string(runes[start : i+1]))
				if s != "" {
					sentences = append(sentences, s)
				}
				start = i + 1
			}
		}
	}
	if tail := strings.TrimSpace(string(runes[start:])); tail != "" {
		sentences = append(sentences, tail)
	}
	return sentences
}

// looksLikeRequirement applies the lexical gate: obligation language, an
// interrogative opener, a reference-shaped token, or a trailing question
// mark.
func looksLikeRequirement(sentence string) bool {
	lower := strings.ToLower(sentence)

	for _, w := range obligationWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	for _, opener := range interrogativeOpeners {
		if strings.HasPrefix(lower, opener) {
			return true
		}
	}
	if referenceToken.MatchString(sentence) {
		return true
	}
	return strings.HasSuffix(strings.TrimSpace(sentence), "?")
}
