// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package classifier

import (
	"regexp"

	"reqscan/internal/reference"
)

// refPattern pairs a reference-authority style with its token pattern.
type refPattern struct {
	name  string
	regex *regexp.Regexp
}

// referencePatterns is the fixed, ordered set of citation token patterns.
// Order matters: earlier patterns claim their tokens first and
// deduplication preserves first-seen order. One pattern per authority
// style.
var referencePatterns = []refPattern{
	{
		name:  "CAR",
		regex: regexp.MustCompile(`(?i)\bCARs?\s+\d{3}\.\d{2}(?:\([a-z0-9]+\))*`),
	},
	{
		name:  "TC_Standard",
		regex: regexp.MustCompile(`(?i)\bStandard\s+\d{3}\.\d{2}(?:\([a-z0-9]+\))*`),
	},
	{
		name:  "TC_AIM",
		regex: regexp.MustCompile(`(?i)\bTC\s+AIM\s+RPA\s+\d+(?:\.\d+)*`),
	},
	{
		name:  "ICAO_Annex",
		regex: regexp.MustCompile(`(?i)\bICAO\s+Annex\s+\d+`),
	},
	{
		name:  "CFR",
		regex: regexp.MustCompile(`(?i)\b\d{1,2}\s+CFR\s+(?:Part\s+)?\d+(?:\.\d+)?`),
	},
	{
		// Generic "ABC 123.45(a)" style token for authorities not listed
		// above. Uppercase only, to avoid swallowing ordinary prose.
		name:  "Generic",
		regex: regexp.MustCompile(`\b[A-Z]{2,5}\s?\d{3}\.\d{2}(?:\([a-z0-9]+\))*`),
	},
}

// ExtractReferences pulls regulatory reference tokens out of text, in
// pattern order, normalized and deduplicated preserving first-seen order.
func ExtractReferences(text string) []string {
	var refs []string
	seen := make(map[string]bool)
	for _, p := range referencePatterns {
		for _, tok := range p.regex.FindAllString(text, -1) {
			norm := reference.NormalizeReference(tok)
			if norm == "" || seen[norm] {
				continue
			}
			seen[norm] = true
			refs = append(refs, norm)
		}
	}
	return refs
}
