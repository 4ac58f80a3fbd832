// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package segmenter

import (
	"strings"

	"reqscan/internal/structure"
)

// segmentList handles numbered and bulleted documents. Section-header
// lines update the running section and are consumed; numbered, lettered
// and bullet prefixes start a new unit; anything else continues the open
// unit.
func segmentList(lines []string) []Unit {
	var units []Unit
	var open *Unit
	section := ""

	flush := func() {
		if open != nil {
			units = append(units, *open)
			open = nil
		}
	}

	for _, line := range lines {
		if structure.IsSectionHeader(line) {
			flush()
			section = cleanSectionLabel(line)
			continue
		}

		body, ok := structure.MatchNumbered(line)
		if !ok {
			body, ok = structure.MatchLettered(line)
		}
		if !ok {
			body, ok = structure.MatchBullet(line)
		}
		if ok {
			flush()
			open = &Unit{Text: body, Section: section}
			continue
		}

		if open != nil {
			open.Continuations = append(open.Continuations, strings.TrimSpace(line))
		}
		// Lines before the first prefix are preamble and are dropped.
	}

	flush()
	return units
}

// cleanSectionLabel trims header punctuation so "Training Requirements:"
// becomes "Training Requirements".
func cleanSectionLabel(line string) string {
	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(line), ":"))
}
