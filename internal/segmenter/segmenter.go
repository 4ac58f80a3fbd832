// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package segmenter splits document lines into candidate requirement
// units. One strategy per detected structure type; every strategy
// tolerates malformed input and returns an empty unit list rather than
// failing.
package segmenter

import (
	"strings"

	"reqscan/internal/requirement"
)

// Unit is a segmented, pre-classification chunk of text believed to
// represent one discrete obligation.
type Unit struct {
	// Text is the unit body with any list prefix stripped.
	Text string

	// Continuations are follow-on lines merged into the unit.
	Continuations []string

	// Section and Subsection labels inherited from document structure.
	Section    string
	Subsection string

	// Reference is a raw regulatory reference supplied by the document
	// itself (e.g. a table column). It wins over extraction downstream.
	Reference string
}

// FullText joins the body and continuation lines.
func (u Unit) FullText() string {
	if len(u.Continuations) == 0 {
		return u.Text
	}
	parts := append([]string{u.Text}, u.Continuations...)
	return strings.Join(parts, " ")
}

// Segment dispatches lines to the strategy bound to the detected
// structure. The switch is exhaustive over the structure enum.
func Segment(lines []string, detected requirement.DetectedStructure) []Unit {
	switch detected.Type {
	case requirement.StructureNumberedList:
		return segmentList(lines)
	case requirement.StructureTable:
		return segmentTable(lines, detected.Delimiter)
	case requirement.StructureSectioned:
		return segmentSectioned(lines)
	case requirement.StructureGeneric:
		return segmentGeneric(lines)
	}
	return segmentGeneric(lines)
}
