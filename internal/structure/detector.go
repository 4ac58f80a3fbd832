// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package structure infers the macro-layout of a pasted document by
// counting line shapes. The decision order is a fixed priority, so a
// document that trips several thresholds always resolves the same way.
package structure

import (
	"regexp"
	"strings"
	"unicode"

	"reqscan/internal/requirement"
)

var (
	numberedPrefix = regexp.MustCompile(`^\s*(\d+)[.)]\s+`)
	letteredPrefix = regexp.MustCompile(`^\s*\(?([a-z])[.)]\s+`)
	bulletPrefix   = regexp.MustCompile(`^\s*[-*•▪◦]\s+`)
	sectionNumber  = regexp.MustCompile(`(?i)^section\s+\d+`)
	titleCaseColon = regexp.MustCompile(`^(?:[A-Z][\w'-]*\s*)+:\s*$`)
	nestedNumeric  = regexp.MustCompile(`^\s*\d+\.\d+(?:\.\d+)*\s`)
	parenLetter    = regexp.MustCompile(`^\s*\(([a-z])\)\s+`)
)

// Thresholds for the priority decision. Fractions are over non-blank
// lines.
const (
	numberedThreshold = 0.3
	tableThreshold    = 0.5
	bulletThreshold   = 0.3
	minHeaderLines    = 2
)

// Detect classifies the layout of the given trimmed, non-blank lines.
// Callers filter blanks first; Detect is never handed an empty slice by
// the orchestrator.
func Detect(lines []string) requirement.DetectedStructure {
	total := len(lines)
	if total == 0 {
		return requirement.DetectedStructure{Type: requirement.StructureGeneric}
	}

	var numbered, bulleted, delimited int
	for _, line := range lines {
		if numberedPrefix.MatchString(line) {
			numbered++
		}
		if bulletPrefix.MatchString(line) {
			bulleted++
		}
		if strings.ContainsAny(line, "\t|") {
			delimited++
		}
	}

	numberedFrac := float64(numbered) / float64(total)
	bulletFrac := float64(bulleted) / float64(total)
	delimitedFrac := float64(delimited) / float64(total)

	// Priority order: numbered, table, bullet, sectioned, generic.
	if numberedFrac > numberedThreshold {
		return requirement.DetectedStructure{
			Type:       requirement.StructureNumberedList,
			Confidence: numberedFrac,
			Pattern:    "numbered",
		}
	}

	if delimitedFrac > tableThreshold {
		delimiter := "tab"
		if strings.Contains(lines[0], "|") {
			delimiter = "pipe"
		}
		return requirement.DetectedStructure{
			Type:       requirement.StructureTable,
			Confidence: delimitedFrac,
			Delimiter:  delimiter,
		}
	}

	if bulletFrac > bulletThreshold {
		return requirement.DetectedStructure{
			Type:       requirement.StructureNumberedList,
			Confidence: bulletFrac,
			Pattern:    "bullet",
		}
	}

	headers := 0
	for _, line := range lines {
		if IsSectionHeader(line) {
			headers++
		}
	}
	if headers > minHeaderLines {
		return requirement.DetectedStructure{
			Type:        requirement.StructureSectioned,
			Confidence:  float64(headers) / float64(total),
			HeaderCount: headers,
		}
	}

	return requirement.DetectedStructure{Type: requirement.StructureGeneric}
}

// MatchNumbered reports whether line carries a numeric list prefix and
// returns the line with the prefix stripped.
func MatchNumbered(line string) (string, bool) {
	if loc := numberedPrefix.FindStringIndex(line); loc != nil {
		return strings.TrimSpace(line[loc[1]:]), true
	}
	return "", false
}

// MatchLettered reports whether line carries a lettered list prefix such
// as "a) " or "(b) " and returns the stripped remainder.
func MatchLettered(line string) (string, bool) {
	if loc := letteredPrefix.FindStringIndex(line); loc != nil {
		return strings.TrimSpace(line[loc[1]:]), true
	}
	return "", false
}

// MatchBullet reports whether line carries a bullet prefix and returns
// the stripped remainder.
func MatchBullet(line string) (string, bool) {
	if loc := bulletPrefix.FindStringIndex(line); loc != nil {
		return strings.TrimSpace(line[loc[1]:]), true
	}
	return "", false
}

// IsSectionHeader reports whether line is section-header-shaped: an
// ALL-CAPS line, a "Section N" prefix, or a "Title Case:" line.
func IsSectionHeader(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	if sectionNumber.MatchString(trimmed) {
		return true
	}
	if titleCaseColon.MatchString(trimmed) {
		return true
	}
	return isAllCaps(trimmed)
}

// IsSubsectionHeader reports whether line opens a subsection: a nested
// numeric prefix like "3.2 " or a lettered parenthetical like "(a) ".
func IsSubsectionHeader(line string) bool {
	return nestedNumeric.MatchString(line) || parenLetter.MatchString(line)
}

// isAllCaps reports whether the line contains at least three letters and
// no lowercase ones.
func isAllCaps(s string) bool {
	letters := 0
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			letters++
		}
	}
	return letters >= 3
}
