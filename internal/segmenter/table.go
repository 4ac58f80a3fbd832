// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package segmenter

import (
	"strings"
)

// columnRole describes how a recognized table column feeds the unit.
type columnRole int

const (
	columnIgnore columnRole = iota
	columnBody
	columnSection
	columnReference
)

// headerVocabulary maps known header-cell words to column roles. The
// header scan requires at least two recognized cells within the first
// five rows; documents with headers further down fall back to the
// longest-cell heuristic.
var headerVocabulary = map[string]columnRole{
	"requirement": columnBody,
	"description": columnBody,
	"text":        columnBody,
	"section":     columnSection,
	"category":    columnSection,
	"reference":   columnReference,
	"reg":         columnReference,
	"car":         columnReference,
}

const (
	headerScanRows  = 5
	minCellLength   = 20
	minHeaderCells  = 2
)

func segmentTable(lines []string, delimiter string) []Unit {
	sep := "\t"
	if delimiter == "pipe" {
		sep = "|"
	}

	headerRow, roles := findHeaderRow(lines, sep)
	if headerRow >= 0 {
		return segmentWithHeader(lines[headerRow+1:], sep, roles)
	}
	return segmentByLongestCell(lines, sep)
}

// findHeaderRow scans the first rows for one whose cells match the known
// header vocabulary, returning its index and per-column roles, or -1.
func findHeaderRow(lines []string, sep string) (int, []columnRole) {
	limit := headerScanRows
	if len(lines) < limit {
		limit = len(lines)
	}
	for i := 0; i < limit; i++ {
		cells := splitRow(lines[i], sep)
		roles := make([]columnRole, len(cells))
		recognized := 0
		for j, cell := range cells {
			role, ok := matchHeaderCell(cell)
			if ok {
				roles[j] = role
				recognized++
			}
		}
		if recognized >= minHeaderCells {
			return i, roles
		}
	}
	return -1, nil
}

func matchHeaderCell(cell string) (columnRole, bool) {
	lower := strings.ToLower(strings.TrimSpace(cell))
	for word, role := range headerVocabulary {
		if strings.Contains(lower, word) {
			return role, true
		}
	}
	return columnIgnore, false
}

// segmentWithHeader maps each data row positionally onto the header
// roles. Separator rows are skipped; rows without a body cell yield no
// unit.
func segmentWithHeader(rows []string, sep string, roles []columnRole) []Unit {
	var units []Unit
	for _, row := range rows {
		if isSeparatorRow(row) {
			continue
		}
		cells := splitRow(row, sep)
		var unit Unit
		for j, cell := range cells {
			if j >= len(roles) {
				break
			}
			cell = strings.TrimSpace(cell)
			if cell == "" {
				continue
			}
			switch roles[j] {
			case columnBody:
				unit.Text = cell
			case columnSection:
				unit.Section = cell
			case columnReference:
				unit.Reference = cell
			}
		}
		if unit.Text != "" {
			units = append(units, unit)
		}
	}
	return units
}

// segmentByLongestCell is the no-header fallback: the longest cell in
// each row becomes the requirement body when it is long enough to be a
// sentence.
func segmentByLongestCell(rows []string, sep string) []Unit {
	var units []Unit
	for _, row := range rows {
		if isSeparatorRow(row) {
			continue
		}
		longest := ""
		for _, cell := range splitRow(row, sep) {
			cell = strings.TrimSpace(cell)
			if len(cell) > len(longest) {
				longest = cell
			}
		}
		if len(longest) > minCellLength {
			units = append(units, Unit{Text: longest})
		}
	}
	return units
}

func splitRow(row, sep string) []string {
	// Pipe tables often pad with leading/trailing delimiters.
	if sep == "|" {
		row = strings.Trim(row, "| ")
	}
	return strings.Split(row, sep)
}

// isSeparatorRow reports whether a row is purely separator characters
// such as "----" or "====" (plus delimiter characters and whitespace).
func isSeparatorRow(row string) bool {
	trimmed := strings.TrimSpace(row)
	if trimmed == "" {
		return true
	}
	seen := false
	for _, r := range trimmed {
		switch r {
		case '-', '=':
			seen = true
		case '|', '+', ' ', '\t':
			// delimiter noise
		default:
			return false
		}
	}
	return seen
}
