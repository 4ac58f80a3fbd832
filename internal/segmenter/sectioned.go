// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package segmenter

import (
	"strings"

	"reqscan/internal/structure"
)

// minBufferLength is the smallest accumulated text worth emitting as a
// unit from sectioned prose; shorter buffers are stray headers or noise.
const minBufferLength = 20

// segmentSectioned handles documents organized by headers. Plain lines
// accumulate into a buffer that flushes on the next header, subsection or
// numbered line, and at end of input.
func segmentSectioned(lines []string) []Unit {
	var units []Unit
	var buffer []string
	section := ""
	subsection := ""

	flush := func() {
		if len(buffer) == 0 {
			return
		}
		text := strings.TrimSpace(strings.Join(buffer, " "))
		buffer = buffer[:0]
		if len(text) <= minBufferLength {
			return
		}
		units = append(units, Unit{
			Text:       text,
			Section:    section,
			Subsection: subsection,
		})
	}

	for _, line := range lines {
		switch {
		case structure.IsSectionHeader(line):
			flush()
			section = cleanSectionLabel(line)
			subsection = ""
		case structure.IsSubsectionHeader(line):
			flush()
			subsection = strings.TrimSpace(line)
		default:
			if body, ok := structure.MatchNumbered(line); ok {
				flush()
				buffer = append(buffer, body)
			} else {
				buffer = append(buffer, strings.TrimSpace(line))
			}
		}
	}

	flush()
	return units
}
