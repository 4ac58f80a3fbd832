// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package requirement

import "testing"

func TestStructureTypeText(t *testing.T) {
	tests := []struct {
		st   StructureType
		want string
	}{
		{StructureNumberedList, "numbered-list"},
		{StructureTable, "table"},
		{StructureSectioned, "sectioned"},
		{StructureGeneric, "generic"},
	}
	for _, tt := range tests {
		if got := tt.st.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}

		data, err := tt.st.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v): %v", tt.st, err)
		}
		var back StructureType
		if err := back.UnmarshalText(data); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", data, err)
		}
		if back != tt.st {
			t.Errorf("round trip: got %v, want %v", back, tt.st)
		}
	}

	var st StructureType
	if err := st.UnmarshalText([]byte("pivot-table")); err == nil {
		t.Error("expected error for unknown structure type")
	}
}

func TestRequirementID(t *testing.T) {
	if got := RequirementID(7); got != "req-007" {
		t.Errorf("RequirementID(7) = %q", got)
	}
	if got := RequirementID(123); got != "req-123" {
		t.Errorf("RequirementID(123) = %q", got)
	}
}

func TestParseResultAppend(t *testing.T) {
	result := &ParseResult{}

	result.Append(Requirement{ID: "req-001", Category: "flight-operations", RegulatoryRef: "CAR 901.02"})
	result.Append(Requirement{ID: "req-002", Category: "flight-operations"})
	result.Append(Requirement{ID: "req-003", RegulatoryRef: "CAR 901.02"})

	if result.Stats.TotalRequirements != 3 {
		t.Errorf("TotalRequirements = %d, want 3", result.Stats.TotalRequirements)
	}
	if result.Stats.Categorized != 2 || result.Stats.Uncategorized != 1 {
		t.Errorf("categorized/uncategorized = %d/%d, want 2/1",
			result.Stats.Categorized, result.Stats.Uncategorized)
	}
	if result.Stats.WithReference != 2 {
		t.Errorf("WithReference = %d, want 2", result.Stats.WithReference)
	}
	if result.CategoryCounts["flight-operations"] != 2 {
		t.Errorf("CategoryCounts = %v", result.CategoryCounts)
	}
	// The duplicate reference is recorded once.
	if len(result.References) != 1 || result.References[0] != "CAR 901.02" {
		t.Errorf("References = %v", result.References)
	}
}
