// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package reference

import (
	"testing"
)

func TestNewLibrary_NonEmpty(t *testing.T) {
	lib := NewLibrary()
	if len(lib.Categories()) == 0 {
		t.Fatal("expected categories")
	}
	if len(lib.Regulations()) == 0 {
		t.Fatal("expected regulations")
	}
	if len(lib.EvidencePatterns()) == 0 {
		t.Fatal("expected evidence patterns")
	}
	if len(lib.QuestionPatterns()) == 0 {
		t.Fatal("expected question patterns")
	}
}

func TestLibrary_Integrity(t *testing.T) {
	lib := NewLibrary()

	// Every evidence id referenced by a category must exist.
	for _, c := range lib.Categories() {
		for _, id := range c.EvidenceTypes {
			if _, ok := lib.Evidence(id); !ok {
				t.Errorf("category %s references unknown evidence %q", c.ID, id)
			}
		}
	}

	// Every regulation must belong to a known category.
	for _, r := range lib.Regulations() {
		if _, ok := lib.Category(r.Category); !ok {
			t.Errorf("regulation %s references unknown category %q", r.ID, r.Category)
		}
	}

	// Question patterns must point at known categories and evidence.
	for _, q := range lib.QuestionPatterns() {
		if _, ok := lib.Category(q.Category); !ok {
			t.Errorf("question %s references unknown category %q", q.ID, q.Category)
		}
		if q.EvidenceType != "" {
			if _, ok := lib.Evidence(q.EvidenceType); !ok {
				t.Errorf("question %s references unknown evidence %q", q.ID, q.EvidenceType)
			}
		}
		if q.RegulatoryRef != "" {
			if _, ok := lib.LookupReference(q.RegulatoryRef); !ok {
				t.Errorf("question %s references unknown regulation %q", q.ID, q.RegulatoryRef)
			}
		}
	}
}

func TestNormalizeReference(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"car 901.54", "CAR 901.54"},
		{"  CAR   901.54  ", "CAR 901.54"},
		{"Car\t903.02(d)", "CAR 903.02(D)"},
	}
	for _, tc := range cases {
		if got := NormalizeReference(tc.in); got != tc.want {
			t.Errorf("NormalizeReference(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestLookupReference_Exact(t *testing.T) {
	lib := NewLibrary()
	info, ok := lib.LookupReference("car 901.54")
	if !ok {
		t.Fatal("expected lookup to succeed")
	}
	if info.ID != "CAR 901.54" {
		t.Errorf("got id %q", info.ID)
	}
	if info.SubPartKey != "" {
		t.Errorf("exact match should not set sub-part, got %q", info.SubPartKey)
	}
}

func TestLookupReference_SubPart(t *testing.T) {
	lib := NewLibrary()
	info, ok := lib.LookupReference("CAR 903.02(d)")
	if !ok {
		t.Fatal("expected sub-part lookup to succeed")
	}
	if info.ID != "CAR 903.02" {
		t.Errorf("expected base CAR 903.02, got %q", info.ID)
	}
	if info.SubPartKey != "d" {
		t.Errorf("expected sub-part d, got %q", info.SubPartKey)
	}
	if info.SubPartInfo == "" {
		t.Error("expected sub-part description")
	}
}

func TestLookupReference_SubPartWithoutTable(t *testing.T) {
	lib := NewLibrary()
	// CAR 901.54 has no declared sub-parts; the base should still resolve.
	info, ok := lib.LookupReference("CAR 901.54(a)")
	if !ok {
		t.Fatal("expected base lookup to succeed")
	}
	if info.SubPartKey != "" {
		t.Errorf("expected no sub-part info, got %q", info.SubPartKey)
	}
}

func TestLookupReference_Unknown(t *testing.T) {
	lib := NewLibrary()
	if _, ok := lib.LookupReference("CAR 999.99"); ok {
		t.Error("expected lookup to fail")
	}
	if _, ok := lib.LookupReference(""); ok {
		t.Error("expected empty lookup to fail")
	}
}

func TestMergeExtensions(t *testing.T) {
	lib := NewLibrary()
	before, _ := lib.Category("flight-operations")
	beforeCount := len(before.Keywords)

	lib.MergeExtensions([]CategoryExtension{
		{ID: "flight-operations", Keywords: []string{"corridor", "flight"}},
		{ID: "noise-abatement", Name: "Noise Abatement", Keywords: []string{"noise", "decibel"}},
		{ID: ""},
	})

	after, _ := lib.Category("flight-operations")
	// "corridor" is new, "flight" is a duplicate.
	if len(after.Keywords) != beforeCount+1 {
		t.Errorf("expected %d keywords, got %d", beforeCount+1, len(after.Keywords))
	}

	added, ok := lib.Category("noise-abatement")
	if !ok {
		t.Fatal("expected new category to be added")
	}
	if added.Name != "Noise Abatement" || len(added.Keywords) != 2 {
		t.Errorf("unexpected category %+v", added)
	}
}
