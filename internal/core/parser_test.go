// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reqscan/internal/requirement"
)

func TestParse_NumberedListFixture(t *testing.T) {
	p := NewParser(nil)
	result := p.Parse("1. Pilot must hold a valid certificate.\n2. CAR 901.54 applies to training records.\n", Options{})

	require.Equal(t, requirement.StructureNumberedList, result.Structure.Type)
	require.Len(t, result.Requirements, 2)

	second := result.Requirements[1]
	assert.Equal(t, "CAR 901.54", second.RegulatoryRef)
	assert.Equal(t, "training-certification", second.Category,
		"the resolved regulation owns the training category")

	assert.Contains(t, result.References, "CAR 901.54")
	assert.Equal(t, 1, result.Stats.WithReference)
}

func TestParse_TableFixture(t *testing.T) {
	p := NewParser(nil)
	raw := "Requirement\tReference\tSection\n" +
		"Hold a valid pilot certificate\tCAR 901.54\tCrew\n" +
		"---------\t---------\t-------\n" +
		"Keep flight and maintenance records\tCAR 901.48\tRecords\n"
	result := p.Parse(raw, Options{})

	require.Equal(t, requirement.StructureTable, result.Structure.Type)
	assert.Equal(t, "tab", result.Structure.Delimiter)
	require.Len(t, result.Requirements, 2)

	assert.Equal(t, "Hold a valid pilot certificate", result.Requirements[0].Text)
	assert.Equal(t, "CAR 901.54", result.Requirements[0].RegulatoryRef)
	assert.Equal(t, "Crew", result.Requirements[0].Section)
	assert.Equal(t, "CAR 901.48", result.Requirements[1].RegulatoryRef)
	assert.Equal(t, "Records", result.Requirements[1].Section)
}

func TestParse_MarketingProse(t *testing.T) {
	p := NewParser(nil)
	result := p.Parse("Our company delivers innovative aerial imaging solutions. We pride ourselves on customer satisfaction and quality results.", Options{})

	assert.Equal(t, requirement.StructureGeneric, result.Structure.Type)
	assert.Empty(t, result.Requirements)
	assert.Equal(t, 0, result.Stats.TotalRequirements)
	assert.NotEmpty(t, result.Warnings)
}

func TestParse_EmptyInput(t *testing.T) {
	p := NewParser(nil)
	for _, raw := range []string{"", "\n\n\n", "  \r\n  \r  "} {
		result := p.Parse(raw, Options{})
		assert.Empty(t, result.Requirements)
		assert.Equal(t, 0, result.Stats.TotalRequirements)
		assert.Equal(t, requirement.StructureGeneric, result.Structure.Type)
		assert.NotEmpty(t, result.Warnings)
	}
}

func TestParse_StatsInvariants(t *testing.T) {
	p := NewParser(nil)
	inputs := []string{
		"1. Pilots must hold a certificate.\n2. Keep maintenance records.\n3. lorem ipsum dolor sit amet consectetur.",
		"SAFETY\nOperators shall assess risks before every flight operation begins.\nTRAINING\nPilots must complete recurrent training every two years.\nRECORDS\nAll flight logs are retained for two years.",
		"How do you verify pilot recency? The operator shall demonstrate compliance with CAR 901.56 on request.",
	}
	for _, raw := range inputs {
		result := p.Parse(raw, Options{})

		assert.Equal(t, len(result.Requirements), result.Stats.TotalRequirements)
		assert.Equal(t, result.Stats.TotalRequirements,
			result.Stats.Categorized+result.Stats.Uncategorized)

		for i, req := range result.Requirements {
			assert.Equal(t, i+1, req.Order, "orders must be consecutive from 1")
			assert.Equal(t, requirement.RequirementID(i+1), req.ID)
			assert.GreaterOrEqual(t, req.Confidence, 0.0)
			assert.LessOrEqual(t, req.Confidence, 1.0)
		}
	}
}

func TestParse_OptionsDefaults(t *testing.T) {
	p := NewParser(nil)
	result := p.Parse("1. Pilots must train.", Options{})
	assert.Equal(t, DefaultDocumentName, result.DocumentName)
	assert.Equal(t, DefaultDocumentType, result.DocumentType)

	named := p.Parse("1. Pilots must train.", Options{DocumentName: "TC Questionnaire", DocumentType: "questionnaire"})
	assert.Equal(t, "TC Questionnaire", named.DocumentName)
	assert.Equal(t, "questionnaire", named.DocumentType)
}

func TestParse_LineEndingNormalization(t *testing.T) {
	p := NewParser(nil)
	for _, raw := range []string{
		"1. Pilots must train.\n2. Keep records.",
		"1. Pilots must train.\r\n2. Keep records.",
		"1. Pilots must train.\r2. Keep records.",
	} {
		result := p.Parse(raw, Options{})
		require.Len(t, result.Requirements, 2, "input %q", raw)
	}
}

func TestNormalizeLines(t *testing.T) {
	lines := NormalizeLines("a\r\n\r\n  b  \rc\n\n")
	require.Equal(t, []string{"a", "b", "c"}, lines)
}

func TestParse_UncategorizedStillEmitted(t *testing.T) {
	p := NewParser(nil)
	result := p.Parse("1. lorem ipsum dolor sit amet.\n2. Pilots must complete training.", Options{})

	require.Len(t, result.Requirements, 2)
	assert.Empty(t, result.Requirements[0].Category)
	assert.Zero(t, result.Requirements[0].Confidence)
	assert.Equal(t, 1, result.Stats.Uncategorized)
	assert.Equal(t, 1, result.Stats.Categorized)
}
