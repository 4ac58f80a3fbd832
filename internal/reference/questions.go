// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package reference

// builtinQuestions captures differently-worded questions that keep showing
// up across frameworks and questionnaires. Phrases are matched as
// lowercase substrings.
var builtinQuestions = []QuestionPattern{
	{
		ID:            "q-pilot-certificate",
		Phrases:       []string{"pilot certificate", "who will pilot", "pilot qualifications", "certificate number"},
		Category:      "training-certification",
		RegulatoryRef: "CAR 901.54",
		EvidenceType:  "pilot-certificate",
	},
	{
		ID:            "q-sfoc",
		Phrases:       []string{"special flight operations certificate", "sfoc"},
		Category:      "flight-operations",
		RegulatoryRef: "CAR 903.01",
		EvidenceType:  "sfoc",
	},
	{
		ID:            "q-registration",
		Phrases:       []string{"registration number", "registration mark", "is the aircraft registered"},
		Category:      "records-documentation",
		RegulatoryRef: "CAR 901.02",
	},
	{
		ID:           "q-insurance",
		Phrases:      []string{"proof of insurance", "liability insurance", "insurance coverage"},
		Category:     "flight-operations",
		EvidenceType: "insurance-certificate",
	},
	{
		ID:            "q-maintenance-program",
		Phrases:       []string{"maintenance program", "maintenance schedule", "how is the aircraft maintained"},
		Category:      "maintenance-airworthiness",
		RegulatoryRef: "CAR 901.23",
		EvidenceType:  "maintenance-log",
	},
	{
		ID:            "q-emergency",
		Phrases:       []string{"emergency procedures", "lost link procedure", "fly-away procedure"},
		Category:      "emergency-procedures",
		RegulatoryRef: "CAR 901.19",
		EvidenceType:  "emergency-plan",
	},
	{
		ID:            "q-site-survey",
		Phrases:       []string{"site survey", "operating environment", "describe the location"},
		Category:      "site-operations",
		RegulatoryRef: "CAR 901.71",
		EvidenceType:  "risk-assessment",
	},
}
