// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package reference

// builtinEvidence enumerates the kinds of supporting documentation that
// requirements commonly call for, with the keywords used to score them.
var builtinEvidence = []EvidencePattern{
	{
		ID:          "pilot-certificate",
		Name:        "Pilot Certificate",
		Description: "A pilot certificate issued for small RPAS, basic or advanced operations",
		Keywords:    []string{"certificate", "licence", "license", "pilot", "certified"},
		Satisfies:   []string{"training-certification", "CAR 901.54", "CAR 901.64"},
		Sources:     []string{"uploaded-file"},
	},
	{
		ID:          "training-records",
		Name:        "Training Records",
		Description: "Records of completed training, examinations and recurrency",
		Keywords:    []string{"training", "course", "exam", "recency", "recurrent"},
		Satisfies:   []string{"training-certification", "CAR 901.56"},
		Sources:     []string{"project-record"},
	},
	{
		ID:          "maintenance-log",
		Name:        "Maintenance Log",
		Description: "A log of maintenance actions, inspections and modifications",
		Keywords:    []string{"maintenance", "inspection", "repair", "serviceable"},
		Satisfies:   []string{"maintenance-airworthiness", "CAR 901.23", "CAR 901.48"},
		Sources:     []string{"project-record"},
	},
	{
		ID:          "operations-manual",
		Name:        "Operations Manual",
		Description: "The operator's manual of standard and emergency operating procedures",
		Keywords:    []string{"manual", "procedure", "procedures", "sop"},
		Satisfies:   []string{"flight-operations", "emergency-procedures"},
		Sources:     []string{"policy-document"},
	},
	{
		ID:          "sfoc",
		Name:        "Special Flight Operations Certificate",
		Description: "An SFOC — RPAS issued for operations outside Part IX limits",
		Keywords:    []string{"sfoc", "special flight"},
		Satisfies:   []string{"flight-operations", "CAR 903.01", "CAR 903.02"},
		Sources:     []string{"uploaded-file"},
	},
	{
		ID:          "insurance-certificate",
		Name:        "Liability Insurance Certificate",
		Description: "Proof of liability insurance coverage for the operation",
		Keywords:    []string{"insurance", "liability", "coverage"},
		Satisfies:   []string{"flight-operations"},
		Sources:     []string{"uploaded-file"},
	},
	{
		ID:          "flight-log",
		Name:        "Flight Log",
		Description: "Per-flight records of pilot, aircraft, time and location",
		Keywords:    []string{"flight log", "logbook", "flight time", "hours"},
		Satisfies:   []string{"records-documentation", "CAR 901.48"},
		Sources:     []string{"project-record"},
	},
	{
		ID:          "risk-assessment",
		Name:        "Site Risk Assessment",
		Description: "The documented site survey and risk assessment for an operating location",
		Keywords:    []string{"risk", "assessment", "hazard", "survey"},
		Satisfies:   []string{"safety-management", "site-operations", "CAR 901.71"},
		Sources:     []string{"project-record"},
	},
	{
		ID:          "emergency-plan",
		Name:        "Emergency Response Plan",
		Description: "Documented contingency procedures for lost link, fly-away and injury events",
		Keywords:    []string{"emergency", "contingency", "response plan"},
		Satisfies:   []string{"emergency-procedures", "CAR 901.19"},
		Sources:     []string{"policy-document"},
	},
}
