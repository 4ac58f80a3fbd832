// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package reference

// builtinRegulations covers the Canadian Aviation Regulations Part IX
// sections most commonly cited in RPAS compliance questionnaires, plus a
// few cross-framework entries seen in mixed documents.
var builtinRegulations = []Regulation{
	{
		ID:          "CAR 900.06",
		Title:       "Reckless or negligent operation",
		Description: "No person shall operate an RPAS in a reckless or negligent manner that endangers aviation safety or any person.",
		Category:    "flight-operations",
		Topics:      []string{"conduct", "safety"},
	},
	{
		ID:          "CAR 901.02",
		Title:       "Registration requirement",
		Description: "No pilot shall operate an RPAS unless it is registered and the registration number is readily accessible.",
		Category:    "records-documentation",
		Topics:      []string{"registration"},
		EvidenceTypes: []string{
			"flight-log",
		},
	},
	{
		ID:          "CAR 901.11",
		Title:       "Visual line-of-sight",
		Description: "The pilot and any visual observer must keep the aircraft in visual line-of-sight at all times during flight.",
		Category:    "flight-operations",
		Topics:      []string{"vlos", "observers"},
	},
	{
		ID:          "CAR 901.19",
		Title:       "Emergency and contingency procedures",
		Description: "Procedures must be established for control-station failure, lost link, fly-away and flight termination.",
		Category:    "emergency-procedures",
		Topics:      []string{"lost-link", "fly-away"},
		EvidenceTypes: []string{
			"emergency-plan",
		},
	},
	{
		ID:          "CAR 901.23",
		Title:       "Manufacturer's instructions",
		Description: "The RPAS must be operated and maintained in accordance with the manufacturer's instructions.",
		Category:    "maintenance-airworthiness",
		Topics:      []string{"maintenance"},
	},
	{
		ID:          "CAR 901.25",
		Title:       "Maximum altitude",
		Description: "Flight above 400 feet AGL, or above 100 feet over a structure within 200 feet of it, is prohibited without authorization.",
		Category:    "flight-operations",
		Topics:      []string{"altitude"},
	},
	{
		ID:          "CAR 901.48",
		Title:       "Records",
		Description: "Operators must keep records of pilot names and flight times, and maintenance actions performed, for 24 months.",
		Category:    "records-documentation",
		Topics:      []string{"records", "retention"},
		EvidenceTypes: []string{
			"flight-log", "maintenance-log", "training-records",
		},
	},
	{
		ID:          "CAR 901.54",
		Title:       "Basic operations — pilot certificate",
		Description: "No pilot shall conduct basic operations unless they hold a pilot certificate — small RPAS (VLOS) — basic operations.",
		Category:    "training-certification",
		Topics:      []string{"certificate", "basic"},
		EvidenceTypes: []string{
			"pilot-certificate",
		},
	},
	{
		ID:          "CAR 901.56",
		Title:       "Basic operations — recency",
		Description: "Pilots must have met recency requirements within the 24 months preceding the flight.",
		Category:    "training-certification",
		Topics:      []string{"recency"},
	},
	{
		ID:          "CAR 901.64",
		Title:       "Advanced operations — pilot certificate",
		Description: "No pilot shall conduct advanced operations unless they hold a pilot certificate — small RPAS (VLOS) — advanced operations.",
		Category:    "training-certification",
		Topics:      []string{"certificate", "advanced"},
		EvidenceTypes: []string{
			"pilot-certificate",
		},
	},
	{
		ID:          "CAR 901.71",
		Title:       "Site survey",
		Description: "Before operating, the pilot must complete a site survey covering boundaries, airspace, obstacles and bystander proximity.",
		Category:    "site-operations",
		Topics:      []string{"site-survey"},
		EvidenceTypes: []string{
			"risk-assessment",
		},
	},
	{
		ID:          "CAR 903.01",
		Title:       "Operations requiring a special flight operations certificate",
		Description: "Operations outside Part IX limits (BVLOS, over 25 kg, special aviation events) require an SFOC — RPAS.",
		Category:    "flight-operations",
		Topics:      []string{"sfoc"},
		EvidenceTypes: []string{
			"sfoc",
		},
	},
	{
		ID:          "CAR 903.02",
		Title:       "Application for a special flight operations certificate",
		Description: "An SFOC application must contain the information set out in this section.",
		Category:    "flight-operations",
		Topics:      []string{"sfoc", "application"},
		SubParts: map[string]string{
			"a": "the legal name, trade name and contact information of the applicant",
			"b": "the purpose, dates and times of the proposed operation",
			"c": "a description of the area of operation, including a map and airspace classification",
			"d": "a description of the safety plan for the operation, including risk mitigation measures",
			"e": "a detailed plan describing how the operation is to be carried out",
			"f": "the names and certificates of the pilots conducting the operation",
			"g": "a description of the RPAS to be operated and its performance limits",
			"h": "any other information required by the Minister pertinent to safe conduct",
		},
		EvidenceTypes: []string{
			"sfoc", "risk-assessment",
		},
	},
	{
		ID:          "ICAO ANNEX 2",
		Title:       "Rules of the Air",
		Description: "International rules of the air, incorporated by reference for cross-border RPAS operations.",
		Category:    "flight-operations",
		Topics:      []string{"international"},
	},
}
