// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package reference

// builtinCategories is the curated category taxonomy. Keyword order is
// stable so scoring stays deterministic across runs.
var builtinCategories = []Category{
	{
		ID:          "flight-operations",
		Name:        "Flight Operations",
		Description: "How, where and under what conditions the aircraft is operated",
		Keywords: []string{
			"operate", "operation", "operational", "flight", "airspace",
			"altitude", "visual line-of-sight", "vlos", "bvlos",
			"controlled airspace", "aerodrome", "airport", "weather",
			"night", "horizontal distance",
		},
		TypicalRequirements: []string{
			"Describe the operating area, altitudes and airspace classes involved",
			"Confirm compliance with visual line-of-sight limits or describe BVLOS mitigations",
			"Provide the operational procedures that apply to this type of flight",
		},
		EvidenceTypes: []string{"operations-manual", "sfoc", "insurance-certificate"},
	},
	{
		ID:          "training-certification",
		Name:        "Training and Certification",
		Description: "Pilot and crew qualifications, certification and recurrency",
		Keywords: []string{
			"pilot", "certificate", "certification", "training", "trained",
			"licence", "license", "exam", "examination", "qualified",
			"qualification", "competency", "crew", "recency", "knowledge",
		},
		TypicalRequirements: []string{
			"Identify who will pilot the aircraft and their certificate number",
			"Describe the training program and how competency is maintained",
			"State the recency requirements met by each crew member",
		},
		EvidenceTypes: []string{"pilot-certificate", "training-records"},
	},
	{
		ID:          "maintenance-airworthiness",
		Name:        "Maintenance and Airworthiness",
		Description: "Keeping the aircraft and its systems serviceable",
		Keywords: []string{
			"maintenance", "maintain", "maintained", "repair", "inspection",
			"inspect", "serviceable", "airworthiness", "manufacturer",
			"modification", "defect",
		},
		TypicalRequirements: []string{
			"Describe the maintenance program and inspection intervals",
			"Confirm the aircraft is maintained per the manufacturer's instructions",
		},
		EvidenceTypes: []string{"maintenance-log", "operations-manual"},
	},
	{
		ID:          "safety-management",
		Name:        "Safety Management",
		Description: "Risk assessment, hazard identification and mitigation",
		Keywords: []string{
			"safety", "risk", "hazard", "assessment", "mitigation",
			"mitigate", "safety management", "sms", "audit", "oversight",
		},
		TypicalRequirements: []string{
			"Provide the risk assessment performed for this operation",
			"Describe how hazards are identified, tracked and mitigated",
		},
		EvidenceTypes: []string{"risk-assessment", "operations-manual"},
	},
	{
		ID:          "records-documentation",
		Name:        "Records and Documentation",
		Description: "Record keeping, registration and retention obligations",
		Keywords: []string{
			"record", "records", "log", "logbook", "document",
			"documentation", "retain", "retention", "register",
			"registration", "registered",
		},
		TypicalRequirements: []string{
			"List the records kept for each flight and their retention period",
			"Provide the aircraft registration number and certificate",
		},
		EvidenceTypes: []string{"flight-log", "maintenance-log"},
	},
	{
		ID:          "emergency-procedures",
		Name:        "Emergency Procedures",
		Description: "Contingency planning for abnormal and emergency events",
		Keywords: []string{
			"emergency", "contingency", "incident", "accident", "fly-away",
			"flyaway", "lost link", "failure", "malfunction",
		},
		TypicalRequirements: []string{
			"Describe lost-link and fly-away procedures",
			"Provide the emergency response plan for injuries or damage",
		},
		EvidenceTypes: []string{"emergency-plan", "operations-manual"},
	},
	{
		ID:          "equipment-systems",
		Name:        "Equipment and Systems",
		Description: "Aircraft equipment, payloads and supporting systems",
		Keywords: []string{
			"equipment", "system", "systems", "payload", "sensor", "gps",
			"battery", "transmitter", "detect and avoid", "firmware",
			"datalink",
		},
		TypicalRequirements: []string{
			"List the aircraft, payloads and control equipment used",
			"Describe how equipment serviceability is verified before flight",
		},
		EvidenceTypes: []string{"maintenance-log", "operations-manual"},
	},
	{
		ID:          "site-operations",
		Name:        "Site and Airspace Survey",
		Description: "Surveying and securing the operating site",
		Keywords: []string{
			"site", "survey", "location", "obstacle", "bystander",
			"proximity", "boundary", "perimeter", "launch", "recovery",
		},
		TypicalRequirements: []string{
			"Provide the site survey for the operating location",
			"Describe how bystanders are kept clear of the operating area",
		},
		EvidenceTypes: []string{"risk-assessment", "operations-manual"},
	},
}
