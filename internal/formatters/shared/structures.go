// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package shared

// GetConfidenceLevel returns the confidence level as a string
func GetConfidenceLevel(confidence float64) string {
	switch {
	case confidence >= 0.7:
		return "HIGH"
	case confidence >= 0.4:
		return "MEDIUM"
	default:
		return "LOW"
	}
}
