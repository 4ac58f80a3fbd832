// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package preprocessors turns input files into plain text suitable for
// parsing. Each preprocessor handles one family of file formats and
// reports basic content statistics alongside the extracted text.
package preprocessors

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ProcessedContent represents content that has been processed by a preprocessor
type ProcessedContent struct {
	// Original file information
	OriginalPath string
	Filename     string

	// Extracted content
	Text string

	// Content metadata
	Format    string
	PageCount int
	WordCount int
	CharCount int
	LineCount int
}

// Preprocessor defines the interface all preprocessors must implement
type Preprocessor interface {
	// GetName returns the name of this preprocessor
	GetName() string

	// GetSupportedExtensions returns the file extensions this preprocessor supports
	GetSupportedExtensions() []string

	// CanProcess checks if this preprocessor can handle the given file
	CanProcess(filePath string) bool

	// Process extracts text content from the given file
	Process(filePath string) (*ProcessedContent, error)
}

// Router dispatches files to the first preprocessor that can handle them
type Router struct {
	preprocessors []Preprocessor
}

// NewRouter creates a router with the default preprocessor set
func NewRouter() *Router {
	return &Router{
		preprocessors: []Preprocessor{
			NewPDFPreprocessor(),
			NewPlainTextPreprocessor(),
		},
	}
}

// ProcessFile routes the file to a matching preprocessor
func (r *Router) ProcessFile(filePath string) (*ProcessedContent, error) {
	for _, p := range r.preprocessors {
		if p.CanProcess(filePath) {
			return p.Process(filePath)
		}
	}
	return nil, fmt.Errorf("unsupported file type: %s", filepath.Ext(filePath))
}

// newContent initializes the shared fields of a ProcessedContent
func newContent(filePath, format string) *ProcessedContent {
	return &ProcessedContent{
		OriginalPath: filePath,
		Filename:     filepath.Base(filePath),
		Format:       format,
	}
}

// fillCounts computes word, character and line counts from the text
func (pc *ProcessedContent) fillCounts() {
	pc.WordCount = len(strings.Fields(pc.Text))
	pc.CharCount = len(pc.Text)
	if pc.Text != "" {
		pc.LineCount = strings.Count(pc.Text, "\n") + 1
	}
}
