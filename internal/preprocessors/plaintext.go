// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package preprocessors

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// maxTextFileSize caps plain text input at 10 MB; pasted requirement
// documents are orders of magnitude smaller.
const maxTextFileSize = 10 * 1024 * 1024

// PlainTextPreprocessor handles plain text files by passing their content through
type PlainTextPreprocessor struct{}

// NewPlainTextPreprocessor creates a new plain text preprocessor
func NewPlainTextPreprocessor() *PlainTextPreprocessor {
	return &PlainTextPreprocessor{}
}

// GetName returns the name of this preprocessor
func (ptp *PlainTextPreprocessor) GetName() string {
	return "Plain Text Preprocessor"
}

// GetSupportedExtensions returns the file extensions this preprocessor supports
func (ptp *PlainTextPreprocessor) GetSupportedExtensions() []string {
	return []string{".txt", ".text", ".md", ".markdown", ".rst", ".csv", ".tsv"}
}

// CanProcess checks if this preprocessor can handle the given file
func (ptp *PlainTextPreprocessor) CanProcess(filePath string) bool {
	ext := strings.ToLower(filepath.Ext(filePath))
	for _, supported := range ptp.GetSupportedExtensions() {
		if ext == supported {
			return true
		}
	}
	// Extensionless files are accepted when their content looks like text.
	if ext == "" {
		return isTextFile(filePath)
	}
	return false
}

// Process reads the file and passes its content through
func (ptp *PlainTextPreprocessor) Process(filePath string) (*ProcessedContent, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("error accessing file: %w", err)
	}
	if info.Size() > maxTextFileSize {
		return nil, fmt.Errorf("file too large: %d bytes (limit %d)", info.Size(), maxTextFileSize)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("file is not valid UTF-8 text: %s", filepath.Base(filePath))
	}

	content := newContent(filePath, "text")
	content.Text = string(data)
	content.fillCounts()
	return content, nil
}

// isTextFile checks whether the first bytes of a file decode as text
func isTextFile(filePath string) bool {
	f, err := os.Open(filePath)
	if err != nil {
		return false
	}
	defer f.Close()

	buf := make([]byte, 512)
	n, err := f.Read(buf)
	if err != nil && n == 0 {
		return false
	}
	buf = buf[:n]

	for _, b := range buf {
		if b == 0 {
			return false
		}
	}
	// A multi-byte rune may be cut at the read boundary; drop at most
	// the width of one rune before judging validity.
	for i := 0; i < utf8.UTFMax-1 && len(buf) > 0 && !utf8.Valid(buf); i++ {
		buf = buf[:len(buf)-1]
	}
	return len(buf) > 0 && utf8.Valid(buf)
}
