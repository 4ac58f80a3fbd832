// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package preprocessors

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// maxPDFPages caps extraction to keep processing time reasonable for
// very large documents.
const maxPDFPages = 50

// PDFPreprocessor extracts text content from PDF documents
type PDFPreprocessor struct {
	pdfConfig *model.Configuration
}

// NewPDFPreprocessor creates a new PDF preprocessor
func NewPDFPreprocessor() *PDFPreprocessor {
	return &PDFPreprocessor{
		pdfConfig: model.NewDefaultConfiguration(),
	}
}

// GetName returns the name of this preprocessor
func (pp *PDFPreprocessor) GetName() string {
	return "PDF Preprocessor"
}

// GetSupportedExtensions returns the file extensions this preprocessor supports
func (pp *PDFPreprocessor) GetSupportedExtensions() []string {
	return []string{".pdf"}
}

// CanProcess checks if this preprocessor can handle the given file
func (pp *PDFPreprocessor) CanProcess(filePath string) bool {
	return strings.ToLower(filepath.Ext(filePath)) == ".pdf"
}

// Process validates the PDF and extracts its text content
func (pp *PDFPreprocessor) Process(filePath string) (*ProcessedContent, error) {
	if err := api.ValidateFile(filePath, pp.pdfConfig); err != nil {
		return nil, fmt.Errorf("invalid PDF file: %w", err)
	}

	content := newContent(filePath, "pdf")

	f, r, err := pdf.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("error opening PDF: %w", err)
	}
	defer f.Close()

	content.PageCount = r.NumPage()
	pages := content.PageCount
	if pages > maxPDFPages {
		pages = maxPDFPages
	}

	var buf bytes.Buffer
	failedPages := 0
	for i := 1; i <= pages; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			failedPages++
			continue
		}
		text, err := extractPageText(p)
		if err != nil {
			failedPages++
			continue
		}
		if buf.Len() > 0 {
			buf.WriteString("\n")
		}
		buf.WriteString(text)
	}
	if failedPages == pages {
		return nil, fmt.Errorf("no text could be extracted from %s", content.Filename)
	}

	content.Text = cleanExtractedText(buf.String())
	content.fillCounts()
	return content, nil
}

// extractPageText extracts text using row-based positioning for better spacing
func extractPageText(p pdf.Page) (string, error) {
	rows, err := p.GetTextByRow()
	if err != nil {
		// Fall back to plain extraction when row positioning fails.
		return p.GetPlainText(nil)
	}

	var builder strings.Builder
	for _, row := range rows {
		var words []string
		for _, word := range row.Content {
			if s := strings.TrimSpace(word.S); s != "" {
				words = append(words, s)
			}
		}
		if len(words) > 0 {
			builder.WriteString(strings.Join(words, " "))
			builder.WriteString("\n")
		}
	}
	return builder.String(), nil
}

// cleanExtractedText normalizes whitespace while keeping line structure,
// which the structure detector depends on
func cleanExtractedText(text string) string {
	lines := strings.Split(text, "\n")
	var cleaned []string
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
