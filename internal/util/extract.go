package util

import (
	"bytes"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/fadilmartias/apostila-analyzer/internal/evaluation"
	"github.com/gen2brain/go-fitz"
)

// ExtractDocumentText returns the plain text of an uploaded .docx. Any other
// extension is rejected before the bytes are touched.
func ExtractDocumentText(fileName string, data []byte) (string, error) {
	if !strings.EqualFold(filepath.Ext(fileName), ".docx") {
		return "", fmt.Errorf("%w: %q", evaluation.ErrUnsupportedFormat, fileName)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("%w: empty file", evaluation.ErrValidation)
	}

	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return "", fmt.Errorf("failed to open document: %w", err)
	}
	defer doc.Close()

	var fullText bytes.Buffer
	var lastErr error
	for n := 0; n < doc.NumPage(); n++ {
		pageText, err := doc.Text(n)
		if err != nil {
			lastErr = fmt.Errorf("page %d: failed to extract text: %w", n+1, err)
			log.Println(lastErr)
			continue
		}
		pageText = strings.TrimSpace(pageText)
		if pageText != "" {
			fullText.WriteString(pageText)
			fullText.WriteString("\n\n")
		}
	}

	result := strings.TrimSpace(fullText.String())
	if result == "" {
		if lastErr != nil {
			return "", fmt.Errorf("failed to extract text: %w", lastErr)
		}
		return "", fmt.Errorf("%w: document has no text", evaluation.ErrValidation)
	}

	log.Printf("Extracted %d chars from %s (%d pages)", len(result), fileName, doc.NumPage())
	return result, nil
}
