package service

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"

	"github.com/fumiama/go-docx"
	"github.com/go-pdf/fpdf"
)

type ExportFormat string

const (
	FormatPDF  ExportFormat = "pdf"
	FormatDOCX ExportFormat = "docx"
)

// ParseExportFormat defaults to DOCX when raw is empty.
func ParseExportFormat(raw string) (ExportFormat, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "docx":
		return FormatDOCX, nil
	case "pdf":
		return FormatPDF, nil
	default:
		return "", fmt.Errorf("unknown export format %q", raw)
	}
}

func (f ExportFormat) ContentType() string {
	if f == FormatPDF {
		return "application/pdf"
	}
	return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
}

func (f ExportFormat) FileName() string {
	return "versao_corrigida." + string(f)
}

type ExportServiceInterface interface {
	Render(text string, format ExportFormat) ([]byte, error)
}

type ExportService struct{}

func NewExportService() *ExportService {
	return &ExportService{}
}

// Render writes text as a document with one paragraph per line.
func (s *ExportService) Render(text string, format ExportFormat) ([]byte, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	switch format {
	case FormatPDF:
		return renderPDF(lines)
	case FormatDOCX:
		return renderDOCX(lines)
	default:
		return nil, fmt.Errorf("unknown export format %q", format)
	}
}

// DejaVu covers Latin, Greek, Cyrillic and most math symbols; the PDF core
// fonts stop at cp1252.
//
//go:embed fonts/DejaVuSansCondensed.ttf
var dejaVuSans []byte

func renderPDF(lines []string) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(18, 18, 18)
	pdf.SetAutoPageBreak(true, 18)
	pdf.AddUTF8FontFromBytes("DejaVu", "", dejaVuSans)
	pdf.AddPage()
	pdf.SetFont("DejaVu", "", 12)

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			pdf.Ln(6)
			continue
		}
		pdf.MultiCell(0, 6, line, "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func renderDOCX(lines []string) ([]byte, error) {
	doc := docx.New().WithDefaultTheme()
	for _, line := range lines {
		para := doc.AddParagraph()
		if line != "" {
			para.AddText(line)
		}
	}

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("render docx: %w", err)
	}
	return buf.Bytes(), nil
}
