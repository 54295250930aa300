package service

import (
	"bytes"
	"testing"

	"github.com/fumiama/go-docx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExportFormat(t *testing.T) {
	f, err := ParseExportFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatDOCX, f)

	f, err = ParseExportFormat(" PDF ")
	require.NoError(t, err)
	assert.Equal(t, FormatPDF, f)
	assert.Equal(t, "versao_corrigida.pdf", f.FileName())

	_, err = ParseExportFormat("odt")
	assert.Error(t, err)
}

func TestExportService_PDF(t *testing.T) {
	out, err := NewExportService().Render("Capítulo 1\n\nInteressante, não é?\nÁrea = π·r² ≈ 3,14", FormatPDF)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
	assert.True(t, bytes.Contains(bytes.ToLower(out), []byte("/basefont /utf8dejavu")), "unicode font is embedded")
}

func TestExportService_DOCX(t *testing.T) {
	out, err := NewExportService().Render("Linha <1>\n\nLinha & 2\nÁrea = π·r²", FormatDOCX)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(out, []byte("PK")))

	doc, err := docx.Parse(bytes.NewReader(out), int64(len(out)))
	require.NoError(t, err)

	var paragraphs []string
	for _, item := range doc.Document.Body.Items {
		if p, ok := item.(*docx.Paragraph); ok {
			paragraphs = append(paragraphs, p.String())
		}
	}
	assert.Equal(t, []string{"Linha <1>", "", "Linha & 2", "Área = π·r²"}, paragraphs)
}
