package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/fadilmartias/apostila-analyzer/internal/dto"
	"github.com/fadilmartias/apostila-analyzer/internal/evaluation"
	"github.com/fadilmartias/apostila-analyzer/internal/service"
)

type Export struct {
	Format service.ExportFormat
	Data   []byte
}

type CorrectionUsecase struct {
	invoker  *evaluation.Invoker
	exporter service.ExportServiceInterface
}

func NewCorrectionUsecase(gen evaluation.Generator, exporter service.ExportServiceInterface) *CorrectionUsecase {
	return &CorrectionUsecase{invoker: evaluation.NewInvoker(gen), exporter: exporter}
}

// Suggest asks the model for literal fixes for one rejected criterion.
func (uc *CorrectionUsecase) Suggest(ctx context.Context, req dto.SuggestionRequest) ([]evaluation.CorrectionCandidate, error) {
	if strings.TrimSpace(req.Descricao) == "" {
		return nil, invalid("Descrição do critério é obrigatória.")
	}
	return uc.invoker.SuggestCorrections(ctx, evaluation.SuggestionInput{
		CriterionID:   req.Criterio,
		Description:   req.Descricao,
		Justification: req.Justificativa,
		Curriculum:    req.Ementa,
	})
}

// Export applies the accepted corrections and renders the corrected text.
func (uc *CorrectionUsecase) Export(req dto.ApplyCorrectionsRequest) (*Export, error) {
	if req.TextoOriginal == "" {
		return nil, invalid("Texto original é obrigatório.")
	}
	if len(req.Correcoes) == 0 {
		return nil, invalid("Lista de correções é obrigatória.")
	}
	format, err := service.ParseExportFormat(req.Formato)
	if err != nil {
		return nil, invalid("Formato deve ser \"docx\" ou \"pdf\".")
	}

	corrected := evaluation.ApplyCorrections(req.TextoOriginal, req.Correcoes)
	data, err := uc.exporter.Render(corrected, format)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}
	return &Export{Format: format, Data: data}, nil
}
