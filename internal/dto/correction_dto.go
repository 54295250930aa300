package dto

import "github.com/fadilmartias/apostila-analyzer/internal/evaluation"

type SuggestionRequest struct {
	Criterio      int                    `json:"criterio"`
	Descricao     string                 `json:"descricao"`
	Justificativa string                 `json:"justificativa"`
	Ementa        *evaluation.Curriculum `json:"ementa"`
}

type SuggestionResponse struct {
	Correcoes []evaluation.CorrectionCandidate `json:"correcoes"`
}

type ApplyCorrectionsRequest struct {
	TextoOriginal string                           `json:"textoOriginal"`
	Correcoes     []evaluation.CorrectionCandidate `json:"correcoes"`
	Formato       string                           `json:"formato"`
}
