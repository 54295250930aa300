package dto

import (
	"github.com/fadilmartias/apostila-analyzer/internal/evaluation"
	"github.com/fadilmartias/apostila-analyzer/internal/model"
)

type EvaluateResponse struct {
	Tipo      string            `json:"tipo"`
	Arquivo   string            `json:"arquivo"`
	Ementa    *model.Ementa     `json:"ementa,omitempty"`
	Resultado evaluation.Result `json:"resultado"`
	// TextoOriginal is sent back so the client can request corrections later.
	TextoOriginal string `json:"textoOriginal"`
}

type OverrideRequest struct {
	Tipo      string            `json:"tipo"`
	Resultado evaluation.Result `json:"resultado"`
	Criterio  *int              `json:"criterio"`
	Status    string            `json:"status"`
}

type AnalyzeLinksRequest struct {
	Links []string `json:"links"`
}

type AnalyzeLinksResponse struct {
	Analysis []evaluation.LinkAnalysis `json:"analysis"`
}
