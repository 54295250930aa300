package dto

import (
	"encoding/json"
	"time"

	"github.com/fadilmartias/apostila-analyzer/internal/evaluation"
	"github.com/fadilmartias/apostila-analyzer/internal/model"
	"github.com/google/uuid"
)

type CreateReportRequest struct {
	Titulo   string          `json:"titulo"`
	Tipo     string          `json:"tipo"`
	Conteudo json.RawMessage `json:"conteudo"`
}

// ReportContent is what an evaluation stores in relatorios.conteudo.
type ReportContent struct {
	Aba       string            `json:"aba"`
	Arquivo   string            `json:"arquivo"`
	Ementa    *model.Ementa     `json:"ementa,omitempty"`
	Resultado evaluation.Result `json:"resultado"`
}

type ReportDTO struct {
	ID           uuid.UUID       `json:"id"`
	UsuarioID    uuid.UUID       `json:"usuario_id"`
	Titulo       string          `json:"titulo"`
	Tipo         string          `json:"tipo"`
	Conteudo     json.RawMessage `json:"conteudo"`
	CriadoEm     time.Time       `json:"criado_em"`
	UsuarioNome  string          `json:"usuario_nome,omitempty"`
	UsuarioEmail string          `json:"usuario_email,omitempty"`
}

// NewReportDTO drops owner details unless withOwner is set.
func NewReportDTO(r model.ReportWithOwner, withOwner bool) ReportDTO {
	out := ReportDTO{
		ID:        r.ID,
		UsuarioID: r.UsuarioID,
		Titulo:    r.Titulo,
		Tipo:      r.Tipo,
		Conteudo:  json.RawMessage(r.Conteudo),
		CriadoEm:  r.CriadoEm,
	}
	if withOwner {
		out.UsuarioNome = r.UsuarioNome
		out.UsuarioEmail = r.UsuarioEmail
	}
	return out
}
