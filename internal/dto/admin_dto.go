package dto

import (
	"time"

	"github.com/google/uuid"
)

type DashboardSummary struct {
	TotalRelatorios   int `json:"totalRelatorios"`
	TotalComPontuacao int `json:"totalComPontuacao"`
	TotalUsuarios     int `json:"totalUsuarios"`
}

type TopUser struct {
	UsuarioID       uuid.UUID `json:"usuarioId"`
	Nome            string    `json:"nome"`
	Email           string    `json:"email"`
	MediaPontuacao  float64   `json:"mediaPontuacao"`
	TotalRelatorios int       `json:"totalRelatorios"`
}

type TopDocument struct {
	ID             uuid.UUID `json:"id"`
	Titulo         string    `json:"titulo"`
	Tipo           string    `json:"tipo"`
	PontuacaoFinal float64   `json:"pontuacaoFinal"`
	UsuarioID      uuid.UUID `json:"usuarioId"`
	UsuarioNome    string    `json:"usuarioNome"`
	UsuarioEmail   string    `json:"usuarioEmail"`
	CriadoEm       time.Time `json:"criadoEm"`
	Ementa         *string   `json:"ementa"`
}

type DashboardDTO struct {
	Resumo        DashboardSummary `json:"resumo"`
	TopUsuarios   []TopUser        `json:"topUsuarios"`
	TopDocumentos []TopDocument    `json:"topDocumentos"`
}
