package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/fadilmartias/apostila-analyzer/internal/dto"
	"github.com/fadilmartias/apostila-analyzer/internal/model"
	"github.com/google/uuid"
	"github.com/tidwall/gjson"
)

const (
	topUsersLimit     = 5
	topDocumentsLimit = 10
)

// Older reports were saved by different clients, so the ementa may live
// under any of these keys and be either a name or an object.
var (
	ementaPaths      = []string{"ementaUtilizada", "ementa", "resultado.ementaUtilizada", "dadosEmenta"}
	ementaNameFields = []string{"nome_disciplina", "nome", "disciplina", "titulo", "descricao"}
)

type ReportLister interface {
	AllWithOwners(ctx context.Context) ([]model.ReportWithOwner, error)
}

type AdminUsecase struct {
	reports ReportLister
}

func NewAdminUsecase(reports ReportLister) *AdminUsecase {
	return &AdminUsecase{reports: reports}
}

type userScore struct {
	id    uuid.UUID
	name  string
	email string
	sum   float64
	count int
}

// Dashboard is computed on every call from the stored report contents.
func (uc *AdminUsecase) Dashboard(ctx context.Context) (*dto.DashboardDTO, error) {
	rows, err := uc.reports.AllWithOwners(ctx)
	if err != nil {
		return nil, fmt.Errorf("load reports: %w", err)
	}
	return buildDashboard(rows), nil
}

func buildDashboard(rows []model.ReportWithOwner) *dto.DashboardDTO {
	documents := make([]dto.TopDocument, 0)
	users := make([]*userScore, 0)
	byID := make(map[uuid.UUID]*userScore)

	for _, row := range rows {
		content := []byte(row.Conteudo)
		score, ok := finalScoreOf(content)
		if !ok {
			continue
		}

		documents = append(documents, dto.TopDocument{
			ID:             row.ID,
			Titulo:         row.Titulo,
			Tipo:           row.Tipo,
			PontuacaoFinal: score,
			UsuarioID:      row.UsuarioID,
			UsuarioNome:    row.UsuarioNome,
			UsuarioEmail:   row.UsuarioEmail,
			CriadoEm:       row.CriadoEm,
			Ementa:         ementaTitleOf(content),
		})

		u, found := byID[row.UsuarioID]
		if !found {
			u = &userScore{id: row.UsuarioID, name: row.UsuarioNome, email: row.UsuarioEmail}
			byID[row.UsuarioID] = u
			users = append(users, u)
		}
		u.sum += score
		u.count++
	}

	topUsers := make([]dto.TopUser, 0, len(users))
	for _, u := range users {
		topUsers = append(topUsers, dto.TopUser{
			UsuarioID:       u.id,
			Nome:            u.name,
			Email:           u.email,
			MediaPontuacao:  math.Round(u.sum/float64(u.count)*100) / 100,
			TotalRelatorios: u.count,
		})
	}
	sort.SliceStable(topUsers, func(i, j int) bool {
		return topUsers[i].MediaPontuacao > topUsers[j].MediaPontuacao
	})
	if len(topUsers) > topUsersLimit {
		topUsers = topUsers[:topUsersLimit]
	}

	summary := dto.DashboardSummary{
		TotalRelatorios:   len(rows),
		TotalComPontuacao: len(documents),
		TotalUsuarios:     len(users),
	}

	sort.SliceStable(documents, func(i, j int) bool {
		return documents[i].PontuacaoFinal > documents[j].PontuacaoFinal
	})
	if len(documents) > topDocumentsLimit {
		documents = documents[:topDocumentsLimit]
	}

	return &dto.DashboardDTO{
		Resumo:        summary,
		TopUsuarios:   topUsers,
		TopDocumentos: documents,
	}
}

func finalScoreOf(content []byte) (float64, bool) {
	v := gjson.GetBytes(content, "resultado.pontuacaoFinal")
	switch v.Type {
	case gjson.Number:
		return v.Float(), true
	case gjson.String:
		f, err := strconv.ParseFloat(v.Str, 64)
		if err != nil || math.IsNaN(f) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

func ementaTitleOf(content []byte) *string {
	for _, path := range ementaPaths {
		v := gjson.GetBytes(content, path)
		if !truthy(v) {
			continue
		}
		if v.Type == gjson.String {
			return &v.Str
		}
		if v.IsObject() {
			for _, field := range ementaNameFields {
				if name := v.Get(field); name.Type == gjson.String && name.Str != "" {
					return &name.Str
				}
			}
		}
		return nil
	}
	return nil
}

// truthy follows the loose checks the frontend applied when it wrote these keys.
func truthy(v gjson.Result) bool {
	switch v.Type {
	case gjson.String:
		return v.Str != ""
	case gjson.Number:
		return v.Num != 0
	case gjson.True, gjson.JSON:
		return true
	default:
		return false
	}
}
