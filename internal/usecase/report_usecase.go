package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/fadilmartias/apostila-analyzer/internal/dto"
	"github.com/fadilmartias/apostila-analyzer/internal/model"
	"github.com/fadilmartias/apostila-analyzer/internal/response"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ReportStore interface {
	Create(ctx context.Context, report *model.Report) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.ReportWithOwner, error)
	ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]model.ReportWithOwner, int64, error)
	ListAll(ctx context.Context, offset, limit int) ([]model.ReportWithOwner, int64, error)
}

type ReportUsecase struct {
	reports ReportStore
}

func NewReportUsecase(reports ReportStore) *ReportUsecase {
	return &ReportUsecase{reports: reports}
}

func (uc *ReportUsecase) Create(ctx context.Context, actor Actor, req dto.CreateReportRequest) (*dto.ReportDTO, error) {
	content := strings.TrimSpace(string(req.Conteudo))
	if strings.TrimSpace(req.Titulo) == "" || strings.TrimSpace(req.Tipo) == "" || content == "" || content == "null" {
		return nil, invalid("Título, tipo e conteúdo são obrigatórios.")
	}
	if !json.Valid(req.Conteudo) {
		return nil, invalid("Conteúdo deve ser um JSON válido.")
	}

	report := &model.Report{
		ID:        uuid.New(),
		UsuarioID: actor.ID,
		Titulo:    req.Titulo,
		Tipo:      req.Tipo,
		Conteudo:  datatypes.JSON(req.Conteudo),
	}
	if err := uc.reports.Create(ctx, report); err != nil {
		return nil, fmt.Errorf("save report: %w", err)
	}
	out := dto.NewReportDTO(model.ReportWithOwner{Report: *report}, false)
	return &out, nil
}

// List returns the caller's own reports, or every report with its owner when
// the caller is an admin.
func (uc *ReportUsecase) List(ctx context.Context, actor Actor, page, pageSize int) ([]dto.ReportDTO, *response.Pagination, error) {
	page, pageSize, offset := response.NormalizePage(page, pageSize)

	var (
		rows  []model.ReportWithOwner
		total int64
		err   error
	)
	if actor.IsAdmin() {
		rows, total, err = uc.reports.ListAll(ctx, offset, pageSize)
	} else {
		rows, total, err = uc.reports.ListByUser(ctx, actor.ID, offset, pageSize)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("list reports: %w", err)
	}

	out := make([]dto.ReportDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.NewReportDTO(r, actor.IsAdmin()))
	}
	return out, response.NewPagination(page, pageSize, len(out), total), nil
}

func (uc *ReportUsecase) Get(ctx context.Context, actor Actor, id uuid.UUID) (*dto.ReportDTO, error) {
	report, err := uc.reports.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, userErr(ErrNotFound, "Relatório não encontrado.")
	}
	if err != nil {
		return nil, fmt.Errorf("find report %s: %w", id, err)
	}
	if !actor.IsAdmin() && report.UsuarioID != actor.ID {
		return nil, userErr(ErrForbidden, "Você não tem acesso a este relatório.")
	}
	out := dto.NewReportDTO(*report, actor.IsAdmin())
	return &out, nil
}
