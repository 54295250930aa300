package repository

import (
	"context"

	"github.com/fadilmartias/apostila-analyzer/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db}
}

func (r *ReportRepository) Create(ctx context.Context, report *model.Report) error {
	return r.db.WithContext(ctx).Create(report).Error
}

func (r *ReportRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.ReportWithOwner, error) {
	var report model.ReportWithOwner
	err := r.withOwner(ctx).Where("r.id = ?", id).Take(&report).Error
	return &report, err
}

// ListByUser returns one page of the user's reports, newest first, and the
// total number of reports the user owns.
func (r *ReportRepository) ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]model.ReportWithOwner, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Report{}).Where("usuario_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	reports := make([]model.ReportWithOwner, 0)
	err := r.withOwner(ctx).
		Where("r.usuario_id = ?", userID).
		Order("r.criado_em DESC").
		Offset(offset).
		Limit(limit).
		Find(&reports).Error
	return reports, total, err
}

func (r *ReportRepository) ListAll(ctx context.Context, offset, limit int) ([]model.ReportWithOwner, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Report{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	reports := make([]model.ReportWithOwner, 0)
	err := r.withOwner(ctx).
		Order("r.criado_em DESC").
		Offset(offset).
		Limit(limit).
		Find(&reports).Error
	return reports, total, err
}

// AllWithOwners feeds the admin dashboard, which aggregates every report.
func (r *ReportRepository) AllWithOwners(ctx context.Context) ([]model.ReportWithOwner, error) {
	reports := make([]model.ReportWithOwner, 0)
	err := r.withOwner(ctx).Order("r.criado_em DESC").Find(&reports).Error
	return reports, err
}

func (r *ReportRepository) withOwner(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("relatorios AS r").
		Select("r.*, u.nome AS usuario_nome, u.email AS usuario_email").
		Joins("JOIN usuarios u ON u.id = r.usuario_id")
}
