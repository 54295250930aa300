package repository

import (
	"context"

	"github.com/fadilmartias/apostila-analyzer/internal/model"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type EmentaRepository struct {
	db *gorm.DB
}

func NewEmentaRepository(db *gorm.DB) *EmentaRepository {
	return &EmentaRepository{db}
}

func (r *EmentaRepository) List(ctx context.Context) ([]model.Ementa, error) {
	ementas := make([]model.Ementa, 0)
	err := r.db.WithContext(ctx).
		Omit("Embedding").
		Order("nome_disciplina").
		Find(&ementas).Error
	return ementas, err
}

func (r *EmentaRepository) FindByID(ctx context.Context, id uint) (*model.Ementa, error) {
	var e model.Ementa
	err := r.db.WithContext(ctx).Omit("Embedding").First(&e, "id = ?", id).Error
	return &e, err
}

func (r *EmentaRepository) UpdateEmbedding(ctx context.Context, id uint, embedding pgvector.Vector) error {
	return r.db.WithContext(ctx).
		Model(&model.Ementa{}).
		Where("id = ?", id).
		Update("embedding", embedding).Error
}

// SearchByEmbedding returns the topK indexed ementas closest to embedding.
func (r *EmentaRepository) SearchByEmbedding(ctx context.Context, embedding pgvector.Vector, topK int) ([]model.Ementa, error) {
	ementas := make([]model.Ementa, 0)

	err := r.db.WithContext(ctx).Raw(`
        SELECT id, nome_disciplina, carga_horaria, objetivos, conteudo_programatico
        FROM ementa
        WHERE embedding IS NOT NULL
        ORDER BY embedding <-> ?
        LIMIT ?
    `, embedding, topK).Scan(&ementas).Error

	return ementas, err
}
