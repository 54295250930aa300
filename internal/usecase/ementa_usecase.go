package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/fadilmartias/apostila-analyzer/internal/evaluation"
	"github.com/fadilmartias/apostila-analyzer/internal/model"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

const defaultRecommendations = 3

type EmentaStore interface {
	List(ctx context.Context) ([]model.Ementa, error)
	FindByID(ctx context.Context, id uint) (*model.Ementa, error)
	UpdateEmbedding(ctx context.Context, id uint, embedding pgvector.Vector) error
	SearchByEmbedding(ctx context.Context, embedding pgvector.Vector, topK int) ([]model.Ementa, error)
}

type Embedder interface {
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
}

type EmentaUsecase struct {
	ementas  EmentaStore
	embedder Embedder
	extract  TextExtractor
}

// NewEmentaUsecase accepts a nil embedder; indexing and recommendation then
// report the model as unavailable while listing keeps working.
func NewEmentaUsecase(ementas EmentaStore, embedder Embedder, extract TextExtractor) *EmentaUsecase {
	return &EmentaUsecase{ementas: ementas, embedder: embedder, extract: extract}
}

func (uc *EmentaUsecase) List(ctx context.Context) ([]model.Ementa, error) {
	return uc.ementas.List(ctx)
}

func (uc *EmentaUsecase) Get(ctx context.Context, id uint) (*model.Ementa, error) {
	e, err := uc.ementas.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, userErr(ErrNotFound, "Ementa não encontrada.")
	}
	if err != nil {
		return nil, fmt.Errorf("find ementa %d: %w", id, err)
	}
	return e, nil
}

// Index computes and stores the embedding used by Recommend.
func (uc *EmentaUsecase) Index(ctx context.Context, id uint) error {
	e, err := uc.Get(ctx, id)
	if err != nil {
		return err
	}
	vector, err := uc.embed(ctx, e.EmbeddingText())
	if err != nil {
		return err
	}
	if err := uc.ementas.UpdateEmbedding(ctx, id, vector); err != nil {
		return fmt.Errorf("store embedding for ementa %d: %w", id, err)
	}
	log.Printf("Indexed ementa %d (%s)", id, e.NomeDisciplina)
	return nil
}

// Recommend returns the indexed ementas closest to the uploaded material.
func (uc *EmentaUsecase) Recommend(ctx context.Context, fileName string, data []byte, topK int) ([]model.Ementa, error) {
	if len(data) == 0 {
		return nil, invalid("Arquivo é obrigatório.")
	}
	if topK <= 0 {
		topK = defaultRecommendations
	}
	text, err := uc.extract(fileName, data)
	if err != nil {
		return nil, err
	}
	vector, err := uc.embed(ctx, text)
	if err != nil {
		return nil, err
	}
	return uc.ementas.SearchByEmbedding(ctx, vector, topK)
}

func (uc *EmentaUsecase) embed(ctx context.Context, text string) (pgvector.Vector, error) {
	if uc.embedder == nil {
		return pgvector.Vector{}, fmt.Errorf("%w: embeddings are not configured", evaluation.ErrModelUnavailable)
	}
	values, err := uc.embedder.GenerateEmbedding(ctx, text)
	if err != nil {
		return pgvector.Vector{}, fmt.Errorf("%w: %w", evaluation.ErrModelUnavailable, err)
	}
	return pgvector.NewVector(values), nil
}
