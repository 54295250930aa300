package dto

import "github.com/fadilmartias/apostila-analyzer/internal/model"

type RecommendResponse struct {
	Arquivo string         `json:"arquivo"`
	Ementas []model.Ementa `json:"ementas"`
}
