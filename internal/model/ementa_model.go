package model

import (
	"github.com/pgvector/pgvector-go"
)

// Ementa is a subject curriculum. Rows are maintained outside this service;
// only the embedding column is written here.
type Ementa struct {
	ID                   uint             `gorm:"primaryKey" json:"id"`
	NomeDisciplina       string           `gorm:"column:nome_disciplina;type:varchar(255)" json:"nome_disciplina"`
	CargaHoraria         string           `gorm:"column:carga_horaria;type:varchar(50)" json:"carga_horaria"`
	Objetivos            string           `gorm:"type:text" json:"objetivos"`
	ConteudoProgramatico string           `gorm:"column:conteudo_programatico;type:text" json:"conteudo_programatico"`
	Embedding            *pgvector.Vector `gorm:"type:vector(3072)" json:"-"`
}

func (e *Ementa) TableName() string {
	return "ementa"
}

// EmbeddingText is the text indexed for similarity search.
func (e *Ementa) EmbeddingText() string {
	return e.NomeDisciplina + "\n" + e.Objetivos + "\n" + e.ConteudoProgramatico
}
