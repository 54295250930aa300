package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Report struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UsuarioID uuid.UUID      `gorm:"column:usuario_id;type:uuid;not null;index" json:"usuario_id"`
	Usuario   *User          `gorm:"foreignKey:UsuarioID;constraint:OnDelete:CASCADE" json:"-"`
	Titulo    string         `gorm:"type:varchar(255);not null" json:"titulo"`
	Tipo      string         `gorm:"type:varchar(50);not null" json:"tipo"` // "aluno", "professor" or "admin"
	Conteudo  datatypes.JSON `gorm:"type:jsonb;not null" json:"conteudo"`
	CriadoEm  time.Time      `gorm:"column:criado_em;autoCreateTime;index" json:"criado_em"`
}

func (r *Report) TableName() string {
	return "relatorios"
}

// ReportWithOwner is a report row joined with its owner, as read by admins.
type ReportWithOwner struct {
	Report
	UsuarioNome  string `json:"usuario_nome"`
	UsuarioEmail string `json:"usuario_email"`
}
