package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Nome         string    `gorm:"type:varchar(255);not null" json:"nome"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	SenhaHash    string    `gorm:"column:senha_hash;type:varchar(255);not null" json:"-"`
	Role         string    `gorm:"type:varchar(20);not null;default:user" json:"role"`
	CriadoEm     time.Time `gorm:"column:criado_em;autoCreateTime" json:"criado_em"`
	AtualizadoEm time.Time `gorm:"column:atualizado_em;autoUpdateTime" json:"atualizado_em"`
}

func (u *User) TableName() string {
	return "usuarios"
}
