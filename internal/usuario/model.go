// Package usuario administra as contas de acesso ao sistema.
package usuario

import (
	"time"

	"gorm.io/gorm"
)

// Perfis de acesso.
const (
	PerfilAdmin = "ADMIN"
	PerfilUser  = "USER"
)

type Usuario struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"size:100;not null;uniqueIndex" json:"username"`
	Senha    string `gorm:"size:100;not null" json:"-"`
	Nome     string `gorm:"size:150" json:"name"`
	Email    string `gorm:"size:150" json:"email,omitempty"`
	Role     string `gorm:"size:50;not null;default:USER" json:"role"`
	Ativo    bool   `gorm:"not null;default:true" json:"active"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`
}

func (Usuario) TableName() string {
	return "users"
}

// Admin indica se o usuário tem o perfil administrador.
func (u *Usuario) Admin() bool {
	return u.Role == PerfilAdmin
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Usuario{})
}
