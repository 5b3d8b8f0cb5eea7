// Package permissao controla quais telas do painel cada usuário enxerga.
package permissao

import "gorm.io/gorm"

// Screen é uma tela do painel administrativo.
type Screen struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Code         string `gorm:"size:50;not null;uniqueIndex" json:"code"`
	Label        string `gorm:"size:100;not null" json:"label"`
	Route        string `gorm:"size:100;not null" json:"route"`
	DisplayOrder int    `gorm:"not null;default:0" json:"-"`
}

func (Screen) TableName() string {
	return "screens"
}

// UserScreen é o vínculo usuário-tela (chave composta).
type UserScreen struct {
	UserID   uint `gorm:"primaryKey"`
	ScreenID uint `gorm:"primaryKey"`
}

func (UserScreen) TableName() string {
	return "user_screen"
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Screen{}, &UserScreen{})
}
