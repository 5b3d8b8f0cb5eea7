// Package tarefa é a lista de pendências do escritório.
package tarefa

import (
	"time"

	"gorm.io/gorm"
)

type Tarefa struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Titulo    string    `gorm:"size:255;not null" json:"title"`
	Concluida bool      `gorm:"not null;default:false" json:"done"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Tarefa) TableName() string {
	return "tasks"
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Tarefa{})
}
