// Package anexo guarda os arquivos anexados a cada contrato: o binário em
// disco com nome único e os metadados no banco.
package anexo

import (
	"time"

	"gorm.io/gorm"
)

type ContratoAnexo struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	ContratoID   uint      `gorm:"not null;index" json:"contratoId"`
	NomeOriginal string    `gorm:"size:255;not null" json:"nomeOriginal"`
	NomeArquivo  string    `gorm:"size:255;not null" json:"-"`
	TipoMime     string    `gorm:"size:100" json:"tipoMime"`
	Tamanho      int64     `json:"tamanho"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (ContratoAnexo) TableName() string {
	return "contrato_anexos"
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&ContratoAnexo{})
}
