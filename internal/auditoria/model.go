// Package auditoria registra e apresenta o histórico de alterações de
// contratos: diff campo a campo entre duas versões, filtragem de campos
// técnicos e formatação para exibição.
package auditoria

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ContratoAlteracao é um evento de edição: o conjunto de mudanças de campo
// detectadas em um salvamento, atribuído a um usuário e a um instante.
// Linhas são somente-acréscimo; nunca são editadas ou mescladas.
type ContratoAlteracao struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	ContratoID uint           `gorm:"not null;index" json:"contratoId"`
	Username   string         `gorm:"size:120;not null" json:"username"`
	ChangedAt  time.Time      `gorm:"not null;index" json:"changedAt"`
	Changes    datatypes.JSON `gorm:"type:jsonb;not null" json:"changes"`
}

func (ContratoAlteracao) TableName() string {
	return "contrato_alteracoes"
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&ContratoAlteracao{})
}
