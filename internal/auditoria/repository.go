package auditoria

import "gorm.io/gorm"

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Criar(alteracao *ContratoAlteracao) error {
	return r.DB.Create(alteracao).Error
}

// ListarPorContrato devolve o histórico do contrato, mais recente primeiro.
func (r *Repository) ListarPorContrato(contratoID uint) ([]ContratoAlteracao, error) {
	var alteracoes []ContratoAlteracao
	err := r.DB.
		Where("contrato_id = ?", contratoID).
		Order("changed_at DESC").
		Find(&alteracoes).Error
	return alteracoes, err
}
