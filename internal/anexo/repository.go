package anexo

import "gorm.io/gorm"

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Criar(a *ContratoAnexo) error {
	return r.DB.Create(a).Error
}

func (r *Repository) BuscarPorID(id uint) (*ContratoAnexo, error) {
	var a ContratoAnexo
	if err := r.DB.First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *Repository) ListarPorContrato(contratoID uint) ([]ContratoAnexo, error) {
	var anexos []ContratoAnexo
	err := r.DB.
		Where("contrato_id = ?", contratoID).
		Order("created_at DESC").
		Find(&anexos).Error
	return anexos, err
}

func (r *Repository) Deletar(a *ContratoAnexo) error {
	return r.DB.Delete(a).Error
}
