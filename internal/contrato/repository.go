package contrato

import "gorm.io/gorm"

type Repository interface {
	Criar(db *gorm.DB, c *Contrato) error
	BuscarPorID(db *gorm.DB, id uint) (*Contrato, error)
	ListarTodos(db *gorm.DB) ([]Contrato, error)
	Salvar(db *gorm.DB, c *Contrato) error
	RemoverVendedores(db *gorm.DB, contratoID uint) error
	RemoverCompradores(db *gorm.DB, contratoID uint) error
	Deletar(db *gorm.DB, c *Contrato) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, c *Contrato) error {
	return db.Create(c).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Contrato, error) {
	var c Contrato
	err := db.
		Preload("Vendedores", func(db *gorm.DB) *gorm.DB { return db.Order("ordem ASC") }).
		Preload("Compradores", func(db *gorm.DB) *gorm.DB { return db.Order("ordem ASC") }).
		First(&c, id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Contrato, error) {
	var contratos []Contrato
	err := db.
		Preload("Vendedores", func(db *gorm.DB) *gorm.DB { return db.Order("ordem ASC") }).
		Preload("Compradores", func(db *gorm.DB) *gorm.DB { return db.Order("ordem ASC") }).
		Order("created_at DESC").
		Find(&contratos).Error
	return contratos, err
}

func (r *repositoryImpl) Salvar(db *gorm.DB, c *Contrato) error {
	return db.Session(&gorm.Session{FullSaveAssociations: true}).Save(c).Error
}

func (r *repositoryImpl) RemoverVendedores(db *gorm.DB, contratoID uint) error {
	return db.Where("contrato_id = ?", contratoID).Delete(&ContratoVendedor{}).Error
}

func (r *repositoryImpl) RemoverCompradores(db *gorm.DB, contratoID uint) error {
	return db.Where("contrato_id = ?", contratoID).Delete(&ContratoComprador{}).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, c *Contrato) error {
	return db.Select("Vendedores", "Compradores").Delete(c).Error
}
