package tarefa

import "gorm.io/gorm"

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Criar(t *Tarefa) error {
	return r.DB.Create(t).Error
}

func (r *Repository) BuscarPorID(id uint) (*Tarefa, error) {
	var t Tarefa
	if err := r.DB.First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *Repository) ListarTodas() ([]Tarefa, error) {
	var tarefas []Tarefa
	err := r.DB.Order("created_at DESC").Find(&tarefas).Error
	return tarefas, err
}

func (r *Repository) Salvar(t *Tarefa) error {
	return r.DB.Save(t).Error
}

func (r *Repository) Deletar(t *Tarefa) error {
	return r.DB.Delete(t).Error
}
