package permissao

import (
	"fmt"

	"gorm.io/gorm"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) ListarTelas() ([]Screen, error) {
	var telas []Screen
	err := r.DB.Order("display_order ASC").Find(&telas).Error
	return telas, err
}

// CodigosPorUsuario lista os códigos de tela liberados, na ordem de exibição.
func (r *Repository) CodigosPorUsuario(userID uint) ([]string, error) {
	var codigos []string
	err := r.DB.Model(&UserScreen{}).
		Joins("JOIN screens ON screens.id = user_screen.screen_id").
		Where("user_screen.user_id = ?", userID).
		Order("screens.display_order ASC").
		Pluck("screens.code", &codigos).Error
	if codigos == nil {
		codigos = []string{}
	}
	return codigos, err
}

// AtualizarTelasDoUsuario substitui o conjunto de telas do usuário pelos
// códigos informados, dentro de uma transação.
func (r *Repository) AtualizarTelasDoUsuario(userID uint, codigos []string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&UserScreen{}).Error; err != nil {
			return err
		}
		for _, codigo := range codigos {
			var tela Screen
			if err := tx.Where("code = ?", codigo).First(&tela).Error; err != nil {
				return fmt.Errorf("tela não encontrada: %s", codigo)
			}
			if err := tx.Create(&UserScreen{UserID: userID, ScreenID: tela.ID}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
