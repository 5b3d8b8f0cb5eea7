// Package seed garante os dados mínimos de operação: o catálogo de telas e o
// usuário administrador.
package seed

import (
	"errors"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/MarlonMartinss/advocacia/internal/permissao"
	"github.com/MarlonMartinss/advocacia/internal/usuario"
	"github.com/MarlonMartinss/advocacia/internal/utils"
)

const (
	adminUsername = "admin"
	adminSenha    = "1234"
)

func Executar(db *gorm.DB, log *logrus.Logger) error {
	if err := criarTelas(db, log); err != nil {
		return err
	}
	return criarAdmin(db, log)
}

func criarTelas(db *gorm.DB, log *logrus.Logger) error {
	var total int64
	if err := db.Model(&permissao.Screen{}).Count(&total).Error; err != nil {
		return err
	}
	if total > 0 {
		return nil
	}

	telas := []permissao.Screen{
		{Code: "dashboard", Label: "Dashboard", Route: "/dashboard", DisplayOrder: 0},
		{Code: "contratos", Label: "Contratos", Route: "/contratos", DisplayOrder: 1},
		{Code: "permissoes", Label: "Permissões usuários", Route: "/permissoes-usuarios", DisplayOrder: 2},
		{Code: "usuarios", Label: "Usuários", Route: "/usuarios", DisplayOrder: 3},
	}
	if err := db.Create(&telas).Error; err != nil {
		return err
	}
	log.Info("Telas iniciais criadas")
	return nil
}

func criarAdmin(db *gorm.DB, log *logrus.Logger) error {
	hash, err := utils.HashSenha(adminSenha)
	if err != nil {
		return err
	}

	var admin usuario.Usuario
	err = db.Where("username = ?", adminUsername).First(&admin).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		admin = usuario.Usuario{
			Username: adminUsername,
			Senha:    hash,
			Nome:     "Administrador",
			Email:    "admin@advocacia.com",
			Role:     usuario.PerfilAdmin,
			Ativo:    true,
		}
		if err := db.Create(&admin).Error; err != nil {
			return err
		}
		log.Info("Usuário admin criado")
	case err != nil:
		return err
	default:
		// garante acesso mesmo se a senha foi perdida
		admin.Senha = hash
		if err := db.Save(&admin).Error; err != nil {
			return err
		}
	}

	return liberarTodasAsTelas(db, admin.ID)
}

func liberarTodasAsTelas(db *gorm.DB, userID uint) error {
	var vinculos int64
	if err := db.Model(&permissao.UserScreen{}).Where("user_id = ?", userID).Count(&vinculos).Error; err != nil {
		return err
	}
	if vinculos > 0 {
		return nil
	}

	var telas []permissao.Screen
	if err := db.Order("display_order ASC").Find(&telas).Error; err != nil {
		return err
	}
	for _, tela := range telas {
		if err := db.Create(&permissao.UserScreen{UserID: userID, ScreenID: tela.ID}).Error; err != nil {
			return err
		}
	}
	return nil
}
