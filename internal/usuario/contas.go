package usuario

import (
	"gorm.io/gorm"

	"github.com/MarlonMartinss/advocacia/internal/auth"
)

// ContaProvider adapta o repositório de usuários para o login.
type ContaProvider struct {
	DB   *gorm.DB
	Repo Repository
}

func NewContaProvider(db *gorm.DB) *ContaProvider {
	return &ContaProvider{DB: db, Repo: NewRepository()}
}

func (p *ContaProvider) PorUsername(username string) (*auth.Conta, error) {
	u, err := p.Repo.BuscarPorUsername(p.DB, username)
	if err != nil {
		return nil, err
	}
	return &auth.Conta{
		ID:        u.ID,
		Username:  u.Username,
		Nome:      u.Nome,
		Role:      u.Role,
		SenhaHash: u.Senha,
		Ativo:     u.Ativo,
		Admin:     u.Admin(),
	}, nil
}
