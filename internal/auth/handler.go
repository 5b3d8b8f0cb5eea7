package auth

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/MarlonMartinss/advocacia/internal/utils"
)

// Conta é a visão mínima de um usuário que o login precisa.
type Conta struct {
	ID        uint
	Username  string
	Nome      string
	Role      string
	SenhaHash string
	Ativo     bool
	Admin     bool
}

// ContaProvider busca a conta pelo login. Implementado pelo pacote usuario.
type ContaProvider interface {
	PorUsername(username string) (*Conta, error)
}

// TelaProvider lista os códigos de tela liberados para o usuário.
type TelaProvider func(userID uint) ([]string, error)

type Handler struct {
	DB     *gorm.DB
	Contas ContaProvider
	Telas  TelaProvider
	Log    *logrus.Logger
}

func NewHandler(db *gorm.DB, contas ContaProvider, telas TelaProvider, log *logrus.Logger) *Handler {
	return &Handler{DB: db, Contas: contas, Telas: telas, Log: log}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token          string   `json:"token"`
	TokenType      string   `json:"tokenType"`
	ExpiresIn      int      `json:"expiresIn"`
	UserID         uint     `json:"userId"`
	Username       string   `json:"username"`
	Name           string   `json:"name"`
	Role           string   `json:"role"`
	AllowedScreens []string `json:"allowedScreens"`
}

// POST /auth/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	conta, err := h.Contas.PorUsername(req.Username)
	if err != nil || !conta.Ativo || !utils.VerificarSenha(conta.SenhaHash, req.Password) {
		http.Error(w, "Usuário ou senha inválidos", http.StatusUnauthorized)
		return
	}

	token, err := EmitirTokens(h.DB, w, conta)
	if err != nil {
		h.Log.WithError(err).Error("falha ao emitir tokens no login")
		http.Error(w, "Erro ao autenticar", http.StatusInternalServerError)
		return
	}

	telas, err := h.Telas(conta.ID)
	if err != nil {
		h.Log.WithError(err).WithField("userId", conta.ID).Warn("falha ao carregar telas do usuário")
		telas = []string{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(loginResponse{
		Token:          token,
		TokenType:      "Bearer",
		ExpiresIn:      int(AccessTTL.Seconds()),
		UserID:         conta.ID,
		Username:       conta.Username,
		Name:           conta.Nome,
		Role:           conta.Role,
		AllowedScreens: telas,
	})
}
