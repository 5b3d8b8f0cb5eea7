package contrato

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/MarlonMartinss/advocacia/internal/auditoria"
	"github.com/MarlonMartinss/advocacia/internal/auth"
	"github.com/MarlonMartinss/advocacia/internal/parcela"
)

// FinalizacaoNotifier recebe o aviso de contrato finalizado. A entrega é de
// melhor esforço; falha não desfaz a finalização.
type FinalizacaoNotifier interface {
	ContratoFinalizado(contratoID uint)
}

type Handler struct {
	DB          *gorm.DB
	Repository  Repository
	Audit       *auditoria.Service
	Log         *logrus.Logger
	Notificador FinalizacaoNotifier
}

func NewHandler(db *gorm.DB, audit *auditoria.Service, log *logrus.Logger, notificador FinalizacaoNotifier) *Handler {
	return &Handler{
		DB:          db,
		Repository:  NewRepository(),
		Audit:       audit,
		Log:         log,
		Notificador: notificador,
	}
}

func idDaRota(r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func responderJSON(w http.ResponseWriter, status int, corpo any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(corpo)
}

// GET /contratos
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	contratos, err := h.Repository.ListarTodos(h.DB)
	if err != nil {
		http.Error(w, "Erro ao listar contratos", http.StatusInternalServerError)
		return
	}
	respostas := make([]ContratoResponse, 0, len(contratos))
	for i := range contratos {
		respostas = append(respostas, ParaResponse(&contratos[i]))
	}
	responderJSON(w, http.StatusOK, respostas)
}

// GET /contratos/{id}
//
// A hidratação reavalia o plano de parcelas com o aviso suprimido: um plano
// salvo legítimo nunca é apontado como desatualizado só por ser carregado.
func (h *Handler) Buscar(w http.ResponseWriter, r *http.Request) {
	id, ok := idDaRota(r)
	if !ok {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	c, err := h.Repository.BuscarPorID(h.DB, id)
	if err != nil {
		http.Error(w, "Contrato não encontrado", http.StatusNotFound)
		return
	}
	AvaliarPlano(c, true)
	responderJSON(w, http.StatusOK, ParaResponse(c))
}

// POST /contratos
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req ContratoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	c := &Contrato{Status: StatusRascunho, PaginaAtual: 1}
	if err := req.AplicarEm(c); err != nil {
		http.Error(w, mensagemValidacao(err), http.StatusBadRequest)
		return
	}
	AvaliarPlano(c, true)

	if err := h.Repository.Criar(h.DB, c); err != nil {
		h.Log.WithError(err).Error("falha ao criar contrato")
		http.Error(w, "Erro ao salvar contrato", http.StatusInternalServerError)
		return
	}
	responderJSON(w, http.StatusCreated, ParaResponse(c))
}

// PUT /contratos/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, ok := idDaRota(r)
	if !ok {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var req ContratoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	tx := h.DB.Begin()
	c, err := h.Repository.BuscarPorID(tx, id)
	if err != nil {
		tx.Rollback()
		http.Error(w, "Contrato não encontrado", http.StatusNotFound)
		return
	}

	before := ParaResponse(c)

	// Listas enviadas substituem integralmente as salvas
	if req.Vendedores != nil {
		if err := h.Repository.RemoverVendedores(tx, id); err != nil {
			tx.Rollback()
			http.Error(w, "Erro ao atualizar contrato", http.StatusInternalServerError)
			return
		}
	}
	if req.Compradores != nil {
		if err := h.Repository.RemoverCompradores(tx, id); err != nil {
			tx.Rollback()
			http.Error(w, "Erro ao atualizar contrato", http.StatusInternalServerError)
			return
		}
	}

	if err := req.AplicarEm(c); err != nil {
		tx.Rollback()
		http.Error(w, mensagemValidacao(err), http.StatusBadRequest)
		return
	}
	res := AvaliarPlano(c, false)

	if err := h.Repository.Salvar(tx, c); err != nil {
		tx.Rollback()
		h.Log.WithError(err).WithField("contratoId", id).Error("falha ao atualizar contrato")
		http.Error(w, "Erro ao atualizar contrato", http.StatusInternalServerError)
		return
	}
	if err := tx.Commit().Error; err != nil {
		http.Error(w, "Erro ao atualizar contrato", http.StatusInternalServerError)
		return
	}

	after := ParaResponse(c)
	h.Audit.RegistrarAlteracoes(id, auth.UsuarioDoContexto(r.Context()), before, after,
		contingenciaValorTotal(before, after))

	after.ParcelasRecalculadas = res.Recalculado
	responderJSON(w, http.StatusOK, after)
}

// PUT /contratos/{id}/vendedores
func (h *Handler) AtualizarVendedores(w http.ResponseWriter, r *http.Request) {
	var reqs []VendedorRequest
	if err := json.NewDecoder(r.Body).Decode(&reqs); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	h.substituirPartes(w, r, func(c *Contrato) {
		c.Vendedores = montarVendedores(c.ID, reqs)
	}, func(tx *gorm.DB, id uint) error {
		return h.Repository.RemoverVendedores(tx, id)
	})
}

// PUT /contratos/{id}/compradores
func (h *Handler) AtualizarCompradores(w http.ResponseWriter, r *http.Request) {
	var reqs []CompradorRequest
	if err := json.NewDecoder(r.Body).Decode(&reqs); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	h.substituirPartes(w, r, func(c *Contrato) {
		c.Compradores = montarCompradores(c.ID, reqs)
	}, func(tx *gorm.DB, id uint) error {
		return h.Repository.RemoverCompradores(tx, id)
	})
}

func (h *Handler) substituirPartes(w http.ResponseWriter, r *http.Request, aplicar func(*Contrato), limpar func(*gorm.DB, uint) error) {
	id, ok := idDaRota(r)
	if !ok {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	tx := h.DB.Begin()
	c, err := h.Repository.BuscarPorID(tx, id)
	if err != nil {
		tx.Rollback()
		http.Error(w, "Contrato não encontrado", http.StatusNotFound)
		return
	}

	before := ParaResponse(c)

	if err := limpar(tx, id); err != nil {
		tx.Rollback()
		http.Error(w, "Erro ao atualizar contrato", http.StatusInternalServerError)
		return
	}
	aplicar(c)

	if err := h.Repository.Salvar(tx, c); err != nil {
		tx.Rollback()
		http.Error(w, "Erro ao atualizar contrato", http.StatusInternalServerError)
		return
	}
	if err := tx.Commit().Error; err != nil {
		http.Error(w, "Erro ao atualizar contrato", http.StatusInternalServerError)
		return
	}

	after := ParaResponse(c)
	h.Audit.RegistrarAlteracoes(id, auth.UsuarioDoContexto(r.Context()), before, after,
		contingenciaValorTotal(before, after))
	responderJSON(w, http.StatusOK, after)
}

// POST /contratos/{id}/finalizar
func (h *Handler) Finalizar(w http.ResponseWriter, r *http.Request) {
	id, ok := idDaRota(r)
	if !ok {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	c, err := h.Repository.BuscarPorID(h.DB, id)
	if err != nil {
		http.Error(w, "Contrato não encontrado", http.StatusNotFound)
		return
	}
	if c.Status == StatusFinal {
		http.Error(w, "Contrato já está finalizado", http.StatusConflict)
		return
	}

	statusAnterior := c.Status
	c.Status = StatusFinal
	if err := h.Repository.Salvar(h.DB, c); err != nil {
		h.Log.WithError(err).WithField("contratoId", id).Error("falha ao finalizar contrato")
		http.Error(w, "Erro ao finalizar contrato", http.StatusInternalServerError)
		return
	}

	h.Audit.RegistrarSimples(id, auth.UsuarioDoContexto(r.Context()), []auditoria.CampoAlterado{
		{Path: "status", OldValue: statusAnterior, NewValue: StatusFinal},
	})
	if h.Notificador != nil {
		h.Notificador.ContratoFinalizado(id)
	}
	responderJSON(w, http.StatusOK, ParaResponse(c))
}

// DELETE /contratos/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, ok := idDaRota(r)
	if !ok {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	c, err := h.Repository.BuscarPorID(h.DB, id)
	if err != nil {
		http.Error(w, "Contrato não encontrado", http.StatusNotFound)
		return
	}
	if c.Status == StatusFinal {
		http.Error(w, "Contrato finalizado não pode ser excluído", http.StatusConflict)
		return
	}
	if err := h.Repository.Deletar(h.DB, c); err != nil {
		http.Error(w, "Erro ao excluir contrato", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func mensagemValidacao(err error) string {
	switch {
	case errors.Is(err, parcela.ErrPermutaNegativa),
		errors.Is(err, parcela.ErrPermutaExcedeTotal):
		return err.Error()
	default:
		return "Dados do contrato inválidos"
	}
}

func contingenciaValorTotal(before, after ContratoResponse) auditoria.CampoAlterado {
	return auditoria.CampoAlterado{
		Path:     "negocioValorTotal",
		OldValue: textoValor(before.NegocioValorTotal),
		NewValue: textoValor(after.NegocioValorTotal),
	}
}

func textoValor(v *float64) string {
	if v == nil {
		return "null"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
