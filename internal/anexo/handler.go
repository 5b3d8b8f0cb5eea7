package anexo

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/MarlonMartinss/advocacia/internal/contrato"
)

// Limite de upload por arquivo.
const TamanhoMaximo = 10 << 20

type Handler struct {
	DB         *gorm.DB
	Repository *Repository
	Storage    *Storage
	Log        *logrus.Logger
}

func NewHandler(db *gorm.DB, storage *Storage, log *logrus.Logger) *Handler {
	return &Handler{DB: db, Repository: NewRepository(db), Storage: storage, Log: log}
}

func (h *Handler) contratoExiste(id uint) bool {
	var total int64
	h.DB.Model(&contrato.Contrato{}).Where("id = ?", id).Count(&total)
	return total > 0
}

func idsDaRota(r *http.Request) (contratoID, anexoID uint, err error) {
	vars := mux.Vars(r)
	cid, err := strconv.ParseUint(vars["id"], 10, 64)
	if err != nil {
		return 0, 0, err
	}
	if raw, ok := vars["anexoId"]; ok {
		aid, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return 0, 0, err
		}
		anexoID = uint(aid)
	}
	return uint(cid), anexoID, nil
}

// GET /contratos/{id}/anexos
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	contratoID, _, err := idsDaRota(r)
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if !h.contratoExiste(contratoID) {
		http.Error(w, "Contrato não encontrado", http.StatusNotFound)
		return
	}
	anexos, err := h.Repository.ListarPorContrato(contratoID)
	if err != nil {
		http.Error(w, "Erro ao listar anexos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(anexos)
}

// POST /contratos/{id}/anexos (multipart, campo "file")
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	contratoID, _, err := idsDaRota(r)
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if !h.contratoExiste(contratoID) {
		http.Error(w, "Contrato não encontrado", http.StatusNotFound)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, TamanhoMaximo)
	if err := r.ParseMultipartForm(TamanhoMaximo); err != nil {
		http.Error(w, "Arquivo excede o tamanho máximo de 10MB", http.StatusRequestEntityTooLarge)
		return
	}
	arquivo, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "Arquivo ausente no campo 'file'", http.StatusBadRequest)
		return
	}
	defer arquivo.Close()

	nomeArquivo, err := h.Storage.Guardar(header.Filename, arquivo)
	if err != nil {
		h.Log.WithError(err).WithField("contratoId", contratoID).Error("falha ao armazenar anexo")
		http.Error(w, "Erro ao armazenar arquivo", http.StatusInternalServerError)
		return
	}

	a := &ContratoAnexo{
		ContratoID:   contratoID,
		NomeOriginal: header.Filename,
		NomeArquivo:  nomeArquivo,
		TipoMime:     header.Header.Get("Content-Type"),
		Tamanho:      header.Size,
	}
	if err := h.Repository.Criar(a); err != nil {
		_ = h.Storage.Remover(nomeArquivo)
		http.Error(w, "Erro ao salvar anexo", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(a)
}

// GET /contratos/{id}/anexos/{anexoId}/download
func (h *Handler) Download(w http.ResponseWriter, r *http.Request) {
	contratoID, anexoID, err := idsDaRota(r)
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	a, err := h.Repository.BuscarPorID(anexoID)
	if err != nil || a.ContratoID != contratoID {
		http.Error(w, "Anexo não encontrado", http.StatusNotFound)
		return
	}

	caminho, err := h.Storage.Caminho(a.NomeArquivo)
	if err != nil {
		http.Error(w, "Anexo não encontrado", http.StatusNotFound)
		return
	}

	tipo := a.TipoMime
	if tipo == "" {
		tipo = "application/octet-stream"
	}
	w.Header().Set("Content-Type", tipo)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", a.NomeOriginal))
	http.ServeFile(w, r, caminho)
}

// DELETE /contratos/{id}/anexos/{anexoId}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	contratoID, anexoID, err := idsDaRota(r)
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	a, err := h.Repository.BuscarPorID(anexoID)
	if err != nil || a.ContratoID != contratoID {
		http.Error(w, "Anexo não encontrado", http.StatusNotFound)
		return
	}
	if err := h.Repository.Deletar(a); err != nil {
		http.Error(w, "Erro ao excluir anexo", http.StatusInternalServerError)
		return
	}
	if err := h.Storage.Remover(a.NomeArquivo); err != nil {
		h.Log.WithError(err).WithField("anexoId", anexoID).Warn("arquivo do anexo não removido do disco")
	}
	w.WriteHeader(http.StatusNoContent)
}
