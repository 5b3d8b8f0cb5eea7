package auditoria

import (
	"encoding/json"
	"time"

	"github.com/sirupsen/logrus"
)

// Service orquestra o registro e a leitura do histórico de alterações.
// Falha ao auditar nunca é propagada: o salvamento do contrato vale mais que
// a trilha, então erros aqui viram log e, quando possível, um registro
// reduzido de contingência.
type Service struct {
	Repo *Repository
	Log  *logrus.Logger
}

func NewService(repo *Repository, log *logrus.Logger) *Service {
	return &Service{Repo: repo, Log: log}
}

// AlteracaoResponse é um evento do histórico pronto para o cliente.
type AlteracaoResponse struct {
	ID        uint                `json:"id"`
	Username  string              `json:"username"`
	ChangedAt time.Time           `json:"changedAt"`
	Changes   []AlteracaoExibicao `json:"changes"`
}

// RegistrarAlteracoes compara as duas versões do contrato e grava as mudanças
// detectadas. contingencia descreve a mudança mínima a registrar caso o diff
// ou a serialização falhem (tipicamente o valor total do negócio).
func (s *Service) RegistrarAlteracoes(contratoID uint, username string, antes, depois any, contingencia CampoAlterado) {
	mudancas, err := Diff(antes, depois)
	if err != nil {
		s.Log.WithError(err).WithField("contratoId", contratoID).
			Warn("diff de auditoria falhou, registrando mudança de contingência")
		s.RegistrarSimples(contratoID, username, []CampoAlterado{contingencia})
		return
	}

	mudancas = Sanitizar(mudancas)
	if len(mudancas) == 0 {
		return
	}

	if err := s.gravar(contratoID, username, mudancas); err != nil {
		s.Log.WithError(err).WithField("contratoId", contratoID).
			Warn("gravação de auditoria falhou, registrando mudança de contingência")
		s.RegistrarSimples(contratoID, username, []CampoAlterado{contingencia})
	}
}

// RegistrarSimples grava um conjunto de mudanças já montado pelo chamador
// (ex.: transição de status na finalização). Erro vira log, nunca retorno.
func (s *Service) RegistrarSimples(contratoID uint, username string, mudancas []CampoAlterado) {
	mudancas = Sanitizar(mudancas)
	if len(mudancas) == 0 {
		return
	}
	if err := s.gravar(contratoID, username, mudancas); err != nil {
		s.Log.WithError(err).WithField("contratoId", contratoID).
			Error("gravação de auditoria descartada")
	}
}

func (s *Service) gravar(contratoID uint, username string, mudancas []CampoAlterado) error {
	raw, err := json.Marshal(mudancas)
	if err != nil {
		return err
	}
	return s.Repo.Criar(&ContratoAlteracao{
		ContratoID: contratoID,
		Username:   username,
		ChangedAt:  time.Now(),
		Changes:    raw,
	})
}

// Historico devolve os eventos do contrato, mais recente primeiro, com as
// mudanças filtradas, rotuladas e formatadas para exibição.
func (s *Service) Historico(contratoID uint) ([]AlteracaoResponse, error) {
	alteracoes, err := s.Repo.ListarPorContrato(contratoID)
	if err != nil {
		return nil, err
	}

	respostas := make([]AlteracaoResponse, 0, len(alteracoes))
	for _, a := range alteracoes {
		var mudancas []CampoAlterado
		if err := json.Unmarshal(a.Changes, &mudancas); err != nil {
			s.Log.WithError(err).WithField("alteracaoId", a.ID).
				Warn("registro de auditoria ilegível ignorado")
			continue
		}
		exibicao := Enriquecer(mudancas)
		if len(exibicao) == 0 {
			continue
		}
		respostas = append(respostas, AlteracaoResponse{
			ID:        a.ID,
			Username:  a.Username,
			ChangedAt: a.ChangedAt,
			Changes:   exibicao,
		})
	}
	return respostas, nil
}
