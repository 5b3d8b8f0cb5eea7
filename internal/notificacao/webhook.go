// Package notificacao envia avisos de eventos do sistema para um webhook
// externo (integração do escritório). Entrega de melhor esforço.
package notificacao

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

type Webhook struct {
	URL    string
	Client *http.Client
	Log    *logrus.Logger
}

// NewWebhook devolve nil quando não há URL configurada; chamadores tratam
// nil como notificação desligada.
func NewWebhook(url string, log *logrus.Logger) *Webhook {
	if url == "" {
		return nil
	}
	return &Webhook{
		URL:    url,
		Client: &http.Client{Timeout: 10 * time.Second},
		Log:    log,
	}
}

// ContratoFinalizado avisa que um contrato saiu de rascunho.
func (wh *Webhook) ContratoFinalizado(contratoID uint) {
	wh.enviar(map[string]any{
		"evento":     "contrato_finalizado",
		"contratoId": contratoID,
	})
}

func (wh *Webhook) enviar(payload map[string]any) {
	body, err := json.Marshal(payload)
	if err != nil {
		return
	}
	resp, err := wh.Client.Post(wh.URL, "application/json", bytes.NewBuffer(body))
	if err != nil {
		wh.Log.WithError(err).Warn("falha ao enviar webhook")
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		wh.Log.WithField("status", resp.StatusCode).Warn("webhook respondeu com erro")
	}
}
