package main

import (
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"github.com/MarlonMartinss/advocacia/internal/anexo"
	"github.com/MarlonMartinss/advocacia/internal/auditoria"
	"github.com/MarlonMartinss/advocacia/internal/auth"
	"github.com/MarlonMartinss/advocacia/internal/config"
	"github.com/MarlonMartinss/advocacia/internal/contrato"
	"github.com/MarlonMartinss/advocacia/internal/database"
	"github.com/MarlonMartinss/advocacia/internal/notificacao"
	"github.com/MarlonMartinss/advocacia/internal/parcela"
	"github.com/MarlonMartinss/advocacia/internal/permissao"
	"github.com/MarlonMartinss/advocacia/internal/seed"
	"github.com/MarlonMartinss/advocacia/internal/tarefa"
	"github.com/MarlonMartinss/advocacia/internal/usuario"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	if nivel, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(nivel)
	}

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET não definida")
	}
	auth.DefinirSegredo(cfg.JWTSecret)

	db, err := database.Conectar(cfg)
	if err != nil {
		log.WithError(err).Fatal("Erro ao conectar no banco")
	}

	if err := contrato.Migrate(db); err != nil {
		log.WithError(err).Fatal("Erro no AutoMigrate")
	}
	if err := auditoria.Migrate(db); err != nil {
		log.WithError(err).Fatal("Erro no AutoMigrate")
	}
	if err := anexo.Migrate(db); err != nil {
		log.WithError(err).Fatal("Erro no AutoMigrate")
	}
	if err := usuario.Migrate(db); err != nil {
		log.WithError(err).Fatal("Erro no AutoMigrate")
	}
	if err := permissao.Migrate(db); err != nil {
		log.WithError(err).Fatal("Erro no AutoMigrate")
	}
	if err := tarefa.Migrate(db); err != nil {
		log.WithError(err).Fatal("Erro no AutoMigrate")
	}
	if err := auth.Migrate(db); err != nil {
		log.WithError(err).Fatal("Erro no AutoMigrate")
	}

	if err := seed.Executar(db, log); err != nil {
		log.WithError(err).Fatal("Erro ao semear dados iniciais")
	}

	storage, err := anexo.NewStorage(cfg.UploadDir)
	if err != nil {
		log.WithError(err).Fatal("Erro ao preparar diretório de uploads")
	}

	// Serviços e handlers
	auditService := auditoria.NewService(auditoria.NewRepository(db), log)
	permissaoHandler := permissao.NewHandler(db)
	webhook := notificacao.NewWebhook(cfg.WebhookURL, log)

	var notificador contrato.FinalizacaoNotifier
	if webhook != nil {
		notificador = webhook
	}

	contratoHandler := contrato.NewHandler(db, auditService, log, notificador)
	auditoriaHandler := auditoria.NewHandler(auditService)
	parcelaHandler := parcela.NewHandler()
	anexoHandler := anexo.NewHandler(db, storage, log)
	usuarioHandler := usuario.NewHandler(db, log)
	tarefaHandler := tarefa.NewHandler(db)
	authHandler := auth.NewHandler(db, usuario.NewContaProvider(db), permissaoHandler.Repository.CodigosPorUsuario, log)

	r := mux.NewRouter()

	// Rotas públicas
	r.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/auth/refresh", auth.RefreshHTTPHandler(db)).Methods("POST")
	r.HandleFunc("/auth/logout", auth.LogoutHTTPHandler(db)).Methods("POST")

	// Rotas autenticadas
	api := r.NewRoute().Subrouter()
	api.Use(auth.MiddlewareAutenticacao)

	// Contratos
	api.HandleFunc("/contratos", contratoHandler.Criar).Methods("POST")
	api.HandleFunc("/contratos", contratoHandler.Listar).Methods("GET")
	api.HandleFunc("/contratos/{id}", contratoHandler.Buscar).Methods("GET")
	api.HandleFunc("/contratos/{id}", contratoHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/contratos/{id}", contratoHandler.Deletar).Methods("DELETE")
	api.HandleFunc("/contratos/{id}/vendedores", contratoHandler.AtualizarVendedores).Methods("PUT")
	api.HandleFunc("/contratos/{id}/compradores", contratoHandler.AtualizarCompradores).Methods("PUT")
	api.HandleFunc("/contratos/{id}/finalizar", contratoHandler.Finalizar).Methods("POST")
	api.HandleFunc("/contratos/{id}/historico", auditoriaHandler.Historico).Methods("GET")

	// Parcelas (simulação sem persistência)
	api.HandleFunc("/parcelas/simular", parcelaHandler.Simular).Methods("POST")

	// Anexos
	api.HandleFunc("/contratos/{id}/anexos", anexoHandler.Listar).Methods("GET")
	api.HandleFunc("/contratos/{id}/anexos", anexoHandler.Upload).Methods("POST")
	api.HandleFunc("/contratos/{id}/anexos/{anexoId}/download", anexoHandler.Download).Methods("GET")
	api.HandleFunc("/contratos/{id}/anexos/{anexoId}", anexoHandler.Deletar).Methods("DELETE")

	// Tarefas
	api.HandleFunc("/tarefas", tarefaHandler.Listar).Methods("GET")
	api.HandleFunc("/tarefas", tarefaHandler.Criar).Methods("POST")
	api.HandleFunc("/tarefas/{id}", tarefaHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/tarefas/{id}/concluir", tarefaHandler.AlternarConclusao).Methods("PATCH")
	api.HandleFunc("/tarefas/{id}", tarefaHandler.Deletar).Methods("DELETE")

	// Usuários e permissões (somente admin)
	admin := r.NewRoute().Subrouter()
	admin.Use(auth.MiddlewareAutenticacao)
	admin.Use(auth.RequireAdmin)
	admin.HandleFunc("/usuarios", usuarioHandler.Listar).Methods("GET")
	admin.HandleFunc("/usuarios", usuarioHandler.Criar).Methods("POST")
	admin.HandleFunc("/usuarios/{id}", usuarioHandler.Buscar).Methods("GET")
	admin.HandleFunc("/usuarios/{id}", usuarioHandler.Atualizar).Methods("PUT")
	admin.HandleFunc("/usuarios/{id}", usuarioHandler.Deletar).Methods("DELETE")
	admin.HandleFunc("/telas", permissaoHandler.ListarTelas).Methods("GET")
	admin.HandleFunc("/usuarios/{id}/telas", permissaoHandler.TelasDoUsuario).Methods("GET")
	admin.HandleFunc("/usuarios/{id}/telas", permissaoHandler.AtualizarTelasDoUsuario).Methods("PUT")

	c := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      c.Handler(r),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.WithField("porta", cfg.Port).Info("Servidor iniciado")
	log.Fatal(srv.ListenAndServe())
}
