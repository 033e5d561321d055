package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/total-search-api/infrastructure/integrator/keywordtool"
	"github.com/vfg2006/total-search-api/infrastructure/repository"
	"github.com/vfg2006/total-search-api/internal/api/handler"
	"github.com/vfg2006/total-search-api/internal/api/handler/router"
	"github.com/vfg2006/total-search-api/internal/config"
	"github.com/vfg2006/total-search-api/internal/scheduler"
	"github.com/vfg2006/total-search-api/internal/usecases/analyzing"
	"github.com/vfg2006/total-search-api/internal/usecases/auditing"
	"github.com/vfg2006/total-search-api/internal/usecases/authenticating"
	"github.com/vfg2006/total-search-api/internal/usecases/searching"
	"github.com/vfg2006/total-search-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	volumeService keywordtool.Integrator,
	analyzer analyzing.Analyzer,
	searcher searching.Searcher,
	auditor auditing.Auditor,
	authenticator authenticating.Authenticator,
	snapshotRepo repository.KeywordSnapshotRepository,
	keywordSyncService *scheduler.KeywordSnapshotSyncService,
) (*Server, error) {
	// Inicializar o struct com os serviços de cron jobs
	cronServices := handler.CronJobServices{
		KeywordSnapshotSyncService: keywordSyncService,
	}

	configs := []router.ConfigRouter{
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.User(authenticator)...),
		router.WithRoutes(handler.Keywords(volumeService, searcher)...),
		router.WithRoutes(handler.Opportunities(volumeService, analyzer, searcher)...),
		router.WithRoutes(handler.BrandAudit(auditor)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	}

	// Rotas de acompanhamento dependem do banco de dados
	if snapshotRepo != nil {
		configs = append(configs, router.WithRoutes(handler.TrackedKeywords(snapshotRepo)...))
	}

	rt := router.New(configs...)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(authenticator, config.App.DemoMode),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	// Aguardar pelo sinal ou pelo cancelamento do contexto
	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	// Define timeout para desligamento
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Log de início do desligamento
	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	logrus.Info("Executando operações de limpeza antes do desligamento")

	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
