package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/total-search-api/infrastructure/database/postgres"
	"github.com/vfg2006/total-search-api/infrastructure/demodata"
	"github.com/vfg2006/total-search-api/infrastructure/integrator/adlibrary"
	"github.com/vfg2006/total-search-api/infrastructure/integrator/adlibrary/adlibraryclient"
	"github.com/vfg2006/total-search-api/infrastructure/integrator/keywordtool"
	"github.com/vfg2006/total-search-api/infrastructure/integrator/keywordtool/keywordtoolclient"
	"github.com/vfg2006/total-search-api/infrastructure/repository"
	"github.com/vfg2006/total-search-api/internal/api"
	"github.com/vfg2006/total-search-api/internal/config"
	"github.com/vfg2006/total-search-api/internal/scheduler"
	"github.com/vfg2006/total-search-api/internal/usecases/analyzing"
	"github.com/vfg2006/total-search-api/internal/usecases/auditing"
	"github.com/vfg2006/total-search-api/internal/usecases/authenticating"
	"github.com/vfg2006/total-search-api/internal/usecases/searching"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Dados de demonstração embutidos, usados como fallback do vendor
	demoStore := demodata.NewStore()

	keywordToolClient := keywordtoolclient.NewClient(cfg)
	volumeService := keywordtool.New(cfg, keywordToolClient, demoStore)

	adLibraryClient := adlibraryclient.NewClient(cfg)
	adLibraryIntegrator := adlibrary.New(cfg, adLibraryClient, demoStore)

	analyzer := analyzing.NewService()
	auditor := auditing.NewService(volumeService, adLibraryIntegrator)

	// O índice de lookup usa os snapshots do banco quando disponível,
	// caso contrário os dados de demonstração
	var keywordSource searching.KeywordSource = demoStore

	var snapshotRepo repository.KeywordSnapshotRepository
	var userRepo repository.UserRepository
	var keywordSyncService *scheduler.KeywordSnapshotSyncService

	if cfg.Database.Enabled {
		pgConn := pgconn(ctx, cfg.Database)
		defer pgConn.Close()

		userRepo = repository.NewUserRepository(pgConn)
		snapshotRepo = repository.NewKeywordSnapshotRepository(pgConn)
		keywordSource = snapshotRepo

		keywordSyncService = scheduler.NewKeywordSnapshotSyncService(snapshotRepo, volumeService, cfg)
		if err := keywordSyncService.Start(ctx); err != nil {
			logrus.WithError(err).Error("Erro ao iniciar o agendador de snapshots de keywords")
		} else {
			logrus.Info("Agendador de snapshots de keywords iniciado com sucesso")
		}
	} else {
		logrus.Info("Banco de dados desabilitado, operando com dados de demonstração")
	}

	searcher := searching.NewService(keywordSource)
	authenticator := authenticating.NewService(userRepo, cfg)

	server, err := api.New(
		cfg,
		volumeService,
		analyzer,
		searcher,
		auditor,
		authenticator,
		snapshotRepo,
		keywordSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
