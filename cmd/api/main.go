package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/social-insights-api/infrastructure/credentialstore"
	"github.com/vfg2006/social-insights-api/infrastructure/database"
	"github.com/vfg2006/social-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/social-insights-api/infrastructure/database/sqlite"
	"github.com/vfg2006/social-insights-api/infrastructure/integrator"
	"github.com/vfg2006/social-insights-api/infrastructure/repository"
	"github.com/vfg2006/social-insights-api/internal/api"
	"github.com/vfg2006/social-insights-api/internal/api/handler"
	"github.com/vfg2006/social-insights-api/internal/config"
	"github.com/vfg2006/social-insights-api/internal/scheduler"
	"github.com/vfg2006/social-insights-api/internal/usecases/authenticating"
	"github.com/vfg2006/social-insights-api/internal/usecases/connecting"
	"github.com/vfg2006/social-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/social-insights-api/internal/usecases/publishing"
	"github.com/vfg2006/social-insights-api/internal/usecases/tokening"
	"github.com/vfg2006/social-insights-api/pkg/log"
	"github.com/vfg2006/social-insights-api/pkg/telemetry"
)

const metricsNamespace = "social_insights"

func main() {
	chdirToSource()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conn := dbconn(ctx, cfg.Database)
	defer conn.Close()

	credentials := credentialBackend(ctx, cfg, conn)

	metrics := telemetry.NewMetrics(metricsNamespace)
	tokens := tokening.NewProvider(credentials, tokening.SystemClock(), metrics)
	factory := integrator.NewFactory(cfg, nil, metrics)

	userRepo := repository.NewUserRepository(conn)
	snapshotRepo := repository.NewMetricSnapshotRepository(conn)

	authenticator := authenticating.NewService(userRepo, cfg)
	aggregator := insighting.NewAggregator(factory, cfg.Integrations.RequestTimeout, metrics)
	insightService := insighting.NewService(tokens, factory, aggregator, snapshotRepo, tokening.SystemClock())
	publishService := publishing.NewService(tokens, factory)
	connectService := connecting.NewService(tokens, factory)

	tokenCleanupService := scheduler.NewTokenCleanupService(tokens, cfg)
	metricsSyncService := scheduler.NewMetricsSnapshotSyncService(tokens, insightService, cfg)

	if err := tokenCleanupService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de limpeza de credenciais")
	} else {
		logrus.Info("Agendador de limpeza de credenciais iniciado com sucesso")
	}

	if err := metricsSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de snapshots de métricas")
	} else {
		logrus.Info("Agendador de snapshots de métricas iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		Authenticator: authenticator,
		Connector:     connectService,
		Insighter:     insightService,
		Publisher:     publishService,
		Factory:       factory,
		CronJobs: handler.CronJobServices{
			TokenCleanup: tokenCleanupService,
			MetricsSync:  metricsSyncService,
		},
		Metrics:  metrics,
		Database: conn,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// chdirToSource permite achar o .env ao rodar com go run de qualquer diretório
func chdirToSource() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)
}

// dbconn abre o banco configurado e garante o schema
func dbconn(ctx context.Context, dbConfig config.Database) *database.Connection {
	var (
		conn *database.Connection
		err  error
	)

	switch dbConfig.Driver {
	case database.DriverSQLite:
		conn, err = sqlite.NewConnection(ctx, dbConfig)
	default:
		conn, err = postgres.NewConnection(ctx, dbConfig)
		if err == nil {
			err = database.Migrate(ctx, conn)
		}
	}
	if err != nil {
		logrus.WithError(err).WithField("driver", dbConfig.Driver).Fatal("Erro ao conectar ao banco de dados")
	}

	logrus.WithField("driver", dbConfig.Driver).Info("Conexão com o banco de dados estabelecida com sucesso")
	return conn
}

// credentialBackend monta o Credential Store: cache local na frente do banco principal
func credentialBackend(ctx context.Context, cfg *config.Config, conn *database.Connection) credentialstore.Backend {
	remote := credentialstore.NewSQLBackend(conn)

	if cfg.Credentials.CachePath == "" {
		return credentialstore.NewLayeredBackend(credentialstore.NewMemoryBackend(), remote)
	}

	cacheConn, err := sqlite.Open(ctx, cfg.Credentials.CachePath)
	if err != nil {
		logrus.WithError(err).Warn("Cache local de credenciais indisponível, usando memória")
		return credentialstore.NewLayeredBackend(credentialstore.NewMemoryBackend(), remote)
	}

	go func() {
		<-ctx.Done()
		cacheConn.Close()
	}()

	return credentialstore.NewLayeredBackend(credentialstore.NewSQLBackend(cacheConn), remote)
}
