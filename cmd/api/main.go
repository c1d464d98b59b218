package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/rodrigues-yn/Gestao-de-eventos/internal/api"
	"github.com/rodrigues-yn/Gestao-de-eventos/internal/api/handler"
	apimiddleware "github.com/rodrigues-yn/Gestao-de-eventos/internal/api/middleware"
	"github.com/rodrigues-yn/Gestao-de-eventos/internal/application"
	"github.com/rodrigues-yn/Gestao-de-eventos/internal/config"
	"github.com/rodrigues-yn/Gestao-de-eventos/internal/infrastructure/postgres"
	redisinfra "github.com/rodrigues-yn/Gestao-de-eventos/internal/infrastructure/redis"
	"github.com/rodrigues-yn/Gestao-de-eventos/internal/pkg/logger"
	"github.com/rodrigues-yn/Gestao-de-eventos/internal/pkg/metrics"
	"github.com/rodrigues-yn/Gestao-de-eventos/internal/worker"
)

func main() {
	cfg := config.Load()

	log := logger.NewLogger(cfg.Env)
	logger.Set(log)
	defer logger.Sync()

	m := metrics.Init()

	// Banco de dados
	db, err := postgres.NewConnection(&cfg.Database)
	if err != nil {
		log.Fatal("falha ao conectar no banco", zap.Error(err))
	}
	defer db.Close()

	if err := postgres.RunMigrations(db.DB, cfg.Database.MigrationsPath); err != nil {
		log.Fatal("falha ao executar migrações", zap.Error(err))
	}

	// Redis é opcional: sem ele o cache de vagas fica desativado.
	var vagasCache application.VagasCache
	redisClient := redisinfra.NewClient(&cfg.Redis)
	pingCtx, cancelPing := context.WithTimeout(context.Background(), 3*time.Second)
	if err := redisinfra.Ping(pingCtx, redisClient); err != nil {
		log.Warn("redis indisponível, cache de vagas desativado", zap.Error(err))
		redisClient = nil
	} else {
		vagasCache = redisinfra.NewVagasCache(redisClient)
	}
	cancelPing()

	// Repositórios e serviços
	eventoRepo := postgres.NewEventoRepository(db)
	participanteRepo := postgres.NewParticipanteRepository(db)
	inscricaoRepo := postgres.NewInscricaoRepository(db)
	txManager := postgres.NewTxManager(db)

	eventoService := application.NewEventoService(eventoRepo, inscricaoRepo, txManager, vagasCache)
	participanteService := application.NewParticipanteService(participanteRepo, inscricaoRepo, txManager, vagasCache)
	inscricaoService := application.NewInscricaoService(eventoRepo, participanteRepo, inscricaoRepo, txManager, vagasCache, m)

	eventoHandler := handler.NewEventoHandler(eventoService)
	participanteHandler := handler.NewParticipanteHandler(participanteService)
	inscricaoHandler := handler.NewInscricaoHandler(inscricaoService)
	healthHandler := handler.NewHealthHandler()

	// Echo
	e := echo.New()
	e.HideBanner = true
	e.Validator = api.NewValidator()
	e.HTTPErrorHandler = api.CustomHTTPErrorHandler

	apimiddleware.SetupMiddleware(e)
	e.Use(apimiddleware.PrometheusMiddleware(m))

	registerRoutes(e, eventoHandler, participanteHandler, inscricaoHandler, healthHandler)

	// Coletor periódico dos gauges de eventos e inscrições
	statsCollector := worker.NewStatsCollector(eventoRepo, inscricaoRepo, m, cfg.Stats.Interval)
	workerCtx, cancelWorker := context.WithCancel(context.Background())
	go statsCollector.Start(workerCtx)

	// Servidor
	go func() {
		addr := ":" + cfg.Server.Port
		log.Info("servidor iniciado", zap.String("addr", addr), zap.String("env", cfg.Env))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatal("falha ao iniciar servidor", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("encerrando servidor...")

	cancelWorker()
	statsCollector.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatal("falha ao encerrar servidor", zap.Error(err))
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Warn("falha ao fechar conexão com redis", zap.Error(err))
		}
	}

	log.Info("servidor encerrado")
}

func registerRoutes(
	e *echo.Echo,
	eventoHandler *handler.EventoHandler,
	participanteHandler *handler.ParticipanteHandler,
	inscricaoHandler *handler.InscricaoHandler,
	healthHandler *handler.HealthHandler,
) {
	e.GET("/health", healthHandler.Check)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()), apimiddleware.MetricsBasicAuth())

	apiGroup := e.Group("/api")

	apiGroup.GET("", boasVindas)

	eventos := apiGroup.Group("/eventos")
	eventos.POST("", eventoHandler.Criar)
	eventos.GET("", eventoHandler.Listar)
	eventos.GET("/:id", eventoHandler.BuscarPorID)
	eventos.PUT("/:id", eventoHandler.Atualizar)
	eventos.DELETE("/:id", eventoHandler.Remover)
	eventos.GET("/:id/participantes", eventoHandler.ListarParticipantes)
	eventos.GET("/:id/vagas", eventoHandler.VerificarVagas)

	participantes := apiGroup.Group("/participantes")
	participantes.POST("", participanteHandler.Criar)
	participantes.GET("", participanteHandler.Listar)
	participantes.GET("/:id", participanteHandler.BuscarPorID)
	participantes.PUT("/:id", participanteHandler.Atualizar)
	participantes.DELETE("/:id", participanteHandler.Remover)
	participantes.GET("/:id/eventos", participanteHandler.ListarEventos)

	inscricoes := apiGroup.Group("/inscricoes")
	inscricoes.POST("", inscricaoHandler.Inscrever)
	inscricoes.GET("", inscricaoHandler.Listar)
	inscricoes.DELETE("/:id", inscricaoHandler.Cancelar)
	inscricoes.DELETE("/evento/:eventoId/participante/:participanteId", inscricaoHandler.CancelarPorEventoParticipante)
}

// boasVindas documenta os endpoints disponíveis na raiz da API.
func boasVindas(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"mensagem": "API de Gestão de Eventos",
		"versao":   "1.0.0",
		"endpoints": map[string]string{
			"eventos":       "/api/eventos",
			"participantes": "/api/participantes",
			"inscricoes":    "/api/inscricoes",
		},
	})
}
