package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"stockroute/internal/api/auth"
	"stockroute/internal/api/report"
	"stockroute/internal/api/router"
	"stockroute/internal/api/routing"
	"stockroute/internal/api/warehouse"
	"stockroute/internal/domain"
	"stockroute/internal/pkg/cache"
	"stockroute/internal/pkg/metrics"
	"stockroute/internal/pkg/token"
	"stockroute/internal/service/authservice"
	"stockroute/internal/service/routingservice"
	"stockroute/internal/service/seed"
)

// stockroute serve: inicia o servidor HTTP.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Inicia o servidor HTTP da rede de armazéns",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
	},
}

func runServer() error {
	// 1. Configuração e Inicialização
	cfg, log := loadConfig()
	if err := cfg.ValidateForServer(); err != nil {
		return err
	}

	// 2. Métricas (Prometheus)
	var recorder routingservice.Recorder
	var metricsHandler http.Handler
	reg := metrics.NewRegistry()
	if cfg.MetricsEnabled {
		recorder = metrics.NewRecorder(reg)
		metricsHandler = metrics.Handler(reg)
	}

	// 3. Gerenciador da rede (núcleo)
	network, _ := newNetwork(log, recorder)
	if cfg.MetricsEnabled {
		reg.MustRegister(metrics.NewNetworkCollector(network.Snapshots))
	}
	if cfg.SeedDemo {
		if _, err := seed.DemoNetwork(network); err != nil {
			return err
		}
		log.Info("Rede de demonstração carregada.", map[string]interface{}{"warehouses": len(network.Warehouses())})
	}

	// 4. Cache (Redis) para o rate limiting
	cacheClient, err := cache.NewRedisClient(cfg.RedisAddr, cfg.CacheTimeout)
	if err != nil {
		// O limiter responde 500 enquanto o Redis estiver fora; o resto do serviço sobe.
		log.Warn("Redis indisponível no início.", map[string]interface{}{"addr": cfg.RedisAddr, "error": err.Error()})
	} else {
		log.Info("Conexão Redis estabelecida.", nil)
	}
	defer cacheClient.Close()

	// 5. INJEÇÃO DE DEPENDÊNCIAS
	tokenSvc := token.NewService(cfg.JWTSecretKey, cfg.TokenExpiry)
	authSvc := authservice.NewService(domain.Operator{
		Email:        cfg.OperatorEmail,
		PasswordHash: cfg.OperatorPasswordHash,
		Role:         domain.RoleOperator,
	}, tokenSvc, log)
	log.Debug("Serviços inicializados.", nil)

	r := router.NewRouter(router.Dependencies{
		Warehouse:       warehouse.NewHandler(network, log),
		Routing:         routing.NewHandler(network, log),
		Auth:            auth.NewHandler(authSvc, log),
		Report:          report.NewHandler(network, log),
		TokenSvc:        tokenSvc,
		Cache:           cacheClient,
		RateLimitMax:    cfg.RateLimitMaxRequests,
		RateLimitPeriod: cfg.RateLimitPeriod,
		Metrics:         metricsHandler,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r, // O roteador final
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// 6. Execução e Graceful Shutdown
	go func() {
		log.Info("Servidor StockRoute ouvindo na porta", map[string]interface{}{"port": cfg.Port})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Servidor falhou.", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Info("Sinal de encerramento recebido. Desligando servidor...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Desligamento do servidor forçado.", err)
	}

	log.Info("Servidor encerrado com sucesso.", nil)
	return nil
}
