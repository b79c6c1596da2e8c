package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	// Nossos pacotes de infraestrutura e utilitários
	"painelestoque/config"
	"painelestoque/internal/pkg/cache"
	"painelestoque/internal/pkg/database"
	"painelestoque/internal/pkg/logger"
	"painelestoque/internal/pkg/token"

	// Camadas da aplicação para Injeção de Dependências
	"painelestoque/internal/api/auth"
	"painelestoque/internal/api/catalog"
	"painelestoque/internal/api/request"
	"painelestoque/internal/api/roster"
	"painelestoque/internal/api/router"
	apisync "painelestoque/internal/api/sync"
	"painelestoque/internal/api/whatsapp"
	"painelestoque/internal/csv"
	"painelestoque/internal/repository/staterepo"
	"painelestoque/internal/service/authservice"
	"painelestoque/internal/service/bootstrapservice"
	"painelestoque/internal/service/catalogservice"
	"painelestoque/internal/service/requestservice"
	"painelestoque/internal/service/stateservice"
	"painelestoque/internal/service/syncservice"

	_ "painelestoque/docs" // documentação Swagger gerada
)

// @title Painel de Estoque API
// @version 1.0
// @description API do painel interno de consulta de estoque e pedidos (Marsil & Boracéia).
// @BasePath /v1
func main() {
	// 1. Configuração e Inicialização
	log.Println("⚡ Inicializando o Painel de Estoque...")
	// 0. CARREGAR VARIÁVEIS DE AMBIENTE (.env)
	// O godotenv.Load() procura por um arquivo chamado .env na raiz.
	if err := godotenv.Load(); err != nil {
		// Se o arquivo .env não for encontrado (ou houver erro de leitura),
		// avisamos, mas continuamos, pois as variáveis essenciais podem
		// estar no ambiente do sistema (ex: Docker).
		log.Println("⚠️ Aviso: Arquivo .env não encontrado ou erro de leitura. Carregando configs apenas do ambiente do sistema.")
	}

	cfg := config.LoadConfig()
	appLog := logger.NewLogger(cfg.LogLevel)
	appLog.Info("Configurações carregadas.", nil)

	// 2. Conexão com Recursos de Infraestrutura

	// A. Banco de Dados (PostgreSQL)
	db, err := database.NewPostgresDB(cfg.DatabaseURL)
	if err != nil {
		appLog.Fatal("Falha ao conectar ao banco de dados.", err)
	}
	defer db.Close()
	appLog.Info("Conexão PostgreSQL estabelecida.", nil)

	// B. Cache (Redis)
	cacheClient := cache.NewRedisClient(cfg.RedisAddr)
	appLog.Info("Conexão Redis estabelecida.", nil)

	// 3. INJEÇÃO DE DEPENDÊNCIAS (Montagem da Clean Architecture)
	// Ordem: Repository -> Service -> Handler

	// A. Repositório de Estado (Camada de Acesso a Dados)
	stateRepo := staterepo.NewStateRepository(db, cacheClient, cfg.DBTimeout, cfg.CacheTTL, appLog)
	appLog.Debug("Repositório de Estado inicializado.", nil)

	// B. Estado da aplicação (reidratação do que estiver persistido)
	bootCtx, bootCancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer bootCancel()

	stateSvc, err := stateservice.NewService(bootCtx, stateRepo, appLog)
	if err != nil {
		appLog.Fatal("Falha ao reidratar o estado da aplicação.", err)
	}
	appLog.Debug("Estado da aplicação reidratado.", nil)

	// C. Serviços de domínio
	parser := csv.NewParser(cfg.SyncFetchTimeout)
	syncSvc := syncservice.NewService(parser, stateSvc, appLog)
	catalogSvc := catalogservice.NewService(stateSvc, appLog)
	requestSvc := requestservice.NewService(stateSvc, appLog)
	bootstrapSvc := bootstrapservice.NewService(stateSvc, syncSvc, appLog)

	// D. Serviço de Tokens (JWT) e autenticação dos perfis
	tokenSvc := token.NewService(cfg.JWTSecretKey, cfg.TokenExpiry)
	creds := authservice.EnvCredentialStore{
		VendorHash: cfg.VendorPasswordHash,
		AdminHash:  cfg.AdminPasswordHash,
	}
	authSvc := authservice.NewService(creds, tokenSvc, appLog)
	appLog.Debug("Serviços de domínio inicializados.", nil)

	// E. Bootstrap: aplica o link compartilhado (s/v) e sincroniza antes de
	// começar a atender. Falha de sincronização não derruba a subida.
	if err := bootstrapSvc.Run(bootCtx, cfg.ShareLink); err != nil {
		appLog.Fatal("Falha no bootstrap do estado inicial.", err)
	}

	// F. Handlers (Camada de Apresentação)
	handlers := router.Handlers{
		Auth:     auth.NewHandler(authSvc, appLog),
		Catalog:  catalog.NewHandler(catalogSvc, appLog),
		Request:  request.NewHandler(requestSvc, appLog),
		Roster:   roster.NewHandler(stateSvc, appLog),
		Sync:     apisync.NewHandler(syncSvc, stateSvc, bootstrapSvc, cfg.PublicBaseURL, appLog),
		WhatsApp: whatsapp.NewHandler(stateSvc, appLog),
	}

	// 4. Configuração e Início do Roteador/Servidor
	r := router.NewRouter(handlers, tokenSvc, cacheClient, router.RateLimitConfig{
		MaxRequests: cfg.RateLimitMaxRequests,
		Period:      cfg.RateLimitPeriod,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// 5. Execução e Graceful Shutdown
	go func() {
		appLog.Info("Painel de Estoque ouvindo na porta", map[string]interface{}{"port": cfg.Port})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLog.Fatal("Servidor falhou: %v", err)
		}
	}()

	// Lógica do Graceful Shutdown (captura de sinal)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	appLog.Info("Sinal de encerramento recebido. Desligando servidor...", nil)

	// Timeout para desligamento (usa o contexto)
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLog.Error("Desligamento do servidor forçado.", err)
	}

	appLog.Info("Servidor encerrado com sucesso.", nil)
}
