package router

import (
	"net/http"
	"time"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	"painelestoque/internal/api/auth"
	"painelestoque/internal/api/catalog"
	"painelestoque/internal/api/request"
	"painelestoque/internal/api/roster"
	"painelestoque/internal/api/sync"
	"painelestoque/internal/api/whatsapp"
	"painelestoque/internal/domain"
	"painelestoque/internal/pkg/cache"
	"painelestoque/internal/pkg/middleware"
)

// Handlers agrupa os Handlers já inicializados por injeção de dependências.
type Handlers struct {
	Auth     *auth.Handler
	Catalog  *catalog.Handler
	Request  *request.Handler
	Roster   *roster.Handler
	Sync     *sync.Handler
	WhatsApp *whatsapp.Handler
}

// RateLimitConfig parametriza o limitador global de requisições.
type RateLimitConfig struct {
	MaxRequests int
	Period      time.Duration
}

// NewRouter configura e retorna o roteador HTTP principal.
func NewRouter(h Handlers, tokenSvc middleware.TokenService, cacheClient cache.Client, rl RateLimitConfig) http.Handler {

	// Usamos o ServeMux padrão do net/http para roteamento
	mux := http.NewServeMux()

	authMW := middleware.NewAuthMiddleware(tokenSvc)
	adminMW := middleware.PermissionMiddleware(domain.RoleAdmin)

	// --- 1. Rotas públicas ---
	mux.HandleFunc("/ping", PingHandler)
	mux.HandleFunc("/v1/login", h.Auth.LoginHandler)
	mux.Handle("/swagger/", httpSwagger.Handler())

	// --- 2. Catálogo (qualquer perfil autenticado) ---
	mux.HandleFunc("/v1/produtos", authMW(h.Catalog.ListProductsHandler))
	mux.HandleFunc("/v1/stats", authMW(h.Catalog.StatsHandler))

	// --- 3. Pedidos ---
	// A limpeza total (?all=true) e a troca de status exigem admin; essa
	// verificação fica no próprio Handler porque divide rota com operações
	// abertas a qualquer perfil.
	mux.HandleFunc("/v1/pedidos", authMW(h.Request.CollectionHandler))
	mux.HandleFunc("/v1/pedidos/", authMW(h.Request.ItemHandler))

	// --- 4. Quadro de vendedores ---
	// GET é aberto a qualquer perfil; POST altera o quadro e exige admin.
	mux.HandleFunc("/v1/vendedores", authMW(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			adminMW(h.Roster.CollectionHandler)(w, r)
			return
		}
		h.Roster.CollectionHandler(w, r)
	}))
	mux.HandleFunc("/v1/vendedores/", authMW(adminMW(h.Roster.ItemHandler)))

	// --- 5. Sincronização e importação ---
	mux.HandleFunc("/v1/sync", authMW(adminMW(h.Sync.SyncHandler)))
	mux.HandleFunc("/v1/sync/refresh", authMW(h.Sync.RefreshHandler))
	mux.HandleFunc("/v1/sync/url", authMW(adminMW(h.Sync.SyncURLHandler)))
	mux.HandleFunc("/v1/import", authMW(adminMW(h.Sync.ImportHandler)))
	mux.HandleFunc("/v1/atualizacoes", authMW(h.Sync.HistoryHandler))
	mux.HandleFunc("/v1/share-link", authMW(adminMW(h.Sync.ShareLinkHandler)))

	// --- 6. Configuração de WhatsApp (admin) ---
	mux.HandleFunc("/v1/whatsapp", authMW(adminMW(h.WhatsApp.ConfigHandler)))

	// --- 7. Middlewares globais ---
	return middleware.RateLimiter(cacheClient, rl.MaxRequests, rl.Period)(mux)
}

// PingHandler é uma função utilitária para o health check.
func PingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}
