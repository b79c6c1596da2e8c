package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

// Config armazena todas as configurações do Painel de Estoque.
// Todos os campos são definidos com base nos requisitos do projeto (DB, Cache, Segurança, Robustez).
type Config struct {
	// Geral
	Port        string
	Environment string
	LogLevel    string

	// Banco de Dados (PostgreSQL)
	DatabaseURL string
	DBTimeout   time.Duration

	// Cache (Redis)
	RedisAddr string
	CacheTTL  time.Duration

	// Segurança (JWT + senhas compartilhadas dos perfis)
	JWTSecretKey       string
	TokenExpiry        time.Duration
	VendorPasswordHash string
	AdminPasswordHash  string

	// Rate Limiting
	RateLimitMaxRequests int
	RateLimitPeriod      time.Duration

	// Sincronização
	SyncFetchTimeout time.Duration
	ShareLink        string // link compartilhado (?s=...&v=...) aplicado na subida
	PublicBaseURL    string // base usada para montar novos links compartilháveis
}

// LoadConfig carrega as configurações a partir das variáveis de ambiente.
func LoadConfig() *Config {
	cfg := &Config{
		// 1. Geral
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		// 2. Banco de Dados (PostgreSQL)
		// mustGetEnv garante que a aplicação não inicie se não houver credenciais de DB
		DatabaseURL: mustGetEnv("DATABASE_URL"),
		DBTimeout:   getDurationEnv("DB_TIMEOUT_SEC", 5) * time.Second,

		// 3. Cache (Redis)
		RedisAddr: getEnv("REDIS_ADDR", "localhost:6379"),
		CacheTTL:  getDurationEnv("CACHE_TTL_SEC", 60) * time.Second,

		// 4. Segurança (JWT + credenciais dos dois perfis)
		JWTSecretKey:       mustGetEnv("JWT_SECRET_KEY"),
		TokenExpiry:        getDurationEnv("JWT_EXPIRY_MIN", 480) * time.Minute,
		VendorPasswordHash: mustGetEnv("VENDOR_PASSWORD_HASH"),
		AdminPasswordHash:  mustGetEnv("ADMIN_PASSWORD_HASH"),

		// 5. Rate Limiting
		RateLimitMaxRequests: getIntEnv("RATE_LIMIT_MAX_REQUESTS", 100),
		RateLimitPeriod:      getDurationEnv("RATE_LIMIT_PERIOD_MIN", 1) * time.Minute,

		// 6. Sincronização
		SyncFetchTimeout: getDurationEnv("SYNC_FETCH_TIMEOUT_SEC", 30) * time.Second,
		ShareLink:        getEnv("SHARE_LINK", ""),
		PublicBaseURL:    getEnv("PUBLIC_BASE_URL", "http://localhost:8080"),
	}

	return cfg
}

// Funções Helpers (Auxiliares)

// getEnv lê a variável de ambiente ou retorna um valor padrão.
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// mustGetEnv lê a variável de ambiente, fatal se não estiver presente.
func mustGetEnv(key string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	log.Fatalf("❌ Erro de Configuração: A variável de ambiente %s deve ser definida.", key)
	return ""
}

// getDurationEnv lê uma variável de ambiente numérica e retorna-a como time.Duration.
func getDurationEnv(key string, defaultValue int) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return time.Duration(defaultValue)
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("⚠️ Aviso: Valor de %s ('%s') não é um número inteiro válido. Usando padrão (%d).", key, valueStr, defaultValue)
		return time.Duration(defaultValue)
	}
	return time.Duration(value)
}

// getIntEnv lê uma variável de ambiente numérica e retorna-a como int.
func getIntEnv(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("⚠️ Aviso: Valor de %s ('%s') não é um número inteiro válido. Usando padrão (%d).", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
