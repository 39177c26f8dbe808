package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"
)

// Config armazena todas as configurações do aplicativo StockRoute.
type Config struct {
	// Geral
	Port        string
	Environment string
	LogLevel    string

	// Cache (Redis), usado pelo rate limiting
	RedisAddr    string
	CacheTimeout time.Duration

	// Segurança (JWT + operador)
	JWTSecretKey         string
	TokenExpiry          time.Duration
	OperatorEmail        string
	OperatorPasswordHash string

	// Rate Limiting
	RateLimitMaxRequests int
	RateLimitPeriod      time.Duration

	// Rede
	SeedDemo       bool
	MetricsEnabled bool
}

// LoadConfig carrega as configurações a partir das variáveis de ambiente.
// O .env (se existir) já deve ter sido carregado pelo godotenv no cmd.
func LoadConfig() *Config {
	cfg := &Config{
		// 1. Geral
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		// 2. Cache (Redis)
		RedisAddr:    getEnv("REDIS_ADDR", "localhost:6379"),
		CacheTimeout: getDurationEnv("CACHE_TIMEOUT_SEC", 10) * time.Second, // 10s padrão

		// 3. Segurança (JWT)
		JWTSecretKey:         getEnv("JWT_SECRET_KEY", ""),
		TokenExpiry:          getDurationEnv("JWT_EXPIRY_MIN", 60) * time.Minute, // 60 min padrão
		OperatorEmail:        getEnv("OPERATOR_EMAIL", ""),
		OperatorPasswordHash: getEnv("OPERATOR_PASSWORD_HASH", ""),

		// 4. Rate Limiting
		RateLimitMaxRequests: getIntEnv("RATE_LIMIT_MAX_REQUESTS", 100),
		RateLimitPeriod:      getDurationEnv("RATE_LIMIT_PERIOD_MIN", 1) * time.Minute, // 1 min padrão

		// 5. Rede
		SeedDemo:       getBoolEnv("SEED_DEMO", false),
		MetricsEnabled: getBoolEnv("METRICS_ENABLED", true),
	}

	return cfg
}

// ValidateForServer verifica o que o servidor HTTP exige para subir.
func (c *Config) ValidateForServer() error {
	if c.JWTSecretKey == "" {
		return fmt.Errorf("erro de configuração: a variável de ambiente JWT_SECRET_KEY deve ser definida")
	}
	if c.RateLimitMaxRequests <= 0 {
		return fmt.Errorf("erro de configuração: RATE_LIMIT_MAX_REQUESTS deve ser maior que zero")
	}
	return nil
}

// Funções Helpers (Auxiliares)

// getEnv lê a variável de ambiente ou retorna um valor padrão.
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getDurationEnv lê uma variável de ambiente numérica e retorna-a como time.Duration.
func getDurationEnv(key string, defaultValue int) time.Duration {
	return time.Duration(getIntEnv(key, defaultValue))
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

// getBoolEnv lê uma variável de ambiente booleana (true/false, 1/0).
func getBoolEnv(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("⚠️ Aviso: Valor de %s ('%s') não é um booleano válido. Usando padrão (%t).", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
