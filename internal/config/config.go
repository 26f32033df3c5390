// Package config gerencia configurações da aplicação via variáveis de ambiente.
//
// # Variáveis de Ambiente
//
// ## YouTube
//   - YOUTUBE_API_KEY: Chave da YouTube Data API v3 (obrigatória)
//
// ## Quota
//   - QUOTA_DAILY_BUDGET: Orçamento diário de unidades de quota (default: 10000)
//
// ## Cache e Fetch
//   - CACHE_TTL_SECONDS: TTL das entradas de cache em segundos (default: 3600)
//   - CACHE_MAX_SIZE: Número máximo de entradas no cache (default: 500)
//   - FETCH_TIMEOUT_SECONDS: Timeout de cada chamada ao upstream (default: 10)
//
// ## Análise
//   - RECENCY_HORIZON_DAYS: Horizonte do decaimento de recência (default: 365)
//   - TOPIC_MIN_TOKEN_LENGTH: Tamanho mínimo de token na extração (default: 3)
//   - TOPIC_MIN_COUNT: Frequência mínima para virar tópico (default: 2)
//   - TOPIC_MAX_TOPICS: Máximo de tópicos retornados (default: 20)
//   - NICHE_MIN_OVERLAP: Sobreposição mínima para sugerir nicho (default: 0.05)
//   - COMPARE_CONCURRENCY: Nichos analisados em paralelo (default: 2)
//
// ## Gemini
//   - GEMINI_API_KEY: Chave da API Google Gemini (opcional; sem ela os
//     insights são puramente heurísticos)
//   - GEMINI_CHAT_MODEL: Modelo para refinamento de insights (default: gemini-3-pro-preview)
//
// ## Servidor e Observabilidade
//   - SERVER_PORT: Porta do servidor HTTP (default: 8080)
//   - TRACING_ENABLED: Habilita tracing OTLP (default: false)
//   - TRACING_ENDPOINT: Endpoint do collector OTLP gRPC (default: localhost:4317)
package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort string

	// YouTube Data API
	YouTubeAPIKey string

	// Quota
	QuotaDailyBudget int

	// Cache e fetch
	CacheTTLSeconds     int
	CacheMaxSize        int
	FetchTimeoutSeconds int

	// Análise
	RecencyHorizonDays int
	TopicMinTokenLen   int
	TopicMinCount      int
	TopicMaxTopics     int
	NicheMinOverlap    float64
	CompareConcurrency int

	// Gemini configuration
	GeminiAPIKey    string
	GeminiChatModel string

	// Tracing configuration
	TracingEnabled  bool
	TracingEndpoint string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),

		YouTubeAPIKey: getEnv("YOUTUBE_API_KEY", ""),

		QuotaDailyBudget: getEnvInt("QUOTA_DAILY_BUDGET", 10000),

		CacheTTLSeconds:     getEnvInt("CACHE_TTL_SECONDS", 3600),
		CacheMaxSize:        getEnvInt("CACHE_MAX_SIZE", 500),
		FetchTimeoutSeconds: getEnvInt("FETCH_TIMEOUT_SECONDS", 10),

		RecencyHorizonDays: getEnvInt("RECENCY_HORIZON_DAYS", 365),
		TopicMinTokenLen:   getEnvInt("TOPIC_MIN_TOKEN_LENGTH", 3),
		TopicMinCount:      getEnvInt("TOPIC_MIN_COUNT", 2),
		TopicMaxTopics:     getEnvInt("TOPIC_MAX_TOPICS", 20),
		NicheMinOverlap:    getEnvFloat("NICHE_MIN_OVERLAP", 0.05),
		CompareConcurrency: getEnvInt("COMPARE_CONCURRENCY", 2),

		// Gemini configuration
		GeminiAPIKey:    getEnv("GEMINI_API_KEY", ""),
		GeminiChatModel: getEnv("GEMINI_CHAT_MODEL", "gemini-3-pro-preview"),

		// Tracing configuration
		TracingEnabled:  getEnv("TRACING_ENABLED", "false") == "true",
		TracingEndpoint: getEnv("TRACING_ENDPOINT", "localhost:4317"),
	}

	if cfg.YouTubeAPIKey == "" {
		log.Fatal("YOUTUBE_API_KEY environment variable is required but not set")
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}
