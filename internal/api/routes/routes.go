package routes

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"google.golang.org/genai"

	"github.com/tubetrends/app-trend-engine/internal/api/handlers"
	"github.com/tubetrends/app-trend-engine/internal/config"
	"github.com/tubetrends/app-trend-engine/internal/fetch"
	"github.com/tubetrends/app-trend-engine/internal/insights"
	middlewares "github.com/tubetrends/app-trend-engine/internal/middleware"
	"github.com/tubetrends/app-trend-engine/internal/quota"
	"github.com/tubetrends/app-trend-engine/internal/trends"
	"github.com/tubetrends/app-trend-engine/internal/trends/ranking"
	"github.com/tubetrends/app-trend-engine/internal/trends/topics"
	"github.com/tubetrends/app-trend-engine/internal/youtube"
)

func SetupRouter(cfg *config.Config) *gin.Engine {
	r := gin.Default()

	r.Use(corsMiddleware())
	r.Use(middlewares.RequestTiming())

	engine, comparator := buildEngine(cfg)

	trendsHandler := handlers.NewTrendsHandler(engine)
	compareHandler := handlers.NewCompareHandler(comparator)
	statusHandler := handlers.NewStatusHandler(engine)
	healthHandler := handlers.NewHealthHandler(engine)

	api := r.Group("/api/v1")
	{
		api.GET("/trends", trendsHandler.GetTrends)
		api.GET("/trends/channels", trendsHandler.GetTrendingChannels)
		api.GET("/trends/categories", trendsHandler.GetCategories)
		api.POST("/compare", compareHandler.CompareNiches)
		api.GET("/quota", statusHandler.GetQuota)
		api.GET("/status", statusHandler.GetStatus)
	}

	r.GET("/liveness", healthHandler.Liveness)
	r.GET("/readiness", healthHandler.Readiness)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// buildEngine monta o grafo de serviços: cliente YouTube → coordenador de
// fetch (cache + ledger) → engine de análise → comparador de nichos.
func buildEngine(cfg *config.Config) (*trends.Engine, *trends.Comparator) {
	cache := fetch.NewCache(cfg.CacheMaxSize)
	ledger := quota.NewLedger(cfg.QuotaDailyBudget)
	coordinator := fetch.NewCoordinator(cache, ledger,
		time.Duration(cfg.CacheTTLSeconds)*time.Second,
		time.Duration(cfg.FetchTimeoutSeconds)*time.Second)

	provider := youtube.NewClient(cfg.YouTubeAPIKey)

	engine := trends.NewEngine(provider, coordinator, ledger, trends.EngineConfig{
		Ranking: ranking.Config{RecencyHorizonDays: cfg.RecencyHorizonDays},
		Topics: topics.ExtractorConfig{
			MinTokenLength: cfg.TopicMinTokenLen,
			MinCount:       cfg.TopicMinCount,
			MaxTopics:      cfg.TopicMaxTopics,
		},
		NicheMinOverlap: cfg.NicheMinOverlap,
	})

	generator := insights.NewGenerator(geminiClient(cfg), cfg.GeminiChatModel)
	comparator := trends.NewComparator(engine, generator, cfg.CompareConcurrency)

	return engine, comparator
}

// geminiClient cria o cliente Gemini quando há chave configurada. Sem chave,
// os insights ficam puramente heurísticos.
func geminiClient(cfg *config.Config) *genai.Client {
	if cfg.GeminiAPIKey == "" {
		return nil
	}
	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		log.Printf("Erro ao criar cliente Gemini: %v", err)
		return nil
	}
	return client
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
