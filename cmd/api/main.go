package main

import (
	"log"

	_ "github.com/tubetrends/app-trend-engine/docs"
	"github.com/tubetrends/app-trend-engine/internal/api/routes"
	"github.com/tubetrends/app-trend-engine/internal/config"
	"github.com/tubetrends/app-trend-engine/internal/observability"
)

// @title           Trend Engine API
// @version         1.0
// @description     API de inteligência de tendências do YouTube: análise de vídeos e canais com cache ciente de quota, scoring determinístico e comparação de nichos
// @termsOfService  http://swagger.io/terms/

// @contact.name   TubeTrends
// @contact.email  contato@tubetrends.dev

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080

func main() {

	cfg := config.LoadConfig()

	observability.InitTracer(cfg)
	defer observability.ShutdownTracer()

	r := routes.SetupRouter(cfg)

	log.Printf("Servidor iniciado na porta %s", cfg.ServerPort)
	err := r.Run(":" + cfg.ServerPort)
	if err != nil {
		log.Fatalf("Erro ao iniciar servidor: %v", err)
	}
}
