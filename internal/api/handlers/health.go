package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tubetrends/app-trend-engine/internal/trends"
)

// HealthHandler gerencia os endpoints de health check
type HealthHandler struct {
	engine *trends.Engine
}

// NewHealthHandler cria um novo handler de health check
func NewHealthHandler(engine *trends.Engine) *HealthHandler {
	return &HealthHandler{engine: engine}
}

// HealthResponse representa a resposta do health check
type HealthResponse struct {
	Status    string            `json:"status"`
	Checks    map[string]string `json:"checks,omitempty"`
	Error     string            `json:"error,omitempty"`
	Timestamp int64             `json:"timestamp"`
}

// Liveness godoc
// @Summary Liveness probe endpoint
// @Description Verifica se a aplicação está viva (sem checagem de dependências externas)
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /liveness [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	// Liveness apenas confirma que o app está rodando
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "alive",
		Timestamp: time.Now().Unix(),
	})
}

// Readiness godoc
// @Summary Readiness probe endpoint
// @Description Verifica se a aplicação está pronta para receber tráfego (quota diária ainda disponível). Nenhuma chamada ao upstream é feita aqui para não consumir quota
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readiness [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	response := HealthResponse{
		Status:    "ready",
		Checks:    make(map[string]string),
		Timestamp: time.Now().Unix(),
	}

	status := h.engine.QuotaStatus()
	if status.Remaining > 0 {
		response.Checks["quota"] = "ok"
	} else {
		response.Checks["quota"] = "exhausted"
		response.Status = "not_ready"
		response.Error = "daily quota budget exhausted"
	}

	statusCode := http.StatusOK
	if response.Status == "not_ready" {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, response)
}
