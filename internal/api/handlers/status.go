package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tubetrends/app-trend-engine/internal/trends"
)

// StatusHandler expõe o estado operacional do serviço: consumo de quota e
// visão geral da janela diária.
type StatusHandler struct {
	engine *trends.Engine
}

// NewStatusHandler cria um novo handler de status.
func NewStatusHandler(engine *trends.Engine) *StatusHandler {
	return &StatusHandler{engine: engine}
}

// GetQuota godoc
// @Summary Estado da quota diária
// @Description Devolve o consumo corrente da quota: unidades usadas, orçamento, percentual e horário de reset da janela
// @Tags status
// @Produce json
// @Success 200 {object} models.QuotaStatus
// @Router /api/v1/quota [get]
func (h *StatusHandler) GetQuota(c *gin.Context) {
	c.JSON(http.StatusOK, h.engine.QuotaStatus())
}

// GetStatus godoc
// @Summary Estado geral do serviço
// @Description Resumo operacional: quota corrente e timestamp do servidor
// @Tags status
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/status [get]
func (h *StatusHandler) GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"quota":     h.engine.QuotaStatus(),
		"timestamp": time.Now().Unix(),
	})
}
