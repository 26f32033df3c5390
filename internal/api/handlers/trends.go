package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tubetrends/app-trend-engine/internal/models"
	"github.com/tubetrends/app-trend-engine/internal/trends"
)

// TrendsHandler expõe os endpoints de análise de tendências.
type TrendsHandler struct {
	engine *trends.Engine
}

// NewTrendsHandler cria um novo handler de tendências.
func NewTrendsHandler(engine *trends.Engine) *TrendsHandler {
	return &TrendsHandler{engine: engine}
}

// GetTrends godoc
// @Summary Análise de tendências de vídeos
// @Description Busca vídeos pelo termo (ou lista o chart de alta da região quando não há termo), pontua o conjunto e infere tópicos, ideias de conteúdo e nichos relacionados
// @Tags trends
// @Accept json
// @Produce json
// @Param q query string false "Termo de busca; vazio retorna o chart de alta"
// @Param category query string false "ID de categoria (usado sem termo de busca)"
// @Param country query string false "Código do país ISO 3166-1 alpha-2" default(US)
// @Param duration query string false "Filtro de duração" Enums(short, medium, long)
// @Param max_results query int false "Máximo de resultados" default(10)
// @Param order query string false "Ordenação" Enums(viewCount, relevance, rating, date) default(viewCount)
// @Param published_after query string false "Publicados após (RFC3339)"
// @Param published_before query string false "Publicados antes (RFC3339)"
// @Param language query string false "Idioma de relevância (ISO 639-1)"
// @Success 200 {object} models.TrendsResponse
// @Failure 400 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Failure 504 {object} map[string]string
// @Router /api/v1/trends [get]
func (h *TrendsHandler) GetTrends(c *gin.Context) {
	var req models.TrendsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "validation_error"})
		return
	}

	resp, err := h.engine.AnalyzeTrends(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetTrendingChannels godoc
// @Summary Análise de canais em tendência
// @Description Busca canais pelo termo, enriquece os primeiros resultados com seus vídeos recentes e devolve o conjunto pontuado com a distribuição por faixa de inscritos
// @Tags trends
// @Accept json
// @Produce json
// @Param q query string true "Termo de busca de canais"
// @Param country query string false "Código do país ISO 3166-1 alpha-2" default(US)
// @Param max_results query int false "Máximo de canais" default(10)
// @Success 200 {object} models.ChannelTrendsResponse
// @Failure 400 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /api/v1/trends/channels [get]
func (h *TrendsHandler) GetTrendingChannels(c *gin.Context) {
	var req models.ChannelTrendsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": models.ErrQueryRequired.Error(), "code": "validation_error"})
		return
	}

	resp, err := h.engine.AnalyzeChannels(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetCategories godoc
// @Summary Categorias de vídeo da região
// @Description Lista as categorias de vídeo oficiais disponíveis na região informada
// @Tags trends
// @Accept json
// @Produce json
// @Param country query string false "Código do país ISO 3166-1 alpha-2" default(US)
// @Success 200 {object} models.CategoriesResponse
// @Failure 429 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /api/v1/trends/categories [get]
func (h *TrendsHandler) GetCategories(c *gin.Context) {
	country := c.DefaultQuery("country", "US")

	resp, err := h.engine.Categories(c.Request.Context(), country)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// respondError mapeia a taxonomia de erros do domínio para status HTTP:
// validação → 400, quota → 429, timeout → 504, upstream → status original
// (ou 502), restante → 500.
func respondError(c *gin.Context, err error) {
	code := models.ErrorCode(err)
	body := gin.H{"error": err.Error(), "code": code}

	switch code {
	case "validation_error":
		c.JSON(http.StatusBadRequest, body)
	case "quota_exceeded":
		var qe *models.QuotaExceededError
		if errors.As(err, &qe) {
			body["reset_at"] = qe.ResetAt
		}
		c.JSON(http.StatusTooManyRequests, body)
	case "timeout":
		c.JSON(http.StatusGatewayTimeout, body)
	case "upstream_error":
		status := http.StatusBadGateway
		var ue *models.UpstreamError
		if errors.As(err, &ue) && ue.StatusCode >= 400 {
			status = ue.StatusCode
		}
		c.JSON(status, body)
	default:
		c.JSON(http.StatusInternalServerError, body)
	}
}
