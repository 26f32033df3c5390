package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/tubetrends/app-trend-engine/internal/models"
	"github.com/tubetrends/app-trend-engine/internal/trends"
)

// CompareHandler expõe o endpoint de comparação de nichos.
type CompareHandler struct {
	comparator *trends.Comparator
	validator  *validator.Validate
}

// NewCompareHandler cria um novo handler de comparação.
func NewCompareHandler(comparator *trends.Comparator) *CompareHandler {
	return &CompareHandler{
		comparator: comparator,
		validator:  validator.New(),
	}
}

// CompareNiches godoc
// @Summary Comparação entre nichos
// @Description Analisa cada nicho informado (até 5) e computa os deltas entre os dois primeiros bem-sucedidos: razão de views, diferença de engajamento e sobreposição de keywords. A falha de um nicho é isolada e reportada sem abortar os demais
// @Tags compare
// @Accept json
// @Produce json
// @Param request body models.CompareRequest true "Nichos a comparar"
// @Success 200 {object} models.CompareResponse
// @Failure 400 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Router /api/v1/compare [post]
func (h *CompareHandler) CompareNiches(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": models.ErrNoNiches.Error(), "code": "validation_error"})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "validation_error"})
		return
	}

	resp, err := h.comparator.Compare(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
