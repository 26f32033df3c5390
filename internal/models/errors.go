package models

import (
	"errors"
	"fmt"
	"time"
)

// Erros de validação: rejeitados antes de qualquer gasto de quota.
var (
	ErrQueryRequired   = errors.New("query é obrigatória")
	ErrInvalidOrder    = errors.New("ordenação inválida (use: viewCount, relevance, rating, date)")
	ErrInvalidDuration = errors.New("filtro de duração inválido (use: short, medium, long)")
	ErrInvalidDate     = errors.New("data inválida (use o formato RFC3339, ex: 2026-01-02T15:04:05Z)")
	ErrNoNiches        = errors.New("nenhum nicho válido informado para comparação")
)

// QuotaExceededError indica que a reserva de unidades estoura o orçamento
// diário. Recuperável aguardando o reset da janela; nunca é retentado
// automaticamente.
type QuotaExceededError struct {
	Requested int
	Used      int
	Budget    int
	ResetAt   time.Time
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("quota diária excedida: %d unidades solicitadas com %d/%d usadas (reset em %s)",
		e.Requested, e.Used, e.Budget, e.ResetAt.UTC().Format(time.RFC3339))
}

// UpstreamError indica falha na comunicação com a API do YouTube
// (status 4xx/5xx, payload malformado ou timeout). Nunca é cacheado.
type UpstreamError struct {
	StatusCode int
	Message    string
	Timeout    bool
}

func (e *UpstreamError) Error() string {
	if e.Timeout {
		return fmt.Sprintf("timeout na chamada ao upstream: %s", e.Message)
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("erro do upstream (HTTP %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("erro do upstream: %s", e.Message)
}

// IsQuotaExceeded reporta se err é (ou encapsula) um QuotaExceededError.
func IsQuotaExceeded(err error) bool {
	var qe *QuotaExceededError
	return errors.As(err, &qe)
}

// IsUpstreamError reporta se err é (ou encapsula) um UpstreamError.
func IsUpstreamError(err error) bool {
	var ue *UpstreamError
	return errors.As(err, &ue)
}

// IsValidationError reporta se err é um erro de validação de parâmetros.
func IsValidationError(err error) bool {
	for _, v := range []error{ErrQueryRequired, ErrInvalidOrder, ErrInvalidDuration, ErrInvalidDate, ErrNoNiches} {
		if errors.Is(err, v) {
			return true
		}
	}
	return false
}

// ErrorCode classifica um erro na taxonomia exposta aos consumidores.
func ErrorCode(err error) string {
	var ue *UpstreamError
	switch {
	case IsQuotaExceeded(err):
		return "quota_exceeded"
	case errors.As(err, &ue) && ue.Timeout:
		return "timeout"
	case errors.As(err, &ue):
		return "upstream_error"
	case IsValidationError(err):
		return "validation_error"
	default:
		return "internal_error"
	}
}
