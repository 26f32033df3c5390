package models

import (
	"strings"
	"time"
)

// Ordenações aceitas pela busca de vídeos.
var validOrders = map[string]bool{
	"viewCount": true,
	"relevance": true,
	"rating":    true,
	"date":      true,
}

// Filtros de duração aceitos.
var validDurations = map[string]bool{
	"short":  true,
	"medium": true,
	"long":   true,
}

// MaxNiches limita quantos nichos uma comparação pode analisar.
const MaxNiches = 5

// TrendsRequest representa uma requisição de análise de tendências de vídeos.
// @Description Parâmetros para análise de tendências. Com query faz busca;
// @Description sem query retorna o chart de vídeos em alta da região.
type TrendsRequest struct {
	// Termo de busca. Se vazio, busca vídeos em alta da região.
	Query string `form:"q" example:"street food"`
	// ID de categoria de vídeo (usado sem query, para o chart de alta)
	Category string `form:"category" example:"10"`
	// Código do país ISO 3166-1 alpha-2 (default: US)
	Country string `form:"country" example:"BR"`
	// Filtro de duração: short (<4min), medium (4-20min), long (>20min)
	Duration string `form:"duration" enums:"short,medium,long"`
	// Máximo de resultados (default: 10, máximo: 50)
	MaxResults int `form:"max_results" example:"10" minimum:"1" maximum:"50"`
	// Ordenação da busca (default: viewCount)
	Order string `form:"order" example:"viewCount" enums:"viewCount,relevance,rating,date"`
	// Filtrar vídeos publicados após esta data (RFC3339)
	PublishedAfter string `form:"published_after" example:"2026-01-01T00:00:00Z"`
	// Filtrar vídeos publicados antes desta data (RFC3339)
	PublishedBefore string `form:"published_before" example:"2026-06-01T00:00:00Z"`
	// Idioma de relevância (ISO 639-1)
	Language string `form:"language" example:"pt"`
}

// Validate valida e aplica defaults à requisição.
func (r *TrendsRequest) Validate() error {
	r.Query = strings.TrimSpace(r.Query)
	r.Country = normalizeCountry(r.Country)

	if r.MaxResults < 1 {
		r.MaxResults = 10
	}
	if r.MaxResults > 50 {
		r.MaxResults = 50
	}

	if r.Order == "" {
		r.Order = "viewCount"
	}
	if !validOrders[r.Order] {
		return ErrInvalidOrder
	}

	if r.Duration != "" && !validDurations[r.Duration] {
		return ErrInvalidDuration
	}

	for _, d := range []string{r.PublishedAfter, r.PublishedBefore} {
		if d == "" {
			continue
		}
		if _, err := time.Parse(time.RFC3339, d); err != nil {
			return ErrInvalidDate
		}
	}

	return nil
}

// ChannelTrendsRequest representa uma requisição de análise de canais.
type ChannelTrendsRequest struct {
	// Termo de busca de canais (obrigatório)
	Query string `form:"q" binding:"required" example:"tech reviews"`
	// Código do país ISO 3166-1 alpha-2 (default: US)
	Country string `form:"country" example:"BR"`
	// Máximo de canais (default: 10, máximo: 50)
	MaxResults int `form:"max_results" example:"10" minimum:"1" maximum:"50"`
}

// Validate valida e aplica defaults à requisição de canais.
func (r *ChannelTrendsRequest) Validate() error {
	r.Query = strings.TrimSpace(r.Query)
	if r.Query == "" {
		return ErrQueryRequired
	}
	r.Country = normalizeCountry(r.Country)
	if r.MaxResults < 1 {
		r.MaxResults = 10
	}
	if r.MaxResults > 50 {
		r.MaxResults = 50
	}
	return nil
}

// CompareRequest representa uma requisição de comparação entre nichos.
// @Description Corpo da requisição POST de comparação de nichos.
type CompareRequest struct {
	// Nichos (palavras-chave) a comparar. Máximo de 5; excedentes são descartados.
	Niches []string `json:"niches" binding:"required" validate:"required,min=1,dive,max=100" example:"gaming,cooking"`
	// Código do país ISO 3166-1 alpha-2 (default: US)
	Country string `json:"country" example:"BR"`
	// Máximo de vídeos por nicho (default: 10, máximo: 25)
	MaxResultsPerNiche int `json:"max_results_per_niche" example:"10" minimum:"1" maximum:"25"`
	// Ordenação da busca (default: viewCount)
	Order string `json:"order" example:"viewCount" enums:"viewCount,relevance,rating,date"`
	// Filtrar vídeos publicados após esta data (RFC3339)
	PublishedAfter string `json:"published_after,omitempty"`
	// Filtrar vídeos publicados antes desta data (RFC3339)
	PublishedBefore string `json:"published_before,omitempty"`
	// Idioma de relevância (ISO 639-1)
	Language string `json:"language,omitempty"`
}

// Validate valida a requisição, remove nichos vazios/duplicados e limita a
// MaxNiches (excedentes são descartados em silêncio, preservando a ordem).
func (r *CompareRequest) Validate() error {
	seen := make(map[string]bool)
	niches := make([]string, 0, len(r.Niches))
	for _, n := range r.Niches {
		n = strings.TrimSpace(n)
		if n == "" || seen[strings.ToLower(n)] {
			continue
		}
		seen[strings.ToLower(n)] = true
		niches = append(niches, n)
	}
	if len(niches) == 0 {
		return ErrNoNiches
	}
	if len(niches) > MaxNiches {
		niches = niches[:MaxNiches]
	}
	r.Niches = niches

	r.Country = normalizeCountry(r.Country)

	if r.MaxResultsPerNiche < 1 {
		r.MaxResultsPerNiche = 10
	}
	if r.MaxResultsPerNiche > 25 {
		r.MaxResultsPerNiche = 25
	}

	if r.Order == "" {
		r.Order = "viewCount"
	}
	if !validOrders[r.Order] {
		return ErrInvalidOrder
	}

	for _, d := range []string{r.PublishedAfter, r.PublishedBefore} {
		if d == "" {
			continue
		}
		if _, err := time.Parse(time.RFC3339, d); err != nil {
			return ErrInvalidDate
		}
	}

	return nil
}

// TrendsRequestForNiche deriva a requisição de busca de um nicho individual.
func (r *CompareRequest) TrendsRequestForNiche(niche string) *TrendsRequest {
	return &TrendsRequest{
		Query:           niche,
		Country:         r.Country,
		MaxResults:      r.MaxResultsPerNiche,
		Order:           r.Order,
		PublishedAfter:  r.PublishedAfter,
		PublishedBefore: r.PublishedBefore,
		Language:        r.Language,
	}
}

// normalizeCountry aplica o default e trata o pseudo-país "Global".
func normalizeCountry(country string) string {
	country = strings.TrimSpace(country)
	if country == "" || strings.EqualFold(country, "global") {
		return "US"
	}
	return strings.ToUpper(country)
}
