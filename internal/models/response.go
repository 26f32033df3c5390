package models

import "time"

// QuotaUsage é o side-channel de consumo de quota anexado a cada resposta.
type QuotaUsage struct {
	Used    int     `json:"used"`
	Budget  int     `json:"budget"`
	Percent float64 `json:"percent"`
	Warning bool    `json:"warning"`
}

// QuotaStatus é a visão completa do ledger exposta em getQuotaStatus.
type QuotaStatus struct {
	Used      int       `json:"used"`
	Budget    int       `json:"budget"`
	Percent   float64   `json:"percent"`
	Remaining int       `json:"remaining"`
	Warning   bool      `json:"warning"`
	ResetAt   time.Time `json:"reset_at"`
}

// MetadataInsights agrega observações sobre os metadados do conjunto analisado.
type MetadataInsights struct {
	AvgTitleLength   float64        `json:"avg_title_length"`
	AvgViews         float64        `json:"avg_views"`
	ThumbnailQuality map[string]int `json:"thumbnail_quality,omitempty"`
}

// TrendsResponse é o resultado estruturado de analyzeTrends. Todos os campos
// numéricos já vêm derivados; renderizadores externos não recalculam scores.
type TrendsResponse struct {
	Videos          []Video           `json:"videos"`
	Channels        []Channel         `json:"channels"`
	Topics          []Topic           `json:"topics"`
	Ideas           []string          `json:"ideas"`
	SuggestedNiches []NicheSuggestion `json:"suggested_niches,omitempty"`
	Metadata        MetadataInsights  `json:"metadata"`
	Quota           QuotaUsage        `json:"quota_usage"`
}

// ChannelTrendsResponse é o resultado da análise de tendências de canais.
type ChannelTrendsResponse struct {
	Channels        []Channel      `json:"channels"`
	SubscriberBands map[string]int `json:"subscriber_bands"`
	Quota           QuotaUsage     `json:"quota_usage"`
}

// CategoriesResponse lista as categorias de vídeo de uma região.
type CategoriesResponse struct {
	Categories []VideoCategory `json:"categories"`
	Quota      QuotaUsage      `json:"quota_usage"`
}

// NicheMetrics agrega as métricas de um nicho analisado.
type NicheMetrics struct {
	AvgViews      float64 `json:"avg_views"`
	MedianViews   int64   `json:"median_views"`
	MaxViews      int64   `json:"max_views"`
	AvgEngagement float64 `json:"avg_engagement"`
	VideoCount    int     `json:"video_count"`
}

// NicheComparisonResult é o resultado individual de um nicho em uma
// comparação. Vive apenas durante a requisição.
type NicheComparisonResult struct {
	Niche    string       `json:"niche"`
	Metrics  NicheMetrics `json:"metrics"`
	Keywords []string     `json:"keywords"`
	Topics   []Topic      `json:"topics,omitempty"`
}

// NicheFailure marca um nicho que falhou dentro de uma comparação. A falha é
// isolada: os demais nichos seguem normalmente.
type NicheFailure struct {
	Niche  string `json:"niche"`
	Code   string `json:"code"`
	Reason string `json:"reason"`
}

// ComparativeAnalysis contém os deltas par-a-par entre os dois primeiros
// nichos bem-sucedidos, além de rankings e insights sobre todos eles.
type ComparativeAnalysis struct {
	NicheA         string              `json:"niche_a"`
	NicheB         string              `json:"niche_b"`
	ViewsRatio     float64             `json:"views_ratio"`
	EngagementDiff float64             `json:"engagement_diff"`
	KeywordOverlap float64             `json:"keyword_overlap"`
	Rankings       map[string][]string `json:"rankings,omitempty"`
	Insights       []string            `json:"insights,omitempty"`
}

// Estados de uma comparação de nichos.
const (
	CompareStatusPending     = "pending"
	CompareStatusFetching    = "fetching"
	CompareStatusScoring     = "scoring"
	CompareStatusAggregating = "aggregating"
	CompareStatusCompleted   = "completed"
	CompareStatusFailed      = "failed"
)

// CompareResponse é o resultado de compareNiches.
type CompareResponse struct {
	ID       string                           `json:"id"`
	Status   string                           `json:"status"`
	Results  map[string]NicheComparisonResult `json:"results"`
	Failures map[string]NicheFailure          `json:"failures,omitempty"`
	Analysis *ComparativeAnalysis             `json:"comparative_analysis,omitempty"`
	Quota    QuotaUsage                       `json:"quota_usage"`
}
