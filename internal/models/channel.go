package models

// Channel representa um canal com estatísticas brutas da API e métricas
// derivadas pelo ranking engine.
type Channel struct {
	ID    string `json:"id"`
	Title string `json:"title"`

	SubscriberCount int64 `json:"subscriber_count"`
	VideoCount      int64 `json:"video_count"`
	ViewCount       int64 `json:"view_count"`

	// Campos derivados
	AvgViewsPerVideo        float64 `json:"avg_views_per_video"`
	UploadFrequencyPerMonth float64 `json:"upload_frequency_per_month"`
	Score                   float64 `json:"score"`
}
