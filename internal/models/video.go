package models

import "time"

// Video representa um vídeo retornado pela API do YouTube.
// Os campos brutos vêm do upstream; os campos derivados (EngagementRate,
// RecencyScore e Score) são calculados exclusivamente pelo ranking engine.
type Video struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	ChannelID    string `json:"channel_id"`
	ChannelTitle string `json:"channel_title,omitempty"`
	Description  string `json:"description,omitempty"`

	Tags []string `json:"tags,omitempty"`

	ViewCount    int64 `json:"view_count"`
	LikeCount    int64 `json:"like_count"`
	CommentCount int64 `json:"comment_count"`

	PublishedAt     time.Time `json:"published_at"`
	DurationSeconds int64     `json:"duration_seconds"`

	// Qualidade da melhor thumbnail disponível: high_quality, medium_quality, low_quality
	ThumbnailQuality string `json:"thumbnail_quality,omitempty"`

	// Campos derivados
	EngagementRate float64 `json:"engagement_rate"`
	RecencyScore   float64 `json:"recency_score"`
	Score          float64 `json:"score"`
}
