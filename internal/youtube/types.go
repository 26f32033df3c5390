package youtube

import (
	"strconv"
	"time"

	"github.com/tubetrends/app-trend-engine/internal/models"
)

// Schemas brutos dos payloads da API de Dados do YouTube v3. Os contadores
// numéricos chegam como strings; o defaulting (campo ausente/ilegível -> 0)
// é aplicado uma única vez aqui, na ingestão, antes de qualquer scoring.

type searchListResponse struct {
	Items []searchItem `json:"items"`
}

type searchItem struct {
	ID resourceID `json:"id"`
}

type resourceID struct {
	Kind      string `json:"kind"`
	VideoID   string `json:"videoId"`
	ChannelID string `json:"channelId"`
}

type videoListResponse struct {
	Items []videoItem `json:"items"`
}

type videoItem struct {
	ID             string         `json:"id"`
	Snippet        snippet        `json:"snippet"`
	Statistics     statistics     `json:"statistics"`
	ContentDetails contentDetails `json:"contentDetails"`
}

type channelListResponse struct {
	Items []channelItem `json:"items"`
}

type channelItem struct {
	ID         string     `json:"id"`
	Snippet    snippet    `json:"snippet"`
	Statistics statistics `json:"statistics"`
}

type snippet struct {
	Title        string               `json:"title"`
	Description  string               `json:"description"`
	ChannelID    string               `json:"channelId"`
	ChannelTitle string               `json:"channelTitle"`
	PublishedAt  time.Time            `json:"publishedAt"`
	Tags         []string             `json:"tags"`
	Thumbnails   map[string]thumbnail `json:"thumbnails"`
}

type thumbnail struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type statistics struct {
	ViewCount       string `json:"viewCount"`
	LikeCount       string `json:"likeCount"`
	CommentCount    string `json:"commentCount"`
	SubscriberCount string `json:"subscriberCount"`
	VideoCount      string `json:"videoCount"`
}

type contentDetails struct {
	Duration string `json:"duration"`
}

type categoryListResponse struct {
	Items []categoryItem `json:"items"`
}

type categoryItem struct {
	ID      string `json:"id"`
	Snippet struct {
		Title      string `json:"title"`
		Assignable bool   `json:"assignable"`
	} `json:"snippet"`
}

type errorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// parseCount converte um contador string do payload, com default 0.
func parseCount(s string) int64 {
	if s == "" {
		return 0
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// thumbnailQuality classifica a melhor thumbnail disponível.
func thumbnailQuality(thumbs map[string]thumbnail) string {
	if _, ok := thumbs["maxres"]; ok {
		return "high_quality"
	}
	if _, ok := thumbs["high"]; ok {
		return "medium_quality"
	}
	return "low_quality"
}

func (v videoItem) toModel() models.Video {
	return models.Video{
		ID:               v.ID,
		Title:            v.Snippet.Title,
		ChannelID:        v.Snippet.ChannelID,
		ChannelTitle:     v.Snippet.ChannelTitle,
		Description:      v.Snippet.Description,
		Tags:             v.Snippet.Tags,
		ViewCount:        parseCount(v.Statistics.ViewCount),
		LikeCount:        parseCount(v.Statistics.LikeCount),
		CommentCount:     parseCount(v.Statistics.CommentCount),
		PublishedAt:      v.Snippet.PublishedAt,
		DurationSeconds:  ParseDuration(v.ContentDetails.Duration),
		ThumbnailQuality: thumbnailQuality(v.Snippet.Thumbnails),
	}
}

func (c channelItem) toModel() models.Channel {
	return models.Channel{
		ID:              c.ID,
		Title:           c.Snippet.Title,
		SubscriberCount: parseCount(c.Statistics.SubscriberCount),
		VideoCount:      parseCount(c.Statistics.VideoCount),
		ViewCount:       parseCount(c.Statistics.ViewCount),
	}
}
