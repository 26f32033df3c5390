// Package ranking implementa a normalização e o scoring determinístico de
// vídeos e canais. Todo score é função pura dos campos presentes no momento
// do cálculo: a mesma entrada produz sempre a mesma saída ordenada.
package ranking

import (
	"sort"
	"time"

	"github.com/tubetrends/app-trend-engine/internal/models"
)

// Pesos do score de canal: 30% inscritos, 40% média de views, 30% frequência.
const (
	channelSubscriberWeight = 0.30
	channelAvgViewsWeight   = 0.40
	channelFrequencyWeight  = 0.30
)

// Pesos do score de vídeo: 40% views, 40% engajamento, 20% recência.
const (
	videoViewsWeight      = 0.40
	videoEngagementWeight = 0.40
	videoRecencyWeight    = 0.20
)

// DefaultRecencyHorizonDays é o horizonte padrão do decaimento de recência.
const DefaultRecencyHorizonDays = 365

// Config parametriza o scorer.
type Config struct {
	// RecencyHorizonDays define em quantos dias o score de recência decai
	// linearmente de 1.0 até 0.0. Vídeos mais antigos que o horizonte
	// recebem 0.0.
	RecencyHorizonDays int
}

// Scorer calcula campos derivados e scores de vídeos e canais.
type Scorer struct {
	normalizer  *Normalizer
	horizonDays float64
}

// NewScorer cria um scorer com a configuração informada.
func NewScorer(cfg Config) *Scorer {
	horizon := cfg.RecencyHorizonDays
	if horizon <= 0 {
		horizon = DefaultRecencyHorizonDays
	}
	return &Scorer{
		normalizer:  NewNormalizer(),
		horizonDays: float64(horizon),
	}
}

// ScoreVideos calcula engajamento, recência e score de cada vídeo e devolve
// o conjunto ordenado por score decrescente. Empates são resolvidos pela
// métrica primária bruta (views) e, por fim, pelo ID, garantindo ordenação
// totalmente determinística. O instante de referência é passado
// explicitamente para manter o cálculo reprodutível.
func (s *Scorer) ScoreVideos(videos []models.Video, now time.Time) []models.Video {
	if len(videos) == 0 {
		return []models.Video{}
	}

	out := make([]models.Video, len(videos))
	copy(out, videos)

	views := make([]float64, len(out))
	engagements := make([]float64, len(out))
	for i := range out {
		v := &out[i]
		v.EngagementRate = engagementRate(v.LikeCount, v.CommentCount, v.ViewCount)
		v.RecencyScore = s.recencyScore(v.PublishedAt, now)
		views[i] = float64(v.ViewCount)
		engagements[i] = v.EngagementRate
	}

	normViews := s.normalizer.MinMax(views)
	normEngagements := s.normalizer.MinMax(engagements)

	for i := range out {
		out[i].Score = videoViewsWeight*normViews[i] +
			videoEngagementWeight*normEngagements[i] +
			videoRecencyWeight*out[i].RecencyScore
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		if out[i].ViewCount != out[j].ViewCount {
			return out[i].ViewCount > out[j].ViewCount
		}
		return out[i].ID < out[j].ID
	})

	return out
}

// ScoreChannels calcula os campos derivados e o score de cada canal e
// devolve o conjunto ordenado. videosByChannel, quando disponível, alimenta
// o cálculo de frequência de upload; canais sem vídeos conhecidos ficam com
// frequência 0.
func (s *Scorer) ScoreChannels(channels []models.Channel, videosByChannel map[string][]models.Video) []models.Channel {
	if len(channels) == 0 {
		return []models.Channel{}
	}

	out := make([]models.Channel, len(channels))
	copy(out, channels)

	subscribers := make([]float64, len(out))
	avgViews := make([]float64, len(out))
	frequencies := make([]float64, len(out))
	for i := range out {
		c := &out[i]
		c.AvgViewsPerVideo = float64(c.ViewCount) / float64(max64(c.VideoCount, 1))
		c.UploadFrequencyPerMonth = uploadFrequency(videosByChannel[c.ID])
		subscribers[i] = float64(c.SubscriberCount)
		avgViews[i] = c.AvgViewsPerVideo
		frequencies[i] = c.UploadFrequencyPerMonth
	}

	normSubscribers := s.normalizer.MinMax(subscribers)
	normAvgViews := s.normalizer.MinMax(avgViews)
	normFrequencies := s.normalizer.MinMax(frequencies)

	for i := range out {
		out[i].Score = channelSubscriberWeight*normSubscribers[i] +
			channelAvgViewsWeight*normAvgViews[i] +
			channelFrequencyWeight*normFrequencies[i]
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		if out[i].SubscriberCount != out[j].SubscriberCount {
			return out[i].SubscriberCount > out[j].SubscriberCount
		}
		return out[i].ID < out[j].ID
	})

	return out
}

// recencyScore decai linearmente de 1.0 (publicado agora) até 0.0 no
// horizonte configurado. Vídeos sem data de publicação recebem 0.
func (s *Scorer) recencyScore(publishedAt, now time.Time) float64 {
	if publishedAt.IsZero() {
		return 0
	}
	age := now.Sub(publishedAt)
	if age < 0 {
		age = 0
	}
	days := age.Hours() / 24
	if days >= s.horizonDays {
		return 0
	}
	return 1 - days/s.horizonDays
}

// engagementRate calcula (likes + comentários) / views, com proteção contra
// divisão por zero.
func engagementRate(likes, comments, views int64) float64 {
	return float64(likes+comments) / float64(max64(views, 1))
}

func uploadFrequency(videos []models.Video) float64 {
	if len(videos) < 2 {
		return 0
	}

	dates := make([]time.Time, 0, len(videos))
	for _, v := range videos {
		if !v.PublishedAt.IsZero() {
			dates = append(dates, v.PublishedAt)
		}
	}
	if len(dates) < 2 {
		return 0
	}

	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	spanDays := dates[len(dates)-1].Sub(dates[0]).Hours() / 24
	if spanDays <= 0 {
		return 0
	}

	return float64(len(dates)) / spanDays * 30
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
