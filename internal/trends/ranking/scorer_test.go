package ranking

import (
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/tubetrends/app-trend-engine/internal/models"
)

var scoringRef = time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

func TestMinMax(t *testing.T) {
	n := NewNormalizer()

	t.Run("Faixa normal", func(t *testing.T) {
		got := n.MinMax([]float64{0, 50, 100})
		want := []float64{0, 0.5, 1}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("MinMax = %v, want %v", got, want)
		}
	})

	t.Run("Conjunto degenerado devolve 0.5", func(t *testing.T) {
		got := n.MinMax([]float64{100, 100})
		for i, v := range got {
			if v != 0.5 {
				t.Errorf("MinMax[%d] = %v, want 0.5", i, v)
			}
			if math.IsNaN(v) {
				t.Errorf("MinMax[%d] é NaN", i)
			}
		}
	})

	t.Run("Entrada vazia", func(t *testing.T) {
		if got := n.MinMax(nil); got != nil {
			t.Errorf("MinMax(nil) = %v, want nil", got)
		}
	})
}

func TestScoreVideosDegenerateViews(t *testing.T) {
	s := NewScorer(Config{})
	videos := []models.Video{
		{ID: "a", ViewCount: 100, PublishedAt: scoringRef},
		{ID: "b", ViewCount: 100, PublishedAt: scoringRef},
	}

	out := s.ScoreVideos(videos, scoringRef)

	// views idênticos: norm = 0.5 para ambos, nunca NaN
	for _, v := range out {
		if math.IsNaN(v.Score) {
			t.Fatalf("score de %s é NaN", v.ID)
		}
		// 0.4*0.5 (views) + 0.4*0.5 (engajamento degenerado) + 0.2*1.0 (recência)
		if diff := math.Abs(v.Score - 0.6); diff > 1e-9 {
			t.Errorf("score de %s = %v, want 0.6", v.ID, v.Score)
		}
	}
}

func TestScoreVideosDeterminism(t *testing.T) {
	s := NewScorer(Config{RecencyHorizonDays: 365})
	videos := []models.Video{
		{ID: "v3", ViewCount: 5000, LikeCount: 200, CommentCount: 50, PublishedAt: scoringRef.AddDate(0, -2, 0)},
		{ID: "v1", ViewCount: 90000, LikeCount: 3000, CommentCount: 800, PublishedAt: scoringRef.AddDate(0, -1, 0)},
		{ID: "v2", ViewCount: 400, LikeCount: 90, CommentCount: 10, PublishedAt: scoringRef.AddDate(0, 0, -3)},
	}

	first := s.ScoreVideos(videos, scoringRef)
	second := s.ScoreVideos(videos, scoringRef)

	if !reflect.DeepEqual(first, second) {
		t.Error("duas execuções sobre a mesma entrada divergiram")
	}

	for i := 1; i < len(first); i++ {
		if first[i-1].Score < first[i].Score {
			t.Errorf("ordenação não decrescente: %v antes de %v", first[i-1].Score, first[i].Score)
		}
	}
}

func TestScoreVideosTieBreaking(t *testing.T) {
	s := NewScorer(Config{})

	// Mesmos contadores: scores empatam, desempate por ID
	videos := []models.Video{
		{ID: "zz", ViewCount: 100, LikeCount: 10, PublishedAt: scoringRef},
		{ID: "aa", ViewCount: 100, LikeCount: 10, PublishedAt: scoringRef},
	}
	out := s.ScoreVideos(videos, scoringRef)
	if out[0].ID != "aa" || out[1].ID != "zz" {
		t.Errorf("desempate por ID falhou: %s, %s", out[0].ID, out[1].ID)
	}
}

func TestScoreVideosEdgeCases(t *testing.T) {
	s := NewScorer(Config{})

	t.Run("Entrada vazia devolve lista vazia", func(t *testing.T) {
		out := s.ScoreVideos(nil, scoringRef)
		if out == nil || len(out) != 0 {
			t.Errorf("ScoreVideos(nil) = %v, want lista vazia", out)
		}
	})

	t.Run("Contadores zerados não explodem", func(t *testing.T) {
		out := s.ScoreVideos([]models.Video{{ID: "x"}}, scoringRef)
		if math.IsNaN(out[0].Score) || math.IsNaN(out[0].EngagementRate) {
			t.Error("campos derivados com NaN para contadores zerados")
		}
	})

	t.Run("Vídeo além do horizonte tem recência zero", func(t *testing.T) {
		out := s.ScoreVideos([]models.Video{
			{ID: "velho", ViewCount: 10, PublishedAt: scoringRef.AddDate(-2, 0, 0)},
		}, scoringRef)
		if out[0].RecencyScore != 0 {
			t.Errorf("RecencyScore = %v, want 0", out[0].RecencyScore)
		}
	})
}

func TestScoreChannelsWeights(t *testing.T) {
	s := NewScorer(Config{})

	// Canal "meio": 0 inscritos (norm 0), média de views máxima (norm 1),
	// frequência 0 (norm 0). Score = 0.40 exato, só o termo de views conta.
	channels := []models.Channel{
		{ID: "baixo", SubscriberCount: 1000, VideoCount: 10, ViewCount: 1000},
		{ID: "meio", SubscriberCount: 0, VideoCount: 10, ViewCount: 10000000},
		{ID: "alto", SubscriberCount: 50000, VideoCount: 10, ViewCount: 5000},
	}
	videosByChannel := map[string][]models.Video{
		"baixo": {
			{PublishedAt: scoringRef.AddDate(0, 0, -30)},
			{PublishedAt: scoringRef.AddDate(0, 0, -15)},
			{PublishedAt: scoringRef},
		},
	}

	out := s.ScoreChannels(channels, videosByChannel)

	var meio *models.Channel
	for i := range out {
		if out[i].ID == "meio" {
			meio = &out[i]
		}
	}
	if meio == nil {
		t.Fatal("canal \"meio\" não encontrado no resultado")
	}
	if diff := math.Abs(meio.Score - 0.40); diff > 1e-9 {
		t.Errorf("score = %v, want exatamente 0.40", meio.Score)
	}
}

func TestScoreChannelsDerivedFields(t *testing.T) {
	s := NewScorer(Config{})

	channels := []models.Channel{
		{ID: "c1", SubscriberCount: 100, VideoCount: 4, ViewCount: 1000},
		{ID: "c2", SubscriberCount: 50, VideoCount: 0, ViewCount: 500},
	}
	out := s.ScoreChannels(channels, nil)

	byID := map[string]models.Channel{}
	for _, c := range out {
		byID[c.ID] = c
	}

	if got := byID["c1"].AvgViewsPerVideo; got != 250 {
		t.Errorf("AvgViewsPerVideo(c1) = %v, want 250", got)
	}
	// VideoCount 0 usa max(videoCount, 1)
	if got := byID["c2"].AvgViewsPerVideo; got != 500 {
		t.Errorf("AvgViewsPerVideo(c2) = %v, want 500", got)
	}
}

func TestUploadFrequency(t *testing.T) {
	t.Run("Três vídeos em trinta dias", func(t *testing.T) {
		videos := []models.Video{
			{PublishedAt: scoringRef.AddDate(0, 0, -30)},
			{PublishedAt: scoringRef.AddDate(0, 0, -15)},
			{PublishedAt: scoringRef},
		}
		got := uploadFrequency(videos)
		if diff := math.Abs(got - 3.0); diff > 1e-9 {
			t.Errorf("uploadFrequency = %v, want 3.0", got)
		}
	})

	t.Run("Menos de dois vídeos", func(t *testing.T) {
		if got := uploadFrequency([]models.Video{{PublishedAt: scoringRef}}); got != 0 {
			t.Errorf("uploadFrequency = %v, want 0", got)
		}
	})

	t.Run("Vídeos sem data", func(t *testing.T) {
		if got := uploadFrequency([]models.Video{{}, {}}); got != 0 {
			t.Errorf("uploadFrequency = %v, want 0", got)
		}
	})
}
