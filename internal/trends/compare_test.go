package trends

import (
	"context"
	"testing"

	"github.com/tubetrends/app-trend-engine/internal/insights"
	"github.com/tubetrends/app-trend-engine/internal/models"
)

func newTestComparator(provider *fakeProvider) *Comparator {
	engine := newTestEngine(provider, 10000)
	return NewComparator(engine, insights.NewGenerator(nil, ""), 2)
}

func nicheVideos(prefix string, views int64) []models.Video {
	return []models.Video{
		{
			ID: prefix + "1", Title: prefix + " survival guide", ChannelID: "ch-" + prefix,
			ViewCount: views, LikeCount: views / 20, CommentCount: views / 100,
			PublishedAt: engineRef.AddDate(0, -1, 0), DurationSeconds: 600,
			Tags: []string{prefix, "survival", "guide"},
		},
		{
			ID: prefix + "2", Title: prefix + " beginner tips", ChannelID: "ch-" + prefix,
			ViewCount: views / 2, LikeCount: views / 40, CommentCount: views / 200,
			PublishedAt: engineRef.AddDate(0, -2, 0), DurationSeconds: 480,
			Tags: []string{prefix, "tips"},
		},
	}
}

func TestCompareIsolatesFailures(t *testing.T) {
	provider := &fakeProvider{
		videosByQuery: map[string][]models.Video{
			"gaming":  nicheVideos("gaming", 80000),
			"cooking": nicheVideos("cooking", 20000),
		},
		errByQuery: map[string]error{
			"broken": &models.UpstreamError{StatusCode: 503, Message: "backend unavailable"},
		},
	}
	c := newTestComparator(provider)

	resp, err := c.Compare(context.Background(), &models.CompareRequest{
		Niches: []string{"gaming", "broken", "cooking"},
	})
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}

	if resp.Status != models.CompareStatusCompleted {
		t.Errorf("Status = %q, want %q", resp.Status, models.CompareStatusCompleted)
	}
	if len(resp.Results) != 2 {
		t.Fatalf("len(Results) = %d, want 2", len(resp.Results))
	}
	if _, ok := resp.Results["gaming"]; !ok {
		t.Error("nicho gaming ausente dos resultados")
	}
	if _, ok := resp.Results["cooking"]; !ok {
		t.Error("nicho cooking ausente dos resultados")
	}

	failure, ok := resp.Failures["broken"]
	if !ok {
		t.Fatal("nicho broken deveria estar em Failures")
	}
	if failure.Code != "upstream_error" {
		t.Errorf("Code = %q, want upstream_error", failure.Code)
	}

	if resp.Analysis == nil {
		t.Fatal("análise comparativa ausente com dois nichos completos")
	}
	// Os dois primeiros bem-sucedidos na ordem da requisição
	if resp.Analysis.NicheA != "gaming" || resp.Analysis.NicheB != "cooking" {
		t.Errorf("par comparado = %s/%s, want gaming/cooking", resp.Analysis.NicheA, resp.Analysis.NicheB)
	}
	if resp.Analysis.ViewsRatio <= 1 {
		t.Errorf("ViewsRatio = %v, want > 1 (gaming tem mais views)", resp.Analysis.ViewsRatio)
	}
	if len(resp.Analysis.Insights) == 0 {
		t.Error("nenhum insight gerado")
	}
}

func TestCompareAllNichesFail(t *testing.T) {
	provider := &fakeProvider{
		errByQuery: map[string]error{
			"x": &models.UpstreamError{StatusCode: 500, Message: "boom"},
			"y": &models.UpstreamError{StatusCode: 500, Message: "boom"},
		},
	}
	c := newTestComparator(provider)

	resp, err := c.Compare(context.Background(), &models.CompareRequest{Niches: []string{"x", "y"}})
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	if resp.Status != models.CompareStatusFailed {
		t.Errorf("Status = %q, want %q", resp.Status, models.CompareStatusFailed)
	}
	if len(resp.Failures) != 2 {
		t.Errorf("len(Failures) = %d, want 2", len(resp.Failures))
	}
	if resp.Analysis != nil {
		t.Error("análise comparativa não deveria existir sem sucessos")
	}
}

func TestCompareSingleSuccessSkipsAnalysis(t *testing.T) {
	provider := &fakeProvider{
		videosByQuery: map[string][]models.Video{"gaming": nicheVideos("gaming", 50000)},
		errByQuery: map[string]error{
			"broken": &models.UpstreamError{StatusCode: 503, Message: "down"},
		},
	}
	c := newTestComparator(provider)

	resp, err := c.Compare(context.Background(), &models.CompareRequest{Niches: []string{"gaming", "broken"}})
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	if resp.Status != models.CompareStatusCompleted {
		t.Errorf("Status = %q, want completed", resp.Status)
	}
	if resp.Analysis != nil {
		t.Error("agregação par-a-par exige dois nichos completos")
	}
}

func TestCompareValidation(t *testing.T) {
	c := newTestComparator(&fakeProvider{})

	t.Run("Sem nichos", func(t *testing.T) {
		_, err := c.Compare(context.Background(), &models.CompareRequest{})
		if err != models.ErrNoNiches {
			t.Errorf("err = %v, want ErrNoNiches", err)
		}
	})

	t.Run("Excedentes são descartados silenciosamente", func(t *testing.T) {
		provider := &fakeProvider{videosByQuery: map[string][]models.Video{}}
		c := newTestComparator(provider)
		resp, err := c.Compare(context.Background(), &models.CompareRequest{
			Niches: []string{"a", "b", "c", "d", "e", "f", "g"},
		})
		if err != nil {
			t.Fatalf("Compare: %v", err)
		}
		total := len(resp.Results) + len(resp.Failures)
		if total > models.MaxNiches {
			t.Errorf("nichos processados = %d, want <= %d", total, models.MaxNiches)
		}
	})
}

func TestCompareQuotaFailureIsReported(t *testing.T) {
	provider := &fakeProvider{
		videosByQuery: map[string][]models.Video{
			"gaming":  nicheVideos("gaming", 50000),
			"cooking": nicheVideos("cooking", 20000),
		},
	}
	engine := newTestEngine(provider, 150) // só cabe uma busca de 101 unidades
	c := NewComparator(engine, insights.NewGenerator(nil, ""), 1)

	resp, err := c.Compare(context.Background(), &models.CompareRequest{Niches: []string{"gaming", "cooking"}})
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}

	if len(resp.Results) != 1 {
		t.Fatalf("len(Results) = %d, want 1", len(resp.Results))
	}
	if len(resp.Failures) != 1 {
		t.Fatalf("len(Failures) = %d, want 1", len(resp.Failures))
	}
	for _, failure := range resp.Failures {
		if failure.Code != "quota_exceeded" {
			t.Errorf("Code = %q, want quota_exceeded", failure.Code)
		}
	}
}
