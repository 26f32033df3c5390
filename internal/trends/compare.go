package trends

import (
	"context"
	"log"
	"sort"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/tubetrends/app-trend-engine/internal/insights"
	"github.com/tubetrends/app-trend-engine/internal/models"
	"github.com/tubetrends/app-trend-engine/internal/trends/topics"
)

// DefaultCompareConcurrency limita quantos nichos são analisados em paralelo
// numa comparação.
const DefaultCompareConcurrency = 2

// keywordsPerNiche limita as keywords reportadas por nicho.
const keywordsPerNiche = 10

// Comparator orquestra a comparação entre nichos: executa o pipeline de
// análise uma vez por nicho, com concorrência limitada, e agrega os deltas
// entre os resultados. A falha de um nicho é isolada: o slot é marcado como
// falho e excluído da agregação, sem abortar os demais.
type Comparator struct {
	engine   *Engine
	insights *insights.Generator
	limit    int
}

// NewComparator cria um comparador sobre o engine informado. generator pode
// ter cliente nil; nesse caso os insights são puramente heurísticos.
func NewComparator(engine *Engine, generator *insights.Generator, concurrency int) *Comparator {
	if concurrency <= 0 {
		concurrency = DefaultCompareConcurrency
	}
	return &Comparator{
		engine:   engine,
		insights: generator,
		limit:    concurrency,
	}
}

// Compare analisa cada nicho da requisição e computa a análise comparativa
// entre os dois primeiros nichos bem-sucedidos. O estado da comparação segue
// pending → fetching → scoring → aggregating → completed; um nicho que falha
// vira uma entrada em Failures com o código e a razão da falha.
func (c *Comparator) Compare(ctx context.Context, req *models.CompareRequest) (*models.CompareResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	resp := &models.CompareResponse{
		ID:       uuid.NewString(),
		Status:   models.CompareStatusPending,
		Results:  make(map[string]models.NicheComparisonResult, len(req.Niches)),
		Failures: make(map[string]models.NicheFailure),
	}

	var mu sync.Mutex
	var g errgroup.Group
	g.SetLimit(c.limit)

	resp.Status = models.CompareStatusFetching
	for _, niche := range req.Niches {
		niche := niche
		g.Go(func() error {
			result, err := c.analyzeNiche(ctx, req, niche)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				log.Printf("nicho %q falhou: %v", niche, err)
				resp.Failures[niche] = models.NicheFailure{
					Niche:  niche,
					Code:   models.ErrorCode(err),
					Reason: err.Error(),
				}
				return nil
			}
			resp.Results[niche] = *result
			return nil
		})
	}
	// As falhas são registradas por nicho; o grupo nunca propaga erro.
	_ = g.Wait()

	resp.Status = models.CompareStatusAggregating
	resp.Analysis = c.aggregate(ctx, req.Niches, resp.Results)
	resp.Quota = c.engine.ledger.Usage()

	if len(resp.Results) == 0 {
		resp.Status = models.CompareStatusFailed
	} else {
		resp.Status = models.CompareStatusCompleted
	}
	return resp, nil
}

// analyzeNiche roda o pipeline completo para um único nicho: fetch → scoring
// → tópicos → métricas agregadas.
func (c *Comparator) analyzeNiche(ctx context.Context, req *models.CompareRequest, niche string) (*models.NicheComparisonResult, error) {
	tr := req.TrendsRequestForNiche(niche)
	if err := tr.Validate(); err != nil {
		return nil, err
	}

	videos, err := c.engine.fetchVideos(ctx, tr)
	if err != nil {
		return nil, err
	}

	scored := c.engine.scorer.ScoreVideos(videos, c.engine.now())
	topicList := c.engine.extractor.Extract(scored)

	keywords := make([]string, 0, keywordsPerNiche)
	for i, topic := range topicList {
		if i >= keywordsPerNiche {
			break
		}
		keywords = append(keywords, topic.Name)
	}

	return &models.NicheComparisonResult{
		Niche:    niche,
		Metrics:  nicheMetrics(scored),
		Keywords: keywords,
		Topics:   topicList,
	}, nil
}

// aggregate computa os deltas par-a-par entre os dois primeiros nichos
// bem-sucedidos (na ordem da requisição), os rankings por métrica e os
// insights sobre todos os nichos completados. Com menos de dois sucessos não
// há análise comparativa.
func (c *Comparator) aggregate(ctx context.Context, requested []string, results map[string]models.NicheComparisonResult) *models.ComparativeAnalysis {
	var succeeded []string
	for _, niche := range requested {
		if _, ok := results[niche]; ok {
			succeeded = append(succeeded, niche)
		}
	}
	if len(succeeded) < 2 {
		return nil
	}

	a, b := results[succeeded[0]], results[succeeded[1]]

	viewsRatio := 0.0
	if b.Metrics.AvgViews > 0 {
		viewsRatio = a.Metrics.AvgViews / b.Metrics.AvgViews
	}

	overlap, _ := topics.KeywordOverlap(a.Topics, b.Topics)

	return &models.ComparativeAnalysis{
		NicheA:         a.Niche,
		NicheB:         b.Niche,
		ViewsRatio:     viewsRatio,
		EngagementDiff: a.Metrics.AvgEngagement - b.Metrics.AvgEngagement,
		KeywordOverlap: overlap,
		Rankings:       rankNiches(succeeded, results),
		Insights:       c.insights.Compare(ctx, results),
	}
}

// rankNiches ordena os nichos bem-sucedidos por cada métrica de interesse,
// do maior para o menor, com desempate pelo nome.
func rankNiches(niches []string, results map[string]models.NicheComparisonResult) map[string][]string {
	metric := func(niche, name string) float64 {
		m := results[niche].Metrics
		switch name {
		case "avg_views":
			return m.AvgViews
		case "avg_engagement":
			return m.AvgEngagement
		default:
			return float64(m.MaxViews)
		}
	}

	rankings := make(map[string][]string, 3)
	for _, name := range []string{"avg_views", "avg_engagement", "max_views"} {
		ranked := make([]string, len(niches))
		copy(ranked, niches)
		sort.SliceStable(ranked, func(i, j int) bool {
			vi, vj := metric(ranked[i], name), metric(ranked[j], name)
			if vi != vj {
				return vi > vj
			}
			return ranked[i] < ranked[j]
		})
		rankings[name] = ranked
	}
	return rankings
}

// nicheMetrics agrega views e engajamento de um conjunto já pontuado.
func nicheMetrics(videos []models.Video) models.NicheMetrics {
	if len(videos) == 0 {
		return models.NicheMetrics{}
	}

	viewCounts := make([]int64, len(videos))
	var totalViews float64
	var totalEngagement float64
	var maxViews int64
	for i, v := range videos {
		viewCounts[i] = v.ViewCount
		totalViews += float64(v.ViewCount)
		totalEngagement += v.EngagementRate
		if v.ViewCount > maxViews {
			maxViews = v.ViewCount
		}
	}

	sort.Slice(viewCounts, func(i, j int) bool { return viewCounts[i] < viewCounts[j] })

	return models.NicheMetrics{
		AvgViews:      totalViews / float64(len(videos)),
		MedianViews:   viewCounts[len(viewCounts)/2],
		MaxViews:      maxViews,
		AvgEngagement: totalEngagement / float64(len(videos)),
		VideoCount:    len(videos),
	}
}
