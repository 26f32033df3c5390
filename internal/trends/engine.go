// Package trends orquestra o pipeline de análise: coordenador de fetch →
// ranking → inferência de tópicos e nichos, em modo de nicho único
// (analyzeTrends) ou comparativo (compareNiches).
package trends

import (
	"context"
	"strconv"
	"time"

	"github.com/tubetrends/app-trend-engine/internal/fetch"
	"github.com/tubetrends/app-trend-engine/internal/models"
	"github.com/tubetrends/app-trend-engine/internal/quota"
	"github.com/tubetrends/app-trend-engine/internal/trends/ranking"
	"github.com/tubetrends/app-trend-engine/internal/trends/topics"
	"github.com/tubetrends/app-trend-engine/internal/youtube"
)

// Limites do enriquecimento de canais: quantos canais ganham uma busca de
// vídeos recentes para alimentar o cálculo de frequência de upload.
const (
	channelsToEnrich = 5
	videosPerChannel = 10
)

// Faixas de inscritos usadas na distribuição de canais.
const (
	mediumBandMin    = 10_000
	largeBandMin     = 100_000
	veryLargeBandMin = 1_000_000
)

// Provider é a interface do provedor upstream de dados de vídeo. O cliente
// da YouTube Data API implementa; os testes usam um fake.
type Provider interface {
	SearchVideos(ctx context.Context, req *models.TrendsRequest) ([]models.Video, error)
	TrendingVideos(ctx context.Context, country, categoryID string, maxResults int) ([]models.Video, error)
	SearchChannels(ctx context.Context, query, country string, maxResults int) ([]models.Channel, error)
	ChannelVideos(ctx context.Context, channelID string, maxResults int, order string) ([]models.Video, error)
	VideoCategories(ctx context.Context, country string) ([]models.VideoCategory, error)
}

// Engine executa as análises de tendências de nicho único. Toda chamada ao
// upstream passa pelo coordenador de fetch: cache primeiro, quota depois,
// upstream por último.
type Engine struct {
	provider    Provider
	coordinator *fetch.Coordinator
	ledger      *quota.Ledger
	scorer      *ranking.Scorer
	extractor   *topics.Extractor
	ideas       *topics.IdeaGenerator
	suggester   *topics.Suggester
	now         func() time.Time
}

// EngineConfig parametriza a criação do engine.
type EngineConfig struct {
	Ranking ranking.Config
	Topics  topics.ExtractorConfig
	// NicheMinOverlap é o limiar mínimo de sobreposição para sugerir nichos.
	NicheMinOverlap float64
}

// NewEngine cria um engine sobre o provedor, coordenador e ledger informados.
func NewEngine(provider Provider, coordinator *fetch.Coordinator, ledger *quota.Ledger, cfg EngineConfig) *Engine {
	return &Engine{
		provider:    provider,
		coordinator: coordinator,
		ledger:      ledger,
		scorer:      ranking.NewScorer(cfg.Ranking),
		extractor:   topics.NewExtractor(cfg.Topics),
		ideas:       topics.NewIdeaGenerator(),
		suggester:   topics.NewSuggester(cfg.NicheMinOverlap),
		now:         time.Now,
	}
}

// AnalyzeTrends busca (ou lista o chart de alta, quando não há query),
// pontua os vídeos, agrega os canais presentes no resultado e infere
// tópicos, ideias e nichos relacionados. Resultado vazio não é erro: devolve
// listas vazias com o consumo de quota corrente.
func (e *Engine) AnalyzeTrends(ctx context.Context, req *models.TrendsRequest) (*models.TrendsResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	videos, err := e.fetchVideos(ctx, req)
	if err != nil {
		return nil, err
	}

	if len(videos) == 0 {
		return &models.TrendsResponse{
			Videos:   []models.Video{},
			Channels: []models.Channel{},
			Topics:   []models.Topic{},
			Ideas:    []string{},
			Quota:    e.ledger.Usage(),
		}, nil
	}

	scored := e.scorer.ScoreVideos(videos, e.now())

	channels, videosByChannel := channelsFromVideos(scored)
	rankedChannels := e.scorer.ScoreChannels(channels, videosByChannel)

	topicList := e.extractor.Extract(scored)
	ideaList := e.ideas.Generate(topicList, scored)
	suggestions := e.suggester.Suggest(topicList, channelIDs(rankedChannels), nil)

	return &models.TrendsResponse{
		Videos:          scored,
		Channels:        rankedChannels,
		Topics:          topicList,
		Ideas:           ideaList,
		SuggestedNiches: suggestions,
		Metadata:        metadataInsights(scored),
		Quota:           e.ledger.Usage(),
	}, nil
}

// AnalyzeChannels busca canais pelo termo, enriquece os primeiros com seus
// vídeos recentes para estimar frequência de upload e devolve o conjunto
// pontuado com a distribuição por faixa de inscritos.
func (e *Engine) AnalyzeChannels(ctx context.Context, req *models.ChannelTrendsRequest) (*models.ChannelTrendsResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	key := fetch.RequestKey("channels", map[string]string{
		"q":           req.Query,
		"country":     req.Country,
		"max_results": strconv.Itoa(req.MaxResults),
	})
	res, err := e.coordinator.Fetch(ctx, key, youtube.SearchChannelsCost(), func(fctx context.Context) (interface{}, error) {
		return e.provider.SearchChannels(fctx, req.Query, req.Country, req.MaxResults)
	})
	if err != nil {
		return nil, err
	}
	channels, _ := res.Value.([]models.Channel)

	if len(channels) == 0 {
		return &models.ChannelTrendsResponse{
			Channels:        []models.Channel{},
			SubscriberBands: map[string]int{},
			Quota:           e.ledger.Usage(),
		}, nil
	}

	videosByChannel := make(map[string][]models.Video)
	for i, channel := range channels {
		if i >= channelsToEnrich {
			break
		}
		videos, err := e.fetchChannelVideos(ctx, channel.ID)
		if err != nil {
			return nil, err
		}
		videosByChannel[channel.ID] = videos
	}

	ranked := e.scorer.ScoreChannels(channels, videosByChannel)

	return &models.ChannelTrendsResponse{
		Channels:        ranked,
		SubscriberBands: subscriberBands(ranked),
		Quota:           e.ledger.Usage(),
	}, nil
}

// Categories lista as categorias de vídeo oficiais da região.
func (e *Engine) Categories(ctx context.Context, country string) (*models.CategoriesResponse, error) {
	key := fetch.RequestKey("categories", map[string]string{"country": country})
	res, err := e.coordinator.Fetch(ctx, key, youtube.VideoCategoriesCost(), func(fctx context.Context) (interface{}, error) {
		return e.provider.VideoCategories(fctx, country)
	})
	if err != nil {
		return nil, err
	}
	categories, _ := res.Value.([]models.VideoCategory)
	if categories == nil {
		categories = []models.VideoCategory{}
	}

	return &models.CategoriesResponse{
		Categories: categories,
		Quota:      e.ledger.Usage(),
	}, nil
}

// QuotaStatus expõe a visão completa do ledger.
func (e *Engine) QuotaStatus() models.QuotaStatus {
	return e.ledger.Status()
}

// fetchVideos resolve a busca de vídeos da requisição pelo coordenador: com
// query faz busca, sem query lista o chart de alta da região.
func (e *Engine) fetchVideos(ctx context.Context, req *models.TrendsRequest) ([]models.Video, error) {
	key := fetch.RequestKey("videos", map[string]string{
		"q":                req.Query,
		"category":         req.Category,
		"country":          req.Country,
		"duration":         req.Duration,
		"max_results":      strconv.Itoa(req.MaxResults),
		"order":            req.Order,
		"published_after":  req.PublishedAfter,
		"published_before": req.PublishedBefore,
		"language":         req.Language,
	})

	cost := youtube.TrendingVideosCost()
	if req.Query != "" {
		cost = youtube.SearchVideosCost()
	}

	res, err := e.coordinator.Fetch(ctx, key, cost, func(fctx context.Context) (interface{}, error) {
		if req.Query != "" {
			return e.provider.SearchVideos(fctx, req)
		}
		return e.provider.TrendingVideos(fctx, req.Country, req.Category, req.MaxResults)
	})
	if err != nil {
		return nil, err
	}

	videos, _ := res.Value.([]models.Video)
	return videos, nil
}

func (e *Engine) fetchChannelVideos(ctx context.Context, channelID string) ([]models.Video, error) {
	key := fetch.RequestKey("channel_videos", map[string]string{
		"channel_id":  channelID,
		"max_results": strconv.Itoa(videosPerChannel),
		"order":       "viewCount",
	})
	res, err := e.coordinator.Fetch(ctx, key, youtube.ChannelVideosCost(), func(fctx context.Context) (interface{}, error) {
		return e.provider.ChannelVideos(fctx, channelID, videosPerChannel, "viewCount")
	})
	if err != nil {
		return nil, err
	}
	videos, _ := res.Value.([]models.Video)
	return videos, nil
}

// channelsFromVideos agrega os canais presentes num conjunto de vídeos,
// somando views e contando vídeos por canal. Os contadores de inscritos não
// estão disponíveis neste caminho e ficam zerados, o que a normalização
// min-max absorve. A ordem de agregação segue a ordem dos vídeos.
func channelsFromVideos(videos []models.Video) ([]models.Channel, map[string][]models.Video) {
	byID := make(map[string]*models.Channel)
	videosByChannel := make(map[string][]models.Video)
	var order []string

	for _, v := range videos {
		if v.ChannelID == "" {
			continue
		}
		channel, ok := byID[v.ChannelID]
		if !ok {
			channel = &models.Channel{ID: v.ChannelID, Title: v.ChannelTitle}
			byID[v.ChannelID] = channel
			order = append(order, v.ChannelID)
		}
		channel.VideoCount++
		channel.ViewCount += v.ViewCount
		videosByChannel[v.ChannelID] = append(videosByChannel[v.ChannelID], v)
	}

	channels := make([]models.Channel, 0, len(order))
	for _, id := range order {
		channels = append(channels, *byID[id])
	}
	return channels, videosByChannel
}

func channelIDs(channels []models.Channel) []string {
	ids := make([]string, 0, len(channels))
	for _, c := range channels {
		ids = append(ids, c.ID)
	}
	return ids
}

func subscriberBands(channels []models.Channel) map[string]int {
	bands := map[string]int{
		"small":      0,
		"medium":     0,
		"large":      0,
		"very_large": 0,
	}
	for _, c := range channels {
		switch {
		case c.SubscriberCount >= veryLargeBandMin:
			bands["very_large"]++
		case c.SubscriberCount >= largeBandMin:
			bands["large"]++
		case c.SubscriberCount >= mediumBandMin:
			bands["medium"]++
		default:
			bands["small"]++
		}
	}
	return bands
}

func metadataInsights(videos []models.Video) models.MetadataInsights {
	if len(videos) == 0 {
		return models.MetadataInsights{}
	}

	var titleLen, views float64
	quality := make(map[string]int)
	for _, v := range videos {
		titleLen += float64(len(v.Title))
		views += float64(v.ViewCount)
		if v.ThumbnailQuality != "" {
			quality[v.ThumbnailQuality]++
		}
	}

	return models.MetadataInsights{
		AvgTitleLength:   titleLen / float64(len(videos)),
		AvgViews:         views / float64(len(videos)),
		ThumbnailQuality: quality,
	}
}
