package trends

import (
	"context"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/tubetrends/app-trend-engine/internal/fetch"
	"github.com/tubetrends/app-trend-engine/internal/models"
	"github.com/tubetrends/app-trend-engine/internal/quota"
)

var engineRef = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

// fakeProvider implementa Provider em memória para os testes, contando as
// chamadas que chegam ao upstream.
type fakeProvider struct {
	mu sync.Mutex

	searchCalls   int
	trendingCalls int
	channelCalls  int

	videosByQuery map[string][]models.Video
	errByQuery    map[string]error
	trending      []models.Video
	channels      []models.Channel
	channelVideos map[string][]models.Video
	categories    []models.VideoCategory
}

func (f *fakeProvider) SearchVideos(_ context.Context, req *models.TrendsRequest) ([]models.Video, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.searchCalls++
	if err, ok := f.errByQuery[req.Query]; ok {
		return nil, err
	}
	return f.videosByQuery[req.Query], nil
}

func (f *fakeProvider) TrendingVideos(_ context.Context, _, _ string, _ int) ([]models.Video, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.trendingCalls++
	return f.trending, nil
}

func (f *fakeProvider) SearchChannels(_ context.Context, _, _ string, _ int) ([]models.Channel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.channels, nil
}

func (f *fakeProvider) ChannelVideos(_ context.Context, channelID string, _ int, _ string) ([]models.Video, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.channelCalls++
	return f.channelVideos[channelID], nil
}

func (f *fakeProvider) VideoCategories(_ context.Context, _ string) ([]models.VideoCategory, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.categories, nil
}

func newTestEngine(provider *fakeProvider, budget int) *Engine {
	cache := fetch.NewCache(100)
	ledger := quota.NewLedger(budget)
	coordinator := fetch.NewCoordinator(cache, ledger, time.Hour, time.Second)
	engine := NewEngine(provider, coordinator, ledger, EngineConfig{})
	engine.now = func() time.Time { return engineRef }
	return engine
}

func sampleVideos() []models.Video {
	return []models.Video{
		{
			ID: "v1", Title: "Minecraft survival guide", ChannelID: "ch1",
			ChannelTitle: "Blocks", ViewCount: 90000, LikeCount: 3000,
			CommentCount: 500, PublishedAt: engineRef.AddDate(0, -1, 0),
			DurationSeconds: 600, Tags: []string{"minecraft", "survival"},
			ThumbnailQuality: "high_quality",
		},
		{
			ID: "v2", Title: "Minecraft building tips", ChannelID: "ch1",
			ChannelTitle: "Blocks", ViewCount: 40000, LikeCount: 1200,
			CommentCount: 200, PublishedAt: engineRef.AddDate(0, -2, 0),
			DurationSeconds: 480, Tags: []string{"minecraft", "building"},
			ThumbnailQuality: "medium_quality",
		},
		{
			ID: "v3", Title: "Survival challenge day one", ChannelID: "ch2",
			ChannelTitle: "Wilds", ViewCount: 15000, LikeCount: 900,
			CommentCount: 100, PublishedAt: engineRef.AddDate(0, 0, -10),
			DurationSeconds: 1200, Tags: []string{"survival", "challenge"},
			ThumbnailQuality: "high_quality",
		},
	}
}

func TestAnalyzeTrends(t *testing.T) {
	provider := &fakeProvider{
		videosByQuery: map[string][]models.Video{"minecraft": sampleVideos()},
	}
	engine := newTestEngine(provider, 10000)

	resp, err := engine.AnalyzeTrends(context.Background(), &models.TrendsRequest{Query: "minecraft"})
	if err != nil {
		t.Fatalf("AnalyzeTrends: %v", err)
	}

	if len(resp.Videos) != 3 {
		t.Errorf("len(Videos) = %d, want 3", len(resp.Videos))
	}
	for i := 1; i < len(resp.Videos); i++ {
		if resp.Videos[i-1].Score < resp.Videos[i].Score {
			t.Error("vídeos fora de ordem decrescente de score")
		}
	}
	if len(resp.Channels) != 2 {
		t.Errorf("len(Channels) = %d, want 2", len(resp.Channels))
	}
	if len(resp.Topics) == 0 {
		t.Error("nenhum tópico extraído")
	}
	if len(resp.Ideas) == 0 {
		t.Error("nenhuma ideia gerada")
	}
	if resp.Metadata.AvgViews == 0 {
		t.Error("metadata sem média de views")
	}
	if resp.Quota.Used == 0 {
		t.Error("quota zerada após busca")
	}
}

func TestAnalyzeTrendsIdempotence(t *testing.T) {
	provider := &fakeProvider{
		videosByQuery: map[string][]models.Video{"minecraft": sampleVideos()},
	}
	engine := newTestEngine(provider, 10000)

	req := func() *models.TrendsRequest { return &models.TrendsRequest{Query: "minecraft"} }

	first, err := engine.AnalyzeTrends(context.Background(), req())
	if err != nil {
		t.Fatalf("primeira chamada: %v", err)
	}
	usedAfterFirst := engine.ledger.Status().Used

	second, err := engine.AnalyzeTrends(context.Background(), req())
	if err != nil {
		t.Fatalf("segunda chamada: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("chamadas idênticas dentro do TTL divergiram")
	}
	if provider.searchCalls != 1 {
		t.Errorf("searchCalls = %d, want 1 (segunda chamada devia vir do cache)", provider.searchCalls)
	}
	if got := engine.ledger.Status().Used; got != usedAfterFirst {
		t.Errorf("quota usada = %d, want %d (cache hit não cobra)", got, usedAfterFirst)
	}
}

func TestAnalyzeTrendsEmptyResult(t *testing.T) {
	provider := &fakeProvider{videosByQuery: map[string][]models.Video{}}
	engine := newTestEngine(provider, 10000)

	resp, err := engine.AnalyzeTrends(context.Background(), &models.TrendsRequest{Query: "nada"})
	if err != nil {
		t.Fatalf("resultado vazio não é erro: %v", err)
	}
	if len(resp.Videos) != 0 || len(resp.Channels) != 0 || len(resp.Topics) != 0 || len(resp.Ideas) != 0 {
		t.Errorf("resposta vazia com conteúdo: %+v", resp)
	}
}

func TestAnalyzeTrendsValidation(t *testing.T) {
	provider := &fakeProvider{}
	engine := newTestEngine(provider, 10000)

	_, err := engine.AnalyzeTrends(context.Background(), &models.TrendsRequest{Order: "bogus"})
	if err != models.ErrInvalidOrder {
		t.Errorf("err = %v, want ErrInvalidOrder", err)
	}
	// Validação rejeita antes de gastar quota
	if got := engine.ledger.Status().Used; got != 0 {
		t.Errorf("quota usada = %d, want 0", got)
	}
	if provider.searchCalls != 0 {
		t.Errorf("searchCalls = %d, want 0", provider.searchCalls)
	}
}

func TestAnalyzeTrendsWithoutQueryUsesTrendingChart(t *testing.T) {
	provider := &fakeProvider{trending: sampleVideos()}
	engine := newTestEngine(provider, 10000)

	resp, err := engine.AnalyzeTrends(context.Background(), &models.TrendsRequest{Country: "BR"})
	if err != nil {
		t.Fatalf("AnalyzeTrends: %v", err)
	}
	if provider.trendingCalls != 1 || provider.searchCalls != 0 {
		t.Errorf("trendingCalls = %d, searchCalls = %d, want 1/0", provider.trendingCalls, provider.searchCalls)
	}
	// chart de alta custa 1 unidade, não 101
	if resp.Quota.Used != 1 {
		t.Errorf("quota usada = %d, want 1", resp.Quota.Used)
	}
}

func TestAnalyzeChannels(t *testing.T) {
	provider := &fakeProvider{
		channels: []models.Channel{
			{ID: "ch1", Title: "Blocks", SubscriberCount: 5000, VideoCount: 100, ViewCount: 2000000},
			{ID: "ch2", Title: "Wilds", SubscriberCount: 50000, VideoCount: 50, ViewCount: 9000000},
			{ID: "ch3", Title: "Giant", SubscriberCount: 2000000, VideoCount: 300, ViewCount: 500000000},
		},
		channelVideos: map[string][]models.Video{
			"ch1": sampleVideos(),
		},
	}
	engine := newTestEngine(provider, 10000)

	resp, err := engine.AnalyzeChannels(context.Background(), &models.ChannelTrendsRequest{Query: "games"})
	if err != nil {
		t.Fatalf("AnalyzeChannels: %v", err)
	}
	if len(resp.Channels) != 3 {
		t.Errorf("len(Channels) = %d, want 3", len(resp.Channels))
	}
	wantBands := map[string]int{"small": 1, "medium": 1, "large": 0, "very_large": 1}
	if !reflect.DeepEqual(resp.SubscriberBands, wantBands) {
		t.Errorf("SubscriberBands = %v, want %v", resp.SubscriberBands, wantBands)
	}
	if provider.channelCalls != 3 {
		t.Errorf("channelCalls = %d, want 3 (um por canal enriquecido)", provider.channelCalls)
	}
}

func TestAnalyzeChannelsRequiresQuery(t *testing.T) {
	engine := newTestEngine(&fakeProvider{}, 10000)
	_, err := engine.AnalyzeChannels(context.Background(), &models.ChannelTrendsRequest{})
	if err != models.ErrQueryRequired {
		t.Errorf("err = %v, want ErrQueryRequired", err)
	}
}

func TestCategories(t *testing.T) {
	provider := &fakeProvider{
		categories: []models.VideoCategory{{ID: "10", Title: "Music", Assignable: true}},
	}
	engine := newTestEngine(provider, 10000)

	resp, err := engine.Categories(context.Background(), "BR")
	if err != nil {
		t.Fatalf("Categories: %v", err)
	}
	if len(resp.Categories) != 1 || resp.Categories[0].Title != "Music" {
		t.Errorf("Categories = %+v", resp.Categories)
	}
}

func TestQuotaStatus(t *testing.T) {
	engine := newTestEngine(&fakeProvider{trending: sampleVideos()}, 10000)

	if _, err := engine.AnalyzeTrends(context.Background(), &models.TrendsRequest{}); err != nil {
		t.Fatalf("AnalyzeTrends: %v", err)
	}

	status := engine.QuotaStatus()
	if status.Used != 1 || status.Budget != 10000 {
		t.Errorf("status = %+v, want used 1 / budget 10000", status)
	}
	if status.Remaining != 9999 {
		t.Errorf("Remaining = %d, want 9999", status.Remaining)
	}
	if status.ResetAt.IsZero() {
		t.Error("ResetAt zerado")
	}
}
