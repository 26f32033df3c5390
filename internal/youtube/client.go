// Package youtube implementa o cliente HTTP para a API de Dados do YouTube
// v3 e a tabela de custos de quota das operações.
package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/tubetrends/app-trend-engine/internal/models"
)

const defaultBaseURL = "https://www.googleapis.com/youtube/v3"

// Custos em unidades de quota por chamada, conforme a tabela da API.
const (
	costSearch = 100
	costList   = 1
)

// Custos estimados das operações lógicas expostas pelo cliente. Operações de
// busca empacotam search.list (100) + o detalhamento em lote (1).
func SearchVideosCost() int    { return costSearch + costList }
func TrendingVideosCost() int  { return costList }
func SearchChannelsCost() int  { return costSearch + costList }
func ChannelVideosCost() int   { return costSearch + costList }
func VideoCategoriesCost() int { return costList }

// Client acessa a API de Dados do YouTube v3.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient cria um cliente com a chave de API informada.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{},
	}
}

// SearchVideos busca vídeos por termo e filtros. Dois passos, como a API
// exige: search.list devolve só IDs; videos.list detalha em lote.
func (c *Client) SearchVideos(ctx context.Context, req *models.TrendsRequest) ([]models.Video, error) {
	params := url.Values{}
	params.Set("q", req.Query)
	params.Set("type", "video")
	params.Set("part", "id")
	params.Set("maxResults", strconv.Itoa(req.MaxResults))
	params.Set("order", req.Order)
	if req.Country != "" {
		params.Set("regionCode", req.Country)
	}
	if req.Duration != "" {
		params.Set("videoDuration", req.Duration)
	}
	if req.PublishedAfter != "" {
		params.Set("publishedAfter", req.PublishedAfter)
	}
	if req.PublishedBefore != "" {
		params.Set("publishedBefore", req.PublishedBefore)
	}
	if req.Language != "" {
		params.Set("relevanceLanguage", req.Language)
	}

	var search searchListResponse
	if err := c.getJSON(ctx, "search", params, &search); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(search.Items))
	for _, item := range search.Items {
		if item.ID.VideoID != "" {
			ids = append(ids, item.ID.VideoID)
		}
	}
	if len(ids) == 0 {
		return []models.Video{}, nil
	}

	return c.listVideos(ctx, ids)
}

// TrendingVideos retorna o chart de vídeos em alta de uma região, com filtro
// opcional de categoria.
func (c *Client) TrendingVideos(ctx context.Context, country, categoryID string, maxResults int) ([]models.Video, error) {
	params := url.Values{}
	params.Set("part", "snippet,statistics,contentDetails")
	params.Set("chart", "mostPopular")
	params.Set("regionCode", country)
	params.Set("maxResults", strconv.Itoa(maxResults))
	if categoryID != "" {
		params.Set("videoCategoryId", categoryID)
	}

	var resp videoListResponse
	if err := c.getJSON(ctx, "videos", params, &resp); err != nil {
		return nil, err
	}
	return videosToModels(resp.Items), nil
}

// SearchChannels busca canais por termo e detalha suas estatísticas.
func (c *Client) SearchChannels(ctx context.Context, query, country string, maxResults int) ([]models.Channel, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("type", "channel")
	params.Set("part", "id")
	params.Set("maxResults", strconv.Itoa(maxResults))
	if country != "" {
		params.Set("regionCode", country)
	}

	var search searchListResponse
	if err := c.getJSON(ctx, "search", params, &search); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(search.Items))
	for _, item := range search.Items {
		if item.ID.ChannelID != "" {
			ids = append(ids, item.ID.ChannelID)
		}
	}
	if len(ids) == 0 {
		return []models.Channel{}, nil
	}

	listParams := url.Values{}
	listParams.Set("part", "snippet,statistics")
	listParams.Set("id", strings.Join(ids, ","))

	var resp channelListResponse
	if err := c.getJSON(ctx, "channels", listParams, &resp); err != nil {
		return nil, err
	}

	channels := make([]models.Channel, 0, len(resp.Items))
	for _, item := range resp.Items {
		channels = append(channels, item.toModel())
	}
	return channels, nil
}

// ChannelVideos retorna vídeos de um canal específico.
func (c *Client) ChannelVideos(ctx context.Context, channelID string, maxResults int, order string) ([]models.Video, error) {
	params := url.Values{}
	params.Set("part", "id")
	params.Set("channelId", channelID)
	params.Set("type", "video")
	params.Set("maxResults", strconv.Itoa(maxResults))
	if order != "" {
		params.Set("order", order)
	}

	var search searchListResponse
	if err := c.getJSON(ctx, "search", params, &search); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(search.Items))
	for _, item := range search.Items {
		if item.ID.VideoID != "" {
			ids = append(ids, item.ID.VideoID)
		}
	}
	if len(ids) == 0 {
		return []models.Video{}, nil
	}

	return c.listVideos(ctx, ids)
}

// VideoCategories lista as categorias oficiais de vídeo de uma região.
func (c *Client) VideoCategories(ctx context.Context, country string) ([]models.VideoCategory, error) {
	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("regionCode", country)

	var resp categoryListResponse
	if err := c.getJSON(ctx, "videoCategories", params, &resp); err != nil {
		return nil, err
	}

	categories := make([]models.VideoCategory, 0, len(resp.Items))
	for _, item := range resp.Items {
		categories = append(categories, models.VideoCategory{
			ID:         item.ID,
			Title:      item.Snippet.Title,
			Assignable: item.Snippet.Assignable,
		})
	}
	return categories, nil
}

// listVideos detalha vídeos por ID em uma única chamada em lote.
func (c *Client) listVideos(ctx context.Context, ids []string) ([]models.Video, error) {
	params := url.Values{}
	params.Set("part", "snippet,statistics,contentDetails")
	params.Set("id", strings.Join(ids, ","))

	var resp videoListResponse
	if err := c.getJSON(ctx, "videos", params, &resp); err != nil {
		return nil, err
	}
	return videosToModels(resp.Items), nil
}

// getJSON executa uma chamada GET e decodifica a resposta, traduzindo
// respostas de erro da API para a taxonomia do domínio.
func (c *Client) getJSON(ctx context.Context, resource string, params url.Values, out interface{}) error {
	params.Set("key", c.apiKey)

	endpoint := fmt.Sprintf("%s/%s?%s", c.baseURL, resource, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return &models.UpstreamError{Message: err.Error()}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr errorResponse
		message := resp.Status
		if decodeErr := json.NewDecoder(resp.Body).Decode(&apiErr); decodeErr == nil && apiErr.Error.Message != "" {
			message = apiErr.Error.Message
		}
		return &models.UpstreamError{StatusCode: resp.StatusCode, Message: message}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &models.UpstreamError{Message: fmt.Sprintf("payload malformado: %v", err)}
	}
	return nil
}

func videosToModels(items []videoItem) []models.Video {
	videos := make([]models.Video, 0, len(items))
	for _, item := range items {
		videos = append(videos, item.toModel())
	}
	return videos
}
