// Package insights gera as frases de insight que acompanham uma comparação
// de nichos. A geração base é heurística e determinística; quando um cliente
// Gemini está configurado, as frases são opcionalmente refinadas pelo modelo,
// com fallback silencioso para a versão heurística em caso de erro.
package insights

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/tubetrends/app-trend-engine/internal/models"
)

// maxInsights limita o número de frases por comparação.
const maxInsights = 5

// topTopicsForOverlap define quantos tópicos de cada nicho entram no cálculo
// de sobreposição.
const topTopicsForOverlap = 5

// minSharedTopics é o mínimo de tópicos compartilhados para gerar um insight
// de afinidade entre dois nichos.
const minSharedTopics = 2

// Generator produz insights textuais sobre os resultados de uma comparação.
type Generator struct {
	client *genai.Client
	model  string
}

// NewGenerator cria um gerador. client pode ser nil: nesse caso apenas a
// geração heurística é usada.
func NewGenerator(client *genai.Client, model string) *Generator {
	return &Generator{client: client, model: model}
}

// Compare gera insights sobre os nichos bem-sucedidos de uma comparação. As
// frases heurísticas são sempre calculadas primeiro e servem de fallback; o
// refinamento via modelo nunca altera as métricas, apenas a redação.
func (g *Generator) Compare(ctx context.Context, results map[string]models.NicheComparisonResult) []string {
	heuristic := g.heuristicInsights(results)
	if g.client == nil || len(heuristic) == 0 {
		return heuristic
	}

	refined, err := g.refine(ctx, heuristic)
	if err != nil {
		log.Printf("Erro ao refinar insights: %v", err)
		return heuristic
	}
	return refined
}

// heuristicInsights deriva as frases diretamente das métricas: nicho com
// mais views, nicho com maior engajamento e pares de nichos com tópicos em
// comum. A iteração segue os nomes em ordem alfabética para manter a saída
// reprodutível.
func (g *Generator) heuristicInsights(results map[string]models.NicheComparisonResult) []string {
	if len(results) == 0 {
		return []string{}
	}

	niches := make([]string, 0, len(results))
	for niche := range results {
		niches = append(niches, niche)
	}
	sort.Strings(niches)

	var insights []string

	topViews := niches[0]
	topEngagement := niches[0]
	for _, niche := range niches[1:] {
		if results[niche].Metrics.AvgViews > results[topViews].Metrics.AvgViews {
			topViews = niche
		}
		if results[niche].Metrics.AvgEngagement > results[topEngagement].Metrics.AvgEngagement {
			topEngagement = niche
		}
	}

	insights = append(insights, fmt.Sprintf(
		"The '%s' niche has the highest average views with %d views per video.",
		topViews, int64(results[topViews].Metrics.AvgViews)))

	insights = append(insights, fmt.Sprintf(
		"The '%s' niche has the highest audience engagement with an average engagement rate of %.1f%%.",
		topEngagement, results[topEngagement].Metrics.AvgEngagement*100))

	topicSets := make(map[string]map[string]bool, len(niches))
	for _, niche := range niches {
		topics := results[niche].Topics
		if len(topics) > topTopicsForOverlap {
			topics = topics[:topTopicsForOverlap]
		}
		set := make(map[string]bool, len(topics))
		for _, topic := range topics {
			set[topic.Name] = true
		}
		topicSets[niche] = set
	}

	for i := 0; i < len(niches); i++ {
		for j := i + 1; j < len(niches); j++ {
			var shared []string
			for name := range topicSets[niches[i]] {
				if topicSets[niches[j]][name] {
					shared = append(shared, name)
				}
			}
			if len(shared) < minSharedTopics {
				continue
			}
			sort.Strings(shared)
			insights = append(insights, fmt.Sprintf(
				"The '%s' and '%s' niches share similar topics: %s.",
				niches[i], niches[j], strings.Join(shared, ", ")))
		}
	}

	if len(insights) > maxInsights {
		insights = insights[:maxInsights]
	}
	return insights
}

// refine pede ao modelo uma redação mais clara das frases, preservando todos
// os números. A resposta deve ser um array JSON de strings.
func (g *Generator) refine(ctx context.Context, insights []string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	prompt := fmt.Sprintf(`Reescreva os insights abaixo sobre nichos do YouTube de forma mais clara e direta, mantendo TODOS os números exatamente como estão:

%s

Retorne APENAS um array JSON de strings, uma por insight, na mesma ordem.`, strings.Join(insights, "\n"))

	content := genai.NewContentFromText(prompt, genai.RoleUser)

	resp, err := g.client.Models.GenerateContent(ctx, g.model, []*genai.Content{content}, nil)
	if err != nil {
		return nil, err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("resposta vazia do modelo")
	}

	jsonStr := extractJSONArray(fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]))

	var refined []string
	if err := json.Unmarshal([]byte(jsonStr), &refined); err != nil {
		return nil, fmt.Errorf("parse da resposta: %w", err)
	}
	if len(refined) != len(insights) {
		return nil, fmt.Errorf("modelo devolveu %d insights, esperava %d", len(refined), len(insights))
	}
	return refined, nil
}

// extractJSONArray extrai um array JSON de uma resposta que pode vir em
// blocos de código markdown.
func extractJSONArray(s string) string {
	if idx := strings.Index(s, "```json"); idx != -1 {
		s = s[idx+7:]
		if endIdx := strings.Index(s, "```"); endIdx != -1 {
			s = s[:endIdx]
		}
	} else if idx := strings.Index(s, "```"); idx != -1 {
		s = s[idx+3:]
		if endIdx := strings.Index(s, "```"); endIdx != -1 {
			s = s[:endIdx]
		}
	}

	if idx := strings.Index(s, "["); idx != -1 {
		s = s[idx:]
	}
	return strings.TrimSpace(s)
}
