package topics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tubetrends/app-trend-engine/internal/models"
)

// Limites do gerador de ideias.
const (
	maxIdeas          = 10
	maxFormatIdeas    = 3
	maxGeneralIdeas   = 5
	topVideosForIdeas = 5
	highEngagement    = 0.1
)

// formatKeywords identifica tópicos que representam um formato de vídeo em
// vez de um assunto.
var formatKeywords = []string{
	"how to", "guide", "tips", "review", "tutorial",
	"top", "best", "challenge", "reaction",
}

// IdeaGenerator produz sugestões de conteúdo acionáveis a partir dos tópicos
// extraídos e dos vídeos de melhor desempenho. É um gerador heurístico, sem
// nenhum modelo por trás: dado o mesmo conjunto de tópicos e vídeos, a lista
// de ideias é sempre a mesma, na mesma ordem.
type IdeaGenerator struct{}

// NewIdeaGenerator cria um gerador de ideias.
func NewIdeaGenerator() *IdeaGenerator {
	return &IdeaGenerator{}
}

// Generate combina os tópicos de maior frequência com os padrões de formato e
// duração observados nos vídeos mais vistos, devolvendo até dez sugestões
// sem duplicatas. Sem tópicos ou sem vídeos, devolve uma lista vazia.
func (g *IdeaGenerator) Generate(topics []models.Topic, videos []models.Video) []string {
	if len(topics) == 0 || len(videos) == 0 {
		return []string{}
	}

	durationDesc, avgMinutes := durationProfile(videos)

	var formatTopics, otherTopics []models.Topic
	for _, topic := range topics {
		if isFormatTopic(topic.Name) {
			formatTopics = append(formatTopics, topic)
		} else {
			otherTopics = append(otherTopics, topic)
		}
	}

	var ideas []string

	for i, topic := range formatTopics {
		if i >= maxFormatIdeas {
			break
		}
		name := strings.ToLower(topic.Name)
		switch {
		case strings.Contains(name, "how to"), strings.Contains(name, "guide"), strings.Contains(name, "tutorial"):
			ideas = append(ideas, fmt.Sprintf("Create a %s 'How To' video focusing on specific techniques or solutions", durationDesc))
		case strings.Contains(name, "review"):
			ideas = append(ideas, fmt.Sprintf("Produce a %s review video with clear pros and cons sections", durationDesc))
		case strings.Contains(name, "tips"):
			ideas = append(ideas, fmt.Sprintf("Make a %s tips video highlighting %s", durationDesc, topic.Name))
		case strings.Contains(name, "top"), strings.Contains(name, "best"):
			count := 10
			if avgMinutes < 10 {
				count = 5
			}
			ideas = append(ideas, fmt.Sprintf("Create a %s 'Top %d' countdown video", durationDesc, count))
		case strings.Contains(name, "challenge"):
			ideas = append(ideas, fmt.Sprintf("Try a %s challenge video that others can replicate", durationDesc))
		default:
			ideas = append(ideas, fmt.Sprintf("Create a %s video in the '%s' format popular in this niche", durationDesc, topic.Name))
		}
	}

	for i, topic := range otherTopics {
		if i >= maxGeneralIdeas {
			break
		}
		ideas = append(ideas, fmt.Sprintf("Create a %s video about '%s' with an eye-catching thumbnail", durationDesc, topic.Name))
	}

	if peakEngagement(videos) > highEngagement {
		ideas = append(ideas, fmt.Sprintf("Create a %s video that asks viewers questions or prompts discussion in comments", durationDesc))
	} else {
		ideas = append(ideas, fmt.Sprintf("Add clear calls-to-action throughout your %s videos to increase engagement", durationDesc))
	}

	return dedupe(ideas, maxIdeas)
}

func isFormatTopic(name string) bool {
	lower := strings.ToLower(name)
	for _, keyword := range formatKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

// durationProfile calcula a duração média dos cinco vídeos mais vistos e a
// classifica em curto, médio ou longo.
func durationProfile(videos []models.Video) (string, float64) {
	ranked := make([]models.Video, len(videos))
	copy(ranked, videos)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].ViewCount != ranked[j].ViewCount {
			return ranked[i].ViewCount > ranked[j].ViewCount
		}
		return ranked[i].ID < ranked[j].ID
	})
	if len(ranked) > topVideosForIdeas {
		ranked = ranked[:topVideosForIdeas]
	}

	var totalMinutes float64
	var counted int
	for _, v := range ranked {
		if v.DurationSeconds > 0 {
			totalMinutes += float64(v.DurationSeconds) / 60
			counted++
		}
	}

	avgMinutes := 10.0
	if counted > 0 {
		avgMinutes = totalMinutes / float64(counted)
	}

	switch {
	case avgMinutes < 10:
		return "short (3-5 minute)", avgMinutes
	case avgMinutes < 20:
		return "medium (10-15 minute)", avgMinutes
	default:
		return "long-form (20+ minute)", avgMinutes
	}
}

func peakEngagement(videos []models.Video) float64 {
	var peak float64
	for _, v := range videos {
		views := v.ViewCount
		if views <= 0 {
			views = 1
		}
		rate := float64(v.LikeCount+v.CommentCount) / float64(views)
		if rate > peak {
			peak = rate
		}
	}
	return peak
}

// dedupe remove duplicatas preservando a ordem da primeira ocorrência.
func dedupe(items []string, limit int) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
		if len(out) == limit {
			break
		}
	}
	return out
}
