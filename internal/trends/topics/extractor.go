// Package topics implementa a inferência de tópicos e nichos: extração de
// palavras-chave dos metadados dos vídeos, geração heurística de ideias de
// conteúdo e sugestão de nichos relacionados por sobreposição de keywords.
// Toda a inferência é determinística: a mesma entrada produz sempre a mesma
// saída, sem nenhum componente aleatório.
package topics

import (
	"regexp"
	"sort"
	"strings"

	"github.com/tubetrends/app-trend-engine/internal/models"
	"github.com/tubetrends/app-trend-engine/internal/utils"
)

// Valores padrão da extração de tópicos.
const (
	DefaultMinTokenLength = 3
	DefaultMinCount       = 2
	DefaultMaxTopics      = 20
	maxTagWords           = 3
)

// formatPatterns reconhece formatos recorrentes de título (tutoriais,
// reviews, listas, desafios). O nome do formato é o trecho casado no título.
var formatPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d+\s*tips`),
	regexp.MustCompile(`how\s+to`),
	regexp.MustCompile(`tutorial`),
	regexp.MustCompile(`guide`),
	regexp.MustCompile(`review`),
	regexp.MustCompile(`top\s*\d+`),
	regexp.MustCompile(`best\s*\d+`),
	regexp.MustCompile(`worst\s*\d+`),
	regexp.MustCompile(`\bvs\.?\b`),
	regexp.MustCompile(`versus`),
	regexp.MustCompile(`comparison`),
	regexp.MustCompile(`react(?:ion)?s?`),
	regexp.MustCompile(`challenge`),
	regexp.MustCompile(`interview`),
	regexp.MustCompile(`explained`),
	regexp.MustCompile(`for beginners`),
	regexp.MustCompile(`gameplay`),
	regexp.MustCompile(`walkthrough`),
	regexp.MustCompile(`highlights?`),
	regexp.MustCompile(`montage`),
	regexp.MustCompile(`podcast`),
	regexp.MustCompile(`vlog`),
}

// stopwords filtra termos sem valor semântico na tokenização de títulos e
// descrições. A lista é uma constante de configuração do extrator, não um
// número mágico escondido no algoritmo.
var stopwords = map[string]bool{
	"the": true, "and": true, "for": true, "are": true, "but": true,
	"not": true, "you": true, "all": true, "can": true, "was": true,
	"our": true, "out": true, "get": true, "has": true, "had": true,
	"him": true, "her": true, "its": true, "let": true, "put": true,
	"say": true, "she": true, "too": true, "use": true, "with": true,
	"this": true, "that": true, "from": true, "they": true, "will": true,
	"have": true, "what": true, "when": true, "your": true, "how": true,
	"who": true, "why": true, "where": true, "which": true, "their": true,
	"about": true, "there": true, "these": true, "those": true,
	"into": true, "more": true, "most": true, "some": true, "just": true,
	"than": true, "then": true, "them": true, "were": true, "been": true,
	"here": true, "only": true, "over": true, "very": true, "like": true,
	"make": true, "made": true, "best": true, "new": true, "video": true,
	"videos": true, "watch": true, "youtube": true, "channel": true,
	"subscribe": true, "http": true, "https": true, "www": true, "com": true,
}

// ExtractorConfig parametriza a extração de tópicos.
type ExtractorConfig struct {
	// MinTokenLength descarta tokens mais curtos que este limite.
	MinTokenLength int
	// MinCount descarta tópicos com frequência abaixo deste limite.
	MinCount int
	// MaxTopics limita o número de tópicos retornados.
	MaxTopics int
}

// Extractor extrai tópicos em alta dos títulos, tags e descrições de um
// conjunto de vídeos.
type Extractor struct {
	minTokenLength int
	minCount       int
	maxTopics      int
}

// NewExtractor cria um extrator com a configuração informada, aplicando os
// valores padrão aos campos zerados.
func NewExtractor(cfg ExtractorConfig) *Extractor {
	if cfg.MinTokenLength <= 0 {
		cfg.MinTokenLength = DefaultMinTokenLength
	}
	if cfg.MinCount <= 0 {
		cfg.MinCount = DefaultMinCount
	}
	if cfg.MaxTopics <= 0 {
		cfg.MaxTopics = DefaultMaxTopics
	}
	return &Extractor{
		minTokenLength: cfg.MinTokenLength,
		minCount:       cfg.MinCount,
		maxTopics:      cfg.MaxTopics,
	}
}

// Extract tokeniza títulos, tags e descrições do conjunto de vídeos e devolve
// os tópicos mais frequentes, ordenados por contagem decrescente. Tokens
// quase duplicados (diferindo em caixa, acentos ou pontuação nas bordas) são
// agrupados num único tópico via normalização. Conjuntos vazios devolvem uma
// lista vazia.
func (e *Extractor) Extract(videos []models.Video) []models.Topic {
	if len(videos) == 0 {
		return []models.Topic{}
	}

	counts := make(map[string]int)
	display := make(map[string]string)

	record := func(raw string, weight int) {
		normalized := utils.NormalizeToken(raw)
		if len(normalized) < e.minTokenLength || stopwords[normalized] {
			return
		}
		counts[normalized] += weight
		if _, ok := display[normalized]; !ok {
			display[normalized] = normalized
		}
	}

	for _, v := range videos {
		lowerTitle := strings.ToLower(v.Title)
		for _, pattern := range formatPatterns {
			if match := pattern.FindString(lowerTitle); match != "" {
				record(match, 1)
			}
		}

		for _, token := range strings.Fields(lowerTitle) {
			record(token, 1)
		}

		for _, tag := range v.Tags {
			if len(strings.Fields(tag)) > maxTagWords {
				continue
			}
			record(strings.ToLower(tag), 1)
		}

		for _, token := range strings.Fields(strings.ToLower(utils.StripMarkdown(v.Description))) {
			record(token, 1)
		}
	}

	topics := make([]models.Topic, 0, len(counts))
	maxCount := 0
	for name, count := range counts {
		if count < e.minCount {
			continue
		}
		topics = append(topics, models.Topic{Name: display[name], Count: count})
		if count > maxCount {
			maxCount = count
		}
	}

	for i := range topics {
		topics[i].Score = float64(topics[i].Count) / float64(maxCount)
	}

	sort.Slice(topics, func(i, j int) bool {
		if topics[i].Count != topics[j].Count {
			return topics[i].Count > topics[j].Count
		}
		return topics[i].Name < topics[j].Name
	})

	if len(topics) > e.maxTopics {
		topics = topics[:e.maxTopics]
	}

	return topics
}
