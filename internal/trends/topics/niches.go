package topics

import (
	"sort"

	"github.com/tubetrends/app-trend-engine/internal/models"
	"github.com/tubetrends/app-trend-engine/internal/utils"
)

// DefaultMinOverlap é o limiar mínimo de sobreposição para sugerir um nicho.
const DefaultMinOverlap = 0.05

// channelOverlapWeight pondera a sobreposição de canais quando disponível:
// 80% keywords, 20% canais compartilhados.
const channelOverlapWeight = 0.2

// nicheCatalog é o catálogo fixo de nichos candidatos e suas palavras-chave
// características, já em forma normalizada.
var nicheCatalog = map[string][]string{
	"gaming": {
		"gaming", "gameplay", "game", "games", "gamer", "walkthrough",
		"playthrough", "speedrun", "esports", "console", "stream",
	},
	"technology": {
		"tech", "technology", "gadget", "gadgets", "smartphone", "laptop",
		"review", "unboxing", "software", "hardware", "app",
	},
	"cooking": {
		"cooking", "recipe", "recipes", "food", "kitchen", "baking",
		"chef", "meal", "dish", "ingredients", "tasty",
	},
	"fitness": {
		"fitness", "workout", "gym", "exercise", "training", "muscle",
		"cardio", "yoga", "health", "diet", "weight",
	},
	"travel": {
		"travel", "trip", "vlog", "adventure", "destination", "tour",
		"city", "country", "flight", "hotel", "explore",
	},
	"education": {
		"education", "learn", "learning", "tutorial", "course", "lesson",
		"explained", "science", "history", "math", "study",
	},
	"music": {
		"music", "song", "songs", "cover", "remix", "album", "artist",
		"concert", "guitar", "piano", "lyrics",
	},
	"beauty": {
		"beauty", "makeup", "skincare", "hair", "fashion", "style",
		"outfit", "cosmetics", "routine", "glow", "look",
	},
	"finance": {
		"finance", "money", "investing", "stocks", "crypto", "budget",
		"savings", "income", "trading", "wealth", "passive",
	},
	"diy": {
		"diy", "craft", "crafts", "build", "handmade", "woodworking",
		"repair", "home", "project", "tools", "restoration",
	},
	"comedy": {
		"comedy", "funny", "humor", "sketch", "prank", "parody",
		"memes", "reaction", "standup", "jokes", "laugh",
	},
}

// Suggester propõe nichos relacionados ao conjunto de tópicos analisado,
// medindo a sobreposição de keywords no estilo Jaccard contra o catálogo
// fixo de nichos candidatos.
type Suggester struct {
	minOverlap float64
}

// NewSuggester cria um sugestor com o limiar informado; valores não
// positivos caem no padrão.
func NewSuggester(minOverlap float64) *Suggester {
	if minOverlap <= 0 {
		minOverlap = DefaultMinOverlap
	}
	return &Suggester{minOverlap: minOverlap}
}

// Suggest devolve os nichos do catálogo cuja sobreposição de keywords com os
// tópicos informados supera o limiar mínimo, ordenados por sobreposição
// decrescente com desempate pelo nome. channelIDsByNiche, quando não nulo,
// adiciona um peso de canais compartilhados entre o resultado atual e cada
// nicho candidato.
func (s *Suggester) Suggest(topics []models.Topic, currentChannelIDs []string, channelIDsByNiche map[string][]string) []models.NicheSuggestion {
	if len(topics) == 0 {
		return []models.NicheSuggestion{}
	}

	topicSet := make(map[string]bool, len(topics))
	for _, topic := range topics {
		if normalized := utils.NormalizeToken(topic.Name); normalized != "" {
			topicSet[normalized] = true
		}
	}

	currentChannels := toSet(currentChannelIDs)

	suggestions := make([]models.NicheSuggestion, 0, len(nicheCatalog))
	for niche, keywords := range nicheCatalog {
		keywordSet := toSet(keywords)
		overlap, shared := jaccard(topicSet, keywordSet)

		if channels, ok := channelIDsByNiche[niche]; ok && len(currentChannels) > 0 {
			channelOverlap, _ := jaccard(currentChannels, toSet(channels))
			overlap = (1-channelOverlapWeight)*overlap + channelOverlapWeight*channelOverlap
		}

		if overlap < s.minOverlap {
			continue
		}

		sort.Strings(shared)
		suggestions = append(suggestions, models.NicheSuggestion{
			Niche:          niche,
			Overlap:        overlap,
			SharedKeywords: shared,
		})
	}

	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].Overlap != suggestions[j].Overlap {
			return suggestions[i].Overlap > suggestions[j].Overlap
		}
		return suggestions[i].Niche < suggestions[j].Niche
	})

	return suggestions
}

// KeywordOverlap mede a sobreposição Jaccard entre dois conjuntos de tópicos,
// devolvendo o índice e as keywords compartilhadas em ordem alfabética. Usado
// pela comparação de nichos para medir afinidade entre resultados.
func KeywordOverlap(a, b []models.Topic) (float64, []string) {
	setA := make(map[string]bool, len(a))
	for _, topic := range a {
		if normalized := utils.NormalizeToken(topic.Name); normalized != "" {
			setA[normalized] = true
		}
	}
	setB := make(map[string]bool, len(b))
	for _, topic := range b {
		if normalized := utils.NormalizeToken(topic.Name); normalized != "" {
			setB[normalized] = true
		}
	}

	overlap, shared := jaccard(setA, setB)
	sort.Strings(shared)
	return overlap, shared
}

// jaccard calcula |A∩B| / |A∪B| e devolve também os elementos da interseção.
func jaccard(a, b map[string]bool) (float64, []string) {
	if len(a) == 0 || len(b) == 0 {
		return 0, nil
	}

	var shared []string
	for item := range a {
		if b[item] {
			shared = append(shared, item)
		}
	}

	union := len(a) + len(b) - len(shared)
	if union == 0 {
		return 0, nil
	}
	return float64(len(shared)) / float64(union), shared
}

func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		if item != "" {
			set[item] = true
		}
	}
	return set
}
