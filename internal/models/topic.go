package models

// Topic representa um tópico agregado (palavra-chave ou formato) extraído
// dos títulos, tags e descrições do conjunto analisado. Transiente: é
// recalculado a cada requisição e nunca persistido.
type Topic struct {
	Name  string  `json:"name"`
	Count int     `json:"count"`
	Score float64 `json:"score"`
}

// NicheSuggestion representa um nicho relacionado sugerido por overlap de
// palavras-chave com o catálogo de nichos candidatos.
type NicheSuggestion struct {
	Niche          string   `json:"niche"`
	Overlap        float64  `json:"overlap"`
	SharedKeywords []string `json:"shared_keywords,omitempty"`
}

// VideoCategory representa uma categoria oficial de vídeos do YouTube.
type VideoCategory struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Assignable bool   `json:"assignable"`
}
