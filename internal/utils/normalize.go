package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// RemoveDiacritics remove acentos e diacríticos de uma string.
// Exemplo: "música" -> "musica", "führung" -> "fuhrung"
func RemoveDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)
	return result
}

// NormalizeToken normaliza um token para agrupamento de quase-duplicatas:
// minúsculas, sem diacríticos e sem pontuação nas bordas.
func NormalizeToken(token string) string {
	token = strings.ToLower(strings.TrimSpace(token))
	token = RemoveDiacritics(token)
	return strings.TrimFunc(token, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}
