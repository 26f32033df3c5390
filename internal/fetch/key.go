package fetch

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
)

// RequestKey gera a chave determinística de uma requisição lógica a partir
// dos parâmetros normalizados. Parâmetros com valor vazio são ignorados e a
// ordem de inserção não afeta a chave.
func RequestKey(prefix string, params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k, v := range params {
		if v == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for i, k := range keys {
		if i > 0 {
			sb.WriteByte('|')
		}
		sb.WriteString(k)
		sb.WriteByte('=')
		sb.WriteString(strings.ToLower(strings.TrimSpace(params[k])))
	}

	hash := sha256.Sum256([]byte(sb.String()))
	return prefix + ":" + hex.EncodeToString(hash[:16])
}
