package ranking

// Normalizer rescala métricas para a faixa [0,1] relativa ao conjunto de
// resultados corrente (nunca global).
type Normalizer struct{}

// NewNormalizer cria um novo normalizer.
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// MinMax normaliza os valores para [0,1] via (x - min) / (max - min).
// Conjunto degenerado (max == min) devolve 0.5 para todos os itens, evitando
// divisão por zero.
func (n *Normalizer) MinMax(values []float64) []float64 {
	if len(values) == 0 {
		return nil
	}

	minVal, maxVal := values[0], values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}

	out := make([]float64, len(values))
	if maxVal == minVal {
		for i := range out {
			out[i] = 0.5
		}
		return out
	}

	for i, v := range values {
		out[i] = (v - minVal) / (maxVal - minVal)
	}
	return out
}
