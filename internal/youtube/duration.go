package youtube

import "regexp"

var durationRe = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)

// ParseDuration converte uma duração ISO 8601 da API (ex: "PT1H2M30S") em
// segundos. Durações ausentes ou malformadas resultam em 0.
func ParseDuration(iso string) int64 {
	m := durationRe.FindStringSubmatch(iso)
	if m == nil {
		return 0
	}
	var total int64
	units := []int64{3600, 60, 1}
	for i, group := range m[1:] {
		if group == "" {
			continue
		}
		var n int64
		for _, ch := range group {
			n = n*10 + int64(ch-'0')
		}
		total += n * units[i]
	}
	return total
}
