// Package quota implementa o ledger de consumo diário da API do YouTube.
//
// O ledger é puro bookkeeping: nenhuma I/O, uma única instância por processo,
// injetada explicitamente em quem precisa (nunca estado global). A janela
// diária é avaliada de forma preguiçosa a cada chamada; não há timer de
// background.
package quota

import (
	"sync"
	"time"

	"github.com/tubetrends/app-trend-engine/internal/models"
)

// WarningThreshold é a fração do orçamento a partir da qual o consumo passa a
// ser sinalizado como aviso aos consumidores.
const WarningThreshold = 0.80

// Reservation é o resultado de uma tentativa de reserva de unidades.
type Reservation struct {
	Granted     bool
	UsedAfter   int
	PercentUsed float64
	Warning     bool
}

// Ledger controla o consumo de unidades contra o orçamento diário.
type Ledger struct {
	mu sync.Mutex

	budget        int
	used          int
	windowStart   time.Time
	windowResetAt time.Time

	now func() time.Time
}

// NewLedger cria um ledger com o orçamento diário informado. A janela começa
// na meia-noite UTC corrente e reseta a cada 24h.
func NewLedger(budget int) *Ledger {
	return newLedger(budget, time.Now)
}

func newLedger(budget int, now func() time.Time) *Ledger {
	start := now().UTC().Truncate(24 * time.Hour)
	return &Ledger{
		budget:        budget,
		windowStart:   start,
		windowResetAt: start.Add(24 * time.Hour),
		now:           now,
	}
}

// Reserve tenta reservar units unidades. Falha sem mutar o estado quando a
// reserva estouraria o orçamento. A verificação e o incremento acontecem sob
// a mesma seção crítica: reservas concorrentes nunca ultrapassam o orçamento.
func (l *Ledger) Reserve(units int) Reservation {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.rolloverLocked()

	if l.used+units > l.budget {
		pct := percent(l.used, l.budget)
		return Reservation{
			Granted:     false,
			UsedAfter:   l.used,
			PercentUsed: pct,
			Warning:     pct >= WarningThreshold,
		}
	}

	l.used += units
	pct := percent(l.used, l.budget)
	return Reservation{
		Granted:     true,
		UsedAfter:   l.used,
		PercentUsed: pct,
		Warning:     pct >= WarningThreshold,
	}
}

// Status retorna a visão corrente do ledger.
func (l *Ledger) Status() models.QuotaStatus {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.rolloverLocked()

	pct := percent(l.used, l.budget)
	return models.QuotaStatus{
		Used:      l.used,
		Budget:    l.budget,
		Percent:   pct,
		Remaining: l.budget - l.used,
		Warning:   pct >= WarningThreshold,
		ResetAt:   l.windowResetAt,
	}
}

// Usage retorna o side-channel compacto anexado às respostas.
func (l *Ledger) Usage() models.QuotaUsage {
	st := l.Status()
	return models.QuotaUsage{
		Used:    st.Used,
		Budget:  st.Budget,
		Percent: st.Percent,
		Warning: st.Warning,
	}
}

// ResetAt retorna o fim da janela corrente, usado em erros de quota.
func (l *Ledger) ResetAt() time.Time {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.rolloverLocked()
	return l.windowResetAt
}

// rolloverLocked zera o uso quando a janela corrente já terminou, avançando-a
// em passos de um dia até cobrir o instante atual. Deve ser chamado com o
// lock adquirido.
func (l *Ledger) rolloverLocked() {
	now := l.now().UTC()
	if now.Before(l.windowResetAt) {
		return
	}
	for !now.Before(l.windowResetAt) {
		l.windowStart = l.windowResetAt
		l.windowResetAt = l.windowResetAt.Add(24 * time.Hour)
	}
	l.used = 0
}

func percent(used, budget int) float64 {
	if budget <= 0 {
		return 1.0
	}
	return float64(used) / float64(budget)
}
