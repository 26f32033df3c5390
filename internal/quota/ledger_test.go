package quota

import (
	"sync"
	"testing"
	"time"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestReserve(t *testing.T) {
	base := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	t.Run("Reserva dentro do orçamento", func(t *testing.T) {
		l := newLedger(10000, fixedClock(base))
		res := l.Reserve(100)
		if !res.Granted {
			t.Fatal("Reserve(100) deveria ser concedida")
		}
		if res.UsedAfter != 100 {
			t.Errorf("UsedAfter = %d, want 100", res.UsedAfter)
		}
		if res.PercentUsed != 0.01 {
			t.Errorf("PercentUsed = %f, want 0.01", res.PercentUsed)
		}
		if res.Warning {
			t.Error("Warning não deveria estar ativo em 1%")
		}
	})

	t.Run("Reserva que estoura o orçamento não muta o estado", func(t *testing.T) {
		l := newLedger(10000, fixedClock(base))
		if res := l.Reserve(9999); !res.Granted {
			t.Fatal("Reserve(9999) deveria ser concedida")
		}

		res := l.Reserve(2)
		if res.Granted {
			t.Error("Reserve(2) com 9999/10000 usados deveria ser negada")
		}
		if res.UsedAfter != 9999 {
			t.Errorf("UsedAfter = %d, want 9999 (estado inalterado)", res.UsedAfter)
		}

		// Uma unidade ainda cabe
		if res := l.Reserve(1); !res.Granted {
			t.Error("Reserve(1) deveria caber no orçamento restante")
		}
	})

	t.Run("Warning a partir de 80 por cento", func(t *testing.T) {
		l := newLedger(10000, fixedClock(base))
		if res := l.Reserve(7999); res.Warning {
			t.Error("Warning ativo abaixo do limiar")
		}
		if res := l.Reserve(1); !res.Warning {
			t.Error("Warning deveria ativar exatamente em 80%")
		}
	})
}

func TestWindowRollover(t *testing.T) {
	now := time.Date(2026, 8, 30, 23, 0, 0, 0, time.UTC)
	mu := sync.Mutex{}
	clock := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return now
	}
	advance := func(d time.Duration) {
		mu.Lock()
		now = now.Add(d)
		mu.Unlock()
	}

	l := newLedger(10000, clock)
	l.Reserve(5000)

	// Ainda na mesma janela
	if st := l.Status(); st.Used != 5000 {
		t.Fatalf("Used = %d, want 5000", st.Used)
	}

	// Passa da meia-noite: uso zera, janela avança um dia
	advance(2 * time.Hour)
	st := l.Status()
	if st.Used != 0 {
		t.Errorf("Used = %d após rollover, want 0", st.Used)
	}
	wantReset := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	if !st.ResetAt.Equal(wantReset) {
		t.Errorf("ResetAt = %s, want %s", st.ResetAt, wantReset)
	}

	// Vários dias parados: a janela avança até cobrir o agora
	advance(72 * time.Hour)
	st = l.Status()
	if !st.ResetAt.After(clock().UTC()) {
		t.Errorf("ResetAt = %s deveria estar no futuro de %s", st.ResetAt, clock().UTC())
	}
}

func TestConcurrentReservations(t *testing.T) {
	base := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	l := newLedger(1000, fixedClock(base))

	var wg sync.WaitGroup
	granted := make(chan int, 200)
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if res := l.Reserve(10); res.Granted {
				granted <- 10
			}
		}()
	}
	wg.Wait()
	close(granted)

	total := 0
	for u := range granted {
		total += u
	}
	if total > 1000 {
		t.Errorf("reservas concedidas somam %d, ultrapassando o orçamento de 1000", total)
	}
	if st := l.Status(); st.Used != total {
		t.Errorf("Used = %d, want %d", st.Used, total)
	}
}
