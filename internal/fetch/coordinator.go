package fetch

import (
	"context"
	"errors"
	"log"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/tubetrends/app-trend-engine/internal/models"
	"github.com/tubetrends/app-trend-engine/internal/quota"
)

// UpstreamFunc executa a chamada real ao upstream para uma requisição lógica.
type UpstreamFunc func(ctx context.Context) (interface{}, error)

// Result descreve o desfecho de um Fetch.
type Result struct {
	Value interface{}
	// Cached indica hit de cache (nenhuma unidade de quota cobrada).
	Cached bool
	// Shared indica que o resultado veio de um voo coalescido com outras
	// chamadas concorrentes para a mesma chave.
	Shared bool
}

// Coordinator é o ponto único por onde passa toda chamada ao upstream.
// Por chave: cache hit retorna direto; num miss, chamadas concorrentes
// idênticas são coalescidas em um único voo (no máximo uma chamada upstream
// em andamento por chave); a quota é reservada antes de chamar o upstream; o
// sucesso é cacheado com o TTL padrão e a falha nunca é cacheada.
type Coordinator struct {
	cache   *Cache
	ledger  *quota.Ledger
	ttl     time.Duration
	timeout time.Duration

	group singleflight.Group
}

// NewCoordinator cria um coordenador sobre o cache e o ledger informados.
func NewCoordinator(cache *Cache, ledger *quota.Ledger, ttl, timeout time.Duration) *Coordinator {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Coordinator{
		cache:   cache,
		ledger:  ledger,
		ttl:     ttl,
		timeout: timeout,
	}
}

// Fetch resolve uma requisição lógica identificada por key com custo
// estimado cost. Se o contexto do chamador for cancelado enquanto espera um
// voo coalescido, apenas este chamador desiste; o voo continua para os demais.
func (c *Coordinator) Fetch(ctx context.Context, key string, cost int, call UpstreamFunc) (*Result, error) {
	if value, ok := c.cache.Get(key); ok {
		return &Result{Value: value, Cached: true}, nil
	}

	ch := c.group.DoChan(key, func() (interface{}, error) {
		// Outro voo pode ter populado o cache enquanto esperávamos o slot.
		if value, ok := c.cache.Get(key); ok {
			return value, nil
		}

		res := c.ledger.Reserve(cost)
		if !res.Granted {
			return nil, &models.QuotaExceededError{
				Requested: cost,
				Used:      res.UsedAfter,
				Budget:    c.ledger.Status().Budget,
				ResetAt:   c.ledger.ResetAt(),
			}
		}
		if res.Warning {
			log.Printf("aviso: consumo de quota em %.0f%% do orçamento diário", res.PercentUsed*100)
		}

		// O voo não herda o cancelamento do primeiro chamador: desistências
		// individuais não derrubam os demais esperando o mesmo resultado.
		fctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.timeout)
		defer cancel()

		value, err := call(fctx)
		if err != nil {
			return nil, upstreamError(err)
		}

		c.cache.Put(key, value, c.ttl)
		return value, nil
	})

	select {
	case r := <-ch:
		if r.Err != nil {
			return nil, r.Err
		}
		return &Result{Value: r.Val, Shared: r.Shared}, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// upstreamError converte a falha do upstream para a taxonomia do domínio.
// Timeout é uma variante de UpstreamError.
func upstreamError(err error) error {
	var ue *models.UpstreamError
	if errors.As(err, &ue) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &models.UpstreamError{Message: err.Error(), Timeout: true}
	}
	return &models.UpstreamError{Message: err.Error()}
}
