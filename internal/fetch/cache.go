// Package fetch implementa a camada que media toda chamada ao upstream:
// cache com TTL, chave determinística por parâmetros normalizados e o
// coordenador que coalesce requisições idênticas e cobra quota.
package fetch

import (
	"container/list"
	"sync"
	"time"
)

// DefaultTTL é o tempo de vida padrão de uma entrada de cache.
const DefaultTTL = 3600 * time.Second

// cacheEntry representa uma entrada no cache.
type cacheEntry struct {
	key        string
	value      interface{}
	expiration time.Time
}

// Cache é um cache LRU thread-safe com TTL por entrada. A expiração é um
// corte duro: um Get sobre entrada expirada conta como miss e a remove.
type Cache struct {
	capacity int
	mu       sync.Mutex
	entries  map[string]*list.Element
	lruList  *list.List

	now func() time.Time
}

// NewCache cria um cache com a capacidade especificada.
func NewCache(capacity int) *Cache {
	if capacity <= 0 {
		capacity = 500
	}
	return &Cache{
		capacity: capacity,
		entries:  make(map[string]*list.Element),
		lruList:  list.New(),
		now:      time.Now,
	}
}

// Get recupera um valor do cache. O segundo retorno indica hit.
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	element, found := c.entries[key]
	if !found {
		return nil, false
	}

	entry := element.Value.(*cacheEntry)
	if c.now().After(entry.expiration) {
		c.removeElement(element)
		return nil, false
	}

	c.lruList.MoveToBack(element)
	return entry.value, true
}

// Put adiciona ou atualiza um valor com o TTL informado.
func (c *Cache) Put(key string, value interface{}, ttl time.Duration) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	expiration := c.now().Add(ttl)

	if element, found := c.entries[key]; found {
		c.lruList.MoveToBack(element)
		entry := element.Value.(*cacheEntry)
		entry.value = value
		entry.expiration = expiration
		return
	}

	if c.lruList.Len() >= c.capacity {
		if oldest := c.lruList.Front(); oldest != nil {
			c.removeElement(oldest)
		}
	}

	element := c.lruList.PushBack(&cacheEntry{
		key:        key,
		value:      value,
		expiration: expiration,
	})
	c.entries[key] = element
}

// Delete remove uma entrada do cache.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if element, found := c.entries[key]; found {
		c.removeElement(element)
	}
}

// Clear limpa todo o cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*list.Element)
	c.lruList.Init()
}

// Size retorna o número de entradas (incluindo expiradas ainda não varridas).
func (c *Cache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.lruList.Len()
}

// CleanupExpired varre o cache removendo entradas expiradas e retorna quantas
// foram removidas.
func (c *Cache) CleanupExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	removed := 0

	var next *list.Element
	for element := c.lruList.Front(); element != nil; element = next {
		next = element.Next()
		entry := element.Value.(*cacheEntry)
		if now.After(entry.expiration) {
			c.removeElement(element)
			removed++
		}
	}

	return removed
}

// removeElement remove um elemento da lista e do mapa (chamar com lock).
func (c *Cache) removeElement(element *list.Element) {
	c.lruList.Remove(element)
	entry := element.Value.(*cacheEntry)
	delete(c.entries, entry.key)
}
