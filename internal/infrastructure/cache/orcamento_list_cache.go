package cache

import (
	"gestao_orcamentos/internal/domain/entities"
	"gestao_orcamentos/internal/usecase/interfaces"
	"sync"
	"time"
)

// OrcamentoListCache keeps the last budget list fetched from the backend.
//
// A failed refresh keeps the previous data and records the message, so the
// list page can show both. Invalidate drops everything after a mutation.
type OrcamentoListCache struct {
	mu        sync.RWMutex
	data      []entities.Orcamento
	err       string
	fetchedAt time.Time
	now       func() time.Time
}

var _ interfaces.IOrcamentoListCache = (*OrcamentoListCache)(nil)

func NewOrcamentoListCache() *OrcamentoListCache {
	return &OrcamentoListCache{now: time.Now}
}

func (c *OrcamentoListCache) Store(list []entities.Orcamento) {
	cp := make([]entities.Orcamento, len(list))
	copy(cp, list)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = cp
	c.err = ""
	c.fetchedAt = c.now().UTC()
}

func (c *OrcamentoListCache) Fail(message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.err = message
}

func (c *OrcamentoListCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = nil
	c.err = ""
	c.fetchedAt = time.Time{}
}

func (c *OrcamentoListCache) Snapshot() interfaces.OrcamentoListSnapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	cp := make([]entities.Orcamento, len(c.data))
	copy(cp, c.data)
	return interfaces.OrcamentoListSnapshot{Data: cp, Error: c.err, FetchedAt: c.fetchedAt}
}
