package cache

import (
	"sync"
	"testing"
	"time"

	"gestao_orcamentos/internal/domain/entities"
)

func TestOrcamentoListCache(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	c := NewOrcamentoListCache()
	c.now = func() time.Time { return at }

	if c.Snapshot().Loaded() {
		t.Fatalf("expected empty cache")
	}

	list := []entities.Orcamento{{ID: 1}, {ID: 2}}
	c.Store(list)
	list[0].ID = 99

	snap := c.Snapshot()
	if !snap.Loaded() || !snap.FetchedAt.Equal(at) || len(snap.Data) != 2 || snap.Data[0].ID != 1 {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}

	c.Fail("Erro ao buscar orçamentos.")
	snap = c.Snapshot()
	if snap.Error != "Erro ao buscar orçamentos." || len(snap.Data) != 2 {
		t.Fatalf("expected previous data kept with error, got %+v", snap)
	}

	c.Store([]entities.Orcamento{{ID: 3}})
	if snap = c.Snapshot(); snap.Error != "" || len(snap.Data) != 1 {
		t.Fatalf("expected error cleared by store, got %+v", snap)
	}

	c.Invalidate()
	if snap = c.Snapshot(); snap.Loaded() || len(snap.Data) != 0 {
		t.Fatalf("expected invalidated cache, got %+v", snap)
	}
}

func TestOrcamentoListCache_Concurrent(t *testing.T) {
	c := NewOrcamentoListCache()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(3)
		go func(id int64) {
			defer wg.Done()
			c.Store([]entities.Orcamento{{ID: id}})
		}(int64(i))
		go func() {
			defer wg.Done()
			_ = c.Snapshot()
		}()
		go func() {
			defer wg.Done()
			c.Fail("x")
		}()
	}
	wg.Wait()
}
