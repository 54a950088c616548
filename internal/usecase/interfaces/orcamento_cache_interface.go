package interfaces

import (
	"gestao_orcamentos/internal/domain/entities"
	"time"
)

// OrcamentoListSnapshot is a copy of the cached budget list state.
type OrcamentoListSnapshot struct {
	Data      []entities.Orcamento
	Error     string
	FetchedAt time.Time
}

func (s OrcamentoListSnapshot) Loaded() bool {
	return !s.FetchedAt.IsZero()
}

// IOrcamentoListCache is the single client-side cache kept by the app: the
// last budget list fetched from the backend.
type IOrcamentoListCache interface {
	Store(list []entities.Orcamento)
	Fail(message string)
	Invalidate()
	Snapshot() OrcamentoListSnapshot
}
