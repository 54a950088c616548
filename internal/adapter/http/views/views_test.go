package views

import (
	request "gestao_orcamentos/internal/adapter/http/dto/request"
	"gestao_orcamentos/internal/domain/entities"
	"gestao_orcamentos/internal/usecase"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func renderPage(t *testing.T, name string, data any) string {
	t.Helper()
	r, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	w := httptest.NewRecorder()
	if err := r.Instance(name, data).Render(w); err != nil {
		t.Fatalf("render %s: %v", name, err)
	}
	return w.Body.String()
}

func TestMoney(t *testing.T) {
	cases := map[string]string{
		"0":        "R$ 0,00",
		"1234.56":  "R$ 1.234,56",
		"1500":     "R$ 1.500,00",
		"0.005":    "R$ 0,01",
		"98765432": "R$ 98.765.432,00",
	}
	for in, want := range cases {
		if got := Money(dec(in)); got != want {
			t.Fatalf("Money(%s): expected %q, got %q", in, want, got)
		}
	}
}

func TestQuantity(t *testing.T) {
	cases := map[string]string{
		"0":      "0",
		"10":     "10",
		"1.5":    "1,5",
		"1234.5": "1.234,5",
		"2.125":  "2,125",
	}
	for in, want := range cases {
		if got := Quantity(dec(in)); got != want {
			t.Fatalf("Quantity(%s): expected %q, got %q", in, want, got)
		}
	}
}

func TestStatusClass(t *testing.T) {
	if got := StatusClass(entities.OrcamentoStatusAberto); got != "badge badge-aberto" {
		t.Fatalf("unexpected class %q", got)
	}
	if got := StatusClass(entities.MedicaoStatusValidada); got != "badge badge-fechado" {
		t.Fatalf("unexpected class %q", got)
	}
	if got := StatusClass("X"); got != "badge" {
		t.Fatalf("unexpected class %q", got)
	}
}

func TestDict(t *testing.T) {
	m, err := dict("a", 1, "b", "x")
	if err != nil || m["a"] != 1 || m["b"] != "x" {
		t.Fatalf("unexpected dict %v err=%v", m, err)
	}
	if _, err := dict("a"); err == nil {
		t.Fatalf("expected error for odd args")
	}
	if _, err := dict(1, 2); err == nil {
		t.Fatalf("expected error for non string key")
	}
}

func TestRenderer_UnknownPagePanics(t *testing.T) {
	r := MustNew()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	r.Instance("nope.html", nil)
}

func TestListPage(t *testing.T) {
	t.Run("rows and counters", func(t *testing.T) {
		body := renderPage(t, PageOrcamentos, ListPage{
			Orcamentos: []entities.Orcamento{
				{ID: 1, NumeroProtocolo: "P-001", Tipo: entities.OrcamentoTipoObraRodovias, ValorTotal: dec("1500"), Status: entities.OrcamentoStatusAberto},
				{ID: 2, NumeroProtocolo: "P-002", Tipo: entities.OrcamentoTipoOutros, ValorTotal: dec("10"), Status: entities.OrcamentoStatusFinalizado},
			},
			Contagem: entities.StatusCount{Abertos: 1, Finalizados: 1},
		})
		for _, want := range []string{`href="/orcamentos/1"`, "P-002", "R$ 1.500,00", "Obra de Rodovias", "badge badge-fechado"} {
			if !strings.Contains(body, want) {
				t.Fatalf("expected %q in body", want)
			}
		}
	})

	t.Run("empty state", func(t *testing.T) {
		body := renderPage(t, PageOrcamentos, ListPage{})
		if !strings.Contains(body, "Nenhum orçamento encontrado.") {
			t.Fatalf("expected empty state")
		}
	})

	t.Run("error", func(t *testing.T) {
		body := renderPage(t, PageOrcamentos, ListPage{Erro: "Erro ao buscar orçamentos."})
		if !strings.Contains(body, "Erro ao buscar orçamentos.") || strings.Contains(body, "Nenhum orçamento encontrado.") {
			t.Fatalf("expected only the error message")
		}
	})
}

func TestNovoOrcamentoPage_KeepsValues(t *testing.T) {
	body := renderPage(t, PageNovoOrcamento, NovoOrcamentoPage{
		Form:  request.OrcamentoRequest{NumeroProtocolo: "P-9", Tipo: "OUTROS", ValorTotal: "12,50"},
		Tipos: entities.OrcamentoTipos,
		Erro:  "Informe um valor total válido.",
	})
	for _, want := range []string{`value="P-9"`, `value="OUTROS" selected`, `value="12,50"`, "Informe um valor total válido."} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected %q in body", want)
		}
	}
}

func detalhe(status entities.OrcamentoStatus, total string, itens ...entities.Item) usecase.OrcamentoDetalhe {
	o := entities.Orcamento{ID: 5, NumeroProtocolo: "P-5", Tipo: entities.OrcamentoTipoOutros, ValorTotal: dec(total), Status: status}
	soma := entities.SumItemTotals(itens)
	return usecase.OrcamentoDetalhe{
		Orcamento:     o,
		Itens:         itens,
		SomaItens:     soma,
		Diferenca:     o.ValorTotal.Sub(soma),
		PodeFinalizar: o.PodeFinalizar(soma),
	}
}

func TestDetalhePage_FinalizeGate(t *testing.T) {
	item := entities.Item{ID: 1, Descricao: "Cimento", Quantidade: dec("10"), ValorUnitario: dec("10"), ValorTotal: dec("100"), QuantidadeAcumulada: dec("0")}

	t.Run("sum differs", func(t *testing.T) {
		body := renderPage(t, PageDetalhe, NewDetalhePage(detalhe(entities.OrcamentoStatusAberto, "150", item), usecase.MedicoesPainel{}))
		if !strings.Contains(body, "Finalizar orçamento</button>") || !strings.Contains(body, `btn-primary" disabled>Finalizar`) {
			t.Fatalf("expected disabled finalize button")
		}
		if !strings.Contains(body, "Para finalizar, a soma dos itens deve ser igual ao valor total do orçamento.") {
			t.Fatalf("expected finalize hint")
		}
		if !strings.Contains(body, "Diferença: R$ 50,00") {
			t.Fatalf("expected difference")
		}
	})

	t.Run("sum matches", func(t *testing.T) {
		body := renderPage(t, PageDetalhe, NewDetalhePage(detalhe(entities.OrcamentoStatusAberto, "100.00", item), usecase.MedicoesPainel{}))
		if strings.Contains(body, `btn-primary" disabled>Finalizar`) {
			t.Fatalf("expected enabled finalize button")
		}
		if !strings.Contains(body, `/orcamentos/5/itens/1/editar`) {
			t.Fatalf("expected edit link for open budget")
		}
	})

	t.Run("finalized", func(t *testing.T) {
		body := renderPage(t, PageDetalhe, NewDetalhePage(detalhe(entities.OrcamentoStatusFinalizado, "100", item), usecase.MedicoesPainel{}))
		if !strings.Contains(body, `btn-primary" disabled>Finalizar`) {
			t.Fatalf("expected disabled finalize button")
		}
		if !strings.Contains(body, "Não é permitido incluir item em orçamento FINALIZADO.") {
			t.Fatalf("expected finalized notice on add item form")
		}
		if strings.Contains(body, "/editar") {
			t.Fatalf("finalized budget must not offer edit links")
		}
		if !strings.Contains(body, "<small class=\"muted\">Orçamento finalizado</small>") {
			t.Fatalf("expected measurement form notice")
		}
	})
}

func TestDetalhePage_MedicaoAberta(t *testing.T) {
	parcial := entities.Item{ID: 1, Descricao: "Areia", Quantidade: dec("10"), ValorTotal: dec("100"), QuantidadeAcumulada: dec("4")}
	completo := entities.Item{ID: 2, Descricao: "Brita", Quantidade: dec("5"), ValorTotal: dec("50"), QuantidadeAcumulada: dec("5")}
	aberta := entities.Medicao{ID: 9, Numero: "M-1", DataMedicao: "2024-06-01", Status: entities.MedicaoStatusAberta, ValorTotal: dec("20")}
	painel := usecase.MedicoesPainel{
		Medicoes:    []entities.Medicao{aberta},
		Aberta:      &aberta,
		ItensAberta: []entities.ItemMedicao{{ID: 3, MedicaoID: 9, ItemID: 1, QuantidadeMedida: dec("2"), ValorTotalMedido: dec("20")}},
		Subtotal:    dec("20"),
	}

	page := NewDetalhePage(detalhe(entities.OrcamentoStatusAberto, "150", parcial, completo), painel)
	if page.PodeCriarMedicao {
		t.Fatalf("must not allow a second open measurement")
	}
	if len(page.Linhas) != 2 || page.Linhas[0].Medido == nil || page.Linhas[0].Bloqueado || !page.Linhas[1].Bloqueado {
		t.Fatalf("unexpected rows: %+v", page.Linhas)
	}

	body := renderPage(t, PageDetalhe, page)
	for _, want := range []string{
		"Existe medição ABERTA",
		"/orcamentos/5/medicoes/9/validar",
		"Medição ABERTA: lançar itens",
		"Subtotal da medição (itens lançados): <strong>R$ 20,00</strong>",
		"Item já totalmente medido.",
		">Atualizar</button>",
		">Adicionar</button>",
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected %q in body", want)
		}
	}
}

func TestDetalhePage_SemMedicao(t *testing.T) {
	page := NewDetalhePage(detalhe(entities.OrcamentoStatusAberto, "0"), usecase.MedicoesPainel{})
	if !page.PodeCriarMedicao {
		t.Fatalf("expected measurement form enabled")
	}
	body := renderPage(t, PageDetalhe, page)
	for _, want := range []string{"Nenhum item cadastrado.", "Nenhuma medição cadastrada."} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected %q in body", want)
		}
	}
	if strings.Contains(body, "lançar itens") {
		t.Fatalf("editor must not render without an open measurement")
	}
}

func TestErrorPages(t *testing.T) {
	body := renderPage(t, PageErro, ErrorPage{Mensagem: "Erro inesperado na requisição.", VoltarURL: "/orcamentos"})
	if !strings.Contains(body, "Erro inesperado na requisição.") || !strings.Contains(body, ">Voltar</a>") {
		t.Fatalf("unexpected error page: %s", body)
	}

	body = renderPage(t, PageNaoEncontrado, ErrorPage{Mensagem: "Orçamento não encontrado."})
	if !strings.Contains(body, "Orçamento não encontrado.") {
		t.Fatalf("unexpected not found page: %s", body)
	}
}

func TestEditItemPage(t *testing.T) {
	body := renderPage(t, PageEditarItem, EditItemPage{
		Orcamento: entities.Orcamento{ID: 5, NumeroProtocolo: "P-5"},
		Item:      entities.Item{ID: 7},
		Form:      request.ItemRequest{Descricao: "Cimento", Quantidade: "3", ValorUnitario: "2,5"},
		Erro:      "Informe uma quantidade válida.",
	})
	for _, want := range []string{`action="/orcamentos/5/itens/7"`, `value="Cimento"`, `value="2,5"`, "Informe uma quantidade válida."} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected %q in body", want)
		}
	}
}

func TestDetalhePage_QuantidadeMedidaPrefill(t *testing.T) {
	for _, stored := range []string{"1500", "2000", "0.0005", "1234.5"} {
		t.Run(stored, func(t *testing.T) {
			item := entities.Item{ID: 1, Descricao: "Aço", Quantidade: dec("10000"), ValorTotal: dec("100"), QuantidadeAcumulada: dec("0")}
			aberta := entities.Medicao{ID: 9, Numero: "M-1", Status: entities.MedicaoStatusAberta}
			painel := usecase.MedicoesPainel{
				Medicoes:    []entities.Medicao{aberta},
				Aberta:      &aberta,
				ItensAberta: []entities.ItemMedicao{{ID: 3, MedicaoID: 9, ItemID: 1, QuantidadeMedida: dec(stored)}},
			}

			page := NewDetalhePage(detalhe(entities.OrcamentoStatusAberto, "100", item), painel)
			if len(page.Linhas) != 1 {
				t.Fatalf("expected one row, got %d", len(page.Linhas))
			}
			prefilled := page.Linhas[0].Quantidade
			resubmitted := request.ParseDecimal(prefilled)
			if !resubmitted.Valid || !resubmitted.Decimal.Equal(dec(stored)) {
				t.Fatalf("stored=%s prefilled=%q resubmitted=%v", stored, prefilled, resubmitted.Decimal)
			}

			body := renderPage(t, PageDetalhe, page)
			if !strings.Contains(body, `name="quantidadeMedida" inputmode="decimal" value="`+prefilled+`"`) {
				t.Fatalf("expected input pre-filled with %q", prefilled)
			}
		})
	}
}

func TestDetalhePage_ItensMedicaoErro(t *testing.T) {
	item := entities.Item{ID: 1, Descricao: "Areia", Quantidade: dec("10"), ValorTotal: dec("100")}
	aberta := entities.Medicao{ID: 9, Numero: "M-1", DataMedicao: "2024-06-01", Status: entities.MedicaoStatusAberta, ValorTotal: dec("20")}
	painel := usecase.MedicoesPainel{
		Medicoes:  []entities.Medicao{aberta},
		Aberta:    &aberta,
		ItensErro: "Erro ao carregar itens da medição.",
	}

	page := NewDetalhePage(detalhe(entities.OrcamentoStatusAberto, "100", item), painel)
	if len(page.Linhas) != 0 {
		t.Fatalf("rows must not render without the measured items, got %+v", page.Linhas)
	}

	body := renderPage(t, PageDetalhe, page)
	for _, want := range []string{
		"Erro ao carregar itens da medição.",
		"/orcamentos/5/medicoes/9/validar",
		"<td>M-1</td>",
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected %q in body", want)
		}
	}
	if strings.Contains(body, "name=\"quantidadeMedida\"") {
		t.Fatalf("editor inputs must not render when items failed to load")
	}
}

func TestDecimalInputsCarryCommaHint(t *testing.T) {
	item := entities.Item{ID: 1, Descricao: "Areia", Quantidade: dec("10"), ValorTotal: dec("100")}
	pages := map[string]any{
		PageNovoOrcamento: NovoOrcamentoPage{Tipos: entities.OrcamentoTipos},
		PageDetalhe:       NewDetalhePage(detalhe(entities.OrcamentoStatusAberto, "100", item), usecase.MedicoesPainel{}),
		PageEditarItem:    EditItemPage{Orcamento: entities.Orcamento{ID: 5}, Item: item, Form: request.ItemRequestFrom(item)},
	}
	for name, data := range pages {
		if body := renderPage(t, name, data); !strings.Contains(body, "Use vírgula para decimais") {
			t.Fatalf("expected decimal hint on %s", name)
		}
	}
}
