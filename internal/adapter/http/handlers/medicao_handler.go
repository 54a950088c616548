package handlers

import (
	request "gestao_orcamentos/internal/adapter/http/dto/request"
	"gestao_orcamentos/internal/adapter/http/views"
	"gestao_orcamentos/internal/usecase"

	"github.com/gin-gonic/gin"
)

// MedicaoHandler serves the measurement forms of the detail page.
type MedicaoHandler struct {
	medicoes usecase.IMedicaoUseCase
	detalhe  detalheLoader
}

func NewMedicaoHandler(medicoes usecase.IMedicaoUseCase, orcamentos usecase.IOrcamentoUseCase) *MedicaoHandler {
	return &MedicaoHandler{
		medicoes: medicoes,
		detalhe:  detalheLoader{orcamentos: orcamentos, medicoes: medicoes},
	}
}

func (h *MedicaoHandler) Create(c *gin.Context) {
	orcamentoID, ok := paramID(c, "id")
	if !ok {
		renderNotFound(c)
		return
	}
	var form request.MedicaoRequest
	_ = c.ShouldBind(&form)

	if _, err := h.medicoes.CreateMedicao(c.Request.Context(), orcamentoID, form.ToCommand()); err != nil {
		h.fail(c, orcamentoID, err, func(p *views.DetalhePage) {
			p.MedicaoForm = form
			p.MedicaoErro = errorMessage(err, msgErroInesperado)
		})
		return
	}
	redirectDetalhe(c, orcamentoID, okMedicao)
}

func (h *MedicaoHandler) Validate(c *gin.Context) {
	orcamentoID, ok := paramID(c, "id")
	if !ok {
		renderNotFound(c)
		return
	}
	// A bad measurement id is reported as "no open measurement".
	medicaoID, _ := paramID(c, "medicaoId")

	if _, err := h.medicoes.ValidateMedicao(c.Request.Context(), orcamentoID, medicaoID); err != nil {
		h.fail(c, orcamentoID, err, func(p *views.DetalhePage) {
			p.MedicaoErro = errorMessage(err, msgErroInesperado)
		})
		return
	}
	redirectDetalhe(c, orcamentoID, okValidada)
}

func (h *MedicaoHandler) UpsertItem(c *gin.Context) {
	orcamentoID, ok1 := paramID(c, "id")
	medicaoID, ok2 := paramID(c, "medicaoId")
	if !ok1 || !ok2 {
		renderNotFound(c)
		return
	}
	var form request.ItemMedicaoRequest
	_ = c.ShouldBind(&form)

	if _, err := h.medicoes.UpsertItemMedicao(c.Request.Context(), orcamentoID, medicaoID, form.ToCommand()); err != nil {
		h.fail(c, orcamentoID, err, func(p *views.DetalhePage) {
			p.MedicaoItemErro = errorMessage(err, msgErroInesperado)
		})
		return
	}
	redirectDetalhe(c, orcamentoID, okMedido)
}

func (h *MedicaoHandler) fail(c *gin.Context, orcamentoID int64, err error, fill func(*views.DetalhePage)) {
	if isOrcamentoNotFound(err) {
		renderNotFound(c)
		return
	}
	h.detalhe.render(c, orcamentoID, formErrorStatus(err), fill)
}
