package handlers

import (
	request "gestao_orcamentos/internal/adapter/http/dto/request"
	"gestao_orcamentos/internal/adapter/http/views"
	"gestao_orcamentos/internal/usecase"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ItemHandler serves the add item form of the detail page and the edit item
// page.
type ItemHandler struct {
	itens   usecase.IItemUseCase
	detalhe detalheLoader
}

func NewItemHandler(itens usecase.IItemUseCase, orcamentos usecase.IOrcamentoUseCase, medicoes usecase.IMedicaoUseCase) *ItemHandler {
	return &ItemHandler{
		itens:   itens,
		detalhe: detalheLoader{orcamentos: orcamentos, medicoes: medicoes},
	}
}

func (h *ItemHandler) Create(c *gin.Context) {
	orcamentoID, ok := paramID(c, "id")
	if !ok {
		renderNotFound(c)
		return
	}
	var form request.ItemRequest
	_ = c.ShouldBind(&form)

	if _, err := h.itens.CreateItem(c.Request.Context(), orcamentoID, form.ToCommand()); err != nil {
		if isOrcamentoNotFound(err) {
			renderNotFound(c)
			return
		}
		h.detalhe.render(c, orcamentoID, formErrorStatus(err), func(p *views.DetalhePage) {
			p.ItemForm = form
			p.ItemErro = errorMessage(err, msgErroInesperado)
		})
		return
	}
	redirectDetalhe(c, orcamentoID, okItem)
}

func (h *ItemHandler) Edit(c *gin.Context) {
	orcamentoID, ok1 := paramID(c, "id")
	itemID, ok2 := paramID(c, "itemId")
	if !ok1 || !ok2 {
		renderNotFound(c)
		return
	}

	o, it, err := h.itens.GetItem(c.Request.Context(), orcamentoID, itemID)
	if err != nil {
		renderLoadError(c, err, msgErroCarregarOrcamento)
		return
	}
	if o.IsFinalizado() {
		redirectDetalhe(c, orcamentoID, "")
		return
	}
	c.HTML(http.StatusOK, views.PageEditarItem, views.EditItemPage{
		Orcamento: o,
		Item:      it,
		Form:      request.ItemRequestFrom(it),
	})
}

func (h *ItemHandler) Update(c *gin.Context) {
	orcamentoID, ok1 := paramID(c, "id")
	itemID, ok2 := paramID(c, "itemId")
	if !ok1 || !ok2 {
		renderNotFound(c)
		return
	}
	var form request.ItemRequest
	_ = c.ShouldBind(&form)

	ctx := c.Request.Context()
	if _, err := h.itens.UpdateItem(ctx, orcamentoID, itemID, form.ToCommand()); err != nil {
		if isOrcamentoNotFound(err) {
			renderNotFound(c)
			return
		}
		o, it, loadErr := h.itens.GetItem(ctx, orcamentoID, itemID)
		if loadErr != nil {
			renderLoadError(c, loadErr, msgErroCarregarOrcamento)
			return
		}
		c.HTML(formErrorStatus(err), views.PageEditarItem, views.EditItemPage{
			Orcamento: o,
			Item:      it,
			Form:      form,
			Erro:      errorMessage(err, msgErroInesperado),
		})
		return
	}
	redirectDetalhe(c, orcamentoID, okItem)
}
