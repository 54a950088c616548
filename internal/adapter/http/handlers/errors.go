package handlers

import (
	"errors"
	"gestao_orcamentos/internal/adapter/http/views"
	"gestao_orcamentos/internal/usecase"
	"gestao_orcamentos/internal/usecase/interfaces"
	"gestao_orcamentos/pkg"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	msgOrcamentoNaoEncontrado = "Orçamento não encontrado."
	msgItemNaoEncontrado      = "Item não encontrado."
	msgErroCarregarOrcamento  = "Erro ao carregar orçamento."
	msgErroCarregarMedicoes   = "Erro ao carregar medições."
	msgErroInesperado         = "Erro inesperado na requisição."
)

// errorMessage is the single line shown to the user for err.
func errorMessage(err error, fallback string) string {
	var vErr *usecase.ValidationError
	var gwErr *interfaces.GatewayError
	switch {
	case errors.As(err, &vErr):
		return vErr.Message
	case errors.Is(err, usecase.ErrOrcamentoNotFound), errors.Is(err, usecase.ErrInvalidOrcamentoID):
		return msgOrcamentoNaoEncontrado
	case errors.Is(err, usecase.ErrItemNotFound):
		return msgItemNaoEncontrado
	case errors.As(err, &gwErr) && gwErr.Message != "":
		return gwErr.Message
	default:
		return fallback
	}
}

// formErrorStatus is the status of a page re-rendered after a failed submit.
func formErrorStatus(err error) int {
	var vErr *usecase.ValidationError
	var gwErr *interfaces.GatewayError
	switch {
	case errors.As(err, &vErr):
		return http.StatusUnprocessableEntity
	case errors.Is(err, usecase.ErrItemNotFound):
		return http.StatusNotFound
	case errors.As(err, &gwErr) && gwErr.Status >= 400 && gwErr.Status < 500:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadGateway
	}
}

func isOrcamentoNotFound(err error) bool {
	return errors.Is(err, usecase.ErrOrcamentoNotFound) || errors.Is(err, usecase.ErrInvalidOrcamentoID)
}

// renderNotFound shows the not found page for a missing budget.
func renderNotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, views.PageNaoEncontrado, views.ErrorPage{Mensagem: msgOrcamentoNaoEncontrado})
}

// renderLoadError shows the page used when a screen could not be loaded.
func renderLoadError(c *gin.Context, err error, fallback string) {
	if isOrcamentoNotFound(err) {
		renderNotFound(c)
		return
	}
	status := http.StatusBadGateway
	if errors.Is(err, usecase.ErrItemNotFound) {
		status = http.StatusNotFound
	}
	log.Printf("[web][handler] load failed path=%s status=%d err=%v", c.Request.URL.Path, status, err)
	c.HTML(status, views.PageErro, views.ErrorPage{
		Mensagem:  errorMessage(err, fallback),
		VoltarURL: "/orcamentos",
	})
}

// paramID reads a positive integer path parameter.
func paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func mapOrcamentoError(err error) *pkg.AppError {
	var gwErr *interfaces.GatewayError
	switch {
	case errors.Is(err, usecase.ErrInvalidOrcamentoID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid orcamento id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrcamentoNotFound):
		return pkg.NewDomainErrorSimple("ORCAMENTO_NOT_FOUND", msgOrcamentoNaoEncontrado, http.StatusNotFound)
	case errors.As(err, &gwErr):
		return pkg.NewDomainError("BACKEND_ERROR", gwErr.Message, err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
