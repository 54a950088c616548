package usecase

import (
	"context"
	"fmt"
	"gestao_orcamentos/internal/usecase/interfaces"
	"log"
	"regexp"
)

var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// Relatorio is a rendered budget export ready to be downloaded.
type Relatorio struct {
	FileName    string
	ContentType string
	Content     []byte
}

type IRelatorioUseCase interface {
	ExportOrcamento(ctx context.Context, orcamentoID int64) (Relatorio, error)
}

type RelatorioUseCase struct {
	orcamentos IOrcamentoUseCase
	medicoes   interfaces.IMedicaoGateway
	exporter   interfaces.IRelatorioExporter
}

var _ IRelatorioUseCase = (*RelatorioUseCase)(nil)

func NewRelatorioUseCase(orcamentos IOrcamentoUseCase, medicoes interfaces.IMedicaoGateway, exporter interfaces.IRelatorioExporter) *RelatorioUseCase {
	return &RelatorioUseCase{orcamentos: orcamentos, medicoes: medicoes, exporter: exporter}
}

func (u *RelatorioUseCase) ExportOrcamento(ctx context.Context, orcamentoID int64) (Relatorio, error) {
	detalhe, err := u.orcamentos.GetDetalhe(ctx, orcamentoID)
	if err != nil {
		return Relatorio{}, err
	}
	medicoes, err := u.medicoes.ListByOrcamento(ctx, orcamentoID)
	if err != nil {
		return Relatorio{}, err
	}

	content, err := u.exporter.Export(interfaces.RelatorioOrcamento{
		Orcamento: detalhe.Orcamento,
		Itens:     detalhe.Itens,
		Medicoes:  medicoes,
	})
	if err != nil {
		log.Printf("[relatorio][usecase] export failed orcamento_id=%d err=%v", orcamentoID, err)
		return Relatorio{}, err
	}
	log.Printf("[relatorio][usecase] export success orcamento_id=%d bytes=%d", orcamentoID, len(content))

	return Relatorio{
		FileName:    relatorioFileName(detalhe.Orcamento.ID, detalhe.Orcamento.NumeroProtocolo, u.exporter.FileExtension()),
		ContentType: u.exporter.ContentType(),
		Content:     content,
	}, nil
}

func relatorioFileName(id int64, protocolo, ext string) string {
	safe := unsafeFileChars.ReplaceAllString(protocolo, "_")
	if safe == "" || safe == "_" {
		return fmt.Sprintf("orcamento_%d.%s", id, ext)
	}
	return fmt.Sprintf("orcamento_%d_%s.%s", id, safe, ext)
}
