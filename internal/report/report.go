// Package report exporta o estado da rede de armazéns em uma planilha xlsx.
package report

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"stockroute/internal/domain"
	"stockroute/internal/eventlog"
)

// Nomes das abas geradas por NetworkWorkbook.
const (
	SheetWarehouses = "Armazens"
	SheetProducts   = "Produtos"
	SheetEvents     = "Eventos"
)

var (
	warehouseHeader = []interface{}{"id", "tipo", "endereço", "volume", "volume_usado", "volume_livre", "valor_total", "cheio"}
	productHeader   = []interface{}{"armazém_id", "produto_id", "fornecedor_id", "nome", "volume", "preço", "dias_para_vencer", "validade"}
	eventHeader     = []interface{}{"hora", "mensagem"}
)

// NetworkWorkbook monta a planilha com uma aba por armazém, produto e evento
// e devolve o conteúdo xlsx serializado.
func NetworkWorkbook(snapshots []domain.WarehouseSnapshot, events []eventlog.Entry) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	// A aba padrão vira a de armazéns.
	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), SheetWarehouses); err != nil {
		return nil, fmt.Errorf("renomear aba: %w", err)
	}
	for _, name := range []string{SheetProducts, SheetEvents} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("criar aba %s: %w", name, err)
		}
	}

	var warehouseRows, productRows [][]interface{}
	for _, s := range snapshots {
		warehouseRows = append(warehouseRows, []interface{}{
			s.ID, s.TypeLabel, s.Address, s.Volume, s.UsedVolume, s.FreeVolume, s.TotalValue, s.IsFull,
		})
		for _, p := range s.Products {
			productRows = append(productRows, []interface{}{
				s.ID, p.ID, p.SupplierID, p.Name, p.UnitVolume, p.UnitPrice, p.DaysToExpiry, string(p.ShelfLife),
			})
		}
	}

	eventRows := make([][]interface{}, 0, len(events))
	for _, e := range events {
		eventRows = append(eventRows, []interface{}{e.Time.Format(eventlog.TimeLayout), e.Message})
	}

	if err := writeSheet(f, SheetWarehouses, warehouseHeader, warehouseRows); err != nil {
		return nil, err
	}
	if err := writeSheet(f, SheetProducts, productHeader, productRows); err != nil {
		return nil, err
	}
	if err := writeSheet(f, SheetEvents, eventHeader, eventRows); err != nil {
		return nil, err
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("gravar planilha: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSheet(f *excelize.File, sheet string, header []interface{}, rows [][]interface{}) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("cabeçalho da aba %s: %w", sheet, err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("célula da aba %s: %w", sheet, err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("linha %d da aba %s: %w", i+2, sheet, err)
		}
	}
	return nil
}
