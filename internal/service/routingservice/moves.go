package routingservice

import (
	"errors"
	"fmt"

	"stockroute/internal/domain"
)

// TransferReport resume uma operação de movimentação em lote.
type TransferReport struct {
	Moved   int  `json:"moved"`
	Failed  int  `json:"failed"`
	Aborted bool `json:"aborted"`
}

// OptimizeSortingWarehouses esvazia os armazéns de triagem: produtos de validade
// longa vão para armazéns gerais e os demais para armazéns refrigerados.
func (s *Service) OptimizeSortingWarehouses(sink LogSink) TransferReport {
	logAction := s.sinkOrDefault(sink)
	s.logger.Debug("Iniciando otimização dos armazéns de triagem.", nil)

	s.mu.Lock()
	defer s.mu.Unlock()

	sorting := s.ofTypeLocked(domain.WarehouseSorting)
	general := s.ofTypeLocked(domain.WarehouseGeneral)
	cold := s.ofTypeLocked(domain.WarehouseCold)

	logAction("Início da otimização dos armazéns de triagem...")

	report := TransferReport{}
	for _, source := range sorting {
		// Products devolve uma cópia, então remover durante a iteração não pula itens.
		for _, p := range source.Products() {
			targets := cold
			if p.IsLongShelfLife() {
				targets = general
			}
			if s.moveToFirstAcceptingLocked(p, source, targets, "optimize", logAction) {
				report.Moved++
				continue
			}
			report.Failed++
			logAction(fmt.Sprintf("Não foi possível mover o produto %d do armazém de triagem %d", p.ID, source.ID()))
		}
	}

	s.metrics.Operation("optimize", "completed")
	s.logger.Info("Otimização concluída.", map[string]interface{}{"moved": report.Moved, "failed": report.Failed})
	return report
}

// MoveExpiredProducts leva os produtos vencidos de todos os armazéns (exceto os de
// descarte) para o primeiro armazém de descarte que os aceite.
func (s *Service) MoveExpiredProducts(sink LogSink) TransferReport {
	logAction := s.sinkOrDefault(sink)
	s.logger.Debug("Iniciando varredura de produtos vencidos.", nil)

	s.mu.Lock()
	defer s.mu.Unlock()

	disposal := s.ofTypeLocked(domain.WarehouseDisposal)
	if len(disposal) == 0 {
		logAction("Erro: Nenhum armazém de descarte disponível!")
		s.metrics.Operation("sweep", "aborted")
		s.logger.Warn("Varredura abortada: nenhum armazém de descarte.", nil)
		return TransferReport{Aborted: true}
	}

	logAction("Procurando e movendo produtos vencidos...")

	report := TransferReport{}
	for _, source := range s.warehouses {
		if source.Type() == domain.WarehouseDisposal {
			continue
		}
		for _, p := range source.ExpiredProducts() {
			if s.moveToFirstAcceptingLocked(p, source, disposal, "sweep", logAction) {
				report.Moved++
				continue
			}
			report.Failed++
			logAction(fmt.Sprintf("Não foi possível mover o produto vencido %d para um armazém de descarte", p.ID))
		}
	}

	s.metrics.Operation("sweep", "completed")
	s.logger.Info("Varredura concluída.", map[string]interface{}{"moved": report.Moved, "failed": report.Failed})
	return report
}

// MoveProduct move manualmente um produto entre dois armazéns.
// Retorna false (com uma entrada de log explicando o motivo) se a movimentação não for possível.
func (s *Service) MoveProduct(productID, fromID, toID int, sink LogSink) bool {
	logAction := s.sinkOrDefault(sink)
	s.logger.Debug("Iniciando movimentação manual.", map[string]interface{}{
		"product_id": productID, "from": fromID, "to": toID,
	})

	s.mu.Lock()
	defer s.mu.Unlock()

	from, to := s.findLocked(fromID), s.findLocked(toID)
	if from == nil || to == nil {
		logAction("Erro: Um dos armazéns não foi encontrado")
		s.metrics.Transfer("manual", "failed")
		return false
	}

	p, err := domain.Transfer(productID, from, to)
	if err != nil {
		logAction(manualMoveFailure(err, productID, fromID, toID))
		s.metrics.Transfer("manual", "failed")
		return false
	}

	logAction(fmt.Sprintf("Produto '%s' (ID: %d) movido do armazém %d para o armazém %d", p.Name, p.ID, fromID, toID))
	s.metrics.Transfer("manual", "moved")
	return true
}

func manualMoveFailure(err error, productID, fromID, toID int) string {
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		return fmt.Sprintf("Erro: Produto com ID %d não encontrado no armazém %d", productID, fromID)
	case errors.Is(err, domain.ErrInsufficientCapacity):
		return fmt.Sprintf("Erro: Volume insuficiente no armazém de destino %d para o produto %d", toID, productID)
	case errors.Is(err, domain.ErrDuplicateProduct):
		return fmt.Sprintf("Erro: O armazém %d já contém um produto com ID %d", toID, productID)
	case errors.Is(err, domain.ErrSameWarehouse):
		return fmt.Sprintf("Erro: O produto %d já está no armazém %d", productID, fromID)
	default:
		return fmt.Sprintf("Erro: Falha ao mover o produto %d: %s", productID, err.Error())
	}
}

// moveToFirstAcceptingLocked tenta os destinos na ordem da lista até um aceitar o produto.
func (s *Service) moveToFirstAcceptingLocked(p domain.Product, from *domain.Warehouse, targets []*domain.Warehouse, operation string, logAction LogSink) bool {
	for _, target := range targets {
		moved, err := domain.Transfer(p.ID, from, target)
		if errors.Is(err, domain.ErrProductNotFound) {
			break
		}
		if err != nil {
			continue
		}
		logAction(fmt.Sprintf("Produto '%s' (ID: %d) movido do armazém %d para o armazém %d", moved.Name, moved.ID, from.ID(), target.ID()))
		s.metrics.Transfer(operation, "moved")
		return true
	}
	s.metrics.Transfer(operation, "failed")
	return false
}
