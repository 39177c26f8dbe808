package routingservice

import (
	"fmt"

	"stockroute/internal/domain"
)

// Placement indica em qual armazém um produto da entrega ficou.
type Placement struct {
	ProductID   int `json:"product_id"`
	WarehouseID int `json:"warehouse_id"`
}

// DeliveryReport resume o resultado de DeliverProducts.
type DeliveryReport struct {
	EligibleType domain.WarehouseType `json:"eligible_type"`
	Placed       []Placement          `json:"placed"`
	Unplaced     []int                `json:"unplaced"`
	Aborted      bool                 `json:"aborted"`
}

// ClassifyBatch escolhe o tipo de armazém elegível para a entrega inteira:
// validade curta e longa juntas vão para triagem, só curta vai para refrigerado,
// e o resto (só longa, ou só vencidos) vai para o geral.
func ClassifyBatch(products []domain.Product) domain.WarehouseType {
	hasShort, hasLong := false, false
	for _, p := range products {
		hasShort = hasShort || p.IsShortShelfLife()
		hasLong = hasLong || p.IsLongShelfLife()
	}
	switch {
	case hasShort && hasLong:
		return domain.WarehouseSorting
	case hasShort:
		return domain.WarehouseCold
	default:
		return domain.WarehouseGeneral
	}
}

// DeliverProducts distribui a entrega entre os armazéns do tipo elegível.
// Cada produto vai para o primeiro armazém elegível (na ordem de registro) que o aceite;
// falhas individuais são registradas e não interrompem o restante da entrega.
func (s *Service) DeliverProducts(products []domain.Product, sink LogSink) DeliveryReport {
	logAction := s.sinkOrDefault(sink)
	s.logger.Debug("Iniciando entrega.", map[string]interface{}{"products": len(products)})

	s.mu.Lock()
	defer s.mu.Unlock()

	report := DeliveryReport{}
	if len(products) == 0 {
		logAction("Erro: Nada a entregar.")
		s.metrics.Operation("delivery", "aborted")
		report.Aborted = true
		return report
	}

	report.EligibleType = ClassifyBatch(products)
	eligible := s.ofTypeLocked(report.EligibleType)
	if len(eligible) == 0 {
		logAction(fmt.Sprintf("Erro: Nenhum armazém adequado para a entrega! (tipo exigido: %s)", report.EligibleType.Label()))
		s.metrics.Operation("delivery", "aborted")
		for range products {
			s.metrics.Placement("no_eligible_warehouse")
		}
		s.logger.Warn("Entrega rejeitada: nenhum armazém elegível.", map[string]interface{}{"type": report.EligibleType.String()})
		report.Aborted = true
		return report
	}

	for _, p := range products {
		if target := s.placeLocked(p, eligible, logAction); target != nil {
			report.Placed = append(report.Placed, Placement{ProductID: p.ID, WarehouseID: target.ID()})
		} else {
			report.Unplaced = append(report.Unplaced, p.ID)
		}
	}

	s.metrics.Operation("delivery", "completed")
	s.logger.Info("Entrega processada.", map[string]interface{}{
		"placed":   len(report.Placed),
		"unplaced": len(report.Unplaced),
		"type":     report.EligibleType.String(),
	})
	return report
}

func (s *Service) placeLocked(p domain.Product, eligible []*domain.Warehouse, logAction LogSink) *domain.Warehouse {
	if err := p.Validate(); err != nil {
		logAction(fmt.Sprintf("Erro: Produto inválido (ID: %d) - %s", p.ID, err.Error()))
		s.metrics.Placement("invalid")
		return nil
	}
	if holder := s.locateLocked(p.ID); holder != nil {
		logAction(fmt.Sprintf("Erro: O produto '%s' (ID: %d) já está no armazém %d - ignorado", p.Name, p.ID, holder.ID()))
		s.metrics.Placement("duplicate")
		return nil
	}

	for _, w := range eligible {
		if w.Add(p) {
			logAction(fmt.Sprintf("Produto '%s' (ID: %d, volume: %.2f) colocado no armazém %d (%s)",
				p.Name, p.ID, p.UnitVolume, w.ID(), w.Type().Label()))
			s.metrics.Placement("placed")
			return w
		}
	}

	logAction(fmt.Sprintf("Erro: Não foi possível colocar o produto '%s' (ID: %d) - nenhum armazém adequado com volume suficiente", p.Name, p.ID))
	s.metrics.Placement("no_capacity")
	return nil
}
