package routingservice

import (
	"fmt"
	"strings"

	"stockroute/internal/domain"
)

// AnalyzeNetwork registra, para cada armazém, quais problemas foram detectados.
// Não altera nenhum armazém; devolve os status na ordem de registro.
func (s *Service) AnalyzeNetwork(sink LogSink) []domain.WarehouseStatus {
	logAction := s.sinkOrDefault(sink)

	s.mu.Lock()
	defer s.mu.Unlock()

	logAction("=== ANÁLISE DA REDE DE ARMAZÉNS ===")

	statuses := make([]domain.WarehouseStatus, 0, len(s.warehouses))
	for _, w := range s.warehouses {
		status := w.Status()
		statuses = append(statuses, status)

		statusText := "Sem problemas"
		if issues := status.Issues(); len(issues) > 0 {
			statusText = "Problemas: " + strings.Join(issues, ", ")
		}
		logAction(fmt.Sprintf("Armazém %d (%s): %s", w.ID(), w.Type().Label(), statusText))
	}

	s.metrics.Operation("analysis", "completed")
	return statuses
}
