package routingservice

import (
	"fmt"
	"sync"

	"stockroute/internal/domain"
	apperror "stockroute/internal/errors"
	"stockroute/internal/eventlog"
	"stockroute/internal/pkg/idgen"
	"stockroute/internal/pkg/logger"
)

// LogSink recebe uma mensagem formatada por evento.
// É chamado com o serviço travado, então não pode chamar o Service de volta.
type LogSink func(message string)

// Discard é um LogSink que ignora todas as mensagens.
func Discard(string) {}

// Recorder é o contrato de métricas que o serviço alimenta (internal/pkg/metrics).
type Recorder interface {
	Placement(outcome string)
	Transfer(operation, outcome string)
	Operation(operation, status string)
}

type noopRecorder struct{}

func (noopRecorder) Placement(string)         {}
func (noopRecorder) Transfer(string, string)  {}
func (noopRecorder) Operation(string, string) {}

// Service é o gerenciador da rede: possui os armazéns e o log de eventos
// e decide para onde cada produto pode ir.
// Todas as operações são serializadas por um único mutex.
type Service struct {
	mu         sync.Mutex
	warehouses []*domain.Warehouse
	ids        *idgen.Allocator
	events     *eventlog.Log
	logger     logger.Logger
	metrics    Recorder
}

// NewService cria o gerenciador. recorder pode ser nil.
func NewService(events *eventlog.Log, ids *idgen.Allocator, logger logger.Logger, recorder Recorder) *Service {
	if recorder == nil {
		recorder = noopRecorder{}
	}
	return &Service{
		ids:     ids,
		events:  events,
		logger:  logger,
		metrics: recorder,
	}
}

// DefaultSink anexa a mensagem ao log de eventos e a publica no logger da aplicação.
func (s *Service) DefaultSink() LogSink {
	return func(message string) {
		entry := s.events.Append(message)
		s.logger.Info("Evento registrado.", map[string]interface{}{"event": entry.String()})
	}
}

func (s *Service) sinkOrDefault(sink LogSink) LogSink {
	if sink != nil {
		return sink
	}
	return s.DefaultSink()
}

// AddWarehouse registra um armazém já construído. IDs duplicados são rejeitados.
func (s *Service) AddWarehouse(w *domain.Warehouse) error {
	if w == nil {
		return apperror.NewValidationError("O armazém não pode ser nulo.")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findLocked(w.ID()) != nil {
		s.logger.Warn("ID de armazém duplicado.", map[string]interface{}{"id": w.ID()})
		return apperror.NewConflictError(fmt.Sprintf("Já existe um armazém com ID %d.", w.ID()))
	}
	s.ids.Observe(w.ID())
	s.warehouses = append(s.warehouses, w)

	s.logger.Info("Armazém registrado.", map[string]interface{}{"id": w.ID(), "type": w.Type().String()})
	return nil
}

// CreateWarehouse cria um armazém com o próximo ID do alocador e o registra.
func (s *Service) CreateWarehouse(typ domain.WarehouseType, volume float64, address string) (*domain.Warehouse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, err := domain.NewWarehouse(s.ids.Next(), typ, volume, address)
	if err != nil {
		s.logger.Warn("Falha na validação do armazém.", map[string]interface{}{"error": err.Error()})
		return nil, err
	}
	s.warehouses = append(s.warehouses, w)

	s.logger.Info("Armazém criado com sucesso.", map[string]interface{}{"id": w.ID(), "type": typ.String()})
	return w, nil
}

// GetWarehouse busca um armazém pelo ID.
func (s *Service) GetWarehouse(id int) (*domain.Warehouse, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w := s.findLocked(id)
	return w, w != nil
}

// SetWarehouseVolume altera a capacidade de um armazém existente.
func (s *Service) SetWarehouseVolume(id int, volume float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	w := s.findLocked(id)
	if w == nil {
		return apperror.NewNotFoundError(fmt.Sprintf("Armazém com ID %d não encontrado.", id))
	}
	if err := w.SetVolume(volume); err != nil {
		s.logger.Warn("Alteração de volume rejeitada.", map[string]interface{}{"id": id, "error": err.Error()})
		return err
	}
	s.logger.Info("Volume do armazém alterado.", map[string]interface{}{"id": id, "volume": volume})
	return nil
}

// Warehouses devolve a lista de armazéns na ordem de registro.
func (s *Service) Warehouses() []*domain.Warehouse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*domain.Warehouse(nil), s.warehouses...)
}

// Snapshots copia o estado de todos os armazéns.
func (s *Service) Snapshots() []domain.WarehouseSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.WarehouseSnapshot, 0, len(s.warehouses))
	for _, w := range s.warehouses {
		out = append(out, w.Snapshot())
	}
	return out
}

// Log devolve as entradas do log de eventos.
func (s *Service) Log() []eventlog.Entry {
	return s.events.Entries()
}

// CalculateTotalValue soma os preços unitários do armazém; 0 se o ID não existir.
func (s *Service) CalculateTotalValue(warehouseID int) float64 {
	w, ok := s.GetWarehouse(warehouseID)
	if !ok {
		return 0
	}
	return w.TotalValue()
}

func (s *Service) findLocked(id int) *domain.Warehouse {
	for _, w := range s.warehouses {
		if w.ID() == id {
			return w
		}
	}
	return nil
}

func (s *Service) ofTypeLocked(typ domain.WarehouseType) []*domain.Warehouse {
	var out []*domain.Warehouse
	for _, w := range s.warehouses {
		if w.Type() == typ {
			out = append(out, w)
		}
	}
	return out
}

// locateLocked encontra o armazém que contém o produto.
func (s *Service) locateLocked(productID int) *domain.Warehouse {
	for _, w := range s.warehouses {
		if _, ok := w.Get(productID); ok {
			return w
		}
	}
	return nil
}
