package warehouse

import (
	"fmt"
	"net/http"

	"stockroute/internal/api/response"
	"stockroute/internal/domain"
	apperror "stockroute/internal/errors"
	"stockroute/internal/pkg/logger"
)

// WarehouseService define o contrato que o Handler espera da camada de Serviço.
type WarehouseService interface {
	CreateWarehouse(typ domain.WarehouseType, volume float64, address string) (*domain.Warehouse, error)
	GetWarehouse(id int) (*domain.Warehouse, bool)
	Snapshots() []domain.WarehouseSnapshot
	SetWarehouseVolume(id int, volume float64) error
	CalculateTotalValue(warehouseID int) float64
}

// CreateWarehouseRequest é o payload de POST /v1/warehouses.
// Type é ponteiro porque o valor zero do enum é um tipo válido (geral).
type CreateWarehouseRequest struct {
	Type    *domain.WarehouseType `json:"type" example:"general"`
	Volume  float64               `json:"volume" example:"1000"`
	Address string                `json:"address" example:"Rua Central, 1"`
}

// SetVolumeRequest é o payload de PATCH /v1/warehouses/{id}/volume.
type SetVolumeRequest struct {
	Volume float64 `json:"volume" example:"1500"`
}

// TotalValueResponse é a resposta de GET /v1/warehouses/{id}/value.
type TotalValueResponse struct {
	WarehouseID int     `json:"warehouse_id"`
	TotalValue  float64 `json:"total_value"`
}

// Handler agrupa todos os métodos de Handler de armazéns.
type Handler struct {
	Service WarehouseService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc WarehouseService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

func (h *Handler) handleServiceResponse(w http.ResponseWriter, r *http.Request, data interface{}, err error, successStatus int) {
	response.Write(w, r, h.Logger, data, err, successStatus)
}

// CreateWarehouseHandler lida com a requisição POST /v1/warehouses.
// @Summary Cria um novo armazém
// @Description Cria um armazém com o próximo ID disponível.
// @Tags warehouses
// @Accept json
// @Produce json
// @Param warehouse body CreateWarehouseRequest true "Dados do armazém para criação"
// @Success 201 {object} domain.WarehouseSnapshot "Armazém criado com sucesso"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 401 {object} domain.ErrorResponse "Token ausente ou inválido"
// @Security ApiKeyAuth
// @Router /warehouses [post]
func (h *Handler) CreateWarehouseHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateWarehouseRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusBadRequest)
		return
	}
	if req.Type == nil {
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError("O tipo do armazém é obrigatório."), http.StatusBadRequest)
		return
	}

	created, err := h.Service.CreateWarehouse(*req.Type, req.Volume, req.Address)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	h.handleServiceResponse(w, r, created.Snapshot(), nil, http.StatusCreated)
}

// GetWarehouseByIDHandler lida com a requisição GET /v1/warehouses/{id}.
// @Summary Obtém um armazém por ID
// @Description Busca um armazém e seus produtos com a classificação de validade.
// @Tags warehouses
// @Produce json
// @Param id path int true "ID do Armazém"
// @Success 200 {object} domain.WarehouseSnapshot "Armazém encontrado"
// @Failure 404 {object} domain.ErrorResponse "Armazém não encontrado"
// @Router /warehouses/{id} [get]
func (h *Handler) GetWarehouseByIDHandler(w http.ResponseWriter, r *http.Request) {
	found, err := h.lookup(r)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	h.handleServiceResponse(w, r, found.Snapshot(), nil, http.StatusOK)
}

// GetAllWarehousesHandler lida com a requisição GET /v1/warehouses.
// @Summary Lista todos os armazéns
// @Description Retorna os armazéns na ordem de registro.
// @Tags warehouses
// @Produce json
// @Success 200 {array} domain.WarehouseSnapshot "Lista de armazéns"
// @Router /warehouses [get]
func (h *Handler) GetAllWarehousesHandler(w http.ResponseWriter, r *http.Request) {
	h.handleServiceResponse(w, r, h.Service.Snapshots(), nil, http.StatusOK)
}

// SetVolumeHandler lida com a requisição PATCH /v1/warehouses/{id}/volume.
// @Summary Altera a capacidade de um armazém
// @Description O novo volume deve ser positivo e não pode ficar abaixo do volume ocupado.
// @Tags warehouses
// @Accept json
// @Produce json
// @Param id path int true "ID do Armazém"
// @Param volume body SetVolumeRequest true "Novo volume"
// @Success 200 {object} domain.WarehouseSnapshot "Volume alterado"
// @Failure 400 {object} domain.ErrorResponse "Volume inválido"
// @Failure 404 {object} domain.ErrorResponse "Armazém não encontrado"
// @Failure 409 {object} domain.ErrorResponse "Volume abaixo do ocupado"
// @Security ApiKeyAuth
// @Router /warehouses/{id}/volume [patch]
func (h *Handler) SetVolumeHandler(w http.ResponseWriter, r *http.Request) {
	id, err := response.IntParam(r, "id")
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	var req SetVolumeRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusBadRequest)
		return
	}

	if err := h.Service.SetWarehouseVolume(id, req.Volume); err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	updated, _ := h.Service.GetWarehouse(id)
	h.handleServiceResponse(w, r, updated.Snapshot(), nil, http.StatusOK)
}

// GetTotalValueHandler lida com a requisição GET /v1/warehouses/{id}/value.
// @Summary Valor total de um armazém
// @Description Soma dos preços unitários dos produtos armazenados.
// @Tags warehouses
// @Produce json
// @Param id path int true "ID do Armazém"
// @Success 200 {object} TotalValueResponse "Valor total"
// @Failure 404 {object} domain.ErrorResponse "Armazém não encontrado"
// @Router /warehouses/{id}/value [get]
func (h *Handler) GetTotalValueHandler(w http.ResponseWriter, r *http.Request) {
	found, err := h.lookup(r)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	h.handleServiceResponse(w, r, TotalValueResponse{
		WarehouseID: found.ID(),
		TotalValue:  h.Service.CalculateTotalValue(found.ID()),
	}, nil, http.StatusOK)
}

func (h *Handler) lookup(r *http.Request) (*domain.Warehouse, error) {
	id, err := response.IntParam(r, "id")
	if err != nil {
		return nil, err
	}
	found, ok := h.Service.GetWarehouse(id)
	if !ok {
		return nil, apperror.NewNotFoundError(fmt.Sprintf("Armazém com ID %d não encontrado.", id))
	}
	return found, nil
}
