package routing

import (
	"net/http"
	"sync"

	"stockroute/internal/api/response"
	"stockroute/internal/domain"
	"stockroute/internal/eventlog"
	"stockroute/internal/pkg/logger"
	"stockroute/internal/pkg/middleware"
	"stockroute/internal/service/routingservice"
)

// RoutingService define o contrato que o Handler espera do gerenciador da rede.
type RoutingService interface {
	DeliverProducts(products []domain.Product, sink routingservice.LogSink) routingservice.DeliveryReport
	OptimizeSortingWarehouses(sink routingservice.LogSink) routingservice.TransferReport
	MoveExpiredProducts(sink routingservice.LogSink) routingservice.TransferReport
	MoveProduct(productID, fromID, toID int, sink routingservice.LogSink) bool
	AnalyzeNetwork(sink routingservice.LogSink) []domain.WarehouseStatus
	DefaultSink() routingservice.LogSink
	Log() []eventlog.Entry
}

// DeliveryRequest é o payload de POST /v1/deliveries.
type DeliveryRequest struct {
	Products []domain.Product `json:"products"`
}

// MoveRequest é o payload de POST /v1/moves.
type MoveRequest struct {
	ProductID       int `json:"product_id" example:"101"`
	FromWarehouseID int `json:"from_warehouse_id" example:"3"`
	ToWarehouseID   int `json:"to_warehouse_id" example:"1"`
}

// DeliveryResponse devolve o resultado da entrega e as mensagens geradas por ela.
type DeliveryResponse struct {
	routingservice.DeliveryReport
	Messages []string `json:"messages"`
}

// TransferResponse é usada por otimização e varredura de vencidos.
type TransferResponse struct {
	routingservice.TransferReport
	Messages []string `json:"messages"`
}

// MoveResponse é a resposta de POST /v1/moves.
type MoveResponse struct {
	Moved    bool     `json:"moved"`
	Messages []string `json:"messages"`
}

// AnalysisResponse é a resposta de GET /v1/network/analysis.
type AnalysisResponse struct {
	Statuses []domain.WarehouseStatus `json:"statuses"`
	Messages []string                 `json:"messages"`
}

// EventResponse é uma entrada do log de eventos já formatada.
type EventResponse struct {
	eventlog.Entry
	Line string `json:"line"`
}

// Handler agrupa os handlers das operações de roteamento.
type Handler struct {
	Service RoutingService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc RoutingService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

func (h *Handler) handleServiceResponse(w http.ResponseWriter, r *http.Request, data interface{}, err error, successStatus int) {
	response.Write(w, r, h.Logger, data, err, successStatus)
}

// teeSink encaminha cada mensagem ao sink padrão (log global) e guarda uma
// cópia para devolver na resposta da requisição.
type teeSink struct {
	mu       sync.Mutex
	next     routingservice.LogSink
	messages []string
}

func (h *Handler) newTee() *teeSink {
	return &teeSink{next: h.Service.DefaultSink(), messages: []string{}}
}

func (t *teeSink) sink(message string) {
	t.mu.Lock()
	t.messages = append(t.messages, message)
	t.mu.Unlock()
	t.next(message)
}

func (t *teeSink) collected() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string{}, t.messages...)
}

// logFields identifica a requisição e o operador autenticado que a disparou.
func logFields(r *http.Request, extra map[string]interface{}) map[string]interface{} {
	fields := map[string]interface{}{"request_id": middleware.GetRequestID(r.Context())}
	if claims, ok := middleware.GetOperatorClaimsFromContext(r.Context()); ok {
		fields["operator_id"] = claims.OperatorID
	}
	for k, v := range extra {
		fields[k] = v
	}
	return fields
}

// DeliverProductsHandler lida com a requisição POST /v1/deliveries.
// @Summary Entrega um lote de produtos
// @Description Classifica o lote, escolhe o tipo de armazém elegível e coloca cada produto no primeiro armazém que o aceite.
// @Tags routing
// @Accept json
// @Produce json
// @Param delivery body DeliveryRequest true "Produtos da entrega"
// @Success 200 {object} DeliveryResponse "Resultado da entrega"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Security ApiKeyAuth
// @Router /deliveries [post]
func (h *Handler) DeliverProductsHandler(w http.ResponseWriter, r *http.Request) {
	var req DeliveryRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusBadRequest)
		return
	}

	tee := h.newTee()
	report := h.Service.DeliverProducts(req.Products, tee.sink)
	h.Logger.Debug("Entrega via API concluída.", logFields(r, map[string]interface{}{"placed": len(report.Placed)}))

	h.handleServiceResponse(w, r, DeliveryResponse{DeliveryReport: report, Messages: tee.collected()}, nil, http.StatusOK)
}

// OptimizeHandler lida com a requisição POST /v1/optimizations.
// @Summary Otimiza os armazéns de triagem
// @Description Move produtos de validade longa para armazéns gerais e os demais para refrigerados.
// @Tags routing
// @Produce json
// @Success 200 {object} TransferResponse "Resultado da otimização"
// @Security ApiKeyAuth
// @Router /optimizations [post]
func (h *Handler) OptimizeHandler(w http.ResponseWriter, r *http.Request) {
	tee := h.newTee()
	report := h.Service.OptimizeSortingWarehouses(tee.sink)
	h.Logger.Debug("Otimização via API concluída.", logFields(r, map[string]interface{}{"moved": report.Moved, "failed": report.Failed}))
	h.handleServiceResponse(w, r, TransferResponse{TransferReport: report, Messages: tee.collected()}, nil, http.StatusOK)
}

// SweepExpiredHandler lida com a requisição POST /v1/sweeps.
// @Summary Move produtos vencidos para o descarte
// @Description Leva os produtos vencidos de todos os armazéns para o primeiro armazém de descarte que os aceite.
// @Tags routing
// @Produce json
// @Success 200 {object} TransferResponse "Resultado da varredura"
// @Security ApiKeyAuth
// @Router /sweeps [post]
func (h *Handler) SweepExpiredHandler(w http.ResponseWriter, r *http.Request) {
	tee := h.newTee()
	report := h.Service.MoveExpiredProducts(tee.sink)
	h.Logger.Debug("Varredura de vencidos via API concluída.", logFields(r, map[string]interface{}{"moved": report.Moved, "failed": report.Failed}))
	h.handleServiceResponse(w, r, TransferResponse{TransferReport: report, Messages: tee.collected()}, nil, http.StatusOK)
}

// MoveProductHandler lida com a requisição POST /v1/moves.
// @Summary Move um produto entre armazéns
// @Description Movimentação manual; falhas são devolvidas como moved=false com a mensagem do motivo.
// @Tags routing
// @Accept json
// @Produce json
// @Param move body MoveRequest true "Produto, origem e destino"
// @Success 200 {object} MoveResponse "Resultado da movimentação"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Security ApiKeyAuth
// @Router /moves [post]
func (h *Handler) MoveProductHandler(w http.ResponseWriter, r *http.Request) {
	var req MoveRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusBadRequest)
		return
	}

	tee := h.newTee()
	moved := h.Service.MoveProduct(req.ProductID, req.FromWarehouseID, req.ToWarehouseID, tee.sink)
	h.Logger.Debug("Movimentação manual via API.", logFields(r, map[string]interface{}{"product_id": req.ProductID, "moved": moved}))
	h.handleServiceResponse(w, r, MoveResponse{Moved: moved, Messages: tee.collected()}, nil, http.StatusOK)
}

// AnalyzeNetworkHandler lida com a requisição GET /v1/network/analysis.
// @Summary Analisa a rede de armazéns
// @Description Lista os problemas de cada armazém sem alterar nenhum deles.
// @Tags routing
// @Produce json
// @Success 200 {object} AnalysisResponse "Status dos armazéns"
// @Failure 401 {object} domain.ErrorResponse "Token ausente ou inválido"
// @Security ApiKeyAuth
// @Router /network/analysis [get]
func (h *Handler) AnalyzeNetworkHandler(w http.ResponseWriter, r *http.Request) {
	tee := h.newTee()
	statuses := h.Service.AnalyzeNetwork(tee.sink)
	h.Logger.Debug("Análise da rede via API.", logFields(r, map[string]interface{}{"warehouses": len(statuses)}))
	h.handleServiceResponse(w, r, AnalysisResponse{Statuses: statuses, Messages: tee.collected()}, nil, http.StatusOK)
}

// ListEventsHandler lida com a requisição GET /v1/events.
// @Summary Lista o log de eventos
// @Description Entradas na ordem em que foram registradas.
// @Tags routing
// @Produce json
// @Success 200 {array} EventResponse "Eventos"
// @Router /events [get]
func (h *Handler) ListEventsHandler(w http.ResponseWriter, r *http.Request) {
	entries := h.Service.Log()
	events := make([]EventResponse, 0, len(entries))
	for _, e := range entries {
		events = append(events, EventResponse{Entry: e, Line: e.String()})
	}
	h.handleServiceResponse(w, r, events, nil, http.StatusOK)
}
