package routing_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockroute/internal/api/routing"
	"stockroute/internal/domain"
	"stockroute/internal/eventlog"
	"stockroute/internal/pkg/idgen"
	"stockroute/internal/pkg/logger"
	"stockroute/internal/pkg/middleware"
	"stockroute/internal/service/routingservice"
)

func newHandler(t *testing.T, logs *bytes.Buffer) (*routing.Handler, *routingservice.Service) {
	t.Helper()
	svc := routingservice.NewService(eventlog.New(nil), idgen.New(1), logger.Discard(), nil)
	_, err := svc.CreateWarehouse(domain.WarehouseGeneral, 100, "Rua Central, 1")
	require.NoError(t, err)
	_, err = svc.CreateWarehouse(domain.WarehouseGeneral, 100, "Rua Central, 2")
	require.NoError(t, err)
	return routing.NewHandler(svc, logger.NewLoggerWithWriter("debug", logs)), svc
}

func authenticated(req *http.Request, operatorID string) *http.Request {
	ctx := context.WithValue(req.Context(), middleware.OperatorClaimsKey, middleware.OperatorClaims{
		OperatorID: operatorID,
		Role:       domain.RoleOperator,
	})
	return req.WithContext(ctx)
}

func TestDeliverProductsHandler_LogsOperator(t *testing.T) {
	var logs bytes.Buffer
	h, _ := newHandler(t, &logs)

	body, err := json.Marshal(routing.DeliveryRequest{Products: []domain.Product{
		{ID: 7, SupplierID: 1, Name: "Arroz", UnitVolume: 5, UnitPrice: 30, DaysToExpiry: 200},
	}})
	require.NoError(t, err)
	req := authenticated(httptest.NewRequest(http.MethodPost, "/v1/deliveries", bytes.NewReader(body)), "op@stockroute.local")
	rec := httptest.NewRecorder()

	h.DeliverProductsHandler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, logs.String(), `"operator_id":"op@stockroute.local"`)
	assert.Contains(t, logs.String(), "Entrega via API concluída.")
}

func TestMoveProductHandler_LogsOperator(t *testing.T) {
	var logs bytes.Buffer
	h, svc := newHandler(t, &logs)
	svc.DeliverProducts([]domain.Product{
		{ID: 7, SupplierID: 1, Name: "Arroz", UnitVolume: 5, UnitPrice: 30, DaysToExpiry: 200},
	}, nil)

	body, err := json.Marshal(routing.MoveRequest{ProductID: 7, FromWarehouseID: 1, ToWarehouseID: 2})
	require.NoError(t, err)
	req := authenticated(httptest.NewRequest(http.MethodPost, "/v1/moves", bytes.NewReader(body)), "gerente@stockroute.local")
	rec := httptest.NewRecorder()

	h.MoveProductHandler(rec, req)

	var resp routing.MoveResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Moved)
	assert.Contains(t, logs.String(), `"operator_id":"gerente@stockroute.local"`)
}

func TestOptimizeHandler_WithoutClaimsOmitsOperator(t *testing.T) {
	var logs bytes.Buffer
	h, _ := newHandler(t, &logs)

	rec := httptest.NewRecorder()
	h.OptimizeHandler(rec, httptest.NewRequest(http.MethodPost, "/v1/optimizations", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, logs.String(), "Otimização via API concluída.")
	assert.NotContains(t, logs.String(), "operator_id")
}
