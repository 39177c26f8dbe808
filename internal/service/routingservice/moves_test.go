package routingservice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockroute/internal/domain"
	"stockroute/internal/service/routingservice"
)

// --- Otimização ---

func TestOptimizeSortingWarehouses_SplitsByShelfLife(t *testing.T) {
	svc, _ := newTestService()
	sorting := mustCreate(t, svc, domain.WarehouseSorting, 100)
	general := mustCreate(t, svc, domain.WarehouseGeneral, 100)
	cold := mustCreate(t, svc, domain.WarehouseCold, 100)
	require.True(t, sorting.Add(item(1, 2, 90)))
	require.True(t, sorting.Add(item(2, 2, 10)))

	report := svc.OptimizeSortingWarehouses(routingservice.Discard)

	assert.Equal(t, routingservice.TransferReport{Moved: 2}, report)
	assert.Equal(t, 0, sorting.Len())
	_, ok := general.Get(1)
	assert.True(t, ok)
	_, ok = cold.Get(2)
	assert.True(t, ok)
}

func TestOptimizeSortingWarehouses_ExpiredGoesToCold(t *testing.T) {
	svc, _ := newTestService()
	sorting := mustCreate(t, svc, domain.WarehouseSorting, 100)
	mustCreate(t, svc, domain.WarehouseGeneral, 100)
	cold := mustCreate(t, svc, domain.WarehouseCold, 100)
	require.True(t, sorting.Add(item(1, 2, 0)))

	svc.OptimizeSortingWarehouses(routingservice.Discard)

	assert.Equal(t, 1, cold.Len())
}

func TestOptimizeSortingWarehouses_FailureDoesNotStopOthers(t *testing.T) {
	svc, _ := newTestService()
	sorting := mustCreate(t, svc, domain.WarehouseSorting, 100)
	mustCreate(t, svc, domain.WarehouseGeneral, 1)
	cold := mustCreate(t, svc, domain.WarehouseCold, 100)
	require.True(t, sorting.Add(item(1, 5, 90)))
	require.True(t, sorting.Add(item(2, 2, 10)))
	c := &collector{}

	report := svc.OptimizeSortingWarehouses(c.sink)

	assert.Equal(t, 1, report.Moved)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, 1, sorting.Len(), "o item que não coube permanece na triagem")
	assert.Equal(t, 1, cold.Len())
	assert.Contains(t, c.messages, "Não foi possível mover o produto 1 do armazém de triagem 1")
}

func TestOptimizeSortingWarehouses_UsesFirstAcceptingTarget(t *testing.T) {
	svc, _ := newTestService()
	sorting := mustCreate(t, svc, domain.WarehouseSorting, 100)
	full := mustCreate(t, svc, domain.WarehouseGeneral, 1)
	spare := mustCreate(t, svc, domain.WarehouseGeneral, 100)
	require.True(t, sorting.Add(item(1, 5, 90)))

	svc.OptimizeSortingWarehouses(routingservice.Discard)

	assert.Equal(t, 0, full.Len())
	assert.Equal(t, 1, spare.Len())
}

// --- Varredura de vencidos ---

func TestMoveExpiredProducts_Fail_NoDisposalWarehouse(t *testing.T) {
	svc, events := newTestService()
	general := mustCreate(t, svc, domain.WarehouseGeneral, 100)
	require.True(t, general.Add(item(1, 1, 0)))
	before := general.Products()

	report := svc.MoveExpiredProducts(nil)

	assert.True(t, report.Aborted)
	assert.Equal(t, before, general.Products())
	require.Equal(t, 1, events.Len())
	assert.Contains(t, events.Lines()[0], "Nenhum armazém de descarte disponível")
}

func TestMoveExpiredProducts_SweepsAllButDisposal(t *testing.T) {
	svc, _ := newTestService()
	general := mustCreate(t, svc, domain.WarehouseGeneral, 100)
	cold := mustCreate(t, svc, domain.WarehouseCold, 100)
	disposal := mustCreate(t, svc, domain.WarehouseDisposal, 100)
	require.True(t, general.Add(item(1, 1, 0)))
	require.True(t, general.Add(item(2, 1, 60)))
	require.True(t, cold.Add(item(3, 1, -5)))
	require.True(t, disposal.Add(item(4, 1, -1)))

	report := svc.MoveExpiredProducts(routingservice.Discard)

	assert.Equal(t, routingservice.TransferReport{Moved: 2}, report)
	assert.Equal(t, 1, general.Len())
	assert.Equal(t, 0, cold.Len())
	assert.Equal(t, 3, disposal.Len())
}

func TestMoveExpiredProducts_OverflowsToNextDisposal(t *testing.T) {
	svc, _ := newTestService()
	general := mustCreate(t, svc, domain.WarehouseGeneral, 100)
	first := mustCreate(t, svc, domain.WarehouseDisposal, 2)
	second := mustCreate(t, svc, domain.WarehouseDisposal, 1)
	require.True(t, general.Add(item(1, 2, 0)))
	require.True(t, general.Add(item(2, 1, 0)))
	require.True(t, general.Add(item(3, 1, 0)))
	c := &collector{}

	report := svc.MoveExpiredProducts(c.sink)

	assert.Equal(t, 2, report.Moved)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, 1, first.Len())
	assert.Equal(t, 1, second.Len())
	assert.Equal(t, 1, general.Len())
	assert.Contains(t, c.messages, "Não foi possível mover o produto vencido 3 para um armazém de descarte")
}

// --- Movimentação manual ---

func TestMoveProduct_Success(t *testing.T) {
	svc, _ := newTestService()
	from := mustCreate(t, svc, domain.WarehouseGeneral, 100)
	to := mustCreate(t, svc, domain.WarehouseCold, 100)
	require.True(t, from.Add(item(7, 3, 10)))
	c := &collector{}

	ok := svc.MoveProduct(7, from.ID(), to.ID(), c.sink)

	assert.True(t, ok)
	assert.Equal(t, 0, from.Len())
	assert.Equal(t, 1, to.Len())
	assert.Equal(t, []string{"Produto 'Item' (ID: 7) movido do armazém 1 para o armazém 2"}, c.messages)
}

func TestMoveProduct_Fail_ProductNotInSource(t *testing.T) {
	svc, _ := newTestService()
	from := mustCreate(t, svc, domain.WarehouseGeneral, 100)
	to := mustCreate(t, svc, domain.WarehouseCold, 100)
	require.True(t, to.Add(item(7, 3, 10)))
	fromBefore, toBefore := from.Products(), to.Products()
	c := &collector{}

	ok := svc.MoveProduct(7, from.ID(), to.ID(), c.sink)

	assert.False(t, ok)
	require.Len(t, c.messages, 1)
	assert.Contains(t, c.messages[0], "não encontrado")
	assert.Equal(t, fromBefore, from.Products())
	assert.Equal(t, toBefore, to.Products())
}

func TestMoveProduct_Fail_UnknownWarehouse(t *testing.T) {
	svc, _ := newTestService()
	from := mustCreate(t, svc, domain.WarehouseGeneral, 100)
	require.True(t, from.Add(item(7, 3, 10)))
	c := &collector{}

	assert.False(t, svc.MoveProduct(7, from.ID(), 99, c.sink))
	assert.False(t, svc.MoveProduct(7, 99, from.ID(), c.sink))
	assert.Equal(t, []string{
		"Erro: Um dos armazéns não foi encontrado",
		"Erro: Um dos armazéns não foi encontrado",
	}, c.messages)
	assert.Equal(t, 1, from.Len())
}

func TestMoveProduct_Fail_InsufficientCapacity(t *testing.T) {
	svc, _ := newTestService()
	from := mustCreate(t, svc, domain.WarehouseGeneral, 100)
	to := mustCreate(t, svc, domain.WarehouseCold, 2)
	require.True(t, from.Add(item(7, 3, 10)))
	c := &collector{}

	ok := svc.MoveProduct(7, from.ID(), to.ID(), c.sink)

	assert.False(t, ok)
	assert.Equal(t, []string{"Erro: Volume insuficiente no armazém de destino 2 para o produto 7"}, c.messages)
	assert.Equal(t, 1, from.Len(), "o produto nunca sai da origem sem o destino aceitar")
}

func TestMoveProduct_Fail_SameWarehouse(t *testing.T) {
	svc, _ := newTestService()
	w := mustCreate(t, svc, domain.WarehouseGeneral, 100)
	require.True(t, w.Add(item(7, 3, 10)))
	c := &collector{}

	assert.False(t, svc.MoveProduct(7, w.ID(), w.ID(), c.sink))
	assert.Equal(t, []string{"Erro: O produto 7 já está no armazém 1"}, c.messages)
	assert.Equal(t, 1, w.Len())
}
