package domain_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockroute/internal/domain"
	apperror "stockroute/internal/errors"
)

func newWarehouse(t *testing.T, id int, typ domain.WarehouseType, volume float64) *domain.Warehouse {
	t.Helper()
	w, err := domain.NewWarehouse(id, typ, volume, "Rua Central, 1")
	require.NoError(t, err)
	return w
}

func product(id int, volume float64, days int) domain.Product {
	return domain.Product{ID: id, SupplierID: 1, Name: "Produto", UnitVolume: volume, UnitPrice: 10, DaysToExpiry: days}
}

func TestNewWarehouse_Fail_Validation(t *testing.T) {
	_, err := domain.NewWarehouse(1, domain.WarehouseGeneral, 0, "Rua A")
	assert.IsType(t, &apperror.ValidationError{}, err)

	_, err = domain.NewWarehouse(1, domain.WarehouseGeneral, 10, " ")
	assert.IsType(t, &apperror.ValidationError{}, err)

	_, err = domain.NewWarehouse(0, domain.WarehouseGeneral, 10, "Rua A")
	assert.IsType(t, &apperror.ValidationError{}, err)

	_, err = domain.NewWarehouse(1, domain.WarehouseType(42), 10, "Rua A")
	assert.IsType(t, &apperror.ValidationError{}, err)
}

func TestWarehouse_CapacityScenario(t *testing.T) {
	w := newWarehouse(t, 1, domain.WarehouseGeneral, 10)

	assert.True(t, w.Add(product(1, 4, 60)))
	assert.True(t, w.Add(product(2, 4, 60)))
	assert.InDelta(t, 8, w.UsedVolume(), 1e-9)
	assert.InDelta(t, 2, w.FreeVolume(), 1e-9)

	third := product(3, 4, 60)
	assert.False(t, w.CanAccept(third))
	assert.False(t, w.Add(third))
	assert.Equal(t, 2, w.Len())
	assert.False(t, w.IsFull())
}

func TestWarehouse_ExactFitAllowed(t *testing.T) {
	w := newWarehouse(t, 1, domain.WarehouseGeneral, 10)

	assert.True(t, w.Add(product(1, 10, 60)))
	assert.True(t, w.IsFull())
	assert.False(t, w.CanAccept(product(2, 0.001, 60)))
}

func TestWarehouse_RejectsInvalidAndDuplicateProducts(t *testing.T) {
	w := newWarehouse(t, 1, domain.WarehouseGeneral, 10)

	assert.False(t, w.CanAccept(domain.Product{}))
	assert.False(t, w.Add(domain.Product{}))

	require.True(t, w.Add(product(7, 1, 60)))
	assert.False(t, w.Add(product(7, 1, 60)))
	assert.Equal(t, 1, w.Len())
}

func TestWarehouse_RemoveAbsentIsNoop(t *testing.T) {
	w := newWarehouse(t, 1, domain.WarehouseGeneral, 10)
	require.True(t, w.Add(product(1, 3, 60)))
	before := w.Products()

	assert.False(t, w.Remove(99))
	assert.Equal(t, before, w.Products())
}

func TestWarehouse_AddRemoveRoundTrip(t *testing.T) {
	w := newWarehouse(t, 1, domain.WarehouseGeneral, 10)
	require.True(t, w.Add(product(1, 0.1, 60)))
	require.True(t, w.Add(product(2, 0.2, 60)))
	free := w.FreeVolume()

	require.True(t, w.Add(product(3, 0.3, 60)))
	require.True(t, w.Remove(3))

	assert.Equal(t, free, w.FreeVolume())
}

func TestWarehouse_FreeVolumeMonotonic(t *testing.T) {
	w := newWarehouse(t, 1, domain.WarehouseGeneral, 5)
	prev := w.FreeVolume()
	for id := 1; id <= 5; id++ {
		require.True(t, w.Add(product(id, 1, 60)))
		assert.Less(t, w.FreeVolume(), prev)
		prev = w.FreeVolume()
	}
	assert.False(t, w.CanAccept(product(6, 1, 60)))
}

func TestWarehouse_GetAndOrder(t *testing.T) {
	w := newWarehouse(t, 1, domain.WarehouseGeneral, 10)
	require.True(t, w.Add(product(3, 1, 60)))
	require.True(t, w.Add(product(1, 1, 60)))
	require.True(t, w.Add(product(2, 1, 60)))

	p, ok := w.Get(1)
	assert.True(t, ok)
	assert.Equal(t, 1, p.ID)

	_, ok = w.Get(42)
	assert.False(t, ok)

	ids := []int{}
	for _, p := range w.Products() {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []int{3, 1, 2}, ids)
}

func TestWarehouse_ShelfLifeQueriesDoNotMutate(t *testing.T) {
	w := newWarehouse(t, 1, domain.WarehouseGeneral, 10)
	require.True(t, w.Add(product(1, 1, 0)))
	require.True(t, w.Add(product(2, 1, 5)))
	require.True(t, w.Add(product(3, 1, 90)))
	require.True(t, w.Add(product(4, 1, -2)))

	assert.Len(t, w.ExpiredProducts(), 2)
	assert.Len(t, w.ShortShelfLifeProducts(), 1)
	assert.Len(t, w.LongShelfLifeProducts(), 1)
	assert.Equal(t, 4, w.Len())
}

func TestWarehouse_TotalValueSumsUnitPrices(t *testing.T) {
	w := newWarehouse(t, 1, domain.WarehouseGeneral, 10)
	require.True(t, w.Add(domain.Product{ID: 1, Name: "a", UnitVolume: 2, UnitPrice: 50}))
	require.True(t, w.Add(domain.Product{ID: 2, Name: "b", UnitVolume: 3, UnitPrice: 25.5}))

	assert.InDelta(t, 75.5, w.TotalValue(), 1e-9)
}

func TestWarehouse_Status(t *testing.T) {
	sorting := newWarehouse(t, 1, domain.WarehouseSorting, 10)
	assert.True(t, sorting.Status().OK())

	require.True(t, sorting.Add(product(1, 9.5, -1)))
	status := sorting.Status()
	assert.True(t, status.NeedsOptimization)
	assert.True(t, status.HasExpiredProducts)
	assert.True(t, status.IsAlmostFull)
	assert.Equal(t, []string{"requer otimização", "há produtos vencidos", "pouco espaço livre"}, status.Issues())

	general := newWarehouse(t, 2, domain.WarehouseGeneral, 10)
	require.True(t, general.Add(product(2, 9, 60)))
	status = general.Status()
	assert.False(t, status.NeedsOptimization)
	assert.False(t, status.IsAlmostFull, "exatamente 10% livre não é quase cheio")
}

func TestNewWarehouse_Fail_NonFiniteVolume(t *testing.T) {
	for _, volume := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := domain.NewWarehouse(1, domain.WarehouseGeneral, volume, "Rua A")
		assert.IsType(t, &apperror.ValidationError{}, err, "volume %v", volume)
	}

	w := newWarehouse(t, 1, domain.WarehouseGeneral, 10)
	assert.IsType(t, &apperror.ValidationError{}, w.SetVolume(math.NaN()))
	assert.IsType(t, &apperror.ValidationError{}, w.SetVolume(math.Inf(1)))
	assert.Equal(t, 10.0, w.Volume())
}

func TestWarehouse_SetVolume(t *testing.T) {
	w := newWarehouse(t, 1, domain.WarehouseGeneral, 10)
	require.True(t, w.Add(product(1, 6, 60)))

	assert.IsType(t, &apperror.ValidationError{}, w.SetVolume(0))
	assert.IsType(t, &apperror.ConflictError{}, w.SetVolume(5))
	require.NoError(t, w.SetVolume(20))
	assert.InDelta(t, 14, w.FreeVolume(), 1e-9)
}

func TestWarehouse_Snapshot(t *testing.T) {
	w := newWarehouse(t, 3, domain.WarehouseCold, 10)
	require.True(t, w.Add(product(1, 2, 5)))
	w.Clear()
	require.True(t, w.Add(product(2, 2, 5)))

	snap := w.Snapshot()
	assert.Equal(t, 3, snap.ID)
	assert.Equal(t, "refrigerado", snap.TypeLabel)
	assert.InDelta(t, 8, snap.FreeVolume, 1e-9)
	require.Len(t, snap.Products, 1)
	assert.Equal(t, domain.ShelfLifeShort, snap.Products[0].ShelfLife)

	raw, err := json.Marshal(snap)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"type":"cold"`)
	assert.Contains(t, string(raw), `"days_to_expiry":5`)
}

func TestWarehouseType_LabelsAndParsing(t *testing.T) {
	assert.Equal(t, "geral", domain.WarehouseGeneral.Label())
	assert.Equal(t, "descarte", domain.WarehouseDisposal.Label())
	assert.Equal(t, "desconhecido", domain.WarehouseType(99).Label())

	typ, err := domain.ParseWarehouseType(" Sorting ")
	require.NoError(t, err)
	assert.Equal(t, domain.WarehouseSorting, typ)

	_, err = domain.ParseWarehouseType("freezer")
	assert.IsType(t, &apperror.ValidationError{}, err)

	var decoded struct {
		Type domain.WarehouseType `json:"type"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"type":"disposal"}`), &decoded))
	assert.Equal(t, domain.WarehouseDisposal, decoded.Type)
}
