package seed

import (
	"stockroute/internal/domain"
	"stockroute/internal/service/routingservice"
)

// Network é o subconjunto do gerenciador usado para montar a rede de demonstração.
type Network interface {
	CreateWarehouse(typ domain.WarehouseType, volume float64, address string) (*domain.Warehouse, error)
	DeliverProducts(products []domain.Product, sink routingservice.LogSink) routingservice.DeliveryReport
}

type warehousePlan struct {
	typ     domain.WarehouseType
	volume  float64
	address string
}

var demoWarehouses = []warehousePlan{
	{domain.WarehouseGeneral, 1000, "Rua Central, 1"},
	{domain.WarehouseCold, 500, "Rua Frigorífica, 2"},
	{domain.WarehouseSorting, 800, "Rua da Triagem, 3"},
	{domain.WarehouseDisposal, 300, "Rua do Descarte, 4"},
}

// DemoProducts devolve o lote de demonstração entregue pelo DemoNetwork.
func DemoProducts() []domain.Product {
	return []domain.Product{
		{ID: 101, SupplierID: 1, Name: "Maçãs", UnitVolume: 0.5, UnitPrice: 50, DaysToExpiry: 45},
		{ID: 102, SupplierID: 1, Name: "Leite", UnitVolume: 1.0, UnitPrice: 80, DaysToExpiry: 5},
		{ID: 103, SupplierID: 2, Name: "Manteiga", UnitVolume: 0.25, UnitPrice: 120, DaysToExpiry: 60},
		{ID: 104, SupplierID: 2, Name: "Kefir", UnitVolume: 1.0, UnitPrice: 75, DaysToExpiry: 2},
		{ID: 105, SupplierID: 3, Name: "Queijo vencido", UnitVolume: 2.0, UnitPrice: 200, DaysToExpiry: 0},
	}
}

// DemoNetwork cria um armazém de cada tipo e entrega o lote de demonstração
// sem registrar eventos.
func DemoNetwork(network Network) (routingservice.DeliveryReport, error) {
	for _, plan := range demoWarehouses {
		if _, err := network.CreateWarehouse(plan.typ, plan.volume, plan.address); err != nil {
			return routingservice.DeliveryReport{}, err
		}
	}
	return network.DeliverProducts(DemoProducts(), routingservice.Discard), nil
}
