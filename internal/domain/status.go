package domain

// WarehouseStatus resume os problemas detectados em um armazém.
type WarehouseStatus struct {
	WarehouseID        int           `json:"warehouse_id"`
	WarehouseType      WarehouseType `json:"warehouse_type"`
	NeedsOptimization  bool          `json:"needs_optimization"`
	HasExpiredProducts bool          `json:"has_expired_products"`
	IsAlmostFull       bool          `json:"is_almost_full"`
}

// Issues lista os problemas na ordem fixa de exibição.
func (s WarehouseStatus) Issues() []string {
	var issues []string
	if s.NeedsOptimization {
		issues = append(issues, "requer otimização")
	}
	if s.HasExpiredProducts {
		issues = append(issues, "há produtos vencidos")
	}
	if s.IsAlmostFull {
		issues = append(issues, "pouco espaço livre")
	}
	return issues
}

// OK é verdadeiro quando nenhum indicador está ativo.
func (s WarehouseStatus) OK() bool {
	return len(s.Issues()) == 0
}

// ProductView é um produto acompanhado da sua classificação de validade.
type ProductView struct {
	Product
	ShelfLife ShelfLife `json:"shelf_life"`
}

// WarehouseSnapshot é uma cópia imutável do estado de um armazém.
type WarehouseSnapshot struct {
	ID         int           `json:"id"`
	Type       WarehouseType `json:"type"`
	TypeLabel  string        `json:"type_label"`
	Address    string        `json:"address"`
	Volume     float64       `json:"volume"`
	UsedVolume float64       `json:"used_volume"`
	FreeVolume float64       `json:"free_volume"`
	TotalValue float64       `json:"total_value"`
	IsFull     bool          `json:"is_full"`
	Products   []ProductView `json:"products"`
}
