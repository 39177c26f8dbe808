package domain

import (
	"fmt"
	"math"
	"strings"

	apperror "stockroute/internal/errors"
)

// ShortShelfLifeDays é o limite (exclusivo) de dias para um produto ser de validade curta.
const ShortShelfLifeDays = 30

// Product representa um lote de mercadoria entregue por um fornecedor.
// O ID é atribuído pelo chamador e não muda depois da criação.
type Product struct {
	ID           int     `json:"id"`
	SupplierID   int     `json:"supplier_id"`
	Name         string  `json:"name"`
	UnitVolume   float64 `json:"unit_volume"`
	UnitPrice    float64 `json:"unit_price"`
	DaysToExpiry int     `json:"days_to_expiry"`
}

// NewProduct valida os campos e cria um Product.
// Nenhum produto parcialmente válido é produzido: qualquer falha retorna ValidationError.
func NewProduct(id, supplierID int, name string, unitVolume, unitPrice float64, daysToExpiry int) (Product, error) {
	p := Product{
		ID:           id,
		SupplierID:   supplierID,
		Name:         name,
		UnitVolume:   unitVolume,
		UnitPrice:    unitPrice,
		DaysToExpiry: daysToExpiry,
	}
	if err := p.Validate(); err != nil {
		return Product{}, err
	}
	return p, nil
}

// Validate verifica as regras de construção do produto.
func (p Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return apperror.NewValidationError("O nome do produto não pode ser vazio.")
	}
	if !isFinite(p.UnitVolume) || p.UnitVolume <= 0 {
		return apperror.NewValidationError("O volume do produto deve ser maior que zero.")
	}
	if !isFinite(p.UnitPrice) || p.UnitPrice < 0 {
		return apperror.NewValidationError("O preço do produto não pode ser negativo.")
	}
	return nil
}

// isFinite rejeita NaN e ±Inf, que passariam pelas comparações com zero.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// IsExpired indica que o prazo de validade acabou (zero ou negativo).
func (p Product) IsExpired() bool { return p.DaysToExpiry <= 0 }

// IsShortShelfLife indica validade curta: entre 1 e 29 dias.
func (p Product) IsShortShelfLife() bool {
	return p.DaysToExpiry > 0 && p.DaysToExpiry < ShortShelfLifeDays
}

// IsLongShelfLife indica validade longa: 30 dias ou mais.
func (p Product) IsLongShelfLife() bool { return p.DaysToExpiry >= ShortShelfLifeDays }

// ShelfLife classifica o produto em exatamente uma categoria.
func (p Product) ShelfLife() ShelfLife {
	switch {
	case p.IsExpired():
		return ShelfLifeExpired
	case p.IsShortShelfLife():
		return ShelfLifeShort
	default:
		return ShelfLifeLong
	}
}

func (p Product) String() string {
	return fmt.Sprintf("ID: %d, %s, volume: %.2f, preço: %.2f, dias até o vencimento: %d",
		p.ID, p.Name, p.UnitVolume, p.UnitPrice, p.DaysToExpiry)
}

// ShelfLife é a classificação derivada de DaysToExpiry.
type ShelfLife string

const (
	ShelfLifeExpired ShelfLife = "expired"
	ShelfLifeShort   ShelfLife = "short"
	ShelfLifeLong    ShelfLife = "long"
)
