package domain

import (
	"fmt"
	"strings"
	"sync"

	apperror "stockroute/internal/errors"
)

const (
	// FullTolerance absorve o erro de acumulação de ponto flutuante em IsFull.
	FullTolerance = 0.01
	// AlmostFullRatio é a fração de volume livre abaixo da qual o armazém está quase cheio.
	AlmostFullRatio = 0.1
)

// Warehouse representa um armazém com capacidade volumétrica limitada.
// A lista de produtos é a única autoridade sobre quais produtos estão no armazém;
// cada operação sobre ela (CanAccept, Add, Remove) é atômica.
type Warehouse struct {
	mu       sync.RWMutex
	id       int
	typ      WarehouseType
	volume   float64
	address  string
	products []Product
}

// NewWarehouse valida os dados e cria um armazém vazio.
func NewWarehouse(id int, typ WarehouseType, volume float64, address string) (*Warehouse, error) {
	if id <= 0 {
		return nil, apperror.NewValidationError("O ID do armazém deve ser positivo.")
	}
	if typ.Label() == unknownWarehouseLabel {
		return nil, apperror.NewValidationError(fmt.Sprintf("Tipo de armazém inválido: %d.", int(typ)))
	}
	if !isFinite(volume) || volume <= 0 {
		return nil, apperror.NewValidationError("O volume do armazém deve ser maior que zero.")
	}
	if strings.TrimSpace(address) == "" {
		return nil, apperror.NewValidationError("O endereço do armazém não pode ser vazio.")
	}
	return &Warehouse{id: id, typ: typ, volume: volume, address: address}, nil
}

func (w *Warehouse) ID() int             { return w.id }
func (w *Warehouse) Type() WarehouseType { return w.typ }
func (w *Warehouse) Address() string     { return w.address }

func (w *Warehouse) Volume() float64 {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.volume
}

// SetVolume altera a capacidade total. Não aceita valores que deixariam
// o volume ocupado acima da nova capacidade.
func (w *Warehouse) SetVolume(volume float64) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !isFinite(volume) || volume <= 0 {
		return apperror.NewValidationError("O volume do armazém deve ser maior que zero.")
	}
	if used := w.usedVolumeLocked(); volume < used {
		return apperror.NewConflictError(fmt.Sprintf(
			"O novo volume %.2f é menor que o volume ocupado %.2f no armazém %d.", volume, used, w.id))
	}
	w.volume = volume
	return nil
}

// Products retorna uma cópia da lista, na ordem de inserção.
func (w *Warehouse) Products() []Product {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return append([]Product(nil), w.products...)
}

func (w *Warehouse) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.products)
}

func (w *Warehouse) UsedVolume() float64 {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.usedVolumeLocked()
}

func (w *Warehouse) FreeVolume() float64 {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.freeVolumeLocked()
}

// IsFull considera o armazém cheio quando sobra no máximo FullTolerance de volume.
func (w *Warehouse) IsFull() bool {
	return w.FreeVolume() <= FullTolerance
}

// TotalValue soma o preço unitário de cada lote, sem ponderar por volume.
func (w *Warehouse) TotalValue() float64 {
	w.mu.RLock()
	defer w.mu.RUnlock()
	total := 0.0
	for _, p := range w.products {
		total += p.UnitPrice
	}
	return total
}

// CanAccept informa se há volume livre suficiente para o produto.
// Produtos inválidos (e.g., valor zero de Product) nunca são aceitos.
func (w *Warehouse) CanAccept(p Product) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.canAcceptLocked(p)
}

// Add insere o produto no final da lista se couber e se o ID ainda não estiver presente.
func (w *Warehouse) Add(p Product) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.canAcceptLocked(p) || w.indexLocked(p.ID) >= 0 {
		return false
	}
	w.products = append(w.products, p)
	return true
}

// Remove retira o primeiro produto com o ID informado.
func (w *Warehouse) Remove(productID int) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.removeLocked(productID)
}

// Get busca o primeiro produto com o ID informado.
func (w *Warehouse) Get(productID int) (Product, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if i := w.indexLocked(productID); i >= 0 {
		return w.products[i], true
	}
	return Product{}, false
}

// Clear esvazia o armazém.
func (w *Warehouse) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.products = nil
}

func (w *Warehouse) ExpiredProducts() []Product {
	return w.filter(Product.IsExpired)
}

func (w *Warehouse) ShortShelfLifeProducts() []Product {
	return w.filter(Product.IsShortShelfLife)
}

func (w *Warehouse) LongShelfLifeProducts() []Product {
	return w.filter(Product.IsLongShelfLife)
}

// Status calcula os indicadores usados na análise da rede.
func (w *Warehouse) Status() WarehouseStatus {
	w.mu.RLock()
	defer w.mu.RUnlock()

	status := WarehouseStatus{WarehouseID: w.id, WarehouseType: w.typ}
	status.NeedsOptimization = w.typ == WarehouseSorting && len(w.products) > 0
	for _, p := range w.products {
		if p.IsExpired() {
			status.HasExpiredProducts = true
			break
		}
	}
	status.IsAlmostFull = w.freeVolumeLocked() < w.volume*AlmostFullRatio
	return status
}

// Snapshot copia o estado atual para exibição (API, relatórios).
func (w *Warehouse) Snapshot() WarehouseSnapshot {
	w.mu.RLock()
	defer w.mu.RUnlock()

	snap := WarehouseSnapshot{
		ID:         w.id,
		Type:       w.typ,
		TypeLabel:  w.typ.Label(),
		Address:    w.address,
		Volume:     w.volume,
		UsedVolume: w.usedVolumeLocked(),
		FreeVolume: w.freeVolumeLocked(),
		Products:   make([]ProductView, 0, len(w.products)),
	}
	snap.IsFull = snap.FreeVolume <= FullTolerance
	for _, p := range w.products {
		snap.TotalValue += p.UnitPrice
		snap.Products = append(snap.Products, ProductView{Product: p, ShelfLife: p.ShelfLife()})
	}
	return snap
}

func (w *Warehouse) filter(keep func(Product) bool) []Product {
	w.mu.RLock()
	defer w.mu.RUnlock()
	var out []Product
	for _, p := range w.products {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

// --- helpers que exigem o lock já adquirido ---

func (w *Warehouse) usedVolumeLocked() float64 {
	used := 0.0
	for _, p := range w.products {
		used += p.UnitVolume
	}
	return used
}

func (w *Warehouse) freeVolumeLocked() float64 {
	return w.volume - w.usedVolumeLocked()
}

func (w *Warehouse) canAcceptLocked(p Product) bool {
	if p.Validate() != nil {
		return false
	}
	return w.freeVolumeLocked() >= p.UnitVolume
}

func (w *Warehouse) indexLocked(productID int) int {
	for i, p := range w.products {
		if p.ID == productID {
			return i
		}
	}
	return -1
}

func (w *Warehouse) removeLocked(productID int) bool {
	i := w.indexLocked(productID)
	if i < 0 {
		return false
	}
	w.products = append(w.products[:i], w.products[i+1:]...)
	return true
}
