package domain

import (
	apperror "stockroute/internal/errors"
)

// Motivos de falha de Transfer.
var (
	ErrSameWarehouse        = apperror.NewValidationError("Origem e destino são o mesmo armazém.")
	ErrProductNotFound      = apperror.NewNotFoundError("Produto não encontrado no armazém de origem.")
	ErrInsufficientCapacity = apperror.NewConflictError("Volume livre insuficiente no armazém de destino.")
	ErrDuplicateProduct     = apperror.NewConflictError("O armazém de destino já contém um produto com este ID.")
)

// Transfer move um produto de from para to como uma única operação.
// Os dois armazéns ficam travados (em ordem de ID) durante a verificação e a
// efetivação, então o produto só sai da origem depois que o destino o aceitou.
// Em caso de erro nenhum dos armazéns é alterado.
func Transfer(productID int, from, to *Warehouse) (Product, error) {
	if from == to {
		if _, ok := from.Get(productID); !ok {
			return Product{}, ErrProductNotFound
		}
		return Product{}, ErrSameWarehouse
	}

	first, second := from, to
	if second.id < first.id {
		first, second = second, first
	}
	first.mu.Lock()
	defer first.mu.Unlock()
	second.mu.Lock()
	defer second.mu.Unlock()

	i := from.indexLocked(productID)
	if i < 0 {
		return Product{}, ErrProductNotFound
	}
	p := from.products[i]

	if to.indexLocked(productID) >= 0 {
		return Product{}, ErrDuplicateProduct
	}
	if !to.canAcceptLocked(p) {
		return Product{}, ErrInsufficientCapacity
	}

	from.removeLocked(productID)
	to.products = append(to.products, p)
	return p, nil
}
