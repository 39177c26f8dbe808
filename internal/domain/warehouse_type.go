package domain

import (
	"encoding/json"
	"fmt"
	"strings"

	apperror "stockroute/internal/errors"
)

// WarehouseType classifica um armazém e define quais produtos ele recebe.
type WarehouseType int

const (
	WarehouseGeneral WarehouseType = iota
	WarehouseCold
	WarehouseSorting
	WarehouseDisposal
)

var warehouseTypeLabels = map[WarehouseType]string{
	WarehouseGeneral:  "geral",
	WarehouseCold:     "refrigerado",
	WarehouseSorting:  "triagem",
	WarehouseDisposal: "descarte",
}

var warehouseTypeCodes = map[WarehouseType]string{
	WarehouseGeneral:  "general",
	WarehouseCold:     "cold",
	WarehouseSorting:  "sorting",
	WarehouseDisposal: "disposal",
}

const unknownWarehouseLabel = "desconhecido"

// Label retorna o rótulo de exibição do tipo.
func (t WarehouseType) Label() string {
	if label, ok := warehouseTypeLabels[t]; ok {
		return label
	}
	return unknownWarehouseLabel
}

// String retorna o código estável usado na API ("general", "cold", ...).
func (t WarehouseType) String() string {
	if code, ok := warehouseTypeCodes[t]; ok {
		return code
	}
	return fmt.Sprintf("WarehouseType(%d)", int(t))
}

// ParseWarehouseType converte o código da API no tipo correspondente.
func ParseWarehouseType(code string) (WarehouseType, error) {
	normalized := strings.ToLower(strings.TrimSpace(code))
	for t, c := range warehouseTypeCodes {
		if c == normalized {
			return t, nil
		}
	}
	return 0, apperror.NewValidationError(fmt.Sprintf("Tipo de armazém desconhecido: %q.", code))
}

func (t WarehouseType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *WarehouseType) UnmarshalJSON(data []byte) error {
	var code string
	if err := json.Unmarshal(data, &code); err != nil {
		return apperror.NewValidationError("O tipo de armazém deve ser uma string.")
	}
	parsed, err := ParseWarehouseType(code)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
