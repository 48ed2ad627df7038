package inventory

import (
	"strings"

	"github.com/dschabow91/maintrack/internal"
)

// CreateItemDTO is the request payload for adding an inventory item.
type CreateItemDTO struct {
	Name string `json:"name"`
	SKU  string `json:"sku"`
	Qty  int    `json:"qty"`
	Min  int    `json:"min"`
}

func (d CreateItemDTO) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return internal.NewValidationError("name is required", internal.ErrCodeValidationFailed)
	}
	if d.Qty < 0 {
		return internal.NewValidationError("qty cannot be negative", internal.ErrCodeInvalidQuantity)
	}
	if d.Min < 0 {
		return internal.NewValidationError("min cannot be negative", internal.ErrCodeInvalidQuantity)
	}
	return nil
}

// UpdateItemDTO is the allow-list of mutable item fields.
type UpdateItemDTO struct {
	Name *string `json:"name"`
	SKU  *string `json:"sku"`
	Qty  *int    `json:"qty"`
	Min  *int    `json:"min"`
}

func (d UpdateItemDTO) Validate() error {
	if d.Name != nil && strings.TrimSpace(*d.Name) == "" {
		return internal.NewValidationError("name cannot be empty", internal.ErrCodeValidationFailed)
	}
	if d.Qty != nil && *d.Qty < 0 {
		return internal.NewValidationError("qty cannot be negative", internal.ErrCodeInvalidQuantity)
	}
	if d.Min != nil && *d.Min < 0 {
		return internal.NewValidationError("min cannot be negative", internal.ErrCodeInvalidQuantity)
	}
	return nil
}

func (d UpdateItemDTO) Apply(item *Item) {
	if d.Name != nil {
		item.Name = *d.Name
	}
	if d.SKU != nil {
		item.SKU = *d.SKU
	}
	if d.Qty != nil {
		item.Qty = *d.Qty
	}
	if d.Min != nil {
		item.Min = *d.Min
	}
}
