package models

import "github.com/V-Favre/kos/internal/config"

// Veggie modes a submission can carry. Anything else falls back to
// nature, which the form also uses as its pre-selected default.
const (
	VeggieModeNature = "nature"
	VeggieModeAll    = "all"
	VeggieModeCustom = "custom"
)

// DefaultName is used when a submission arrives without a name.
const DefaultName = "Anonymous"

// OrderForm is a raw order submission, before normalization. Sauces are
// accepted verbatim, without membership checking against the menu; that
// permissiveness is longstanding observed behavior and callers render
// whatever was stored.
type OrderForm struct {
	Name       string   `json:"name"`
	KebabType  string   `json:"kebab_type" validate:"required"`
	Meat       string   `json:"meat" validate:"required"`
	Sauces     []string `json:"sauces"`
	VeggieMode string   `json:"veggie_option"`
	Vegetables []string `json:"vegetables"`
}

// Normalize resolves the raw submission into a canonical Order payload.
// ID and CreatedAt are left zero; the store assigns both. Required-field
// validation is the caller's job (the service runs the validator before
// normalizing).
func (f OrderForm) Normalize(menu config.Menu) Order {
	order := Order{
		Name:      f.Name,
		KebabType: f.KebabType,
		Meat:      f.Meat,
		Sauces:    append(OptionList(nil), f.Sauces...),
	}
	if order.Name == "" {
		order.Name = DefaultName
	}

	switch f.VeggieMode {
	case VeggieModeAll:
		order.Vegetables = append(OptionList(nil), menu.Vegetables...)
	case VeggieModeCustom:
		order.Vegetables = append(OptionList(nil), f.Vegetables...)
	default:
		// nature, and the safe fallback for anything unrecognized
		order.IsNature = true
	}
	return order
}
