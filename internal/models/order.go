package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// OptionList is a set of menu option values stored as a single
// comma-joined TEXT column. An empty list round-trips through the empty
// string so the column stays readable with plain SQL tools.
type OptionList []string

// Value implements driver.Valuer.
func (l OptionList) Value() (driver.Value, error) {
	return strings.Join(l, ","), nil
}

// Scan implements sql.Scanner.
func (l *OptionList) Scan(src interface{}) error {
	var raw string
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("cannot scan %T into OptionList", src)
	}
	if raw == "" {
		*l = nil
		return nil
	}
	*l = strings.Split(raw, ",")
	return nil
}

// Order represents a single kebab order on the board.
type Order struct {
	ID         uint       `json:"id" gorm:"primaryKey;autoIncrement"`
	Name       string     `json:"name" gorm:"type:varchar(100);not null"`
	KebabType  string     `json:"kebab_type" gorm:"type:varchar(50);not null"`
	Meat       string     `json:"meat" gorm:"type:varchar(50);not null"`
	Sauces     OptionList `json:"sauces" gorm:"type:text"`
	IsNature   bool       `json:"is_nature"`
	Vegetables OptionList `json:"vegetables" gorm:"type:text"`
	CreatedAt  time.Time  `json:"created_at" gorm:"not null"`
}

// ApplyNatureInvariant forces the effective vegetable set empty for
// nature orders, no matter what the stored column contains. Applied at
// the repository boundary on every read.
func (o *Order) ApplyNatureInvariant() {
	if o.IsNature {
		o.Vegetables = nil
	}
}
