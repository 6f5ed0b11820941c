package services

import (
	"fmt"
	"strings"

	"github.com/V-Favre/kos/internal/config"
	"github.com/V-Favre/kos/internal/models"
)

// EmptySummary is returned when no orders fall within the window.
const EmptySummary = "No orders."

// Summarize collapses a sequence of orders into the phone-relay report:
// a TOTAL header, then one line per distinct configuration, counted and
// in first-seen order. Two orders share a line exactly when kebab type,
// meat, effective vegetables and sauces all match.
//
// Output is deterministic for a given input sequence: grouping order
// comes from the input, never from map iteration.
func Summarize(orders []models.Order, menu config.Menu) string {
	if len(orders) == 0 {
		return EmptySummary
	}

	keys := make([]string, 0, len(orders))
	counts := make(map[string]int, len(orders))
	for _, order := range orders {
		key := groupingKey(order, menu)
		if _, seen := counts[key]; !seen {
			keys = append(keys, key)
		}
		counts[key]++
	}

	var b strings.Builder
	fmt.Fprintf(&b, "TOTAL: %d", len(orders))
	for _, key := range keys {
		b.WriteByte('\n')
		if n := counts[key]; n > 1 {
			fmt.Fprintf(&b, "*%d ", n)
		}
		b.WriteString(key)
	}
	return b.String()
}

// groupingKey renders the line body for an order; it doubles as the
// equality key, so two orders with the same rendered line count as one.
func groupingKey(order models.Order, menu config.Menu) string {
	return fmt.Sprintf("Kebab %s %s %s %s",
		order.KebabType,
		order.Meat,
		describeVegetables(order, menu),
		describeSet(order.Sauces))
}

func describeVegetables(order models.Order, menu config.Menu) string {
	if order.IsNature {
		return "Nature"
	}
	return describeSet(sortByMenu(order.Vegetables, menu.Vegetables))
}

func describeSet(values []string) string {
	if len(values) == 0 {
		return "None"
	}
	return strings.Join(values, ", ")
}

// sortByMenu reorders values into the menu's enumeration order. Values
// absent from the menu keep their stored order and go last, so rows
// written outside the normalizer still render deterministically.
func sortByMenu(values models.OptionList, menu []string) []string {
	if len(values) < 2 {
		return values
	}
	ordered := make([]string, 0, len(values))
	remaining := append(models.OptionList(nil), values...)
	for _, option := range menu {
		for i, v := range remaining {
			if v == option {
				ordered = append(ordered, v)
				remaining = append(remaining[:i], remaining[i+1:]...)
				break
			}
		}
	}
	return append(ordered, remaining...)
}
