package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/V-Favre/kos/internal/config"
	"github.com/V-Favre/kos/internal/models"
	"github.com/V-Favre/kos/internal/services"
)

var summaryMenu = config.Menu{
	KebabTypes: []string{"Galette", "Sandwich"},
	Meats:      []string{"Poulet", "Boeuf"},
	Sauces:     []string{"Blanche", "Cocktail", "Piquante"},
	Vegetables: []string{"Salade melee", "Carotte", "Choux"},
}

func natureOrder(kebabType, meat string, sauces ...string) models.Order {
	return models.Order{
		KebabType: kebabType,
		Meat:      meat,
		Sauces:    models.OptionList(sauces),
		IsNature:  true,
	}
}

func TestSummarizeEmpty(t *testing.T) {
	assert.Equal(t, "No orders.", services.Summarize(nil, summaryMenu))
	assert.Equal(t, "No orders.", services.Summarize([]models.Order{}, summaryMenu))
}

func TestSummarizeGroupsIdenticalConfigurations(t *testing.T) {
	// A, A, B: the two A's collapse into one *2 line, first-seen first.
	orders := []models.Order{
		natureOrder("Galette", "Poulet", "Blanche"),
		natureOrder("Galette", "Poulet", "Blanche"),
		natureOrder("Sandwich", "Boeuf", "Cocktail"),
	}

	got := services.Summarize(orders, summaryMenu)
	want := "TOTAL: 3\n" +
		"*2 Kebab Galette Poulet Nature Blanche\n" +
		"Kebab Sandwich Boeuf Nature Cocktail"
	assert.Equal(t, want, got)
}

func TestSummarizeFirstSeenOrder(t *testing.T) {
	// B first this time: line order follows the input, not the count.
	orders := []models.Order{
		natureOrder("Sandwich", "Boeuf", "Cocktail"),
		natureOrder("Galette", "Poulet", "Blanche"),
		natureOrder("Galette", "Poulet", "Blanche"),
	}

	got := services.Summarize(orders, summaryMenu)
	want := "TOTAL: 3\n" +
		"Kebab Sandwich Boeuf Nature Cocktail\n" +
		"*2 Kebab Galette Poulet Nature Blanche"
	assert.Equal(t, want, got)
}

func TestSummarizeVegetableDescriptions(t *testing.T) {
	tests := []struct {
		name  string
		order models.Order
		want  string
	}{
		{
			name:  "nature renders as Nature even with stored bytes",
			order: models.Order{KebabType: "Galette", Meat: "Poulet", IsNature: true, Vegetables: models.OptionList{"Carotte"}},
			want:  "TOTAL: 1\nKebab Galette Poulet Nature None",
		},
		{
			name:  "empty custom selection renders as None",
			order: models.Order{KebabType: "Galette", Meat: "Poulet"},
			want:  "TOTAL: 1\nKebab Galette Poulet None None",
		},
		{
			name:  "vegetables render in menu order regardless of stored order",
			order: models.Order{KebabType: "Galette", Meat: "Poulet", Vegetables: models.OptionList{"Choux", "Salade melee"}},
			want:  "TOTAL: 1\nKebab Galette Poulet Salade melee, Choux None",
		},
		{
			name:  "off-menu vegetables go last in stored order",
			order: models.Order{KebabType: "Galette", Meat: "Poulet", Vegetables: models.OptionList{"Oignon", "Carotte"}},
			want:  "TOTAL: 1\nKebab Galette Poulet Carotte, Oignon None",
		},
		{
			name:  "sauces keep stored order",
			order: models.Order{KebabType: "Galette", Meat: "Poulet", IsNature: true, Sauces: models.OptionList{"Piquante", "Blanche"}},
			want:  "TOTAL: 1\nKebab Galette Poulet Nature Piquante, Blanche",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, services.Summarize([]models.Order{tt.order}, summaryMenu))
		})
	}
}

func TestSummarizeDistinguishesNatureFromEmptySelection(t *testing.T) {
	orders := []models.Order{
		{KebabType: "Galette", Meat: "Poulet", IsNature: true},
		{KebabType: "Galette", Meat: "Poulet"},
	}

	got := services.Summarize(orders, summaryMenu)
	assert.Equal(t, "TOTAL: 2\n"+
		"Kebab Galette Poulet Nature None\n"+
		"Kebab Galette Poulet None None", got)
}

func TestSummarizeDeterministic(t *testing.T) {
	orders := []models.Order{
		{KebabType: "Galette", Meat: "Poulet", Vegetables: models.OptionList{"Choux", "Carotte"}, Sauces: models.OptionList{"Cocktail", "Blanche"}},
		natureOrder("Sandwich", "Boeuf", "Piquante"),
		{KebabType: "Galette", Meat: "Poulet", Vegetables: models.OptionList{"Carotte", "Choux"}, Sauces: models.OptionList{"Cocktail", "Blanche"}},
		natureOrder("Sandwich", "Boeuf", "Piquante"),
		natureOrder("Galette", "Boeuf"),
	}

	first := services.Summarize(orders, summaryMenu)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, services.Summarize(orders, summaryMenu))
	}

	// the two Galette/Poulet orders differ only in stored vegetable
	// order; menu ordering makes them the same configuration
	assert.Contains(t, first, "*2 Kebab Galette Poulet Carotte, Choux Cocktail, Blanche")
	assert.Contains(t, first, "*2 Kebab Sandwich Boeuf Nature Piquante")
}
