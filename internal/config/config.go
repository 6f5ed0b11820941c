package config

import (
	"time"

	"github.com/spf13/viper"
)

// Menu holds the option lists customers can pick from. The lists are
// process-wide configuration; the order of each slice is the display and
// join order used everywhere an option set is rendered.
type Menu struct {
	KebabTypes []string
	Meats      []string
	Sauces     []string
	Vegetables []string
}

// Config is the full application configuration, built once at startup and
// passed by reference to the components that need it.
type Config struct {
	AppPort      string
	DatabasePath string
	OrderWindow  time.Duration
	Menu         Menu
}

// Load reads configuration from environment variables via Viper, falling
// back to the defaults of the original kebab stand setup.
func Load() *Config {
	v := viper.New()

	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("DATABASE_PATH", "kebab_orders.db")
	v.SetDefault("ORDER_WINDOW", "4h")
	v.SetDefault("KEBAB_TYPES", []string{"Galette", "Sandwich"})
	v.SetDefault("MEAT_OPTIONS", []string{"Poulet", "Boeuf&Veaux", "Boeuf", "Veaux", "Vegetarian (Falafel)"})
	v.SetDefault("SAUCE_OPTIONS", []string{"Blanche", "Cocktail", "Piquante"})
	v.SetDefault("VEGETABLE_OPTIONS", []string{"Salade melee", "Carotte", "Choux"})
	v.AutomaticEnv()

	return &Config{
		AppPort:      v.GetString("APP_PORT"),
		DatabasePath: v.GetString("DATABASE_PATH"),
		OrderWindow:  v.GetDuration("ORDER_WINDOW"),
		Menu: Menu{
			KebabTypes: v.GetStringSlice("KEBAB_TYPES"),
			Meats:      v.GetStringSlice("MEAT_OPTIONS"),
			Sauces:     v.GetStringSlice("SAUCE_OPTIONS"),
			Vegetables: v.GetStringSlice("VEGETABLE_OPTIONS"),
		},
	}
}
