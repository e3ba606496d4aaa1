// Package catalog holds the static price catalog: base prices per product
// category/variant plus the flat customization surcharge. The catalog is
// loaded once at startup and read-only for the lifetime of the process.
package catalog

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Category names as stored on the conversation state. Branching inside the
// Flavor/Topping stages dispatches strictly on these values.
const (
	CategoryCake    = "Cake"
	CategoryCookies = "Cookies"
	CategoryPizza   = "Pizza"
)

// Selection carries the variant fields relevant for pricing. Which fields
// matter depends on the category: Cake uses Flavor+Topping, Cookies uses
// Flavor, Pizza uses Size+Flavor.
type Selection struct {
	Flavor  string
	Topping string
	Size    string
}

// Catalog is the full price list. The option slices keep menu order for
// prompts and listings; the maps hold the prices.
type Catalog struct {
	CakeFlavors  []string `yaml:"cake_flavors"`
	CakeToppings []string `yaml:"cake_toppings"`
	CookieTypes  []string `yaml:"cookie_types"`
	PizzaSizes   []string `yaml:"pizza_sizes"`
	PizzaFlavors []string `yaml:"pizza_flavors"`

	// CakePrices: flavor -> topping -> price.
	CakePrices map[string]map[string]int `yaml:"cake_prices"`
	// CookiePrices: type -> price.
	CookiePrices map[string]int `yaml:"cookie_prices"`
	// PizzaPrices: size -> flavor -> price.
	PizzaPrices map[string]map[string]int `yaml:"pizza_prices"`

	// Surcharge is the flat addition applied when an order carries a
	// non-empty customization.
	Surcharge int `yaml:"customization_surcharge"`
}

// Default returns the built-in bakery catalog.
func Default() *Catalog {
	return &Catalog{
		CakeFlavors:  []string{"Chocolate", "Vanilla", "Strawberry"},
		CakeToppings: []string{"Cherries", "Nuts", "Extra Frosting"},
		CookieTypes:  []string{"Chocolate Chip", "Oatmeal Raisin", "Sugar"},
		PizzaSizes:   []string{"Small", "Medium", "Large"},
		PizzaFlavors: []string{"Margherita", "Pepperoni"},
		CakePrices: map[string]map[string]int{
			"Chocolate":  {"Cherries": 350, "Nuts": 360, "Extra Frosting": 370},
			"Vanilla":    {"Cherries": 340, "Nuts": 350, "Extra Frosting": 360},
			"Strawberry": {"Cherries": 345, "Nuts": 355, "Extra Frosting": 365},
		},
		CookiePrices: map[string]int{
			"Chocolate Chip": 150,
			"Oatmeal Raisin": 140,
			"Sugar":          130,
		},
		PizzaPrices: map[string]map[string]int{
			"Small":  {"Margherita": 200, "Pepperoni": 250},
			"Medium": {"Margherita": 300, "Pepperoni": 350},
			"Large":  {"Margherita": 400, "Pepperoni": 450},
		},
		Surcharge: 30,
	}
}

// Load reads a catalog from a YAML file and validates it.
func Load(path string) (*Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: open %q: %w", path, err)
	}
	c := &Catalog{}
	dec := yaml.NewDecoder(strings.NewReader(string(b)))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil {
		return nil, fmt.Errorf("catalog: decode %q: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("catalog: %q: %w", path, err)
	}
	return c, nil
}

// Validate checks that every advertised option has a price.
func (c *Catalog) Validate() error {
	for _, flavor := range c.CakeFlavors {
		for _, topping := range c.CakeToppings {
			if _, ok := c.CakePrices[flavor][topping]; !ok {
				return fmt.Errorf("missing cake price for %s/%s", flavor, topping)
			}
		}
	}
	for _, ct := range c.CookieTypes {
		if _, ok := c.CookiePrices[ct]; !ok {
			return fmt.Errorf("missing cookie price for %s", ct)
		}
	}
	for _, size := range c.PizzaSizes {
		for _, flavor := range c.PizzaFlavors {
			if _, ok := c.PizzaPrices[size][flavor]; !ok {
				return fmt.Errorf("missing pizza price for %s/%s", size, flavor)
			}
		}
	}
	if c.Surcharge < 0 {
		return fmt.Errorf("customization surcharge must not be negative")
	}
	return nil
}

// Categories returns the ordered category option list.
func (c *Catalog) Categories() []string {
	return []string{CategoryCake, CategoryCookies, CategoryPizza}
}

// BasePrice looks up the base price for a category and selection.
// An unrecognized category or selection yields 0; pricing is a lookup, never
// an error, because the engine only prices selections it collected itself.
func (c *Catalog) BasePrice(category string, sel Selection) int {
	switch category {
	case CategoryCake:
		return c.CakePrices[sel.Flavor][sel.Topping]
	case CategoryCookies:
		return c.CookiePrices[sel.Flavor]
	case CategoryPizza:
		return c.PizzaPrices[sel.Size][sel.Flavor]
	default:
		return 0
	}
}

// FinalPrice applies the customization surcharge when a customization is
// present.
func (c *Catalog) FinalPrice(base int, customization *string) int {
	if customization != nil && strings.TrimSpace(*customization) != "" {
		return base + c.Surcharge
	}
	return base
}

// Listing renders the full human-readable price list shown by the Query
// action.
func (c *Catalog) Listing() string {
	var b strings.Builder
	b.WriteString("Here is our full pricing list:\n")

	b.WriteString("\nCake:\n")
	for _, flavor := range c.CakeFlavors {
		fmt.Fprintf(&b, "  %s:\n", flavor)
		for _, topping := range c.CakeToppings {
			fmt.Fprintf(&b, "    - %s: ₹%d\n", topping, c.CakePrices[flavor][topping])
		}
	}

	b.WriteString("\nCookies:\n")
	for _, ct := range c.CookieTypes {
		fmt.Fprintf(&b, "  - %s: ₹%d\n", ct, c.CookiePrices[ct])
	}

	b.WriteString("\nPizza:\n")
	for _, size := range c.PizzaSizes {
		fmt.Fprintf(&b, "  %s:\n", size)
		for _, flavor := range c.PizzaFlavors {
			fmt.Fprintf(&b, "    - %s: ₹%d\n", flavor, c.PizzaPrices[size][flavor])
		}
	}

	fmt.Fprintf(&b, "\nCustomization charge: ₹%d extra\n", c.Surcharge)
	b.WriteString("\nType 'home' to start over or 'place' to begin ordering.")
	return b.String()
}
