package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Validates(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestBasePrice(t *testing.T) {
	c := Default()

	tests := []struct {
		name     string
		category string
		sel      Selection
		want     int
	}{
		{"cake vanilla nuts", CategoryCake, Selection{Flavor: "Vanilla", Topping: "Nuts"}, 350},
		{"cake chocolate extra frosting", CategoryCake, Selection{Flavor: "Chocolate", Topping: "Extra Frosting"}, 370},
		{"cookies sugar", CategoryCookies, Selection{Flavor: "Sugar"}, 130},
		{"pizza large pepperoni", CategoryPizza, Selection{Size: "Large", Flavor: "Pepperoni"}, 450},
		{"unknown category defaults to zero", "Sandwich", Selection{Flavor: "Ham"}, 0},
		{"unknown selection defaults to zero", CategoryCake, Selection{Flavor: "Mango", Topping: "Nuts"}, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, c.BasePrice(tc.category, tc.sel))
		})
	}
}

func TestFinalPrice(t *testing.T) {
	c := Default()

	custom := "Happy Birthday!"
	empty := ""
	blank := "   "

	assert.Equal(t, 350, c.FinalPrice(350, nil))
	assert.Equal(t, 380, c.FinalPrice(350, &custom))
	assert.Equal(t, 350, c.FinalPrice(350, &empty), "empty customization carries no surcharge")
	assert.Equal(t, 350, c.FinalPrice(350, &blank), "blank customization carries no surcharge")
}

func TestListing(t *testing.T) {
	got := Default().Listing()

	assert.Contains(t, got, "Here is our full pricing list:")
	assert.Contains(t, got, "Cake:")
	assert.Contains(t, got, "    - Cherries: ₹350")
	assert.Contains(t, got, "  - Oatmeal Raisin: ₹140")
	assert.Contains(t, got, "  Medium:\n    - Margherita: ₹300")
	assert.Contains(t, got, "Customization charge: ₹30 extra")
	assert.Contains(t, got, "Type 'home' to start over")
}

func TestLoad(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.yaml")
		data := `
cake_flavors: [Chocolate]
cake_toppings: [Nuts]
cookie_types: [Sugar]
pizza_sizes: [Small]
pizza_flavors: [Margherita]
cake_prices:
  Chocolate: {Nuts: 100}
cookie_prices:
  Sugar: 50
pizza_prices:
  Small: {Margherita: 75}
customization_surcharge: 10
`
		require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

		c, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 100, c.BasePrice(CategoryCake, Selection{Flavor: "Chocolate", Topping: "Nuts"}))
		assert.Equal(t, 10, c.Surcharge)
	})

	t.Run("missing price fails validation", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.yaml")
		data := `
cake_flavors: [Chocolate]
cake_toppings: [Nuts]
cake_prices:
  Chocolate: {}
`
		require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

		_, err := Load(path)
		assert.ErrorContains(t, err, "missing cake price")
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.yaml")
		require.NoError(t, os.WriteFile(path, []byte("discounts: true\n"), 0o644))

		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}
