package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dailydish/backend/internal/model"
	"github.com/dailydish/backend/internal/types"
)

func TestDisplayQuantityImperialToMetric(t *testing.T) {
	tests := []struct {
		name       string
		amount     string
		unit       string
		scale      float64
		wantAmount string
		wantUnit   string
	}{
		{"tablespoons to ml", "2", "tbsp", 1, "30", "ml"},
		{"cup to ml", "1", "cup", 1, "240", "ml"},
		{"large volume upscales to liters", "5", "cups", 1, "1.2", "L"},
		{"teaspoon to ml", "1", "tsp", 1, "5", "ml"},
		{"fluid ounces to ml", "2", "fl oz", 1, "59.1", "ml"},
		{"ounces to grams", "4", "oz", 1, "113.4", "g"},
		{"pounds to kilograms", "3", "lb", 1, "1.4", "kg"},
		{"scaling applies before conversion", "1", "cup", 2, "480", "ml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, unit := DisplayQuantity(tt.amount, tt.unit, tt.scale, types.SystemMetric)
			assert.Equal(t, tt.wantAmount, amount)
			assert.Equal(t, tt.wantUnit, unit)
		})
	}
}

func TestDisplayQuantityMetricToImperial(t *testing.T) {
	tests := []struct {
		name       string
		amount     string
		unit       string
		scale      float64
		wantAmount string
		wantUnit   string
	}{
		{"cup boundary", "240", "ml", 1, "1", "cups"},
		{"just under a cup becomes tablespoons", "235", "ml", 1, "15.7", "tbsp"},
		{"tablespoon boundary", "15", "ml", 1, "1", "tbsp"},
		{"small volumes become teaspoons", "10", "ml", 1, "2", "tsp"},
		{"liters become cups", "1", "l", 1, "4.2", "cups"},
		{"grams become ounces", "400", "g", 1, "14.1", "oz"},
		{"heavy weights become pounds", "500", "g", 1, "1.1", "lb"},
		{"kilograms become pounds", "1", "kg", 1, "2.2", "lb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, unit := DisplayQuantity(tt.amount, tt.unit, tt.scale, types.SystemImperial)
			assert.Equal(t, tt.wantAmount, amount)
			assert.Equal(t, tt.wantUnit, unit)
		})
	}
}

func TestDisplayQuantityPassthrough(t *testing.T) {
	// Free-form amounts are untouchable: no parsing, no scaling.
	amount, unit := DisplayQuantity("a pinch", "", 2, types.SystemMetric)
	assert.Equal(t, "a pinch", amount)
	assert.Equal(t, "", unit)

	// Unknown units keep their spelling but still scale.
	amount, unit = DisplayQuantity("2", "clove", 1.5, types.SystemMetric)
	assert.Equal(t, "3", amount)
	assert.Equal(t, "clove", unit)

	// A unit already in the target system only gets reformatted.
	amount, unit = DisplayQuantity("250", "ml", 2, types.SystemMetric)
	assert.Equal(t, "500", amount)
	assert.Equal(t, "ml", unit)
}

func TestFormatQuantityRounding(t *testing.T) {
	amount, _ := DisplayQuantity("2.04", "g", 1, types.SystemMetric)
	assert.Equal(t, "2", amount, "near-integral values drop the decimal")

	amount, _ = DisplayQuantity("2.26", "g", 1, types.SystemMetric)
	assert.Equal(t, "2.3", amount, "everything else keeps one decimal")
}

func TestScaleFactor(t *testing.T) {
	recipe := &model.Recipe{Servings: 4}

	assert.Equal(t, 2.0, ScaleFactor(recipe, 8))
	assert.Equal(t, 0.5, ScaleFactor(recipe, 2))
	assert.Equal(t, 1.0, ScaleFactor(recipe, 0), "zero means the recipe's own servings")
	assert.Equal(t, 1.0, ScaleFactor(recipe, -3))
	assert.Equal(t, 1.0, ScaleFactor(&model.Recipe{Servings: 0}, 6), "invalid recipe servings never divide by zero")
}

func TestDisplayIngredients(t *testing.T) {
	ingredients := []model.Ingredient{
		{Name: "milk", Amount: "1", Unit: "cup"},
		{Name: "salt", Amount: "a pinch", Unit: ""},
	}

	display := DisplayIngredients(ingredients, 1, types.SystemMetric)

	assert.Len(t, display, 2)
	assert.Equal(t, types.DisplayIngredient{Name: "milk", Amount: "240", Unit: "ml"}, display[0])
	assert.Equal(t, types.DisplayIngredient{Name: "salt", Amount: "a pinch", Unit: ""}, display[1])
}
