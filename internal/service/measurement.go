package service

import (
	"math"
	"strconv"
	"strings"

	"github.com/dailydish/backend/internal/model"
	"github.com/dailydish/backend/internal/types"
)

// Conversion tables. Keys are normalized (lower-case, trimmed) unit spellings;
// values convert one source unit into the base metric unit (ml or g).

var imperialVolumeToML = map[string]float64{
	"cup": 240, "cups": 240,
	"tablespoon": 15, "tablespoons": 15, "tbsp": 15,
	"teaspoon": 5, "teaspoons": 5, "tsp": 5,
	"fl oz": 29.57, "fluid ounce": 29.57, "fluid ounces": 29.57,
}

var imperialWeightToG = map[string]float64{
	"oz": 28.35, "ounce": 28.35, "ounces": 28.35,
	"lb": 453.59, "lbs": 453.59, "pound": 453.59, "pounds": 453.59,
}

var metricVolumeToML = map[string]float64{
	"ml": 1, "milliliter": 1, "milliliters": 1, "millilitre": 1, "millilitres": 1,
	"l": 1000, "liter": 1000, "liters": 1000, "litre": 1000, "litres": 1000,
}

var metricWeightToG = map[string]float64{
	"g": 1, "gram": 1, "grams": 1,
	"kg": 1000, "kilogram": 1000, "kilograms": 1000,
}

// DisplayQuantity converts an ingredient's stored amount/unit into a
// display-ready pair for the target system, after applying the serving-size
// scale factor. Amounts that do not parse as numbers ("a pinch") are returned
// untouched. Units outside the conversion tables keep their original spelling
// but still get the scaled numeric value.
func DisplayQuantity(amount, unit string, scaleFactor float64, system types.MeasurementSystem) (string, string) {
	value, err := strconv.ParseFloat(strings.TrimSpace(amount), 64)
	if err != nil {
		return amount, unit
	}
	scaled := value * scaleFactor
	lower := strings.ToLower(strings.TrimSpace(unit))

	if system == types.SystemMetric {
		if factor, ok := imperialVolumeToML[lower]; ok {
			ml := scaled * factor
			if ml >= 1000 {
				return formatQuantity(ml / 1000), "L"
			}
			return formatQuantity(ml), "ml"
		}
		if factor, ok := imperialWeightToG[lower]; ok {
			g := scaled * factor
			if g >= 1000 {
				return formatQuantity(g / 1000), "kg"
			}
			return formatQuantity(g), "g"
		}
	} else {
		if factor, ok := metricVolumeToML[lower]; ok {
			ml := scaled * factor
			if ml >= 240 {
				return formatQuantity(ml / 240), "cups"
			}
			if ml >= 15 {
				return formatQuantity(ml / 15), "tbsp"
			}
			return formatQuantity(ml / 5), "tsp"
		}
		if factor, ok := metricWeightToG[lower]; ok {
			g := scaled * factor
			if g >= 453.59 {
				return formatQuantity(g / 453.59), "lb"
			}
			return formatQuantity(g / 28.35), "oz"
		}
	}

	// Already in the target system, or non-convertible (pinch, clove, piece).
	return formatQuantity(scaled), unit
}

// DisplayIngredients applies DisplayQuantity across a localized ingredient
// list.
func DisplayIngredients(ingredients []model.Ingredient, scaleFactor float64, system types.MeasurementSystem) []types.DisplayIngredient {
	display := make([]types.DisplayIngredient, len(ingredients))
	for i, ing := range ingredients {
		amount, unit := DisplayQuantity(ing.Amount, ing.Unit, scaleFactor, system)
		display[i] = types.DisplayIngredient{Name: ing.Name, Amount: amount, Unit: unit}
	}
	return display
}

// formatQuantity rounds to one decimal place and drops the decimal entirely
// when the rounded value is integral: 2.04 -> "2", 2.26 -> "2.3".
func formatQuantity(value float64) string {
	rounded := math.Round(value*10) / 10
	if rounded == math.Round(rounded) {
		return strconv.FormatFloat(rounded, 'f', 0, 64)
	}
	return strconv.FormatFloat(rounded, 'f', 1, 64)
}

// ScaleFactor computes the serving multiplier for a recipe. A requested value
// of 0 means "use the recipe's own serving count".
func ScaleFactor(recipe *model.Recipe, requestedServings int) float64 {
	if requestedServings <= 0 || recipe.Servings <= 0 {
		return 1.0
	}
	return float64(requestedServings) / float64(recipe.Servings)
}
