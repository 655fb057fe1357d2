package testhelpers

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dailydish/backend/internal/model"
)

// NewRecipe builds a recipe fixture with permissive defaults: no dietary
// tags, free of every allergen, easy and quick. Mutate adjusts whatever the
// test cares about.
func NewRecipe(title string, mutate func(*model.Recipe)) *model.Recipe {
	difficulty := "easy"
	recipe := &model.Recipe{
		ID:          uuid.New(),
		Title:       title,
		Description: "A " + title + " for testing.",
		Ingredients: model.JSONBIngredients{
			{Name: "water", Amount: "250", Unit: "ml"},
			{Name: "flour", Amount: "2", Unit: "cup"},
		},
		Steps:       model.JSONBStringArray{"Mix.", "Cook."},
		DietaryTags: model.JSONBStringArray{},
		AllergenFree: model.JSONBStringArray{
			"nuts", "dairy", "gluten", "shellfish", "eggs", "soy", "fish", "sesame",
		},
		PrepTime:   5,
		CookTime:   10,
		Servings:   2,
		Difficulty: &difficulty,
	}
	if mutate != nil {
		mutate(recipe)
	}
	return recipe
}

// SeedRecipes inserts the given recipes with staggered creation times so the
// catalog's stable ordering matches the argument order.
func SeedRecipes(t *testing.T, db *gorm.DB, recipes ...*model.Recipe) {
	t.Helper()
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	for i, recipe := range recipes {
		recipe.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		if err := db.Create(recipe).Error; err != nil {
			t.Fatalf("failed to seed recipe %q: %v", recipe.Title, err)
		}
	}
}
