package service

import (
	"github.com/dailydish/backend/internal/model"
	"github.com/dailydish/backend/internal/types"
)

// RecipeMatches reports whether a recipe qualifies for a dietary profile on
// the given weekday. Checks run in a fixed order and short-circuit on the
// first failure.
func RecipeMatches(recipe *model.Recipe, profile *types.DietaryProfile, day types.Weekday) bool {
	// Allergens: the recipe must declare itself free of every selected
	// allergy. A missing tag counts as unsafe.
	for _, allergy := range profile.SelectedAllergies {
		if !recipe.AllergenFree.Contains(string(allergy)) {
			return false
		}
	}

	// Diets: at least one selected diet must appear in the recipe's tags.
	if len(profile.SelectedDiets) > 0 {
		matched := false
		for _, diet := range profile.SelectedDiets {
			if recipe.DietaryTags.Contains(string(diet)) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	difficulties, maxDuration := profile.EffectiveConstraints(day)

	// Difficulty: recipes without a difficulty value (legacy catalog entries)
	// always pass.
	if len(difficulties) > 0 && recipe.Difficulty != nil {
		matched := false
		for _, difficulty := range difficulties {
			if string(difficulty) == *recipe.Difficulty {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	if limit, ok := maxDuration.Minutes(); ok && recipe.TotalTime() > limit {
		return false
	}

	return true
}

// FilterRecipes returns the recipes that match the profile, preserving the
// input order.
func FilterRecipes(recipes []*model.Recipe, profile *types.DietaryProfile, day types.Weekday) []*model.Recipe {
	matched := make([]*model.Recipe, 0, len(recipes))
	for _, recipe := range recipes {
		if RecipeMatches(recipe, profile, day) {
			matched = append(matched, recipe)
		}
	}
	return matched
}
