package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dailydish/backend/internal/model"
	"github.com/dailydish/backend/internal/types"
)

// CatalogService handles recipe catalog operations.
type CatalogService struct {
	db *gorm.DB
}

// NewCatalogService creates a new CatalogService instance.
func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

// ListRecipes returns the whole catalog in a stable order. The ordering
// matters: deterministic daily selection indexes into this list, so the same
// catalog snapshot must always come back in the same sequence.
func (s *CatalogService) ListRecipes(ctx context.Context) ([]*model.Recipe, error) {
	var recipes []model.Recipe
	if err := s.db.WithContext(ctx).Order("created_at, id").Find(&recipes).Error; err != nil {
		return nil, err
	}
	result := make([]*model.Recipe, len(recipes))
	for i := range recipes {
		result[i] = &recipes[i]
	}
	return result, nil
}

// GetRecipe retrieves a recipe by ID.
func (s *CatalogService) GetRecipe(ctx context.Context, id uuid.UUID) (*model.Recipe, error) {
	var recipe model.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// CreateRecipe creates a new catalog entry.
func (s *CatalogService) CreateRecipe(ctx context.Context, recipe *model.Recipe) (*model.Recipe, error) {
	if recipe.ID == uuid.Nil {
		recipe.ID = uuid.New()
	}
	if err := s.db.WithContext(ctx).Create(recipe).Error; err != nil {
		return nil, err
	}
	return recipe, nil
}

// UpdateRecipe updates a catalog entry.
func (s *CatalogService) UpdateRecipe(ctx context.Context, id uuid.UUID, recipe *model.Recipe) (*model.Recipe, error) {
	if err := s.db.WithContext(ctx).Model(&model.Recipe{}).Where("id = ?", id).Updates(recipe).Error; err != nil {
		return nil, err
	}
	return s.GetRecipe(ctx, id)
}

// DeleteRecipe removes a catalog entry.
func (s *CatalogService) DeleteRecipe(ctx context.Context, id uuid.UUID) error {
	var recipe model.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(&model.Recipe{}, "id = ?", id).Error
}

// SetImageURL stores the uploaded image location on a recipe.
func (s *CatalogService) SetImageURL(ctx context.Context, id uuid.UUID, url string) error {
	return s.db.WithContext(ctx).Model(&model.Recipe{}).Where("id = ?", id).Update("image_url", url).Error
}

// FetchCandidates returns the catalog filtered through the matching
// predicate, in the catalog's stable order.
func (s *CatalogService) FetchCandidates(ctx context.Context, profile *types.DietaryProfile, day types.Weekday) ([]*model.Recipe, error) {
	recipes, err := s.ListRecipes(ctx)
	if err != nil {
		return nil, err
	}
	return FilterRecipes(recipes, profile, day), nil
}

// FavoriteRecipe marks a recipe as a favorite for a device. Favoriting twice
// is not an error.
func (s *CatalogService) FavoriteRecipe(ctx context.Context, deviceID string, recipeID uuid.UUID) error {
	var existing model.RecipeFavorite
	err := s.db.WithContext(ctx).Where("device_id = ? AND recipe_id = ?", deviceID, recipeID).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	favorite := model.RecipeFavorite{DeviceID: deviceID, RecipeID: recipeID}
	if favorite.ID == uuid.Nil {
		favorite.ID = uuid.New()
	}
	return s.db.WithContext(ctx).Create(&favorite).Error
}

// UnfavoriteRecipe removes a device's favorite mark.
func (s *CatalogService) UnfavoriteRecipe(ctx context.Context, deviceID string, recipeID uuid.UUID) error {
	return s.db.WithContext(ctx).Where("device_id = ? AND recipe_id = ?", deviceID, recipeID).Delete(&model.RecipeFavorite{}).Error
}

// ListFavorites returns the recipes a device has favorited.
func (s *CatalogService) ListFavorites(ctx context.Context, deviceID string) ([]*model.Recipe, error) {
	var recipes []model.Recipe
	err := s.db.WithContext(ctx).
		Joins("JOIN recipe_favorites ON recipe_favorites.recipe_id = recipes.id").
		Where("recipe_favorites.device_id = ?", deviceID).
		Order("recipe_favorites.created_at DESC").
		Find(&recipes).Error
	if err != nil {
		return nil, err
	}
	result := make([]*model.Recipe, len(recipes))
	for i := range recipes {
		result[i] = &recipes[i]
	}
	return result, nil
}
