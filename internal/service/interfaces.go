package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/dailydish/backend/internal/model"
	"github.com/dailydish/backend/internal/types"
)

// ICatalogService defines the interface for recipe catalog operations.
type ICatalogService interface {
	ListRecipes(ctx context.Context) ([]*model.Recipe, error)
	GetRecipe(ctx context.Context, id uuid.UUID) (*model.Recipe, error)
	CreateRecipe(ctx context.Context, recipe *model.Recipe) (*model.Recipe, error)
	UpdateRecipe(ctx context.Context, id uuid.UUID, recipe *model.Recipe) (*model.Recipe, error)
	DeleteRecipe(ctx context.Context, id uuid.UUID) error
	SetImageURL(ctx context.Context, id uuid.UUID, url string) error
	FetchCandidates(ctx context.Context, profile *types.DietaryProfile, day types.Weekday) ([]*model.Recipe, error)
	FavoriteRecipe(ctx context.Context, deviceID string, recipeID uuid.UUID) error
	UnfavoriteRecipe(ctx context.Context, deviceID string, recipeID uuid.UUID) error
	ListFavorites(ctx context.Context, deviceID string) ([]*model.Recipe, error)
}

// IProfileService defines the interface for device profile operations.
type IProfileService interface {
	GetProfile(ctx context.Context, deviceID string) (types.DietaryProfile, types.DevicePreferences, error)
	SaveProfile(ctx context.Context, deviceID string, profile types.DietaryProfile, prefs types.DevicePreferences) error
	ResetProfile(ctx context.Context, deviceID string) error
}

// IDailyPickService defines the interface for the daily pick engine.
type IDailyPickService interface {
	Today(ctx context.Context, deviceID string, profile *types.DietaryProfile) (*model.Recipe, error)
	Skip(ctx context.Context, deviceID string, profile *types.DietaryProfile) (*model.Recipe, error)
}

// IAuthService defines the interface for admin authentication.
type IAuthService interface {
	Login(username, password string) (string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
}

// IImageService defines the interface for recipe image storage.
type IImageService interface {
	UploadRecipeImage(ctx context.Context, imageData []byte, contentType string) (string, error)
}

var (
	_ ICatalogService   = (*CatalogService)(nil)
	_ IProfileService   = (*ProfileService)(nil)
	_ IDailyPickService = (*DailyPickService)(nil)
	_ IAuthService      = (*AuthService)(nil)
	_ IImageService     = (*ImageService)(nil)
	_ CandidateSource   = (*CatalogService)(nil)
)
