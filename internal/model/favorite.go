package model

import (
	"time"

	"github.com/google/uuid"
)

// RecipeFavorite marks a recipe as favorited by one device.
type RecipeFavorite struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	DeviceID  string    `gorm:"size:64;not null;index;uniqueIndex:idx_device_recipe" json:"device_id"`
	RecipeID  uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_device_recipe" json:"recipe_id"`
}

func (RecipeFavorite) TableName() string {
	return "recipe_favorites"
}
