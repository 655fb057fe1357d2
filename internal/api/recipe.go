package api

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dailydish/backend/internal/middleware"
	"github.com/dailydish/backend/internal/model"
	"github.com/dailydish/backend/internal/service"
	"github.com/dailydish/backend/internal/types"
)

// maxImageUploadBytes caps recipe image uploads at 5 MiB.
const maxImageUploadBytes = 5 << 20

// RecipeHandler serves the recipe catalog: public reads, device-scoped
// filtering and favorites, admin writes.
type RecipeHandler struct {
	catalog  service.ICatalogService
	profiles service.IProfileService
	images   service.IImageService
	auth     middleware.TokenValidator
}

func NewRecipeHandler(catalog service.ICatalogService, profiles service.IProfileService, images service.IImageService, auth middleware.TokenValidator) *RecipeHandler {
	return &RecipeHandler{
		catalog:  catalog,
		profiles: profiles,
		images:   images,
		auth:     auth,
	}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/filtered", middleware.DeviceRequired(), h.ListFilteredRecipes)
		recipes.GET("/:id", h.GetRecipe)
		recipes.GET("/:id/ingredients", h.GetIngredients)
		recipes.POST("", middleware.AuthMiddleware(h.auth), h.CreateRecipe)
		recipes.PUT("/:id", middleware.AuthMiddleware(h.auth), h.UpdateRecipe)
		recipes.DELETE("/:id", middleware.AuthMiddleware(h.auth), h.DeleteRecipe)
		recipes.POST("/:id/image", middleware.AuthMiddleware(h.auth), h.UploadImage)
		recipes.POST("/:id/favorite", middleware.DeviceRequired(), h.FavoriteRecipe)
		recipes.DELETE("/:id/favorite", middleware.DeviceRequired(), h.UnfavoriteRecipe)
	}
	router.GET("/favorites", middleware.DeviceRequired(), h.ListFavorites)
}

// localizeRecipe returns a copy with the base fields replaced by the variant
// for lang, when one exists. The i18n maps are dropped from the copy so the
// payload stays small.
func localizeRecipe(recipe *model.Recipe, lang string) *model.Recipe {
	if lang == "" {
		return recipe
	}
	localized := *recipe
	localized.Description = recipe.LocalizedDescription(lang)
	localized.Steps = recipe.LocalizedSteps(lang)
	localized.Ingredients = recipe.LocalizedIngredients(lang)
	localized.DescriptionI18n = nil
	localized.StepsI18n = nil
	localized.IngredientNamesI18n = nil
	return &localized
}

func localizeRecipes(recipes []*model.Recipe, lang string) []*model.Recipe {
	if lang == "" {
		return recipes
	}
	localized := make([]*model.Recipe, len(recipes))
	for i, recipe := range recipes {
		localized[i] = localizeRecipe(recipe, lang)
	}
	return localized
}

func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	recipes, err := h.catalog.ListRecipes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recipes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"recipes": localizeRecipes(recipes, c.Query("lang")),
	})
}

// ListFilteredRecipes returns the catalog after the device's dietary profile
// has been applied, i.e. the daily pick's candidate pool.
func (h *RecipeHandler) ListFilteredRecipes(c *gin.Context) {
	deviceID := middleware.DeviceID(c)
	profile, _, err := h.profiles.GetProfile(c.Request.Context(), deviceID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
		return
	}

	day := types.WeekdayOf(service.NewSystemClock().Now())
	recipes, err := h.catalog.FetchCandidates(c.Request.Context(), &profile, day)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to fetch recipes", "code": "catalog_unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"recipes": localizeRecipes(recipes, c.Query("lang")),
	})
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	recipe, err := h.catalog.GetRecipe(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}

	c.JSON(http.StatusOK, localizeRecipe(recipe, c.Query("lang")))
}

// GetIngredients returns the recipe's ingredient list scaled to a serving
// count and converted to the requested unit system. Query params override the
// device's stored preferences; without either, the recipe's own servings and
// the metric system apply.
func (h *RecipeHandler) GetIngredients(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	recipe, err := h.catalog.GetRecipe(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}

	preference := types.PreferenceSystem
	servings := 0

	if deviceID := c.GetHeader(middleware.DeviceIDHeader); deviceID != "" {
		if _, prefs, err := h.profiles.GetProfile(c.Request.Context(), deviceID); err == nil {
			preference = prefs.Measurement
			servings = prefs.DefaultServings
		}
	}
	if units := types.MeasurementPreference(c.Query("units")); units.Valid() {
		preference = units
	}
	if raw := c.Query("servings"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid servings"})
			return
		}
		servings = parsed
	}

	system := types.ResolveSystem(preference, c.GetHeader("X-Region"))
	scale := service.ScaleFactor(recipe, servings)
	ingredients := recipe.LocalizedIngredients(c.Query("lang"))

	if servings <= 0 {
		servings = recipe.Servings
	}

	c.JSON(http.StatusOK, gin.H{
		"recipe_id":   recipe.ID,
		"servings":    servings,
		"system":      system,
		"ingredients": service.DisplayIngredients(ingredients, scale, system),
	})
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var recipe model.Recipe
	if err := c.ShouldBindJSON(&recipe); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.catalog.CreateRecipe(c.Request.Context(), &recipe)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create recipe"})
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	var recipe model.Recipe
	if err := c.ShouldBindJSON(&recipe); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.catalog.UpdateRecipe(c.Request.Context(), id, &recipe)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update recipe"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	if err := h.catalog.DeleteRecipe(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Recipe deleted successfully",
		"id":      id,
	})
}

func (h *RecipeHandler) UploadImage(c *gin.Context) {
	if h.images == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "image storage is not configured"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}
	if _, err := h.catalog.GetRecipe(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing image file"})
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(io.LimitReader(file, maxImageUploadBytes+1))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read image"})
		return
	}
	if len(data) > maxImageUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "image too large"})
		return
	}

	url, err := h.images.UploadRecipeImage(c.Request.Context(), data, header.Header.Get("Content-Type"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
		return
	}
	if err := h.catalog.SetImageURL(c.Request.Context(), id, url); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update recipe"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"image_url": url})
}

func (h *RecipeHandler) FavoriteRecipe(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	if err := h.catalog.FavoriteRecipe(c.Request.Context(), middleware.DeviceID(c), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to favorite recipe"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Recipe favorited successfully", "id": id})
}

func (h *RecipeHandler) UnfavoriteRecipe(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	if err := h.catalog.UnfavoriteRecipe(c.Request.Context(), middleware.DeviceID(c), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unfavorite recipe"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Recipe unfavorited successfully", "id": id})
}

func (h *RecipeHandler) ListFavorites(c *gin.Context) {
	recipes, err := h.catalog.ListFavorites(c.Request.Context(), middleware.DeviceID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch favorites"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"recipes": localizeRecipes(recipes, c.Query("lang")),
	})
}
