package recipes

import "github.com/simmerhq/simmer/internal/models"

// CreateRecipeInput contains parameters for creating a recipe
type CreateRecipeInput struct {
	// Recipe is the record to store; its ID and timestamps are set by
	// the repository
	Recipe *models.Recipe
}

// CreateRecipeOutput contains the result of creating a recipe
type CreateRecipeOutput struct {
	// RecipeID is the generated identifier
	RecipeID string
}

// GetRecipeInput contains parameters for retrieving a recipe
type GetRecipeInput struct {
	// RecipeID is the unique identifier for the recipe
	RecipeID string
}

// GetRecipeOutput contains the retrieved recipe
type GetRecipeOutput struct {
	Recipe *models.Recipe
}

// UpdateRecipeInput contains parameters for updating a recipe
type UpdateRecipeInput struct {
	// Recipe is the full replacement record; its ID selects the target
	Recipe *models.Recipe
}

// DeleteRecipeInput contains parameters for deleting a recipe
type DeleteRecipeInput struct {
	// RecipeID is the unique identifier for the recipe
	RecipeID string
}

// ListRecipesInput contains parameters for listing recipes
type ListRecipesInput struct{}

// ListRecipesOutput contains all stored recipes
type ListRecipesOutput struct {
	Recipes []*models.Recipe
}
