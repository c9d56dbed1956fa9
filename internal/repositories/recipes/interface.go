package recipes

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/simmerhq/simmer/internal/repositories/recipes Repository

import (
	"context"
)

// Repository defines the interface for recipe persistence. The session
// engine only reads recipes; the write side exists for the rest of the
// product (CRUD forms, AI generation) that shares this store.
type Repository interface {
	// CreateRecipe stores a new recipe with a generated ID
	CreateRecipe(ctx context.Context, input *CreateRecipeInput) (*CreateRecipeOutput, error)

	// GetRecipe retrieves a recipe by ID
	GetRecipe(ctx context.Context, input *GetRecipeInput) (*GetRecipeOutput, error)

	// UpdateRecipe replaces an existing recipe
	UpdateRecipe(ctx context.Context, input *UpdateRecipeInput) error

	// DeleteRecipe removes a recipe
	DeleteRecipe(ctx context.Context, input *DeleteRecipeInput) error

	// ListRecipes retrieves all stored recipes
	ListRecipes(ctx context.Context, input *ListRecipesInput) (*ListRecipesOutput, error)
}
