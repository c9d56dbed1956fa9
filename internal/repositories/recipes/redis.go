package recipes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/simmerhq/simmer/internal/common/clock"
	"github.com/simmerhq/simmer/internal/models"
)

const (
	// Key prefixes for Redis
	recipeKeyPrefix = "recipe:"
	recipeIndexKey  = "recipes"
)

// ErrRecipeNotFound is returned when a recipe is not found
var ErrRecipeNotFound = errors.New("recipe not found")

// Config holds configuration for the Redis recipe repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// Clock stamps created/updated times
	Clock clock.Clock
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	clock  clock.Clock
}

// NewRedis creates a new Redis-backed recipe repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
		clock:  cfg.Clock,
	}, nil
}

// CreateRecipe stores a new recipe with a generated ID
func (r *redisRepository) CreateRecipe(ctx context.Context, input *CreateRecipeInput) (*CreateRecipeOutput, error) {
	if input == nil || input.Recipe == nil {
		return nil, errors.New("input and recipe cannot be nil")
	}

	recipe := *input.Recipe
	recipe.ID = uuid.New().String()
	now := r.clock.Now()
	recipe.CreatedAt = now
	recipe.UpdatedAt = now

	if err := r.write(ctx, &recipe); err != nil {
		return nil, err
	}

	return &CreateRecipeOutput{
		RecipeID: recipe.ID,
	}, nil
}

// GetRecipe retrieves a recipe by ID
func (r *redisRepository) GetRecipe(ctx context.Context, input *GetRecipeInput) (*GetRecipeOutput, error) {
	if input == nil || input.RecipeID == "" {
		return nil, errors.New("input and recipe ID cannot be empty")
	}

	recipeJSON, err := r.client.Get(ctx, recipeKeyPrefix+input.RecipeID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrRecipeNotFound
		}
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}

	var recipe models.Recipe
	if err := json.Unmarshal([]byte(recipeJSON), &recipe); err != nil {
		return nil, fmt.Errorf("failed to unmarshal recipe: %w", err)
	}

	return &GetRecipeOutput{
		Recipe: &recipe,
	}, nil
}

// UpdateRecipe replaces an existing recipe
func (r *redisRepository) UpdateRecipe(ctx context.Context, input *UpdateRecipeInput) error {
	if input == nil || input.Recipe == nil || input.Recipe.ID == "" {
		return errors.New("input, recipe, and recipe ID cannot be empty")
	}

	existing, err := r.GetRecipe(ctx, &GetRecipeInput{RecipeID: input.Recipe.ID})
	if err != nil {
		return err
	}

	recipe := *input.Recipe
	recipe.CreatedAt = existing.Recipe.CreatedAt
	recipe.UpdatedAt = r.clock.Now()

	return r.write(ctx, &recipe)
}

// DeleteRecipe removes a recipe
func (r *redisRepository) DeleteRecipe(ctx context.Context, input *DeleteRecipeInput) error {
	if input == nil || input.RecipeID == "" {
		return errors.New("input and recipe ID cannot be empty")
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, recipeKeyPrefix+input.RecipeID)
	pipe.SRem(ctx, recipeIndexKey, input.RecipeID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete recipe: %w", err)
	}

	return nil
}

// ListRecipes retrieves all stored recipes
func (r *redisRepository) ListRecipes(ctx context.Context, input *ListRecipesInput) (*ListRecipesOutput, error) {
	recipeIDs, err := r.client.SMembers(ctx, recipeIndexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list recipe IDs: %w", err)
	}

	recipes := make([]*models.Recipe, 0, len(recipeIDs))
	for _, recipeID := range recipeIDs {
		out, err := r.GetRecipe(ctx, &GetRecipeInput{RecipeID: recipeID})
		if err != nil {
			if errors.Is(err, ErrRecipeNotFound) {
				// Index entry outlived its record; skip it.
				continue
			}
			return nil, err
		}
		recipes = append(recipes, out.Recipe)
	}

	return &ListRecipesOutput{
		Recipes: recipes,
	}, nil
}

// write stores the recipe blob and maintains the ID index
func (r *redisRepository) write(ctx context.Context, recipe *models.Recipe) error {
	recipeJSON, err := json.Marshal(recipe)
	if err != nil {
		return fmt.Errorf("failed to marshal recipe: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, recipeKeyPrefix+recipe.ID, recipeJSON, 0)
	pipe.SAdd(ctx, recipeIndexKey, recipe.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to store recipe: %w", err)
	}

	return nil
}
