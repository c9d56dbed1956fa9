package models

import (
	"time"
)

// Recipe is the record the recipe store owns. The session engine only
// reads it: instruction count bounds the step cursor and the ingredient
// list gives checked-off indices their meaning. Writes happen elsewhere
// in the product.
type Recipe struct {
	// ID is the unique identifier for the recipe
	ID string `json:"id"`

	// Title is the display name of the recipe
	Title string `json:"title"`

	// Description is a short blurb shown in listings
	Description string `json:"description,omitempty"`

	// Instructions is the ordered list of cooking steps
	Instructions []string `json:"instructions"`

	// Ingredients is the ordered list of ingredients
	Ingredients []Ingredient `json:"ingredients"`

	// Servings is how many portions the recipe yields
	Servings int `json:"servings,omitempty"`

	// CreatedAt is when the recipe was first saved
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is when the recipe was last edited
	UpdatedAt time.Time `json:"updatedAt"`
}

// Ingredient is a single entry in a recipe's ingredient list
type Ingredient struct {
	// Name is the ingredient itself, e.g. "yellow onion"
	Name string `json:"name"`

	// Quantity is the human-readable amount, e.g. "2 cups"
	Quantity string `json:"quantity"`
}
