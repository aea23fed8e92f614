package domain

import (
	"errors"
)

var (
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"
	MessageSuccessSearchRecipes   = "success search recipes"
	MessageSuccessCreateRecipe    = "recipe created successfully"
	MessageSuccessUpdateRecipe    = "recipe updated successfully"

	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageFailedSearchRecipes   = "failed to search recipes"
	MessageFailedCreateRecipe    = "failed to create recipe"
	MessageFailedUpdateRecipe    = "failed to update recipe"
	MessageFailedDeleteRecipe    = "failed to delete recipe"

	ErrRecipeNotFound      = errors.New("recipe not found")
	ErrRecipeInvalid       = errors.New("recipe data is invalid")
	ErrSearchQueryRequired = errors.New("search query is required")
	ErrInvalidRecipeID     = errors.New("invalid recipe id")
)

type (
	CreateRecipeRequest struct {
		Title        string   `json:"title" validate:"required"`
		Description  string   `json:"description" validate:"omitempty"`
		ImageURL     string   `json:"image_url" validate:"omitempty"`
		PrepTime     *int     `json:"prep_time" validate:"omitempty,min=0"`
		CookTime     *int     `json:"cook_time" validate:"omitempty,min=0"`
		Servings     *int     `json:"servings" validate:"omitempty,min=1"`
		Difficulty   string   `json:"difficulty" validate:"omitempty,oneof=Easy Medium Hard"`
		Category     string   `json:"category" validate:"omitempty"`
		Ingredients  []string `json:"ingredients" validate:"required,min=1,dive,required"`
		Instructions []string `json:"instructions" validate:"required,min=1,dive,required"`
		Tags         []string `json:"tags" validate:"omitempty"`
		IsPublic     *bool    `json:"is_public" validate:"omitempty"`
	}

	// UpdateRecipeRequest is a partial update: nil fields are left unchanged.
	UpdateRecipeRequest struct {
		Title        *string   `json:"title" validate:"omitempty,min=1"`
		Description  *string   `json:"description" validate:"omitempty"`
		ImageURL     *string   `json:"image_url" validate:"omitempty"`
		PrepTime     *int      `json:"prep_time" validate:"omitempty,min=0"`
		CookTime     *int      `json:"cook_time" validate:"omitempty,min=0"`
		Servings     *int      `json:"servings" validate:"omitempty,min=1"`
		Difficulty   *string   `json:"difficulty" validate:"omitempty,oneof=Easy Medium Hard"`
		Category     *string   `json:"category" validate:"omitempty"`
		Ingredients  *[]string `json:"ingredients" validate:"omitempty,min=1,dive,required"`
		Instructions *[]string `json:"instructions" validate:"omitempty,min=1,dive,required"`
		Tags         *[]string `json:"tags" validate:"omitempty"`
		IsPublic     *bool     `json:"is_public" validate:"omitempty"`
	}
)
