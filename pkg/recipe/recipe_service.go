package recipe

import (
	"context"
	"errors"

	"recipevault/domain"
	"recipevault/entities"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (*entities.Recipe, error)
		UpdateRecipe(ctx context.Context, id uint, req domain.UpdateRecipeRequest, userID string) (*entities.Recipe, error)
		DeleteRecipe(ctx context.Context, id uint, userID string) error
		GetRecipeDetail(ctx context.Context, id uint) (*entities.Recipe, error)
		GetRecipesByUser(ctx context.Context, userID string) ([]*entities.Recipe, error)
		GetPublicRecipes(ctx context.Context) ([]*entities.Recipe, error)
		SearchRecipes(ctx context.Context, query string, callerID string) ([]*entities.Recipe, error)

		GetFavorites(ctx context.Context, userID string) ([]*entities.Recipe, error)
		AddFavorite(ctx context.Context, userID string, recipeID uint) (*entities.Favorite, error)
		RemoveFavorite(ctx context.Context, userID string, recipeID uint) error
		IsFavorite(ctx context.Context, userID string, recipeID uint) (bool, error)

		GetCookingHistory(ctx context.Context, userID string) ([]*entities.CookingHistory, error)
		AddCookingHistory(ctx context.Context, req domain.AddCookingHistoryRequest, userID string) (*entities.CookingHistory, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
	}
)

func NewRecipeService(recipeRepository RecipeRepository) RecipeService {
	return &recipeService{recipeRepository: recipeRepository}
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (*entities.Recipe, error) {
	// The HTTP boundary validates first, but an empty title or empty step
	// lists must never reach the store regardless of who calls.
	if req.Title == "" || len(req.Ingredients) == 0 || len(req.Instructions) == 0 {
		return nil, domain.ErrRecipeInvalid
	}

	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	recipe := entities.Recipe{
		UserID:       userID,
		Title:        req.Title,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		PrepTime:     req.PrepTime,
		CookTime:     req.CookTime,
		Servings:     req.Servings,
		Difficulty:   req.Difficulty,
		Category:     req.Category,
		Ingredients:  datatypes.NewJSONSlice(req.Ingredients),
		Instructions: datatypes.NewJSONSlice(req.Instructions),
		Tags:         datatypes.NewJSONSlice(tags),
	}
	if req.IsPublic != nil {
		recipe.IsPublic = *req.IsPublic
	}

	if err := s.recipeRepository.CreateRecipe(ctx, &recipe); err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (s *recipeService) UpdateRecipe(ctx context.Context, id uint, req domain.UpdateRecipeRequest, userID string) (*entities.Recipe, error) {
	fields := map[string]interface{}{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.ImageURL != nil {
		fields["image_url"] = *req.ImageURL
	}
	if req.PrepTime != nil {
		fields["prep_time"] = *req.PrepTime
	}
	if req.CookTime != nil {
		fields["cook_time"] = *req.CookTime
	}
	if req.Servings != nil {
		fields["servings"] = *req.Servings
	}
	if req.Difficulty != nil {
		fields["difficulty"] = *req.Difficulty
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if req.Ingredients != nil {
		fields["ingredients"] = datatypes.NewJSONSlice(*req.Ingredients)
	}
	if req.Instructions != nil {
		fields["instructions"] = datatypes.NewJSONSlice(*req.Instructions)
	}
	if req.Tags != nil {
		fields["tags"] = datatypes.NewJSONSlice(*req.Tags)
	}
	if req.IsPublic != nil {
		fields["is_public"] = *req.IsPublic
	}

	recipe, err := s.recipeRepository.UpdateRecipe(ctx, id, userID, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	return recipe, nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id uint, userID string) error {
	removed, err := s.recipeRepository.DeleteRecipe(ctx, id, userID)
	if err != nil {
		return err
	}
	if !removed {
		return domain.ErrRecipeNotFound
	}
	return nil
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, id uint) (*entities.Recipe, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	return recipe, nil
}

func (s *recipeService) GetRecipesByUser(ctx context.Context, userID string) ([]*entities.Recipe, error) {
	return s.recipeRepository.GetRecipesByUser(ctx, userID)
}

func (s *recipeService) GetPublicRecipes(ctx context.Context) ([]*entities.Recipe, error) {
	return s.recipeRepository.GetPublicRecipes(ctx)
}

func (s *recipeService) SearchRecipes(ctx context.Context, query string, callerID string) ([]*entities.Recipe, error) {
	if query == "" {
		return nil, domain.ErrSearchQueryRequired
	}
	return s.recipeRepository.SearchRecipes(ctx, query, callerID)
}

func (s *recipeService) GetFavorites(ctx context.Context, userID string) ([]*entities.Recipe, error) {
	return s.recipeRepository.GetFavorites(ctx, userID)
}

func (s *recipeService) AddFavorite(ctx context.Context, userID string, recipeID uint) (*entities.Favorite, error) {
	if _, err := s.recipeRepository.GetRecipeByID(ctx, recipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	return s.recipeRepository.AddFavorite(ctx, userID, recipeID)
}

func (s *recipeService) RemoveFavorite(ctx context.Context, userID string, recipeID uint) error {
	removed, err := s.recipeRepository.RemoveFavorite(ctx, userID, recipeID)
	if err != nil {
		return err
	}
	if !removed {
		return domain.ErrFavoriteNotFound
	}
	return nil
}

func (s *recipeService) IsFavorite(ctx context.Context, userID string, recipeID uint) (bool, error) {
	return s.recipeRepository.IsFavorite(ctx, userID, recipeID)
}

func (s *recipeService) GetCookingHistory(ctx context.Context, userID string) ([]*entities.CookingHistory, error) {
	return s.recipeRepository.GetCookingHistory(ctx, userID)
}

func (s *recipeService) AddCookingHistory(ctx context.Context, req domain.AddCookingHistoryRequest, userID string) (*entities.CookingHistory, error) {
	// History rows keep pointing at deleted recipes, but a brand new entry
	// must reference a recipe that exists right now.
	if _, err := s.recipeRepository.GetRecipeByID(ctx, req.RecipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}

	entry := entities.CookingHistory{
		UserID:   userID,
		RecipeID: req.RecipeID,
		Notes:    req.Notes,
	}
	if err := s.recipeRepository.AddCookingHistory(ctx, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}
