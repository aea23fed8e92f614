package recipe

import (
	"context"
	"time"

	"recipevault/entities"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	RecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe) error
		GetRecipeByID(ctx context.Context, id uint) (*entities.Recipe, error)
		GetRecipesByUser(ctx context.Context, userID string) ([]*entities.Recipe, error)
		GetPublicRecipes(ctx context.Context) ([]*entities.Recipe, error)
		SearchRecipes(ctx context.Context, query string, callerID string) ([]*entities.Recipe, error)
		UpdateRecipe(ctx context.Context, id uint, ownerID string, fields map[string]interface{}) (*entities.Recipe, error)
		DeleteRecipe(ctx context.Context, id uint, ownerID string) (bool, error)

		GetFavorites(ctx context.Context, userID string) ([]*entities.Recipe, error)
		AddFavorite(ctx context.Context, userID string, recipeID uint) (*entities.Favorite, error)
		RemoveFavorite(ctx context.Context, userID string, recipeID uint) (bool, error)
		IsFavorite(ctx context.Context, userID string, recipeID uint) (bool, error)

		GetCookingHistory(ctx context.Context, userID string) ([]*entities.CookingHistory, error)
		AddCookingHistory(ctx context.Context, entry *entities.CookingHistory) error
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

// VisibleTo scopes a recipe query to rows the given caller may read:
// public recipes, plus the caller's own when callerID is non-empty.
// Every listing path that filters by visibility must go through this
// scope so the rule cannot drift between endpoints.
func VisibleTo(callerID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if callerID == "" {
			return db.Where("is_public = ?", true)
		}
		return db.Where("(is_public = ? OR user_id = ?)", true, callerID)
	}
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

// GetRecipeByID has no visibility check: a single recipe is readable by id
// regardless of caller, so private recipes stay shareable by direct link.
func (r *recipeRepository) GetRecipeByID(ctx context.Context, id uint) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetRecipesByUser(ctx context.Context, userID string) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at desc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) GetPublicRecipes(ctx context.Context) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Scopes(VisibleTo("")).
		Order("created_at desc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) SearchRecipes(ctx context.Context, query string, callerID string) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	pattern := "%" + query + "%"

	if err := r.db.WithContext(ctx).
		Scopes(VisibleTo(callerID)).
		Where("(title LIKE ? OR description LIKE ? OR category LIKE ?)", pattern, pattern, pattern).
		Order("updated_at desc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// UpdateRecipe applies a partial update scoped to the owning user. A miss on
// either the id or the owner reports record-not-found so callers cannot tell
// "doesn't exist" apart from "not yours". updated_at is always refreshed,
// even for an empty field set.
func (r *recipeRepository) UpdateRecipe(ctx context.Context, id uint, ownerID string, fields map[string]interface{}) (*entities.Recipe, error) {
	fields["updated_at"] = time.Now()

	tx := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("id = ? AND user_id = ?", id, ownerID).
		Updates(fields)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// DeleteRecipe removes the recipe only when owned by ownerID. Dependent
// favorites and cooking history rows are left in place; listing queries
// tolerate the orphans.
func (r *recipeRepository) DeleteRecipe(ctx context.Context, id uint, ownerID string) (bool, error) {
	tx := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&entities.Recipe{})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (r *recipeRepository) GetFavorites(ctx context.Context, userID string) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Joins("JOIN favorites ON recipes.id = favorites.recipe_id").
		Where("favorites.user_id = ?", userID).
		Order("favorites.created_at desc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// AddFavorite relies on the (user_id, recipe_id) unique index: a duplicate
// insert is a benign no-op rather than an error, which also closes the
// concurrent double-click race.
func (r *recipeRepository) AddFavorite(ctx context.Context, userID string, recipeID uint) (*entities.Favorite, error) {
	favorite := entities.Favorite{
		UserID:   userID,
		RecipeID: recipeID,
	}

	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "recipe_id"}},
			DoNothing: true,
		}).
		Create(&favorite).Error; err != nil {
		return nil, err
	}

	// On conflict the insert writes nothing, so read back the surviving row.
	var existing entities.Favorite
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		First(&existing).Error; err != nil {
		return nil, err
	}
	return &existing, nil
}

func (r *recipeRepository) RemoveFavorite(ctx context.Context, userID string, recipeID uint) (bool, error) {
	tx := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&entities.Favorite{})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (r *recipeRepository) IsFavorite(ctx context.Context, userID string, recipeID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Favorite{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *recipeRepository) GetCookingHistory(ctx context.Context, userID string) ([]*entities.CookingHistory, error) {
	var entries []*entities.CookingHistory
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("cooked_at desc").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *recipeRepository) AddCookingHistory(ctx context.Context, entry *entities.CookingHistory) error {
	return r.db.WithContext(ctx).Create(entry).Error
}
