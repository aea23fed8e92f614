package recipe

import (
	"context"
	"testing"

	"recipevault/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (RecipeService, RecipeRepository) {
	t.Helper()
	repo := NewRecipeRepository(newTestDB(t))
	return NewRecipeService(repo), repo
}

func boolPtr(b bool) *bool    { return &b }
func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestCreateRecipeDefaults(t *testing.T) {
	db := newTestDB(t)
	service := NewRecipeService(NewRecipeRepository(db))
	ctx := context.Background()
	seedUser(t, db, "alice")

	recipe, err := service.CreateRecipe(ctx, domain.CreateRecipeRequest{
		Title:        "Plain Rice",
		Ingredients:  []string{"1 cup rice"},
		Instructions: []string{"Cook"},
	}, "alice")
	require.NoError(t, err)

	assert.Equal(t, "alice", recipe.UserID)
	assert.False(t, recipe.IsPublic, "recipes default to private")
	assert.NotNil(t, recipe.Tags)
	assert.Empty(t, []string(recipe.Tags))
	assert.Nil(t, recipe.PrepTime)
}

func TestCreateRecipeRejectsEmptySteps(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	cases := []struct {
		name string
		req  domain.CreateRecipeRequest
	}{
		{"missing title", domain.CreateRecipeRequest{
			Ingredients:  []string{"salt"},
			Instructions: []string{"shake"},
		}},
		{"empty ingredients", domain.CreateRecipeRequest{
			Title:        "Air Soup",
			Instructions: []string{"breathe"},
		}},
		{"empty instructions", domain.CreateRecipeRequest{
			Title:       "Raw Dough",
			Ingredients: []string{"flour"},
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.CreateRecipe(ctx, tc.req, "alice")
			assert.ErrorIs(t, err, domain.ErrRecipeInvalid)
		})
	}
}

func TestUpdateRecipeOnlyProvidedFields(t *testing.T) {
	db := newTestDB(t)
	service := NewRecipeService(NewRecipeRepository(db))
	ctx := context.Background()

	seedUser(t, db, "alice")
	created, err := service.CreateRecipe(ctx, domain.CreateRecipeRequest{
		Title:        "Stew",
		Description:  "hearty",
		Ingredients:  []string{"beef", "carrots"},
		Instructions: []string{"simmer"},
		Servings:     intPtr(4),
		IsPublic:     boolPtr(true),
	}, "alice")
	require.NoError(t, err)

	updated, err := service.UpdateRecipe(ctx, created.ID, domain.UpdateRecipeRequest{
		Title:    strPtr("Beef Stew"),
		IsPublic: boolPtr(false),
	}, "alice")
	require.NoError(t, err)

	assert.Equal(t, "Beef Stew", updated.Title)
	assert.False(t, updated.IsPublic)
	assert.Equal(t, "hearty", updated.Description)
	require.NotNil(t, updated.Servings)
	assert.Equal(t, 4, *updated.Servings)
	assert.Equal(t, []string{"beef", "carrots"}, []string(updated.Ingredients))
}

func TestUpdateRecipeWrongOwner(t *testing.T) {
	db := newTestDB(t)
	service := NewRecipeService(NewRecipeRepository(db))
	ctx := context.Background()

	seedUser(t, db, "alice")
	created, err := service.CreateRecipe(ctx, domain.CreateRecipeRequest{
		Title:        "Private Pie",
		Ingredients:  []string{"apples"},
		Instructions: []string{"bake"},
	}, "alice")
	require.NoError(t, err)

	_, err = service.UpdateRecipe(ctx, created.ID, domain.UpdateRecipeRequest{
		Title: strPtr("Hijacked"),
	}, "mallory")
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestDeleteRecipeUnknown(t *testing.T) {
	service, _ := newTestService(t)
	err := service.DeleteRecipe(context.Background(), 42, "alice")
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestGetRecipeDetailUnknown(t *testing.T) {
	service, _ := newTestService(t)
	_, err := service.GetRecipeDetail(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestSearchRecipesRequiresQuery(t *testing.T) {
	service, _ := newTestService(t)
	_, err := service.SearchRecipes(context.Background(), "", "alice")
	assert.ErrorIs(t, err, domain.ErrSearchQueryRequired)
}

func TestAddFavoriteUnknownRecipe(t *testing.T) {
	service, _ := newTestService(t)
	_, err := service.AddFavorite(context.Background(), "alice", 42)
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestRemoveFavoriteAbsent(t *testing.T) {
	service, _ := newTestService(t)
	err := service.RemoveFavorite(context.Background(), "alice", 42)
	assert.ErrorIs(t, err, domain.ErrFavoriteNotFound)
}

func TestAddCookingHistoryUnknownRecipe(t *testing.T) {
	service, _ := newTestService(t)
	_, err := service.AddCookingHistory(context.Background(), domain.AddCookingHistoryRequest{
		RecipeID: 42,
	}, "alice")
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestAddCookingHistoryRecordsNotes(t *testing.T) {
	db := newTestDB(t)
	service := NewRecipeService(NewRecipeRepository(db))
	ctx := context.Background()

	seedUser(t, db, "alice")
	recipe := seedRecipe(t, db, "alice", "Curry", false)

	entry, err := service.AddCookingHistory(ctx, domain.AddCookingHistoryRequest{
		RecipeID: recipe.ID,
		Notes:    "extra spicy next time",
	}, "alice")
	require.NoError(t, err)
	assert.NotZero(t, entry.ID)
	assert.Equal(t, "extra spicy next time", entry.Notes)
	assert.False(t, entry.CookedAt.IsZero())
}
