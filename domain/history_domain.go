package domain

var (
	MessageSuccessGetHistory = "success get cooking history"
	MessageSuccessAddHistory = "cooking history recorded"

	MessageFailedGetHistory = "failed to get cooking history"
	MessageFailedAddHistory = "failed to record cooking history"
)

type (
	AddCookingHistoryRequest struct {
		RecipeID uint   `json:"recipe_id" validate:"required,min=1"`
		Notes    string `json:"notes" validate:"omitempty"`
	}
)
