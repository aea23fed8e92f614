package entities

import (
	"time"

	"gorm.io/datatypes"
)

type Recipe struct {
	ID           uint                        `gorm:"primary_key;autoIncrement" json:"id"`
	UserID       string                      `gorm:"not null" json:"user_id"`
	Title        string                      `gorm:"not null" json:"title"`
	Description  string                      `json:"description,omitempty"`
	ImageURL     string                      `json:"image_url,omitempty"`
	PrepTime     *int                        `json:"prep_time,omitempty"` // minutes
	CookTime     *int                        `json:"cook_time,omitempty"` // minutes
	Servings     *int                        `json:"servings,omitempty"`
	Difficulty   string                      `json:"difficulty,omitempty"` // "Easy", "Medium", "Hard"
	Category     string                      `json:"category,omitempty"`
	Ingredients  datatypes.JSONSlice[string] `gorm:"type:jsonb;not null" json:"ingredients"`
	Instructions datatypes.JSONSlice[string] `gorm:"type:jsonb;not null" json:"instructions"`
	Tags         datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"tags"`
	IsPublic     bool                        `gorm:"default:false" json:"is_public"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Timestamp
}

// Favorite carries a composite unique index so that double-favoriting the
// same recipe cannot produce duplicate rows, even under concurrent requests.
type Favorite struct {
	ID        uint      `gorm:"primary_key;autoIncrement" json:"id"`
	UserID    string    `gorm:"uniqueIndex:idx_favorites_user_recipe" json:"user_id"`
	RecipeID  uint      `gorm:"uniqueIndex:idx_favorites_user_recipe" json:"recipe_id"`
	CreatedAt time.Time `gorm:"type:timestamp;autoCreateTime" json:"created_at"`

	User   *User   `gorm:"foreignKey:UserID" json:"-"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID" json:"-"`
}

// CookingHistory is append-only: entries are never updated or deleted.
type CookingHistory struct {
	ID       uint      `gorm:"primary_key;autoIncrement" json:"id"`
	UserID   string    `gorm:"not null" json:"user_id"`
	RecipeID uint      `gorm:"not null" json:"recipe_id"`
	CookedAt time.Time `gorm:"type:timestamp;autoCreateTime" json:"cooked_at"`
	Notes    string    `json:"notes,omitempty"`

	User   *User   `gorm:"foreignKey:UserID" json:"-"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID" json:"-"`
}
