package domain

import (
	"errors"
)

var (
	MessageSuccessGetFavorites = "success get favorite recipes"
	MessageSuccessAddFavorite  = "recipe added to favorites"

	MessageFailedGetFavorites   = "failed to get favorite recipes"
	MessageFailedAddFavorite    = "failed to add favorite"
	MessageFailedRemoveFavorite = "failed to remove favorite"

	ErrFavoriteNotFound = errors.New("favorite not found")
)
