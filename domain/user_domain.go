package domain

import (
	"errors"
)

var (
	MessageSuccessGetUser = "success get user"

	MessageFailedGetUser      = "failed to get user"
	MessageFailedSyncIdentity = "failed to sync user identity"

	ErrUserNotFound = errors.New("user not found")
)

type (
	// Identity is what the identity provider asserts about the caller of
	// the current request. UserID is the stable external id; the profile
	// fields are optional display attributes.
	Identity struct {
		UserID          string
		Email           string
		FirstName       string
		LastName        string
		ProfileImageURL string
	}
)
