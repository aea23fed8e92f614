package entities

// User rows mirror identities issued by the external identity provider.
// The ID is supplied by the provider, never generated here.
type User struct {
	ID              string  `gorm:"primary_key" json:"id"`
	Email           *string `gorm:"uniqueIndex" json:"email,omitempty"`
	FirstName       string  `json:"first_name,omitempty"`
	LastName        string  `json:"last_name,omitempty"`
	ProfileImageURL string  `json:"profile_image_url,omitempty"`

	Timestamp
}
