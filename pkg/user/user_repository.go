package user

import (
	"context"

	"recipevault/entities"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	UserRepository interface {
		GetUser(ctx context.Context, id string) (*entities.User, error)
		UpsertUser(ctx context.Context, user *entities.User) (*entities.User, error)
	}

	userRepository struct {
		db *gorm.DB
	}
)

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetUser(ctx context.Context, id string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UpsertUser inserts the identity row or, when the id already exists,
// overwrites its display fields and refreshes updated_at. Idempotent by id.
func (r *userRepository) UpsertUser(ctx context.Context, user *entities.User) (*entities.User, error) {
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"email", "first_name", "last_name", "profile_image_url", "updated_at",
			}),
		}).
		Create(user).Error; err != nil {
		return nil, err
	}

	var stored entities.User
	if err := r.db.WithContext(ctx).Where("id = ?", user.ID).First(&stored).Error; err != nil {
		return nil, err
	}
	return &stored, nil
}
