package repo

import (
	"context"
	"errors"

	"notedeck/app/dto"
	"notedeck/app/models"

	"gorm.io/gorm"
)

type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

// Create inserts the user and fills in the assigned ID. A duplicate username
// comes back as a ConstraintError.
func (r *UserRepository) Create(ctx context.Context, u *models.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		return translate("create user", "users", err)
	}
	return nil
}

// FindByID returns (nil, nil) when no user has the given id.
func (r *UserRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, translate("find user by id", "users", err)
	}
	return &u, nil
}

// FindByUsername returns (nil, nil) when the username is unused.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, translate("find user by username", "users", err)
	}
	return &u, nil
}

func (r *UserRepository) ListAll(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, translate("list users", "users", err)
	}
	return users, nil
}

// Update applies the non-nil fields of the patch and returns the updated row,
// or (nil, nil) when the id does not exist.
func (r *UserRepository) Update(ctx context.Context, id uint, patch dto.UserPatch) (*models.User, error) {
	updates := map[string]any{}
	if patch.Username != nil {
		updates["username"] = *patch.Username
	}
	if patch.Password != nil {
		updates["password"] = *patch.Password
	}

	existing, err := r.FindByID(ctx, id)
	if err != nil || existing == nil {
		return nil, err
	}
	if len(updates) == 0 {
		return existing, nil
	}
	if err := r.db.WithContext(ctx).Model(existing).Updates(updates).Error; err != nil {
		return nil, translate("update user", "users", err)
	}
	return r.FindByID(ctx, id)
}

// Delete removes the user and returns the deleted row, or (nil, nil) when the
// id does not exist. The user's notes go with it via the cascade constraint.
func (r *UserRepository) Delete(ctx context.Context, id uint) (*models.User, error) {
	existing, err := r.FindByID(ctx, id)
	if err != nil || existing == nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Delete(&models.User{}, id).Error; err != nil {
		return nil, translate("delete user", "users", err)
	}
	return existing, nil
}
