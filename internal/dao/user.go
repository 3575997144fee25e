package dao

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/afume/internal/apperrors"
	"github.com/example/afume/internal/models"
)

// UserDAO provides access to member accounts.
type UserDAO struct {
	db *gorm.DB
}

// NewUserDAO constructs UserDAO.
func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{db: db}
}

// Create inserts a user. A duplicate email or nickname yields
// ErrDuplicateEntry.
func (d *UserDAO) Create(user *models.User) error {
	return translate(d.db.Create(user).Error)
}

// ReadByIdx loads one user by id.
func (d *UserDAO) ReadByIdx(userIdx uuid.UUID) (models.User, error) {
	var user models.User
	if err := d.db.First(&user, "id = ?", userIdx).Error; err != nil {
		return models.User{}, translate(err)
	}
	return user, nil
}

// ReadByEmail loads one user by email.
func (d *UserDAO) ReadByEmail(email string) (models.User, error) {
	var user models.User
	if err := d.db.First(&user, "email = ?", email).Error; err != nil {
		return models.User{}, translate(err)
	}
	return user, nil
}

// ReadByNickname loads one user by nickname.
func (d *UserDAO) ReadByNickname(nickname string) (models.User, error) {
	var user models.User
	if err := d.db.First(&user, "nickname = ?", nickname).Error; err != nil {
		return models.User{}, translate(err)
	}
	return user, nil
}

// Update rewrites a user's profile fields. Password changes go through
// UpdatePassword.
func (d *UserDAO) Update(user *models.User) error {
	result := d.db.Model(&models.User{}).Where("id = ?", user.ID).
		Updates(map[string]interface{}{
			"nickname": user.Nickname,
			"email":    user.Email,
			"gender":   user.Gender,
			"phone":    user.Phone,
			"birth":    user.Birth,
			"grade":    user.Grade,
		})
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotMatched
	}
	return nil
}

// UpdatePassword stores a new password hash.
func (d *UserDAO) UpdatePassword(userIdx uuid.UUID, hash string) error {
	result := d.db.Model(&models.User{}).Where("id = ?", userIdx).
		Update("password", hash)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotMatched
	}
	return nil
}

// UpdateAccessTime stamps the user's last login.
func (d *UserDAO) UpdateAccessTime(userIdx uuid.UUID, at time.Time) error {
	return translate(d.db.Model(&models.User{}).Where("id = ?", userIdx).
		Update("access_time", at).Error)
}

// Delete removes a user account.
func (d *UserDAO) Delete(userIdx uuid.UUID) error {
	result := d.db.Delete(&models.User{}, "id = ?", userIdx)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotMatched
	}
	return nil
}
