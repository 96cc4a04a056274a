package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrUserEmailExists = errors.New("user already exists")

type User struct {
	Base

	Email       string     `gorm:"uniqueIndex:uni_users_email;not null"`
	Password    string     `gorm:"not null"`
	Name        string     `gorm:"not null"`
	Role        string     `gorm:"not null"`
	FranchiseID *string    `gorm:"type:uuid;index"`
	Franchise   *Franchise `gorm:"constraint:OnDelete:CASCADE"`
}

type UserDAO struct {
	db *gorm.DB
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{
		db: db,
	}
}

func (d *UserDAO) Insert(ctx context.Context, user User) (User, error) {
	result := d.db.WithContext(ctx).Omit(clause.Associations).Create(&user)
	if result.Error != nil {
		if isUniqueViolation(result.Error, "uni_users_email") {
			return User{}, ErrUserEmailExists
		}

		return User{}, result.Error
	}

	return user, nil
}

func (d *UserDAO) FindByID(ctx context.Context, id string) (User, error) {
	return first[User](d.db.WithContext(ctx), "id = ?", id)
}

func (d *UserDAO) FindByEmail(ctx context.Context, email string) (User, error) {
	return first[User](d.db.WithContext(ctx), "email = ?", email)
}

// FindAll lists the members of one franchise, or every user when franchiseID is empty.
func (d *UserDAO) FindAll(ctx context.Context, franchiseID string) ([]User, error) {
	query := d.db.WithContext(ctx).Order("email")
	if franchiseID != "" {
		query = query.Where("franchise_id = ?", franchiseID)
	}

	var users []User
	if err := query.Find(&users).Error; err != nil {
		return nil, err
	}

	return users, nil
}

func (d *UserDAO) AdminExists(ctx context.Context) (bool, error) {
	return exists[User](d.db.WithContext(ctx), "franchise_id IS NULL AND role = ?", "admin")
}

func (d *UserDAO) Delete(ctx context.Context, id string) error {
	result := d.db.WithContext(ctx).Delete(&User{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
