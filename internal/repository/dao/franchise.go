package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var (
	ErrFranchiseNameExists  = errors.New("franchise name already exists")
	ErrFranchiseEmailExists = errors.New("franchise email already exists")
)

type Franchise struct {
	Base

	Name      string  `gorm:"uniqueIndex:uni_franchises_name;not null"`
	Address   string  `gorm:"not null"`
	City      string  `gorm:"not null"`
	ZipCode   string  `gorm:"not null"`
	Country   string  `gorm:"not null"`
	Latitude  float64 `gorm:"not null"`
	Longitude float64 `gorm:"not null"`
	Phone     string
	Email     *string `gorm:"uniqueIndex:uni_franchises_email"`
}

type FranchiseDAO struct {
	db *gorm.DB
}

func NewFranchiseDAO(db *gorm.DB) *FranchiseDAO {
	return &FranchiseDAO{
		db: db,
	}
}

func (d *FranchiseDAO) Insert(ctx context.Context, franchise Franchise) (Franchise, error) {
	if err := d.db.WithContext(ctx).Create(&franchise).Error; err != nil {
		return Franchise{}, franchiseError(err)
	}

	return franchise, nil
}

func (d *FranchiseDAO) Update(ctx context.Context, franchise Franchise) (Franchise, error) {
	if err := d.db.WithContext(ctx).Omit("created_at").Save(&franchise).Error; err != nil {
		return Franchise{}, franchiseError(err)
	}

	return franchise, nil
}

func (d *FranchiseDAO) FindByID(ctx context.Context, id string) (Franchise, error) {
	return first[Franchise](d.db.WithContext(ctx), "id = ?", id)
}

func (d *FranchiseDAO) FindByName(ctx context.Context, name string) (Franchise, error) {
	return first[Franchise](d.db.WithContext(ctx), "name = ?", name)
}

func (d *FranchiseDAO) FindByEmail(ctx context.Context, email string) (Franchise, error) {
	return first[Franchise](d.db.WithContext(ctx), "email = ?", email)
}

func (d *FranchiseDAO) FindAll(ctx context.Context) ([]Franchise, error) {
	var franchises []Franchise
	if err := d.db.WithContext(ctx).Order("name").Find(&franchises).Error; err != nil {
		return nil, err
	}

	return franchises, nil
}

func (d *FranchiseDAO) Exists(ctx context.Context, id string) (bool, error) {
	return exists[Franchise](d.db.WithContext(ctx), "id = ?", id)
}

// Delete removes the franchise together with its stock, commands and members.
func (d *FranchiseDAO) Delete(ctx context.Context, id string) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		commandIDs := tx.Model(&Command{}).Select("id").Where("franchise_id = ?", id)
		if err := tx.Where("command_id IN (?)", commandIDs).Delete(&CommandIngredient{}).Error; err != nil {
			return err
		}

		for _, model := range []any{&Command{}, &StockFranchise{}, &User{}} {
			if err := tx.Where("franchise_id = ?", id).Delete(model).Error; err != nil {
				return err
			}
		}

		result := tx.Delete(&Franchise{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}

		return nil
	})
}

func franchiseError(err error) error {
	switch {
	case isUniqueViolation(err, "uni_franchises_name"):
		return ErrFranchiseNameExists
	case isUniqueViolation(err, "uni_franchises_email"):
		return ErrFranchiseEmailExists
	}

	return err
}
