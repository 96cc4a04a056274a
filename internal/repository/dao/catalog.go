package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var (
	ErrSupplierNameExists  = errors.New("supplier name already exists")
	ErrSupplierEmailExists = errors.New("supplier email already exists")
	ErrCategoryNameExists  = errors.New("category name already exists")
)

type Supplier struct {
	Base

	Name        string  `gorm:"uniqueIndex:uni_suppliers_name;not null"`
	ContactName string
	Email       *string `gorm:"uniqueIndex:uni_suppliers_email"`
	Phone       string
	Address     string
}

type Category struct {
	Base

	Name string `gorm:"uniqueIndex:uni_categories_name;not null"`
}

type SupplierDAO struct {
	db *gorm.DB
}

func NewSupplierDAO(db *gorm.DB) *SupplierDAO {
	return &SupplierDAO{
		db: db,
	}
}

func (d *SupplierDAO) Insert(ctx context.Context, supplier Supplier) (Supplier, error) {
	if err := d.db.WithContext(ctx).Create(&supplier).Error; err != nil {
		return Supplier{}, supplierError(err)
	}

	return supplier, nil
}

func (d *SupplierDAO) Update(ctx context.Context, supplier Supplier) (Supplier, error) {
	if err := d.db.WithContext(ctx).Omit("created_at").Save(&supplier).Error; err != nil {
		return Supplier{}, supplierError(err)
	}

	return supplier, nil
}

func (d *SupplierDAO) FindByID(ctx context.Context, id string) (Supplier, error) {
	return first[Supplier](d.db.WithContext(ctx), "id = ?", id)
}

func (d *SupplierDAO) FindByName(ctx context.Context, name string) (Supplier, error) {
	return first[Supplier](d.db.WithContext(ctx), "name = ?", name)
}

func (d *SupplierDAO) FindByEmail(ctx context.Context, email string) (Supplier, error) {
	return first[Supplier](d.db.WithContext(ctx), "email = ?", email)
}

func (d *SupplierDAO) FindAll(ctx context.Context) ([]Supplier, error) {
	var suppliers []Supplier
	if err := d.db.WithContext(ctx).Order("name").Find(&suppliers).Error; err != nil {
		return nil, err
	}

	return suppliers, nil
}

func (d *SupplierDAO) Exists(ctx context.Context, id string) (bool, error) {
	return exists[Supplier](d.db.WithContext(ctx), "id = ?", id)
}

// Delete fails with a foreign key violation while ingredients still reference the supplier.
func (d *SupplierDAO) Delete(ctx context.Context, id string) error {
	result := d.db.WithContext(ctx).Delete(&Supplier{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func supplierError(err error) error {
	switch {
	case isUniqueViolation(err, "uni_suppliers_name"):
		return ErrSupplierNameExists
	case isUniqueViolation(err, "uni_suppliers_email"):
		return ErrSupplierEmailExists
	}

	return err
}

type CategoryDAO struct {
	db *gorm.DB
}

func NewCategoryDAO(db *gorm.DB) *CategoryDAO {
	return &CategoryDAO{
		db: db,
	}
}

func (d *CategoryDAO) Insert(ctx context.Context, category Category) (Category, error) {
	if err := d.db.WithContext(ctx).Create(&category).Error; err != nil {
		return Category{}, categoryError(err)
	}

	return category, nil
}

func (d *CategoryDAO) Update(ctx context.Context, category Category) (Category, error) {
	if err := d.db.WithContext(ctx).Omit("created_at").Save(&category).Error; err != nil {
		return Category{}, categoryError(err)
	}

	return category, nil
}

func (d *CategoryDAO) FindByID(ctx context.Context, id string) (Category, error) {
	return first[Category](d.db.WithContext(ctx), "id = ?", id)
}

func (d *CategoryDAO) FindByName(ctx context.Context, name string) (Category, error) {
	return first[Category](d.db.WithContext(ctx), "name = ?", name)
}

func (d *CategoryDAO) FindByIDs(ctx context.Context, ids []string) ([]Category, error) {
	var categories []Category
	if len(ids) == 0 {
		return categories, nil
	}
	if err := d.db.WithContext(ctx).Where("id IN ?", ids).Find(&categories).Error; err != nil {
		return nil, err
	}

	return categories, nil
}

func (d *CategoryDAO) FindAll(ctx context.Context) ([]Category, error) {
	var categories []Category
	if err := d.db.WithContext(ctx).Order("name").Find(&categories).Error; err != nil {
		return nil, err
	}

	return categories, nil
}

// Delete unlinks the category from its ingredients before removing it.
func (d *CategoryDAO) Delete(ctx context.Context, id string) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM ingredient_categories WHERE category_id = ?", id).Error; err != nil {
			return err
		}

		result := tx.Delete(&Category{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}

		return nil
	})
}

func categoryError(err error) error {
	if isUniqueViolation(err, "uni_categories_name") {
		return ErrCategoryNameExists
	}

	return err
}
