package repository

import "github.com/vietanh2810/franchise-api/internal/repository/dao"

var (
	ErrNotFound             = dao.ErrNotFound
	ErrUserEmailExists      = dao.ErrUserEmailExists
	ErrFranchiseNameExists  = dao.ErrFranchiseNameExists
	ErrFranchiseEmailExists = dao.ErrFranchiseEmailExists
	ErrSupplierNameExists   = dao.ErrSupplierNameExists
	ErrSupplierEmailExists  = dao.ErrSupplierEmailExists
	ErrCategoryNameExists   = dao.ErrCategoryNameExists
	ErrIngredientNameExists = dao.ErrIngredientNameExists
	ErrStockExists          = dao.ErrStockExists
	ErrStatusChanged        = dao.ErrStatusChanged
	ErrSessionNotFound      = dao.ErrSessionNotFound
)

func optional(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
