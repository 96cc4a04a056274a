package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/vietanh2810/franchise-api/internal/apperr"
	"github.com/vietanh2810/franchise-api/internal/domain"
	"github.com/vietanh2810/franchise-api/internal/permission"
	"github.com/vietanh2810/franchise-api/internal/repository"
)

var (
	ErrFranchiseNotFound    = apperr.NotFound("FRANCHISE_NOT_FOUND", "franchise not found")
	ErrFranchiseNameExists  = apperr.Conflict("FRANCHISE_NAME_EXISTS", "a franchise with this name already exists")
	ErrFranchiseEmailExists = apperr.Conflict("FRANCHISE_EMAIL_EXISTS", "a franchise with this email already exists")

	ErrSupplierNotFound    = apperr.NotFound("SUPPLIER_NOT_FOUND", "supplier not found")
	ErrSupplierNameExists  = apperr.Conflict("SUPPLIER_NAME_EXISTS", "a supplier with this name already exists")
	ErrSupplierEmailExists = apperr.Conflict("SUPPLIER_EMAIL_EXISTS", "a supplier with this email already exists")

	ErrCategoryNotFound   = apperr.NotFound("CATEGORY_NOT_FOUND", "category not found")
	ErrCategoryNameExists = apperr.Conflict("CATEGORY_NAME_EXISTS", "a category with this name already exists")

	ErrIngredientNotFound   = apperr.NotFound("INGREDIENT_NOT_FOUND", "ingredient not found")
	ErrIngredientNameExists = apperr.Conflict("INGREDIENT_NAME_EXISTS", "an ingredient with this name already exists")

	ErrStockNotFound = apperr.NotFound("STOCK_NOT_FOUND", "stock not found")
	ErrStockExists   = apperr.Conflict("STOCK_EXISTS", "this franchise already has a stock entry for this ingredient")

	ErrCommandNotFound         = apperr.NotFound("COMMAND_NOT_FOUND", "command not found")
	ErrInvalidStatusTransition = apperr.Conflict("INVALID_STATUS_TRANSITION", "the command cannot move to this status")
	ErrCommandNotDeletable     = apperr.Conflict("COMMAND_NOT_DELETABLE", "only draft or canceled commands can be deleted")

	ErrUserNotFound     = apperr.NotFound("USER_NOT_FOUND", "user not found")
	ErrUserEmailExists  = apperr.Conflict("USER_EMAIL_EXISTS", "a user with this email already exists")
	ErrWrongCredentials = apperr.Unauthorized("INVALID_CREDENTIALS", "wrong email or password")
	ErrInvalidSession   = apperr.Unauthorized("INVALID_REFRESH_TOKEN", "refresh token is missing, expired or revoked")
	ErrAdminExists      = apperr.Conflict("ADMIN_EXISTS", "an administrator already exists")
	ErrRoleNotAllowed   = apperr.Forbidden("ROLE_NOT_ALLOWED", "you cannot create a user with this role")
	ErrAdminFranchise   = apperr.BadRequest("ADMIN_WITH_FRANCHISE", "administrators cannot belong to a franchise")
	ErrDeleteSelf       = apperr.BadRequest("CANNOT_DELETE_SELF", "you cannot delete your own account")
)

// conflicts maps the unique constraint errors raised on write to the errors
// sent to clients, for writes that race past the pre-checks.
var conflicts = map[error]error{
	repository.ErrFranchiseNameExists:  ErrFranchiseNameExists,
	repository.ErrFranchiseEmailExists: ErrFranchiseEmailExists,
	repository.ErrSupplierNameExists:   ErrSupplierNameExists,
	repository.ErrSupplierEmailExists:  ErrSupplierEmailExists,
	repository.ErrCategoryNameExists:   ErrCategoryNameExists,
	repository.ErrIngredientNameExists: ErrIngredientNameExists,
	repository.ErrStockExists:          ErrStockExists,
	repository.ErrUserEmailExists:      ErrUserEmailExists,
}

// translate wraps err with its call path, replacing repository errors with
// their client-facing equivalent. notFound is used for repository.ErrNotFound.
func translate(err error, path string, notFound error) error {
	if errors.Is(err, repository.ErrNotFound) && notFound != nil {
		return fmt.Errorf("%s -> %w", path, notFound)
	}
	for repoErr, appErr := range conflicts {
		if errors.Is(err, repoErr) {
			return fmt.Errorf("%s -> %w", path, appErr)
		}
	}

	return fmt.Errorf("%s -> %w", path, err)
}

// ensureUnique fails with conflict when value is already used by a record
// other than selfID. Empty values are not checked.
func ensureUnique[T any](ctx context.Context, find func(context.Context, string) (T, error), idOf func(T) string, value, selfID string, conflict error) error {
	if value == "" {
		return nil
	}

	found, err := find(ctx, value)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return err
	}
	if idOf(found) == selfID {
		return nil
	}

	return conflict
}

// ensureExists fails with notFound unless exists reports the record.
func ensureExists(ctx context.Context, exists func(context.Context, string) (bool, error), id string, notFound error) error {
	ok, err := exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return notFound
	}

	return nil
}

// checkAll runs the checks concurrently and returns the first failure.
func checkAll(ctx context.Context, checks ...func(ctx context.Context) error) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, check := range checks {
		check := check
		g.Go(func() error {
			return check(gctx)
		})
	}

	return g.Wait()
}

// resolveFranchiseID is permission.ResolveFranchiseID, also refusing tenant
// tokens that carry an empty franchise.
func resolveFranchiseID(claims domain.Claims, requestedID string) (string, error) {
	franchiseID, err := permission.ResolveFranchiseID(claims, requestedID)
	if err != nil {
		return "", err
	}
	if franchiseID == "" {
		return "", permission.ErrForbiddenFranchise
	}

	return franchiseID, nil
}
