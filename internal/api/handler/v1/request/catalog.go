package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/vietanh2810/franchise-api/internal/domain"
)

type CategoryRequest struct {
	Name string `json:"name"`
}

func (req *CategoryRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
	)
}

type CreateSupplierRequest struct {
	Name        string `json:"name"`
	ContactName string `json:"contact_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
}

func (req *CreateSupplierRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.ContactName, validation.Length(0, 100)),
		validation.Field(&req.Email, is.Email, validation.Length(0, 255)),
		validation.Field(&req.Phone, validation.Length(0, 30)),
		validation.Field(&req.Address, validation.Length(0, 255)),
	)
}

func (req *CreateSupplierRequest) Supplier() domain.Supplier {
	return domain.Supplier{
		Name:        req.Name,
		ContactName: req.ContactName,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
	}
}

type UpdateSupplierRequest struct {
	Name        *string `json:"name"`
	ContactName *string `json:"contact_name"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
}

func (req *UpdateSupplierRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.NilOrNotEmpty, validation.Length(2, 100)),
		validation.Field(&req.ContactName, validation.Length(0, 100)),
		validation.Field(&req.Email, is.Email, validation.Length(0, 255)),
		validation.Field(&req.Phone, validation.Length(0, 30)),
		validation.Field(&req.Address, validation.Length(0, 255)),
	)
}

func (req *UpdateSupplierRequest) Update() domain.SupplierUpdate {
	return domain.SupplierUpdate{
		Name:        req.Name,
		ContactName: req.ContactName,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
	}
}
