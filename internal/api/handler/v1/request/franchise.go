package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/vietanh2810/franchise-api/internal/domain"
)

type CreateFranchiseRequest struct {
	Name      string   `json:"name"`
	Address   string   `json:"address"`
	City      string   `json:"city"`
	ZipCode   string   `json:"zip_code"`
	Country   string   `json:"country"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Phone     string   `json:"phone"`
	Email     string   `json:"email"`
}

func (req *CreateFranchiseRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Address, validation.Required, validation.Length(2, 255)),
		validation.Field(&req.City, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.ZipCode, validation.Required, validation.Length(2, 20)),
		validation.Field(&req.Country, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Latitude, validation.NotNil, validation.Min(-90.0), validation.Max(90.0)),
		validation.Field(&req.Longitude, validation.NotNil, validation.Min(-180.0), validation.Max(180.0)),
		validation.Field(&req.Phone, validation.Length(0, 30)),
		validation.Field(&req.Email, is.Email, validation.Length(0, 255)),
	)
}

func (req *CreateFranchiseRequest) Franchise() domain.Franchise {
	return domain.Franchise{
		Name:      req.Name,
		Address:   req.Address,
		City:      req.City,
		ZipCode:   req.ZipCode,
		Country:   req.Country,
		Latitude:  *req.Latitude,
		Longitude: *req.Longitude,
		Phone:     req.Phone,
		Email:     req.Email,
	}
}

type UpdateFranchiseRequest struct {
	Name      *string  `json:"name"`
	Address   *string  `json:"address"`
	City      *string  `json:"city"`
	ZipCode   *string  `json:"zip_code"`
	Country   *string  `json:"country"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Phone     *string  `json:"phone"`
	Email     *string  `json:"email"`
}

func (req *UpdateFranchiseRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.NilOrNotEmpty, validation.Length(2, 100)),
		validation.Field(&req.Address, validation.NilOrNotEmpty, validation.Length(2, 255)),
		validation.Field(&req.City, validation.NilOrNotEmpty, validation.Length(1, 100)),
		validation.Field(&req.ZipCode, validation.NilOrNotEmpty, validation.Length(2, 20)),
		validation.Field(&req.Country, validation.NilOrNotEmpty, validation.Length(2, 100)),
		validation.Field(&req.Latitude, validation.Min(-90.0), validation.Max(90.0)),
		validation.Field(&req.Longitude, validation.Min(-180.0), validation.Max(180.0)),
		validation.Field(&req.Phone, validation.Length(0, 30)),
		validation.Field(&req.Email, is.Email, validation.Length(0, 255)),
	)
}

func (req *UpdateFranchiseRequest) Update() domain.FranchiseUpdate {
	return domain.FranchiseUpdate{
		Name:      req.Name,
		Address:   req.Address,
		City:      req.City,
		ZipCode:   req.ZipCode,
		Country:   req.Country,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Phone:     req.Phone,
		Email:     req.Email,
	}
}
