package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// IDParam is the :id path segment of single resource routes.
type IDParam struct {
	ID string `json:"id" uri:"id"`
}

func (req *IDParam) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ID, validation.Required, is.UUID),
	)
}

// FranchiseQuery is the optional franchise_id query parameter of tenant scoped lists.
type FranchiseQuery struct {
	FranchiseID string `json:"franchise_id" form:"franchise_id"`
}

func (req *FranchiseQuery) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.FranchiseID, is.UUID),
	)
}

type IngredientFilterRequest struct {
	SupplierID string `json:"supplier_id" form:"supplier_id"`
	CategoryID string `json:"category_id" form:"category_id"`
}

func (req *IngredientFilterRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.SupplierID, is.UUID),
		validation.Field(&req.CategoryID, is.UUID),
	)
}
