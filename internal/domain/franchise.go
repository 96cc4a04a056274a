package domain

import "time"

type Franchise struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	ZipCode   string    `json:"zip_code"`
	Country   string    `json:"country"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FranchiseUpdate holds the fields of a partial update; nil means unchanged.
type FranchiseUpdate struct {
	Name      *string
	Address   *string
	City      *string
	ZipCode   *string
	Country   *string
	Latitude  *float64
	Longitude *float64
	Phone     *string
	Email     *string
}
