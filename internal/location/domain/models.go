package domain

import "github.com/smallbiznis/staffhub/internal/resource"

type Location struct {
	resource.Model
	Name       string `gorm:"size:255;not null" json:"name"`
	Address    string `gorm:"size:255;not null" json:"address"`
	City       string `gorm:"size:255;not null" json:"city"`
	CountryID  uint64 `gorm:"not null;index" json:"country_id"`
	PostalCode string `gorm:"size:20;not null" json:"postal_code"`
	Capacity   *int   `json:"capacity"`
}

type LocationRequest struct {
	Name       string `json:"name" validate:"required,max=255"`
	Address    string `json:"address" validate:"required,max=255"`
	City       string `json:"city" validate:"required,max=255"`
	CountryID  uint64 `json:"country_id" validate:"required,exists=countries"`
	PostalCode string `json:"postal_code" validate:"required,max=20"`
	Capacity   *int   `json:"capacity" validate:"omitempty,gte=0"`
}

func (r LocationRequest) ToModel() Location {
	var m Location
	r.ApplyTo(&m)
	return m
}

func (r LocationRequest) ApplyTo(m *Location) {
	m.Name = r.Name
	m.Address = r.Address
	m.City = r.City
	m.CountryID = r.CountryID
	m.PostalCode = r.PostalCode
	m.Capacity = r.Capacity
}
