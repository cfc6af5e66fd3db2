package domain

import "github.com/smallbiznis/staffhub/internal/resource"

type Customer struct {
	resource.Model
	CompanyName  string  `gorm:"size:255;not null" json:"company_name"`
	ContactName  *string `gorm:"size:255" json:"contact_name"`
	Email        string  `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Phone        *string `gorm:"size:50" json:"phone"`
	Address      *string `gorm:"size:255" json:"address"`
	City         *string `gorm:"size:255" json:"city"`
	PostalCode   *string `gorm:"size:20" json:"postal_code"`
	CountryID    *uint64 `gorm:"index" json:"country_id"`
	PriceGroupID *uint64 `gorm:"index" json:"price_group_id"`
}

type CustomerRequest struct {
	CompanyName  string  `json:"company_name" validate:"required,max=255"`
	ContactName  *string `json:"contact_name" validate:"omitempty,max=255"`
	Email        string  `json:"email" validate:"required,email,max=255,unique=customers.email"`
	Phone        *string `json:"phone" validate:"omitempty,max=50"`
	Address      *string `json:"address" validate:"omitempty,max=255"`
	City         *string `json:"city" validate:"omitempty,max=255"`
	PostalCode   *string `json:"postal_code" validate:"omitempty,max=20"`
	CountryID    *uint64 `json:"country_id" validate:"omitempty,exists=countries"`
	PriceGroupID *uint64 `json:"price_group_id" validate:"omitempty,exists=price_groups"`
}

func (r CustomerRequest) ToModel() Customer {
	var m Customer
	r.ApplyTo(&m)
	return m
}

func (r CustomerRequest) ApplyTo(m *Customer) {
	m.CompanyName = r.CompanyName
	m.ContactName = r.ContactName
	m.Email = r.Email
	m.Phone = r.Phone
	m.Address = r.Address
	m.City = r.City
	m.PostalCode = r.PostalCode
	m.CountryID = r.CountryID
	m.PriceGroupID = r.PriceGroupID
}
