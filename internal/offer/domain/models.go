package domain

import "github.com/smallbiznis/staffhub/internal/resource"

type Offer struct {
	resource.Model
	EventID      uint64  `gorm:"not null;index" json:"event_id"`
	CustomerID   uint64  `gorm:"not null;index" json:"customer_id"`
	Description  *string `gorm:"type:text" json:"description"`
	TotalPrice   float64 `gorm:"type:decimal(12,2);not null" json:"total_price"`
	OfferStateID uint64  `gorm:"not null;index" json:"offer_state_id"`
}

type OfferRequest struct {
	EventID      uint64   `json:"event_id" validate:"required,exists=events"`
	CustomerID   uint64   `json:"customer_id" validate:"required,exists=customers"`
	Description  *string  `json:"description"`
	TotalPrice   *float64 `json:"total_price" validate:"required,gte=0"`
	OfferStateID uint64   `json:"offer_state_id" validate:"required,exists=offer_states"`
}

func (r OfferRequest) ToModel() Offer {
	var m Offer
	r.ApplyTo(&m)
	return m
}

func (r OfferRequest) ApplyTo(m *Offer) {
	m.EventID = r.EventID
	m.CustomerID = r.CustomerID
	m.Description = r.Description
	if r.TotalPrice != nil {
		m.TotalPrice = *r.TotalPrice
	}
	m.OfferStateID = r.OfferStateID
}
