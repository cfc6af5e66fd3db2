package domain

import "github.com/smallbiznis/staffhub/internal/resource"

type Inventory struct {
	resource.Model
	Name                 string  `gorm:"size:255;not null" json:"name"`
	Description          *string `gorm:"type:text" json:"description"`
	Quantity             int     `gorm:"not null" json:"quantity"`
	InventoryConditionID uint64  `gorm:"not null;index" json:"inventory_condition_id"`
	LocationID           *uint64 `gorm:"index" json:"location_id"`
}

type InventoryRequest struct {
	Name                 string  `json:"name" validate:"required,max=255"`
	Description          *string `json:"description" validate:"omitempty,max=1000"`
	Quantity             *int    `json:"quantity" validate:"required,gte=0"`
	InventoryConditionID uint64  `json:"inventory_condition_id" validate:"required,exists=inventory_conditions"`
	LocationID           *uint64 `json:"location_id" validate:"omitempty,exists=locations"`
}

func (r InventoryRequest) ToModel() Inventory {
	var m Inventory
	r.ApplyTo(&m)
	return m
}

func (r InventoryRequest) ApplyTo(m *Inventory) {
	m.Name = r.Name
	m.Description = r.Description
	if r.Quantity != nil {
		m.Quantity = *r.Quantity
	}
	m.InventoryConditionID = r.InventoryConditionID
	m.LocationID = r.LocationID
}
