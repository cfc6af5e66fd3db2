package domain

import (
	"time"

	"github.com/smallbiznis/staffhub/internal/resource"
)

type Event struct {
	resource.Model
	Name         string    `gorm:"size:255;not null" json:"name"`
	Date         time.Time `gorm:"not null;index" json:"date"`
	Organizer    string    `gorm:"size:255;not null" json:"organizer"`
	Budget       *float64  `gorm:"type:decimal(12,2)" json:"budget"`
	LocationID   uint64    `gorm:"not null;index" json:"location_id"`
	EventStateID uint64    `gorm:"not null;index" json:"event_state_id"`
	Description  *string   `gorm:"type:text" json:"description"`
}

type EventRequest struct {
	Name         string    `json:"name" validate:"required,max=255"`
	Date         time.Time `json:"date" validate:"required"`
	Organizer    string    `json:"organizer" validate:"required,max=255"`
	Budget       *float64  `json:"budget" validate:"omitempty,gte=0"`
	LocationID   uint64    `json:"location_id" validate:"required,exists=locations"`
	EventStateID uint64    `json:"event_state_id" validate:"required,exists=event_states"`
	Description  *string   `json:"description"`
}

func (r EventRequest) ToModel() Event {
	var m Event
	r.ApplyTo(&m)
	return m
}

func (r EventRequest) ApplyTo(m *Event) {
	m.Name = r.Name
	m.Date = r.Date
	m.Organizer = r.Organizer
	m.Budget = r.Budget
	m.LocationID = r.LocationID
	m.EventStateID = r.EventStateID
	m.Description = r.Description
}
