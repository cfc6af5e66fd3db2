package domain

import (
	"time"

	"github.com/smallbiznis/staffhub/internal/resource"
)

type Commitment struct {
	resource.Model
	PromoterID        uint64    `gorm:"not null;index" json:"promoter_id"`
	EventID           uint64    `gorm:"not null;index" json:"event_id"`
	Role              string    `gorm:"size:255;not null" json:"role"`
	StartTime         time.Time `gorm:"not null" json:"start_time"`
	EndTime           time.Time `gorm:"not null" json:"end_time"`
	CommitmentStateID uint64    `gorm:"not null;index" json:"commitment_state_id"`
}

type CommitmentRequest struct {
	PromoterID        uint64    `json:"promoter_id" validate:"required,exists=promoters"`
	EventID           uint64    `json:"event_id" validate:"required,exists=events"`
	Role              string    `json:"role" validate:"required,max=255"`
	StartTime         time.Time `json:"start_time" validate:"required"`
	EndTime           time.Time `json:"end_time" validate:"required,gtfield=StartTime"`
	CommitmentStateID uint64    `json:"commitment_state_id" validate:"required,exists=commitment_states"`
}

func (r CommitmentRequest) ToModel() Commitment {
	var m Commitment
	r.ApplyTo(&m)
	return m
}

func (r CommitmentRequest) ApplyTo(m *Commitment) {
	m.PromoterID = r.PromoterID
	m.EventID = r.EventID
	m.Role = r.Role
	m.StartTime = r.StartTime
	m.EndTime = r.EndTime
	m.CommitmentStateID = r.CommitmentStateID
}
