package domain

import (
	"time"

	"github.com/smallbiznis/staffhub/internal/resource"
)

type TimeTracking struct {
	resource.Model
	EmployeeID            uint64    `gorm:"not null;index" json:"employee_id"`
	CommitmentID          *uint64   `gorm:"index" json:"commitment_id"`
	TimeTrackingChannelID uint64    `gorm:"not null;index" json:"time_tracking_channel_id"`
	TimeTrackingStateID   uint64    `gorm:"not null;index" json:"time_tracking_state_id"`
	StartTime             time.Time `gorm:"not null" json:"start_time"`
	EndTime               time.Time `gorm:"not null" json:"end_time"`
	Notes                 *string   `gorm:"type:text" json:"notes"`
}

type TimeTrackingRequest struct {
	EmployeeID            uint64    `json:"employee_id" validate:"required,exists=employees"`
	CommitmentID          *uint64   `json:"commitment_id" validate:"omitempty,exists=commitments"`
	TimeTrackingChannelID uint64    `json:"time_tracking_channel_id" validate:"required,exists=time_tracking_channels"`
	TimeTrackingStateID   uint64    `json:"time_tracking_state_id" validate:"required,exists=time_tracking_states"`
	StartTime             time.Time `json:"start_time" validate:"required"`
	EndTime               time.Time `json:"end_time" validate:"required,gtfield=StartTime"`
	Notes                 *string   `json:"notes" validate:"omitempty,max=1000"`
}

func (r TimeTrackingRequest) ToModel() TimeTracking {
	var m TimeTracking
	r.ApplyTo(&m)
	return m
}

func (r TimeTrackingRequest) ApplyTo(m *TimeTracking) {
	m.EmployeeID = r.EmployeeID
	m.CommitmentID = r.CommitmentID
	m.TimeTrackingChannelID = r.TimeTrackingChannelID
	m.TimeTrackingStateID = r.TimeTrackingStateID
	m.StartTime = r.StartTime
	m.EndTime = r.EndTime
	m.Notes = r.Notes
}
