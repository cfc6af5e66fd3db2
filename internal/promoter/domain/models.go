package domain

import (
	"github.com/smallbiznis/staffhub/internal/resource"
	"gorm.io/datatypes"
)

type PromoterGroup struct {
	resource.Model
	Name        string                      `gorm:"size:255;not null" json:"name"`
	SkillIDs    datatypes.JSONSlice[uint64] `gorm:"column:skill_ids" json:"skill_ids"`
	Description *string                     `gorm:"type:text" json:"description"`
	MaxMembers  *int                        `json:"max_members"`
}

type PromoterGroupRequest struct {
	Name        string   `json:"name" validate:"required,max=255"`
	SkillIDs    []uint64 `json:"skill_ids" validate:"omitempty,dive,exists=skills"`
	Description *string  `json:"description" validate:"omitempty,max=1000"`
	MaxMembers  *int     `json:"max_members" validate:"omitempty,gte=1"`
}

func (r PromoterGroupRequest) ToModel() PromoterGroup {
	var m PromoterGroup
	r.ApplyTo(&m)
	return m
}

func (r PromoterGroupRequest) ApplyTo(m *PromoterGroup) {
	m.Name = r.Name
	m.SkillIDs = skillIDs(r.SkillIDs)
	m.Description = r.Description
	m.MaxMembers = r.MaxMembers
}

type Promoter struct {
	resource.Model
	EmployeeID      uint64                      `gorm:"not null;index" json:"employee_id"`
	PromoterGroupID *uint64                     `gorm:"index" json:"promoter_group_id"`
	Phone           *string                     `gorm:"size:50" json:"phone"`
	Email           *string                     `gorm:"size:255" json:"email"`
	SkillIDs        datatypes.JSONSlice[uint64] `gorm:"column:skill_ids" json:"skill_ids"`
}

type PromoterRequest struct {
	EmployeeID      uint64   `json:"employee_id" validate:"required,exists=employees"`
	PromoterGroupID *uint64  `json:"promoter_group_id" validate:"omitempty,exists=promoter_groups"`
	Phone           *string  `json:"phone" validate:"omitempty,max=50"`
	Email           *string  `json:"email" validate:"omitempty,email,max=255"`
	SkillIDs        []uint64 `json:"skill_ids" validate:"omitempty,dive,exists=skills"`
}

func (r PromoterRequest) ToModel() Promoter {
	var m Promoter
	r.ApplyTo(&m)
	return m
}

func (r PromoterRequest) ApplyTo(m *Promoter) {
	m.EmployeeID = r.EmployeeID
	m.PromoterGroupID = r.PromoterGroupID
	m.Phone = r.Phone
	m.Email = r.Email
	m.SkillIDs = skillIDs(r.SkillIDs)
}

// skillIDs keeps the stored column a JSON array even when nothing was sent.
func skillIDs(ids []uint64) datatypes.JSONSlice[uint64] {
	if ids == nil {
		return datatypes.JSONSlice[uint64]{}
	}
	return datatypes.JSONSlice[uint64](ids)
}
