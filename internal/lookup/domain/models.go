package domain

import "github.com/smallbiznis/staffhub/internal/resource"

// Lookup holds the columns shared by every reference table.
type Lookup struct {
	resource.Model
	Name        string  `gorm:"size:255;not null" json:"name"`
	Description *string `gorm:"type:text" json:"description"`
}

func (l *Lookup) SetAttributes(name string, description *string) {
	l.Name = name
	l.Description = description
}

// Attributed is satisfied by pointers to plain lookup models.
type Attributed[T any] interface {
	*T
	SetAttributes(name string, description *string)
}

// Request creates or replaces any plain lookup row.
type Request[T any, PT Attributed[T]] struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
}

func (r Request[T, PT]) ToModel() T {
	var m T
	PT(&m).SetAttributes(r.Name, r.Description)
	return m
}

func (r Request[T, PT]) ApplyTo(m *T) {
	PT(m).SetAttributes(r.Name, r.Description)
}

type CommitmentState struct{ Lookup }
type EventState struct{ Lookup }
type OfferState struct{ Lookup }
type PaymentState struct{ Lookup }
type TimeTrackingState struct{ Lookup }
type Gender struct{ Lookup }
type InventoryCondition struct{ Lookup }
type Skill struct{ Lookup }
type TimeTrackingChannel struct{ Lookup }

type Country struct {
	resource.Model
	Name        string  `gorm:"size:255;not null;uniqueIndex" json:"name"`
	Code        *string `gorm:"size:2" json:"code"`
	Description *string `gorm:"type:text" json:"description"`
}

type CountryRequest struct {
	Name        string  `json:"name" validate:"required,max=255,unique=countries.name"`
	Code        *string `json:"code" validate:"omitempty,len=2,alpha"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
}

func (r CountryRequest) ToModel() Country {
	var m Country
	r.ApplyTo(&m)
	return m
}

func (r CountryRequest) ApplyTo(m *Country) {
	m.Name = r.Name
	m.Code = r.Code
	m.Description = r.Description
}

type Department struct {
	resource.Model
	Name        string  `gorm:"size:255;not null;uniqueIndex" json:"name"`
	Description *string `gorm:"type:text" json:"description"`
}

type DepartmentRequest struct {
	Name        string  `json:"name" validate:"required,max=255,unique=departments.name"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
}

func (r DepartmentRequest) ToModel() Department {
	var m Department
	r.ApplyTo(&m)
	return m
}

func (r DepartmentRequest) ApplyTo(m *Department) {
	m.Name = r.Name
	m.Description = r.Description
}

type PriceGroup struct {
	Lookup
	HourlyRate *float64 `gorm:"type:decimal(10,2)" json:"hourly_rate"`
}

type PriceGroupRequest struct {
	Name        string   `json:"name" validate:"required,max=255"`
	Description *string  `json:"description" validate:"omitempty,max=1000"`
	HourlyRate  *float64 `json:"hourly_rate" validate:"omitempty,gte=0"`
}

func (r PriceGroupRequest) ToModel() PriceGroup {
	var m PriceGroup
	r.ApplyTo(&m)
	return m
}

func (r PriceGroupRequest) ApplyTo(m *PriceGroup) {
	m.Name = r.Name
	m.Description = r.Description
	m.HourlyRate = r.HourlyRate
}

type ServiceArea struct {
	Lookup
	ParentID *uint64 `gorm:"index" json:"parent_id"`
}

type ServiceAreaRequest struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
	ParentID    *uint64 `json:"parent_id" validate:"omitempty,not_self,exists=service_areas"`
}

func (r ServiceAreaRequest) ToModel() ServiceArea {
	var m ServiceArea
	r.ApplyTo(&m)
	return m
}

func (r ServiceAreaRequest) ApplyTo(m *ServiceArea) {
	m.Name = r.Name
	m.Description = r.Description
	m.ParentID = r.ParentID
}
