package domain

import (
	"time"

	"github.com/smallbiznis/staffhub/internal/resource"
)

type Employee struct {
	resource.Model
	FirstName    string     `gorm:"size:255;not null" json:"first_name"`
	LastName     string     `gorm:"size:255;not null" json:"last_name"`
	Email        string     `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Phone        *string    `gorm:"size:50" json:"phone"`
	GenderID     *uint64    `gorm:"index" json:"gender_id"`
	DepartmentID *uint64    `gorm:"index" json:"department_id"`
	BirthDate    *time.Time `json:"birth_date"`
	HireDate     *time.Time `json:"hire_date"`
}

type EmployeeRequest struct {
	FirstName    string     `json:"first_name" validate:"required,max=255"`
	LastName     string     `json:"last_name" validate:"required,max=255"`
	Email        string     `json:"email" validate:"required,email,max=255,unique=employees.email"`
	Phone        *string    `json:"phone" validate:"omitempty,max=50"`
	GenderID     *uint64    `json:"gender_id" validate:"omitempty,exists=genders"`
	DepartmentID *uint64    `json:"department_id" validate:"omitempty,exists=departments"`
	BirthDate    *time.Time `json:"birth_date"`
	HireDate     *time.Time `json:"hire_date"`
}

func (r EmployeeRequest) ToModel() Employee {
	var m Employee
	r.ApplyTo(&m)
	return m
}

func (r EmployeeRequest) ApplyTo(m *Employee) {
	m.FirstName = r.FirstName
	m.LastName = r.LastName
	m.Email = r.Email
	m.Phone = r.Phone
	m.GenderID = r.GenderID
	m.DepartmentID = r.DepartmentID
	m.BirthDate = r.BirthDate
	m.HireDate = r.HireDate
}
