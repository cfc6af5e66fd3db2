package domain

import (
	"strings"

	"github.com/smallbiznis/staffhub/internal/resource"
)

// User is an API account. Password is the plain value set by a request
// and is hashed into PasswordHash before persisting.
type User struct {
	resource.Model
	Name         string `gorm:"size:255;not null" json:"name"`
	Email        string `gorm:"size:255;not null;uniqueIndex" json:"email"`
	PasswordHash string `gorm:"column:password;type:text;not null" json:"-"`
	Password     string `gorm:"-" json:"-"`
}

type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email,max=255,unique=users.email"`
	Password string `json:"password" validate:"required,min=8,max=255"`
}

func (r CreateUserRequest) ToModel() User {
	return User{
		Name:     r.Name,
		Email:    NormalizeEmail(r.Email),
		Password: r.Password,
	}
}

// UpdateUserRequest keeps the stored password when none is sent.
type UpdateUserRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email,max=255,unique=users.email"`
	Password string `json:"password" validate:"omitempty,min=8,max=255"`
}

func (r UpdateUserRequest) ApplyTo(m *User) {
	m.Name = r.Name
	m.Email = NormalizeEmail(r.Email)
	if r.Password != "" {
		m.Password = r.Password
	}
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

type Group struct {
	resource.Model
	Name        string  `gorm:"size:255;not null;uniqueIndex" json:"name"`
	Slug        string  `gorm:"size:255;not null;index" json:"slug"`
	Description *string `gorm:"type:text" json:"description"`
}

type GroupRequest struct {
	Name        string  `json:"name" validate:"required,max=255,unique=groups.name"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
}

func (r GroupRequest) ToModel() Group {
	var m Group
	r.ApplyTo(&m)
	return m
}

func (r GroupRequest) ApplyTo(m *Group) {
	m.Name = r.Name
	m.Description = r.Description
}

type GroupUser struct {
	resource.Model
	GroupID uint64 `gorm:"not null;uniqueIndex:ux_group_users_group_user,priority:1" json:"group_id"`
	UserID  uint64 `gorm:"not null;uniqueIndex:ux_group_users_group_user,priority:2;index" json:"user_id"`
}

type GroupUserRequest struct {
	GroupID uint64 `json:"group_id" validate:"required,exists=groups"`
	UserID  uint64 `json:"user_id" validate:"required,exists=users"`
}

func (r GroupUserRequest) ToModel() GroupUser {
	var m GroupUser
	r.ApplyTo(&m)
	return m
}

func (r GroupUserRequest) ApplyTo(m *GroupUser) {
	m.GroupID = r.GroupID
	m.UserID = r.UserID
}

type GroupPermission struct {
	resource.Model
	GroupID  uint64 `gorm:"not null;uniqueIndex:ux_group_permissions_grant,priority:1" json:"group_id"`
	Resource string `gorm:"size:100;not null;uniqueIndex:ux_group_permissions_grant,priority:2" json:"resource"`
	Action   string `gorm:"size:20;not null;uniqueIndex:ux_group_permissions_grant,priority:3" json:"action"`
}

type GroupPermissionRequest struct {
	GroupID  uint64 `json:"group_id" validate:"required,exists=groups"`
	Resource string `json:"resource" validate:"required,resource_name"`
	Action   string `json:"action" validate:"required,oneof=view create update delete *"`
}

func (r GroupPermissionRequest) ToModel() GroupPermission {
	var m GroupPermission
	r.ApplyTo(&m)
	return m
}

func (r GroupPermissionRequest) ApplyTo(m *GroupPermission) {
	m.GroupID = r.GroupID
	m.Resource = r.Resource
	m.Action = r.Action
}
