package seed

import (
	"context"
	"errors"
	"strings"

	"github.com/gosimple/slug"
	accessdomain "github.com/smallbiznis/staffhub/internal/access/domain"
	"github.com/smallbiznis/staffhub/internal/auth/password"
	"github.com/smallbiznis/staffhub/internal/resource"
	"gorm.io/gorm"
)

const (
	adminGroupName        = "administrators"
	adminGroupDescription = "Full access to every resource."
)

// Admin describes the bootstrap account.
type Admin struct {
	Name     string
	Email    string
	Password string
}

// EnsureAdmin makes sure the admin user exists, belongs to the
// administrators group and that the group holds the wildcard grant. An
// existing user keeps its password.
func EnsureAdmin(db *gorm.DB, admin Admin) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}
	email := accessdomain.NormalizeEmail(admin.Email)
	if email == "" || admin.Password == "" {
		return errors.New("bootstrap admin email and password are required")
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user, err := ensureUserTx(ctx, tx, admin, email)
		if err != nil {
			return err
		}

		group, err := ensureGroupTx(ctx, tx)
		if err != nil {
			return err
		}

		membership := accessdomain.GroupUser{GroupID: group.ID, UserID: user.ID}
		if err := tx.WithContext(ctx).
			Where("group_id = ? AND user_id = ?", group.ID, user.ID).
			FirstOrCreate(&membership).Error; err != nil {
			return err
		}

		grant := accessdomain.GroupPermission{
			GroupID:  group.ID,
			Resource: resource.Wildcard,
			Action:   resource.Wildcard,
		}
		return tx.WithContext(ctx).
			Where("group_id = ? AND resource = ? AND action = ?", group.ID, resource.Wildcard, resource.Wildcard).
			FirstOrCreate(&grant).Error
	})
}

func ensureUserTx(ctx context.Context, tx *gorm.DB, admin Admin, email string) (accessdomain.User, error) {
	var user accessdomain.User
	err := tx.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return user, err
	}

	hashed, err := password.Hash(admin.Password)
	if err != nil {
		return user, err
	}
	name := strings.TrimSpace(admin.Name)
	if name == "" {
		name = email
	}
	user = accessdomain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hashed,
	}
	if err := tx.WithContext(ctx).Create(&user).Error; err != nil {
		return user, err
	}
	return user, nil
}

func ensureGroupTx(ctx context.Context, tx *gorm.DB) (accessdomain.Group, error) {
	var group accessdomain.Group
	err := tx.WithContext(ctx).Where("name = ?", adminGroupName).First(&group).Error
	if err == nil {
		return group, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return group, err
	}

	description := adminGroupDescription
	group = accessdomain.Group{
		Name:        adminGroupName,
		Slug:        slug.Make(adminGroupName),
		Description: &description,
	}
	if err := tx.WithContext(ctx).Create(&group).Error; err != nil {
		return group, err
	}
	return group, nil
}
