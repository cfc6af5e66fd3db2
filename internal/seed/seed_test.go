package seed

import (
	"testing"

	accessdomain "github.com/smallbiznis/staffhub/internal/access/domain"
	"github.com/smallbiznis/staffhub/internal/auth/password"
	"github.com/smallbiznis/staffhub/pkg/db/dbtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureAdminIsIdempotent(t *testing.T) {
	db := dbtest.Open(t,
		&accessdomain.User{},
		&accessdomain.Group{},
		&accessdomain.GroupUser{},
		&accessdomain.GroupPermission{},
	)
	admin := Admin{Name: "Ops", Email: " Ops@Example.com ", Password: "first-password"}

	require.NoError(t, EnsureAdmin(db, admin))
	admin.Password = "second-password"
	require.NoError(t, EnsureAdmin(db, admin))

	var users []accessdomain.User
	require.NoError(t, db.Find(&users).Error)
	require.Len(t, users, 1)
	assert.Equal(t, "ops@example.com", users[0].Email)
	assert.True(t, password.Verify("first-password", users[0].PasswordHash))

	var group accessdomain.Group
	require.NoError(t, db.Where("name = ?", adminGroupName).First(&group).Error)
	assert.Equal(t, "administrators", group.Slug)

	var members, grants int64
	require.NoError(t, db.Model(&accessdomain.GroupUser{}).Count(&members).Error)
	require.NoError(t, db.Model(&accessdomain.GroupPermission{}).
		Where("group_id = ? AND resource = ? AND action = ?", group.ID, "*", "*").
		Count(&grants).Error)
	assert.Equal(t, int64(1), members)
	assert.Equal(t, int64(1), grants)
}

func TestEnsureAdminRequiresCredentials(t *testing.T) {
	db := dbtest.Open(t, &accessdomain.User{})
	assert.Error(t, EnsureAdmin(db, Admin{Email: "ops@example.com"}))
}
