package authorization

import (
	"context"
	"testing"

	accessdomain "github.com/smallbiznis/staffhub/internal/access/domain"
	"github.com/smallbiznis/staffhub/pkg/db/dbtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (Service, *gorm.DB) {
	t.Helper()
	db := dbtest.Open(t,
		&accessdomain.User{}, &accessdomain.Group{},
		&accessdomain.GroupUser{}, &accessdomain.GroupPermission{},
	)
	enforcer, err := NewEnforcer(db)
	require.NoError(t, err)
	return NewService(Params{DB: db, Log: zaptest.NewLogger(t), Enforcer: enforcer}), db
}

func TestAuthorizeRejectsBadInput(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	assert.ErrorIs(t, svc.Authorize(ctx, "api_key:1", "events", "view"), ErrInvalidActor)
	assert.ErrorIs(t, svc.Authorize(ctx, "user:0", "events", "view"), ErrInvalidActor)
	assert.ErrorIs(t, svc.Authorize(ctx, UserSubject(1), " ", "view"), ErrInvalidObject)
	assert.ErrorIs(t, svc.Authorize(ctx, UserSubject(1), "events", ""), ErrInvalidAction)
}

func TestAuthorizeThroughGroups(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	user := UserSubject(7)

	assert.ErrorIs(t, svc.Authorize(ctx, user, "events", "view"), ErrForbidden)

	require.NoError(t, svc.AddMember(7, 1))
	require.NoError(t, svc.AddPermission(1, "events", "view"))
	assert.NoError(t, svc.Authorize(ctx, user, "events", "view"))
	assert.ErrorIs(t, svc.Authorize(ctx, user, "events", "delete"), ErrForbidden)
	assert.ErrorIs(t, svc.Authorize(ctx, user, "offers", "view"), ErrForbidden)

	require.NoError(t, svc.AddPermission(1, "offers", "*"))
	assert.NoError(t, svc.Authorize(ctx, user, "offers", "delete"))

	require.NoError(t, svc.RemovePermission(1, "events", "view"))
	assert.ErrorIs(t, svc.Authorize(ctx, user, "events", "view"), ErrForbidden)

	require.NoError(t, svc.RemoveMember(7, 1))
	assert.ErrorIs(t, svc.Authorize(ctx, user, "offers", "view"), ErrForbidden)
}

func TestAuthorizeWildcardResource(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.AddMember(1, 1))
	require.NoError(t, svc.AddPermission(1, "*", "view"))
	assert.NoError(t, svc.Authorize(ctx, UserSubject(1), "invoices", "view"))
	assert.ErrorIs(t, svc.Authorize(ctx, UserSubject(1), "invoices", "update"), ErrForbidden)

	require.NoError(t, svc.RemoveGroup(1))
	assert.ErrorIs(t, svc.Authorize(ctx, UserSubject(1), "invoices", "view"), ErrForbidden)
}

func TestSyncRebuildsFromTables(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	user := accessdomain.User{Name: "Ada", Email: "ada@example.test", PasswordHash: "x"}
	require.NoError(t, db.Create(&user).Error)
	group := accessdomain.Group{Name: "Planners", Slug: "planners"}
	require.NoError(t, db.Create(&group).Error)
	require.NoError(t, db.Create(&accessdomain.GroupUser{GroupID: group.ID, UserID: user.ID}).Error)
	require.NoError(t, db.Create(&accessdomain.GroupPermission{GroupID: group.ID, Resource: "events", Action: "create"}).Error)
	// grant for a group that no longer exists
	require.NoError(t, db.Create(&accessdomain.GroupPermission{GroupID: 99, Resource: "*", Action: "*"}).Error)

	// stale state that the rebuild must drop
	require.NoError(t, svc.AddMember(user.ID, 99))

	require.NoError(t, svc.Sync(ctx))

	assert.NoError(t, svc.Authorize(ctx, UserSubject(user.ID), "events", "create"))
	assert.ErrorIs(t, svc.Authorize(ctx, UserSubject(user.ID), "events", "delete"), ErrForbidden)
}
