package access

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/smallbiznis/staffhub/internal/access/domain"
	"github.com/smallbiznis/staffhub/internal/auth/password"
	"github.com/smallbiznis/staffhub/internal/authorization/mocks"
	"github.com/smallbiznis/staffhub/internal/resource"
	"github.com/smallbiznis/staffhub/internal/validation"
	"github.com/smallbiznis/staffhub/pkg/db/dbtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"
)

func newParams(t *testing.T) (Params, *mocks.MockService, *gorm.DB) {
	t.Helper()
	db := dbtest.Open(t, &domain.User{}, &domain.Group{}, &domain.GroupUser{}, &domain.GroupPermission{})
	log := zaptest.NewLogger(t)
	v := validation.New(db, log)
	require.NoError(t, RegisterRules(v))

	authz := mocks.NewMockService(gomock.NewController(t))
	return Params{
		Resource: resource.Params{DB: db, Log: log, Validator: v},
		Authz:    authz,
	}, authz, db
}

func body(s string) resource.BindFunc {
	return func(dst any) error { return json.Unmarshal([]byte(s), dst) }
}

func TestUserPasswordIsHashedAndHidden(t *testing.T) {
	p, _, db := newParams(t)
	users := newUserEndpoint(p)
	ctx := context.Background()

	out, err := users.CreateFrom(ctx, body(`{"name":"Ana","email":"Ana@Example.com","password":"s3cret-pass"}`))
	require.NoError(t, err)
	created := out.(*domain.User)
	assert.Equal(t, "ana@example.com", created.Email)

	var stored string
	require.NoError(t, db.Raw("SELECT password FROM users WHERE id = ?", created.ID).Scan(&stored).Error)
	assert.NotEqual(t, "s3cret-pass", stored)
	assert.True(t, password.Verify("s3cret-pass", stored))

	raw, err := json.Marshal(created)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "password")
	assert.NotContains(t, string(raw), "s3cret-pass")

	_, err = users.UpdateFrom(ctx, created.ID, body(`{"name":"Ana B","email":"ana@example.com"}`))
	require.NoError(t, err)
	var kept string
	require.NoError(t, db.Raw("SELECT password FROM users WHERE id = ?", created.ID).Scan(&kept).Error)
	assert.Equal(t, stored, kept)

	_, err = users.UpdateFrom(ctx, created.ID, body(`{"name":"Ana B","email":"ana@example.com","password":"another-pass"}`))
	require.NoError(t, err)
	require.NoError(t, db.Raw("SELECT password FROM users WHERE id = ?", created.ID).Scan(&kept).Error)
	assert.True(t, password.Verify("another-pass", kept))
}

func TestUserCreateRequiresPassword(t *testing.T) {
	p, _, _ := newParams(t)

	_, err := newUserEndpoint(p).CreateFrom(context.Background(), body(`{"name":"Ana","email":"ana@example.com"}`))
	var verrs *validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, []string{"password"}, verrs.FieldNames())
}

func TestGroupSlugFollowsName(t *testing.T) {
	p, _, _ := newParams(t)
	groups := newGroupEndpoint(p)
	ctx := context.Background()

	out, err := groups.CreateFrom(ctx, body(`{"name":"Event Leads"}`))
	require.NoError(t, err)
	group := out.(*domain.Group)
	assert.Equal(t, "event-leads", group.Slug)

	out, err = groups.UpdateFrom(ctx, group.ID, body(`{"name":"Floor Staff"}`))
	require.NoError(t, err)
	assert.Equal(t, "floor-staff", out.(*domain.Group).Slug)
}

func TestGroupUserHooksUpdatePolicy(t *testing.T) {
	p, authz, db := newParams(t)
	require.NoError(t, db.Create(&domain.Group{Name: "leads", Slug: "leads"}).Error)
	require.NoError(t, db.Create(&domain.Group{Name: "floor", Slug: "floor"}).Error)
	require.NoError(t, db.Create(&domain.User{Name: "a", Email: "a@example.com", PasswordHash: "x"}).Error)
	members := newGroupUserEndpoint(p)
	ctx := context.Background()

	authz.EXPECT().AddMember(uint64(1), uint64(1)).Return(nil)
	out, err := members.CreateFrom(ctx, body(`{"group_id":1,"user_id":1}`))
	require.NoError(t, err)
	id := out.(*domain.GroupUser).ID

	gomock.InOrder(
		authz.EXPECT().RemoveMember(uint64(1), uint64(1)).Return(nil),
		authz.EXPECT().AddMember(uint64(1), uint64(2)).Return(nil),
	)
	_, err = members.UpdateFrom(ctx, id, body(`{"group_id":2,"user_id":1}`))
	require.NoError(t, err)

	authz.EXPECT().RemoveMember(uint64(1), uint64(2)).Return(nil)
	require.NoError(t, members.Remove(ctx, id))
}

func TestGroupPermissionHooksUpdatePolicy(t *testing.T) {
	p, authz, db := newParams(t)
	require.NoError(t, db.Create(&domain.Group{Name: "leads", Slug: "leads"}).Error)
	grants := newGroupPermissionEndpoint(p)
	ctx := context.Background()

	authz.EXPECT().AddPermission(uint64(1), resource.Countries, "view").Return(nil)
	out, err := grants.CreateFrom(ctx, body(`{"group_id":1,"resource":"countries","action":"view"}`))
	require.NoError(t, err)
	id := out.(*domain.GroupPermission).ID

	gomock.InOrder(
		authz.EXPECT().RemovePermission(uint64(1), resource.Countries, "view").Return(nil),
		authz.EXPECT().AddPermission(uint64(1), resource.Countries, "*").Return(nil),
	)
	_, err = grants.UpdateFrom(ctx, id, body(`{"group_id":1,"resource":"countries","action":"*"}`))
	require.NoError(t, err)

	authz.EXPECT().RemovePermission(uint64(1), resource.Countries, "*").Return(nil)
	require.NoError(t, grants.Remove(ctx, id))

	_, err = grants.CreateFrom(ctx, body(`{"group_id":1,"resource":"nope","action":"view"}`))
	var verrs *validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, []string{"resource"}, verrs.FieldNames())
}

func TestPolicyFailureTriggersRebuild(t *testing.T) {
	p, authz, db := newParams(t)
	require.NoError(t, db.Create(&domain.Group{Name: "leads", Slug: "leads"}).Error)
	require.NoError(t, db.Create(&domain.User{Name: "a", Email: "a@example.com", PasswordHash: "x"}).Error)
	members := newGroupUserEndpoint(p)
	ctx := context.Background()

	gomock.InOrder(
		authz.EXPECT().AddMember(uint64(1), uint64(1)).Return(errors.New("adapter closed")),
		authz.EXPECT().Sync(gomock.Any()).Return(nil),
	)
	out, err := members.CreateFrom(ctx, body(`{"group_id":1,"user_id":1}`))
	require.NoError(t, err)
	id := out.(*domain.GroupUser).ID

	failed := errors.New("adapter closed")
	gomock.InOrder(
		authz.EXPECT().RemoveMember(uint64(1), uint64(1)).Return(failed),
		authz.EXPECT().Sync(gomock.Any()).Return(errors.New("still closed")),
	)
	_, err = members.UpdateFrom(ctx, id, body(`{"group_id":1,"user_id":1}`))
	assert.ErrorIs(t, err, failed)
}
