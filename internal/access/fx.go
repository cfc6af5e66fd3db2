package access

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/gosimple/slug"
	"github.com/smallbiznis/staffhub/internal/access/domain"
	"github.com/smallbiznis/staffhub/internal/auth/password"
	"github.com/smallbiznis/staffhub/internal/authorization"
	"github.com/smallbiznis/staffhub/internal/resource"
	"github.com/smallbiznis/staffhub/internal/validation"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("access.service",
	fx.Invoke(RegisterRules),
	fx.Provide(
		fx.Annotate(newUserEndpoint, fx.ResultTags(`group:"endpoints"`)),
		fx.Annotate(newGroupEndpoint, fx.ResultTags(`group:"endpoints"`)),
		fx.Annotate(newGroupUserEndpoint, fx.ResultTags(`group:"endpoints"`)),
		fx.Annotate(newGroupPermissionEndpoint, fx.ResultTags(`group:"endpoints"`)),
	),
)

type Params struct {
	fx.In

	Resource resource.Params
	Authz    authorization.Service
}

// RegisterRules adds the validation rules access payloads rely on.
func RegisterRules(v *validation.Validator) error {
	return v.RegisterRule("resource_name", func(_ context.Context, fl validator.FieldLevel) bool {
		return resource.Known(fl.Field().String())
	})
}

func newUserEndpoint(p Params) resource.Endpoint {
	return resource.New[domain.User, domain.CreateUserRequest, domain.UpdateUserRequest](p.Resource, resource.Definition[domain.User]{
		Name:         resource.Users,
		UniqueFields: []string{"email"},
		Hooks: resource.Hooks[domain.User]{
			BeforeSave: hashPassword,
			AfterDelete: func(ctx context.Context, u *domain.User) error {
				return p.resyncOnError(ctx, "remove user", p.Authz.RemoveUser(u.ID))
			},
		},
	})
}

func newGroupEndpoint(p Params) resource.Endpoint {
	return resource.New[domain.Group, domain.GroupRequest, domain.GroupRequest](p.Resource, resource.Definition[domain.Group]{
		Name:         resource.Groups,
		UniqueFields: []string{"name"},
		Hooks: resource.Hooks[domain.Group]{
			BeforeSave: func(_ context.Context, g *domain.Group) error {
				g.Slug = slug.Make(g.Name)
				return nil
			},
			AfterDelete: func(ctx context.Context, g *domain.Group) error {
				return p.resyncOnError(ctx, "remove group", p.Authz.RemoveGroup(g.ID))
			},
		},
	})
}

func newGroupUserEndpoint(p Params) resource.Endpoint {
	return resource.New[domain.GroupUser, domain.GroupUserRequest, domain.GroupUserRequest](p.Resource, resource.Definition[domain.GroupUser]{
		Name:         resource.GroupUsers,
		UniqueFields: []string{"user_id"},
		Hooks: resource.Hooks[domain.GroupUser]{
			AfterCreate: func(ctx context.Context, m *domain.GroupUser) error {
				return p.resyncOnError(ctx, "add member", p.Authz.AddMember(m.UserID, m.GroupID))
			},
			AfterUpdate: func(ctx context.Context, before, after *domain.GroupUser) error {
				if err := p.Authz.RemoveMember(before.UserID, before.GroupID); err != nil {
					return p.resyncOnError(ctx, "remove member", err)
				}
				return p.resyncOnError(ctx, "add member", p.Authz.AddMember(after.UserID, after.GroupID))
			},
			AfterDelete: func(ctx context.Context, m *domain.GroupUser) error {
				return p.resyncOnError(ctx, "remove member", p.Authz.RemoveMember(m.UserID, m.GroupID))
			},
		},
	})
}

func newGroupPermissionEndpoint(p Params) resource.Endpoint {
	return resource.New[domain.GroupPermission, domain.GroupPermissionRequest, domain.GroupPermissionRequest](p.Resource, resource.Definition[domain.GroupPermission]{
		Name:         resource.GroupPermissions,
		UniqueFields: []string{"resource"},
		Hooks: resource.Hooks[domain.GroupPermission]{
			AfterCreate: func(ctx context.Context, m *domain.GroupPermission) error {
				return p.resyncOnError(ctx, "add permission", p.Authz.AddPermission(m.GroupID, m.Resource, m.Action))
			},
			AfterUpdate: func(ctx context.Context, before, after *domain.GroupPermission) error {
				if err := p.Authz.RemovePermission(before.GroupID, before.Resource, before.Action); err != nil {
					return p.resyncOnError(ctx, "remove permission", err)
				}
				return p.resyncOnError(ctx, "add permission", p.Authz.AddPermission(after.GroupID, after.Resource, after.Action))
			},
			AfterDelete: func(ctx context.Context, m *domain.GroupPermission) error {
				return p.resyncOnError(ctx, "remove permission", p.Authz.RemovePermission(m.GroupID, m.Resource, m.Action))
			},
		},
	})
}

// resyncOnError rebuilds the policy from the membership tables when an
// incremental update failed, so the stored rows stay authoritative. The
// original error is returned only when the rebuild fails too.
func (p Params) resyncOnError(ctx context.Context, op string, err error) error {
	if err == nil {
		return nil
	}
	log := p.Resource.Log.Named("access")
	log.Warn("policy update failed, rebuilding", zap.String("op", op), zap.Error(err))
	if serr := p.Authz.Sync(ctx); serr != nil {
		log.Error("policy rebuild failed", zap.Error(serr))
		return err
	}
	return nil
}

func hashPassword(_ context.Context, u *domain.User) error {
	if u.Password == "" {
		return nil
	}
	hash, err := password.Hash(u.Password)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	u.Password = ""
	return nil
}
