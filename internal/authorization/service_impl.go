package authorization

import (
	"context"
	_ "embed"
	"strings"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	accessdomain "github.com/smallbiznis/staffhub/internal/access/domain"
	"github.com/smallbiznis/staffhub/internal/observability/metrics"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:embed model.conf
var modelText string

type Params struct {
	fx.In

	DB       *gorm.DB
	Log      *zap.Logger
	Enforcer *casbin.SyncedEnforcer
	Metrics  *metrics.Metrics `optional:"true"`
}

type ServiceImpl struct {
	db       *gorm.DB
	log      *zap.Logger
	enforcer *casbin.SyncedEnforcer
	metrics  *metrics.Metrics
}

func NewEnforcer(db *gorm.DB) (*casbin.SyncedEnforcer, error) {
	adapter, err := gormadapter.NewAdapterByDB(db)
	if err != nil {
		return nil, err
	}
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, err
	}
	enforcer, err := casbin.NewSyncedEnforcer(m, adapter)
	if err != nil {
		return nil, err
	}
	enforcer.EnableAutoSave(true)
	enforcer.EnableAutoBuildRoleLinks(true)
	if err := enforcer.LoadPolicy(); err != nil {
		return nil, err
	}
	return enforcer, nil
}

func NewService(p Params) Service {
	return &ServiceImpl{
		db:       p.DB,
		log:      p.Log.Named("authorization.service"),
		enforcer: p.Enforcer,
		metrics:  p.Metrics,
	}
}

func (s *ServiceImpl) Authorize(ctx context.Context, actor string, object string, action string) error {
	actor = strings.TrimSpace(actor)
	if !validActor(actor) {
		return ErrInvalidActor
	}
	object = strings.TrimSpace(object)
	if object == "" {
		return ErrInvalidObject
	}
	action = strings.TrimSpace(action)
	if action == "" {
		return ErrInvalidAction
	}

	allowed, err := s.enforcer.Enforce(actor, object, action)
	if err != nil {
		return err
	}
	if !allowed {
		s.metrics.RecordAuthorizationDenied(ctx, object, action)
		s.log.Debug("authorization denied",
			zap.String("actor", actor),
			zap.String("object", object),
			zap.String("action", action),
		)
		return ErrForbidden
	}
	return nil
}

func (s *ServiceImpl) AddMember(userID, groupID uint64) error {
	_, err := s.enforcer.AddGroupingPolicy(UserSubject(userID), GroupSubject(groupID))
	return err
}

func (s *ServiceImpl) RemoveMember(userID, groupID uint64) error {
	_, err := s.enforcer.RemoveGroupingPolicy(UserSubject(userID), GroupSubject(groupID))
	return err
}

func (s *ServiceImpl) AddPermission(groupID uint64, object, action string) error {
	_, err := s.enforcer.AddPolicy(GroupSubject(groupID), object, action)
	return err
}

func (s *ServiceImpl) RemovePermission(groupID uint64, object, action string) error {
	_, err := s.enforcer.RemovePolicy(GroupSubject(groupID), object, action)
	return err
}

// RemoveGroup drops every grant and membership of the group.
func (s *ServiceImpl) RemoveGroup(groupID uint64) error {
	subject := GroupSubject(groupID)
	if _, err := s.enforcer.RemoveFilteredPolicy(0, subject); err != nil {
		return err
	}
	_, err := s.enforcer.RemoveFilteredGroupingPolicy(1, subject)
	return err
}

func (s *ServiceImpl) RemoveUser(userID uint64) error {
	_, err := s.enforcer.RemoveFilteredGroupingPolicy(0, UserSubject(userID))
	return err
}

// Sync rebuilds the whole policy from the group_users and group_permissions
// tables. Rows pointing at deleted groups or users are skipped.
func (s *ServiceImpl) Sync(ctx context.Context) error {
	db := s.db.WithContext(ctx)

	groupIDs := db.Model(&accessdomain.Group{}).Select("id")
	userIDs := db.Model(&accessdomain.User{}).Select("id")

	var grants []accessdomain.GroupPermission
	if err := db.Where("group_id IN (?)", groupIDs).Order("id").Find(&grants).Error; err != nil {
		return err
	}

	var links []accessdomain.GroupUser
	if err := db.Where("group_id IN (?) AND user_id IN (?)", groupIDs, userIDs).Order("id").Find(&links).Error; err != nil {
		return err
	}

	s.enforcer.EnableAutoSave(false)
	defer s.enforcer.EnableAutoSave(true)

	s.enforcer.ClearPolicy()
	for _, g := range grants {
		if _, err := s.enforcer.AddPolicy(GroupSubject(g.GroupID), g.Resource, g.Action); err != nil {
			return err
		}
	}
	for _, l := range links {
		if _, err := s.enforcer.AddGroupingPolicy(UserSubject(l.UserID), GroupSubject(l.GroupID)); err != nil {
			return err
		}
	}
	if err := s.enforcer.SavePolicy(); err != nil {
		return err
	}

	s.log.Info("authorization policy synced", zap.Int("grants", len(grants)), zap.Int("memberships", len(links)))
	return nil
}
