package authorization

import (
	"context"
	"errors"
	"strconv"
	"strings"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

// Service decides whether a user may perform an action on a resource and
// keeps the policy in step with group memberships and group permissions.
type Service interface {
	Authorize(ctx context.Context, actor string, object string, action string) error
	AddMember(userID, groupID uint64) error
	RemoveMember(userID, groupID uint64) error
	AddPermission(groupID uint64, object, action string) error
	RemovePermission(groupID uint64, object, action string) error
	RemoveGroup(groupID uint64) error
	RemoveUser(userID uint64) error
	Sync(ctx context.Context) error
}

var (
	ErrInvalidActor  = errors.New("invalid_actor")
	ErrInvalidObject = errors.New("invalid_object")
	ErrInvalidAction = errors.New("invalid_action")
	ErrForbidden     = errors.New("forbidden")
)

const (
	userPrefix  = "user:"
	groupPrefix = "group:"
)

func UserSubject(id uint64) string {
	return userPrefix + strconv.FormatUint(id, 10)
}

func GroupSubject(id uint64) string {
	return groupPrefix + strconv.FormatUint(id, 10)
}

func validActor(actor string) bool {
	raw, ok := strings.CutPrefix(actor, userPrefix)
	if !ok {
		return false
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	return err == nil && id > 0
}
