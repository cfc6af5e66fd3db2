package resource

import (
	"context"
	"strings"

	"github.com/smallbiznis/staffhub/internal/observability/metrics"
	"github.com/smallbiznis/staffhub/internal/validation"
	"github.com/smallbiznis/staffhub/pkg/db"
	"github.com/smallbiznis/staffhub/pkg/db/option"
	"github.com/smallbiznis/staffhub/pkg/db/pagination"
	"github.com/smallbiznis/staffhub/pkg/repository"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB        *gorm.DB
	Log       *zap.Logger
	Validator *validation.Validator
	Metrics   *metrics.Metrics `optional:"true"`
}

// Service implements list/create/show/update/delete for one entity.
type Service[T any, C Creator[T], U Updater[T]] struct {
	def       Definition[T]
	repo      repository.Repository[T]
	validator *validation.Validator
	log       *zap.Logger
	metrics   *metrics.Metrics
}

func New[T any, C Creator[T], U Updater[T]](p Params, def Definition[T]) *Service[T, C, U] {
	return &Service[T, C, U]{
		def:       def,
		repo:      repository.ProvideStore[T](p.DB),
		validator: p.Validator,
		log:       p.Log.Named(def.Name + ".service"),
		metrics:   p.Metrics,
	}
}

func (s *Service[T, C, U]) Name() string {
	return s.def.Name
}

func (s *Service[T, C, U]) Model() any {
	return new(T)
}

func (s *Service[T, C, U]) List(ctx context.Context, page pagination.Page) (pagination.Result[*T], error) {
	return s.list(ctx, page)
}

// ListBy lists rows whose column equals value. column must come from a
// registered Relation, never from user input.
func (s *Service[T, C, U]) ListBy(ctx context.Context, column string, value uint64, page pagination.Page) (pagination.Result[*T], error) {
	return s.list(ctx, page, option.Equal(column, value))
}

func (s *Service[T, C, U]) list(ctx context.Context, page pagination.Page, opts ...option.QueryOption) (pagination.Result[*T], error) {
	items, total, err := s.repo.Paginate(ctx, page, opts...)
	if err != nil {
		return pagination.Result[*T]{}, err
	}
	return pagination.Result[*T]{
		Items: items,
		Meta:  pagination.NewMeta(page, total, len(items)),
	}, nil
}

func (s *Service[T, C, U]) Create(ctx context.Context, req C) (*T, error) {
	if err := s.validator.Validate(ctx, &req); err != nil {
		s.metrics.RecordValidationFailure(ctx, s.def.Name, "create")
		return nil, err
	}

	model := req.ToModel()
	if hook := s.def.Hooks.BeforeSave; hook != nil {
		if err := hook(ctx, &model); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Create(ctx, &model); err != nil {
		return nil, s.storageError(err)
	}
	// respond with what the column types kept, not what was sent
	if err := s.repo.Reload(ctx, &model); err != nil {
		return nil, err
	}

	if hook := s.def.Hooks.AfterCreate; hook != nil {
		if err := hook(ctx, &model); err != nil {
			return nil, err
		}
	}

	s.metrics.RecordResourceOperation(ctx, s.def.Name, "create")
	s.log.Debug("created")
	return &model, nil
}

func (s *Service[T, C, U]) Get(ctx context.Context, id uint64) (*T, error) {
	model, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if model == nil {
		return nil, ErrNotFound
	}
	return model, nil
}

// Update replaces every writable field of the row with req.
func (s *Service[T, C, U]) Update(ctx context.Context, id uint64, req U) (*T, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.validator.Validate(validation.WithIgnoreID(ctx, id), &req); err != nil {
		s.metrics.RecordValidationFailure(ctx, s.def.Name, "update")
		return nil, err
	}

	before := *current
	req.ApplyTo(current)
	if hook := s.def.Hooks.BeforeSave; hook != nil {
		if err := hook(ctx, current); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Save(ctx, current); err != nil {
		return nil, s.storageError(err)
	}
	if err := s.repo.Reload(ctx, current); err != nil {
		return nil, err
	}

	if hook := s.def.Hooks.AfterUpdate; hook != nil {
		if err := hook(ctx, &before, current); err != nil {
			return nil, err
		}
	}

	s.metrics.RecordResourceOperation(ctx, s.def.Name, "update")
	return current, nil
}

func (s *Service[T, C, U]) Delete(ctx context.Context, id uint64) error {
	current, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if hook := s.def.Hooks.AfterDelete; hook != nil {
		if err := hook(ctx, current); err != nil {
			return err
		}
	}

	s.metrics.RecordResourceOperation(ctx, s.def.Name, "delete")
	s.log.Debug("deleted", zap.Uint64("id", id))
	return nil
}

func (s *Service[T, C, U]) ListPage(ctx context.Context, page pagination.Page) (any, pagination.Meta, error) {
	result, err := s.List(ctx, page)
	return result.Items, result.Meta, err
}

func (s *Service[T, C, U]) ListPageBy(ctx context.Context, column string, value uint64, page pagination.Page) (any, pagination.Meta, error) {
	result, err := s.ListBy(ctx, column, value, page)
	return result.Items, result.Meta, err
}

func (s *Service[T, C, U]) CreateFrom(ctx context.Context, bind BindFunc) (any, error) {
	var req C
	if err := bind(&req); err != nil {
		return nil, err
	}
	return s.Create(ctx, req)
}

func (s *Service[T, C, U]) Find(ctx context.Context, id uint64) (any, error) {
	return s.Get(ctx, id)
}

func (s *Service[T, C, U]) UpdateFrom(ctx context.Context, id uint64, bind BindFunc) (any, error) {
	// a missing row wins over an invalid payload
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrNotFound
	}
	var req U
	if err := bind(&req); err != nil {
		return nil, err
	}
	return s.Update(ctx, id, req)
}

func (s *Service[T, C, U]) Remove(ctx context.Context, id uint64) error {
	return s.Delete(ctx, id)
}

// storageError reports a unique violation that slipped past validation on
// the field whose column or index name appears in the driver error. Composite
// indexes that name none of the fields fall back to the first unique field.
func (s *Service[T, C, U]) storageError(err error) error {
	if !db.IsDuplicateKeyErr(err) || len(s.def.UniqueFields) == 0 {
		return err
	}
	field := duplicateField(err, s.def.UniqueFields)
	return validation.NewError(field, "The "+strings.ReplaceAll(field, "_", " ")+" has already been taken.")
}

func duplicateField(err error, fields []string) string {
	detail := strings.ToLower(err.Error() + " " + db.DuplicateKeyConstraint(err))
	for _, field := range fields {
		if strings.Contains(detail, field) {
			return field
		}
	}
	return fields[0]
}
