package role

import (
	"context"

	"go-viagens/internal/shared/database"
	"go-viagens/internal/shared/sequence"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=role_service.go -destination=mock/role_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateRoleRequest) (RoleResponse, error)
	GetAll(ctx context.Context) ([]RoleResponse, error)
	GetByID(ctx context.Context, id int64) (RoleResponse, error)
	Update(ctx context.Context, id int64, req UpdateRoleRequest) (RoleResponse, error)
	Deactivate(ctx context.Context, id int64) error
}

type service struct {
	txm    database.TxManager
	repo   Repository
	seq    sequence.Repository
	logger *zap.Logger
}

func NewService(txm database.TxManager, repo Repository, seq sequence.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("role.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("role.service")
	}
	return &service{txm: txm, repo: repo, seq: seq, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateRoleRequest) (RoleResponse, error) {
	var created Role

	err := s.txm.Do(ctx, func(tx *gorm.DB) error {
		id, err := s.seq.WithTx(tx).NextID(ctx, "role")
		if err != nil {
			return err
		}

		created = Role{ID: id, Name: req.Name, Active: true}
		return s.repo.WithTx(tx).Create(ctx, &created)
	})
	if err != nil {
		s.logger.Error("create role failed", zap.String("name", req.Name), zap.Error(err))
		return RoleResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create role success", zap.Int64("role_id", created.ID))
	return mapToResponse(created), nil
}

func (s *service) GetAll(ctx context.Context) ([]RoleResponse, error) {
	roles, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(roles), nil
}

func (s *service) GetByID(ctx context.Context, id int64) (RoleResponse, error) {
	r, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return RoleResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*r), nil
}

func (s *service) Update(ctx context.Context, id int64, req UpdateRoleRequest) (RoleResponse, error) {
	var updated Role

	err := s.txm.Do(ctx, func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		r, err := qtx.FindByID(ctx, id)
		if err != nil {
			return err
		}

		if req.Name != nil {
			r.Name = *req.Name
		}
		if req.Active != nil {
			r.Active = *req.Active
		}

		if err := qtx.Update(ctx, r); err != nil {
			return err
		}
		updated = *r
		return nil
	})
	if err != nil {
		return RoleResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(updated), nil
}

// Deactivate is a soft delete: reference rows are never removed, only flagged.
func (s *service) Deactivate(ctx context.Context, id int64) error {
	err := s.txm.Do(ctx, func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		r, err := qtx.FindByID(ctx, id)
		if err != nil {
			return err
		}
		r.Active = false
		return qtx.Update(ctx, r)
	})
	return mapRepositoryError(err)
}
