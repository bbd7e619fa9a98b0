package employee

import (
	"context"

	"go-viagens/internal/role"
	"go-viagens/internal/shared/database"
	"go-viagens/internal/shared/sequence"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id int64) (EmployeeResponse, error)
	Update(ctx context.Context, id int64, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Deactivate(ctx context.Context, id int64) error
}

type service struct {
	txm    database.TxManager
	repo   Repository
	seq    sequence.Repository
	logger *zap.Logger
}

func NewService(txm database.TxManager, repo Repository, seq sequence.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{txm: txm, repo: repo, seq: seq, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return EmployeeResponse{}, err
	}

	roleID := role.DefaultRoleID
	if req.RoleID != nil {
		roleID = *req.RoleID
	}

	var created Employee

	err = s.txm.Do(ctx, func(tx *gorm.DB) error {
		id, err := s.seq.WithTx(tx).NextID(ctx, "employee")
		if err != nil {
			return err
		}

		created = Employee{
			ID:           id,
			Name:         req.Name,
			Email:        req.Email,
			PasswordHash: string(hash),
			RoleID:       roleID,
			Active:       true,
		}
		return s.repo.WithTx(tx).Create(ctx, &created)
	})
	if err != nil {
		s.logger.Error("create employee failed", zap.String("email", req.Email), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create employee success", zap.Int64("employee_id", created.ID))
	return mapToResponse(created), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) GetByID(ctx context.Context, id int64) (EmployeeResponse, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*e), nil
}

func (s *service) Update(ctx context.Context, id int64, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	var updated Employee

	err := s.txm.Do(ctx, func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		e, err := qtx.FindByID(ctx, id)
		if err != nil {
			return err
		}

		if req.Name != nil {
			e.Name = *req.Name
		}
		if req.Email != nil {
			e.Email = *req.Email
		}
		if req.Password != nil {
			hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			e.PasswordHash = string(hash)
		}
		if req.RoleID != nil {
			e.RoleID = *req.RoleID
		}
		if req.Active != nil {
			e.Active = *req.Active
		}

		if err := qtx.Update(ctx, e); err != nil {
			return err
		}
		updated = *e
		return nil
	})
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(updated), nil
}

// Deactivate is a soft delete so historical trips keep a valid traveler
// reference.
func (s *service) Deactivate(ctx context.Context, id int64) error {
	err := s.txm.Do(ctx, func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		e, err := qtx.FindByID(ctx, id)
		if err != nil {
			return err
		}
		e.Active = false
		return qtx.Update(ctx, e)
	})
	return mapRepositoryError(err)
}
