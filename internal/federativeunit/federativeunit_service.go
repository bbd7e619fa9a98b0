package federativeunit

import (
	"context"
	"strings"

	"go-viagens/internal/shared/database"
	"go-viagens/internal/shared/sequence"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=federativeunit_service.go -destination=mock/federativeunit_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateFederativeUnitRequest) (FederativeUnitResponse, error)
	GetAll(ctx context.Context) ([]FederativeUnitResponse, error)
	GetByID(ctx context.Context, id int64) (FederativeUnitResponse, error)
	Update(ctx context.Context, id int64, req UpdateFederativeUnitRequest) (FederativeUnitResponse, error)
	Deactivate(ctx context.Context, id int64) error
}

type service struct {
	txm    database.TxManager
	repo   Repository
	seq    sequence.Repository
	logger *zap.Logger
}

func NewService(txm database.TxManager, repo Repository, seq sequence.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("federativeunit.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("federativeunit.service")
	}
	return &service{txm: txm, repo: repo, seq: seq, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateFederativeUnitRequest) (FederativeUnitResponse, error) {
	var created FederativeUnit

	err := s.txm.Do(ctx, func(tx *gorm.DB) error {
		id, err := s.seq.WithTx(tx).NextID(ctx, "federative_unit")
		if err != nil {
			return err
		}

		created = FederativeUnit{
			ID:           id,
			Abbreviation: strings.ToUpper(req.Abbreviation),
			Name:         req.Name,
			Active:       true,
		}
		return s.repo.WithTx(tx).Create(ctx, &created)
	})
	if err != nil {
		s.logger.Error("create federative unit failed", zap.String("abbreviation", req.Abbreviation), zap.Error(err))
		return FederativeUnitResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create federative unit success", zap.Int64("federative_unit_id", created.ID))
	return mapToResponse(created), nil
}

func (s *service) GetAll(ctx context.Context) ([]FederativeUnitResponse, error) {
	units, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(units), nil
}

func (s *service) GetByID(ctx context.Context, id int64) (FederativeUnitResponse, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return FederativeUnitResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*u), nil
}

func (s *service) Update(ctx context.Context, id int64, req UpdateFederativeUnitRequest) (FederativeUnitResponse, error) {
	var updated FederativeUnit

	err := s.txm.Do(ctx, func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		u, err := qtx.FindByID(ctx, id)
		if err != nil {
			return err
		}

		if req.Abbreviation != nil {
			u.Abbreviation = strings.ToUpper(*req.Abbreviation)
		}
		if req.Name != nil {
			u.Name = *req.Name
		}
		if req.Active != nil {
			u.Active = *req.Active
		}

		if err := qtx.Update(ctx, u); err != nil {
			return err
		}
		updated = *u
		return nil
	})
	if err != nil {
		return FederativeUnitResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(updated), nil
}

func (s *service) Deactivate(ctx context.Context, id int64) error {
	err := s.txm.Do(ctx, func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		u, err := qtx.FindByID(ctx, id)
		if err != nil {
			return err
		}
		u.Active = false
		return qtx.Update(ctx, u)
	})
	return mapRepositoryError(err)
}
