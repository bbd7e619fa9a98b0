package municipality

import (
	"context"
	"errors"

	"go-viagens/internal/federativeunit"
	federativeuniterrors "go-viagens/internal/federativeunit/errors"
	municipalityerrors "go-viagens/internal/municipality/errors"
	"go-viagens/internal/shared/database"
	"go-viagens/internal/shared/sequence"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=municipality_service.go -destination=mock/municipality_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateMunicipalityRequest) (MunicipalityResponse, error)
	GetAll(ctx context.Context) ([]MunicipalityResponse, error)
	GetByID(ctx context.Context, id int64) (MunicipalityResponse, error)
	GetByFederativeUnit(ctx context.Context, federativeUnitID int64) ([]MunicipalityResponse, error)
	Update(ctx context.Context, id int64, req UpdateMunicipalityRequest) (MunicipalityResponse, error)
	Deactivate(ctx context.Context, id int64) error
}

type service struct {
	txm      database.TxManager
	repo     Repository
	unitRepo federativeunit.Repository
	verifier Verifier
	seq      sequence.Repository
	logger   *zap.Logger
}

func NewService(
	txm database.TxManager,
	repo Repository,
	unitRepo federativeunit.Repository,
	verifier Verifier,
	seq sequence.Repository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("municipality.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("municipality.service")
	}
	return &service{txm: txm, repo: repo, unitRepo: unitRepo, verifier: verifier, seq: seq, logger: l}
}

// verifyMembership asks the external registry whether the name belongs to
// the unit. A registry outage is surfaced as 503 rather than silently
// accepting unverified data.
func (s *service) verifyMembership(ctx context.Context, name string, unitID int64) error {
	unit, err := s.unitRepo.FindByID(ctx, unitID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return federativeuniterrors.ErrFederativeUnitNotFound
		}
		return err
	}

	ok, err := s.verifier.BelongsToState(ctx, name, unit.Abbreviation)
	if err != nil {
		s.logger.Warn("municipality verification unavailable",
			zap.String("name", name),
			zap.String("uf", unit.Abbreviation),
			zap.Error(err),
		)
		return municipalityerrors.ErrVerifierUnavailable
	}
	if !ok {
		return municipalityerrors.ErrMunicipalityNotInState
	}
	return nil
}

func (s *service) Create(ctx context.Context, req CreateMunicipalityRequest) (MunicipalityResponse, error) {
	if err := s.verifyMembership(ctx, req.Name, req.FederativeUnitID); err != nil {
		return MunicipalityResponse{}, err
	}

	var created Municipality

	err := s.txm.Do(ctx, func(tx *gorm.DB) error {
		id, err := s.seq.WithTx(tx).NextID(ctx, "municipality")
		if err != nil {
			return err
		}

		created = Municipality{
			ID:               id,
			Name:             req.Name,
			FederativeUnitID: req.FederativeUnitID,
			Active:           true,
		}
		return s.repo.WithTx(tx).Create(ctx, &created)
	})
	if err != nil {
		s.logger.Error("create municipality failed", zap.String("name", req.Name), zap.Error(err))
		return MunicipalityResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create municipality success", zap.Int64("municipality_id", created.ID))
	return mapToResponse(created), nil
}

func (s *service) GetAll(ctx context.Context) ([]MunicipalityResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) GetByID(ctx context.Context, id int64) (MunicipalityResponse, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return MunicipalityResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*m), nil
}

func (s *service) GetByFederativeUnit(ctx context.Context, federativeUnitID int64) ([]MunicipalityResponse, error) {
	rows, err := s.repo.FindByFederativeUnit(ctx, federativeUnitID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) Update(ctx context.Context, id int64, req UpdateMunicipalityRequest) (MunicipalityResponse, error) {
	var updated Municipality

	err := s.txm.Do(ctx, func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		m, err := qtx.FindByID(ctx, id)
		if err != nil {
			return err
		}

		if req.Name != nil {
			m.Name = *req.Name
		}
		if req.FederativeUnitID != nil {
			m.FederativeUnitID = *req.FederativeUnitID
		}
		if req.Active != nil {
			m.Active = *req.Active
		}

		if req.Name != nil || req.FederativeUnitID != nil {
			if err := s.verifyMembership(ctx, m.Name, m.FederativeUnitID); err != nil {
				return err
			}
		}

		if err := qtx.Update(ctx, m); err != nil {
			return err
		}
		updated = *m
		return nil
	})
	if err != nil {
		return MunicipalityResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(updated), nil
}

func (s *service) Deactivate(ctx context.Context, id int64) error {
	err := s.txm.Do(ctx, func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		m, err := qtx.FindByID(ctx, id)
		if err != nil {
			return err
		}
		m.Active = false
		return qtx.Update(ctx, m)
	})
	return mapRepositoryError(err)
}
