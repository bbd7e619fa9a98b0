package trip

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go-viagens/internal/events"
	"go-viagens/internal/messaging/kafka"
	"go-viagens/internal/rbac"
	"go-viagens/internal/shared/contextutil"
	"go-viagens/internal/shared/database"
	"go-viagens/internal/shared/sequence"
	"go-viagens/internal/tripstatus"
	triperrors "go-viagens/internal/trip/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	overlapWindow  = 7 * 24 * time.Hour
	voucherKeyFmt  = "voucher:pdf:%d"
	voucherCacheTTL = 10 * time.Minute
)

//go:generate mockgen -source=trip_service.go -destination=mock/trip_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateTripRequest) (CreateTripResponse, error)
	GetByID(ctx context.Context, id int64) (TripView, error)
	GetByEmployee(ctx context.Context, employeeID int64) (EmployeeTripsView, error)
	Update(ctx context.Context, id int64, req UpdateTripRequest) (TripView, error)
	Delete(ctx context.Context, id, actorID int64) error
	Approve(ctx context.Context, id int64) error
	Reject(ctx context.Context, id int64) error
	ExportVoucher(ctx context.Context, id int64) ([]byte, error)
}

type service struct {
	txm        database.TxManager
	repo       Repository
	outboxRepo kafka.OutboxRepository
	seq        sequence.Repository
	rbac       rbac.Service
	rdb        *redis.Client
	assembler  *Assembler
	sfGroup    singleflight.Group
	logger     *zap.Logger
}

func NewService(
	txm database.TxManager,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	seq sequence.Repository,
	rbacService rbac.Service,
	rdb *redis.Client,
	asm *Assembler,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("trip.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("trip.service")
	}
	return &service{
		txm:        txm,
		repo:       repo,
		outboxRepo: outboxRepo,
		seq:        seq,
		rbac:       rbacService,
		rdb:        rdb,
		assembler:  asm,
		logger:     l,
	}
}

// checkOverlap enforces the one-week cool-down after an approved trip. Only
// the Approved status blocks; pending or rejected trips never do.
func (s *service) checkOverlap(ctx context.Context, employeeID int64, newStart time.Time) error {
	approved, err := s.repo.FindFirstByEmployeeAndStatus(ctx, employeeID, tripstatus.Approved)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	if !newStart.After(approved.EndDate.Add(overlapWindow)) {
		return triperrors.ErrTripTooSoon
	}
	return nil
}

func (s *service) enqueueStatusEvent(ctx context.Context, tx *gorm.DB, eventType string, t *Trip) error {
	payload, err := json.Marshal(events.TripStatusChangedEvent{
		EventType:  eventType,
		TripID:     t.ID,
		EmployeeID: t.EmployeeID,
		StatusID:   t.StatusID,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	return s.outboxRepo.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "trip",
		AggregateID:   fmt.Sprintf("%d", t.ID),
		EventType:     eventType,
		Topic:         events.TripStatusChangedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func (s *service) invalidateVoucher(ctx context.Context, tripID int64) {
	if err := s.rdb.Del(ctx, fmt.Sprintf(voucherKeyFmt, tripID)).Err(); err != nil {
		s.logger.Warn("voucher cache invalidation failed", zap.Int64("trip_id", tripID), zap.Error(err))
	}
}

func (s *service) Create(ctx context.Context, req CreateTripRequest) (CreateTripResponse, error) {
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return CreateTripResponse{}, err
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return CreateTripResponse{}, err
	}
	if endDate.Before(startDate) {
		return CreateTripResponse{}, triperrors.ErrInvalidDateRange
	}
	for _, destReq := range req.Destinations {
		for _, costReq := range destReq.Costs {
			if costReq.Amount.IsNegative() {
				return CreateTripResponse{}, triperrors.ErrNegativeCostAmount
			}
		}
	}

	if err := s.checkOverlap(ctx, req.EmployeeID, startDate); err != nil {
		return CreateTripResponse{}, err
	}

	resp := CreateTripResponse{
		EmployeeID:              req.EmployeeID,
		DepartureMunicipalityID: req.DepartureMunicipalityID,
		StatusID:                tripstatus.Pending,
		StartDate:               formatISODate(startDate),
		EndDate:                 formatISODate(endDate),
		Destinations:            []CreatedDestination{},
	}

	err = s.txm.Do(ctx, func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)
		seqTx := s.seq.WithTx(tx)

		tripID, err := seqTx.NextID(ctx, "trip")
		if err != nil {
			return err
		}

		trip := Trip{
			ID:                      tripID,
			EmployeeID:              req.EmployeeID,
			DepartureMunicipalityID: req.DepartureMunicipalityID,
			StatusID:                tripstatus.Pending,
			StartDate:               startDate,
			EndDate:                 endDate,
		}
		if err := qtx.CreateTrip(ctx, &trip); err != nil {
			return err
		}
		resp.ID = tripID

		for _, destReq := range req.Destinations {
			arrival, err := parseDate(destReq.ArrivalDate)
			if err != nil {
				return err
			}

			destID, err := seqTx.NextID(ctx, "trip_destination")
			if err != nil {
				return err
			}

			dest := Destination{
				ID:             destID,
				TripID:         tripID,
				MunicipalityID: destReq.MunicipalityID,
				ArrivalDate:    arrival,
			}
			if err := qtx.CreateDestination(ctx, &dest); err != nil {
				return err
			}

			created := CreatedDestination{
				ID:             destID,
				MunicipalityID: destReq.MunicipalityID,
				ArrivalDate:    formatISODate(arrival),
				Costs:          []CreatedCost{},
			}

			for _, costReq := range destReq.Costs {
				costID, err := seqTx.NextID(ctx, "destination_cost")
				if err != nil {
					return err
				}

				cost := Cost{
					ID:            costID,
					DestinationID: destID,
					CostTypeID:    costReq.CostTypeID,
					Amount:        costReq.Amount,
				}
				if err := qtx.CreateCost(ctx, &cost); err != nil {
					return err
				}

				created.Costs = append(created.Costs, CreatedCost{
					ID:         costID,
					CostTypeID: costReq.CostTypeID,
					Amount:     costReq.Amount,
				})
			}

			resp.Destinations = append(resp.Destinations, created)
		}

		return s.enqueueStatusEvent(ctx, tx, events.TripCreatedEventType, &trip)
	})
	if err != nil {
		s.logger.Error("create trip failed", zap.Int64("employee_id", req.EmployeeID), zap.Error(err))
		return CreateTripResponse{}, err
	}

	// Resolve each destination's federative unit for the response body. The
	// trip is already committed at this point, so resolution failures degrade
	// to a zero unit id instead of failing the call.
	for i := range resp.Destinations {
		m, u, err := s.assembler.departure(ctx, resp.Destinations[i].MunicipalityID)
		if err != nil {
			s.logger.Warn("resolve destination unit failed",
				zap.Int64("municipality_id", resp.Destinations[i].MunicipalityID),
				zap.Error(err),
			)
			continue
		}
		if m != nil && u != nil {
			resp.Destinations[i].FederativeUnitID = u.ID
		}
	}

	s.logger.Info("create trip success",
		zap.Int64("trip_id", resp.ID),
		zap.Int64("employee_id", req.EmployeeID),
		zap.Int("destinations", len(resp.Destinations)),
	)
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (TripView, error) {
	t, err := s.repo.FindTripByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TripView{}, triperrors.ErrTripNotFound
		}
		return TripView{}, err
	}
	return s.assembler.tripView(ctx, t)
}

func (s *service) GetByEmployee(ctx context.Context, employeeID int64) (EmployeeTripsView, error) {
	trips, err := s.repo.FindTripsByEmployee(ctx, employeeID)
	if err != nil {
		return EmployeeTripsView{}, err
	}
	return s.assembler.employeeTrips(ctx, employeeID, trips)
}

func (s *service) Update(ctx context.Context, id int64, req UpdateTripRequest) (TripView, error) {
	err := s.txm.Do(ctx, func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		t, err := qtx.FindTripByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return triperrors.ErrTripNotFound
			}
			return err
		}

		changed := false
		if req.EmployeeID != nil && t.EmployeeID != *req.EmployeeID {
			t.EmployeeID = *req.EmployeeID
			changed = true
		}
		if req.DepartureMunicipalityID != nil && t.DepartureMunicipalityID != *req.DepartureMunicipalityID {
			t.DepartureMunicipalityID = *req.DepartureMunicipalityID
			changed = true
		}
		if req.StatusID != nil && t.StatusID != *req.StatusID {
			t.StatusID = *req.StatusID
			changed = true
		}
		if req.StartDate != nil {
			startDate, err := parseDate(*req.StartDate)
			if err != nil {
				return err
			}
			if !t.StartDate.Equal(startDate) {
				t.StartDate = startDate
				changed = true
			}
		}
		if req.EndDate != nil {
			endDate, err := parseDate(*req.EndDate)
			if err != nil {
				return err
			}
			if !t.EndDate.Equal(endDate) {
				t.EndDate = endDate
				changed = true
			}
		}
		if t.EndDate.Before(t.StartDate) {
			return triperrors.ErrInvalidDateRange
		}

		if changed {
			if err := qtx.UpdateTrip(ctx, t); err != nil {
				return err
			}
		}

		if req.Destinations == nil {
			return nil
		}
		return s.reconcileDestinations(ctx, tx, t.ID, *req.Destinations)
	})
	if err != nil {
		return TripView{}, err
	}

	s.invalidateVoucher(ctx, id)
	return s.GetByID(ctx, id)
}

// reconcileDestinations applies the submitted destination set: rows with a
// known id are updated, rows without one are created, and rows the client
// left out are removed together with their costs.
func (s *service) reconcileDestinations(ctx context.Context, tx *gorm.DB, tripID int64, reqs []UpdateDestinationRequest) error {
	qtx := s.repo.WithTx(tx)
	seqTx := s.seq.WithTx(tx)

	existing, err := qtx.FindDestinationsByTrip(ctx, tripID)
	if err != nil {
		return err
	}
	remaining := make(map[int64]Destination, len(existing))
	for _, d := range existing {
		remaining[d.ID] = d
	}

	for _, destReq := range reqs {
		arrival, err := parseDate(destReq.ArrivalDate)
		if err != nil {
			return err
		}

		var destID int64

		if destReq.ID != nil {
			if current, ok := remaining[*destReq.ID]; ok {
				current.MunicipalityID = destReq.MunicipalityID
				current.ArrivalDate = arrival
				if err := qtx.UpdateDestination(ctx, &current); err != nil {
					return err
				}
				delete(remaining, current.ID)
				destID = current.ID
			}
		}

		if destID == 0 {
			destID, err = seqTx.NextID(ctx, "trip_destination")
			if err != nil {
				return err
			}
			dest := Destination{
				ID:             destID,
				TripID:         tripID,
				MunicipalityID: destReq.MunicipalityID,
				ArrivalDate:    arrival,
			}
			if err := qtx.CreateDestination(ctx, &dest); err != nil {
				return err
			}
		}

		if err := s.reconcileCosts(ctx, tx, destID, destReq.Costs); err != nil {
			return err
		}
	}

	for _, leftover := range remaining {
		if err := qtx.DeleteCostsByDestination(ctx, leftover.ID); err != nil {
			return err
		}
		if err := qtx.DeleteDestination(ctx, leftover.ID); err != nil {
			return err
		}
	}

	return nil
}

func (s *service) reconcileCosts(ctx context.Context, tx *gorm.DB, destinationID int64, reqs []UpdateCostRequest) error {
	qtx := s.repo.WithTx(tx)
	seqTx := s.seq.WithTx(tx)

	existing, err := qtx.FindCostsByDestination(ctx, destinationID)
	if err != nil {
		return err
	}
	remaining := make(map[int64]Cost, len(existing))
	for _, c := range existing {
		remaining[c.ID] = c
	}

	for _, costReq := range reqs {
		if costReq.Amount.IsNegative() {
			return triperrors.ErrNegativeCostAmount
		}
		if costReq.ID != nil {
			if current, ok := remaining[*costReq.ID]; ok {
				current.CostTypeID = costReq.CostTypeID
				current.Amount = costReq.Amount
				if err := qtx.UpdateCost(ctx, &current); err != nil {
					return err
				}
				delete(remaining, current.ID)
				continue
			}
		}

		costID, err := seqTx.NextID(ctx, "destination_cost")
		if err != nil {
			return err
		}
		cost := Cost{
			ID:            costID,
			DestinationID: destinationID,
			CostTypeID:    costReq.CostTypeID,
			Amount:        costReq.Amount,
		}
		if err := qtx.CreateCost(ctx, &cost); err != nil {
			return err
		}
	}

	for _, leftover := range remaining {
		if err := qtx.DeleteCost(ctx, leftover.ID); err != nil {
			return err
		}
	}

	return nil
}

// Delete removes a trip with its destinations and costs. Allowed for the
// trip's owner and for administrators.
func (s *service) Delete(ctx context.Context, id, actorID int64) error {
	t, err := s.repo.FindTripByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return triperrors.ErrTripNotFound
		}
		return err
	}

	if t.EmployeeID != actorID {
		isAdmin, err := s.rbac.IsAdmin(ctx, actorID)
		if err != nil {
			return err
		}
		if !isAdmin {
			return rbac.ErrNotAllowed
		}
	}

	err = s.txm.Do(ctx, func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		destinations, err := qtx.FindDestinationsByTrip(ctx, id)
		if err != nil {
			return err
		}
		for _, d := range destinations {
			if err := qtx.DeleteCostsByDestination(ctx, d.ID); err != nil {
				return err
			}
		}
		if err := qtx.DeleteDestinationsByTrip(ctx, id); err != nil {
			return err
		}

		rows, err := qtx.DeleteTrip(ctx, id)
		if err != nil {
			return err
		}
		if rows == 0 {
			return triperrors.ErrTripNotFound
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.invalidateVoucher(ctx, id)
	s.logger.Info("delete trip success", zap.Int64("trip_id", id), zap.Int64("actor_id", actorID))
	return nil
}

func (s *service) resolve(ctx context.Context, id, statusID int64, eventType string) error {
	err := s.txm.Do(ctx, func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		t, err := qtx.FindTripByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return triperrors.ErrTripNotFound
			}
			return err
		}

		t.StatusID = statusID
		if err := qtx.UpdateTrip(ctx, t); err != nil {
			return err
		}

		return s.enqueueStatusEvent(ctx, tx, eventType, t)
	})
	if err != nil {
		return err
	}

	s.invalidateVoucher(ctx, id)
	s.logger.Info("trip status resolved", zap.Int64("trip_id", id), zap.Int64("status_id", statusID))
	return nil
}

func (s *service) Approve(ctx context.Context, id int64) error {
	return s.resolve(ctx, id, tripstatus.Approved, events.TripApprovedEventType)
}

func (s *service) Reject(ctx context.Context, id int64) error {
	return s.resolve(ctx, id, tripstatus.Rejected, events.TripRejectedEventType)
}

// ExportVoucher renders the PDF voucher, caching the bytes and collapsing
// concurrent renders of the same trip into one.
func (s *service) ExportVoucher(ctx context.Context, id int64) ([]byte, error) {
	key := fmt.Sprintf(voucherKeyFmt, id)

	cached, err := s.rdb.Get(ctx, key).Bytes()
	if err == nil && len(cached) > 0 {
		return cached, nil
	}
	if err != nil && !errors.Is(err, redis.Nil) {
		s.logger.Warn("voucher cache read failed", zap.Int64("trip_id", id), zap.Error(err))
	}

	result, err, _ := s.sfGroup.Do(key, func() (any, error) {
		view, err := s.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}

		pdf, err := buildVoucherPDF(view)
		if err != nil {
			s.logger.Error("voucher render failed", zap.Int64("trip_id", id), zap.Error(err))
			return nil, triperrors.ErrVoucherUnavailable
		}

		if err := s.rdb.Set(ctx, key, pdf, voucherCacheTTL).Err(); err != nil {
			s.logger.Warn("voucher cache write failed", zap.Int64("trip_id", id), zap.Error(err))
		}
		return pdf, nil
	})
	if err != nil {
		return nil, err
	}

	return result.([]byte), nil
}
