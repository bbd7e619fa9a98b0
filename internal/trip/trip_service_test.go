package trip_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-viagens/internal/costtype"
	"go-viagens/internal/employee"
	"go-viagens/internal/federativeunit"
	"go-viagens/internal/messaging/kafka"
	"go-viagens/internal/municipality"
	"go-viagens/internal/rbac"
	"go-viagens/internal/shared/sequence"
	"go-viagens/internal/trip"
	triperrors "go-viagens/internal/trip/errors"
	"go-viagens/internal/tripstatus"

	"github.com/go-redis/redismock/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeTxManager struct{}

func (f *fakeTxManager) Do(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

type fakeSequenceRepo struct {
	next int64
}

func (f *fakeSequenceRepo) WithTx(tx *gorm.DB) sequence.Repository { return f }

func (f *fakeSequenceRepo) NextID(ctx context.Context, entityType string) (int64, error) {
	f.next++
	return f.next, nil
}

func (f *fakeSequenceRepo) EnsureAtLeast(ctx context.Context, entityType string, value int64) error {
	return nil
}

type fakeTripRepository struct {
	trips        map[int64]trip.Trip
	destinations map[int64]trip.Destination
	costs        map[int64]trip.Cost

	findFirstByEmployeeAndStatusFn func(ctx context.Context, employeeID, statusID int64) (*trip.Trip, error)
	updateTripFn                   func(ctx context.Context, t *trip.Trip) error
}

func newFakeTripRepository() *fakeTripRepository {
	return &fakeTripRepository{
		trips:        map[int64]trip.Trip{},
		destinations: map[int64]trip.Destination{},
		costs:        map[int64]trip.Cost{},
	}
}

func (f *fakeTripRepository) WithTx(tx *gorm.DB) trip.Repository { return f }

func (f *fakeTripRepository) CreateTrip(ctx context.Context, t *trip.Trip) error {
	f.trips[t.ID] = *t
	return nil
}

func (f *fakeTripRepository) FindTripByID(ctx context.Context, id int64) (*trip.Trip, error) {
	t, ok := f.trips[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &t, nil
}

func (f *fakeTripRepository) FindTripsByEmployee(ctx context.Context, employeeID int64) ([]trip.Trip, error) {
	var out []trip.Trip
	for _, t := range f.trips {
		if t.EmployeeID == employeeID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTripRepository) FindFirstByEmployeeAndStatus(ctx context.Context, employeeID, statusID int64) (*trip.Trip, error) {
	if f.findFirstByEmployeeAndStatusFn != nil {
		return f.findFirstByEmployeeAndStatusFn(ctx, employeeID, statusID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeTripRepository) UpdateTrip(ctx context.Context, t *trip.Trip) error {
	if f.updateTripFn != nil {
		return f.updateTripFn(ctx, t)
	}
	f.trips[t.ID] = *t
	return nil
}

func (f *fakeTripRepository) DeleteTrip(ctx context.Context, id int64) (int64, error) {
	if _, ok := f.trips[id]; !ok {
		return 0, nil
	}
	delete(f.trips, id)
	return 1, nil
}

func (f *fakeTripRepository) CreateDestination(ctx context.Context, d *trip.Destination) error {
	f.destinations[d.ID] = *d
	return nil
}

func (f *fakeTripRepository) FindDestinationsByTrip(ctx context.Context, tripID int64) ([]trip.Destination, error) {
	var out []trip.Destination
	for _, d := range f.destinations {
		if d.TripID == tripID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeTripRepository) UpdateDestination(ctx context.Context, d *trip.Destination) error {
	f.destinations[d.ID] = *d
	return nil
}

func (f *fakeTripRepository) DeleteDestination(ctx context.Context, id int64) error {
	delete(f.destinations, id)
	return nil
}

func (f *fakeTripRepository) DeleteDestinationsByTrip(ctx context.Context, tripID int64) error {
	for id, d := range f.destinations {
		if d.TripID == tripID {
			delete(f.destinations, id)
		}
	}
	return nil
}

func (f *fakeTripRepository) CreateCost(ctx context.Context, c *trip.Cost) error {
	f.costs[c.ID] = *c
	return nil
}

func (f *fakeTripRepository) FindCostsByDestination(ctx context.Context, destinationID int64) ([]trip.Cost, error) {
	var out []trip.Cost
	for _, c := range f.costs {
		if c.DestinationID == destinationID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeTripRepository) UpdateCost(ctx context.Context, c *trip.Cost) error {
	f.costs[c.ID] = *c
	return nil
}

func (f *fakeTripRepository) DeleteCost(ctx context.Context, id int64) error {
	delete(f.costs, id)
	return nil
}

func (f *fakeTripRepository) DeleteCostsByDestination(ctx context.Context, destinationID int64) error {
	for id, c := range f.costs {
		if c.DestinationID == destinationID {
			delete(f.costs, id)
		}
	}
	return nil
}

type fakeOutboxRepository struct {
	created []kafka.OutboxEvent
}

func (f *fakeOutboxRepository) WithTx(tx *gorm.DB) kafka.OutboxRepository { return f }

func (f *fakeOutboxRepository) Create(ctx context.Context, event kafka.OutboxEvent) error {
	f.created = append(f.created, event)
	return nil
}

func (f *fakeOutboxRepository) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutboxRepository) MarkSent(ctx context.Context, id string) error { return nil }

func (f *fakeOutboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	return nil
}

type fakeRBACService struct {
	isAdminFn func(ctx context.Context, employeeID int64) (bool, error)
}

func (f *fakeRBACService) Enforce(ctx context.Context, employeeID int64, resource, action string) error {
	return nil
}

func (f *fakeRBACService) IsAdmin(ctx context.Context, employeeID int64) (bool, error) {
	if f.isAdminFn != nil {
		return f.isAdminFn(ctx, employeeID)
	}
	return false, nil
}

type fakeEmployeeRepository struct {
	employees map[int64]employee.Employee
}

func (f *fakeEmployeeRepository) WithTx(tx *gorm.DB) employee.Repository { return f }

func (f *fakeEmployeeRepository) Create(ctx context.Context, e *employee.Employee) error { return nil }

func (f *fakeEmployeeRepository) FindAll(ctx context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepository) FindByID(ctx context.Context, id int64) (*employee.Employee, error) {
	e, ok := f.employees[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &e, nil
}

func (f *fakeEmployeeRepository) FindByEmail(ctx context.Context, email string) (*employee.Employee, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEmployeeRepository) Update(ctx context.Context, e *employee.Employee) error { return nil }

type fakeMunicipalityRepository struct {
	municipalities map[int64]municipality.Municipality

	findByIDFn func(ctx context.Context, id int64) (*municipality.Municipality, error)
}

func (f *fakeMunicipalityRepository) WithTx(tx *gorm.DB) municipality.Repository { return f }

func (f *fakeMunicipalityRepository) Create(ctx context.Context, m *municipality.Municipality) error {
	return nil
}

func (f *fakeMunicipalityRepository) FindAll(ctx context.Context) ([]municipality.Municipality, error) {
	return nil, nil
}

func (f *fakeMunicipalityRepository) FindByID(ctx context.Context, id int64) (*municipality.Municipality, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	m, ok := f.municipalities[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &m, nil
}

func (f *fakeMunicipalityRepository) FindByFederativeUnit(ctx context.Context, federativeUnitID int64) ([]municipality.Municipality, error) {
	return nil, nil
}

func (f *fakeMunicipalityRepository) Update(ctx context.Context, m *municipality.Municipality) error {
	return nil
}

type fakeUnitRepository struct {
	units map[int64]federativeunit.FederativeUnit
}

func (f *fakeUnitRepository) WithTx(tx *gorm.DB) federativeunit.Repository { return f }

func (f *fakeUnitRepository) Create(ctx context.Context, u *federativeunit.FederativeUnit) error {
	return nil
}

func (f *fakeUnitRepository) FindAll(ctx context.Context) ([]federativeunit.FederativeUnit, error) {
	return nil, nil
}

func (f *fakeUnitRepository) FindByID(ctx context.Context, id int64) (*federativeunit.FederativeUnit, error) {
	u, ok := f.units[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &u, nil
}

func (f *fakeUnitRepository) FindByAbbreviation(ctx context.Context, abbreviation string) (*federativeunit.FederativeUnit, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUnitRepository) Update(ctx context.Context, u *federativeunit.FederativeUnit) error {
	return nil
}

type fakeStatusRepository struct{}

func (f *fakeStatusRepository) FindByID(ctx context.Context, id int64) (*tripstatus.TripStatus, error) {
	for _, s := range tripstatus.SeedRows() {
		if s.ID == id {
			return &s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeStatusRepository) FindAll(ctx context.Context) ([]tripstatus.TripStatus, error) {
	return tripstatus.SeedRows(), nil
}

func (f *fakeStatusRepository) Count(ctx context.Context) (int64, error) { return 3, nil }

func (f *fakeStatusRepository) CreateAll(ctx context.Context, rows []tripstatus.TripStatus) error {
	return nil
}

type fakeCostTypeRepository struct{}

func (f *fakeCostTypeRepository) FindByID(ctx context.Context, id int64) (*costtype.CostType, error) {
	for _, ct := range costtype.SeedRows() {
		if ct.ID == id {
			return &ct, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCostTypeRepository) FindAll(ctx context.Context) ([]costtype.CostType, error) {
	return costtype.SeedRows(), nil
}

func (f *fakeCostTypeRepository) Count(ctx context.Context) (int64, error) { return 4, nil }

func (f *fakeCostTypeRepository) CreateAll(ctx context.Context, rows []costtype.CostType) error {
	return nil
}

type tripServiceFixture struct {
	repo           *fakeTripRepository
	outbox         *fakeOutboxRepository
	rbac           *fakeRBACService
	municipalities *fakeMunicipalityRepository
	service        trip.Service
}

func newTripServiceFixture(t *testing.T) *tripServiceFixture {
	t.Helper()

	repo := newFakeTripRepository()
	outbox := &fakeOutboxRepository{}
	rbacService := &fakeRBACService{}
	rdb, _ := redismock.NewClientMock()

	unitRepo := &fakeUnitRepository{units: map[int64]federativeunit.FederativeUnit{
		35: {ID: 35, Abbreviation: "SP", Name: "São Paulo", Active: true},
		31: {ID: 31, Abbreviation: "MG", Name: "Minas Gerais", Active: true},
	}}
	municipalityRepo := &fakeMunicipalityRepository{municipalities: map[int64]municipality.Municipality{
		100: {ID: 100, Name: "Campinas", FederativeUnitID: 35, Active: true},
		200: {ID: 200, Name: "Uberlândia", FederativeUnitID: 31, Active: true},
	}}
	employeeRepo := &fakeEmployeeRepository{employees: map[int64]employee.Employee{
		7: {ID: 7, Name: "Maria Souza", Email: "maria@example.com", RoleID: 2, Active: true},
	}}

	assembler := trip.NewAssembler(
		repo, employeeRepo, municipalityRepo, unitRepo,
		&fakeStatusRepository{}, &fakeCostTypeRepository{},
	)

	service := trip.NewService(
		&fakeTxManager{}, repo, outbox, &fakeSequenceRepo{}, rbacService, rdb, assembler,
	)

	return &tripServiceFixture{
		repo:           repo,
		outbox:         outbox,
		rbac:           rbacService,
		municipalities: municipalityRepo,
		service:        service,
	}
}

func validCreateRequest() trip.CreateTripRequest {
	return trip.CreateTripRequest{
		EmployeeID:              7,
		DepartureMunicipalityID: 100,
		StartDate:               "2024-03-01",
		EndDate:                 "2024-03-05",
		Destinations: []trip.CreateDestinationRequest{
			{
				MunicipalityID: 200,
				ArrivalDate:    "2024-03-01",
				Costs: []trip.CreateCostRequest{
					{CostTypeID: 1, Amount: decimal.RequireFromString("350.50")},
				},
			},
		},
	}
}

func TestCreateTripSuccess(t *testing.T) {
	fx := newTripServiceFixture(t)

	resp, err := fx.service.Create(context.Background(), validCreateRequest())

	assert.NoError(t, err)
	assert.NotZero(t, resp.ID)
	assert.Equal(t, tripstatus.Pending, resp.StatusID)
	assert.Len(t, resp.Destinations, 1)
	assert.Equal(t, int64(31), resp.Destinations[0].FederativeUnitID)
	assert.Len(t, resp.Destinations[0].Costs, 1)

	assert.Len(t, fx.outbox.created, 1)
	assert.Equal(t, "trip.created", fx.outbox.created[0].EventType)
	assert.Equal(t, "viagem.status-changed", fx.outbox.created[0].Topic)
}

func TestCreateTripWithoutDestinations(t *testing.T) {
	fx := newTripServiceFixture(t)

	req := validCreateRequest()
	req.Destinations = nil

	resp, err := fx.service.Create(context.Background(), req)

	assert.NoError(t, err)
	assert.NotZero(t, resp.ID)
	assert.NotNil(t, resp.Destinations)
	assert.Empty(t, resp.Destinations)
	assert.Len(t, fx.repo.trips, 1)
	assert.Empty(t, fx.repo.destinations)
}

func TestCreateTripRejectsNegativeCostAmount(t *testing.T) {
	fx := newTripServiceFixture(t)

	req := validCreateRequest()
	req.Destinations[0].Costs[0].Amount = decimal.RequireFromString("-50.00")

	_, err := fx.service.Create(context.Background(), req)

	assert.ErrorIs(t, err, triperrors.ErrNegativeCostAmount)
	assert.Empty(t, fx.repo.trips)
	assert.Empty(t, fx.repo.costs)
}

func TestCreateTripDegradesWhenUnitLookupFails(t *testing.T) {
	fx := newTripServiceFixture(t)
	fx.municipalities.findByIDFn = func(ctx context.Context, id int64) (*municipality.Municipality, error) {
		return nil, errors.New("connection refused")
	}

	resp, err := fx.service.Create(context.Background(), validCreateRequest())

	assert.NoError(t, err)
	assert.Len(t, fx.repo.trips, 1)
	assert.Len(t, resp.Destinations, 1)
	assert.Zero(t, resp.Destinations[0].FederativeUnitID)
}

func TestCreateTripBlockedWithinWeekOfApprovedTrip(t *testing.T) {
	fx := newTripServiceFixture(t)

	approvedEnd, _ := time.Parse("2006-01-02", "2024-01-10")
	fx.repo.findFirstByEmployeeAndStatusFn = func(ctx context.Context, employeeID, statusID int64) (*trip.Trip, error) {
		assert.Equal(t, tripstatus.Approved, statusID)
		return &trip.Trip{ID: 1, EmployeeID: employeeID, StatusID: statusID, EndDate: approvedEnd}, nil
	}

	req := validCreateRequest()
	req.StartDate = "2024-01-15"
	req.EndDate = "2024-01-20"

	_, err := fx.service.Create(context.Background(), req)
	assert.ErrorIs(t, err, triperrors.ErrTripTooSoon)

	// Exactly seven days after the approved end still blocks.
	req.StartDate = "2024-01-17"
	_, err = fx.service.Create(context.Background(), req)
	assert.ErrorIs(t, err, triperrors.ErrTripTooSoon)

	// One day past the window is allowed.
	req.StartDate = "2024-01-18"
	_, err = fx.service.Create(context.Background(), req)
	assert.NoError(t, err)
}

func TestCreateTripPendingTripDoesNotBlock(t *testing.T) {
	fx := newTripServiceFixture(t)

	// No approved trip exists even though a pending one does; the lookup is
	// filtered by status so the fake returns not-found.
	_, err := fx.service.Create(context.Background(), validCreateRequest())
	assert.NoError(t, err)
}

func TestCreateTripRejectsBadDates(t *testing.T) {
	fx := newTripServiceFixture(t)

	req := validCreateRequest()
	req.StartDate = "15/01/2024"
	_, err := fx.service.Create(context.Background(), req)
	assert.ErrorIs(t, err, triperrors.ErrInvalidDateFormat)

	req = validCreateRequest()
	req.StartDate = "2024-03-10"
	req.EndDate = "2024-03-05"
	_, err = fx.service.Create(context.Background(), req)
	assert.ErrorIs(t, err, triperrors.ErrInvalidDateRange)
}

func TestGetByIDNotFound(t *testing.T) {
	fx := newTripServiceFixture(t)

	_, err := fx.service.GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, triperrors.ErrTripNotFound)
}

func TestGetByIDAssemblesView(t *testing.T) {
	fx := newTripServiceFixture(t)

	created, err := fx.service.Create(context.Background(), validCreateRequest())
	assert.NoError(t, err)

	view, err := fx.service.GetByID(context.Background(), created.ID)
	assert.NoError(t, err)
	assert.Equal(t, created.ID, *view.ID)
	assert.Equal(t, "Maria Souza", view.User.Name)
	assert.Equal(t, "Campinas", view.DepartureMunicipalityName)
	assert.Equal(t, "São Paulo", view.DepartureFederativeUnit)
	assert.Equal(t, "Pendente", view.StatusName)
	assert.Len(t, view.Destinations, 1)
	assert.Equal(t, "Uberlândia", view.Destinations[0].Municipality.Name)
	assert.Equal(t, "Passagens", view.Destinations[0].Costs[0].CostTypeName)
}

func TestUpdateReconcilesDestinationsAndCosts(t *testing.T) {
	fx := newTripServiceFixture(t)

	created, err := fx.service.Create(context.Background(), trip.CreateTripRequest{
		EmployeeID:              7,
		DepartureMunicipalityID: 100,
		StartDate:               "2024-03-01",
		EndDate:                 "2024-03-10",
		Destinations: []trip.CreateDestinationRequest{
			{
				MunicipalityID: 200,
				ArrivalDate:    "2024-03-01",
				Costs: []trip.CreateCostRequest{
					{CostTypeID: 1, Amount: decimal.RequireFromString("100.00")},
					{CostTypeID: 2, Amount: decimal.RequireFromString("50.00")},
				},
			},
			{MunicipalityID: 100, ArrivalDate: "2024-03-05"},
		},
	})
	assert.NoError(t, err)
	assert.Len(t, fx.repo.destinations, 2)
	assert.Len(t, fx.repo.costs, 2)

	keptDest := created.Destinations[0].ID
	keptCost := created.Destinations[0].Costs[0].ID

	newAmount := decimal.RequireFromString("120.00")
	update := []trip.UpdateDestinationRequest{
		{
			ID:             &keptDest,
			MunicipalityID: 200,
			ArrivalDate:    "2024-03-02",
			Costs: []trip.UpdateCostRequest{
				// Kept and updated; the second cost is omitted and must go.
				{ID: &keptCost, CostTypeID: 1, Amount: newAmount},
				// New cost without an id.
				{CostTypeID: 3, Amount: decimal.RequireFromString("80.00")},
			},
		},
		// The second destination is omitted and must be removed.
	}

	_, err = fx.service.Update(context.Background(), created.ID, trip.UpdateTripRequest{
		Destinations: &update,
	})
	assert.NoError(t, err)

	assert.Len(t, fx.repo.destinations, 1)
	assert.Len(t, fx.repo.costs, 2)

	kept := fx.repo.destinations[keptDest]
	assert.Equal(t, "2024-03-02", kept.ArrivalDate.Format("2006-01-02"))
	assert.True(t, fx.repo.costs[keptCost].Amount.Equal(newAmount))
}

func TestUpdateWithoutDestinationsLeavesChildrenAlone(t *testing.T) {
	fx := newTripServiceFixture(t)

	created, err := fx.service.Create(context.Background(), validCreateRequest())
	assert.NoError(t, err)

	newEnd := "2024-03-08"
	_, err = fx.service.Update(context.Background(), created.ID, trip.UpdateTripRequest{
		EndDate: &newEnd,
	})
	assert.NoError(t, err)

	assert.Len(t, fx.repo.destinations, 1)
	assert.Len(t, fx.repo.costs, 1)
}

func TestUpdateRejectsNegativeCostAmount(t *testing.T) {
	fx := newTripServiceFixture(t)

	created, err := fx.service.Create(context.Background(), validCreateRequest())
	assert.NoError(t, err)

	destID := created.Destinations[0].ID
	costID := created.Destinations[0].Costs[0].ID
	update := []trip.UpdateDestinationRequest{
		{
			ID:             &destID,
			MunicipalityID: 200,
			ArrivalDate:    "2024-03-01",
			Costs: []trip.UpdateCostRequest{
				{ID: &costID, CostTypeID: 1, Amount: decimal.RequireFromString("-10.00")},
			},
		},
	}

	_, err = fx.service.Update(context.Background(), created.ID, trip.UpdateTripRequest{
		Destinations: &update,
	})

	assert.ErrorIs(t, err, triperrors.ErrNegativeCostAmount)
	assert.True(t, fx.repo.costs[costID].Amount.Equal(decimal.RequireFromString("350.50")))
}

func TestUpdateSkipsSaveWhenNothingChanges(t *testing.T) {
	fx := newTripServiceFixture(t)

	created, err := fx.service.Create(context.Background(), validCreateRequest())
	assert.NoError(t, err)

	var saves int
	fx.repo.updateTripFn = func(ctx context.Context, tr *trip.Trip) error {
		saves++
		fx.repo.trips[tr.ID] = *tr
		return nil
	}

	sameEnd := "2024-03-05"
	sameEmployee := int64(7)
	_, err = fx.service.Update(context.Background(), created.ID, trip.UpdateTripRequest{
		EmployeeID: &sameEmployee,
		EndDate:    &sameEnd,
	})
	assert.NoError(t, err)
	assert.Zero(t, saves)

	newEnd := "2024-03-08"
	_, err = fx.service.Update(context.Background(), created.ID, trip.UpdateTripRequest{
		EndDate: &newEnd,
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, saves)
}

func TestDeleteCascadesAndChecksOwnership(t *testing.T) {
	fx := newTripServiceFixture(t)

	created, err := fx.service.Create(context.Background(), validCreateRequest())
	assert.NoError(t, err)

	// A stranger without the admin role cannot delete.
	err = fx.service.Delete(context.Background(), created.ID, 99)
	assert.ErrorIs(t, err, rbac.ErrNotAllowed)

	// The owner can; children go with the trip.
	err = fx.service.Delete(context.Background(), created.ID, 7)
	assert.NoError(t, err)
	assert.Empty(t, fx.repo.trips)
	assert.Empty(t, fx.repo.destinations)
	assert.Empty(t, fx.repo.costs)
}

func TestDeleteAllowedForAdmin(t *testing.T) {
	fx := newTripServiceFixture(t)
	fx.rbac.isAdminFn = func(ctx context.Context, employeeID int64) (bool, error) { return true, nil }

	created, err := fx.service.Create(context.Background(), validCreateRequest())
	assert.NoError(t, err)

	err = fx.service.Delete(context.Background(), created.ID, 42)
	assert.NoError(t, err)
	assert.Empty(t, fx.repo.trips)
}

func TestDeleteMissingTrip(t *testing.T) {
	fx := newTripServiceFixture(t)

	err := fx.service.Delete(context.Background(), 12345, 7)
	assert.ErrorIs(t, err, triperrors.ErrTripNotFound)
}

func TestApproveAndRejectTransitionStatusAndEmitEvents(t *testing.T) {
	fx := newTripServiceFixture(t)

	created, err := fx.service.Create(context.Background(), validCreateRequest())
	assert.NoError(t, err)

	err = fx.service.Approve(context.Background(), created.ID)
	assert.NoError(t, err)
	assert.Equal(t, tripstatus.Approved, fx.repo.trips[created.ID].StatusID)

	err = fx.service.Reject(context.Background(), created.ID)
	assert.NoError(t, err)
	assert.Equal(t, tripstatus.Rejected, fx.repo.trips[created.ID].StatusID)

	// created + approved + rejected
	assert.Len(t, fx.outbox.created, 3)
	assert.Equal(t, "trip.approved", fx.outbox.created[1].EventType)
	assert.Equal(t, "trip.rejected", fx.outbox.created[2].EventType)
}

func TestApproveTwiceKeepsApprovedStatus(t *testing.T) {
	fx := newTripServiceFixture(t)

	created, err := fx.service.Create(context.Background(), validCreateRequest())
	assert.NoError(t, err)

	assert.NoError(t, fx.service.Approve(context.Background(), created.ID))
	assert.NoError(t, fx.service.Approve(context.Background(), created.ID))
	assert.Equal(t, tripstatus.Approved, fx.repo.trips[created.ID].StatusID)
}

func TestExportVoucherRendersPDF(t *testing.T) {
	fx := newTripServiceFixture(t)

	created, err := fx.service.Create(context.Background(), validCreateRequest())
	assert.NoError(t, err)

	pdf, err := fx.service.ExportVoucher(context.Background(), created.ID)
	assert.NoError(t, err)
	assert.True(t, len(pdf) > 0)
	assert.Equal(t, "%PDF-1.4", string(pdf[:8]))
}

func TestExportVoucherMissingTrip(t *testing.T) {
	fx := newTripServiceFixture(t)

	_, err := fx.service.ExportVoucher(context.Background(), 404)
	assert.ErrorIs(t, err, triperrors.ErrTripNotFound)
}
