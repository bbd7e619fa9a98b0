package trip

import (
	"context"
	"errors"

	"go-viagens/internal/costtype"
	"go-viagens/internal/employee"
	"go-viagens/internal/federativeunit"
	"go-viagens/internal/municipality"
	"go-viagens/internal/tripstatus"

	"gorm.io/gorm"
)

// Legacy fallback labels rendered when a referenced row is missing.
const (
	travelerNotFound             = "Empregado não encontrado"
	costTypeUnknown              = "Desconhecido"
	federativeUnitNotFound       = "UF não encontrada"
	departureMunicipalityMissing = "Município de saída não encontrado"
	tripStatusNotFound           = "Status da viagem não encontrado"
	destinationMunicipalityGone  = "Município de destino não encontrado"
	departureUnitNotFound        = "UF de saída não encontrada"
)

// Assembler denormalizes a trip row into the legacy read views. Missing
// references never fail a read; they surface as the fallback labels above.
type Assembler struct {
	tripRepo         Repository
	employeeRepo     employee.Repository
	municipalityRepo municipality.Repository
	unitRepo         federativeunit.Repository
	statusRepo       tripstatus.Repository
	costTypeRepo     costtype.Repository
}

func NewAssembler(
	tripRepo Repository,
	employeeRepo employee.Repository,
	municipalityRepo municipality.Repository,
	unitRepo federativeunit.Repository,
	statusRepo tripstatus.Repository,
	costTypeRepo costtype.Repository,
) *Assembler {
	return &Assembler{
		tripRepo:         tripRepo,
		employeeRepo:     employeeRepo,
		municipalityRepo: municipalityRepo,
		unitRepo:         unitRepo,
		statusRepo:       statusRepo,
		costTypeRepo:     costTypeRepo,
	}
}

func notFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

func (a *Assembler) userView(ctx context.Context, employeeID int64) (UserView, error) {
	e, err := a.employeeRepo.FindByID(ctx, employeeID)
	if err != nil {
		if notFound(err) {
			return UserView{ID: nil, Name: travelerNotFound}, nil
		}
		return UserView{}, err
	}
	return UserView{ID: &e.ID, Name: e.Name}, nil
}

// departure resolves the departure municipality and its federative unit.
func (a *Assembler) departure(ctx context.Context, municipalityID int64) (m *municipality.Municipality, u *federativeunit.FederativeUnit, err error) {
	m, err = a.municipalityRepo.FindByID(ctx, municipalityID)
	if err != nil {
		if notFound(err) {
			return nil, nil, nil
		}
		return nil, nil, err
	}

	u, err = a.unitRepo.FindByID(ctx, m.FederativeUnitID)
	if err != nil {
		if notFound(err) {
			return m, nil, nil
		}
		return nil, nil, err
	}
	return m, u, nil
}

func (a *Assembler) statusName(ctx context.Context, statusID int64) (string, error) {
	s, err := a.statusRepo.FindByID(ctx, statusID)
	if err != nil {
		if notFound(err) {
			return tripStatusNotFound, nil
		}
		return "", err
	}
	return s.Name, nil
}

func (a *Assembler) costViews(ctx context.Context, destinationID int64) ([]CostView, error) {
	costs, err := a.tripRepo.FindCostsByDestination(ctx, destinationID)
	if err != nil {
		return nil, err
	}

	views := make([]CostView, 0, len(costs))
	for _, c := range costs {
		view := CostView{ID: c.ID, CostTypeName: costTypeUnknown, Amount: c.Amount}

		ct, err := a.costTypeRepo.FindByID(ctx, c.CostTypeID)
		if err != nil && !notFound(err) {
			return nil, err
		}
		if err == nil {
			view.CostTypeID = &ct.ID
			view.CostTypeName = ct.Name
		}

		views = append(views, view)
	}
	return views, nil
}

func (a *Assembler) destinationViews(ctx context.Context, tripID int64) ([]DestinationView, error) {
	destinations, err := a.tripRepo.FindDestinationsByTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}

	views := make([]DestinationView, 0, len(destinations))
	for _, d := range destinations {
		view := DestinationView{
			ID:          d.ID,
			TripID:      d.TripID,
			ArrivalDate: formatISODate(d.ArrivalDate),
			Municipality: MunicipalityView{
				Name: destinationMunicipalityGone,
			},
			FederativeUnit: FederativeUnitView{
				Name: federativeUnitNotFound,
			},
		}

		m, u, err := a.departure(ctx, d.MunicipalityID)
		if err != nil {
			return nil, err
		}
		if m != nil {
			view.MunicipalityID = &m.ID
			view.Municipality = MunicipalityView{ID: &m.ID, Name: m.Name}
		}
		if u != nil {
			view.FederativeUnitID = &u.ID
			view.FederativeUnit = FederativeUnitView{ID: &u.ID, Name: u.Name}
		}

		costs, err := a.costViews(ctx, d.ID)
		if err != nil {
			return nil, err
		}
		view.Costs = costs

		views = append(views, view)
	}
	return views, nil
}

func (a *Assembler) tripView(ctx context.Context, t *Trip) (TripView, error) {
	user, err := a.userView(ctx, t.EmployeeID)
	if err != nil {
		return TripView{}, err
	}

	statusName, err := a.statusName(ctx, t.StatusID)
	if err != nil {
		return TripView{}, err
	}

	destinations, err := a.destinationViews(ctx, t.ID)
	if err != nil {
		return TripView{}, err
	}

	start := formatISODate(t.StartDate)
	end := formatISODate(t.EndDate)

	view := TripView{
		ID:                        &t.ID,
		EmployeeID:                &t.EmployeeID,
		StatusID:                  &t.StatusID,
		StatusName:                statusName,
		StartDate:                 &start,
		EndDate:                   &end,
		DepartureMunicipalityName: departureMunicipalityMissing,
		DepartureFederativeUnit:   departureUnitNotFound,
		User:                      user,
		Destinations:              destinations,
	}

	m, u, err := a.departure(ctx, t.DepartureMunicipalityID)
	if err != nil {
		return TripView{}, err
	}
	if m != nil {
		view.DepartureMunicipalityID = &m.ID
		view.DepartureMunicipalityName = m.Name
	}
	if u != nil {
		view.DepartureFederativeUnitID = &u.ID
		view.DepartureFederativeUnit = u.Name
	}

	return view, nil
}

func (a *Assembler) employeeTrips(ctx context.Context, employeeID int64, trips []Trip) (EmployeeTripsView, error) {
	if len(trips) == 0 {
		return EmployeeTripsView{Trips: []EmployeeTripSummary{}}, nil
	}

	user, err := a.userView(ctx, employeeID)
	if err != nil {
		return EmployeeTripsView{}, err
	}

	summaries := make([]EmployeeTripSummary, 0, len(trips))
	for _, t := range trips {
		statusName, err := a.statusName(ctx, t.StatusID)
		if err != nil {
			return EmployeeTripsView{}, err
		}

		destinations, err := a.destinationViews(ctx, t.ID)
		if err != nil {
			return EmployeeTripsView{}, err
		}

		summary := EmployeeTripSummary{
			ID:         t.ID,
			StatusName: statusName,
			StartDate:  formatISODate(t.StartDate),
			EndDate:    formatISODate(t.EndDate),
			Departure: DepartureView{
				MunicipalityName:   departureMunicipalityMissing,
				FederativeUnitName: federativeUnitNotFound,
			},
			Destinations: destinations,
		}

		m, u, err := a.departure(ctx, t.DepartureMunicipalityID)
		if err != nil {
			return EmployeeTripsView{}, err
		}
		if m != nil {
			summary.Departure.MunicipalityID = &m.ID
			summary.Departure.MunicipalityName = m.Name
		}
		if u != nil {
			summary.Departure.FederativeUnitID = &u.ID
			summary.Departure.FederativeUnitName = u.Name
		}

		summaries = append(summaries, summary)
	}

	return EmployeeTripsView{User: &user, Trips: summaries}, nil
}
