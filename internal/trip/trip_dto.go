package trip

import "github.com/shopspring/decimal"

// Requests keep the legacy Portuguese wire names so existing clients work
// unchanged.

type CreateCostRequest struct {
	CostTypeID int64           `json:"idTipoCusto" binding:"required,gt=0"`
	Amount     decimal.Decimal `json:"ValorCustoDestino" binding:"required"`
}

type CreateDestinationRequest struct {
	MunicipalityID int64               `json:"idMunicipioDestino" binding:"required,gt=0"`
	ArrivalDate    string              `json:"DataDestinoViagem" binding:"required"`
	Costs          []CreateCostRequest `json:"custos" binding:"omitempty,dive"`
}

type CreateTripRequest struct {
	EmployeeID              int64                      `json:"idEmpregado" binding:"required,gt=0"`
	DepartureMunicipalityID int64                      `json:"idMunicipioSaida" binding:"required,gt=0"`
	StartDate               string                     `json:"DataInicioViagem" binding:"required"`
	EndDate                 string                     `json:"DataTerminoViagem" binding:"required"`
	Destinations            []CreateDestinationRequest `json:"destinos" binding:"omitempty,dive"`
}

type UpdateCostRequest struct {
	ID         *int64          `json:"idCustoDestino"`
	CostTypeID int64           `json:"idTipoCusto" binding:"required,gt=0"`
	Amount     decimal.Decimal `json:"ValorCustoDestino" binding:"required"`
}

type UpdateDestinationRequest struct {
	ID             *int64              `json:"idDestinoViagem"`
	MunicipalityID int64               `json:"idMunicipioDestino" binding:"required,gt=0"`
	ArrivalDate    string              `json:"DataDestinoViagem" binding:"required"`
	Costs          []UpdateCostRequest `json:"custos" binding:"omitempty,dive"`
}

// UpdateTripRequest is a partial update. A nil Destinations slice leaves the
// children untouched; a present slice is reconciled by id, and rows omitted
// from it are deleted.
type UpdateTripRequest struct {
	EmployeeID              *int64                      `json:"idEmpregado" binding:"omitempty,gt=0"`
	DepartureMunicipalityID *int64                      `json:"idMunicipioSaida" binding:"omitempty,gt=0"`
	StatusID                *int64                      `json:"idStatusViagem" binding:"omitempty,gt=0"`
	StartDate               *string                     `json:"DataInicioViagem"`
	EndDate                 *string                     `json:"DataTerminoViagem"`
	Destinations            *[]UpdateDestinationRequest `json:"destinos" binding:"omitempty,dive"`
}

type CreatedCost struct {
	ID         int64           `json:"idCustoDestino"`
	CostTypeID int64           `json:"idTipoCusto"`
	Amount     decimal.Decimal `json:"valor"`
}

type CreatedDestination struct {
	ID               int64         `json:"idDestinoViagem"`
	FederativeUnitID int64         `json:"idUnidadeFederativa"`
	MunicipalityID   int64         `json:"idMunicipioDestino"`
	ArrivalDate      string        `json:"data"`
	Costs            []CreatedCost `json:"custos"`
}

type CreateTripResponse struct {
	ID                      int64                `json:"idViagem"`
	EmployeeID              int64                `json:"idEmpregado"`
	DepartureMunicipalityID int64                `json:"idMunicipioSaida"`
	StatusID                int64                `json:"idStatusViagem"`
	StartDate               string               `json:"DataInicioViagem"`
	EndDate                 string               `json:"DataTerminoViagem"`
	Destinations            []CreatedDestination `json:"destinos"`
}

// Read views mirror the legacy response shape, nulls included.

type UserView struct {
	ID   *int64 `json:"idEmpregado"`
	Name string `json:"nomeEmpregado"`
}

type CostView struct {
	ID           int64           `json:"idCustoDestino"`
	CostTypeID   *int64          `json:"idTipoCusto"`
	CostTypeName string          `json:"NomeTipoCusto"`
	Amount       decimal.Decimal `json:"ValorCustoDestino"`
}

type MunicipalityView struct {
	ID   *int64 `json:"idMunicipio"`
	Name string `json:"NomeMunicipio"`
}

type FederativeUnitView struct {
	ID   *int64 `json:"idUnidadeFederativa"`
	Name string `json:"NomeUnidadeFederativa"`
}

type DestinationView struct {
	ID               int64              `json:"idDestinoViagem"`
	TripID           int64              `json:"idViagem"`
	FederativeUnitID *int64             `json:"idUnidadeFederativa"`
	MunicipalityID   *int64             `json:"idMunicipioDestino"`
	ArrivalDate      string             `json:"DataDestinoViagem"`
	Municipality     MunicipalityView   `json:"municipio"`
	FederativeUnit   FederativeUnitView `json:"unidadeFederativa"`
	Costs            []CostView         `json:"custos"`
}

type TripView struct {
	ID                        *int64            `json:"idViagem"`
	EmployeeID                *int64            `json:"idEmpregado"`
	DepartureFederativeUnitID *int64            `json:"unidadeFederativaId"`
	DepartureMunicipalityID   *int64            `json:"idMunicipioSaida"`
	DepartureMunicipalityName string            `json:"NomeMunicipioSaida,omitempty"`
	DepartureFederativeUnit   string            `json:"NomeUnidadeFederativaSaida,omitempty"`
	StatusID                  *int64            `json:"idStatusViagem"`
	StatusName                string            `json:"NomeStatusViagem,omitempty"`
	StartDate                 *string           `json:"DataInicioViagem"`
	EndDate                   *string           `json:"DataTerminoViagem"`
	User                      UserView          `json:"usuario"`
	Destinations              []DestinationView `json:"destinos"`
}

type DepartureView struct {
	MunicipalityID     *int64 `json:"idMunicipioSaida"`
	MunicipalityName   string `json:"NomeMunicipioSaida"`
	FederativeUnitID   *int64 `json:"idUnidadeFederativa"`
	FederativeUnitName string `json:"NomeUnidadeFederativaSaida"`
}

type EmployeeTripSummary struct {
	ID           int64             `json:"idViagem"`
	StatusName   string            `json:"NomeStatusViagem"`
	StartDate    string            `json:"DataInicioViagem"`
	EndDate      string            `json:"DataTerminoViagem"`
	Departure    DepartureView     `json:"municipioSaida"`
	Destinations []DestinationView `json:"destinos"`
}

type EmployeeTripsView struct {
	User  *UserView             `json:"usuario,omitempty"`
	Trips []EmployeeTripSummary `json:"viagens"`
}

// NotFoundView reproduces the legacy null-filled body returned when the trip
// id does not exist.
func NotFoundView() TripView {
	return TripView{
		User:         UserView{ID: nil, Name: travelerNotFound},
		Destinations: []DestinationView{},
	}
}
