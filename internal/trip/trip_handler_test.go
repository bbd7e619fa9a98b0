package trip_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-viagens/internal/middleware"
	"go-viagens/internal/trip"
	triperrors "go-viagens/internal/trip/errors"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type fakeTripService struct {
	createFn        func(ctx context.Context, req trip.CreateTripRequest) (trip.CreateTripResponse, error)
	getByIDFn       func(ctx context.Context, id int64) (trip.TripView, error)
	getByEmployeeFn func(ctx context.Context, employeeID int64) (trip.EmployeeTripsView, error)
	updateFn        func(ctx context.Context, id int64, req trip.UpdateTripRequest) (trip.TripView, error)
	deleteFn        func(ctx context.Context, id, actorID int64) error
	approveFn       func(ctx context.Context, id int64) error
	rejectFn        func(ctx context.Context, id int64) error
	exportVoucherFn func(ctx context.Context, id int64) ([]byte, error)
}

func (f *fakeTripService) Create(ctx context.Context, req trip.CreateTripRequest) (trip.CreateTripResponse, error) {
	if f.createFn != nil {
		return f.createFn(ctx, req)
	}
	return trip.CreateTripResponse{}, nil
}

func (f *fakeTripService) GetByID(ctx context.Context, id int64) (trip.TripView, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return trip.TripView{}, nil
}

func (f *fakeTripService) GetByEmployee(ctx context.Context, employeeID int64) (trip.EmployeeTripsView, error) {
	if f.getByEmployeeFn != nil {
		return f.getByEmployeeFn(ctx, employeeID)
	}
	return trip.EmployeeTripsView{Trips: []trip.EmployeeTripSummary{}}, nil
}

func (f *fakeTripService) Update(ctx context.Context, id int64, req trip.UpdateTripRequest) (trip.TripView, error) {
	if f.updateFn != nil {
		return f.updateFn(ctx, id, req)
	}
	return trip.TripView{}, nil
}

func (f *fakeTripService) Delete(ctx context.Context, id, actorID int64) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id, actorID)
	}
	return nil
}

func (f *fakeTripService) Approve(ctx context.Context, id int64) error {
	if f.approveFn != nil {
		return f.approveFn(ctx, id)
	}
	return nil
}

func (f *fakeTripService) Reject(ctx context.Context, id int64) error {
	if f.rejectFn != nil {
		return f.rejectFn(ctx, id)
	}
	return nil
}

func (f *fakeTripService) ExportVoucher(ctx context.Context, id int64) ([]byte, error) {
	if f.exportVoucherFn != nil {
		return f.exportVoucherFn(ctx, id)
	}
	return []byte("%PDF-1.4"), nil
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func mustDecodeEnvelope(t *testing.T, body *bytes.Buffer) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	assert.NoError(t, json.Unmarshal(body.Bytes(), &env))
	return env
}

func newTripRouter(svc trip.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := trip.NewHandler(svc)

	g := r.Group("/viagens")
	g.POST("", h.Create)
	g.GET("/:id", h.GetById)
	g.GET("/empregado/:id", h.GetByEmployee)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
	g.PUT("/:id/aprovar", h.Approve)
	g.PUT("/:id/reprovar", h.Reject)
	g.GET("/:id/exportar-pdf", h.ExportVoucher)
	return r
}

func TestCreateHandlerReturns201(t *testing.T) {
	svc := &fakeTripService{
		createFn: func(ctx context.Context, req trip.CreateTripRequest) (trip.CreateTripResponse, error) {
			assert.Equal(t, int64(7), req.EmployeeID)
			return trip.CreateTripResponse{ID: 10, EmployeeID: req.EmployeeID, StatusID: 1}, nil
		},
	}
	router := newTripRouter(svc)

	body := `{
		"idEmpregado": 7,
		"idMunicipioSaida": 100,
		"DataInicioViagem": "2024-03-01",
		"DataTerminoViagem": "2024-03-05",
		"destinos": [
			{"idMunicipioDestino": 200, "DataDestinoViagem": "2024-03-01",
			 "custos": [{"idTipoCusto": 1, "ValorCustoDestino": 350.5}]}
		]
	}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/viagens", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	env := mustDecodeEnvelope(t, w.Body)
	assert.True(t, env.Ok)

	var resp trip.CreateTripResponse
	assert.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, int64(10), resp.ID)
}

func TestCreateHandlerAcceptsEmptyDestinations(t *testing.T) {
	svc := &fakeTripService{
		createFn: func(ctx context.Context, req trip.CreateTripRequest) (trip.CreateTripResponse, error) {
			assert.Empty(t, req.Destinations)
			return trip.CreateTripResponse{
				ID:           11,
				EmployeeID:   req.EmployeeID,
				StatusID:     1,
				Destinations: []trip.CreatedDestination{},
			}, nil
		},
	}
	router := newTripRouter(svc)

	body := `{
		"idEmpregado": 7,
		"idMunicipioSaida": 100,
		"DataInicioViagem": "2024-03-01",
		"DataTerminoViagem": "2024-03-05",
		"destinos": []
	}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/viagens", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	env := mustDecodeEnvelope(t, w.Body)
	assert.True(t, env.Ok)

	var data map[string]json.RawMessage
	assert.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "[]", string(data["destinos"]))
}

func TestCreateHandlerMapsOverlapConflict(t *testing.T) {
	svc := &fakeTripService{
		createFn: func(ctx context.Context, req trip.CreateTripRequest) (trip.CreateTripResponse, error) {
			return trip.CreateTripResponse{}, triperrors.ErrTripTooSoon
		},
	}
	router := newTripRouter(svc)

	body := `{
		"idEmpregado": 7,
		"idMunicipioSaida": 100,
		"DataInicioViagem": "2024-01-15",
		"DataTerminoViagem": "2024-01-20",
		"destinos": [{"idMunicipioDestino": 200, "DataDestinoViagem": "2024-01-15"}]
	}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/viagens", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	env := mustDecodeEnvelope(t, w.Body)
	assert.False(t, env.Ok)
	assert.Equal(t, "CONFLICT", env.Error.Code)
}

func TestGetByIdUnknownTripAnswers200WithNulls(t *testing.T) {
	svc := &fakeTripService{
		getByIDFn: func(ctx context.Context, id int64) (trip.TripView, error) {
			return trip.TripView{}, triperrors.ErrTripNotFound
		},
	}
	router := newTripRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/viagens/999", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	env := mustDecodeEnvelope(t, w.Body)
	assert.True(t, env.Ok)

	var data map[string]json.RawMessage
	assert.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "null", string(data["idViagem"]))
	assert.Equal(t, "null", string(data["idStatusViagem"]))

	var user map[string]any
	assert.NoError(t, json.Unmarshal(data["usuario"], &user))
	assert.Nil(t, user["idEmpregado"])
	assert.Equal(t, "Empregado não encontrado", user["nomeEmpregado"])
	assert.Equal(t, "[]", string(data["destinos"]))
}

func TestGetByIdInvalidID(t *testing.T) {
	router := newTripRouter(&fakeTripService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/viagens/abc", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetByEmployeeReturnsTrips(t *testing.T) {
	userID := int64(7)
	svc := &fakeTripService{
		getByEmployeeFn: func(ctx context.Context, employeeID int64) (trip.EmployeeTripsView, error) {
			return trip.EmployeeTripsView{
				User: &trip.UserView{ID: &userID, Name: "Maria Souza"},
				Trips: []trip.EmployeeTripSummary{
					{ID: 10, StatusName: "Pendente", StartDate: "2024-03-01", EndDate: "2024-03-05"},
				},
			}, nil
		},
	}
	router := newTripRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/viagens/empregado/7", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	env := mustDecodeEnvelope(t, w.Body)
	assert.True(t, env.Ok)

	var view trip.EmployeeTripsView
	assert.NoError(t, json.Unmarshal(env.Data, &view))
	assert.Len(t, view.Trips, 1)
	assert.Equal(t, "Maria Souza", view.User.Name)
}

func TestUpdateHandlerPassesPartialBody(t *testing.T) {
	var got trip.UpdateTripRequest
	svc := &fakeTripService{
		updateFn: func(ctx context.Context, id int64, req trip.UpdateTripRequest) (trip.TripView, error) {
			got = req
			return trip.TripView{}, nil
		},
	}
	router := newTripRouter(svc)

	body := `{"DataTerminoViagem": "2024-03-08"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/viagens/10", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, got.Destinations)
	assert.NotNil(t, got.EndDate)
	assert.Equal(t, "2024-03-08", *got.EndDate)
}

func TestDeleteHandlerNotFound(t *testing.T) {
	svc := &fakeTripService{
		deleteFn: func(ctx context.Context, id, actorID int64) error {
			return triperrors.ErrTripNotFound
		},
	}
	router := newTripRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/viagens/999", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	env := mustDecodeEnvelope(t, w.Body)
	assert.False(t, env.Ok)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestApproveAndRejectHandlers(t *testing.T) {
	var approved, rejected []int64
	svc := &fakeTripService{
		approveFn: func(ctx context.Context, id int64) error {
			approved = append(approved, id)
			return nil
		},
		rejectFn: func(ctx context.Context, id int64) error {
			rejected = append(rejected, id)
			return nil
		},
	}
	router := newTripRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/viagens/10/aprovar", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/viagens/11/reprovar", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, []int64{10}, approved)
	assert.Equal(t, []int64{11}, rejected)
}

func TestExportVoucherHandlerSetsDownloadHeaders(t *testing.T) {
	svc := &fakeTripService{
		exportVoucherFn: func(ctx context.Context, id int64) ([]byte, error) {
			return []byte("%PDF-1.4 fake"), nil
		},
	}
	router := newTripRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/viagens/10/exportar-pdf", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=viagem_10.pdf", w.Header().Get("Content-Disposition"))
	assert.Equal(t, "%PDF-1.4 fake", w.Body.String())
}

func TestCreateHandlerCachesResponseAndReleasesLock(t *testing.T) {
	resp := trip.CreateTripResponse{
		ID:           10,
		EmployeeID:   7,
		StatusID:     1,
		Destinations: []trip.CreatedDestination{},
	}
	svc := &fakeTripService{
		createFn: func(ctx context.Context, req trip.CreateTripRequest) (trip.CreateTripResponse, error) {
			return resp, nil
		},
	}

	rdb, mock := redismock.NewClientMock()
	cacheKey := "idemp:/viagens:7:abc-123"
	lockKey := cacheKey + ":lock"

	payload, err := json.Marshal(resp)
	assert.NoError(t, err)
	mock.ExpectSet(cacheKey, payload, 24*time.Hour).SetVal("OK")
	mock.ExpectDel(lockKey).SetVal(1)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/viagens", func(c *gin.Context) {
		c.Set(middleware.CtxIdempotencyCacheKey, cacheKey)
		c.Set(middleware.CtxIdempotencyLockKey, lockKey)
	}, trip.NewHandlerWithRedis(svc, rdb).Create)

	body := `{
		"idEmpregado": 7,
		"idMunicipioSaida": 100,
		"DataInicioViagem": "2024-03-01",
		"DataTerminoViagem": "2024-03-05",
		"destinos": []
	}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/viagens", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateHandlerAmountPrecision(t *testing.T) {
	svc := &fakeTripService{
		createFn: func(ctx context.Context, req trip.CreateTripRequest) (trip.CreateTripResponse, error) {
			assert.True(t, req.Destinations[0].Costs[0].Amount.Equal(decimal.RequireFromString("0.1")))
			return trip.CreateTripResponse{ID: 1}, nil
		},
	}
	router := newTripRouter(svc)

	body := `{
		"idEmpregado": 7,
		"idMunicipioSaida": 100,
		"DataInicioViagem": "2024-03-01",
		"DataTerminoViagem": "2024-03-05",
		"destinos": [
			{"idMunicipioDestino": 200, "DataDestinoViagem": "2024-03-01",
			 "custos": [{"idTipoCusto": 1, "ValorCustoDestino": 0.1}]}
		]
	}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/viagens", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}
