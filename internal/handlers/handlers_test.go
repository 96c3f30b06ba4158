package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/hourbook/hourbook/internal/domain/schedule"
	"github.com/hourbook/hourbook/internal/httperr"
	"github.com/hourbook/hourbook/internal/middleware"
	"github.com/hourbook/hourbook/internal/models"
	ucScheduling "github.com/hourbook/hourbook/internal/usecase/scheduling"
)

type stubRepo struct {
	users        map[string]*models.User
	appointments []models.Appointment
	createErr    error
}

func (r *stubRepo) ListProviders(ctx context.Context, excludeUserID string) ([]models.User, error) {
	var out []models.User
	for _, u := range r.users {
		if u.Role == models.RoleProvider && u.ID != excludeUserID {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *stubRepo) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return u, nil
}

func (r *stubRepo) ListAppointmentsForDay(ctx context.Context, providerID string, start, end time.Time) ([]models.Appointment, error) {
	return r.appointments, nil
}

func (r *stubRepo) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	return r.createErr
}

func newTestRouter(repo *stubRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)

	providerHandler := NewProviderHandler(
		ucScheduling.NewListProviders(repo),
		ucScheduling.NewGetDayAvailability(repo, nil, time.UTC),
	)
	appointmentHandler := NewAppointmentHandler(
		ucScheduling.NewCreateAppointment(repo, nil, nil, time.UTC),
	)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextUserID, "u1")
	})
	r.GET("/providers", providerHandler.List)
	r.GET("/providers/:id/day-availability", providerHandler.DayAvailability)
	r.POST("/appointments", appointmentHandler.Create)
	return r
}

func testRepo() *stubRepo {
	return &stubRepo{
		users: map[string]*models.User{
			"p1": {ID: "p1", Name: "Ana", Role: models.RoleProvider},
			"p2": {ID: "p2", Name: "Leo", Role: models.RoleProvider},
			"u1": {ID: "u1", Name: "João", Role: models.RoleClient},
		},
	}
}

func TestProviderHandler_List(t *testing.T) {
	r := newTestRouter(testRepo())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/providers", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var providers []ProviderDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &providers))
	assert.Len(t, providers, 2)
}

func TestProviderHandler_DayAvailability(t *testing.T) {
	r := newTestRouter(testRepo())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/providers/p1/day-availability?year=2030&month=5&day=10", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var slots []domain.HourSlot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &slots))
	require.Len(t, slots, domain.DayEndHour-domain.DayStartHour+1)
	assert.Equal(t, domain.DayStartHour, slots[0].Hour)
	assert.True(t, slots[0].Available)
}

func TestProviderHandler_DayAvailability_MissingParams(t *testing.T) {
	r := newTestRouter(testRepo())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/providers/p1/day-availability?year=2030", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var envelope httperr.HTTPError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "invalid_date_params", envelope.Code)
}

func TestAppointmentHandler_Create(t *testing.T) {
	body := `{"provider_id":"p1","date":"2030-05-10T14:00:00Z"}`

	r := newTestRouter(testRepo())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/appointments", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var ap models.Appointment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ap))
	assert.Equal(t, "p1", ap.ProviderID)
	assert.Equal(t, "u1", ap.UserID)
	assert.Equal(t, 14, ap.Date.UTC().Hour())
}

func TestAppointmentHandler_Create_BusinessErrors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		createErr  error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "slot already taken",
			body:       `{"provider_id":"p1","date":"2030-05-10T14:00:00Z"}`,
			createErr:  httperr.ErrBusiness("slot_unavailable"),
			wantStatus: http.StatusConflict,
			wantCode:   "slot_unavailable",
		},
		{
			name:       "past date",
			body:       `{"provider_id":"p1","date":"2020-05-10T14:00:00Z"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "past_date",
		},
		{
			name:       "unknown provider",
			body:       `{"provider_id":"ghost","date":"2030-05-10T14:00:00Z"}`,
			wantStatus: http.StatusNotFound,
			wantCode:   "provider_not_found",
		},
		{
			name:       "missing fields",
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "invalid_request",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := testRepo()
			repo.createErr = tt.createErr
			r := newTestRouter(repo)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/appointments", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			require.Equal(t, tt.wantStatus, w.Code)

			var envelope httperr.HTTPError
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
			assert.Equal(t, tt.wantCode, envelope.Code)
		})
	}
}
