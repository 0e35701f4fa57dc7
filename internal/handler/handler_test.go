package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"

	"github.com/carlosallexandre/gostack-gobarber/internal/domain"
	"github.com/carlosallexandre/gostack-gobarber/internal/handler/dto"
	hmocks "github.com/carlosallexandre/gostack-gobarber/internal/handler/mocks"
)

func setupRouter(t *testing.T) (*hmocks.MockAppointmentSvc, *hmocks.MockUserSvc, http.Handler) {
	t.Helper()
	appointmentSvc := hmocks.NewMockAppointmentSvc(t)
	userSvc := hmocks.NewMockUserSvc(t)

	h := NewHandler(appointmentSvc, userSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/providers/:id/appointments", h.BookAppointment)
		api.GET("/providers/:id/schedule", h.GetProviderSchedule)
		api.POST("/appointments/:id/cancel", h.CancelAppointment)
		api.GET("/users/:id/appointments", h.GetUserAppointments)
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
	}

	return appointmentSvc, userSvc, r
}

// --- Appointments ---

func TestHandler_BookAppointment_Success(t *testing.T) {
	appointmentSvc, _, r := setupRouter(t)

	providerID := uuid.New().String()
	userID := uuid.New().String()
	startsAt := time.Now().UTC().Add(3 * time.Hour).Truncate(time.Hour)
	appointment := &domain.Appointment{
		ID:          uuid.New().String(),
		RequesterID: userID,
		ProviderID:  providerID,
		ScheduledAt: startsAt,
		CreatedAt:   time.Now().UTC(),
	}

	appointmentSvc.EXPECT().Book(mock.Anything, userID, providerID, mock.Anything).Return(appointment, nil)

	body, _ := json.Marshal(dto.BookAppointmentRequest{
		UserID:   userID,
		StartsAt: startsAt.Format(time.RFC3339),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/providers/"+providerID+"/appointments", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.AppointmentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, providerID, resp.ProviderID)
	assert.Nil(t, resp.CanceledAt)
}

func TestHandler_BookAppointment_InvalidProviderID(t *testing.T) {
	_, _, r := setupRouter(t)

	body := []byte(`{"user_id":"` + uuid.New().String() + `","starts_at":"2026-09-01T14:00:00Z"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/providers/bad-id/appointments", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_BookAppointment_InvalidDate(t *testing.T) {
	_, _, r := setupRouter(t)

	body := []byte(`{"user_id":"` + uuid.New().String() + `","starts_at":"not-a-date"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/providers/"+uuid.New().String()+"/appointments", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_BookAppointment_SlotTaken(t *testing.T) {
	appointmentSvc, _, r := setupRouter(t)

	providerID := uuid.New().String()
	userID := uuid.New().String()

	appointmentSvc.EXPECT().Book(mock.Anything, userID, providerID, mock.Anything).
		Return(nil, domain.ErrSlotTaken)

	body, _ := json.Marshal(dto.BookAppointmentRequest{
		UserID:   userID,
		StartsAt: "2026-09-01T14:00:00Z",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/providers/"+providerID+"/appointments", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_BookAppointment_PastDate(t *testing.T) {
	appointmentSvc, _, r := setupRouter(t)

	providerID := uuid.New().String()
	userID := uuid.New().String()

	appointmentSvc.EXPECT().Book(mock.Anything, userID, providerID, mock.Anything).
		Return(nil, domain.ErrPastDate)

	body, _ := json.Marshal(dto.BookAppointmentRequest{
		UserID:   userID,
		StartsAt: "2020-01-01T14:00:00Z",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/providers/"+providerID+"/appointments", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_BookAppointment_ProviderNotFound(t *testing.T) {
	appointmentSvc, _, r := setupRouter(t)

	providerID := uuid.New().String()
	userID := uuid.New().String()

	appointmentSvc.EXPECT().Book(mock.Anything, userID, providerID, mock.Anything).
		Return(nil, domain.ErrUserNotFound)

	body, _ := json.Marshal(dto.BookAppointmentRequest{
		UserID:   userID,
		StartsAt: "2026-09-01T14:00:00Z",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/providers/"+providerID+"/appointments", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_CancelAppointment_Success(t *testing.T) {
	appointmentSvc, _, r := setupRouter(t)

	appointmentID := uuid.New().String()
	userID := uuid.New().String()
	canceledAt := time.Now().UTC()
	appointment := &domain.Appointment{
		ID:          appointmentID,
		RequesterID: userID,
		ProviderID:  uuid.New().String(),
		ScheduledAt: time.Now().UTC().Add(4 * time.Hour).Truncate(time.Hour),
		CanceledAt:  &canceledAt,
		CreatedAt:   time.Now().UTC(),
	}

	appointmentSvc.EXPECT().Cancel(mock.Anything, userID, appointmentID).Return(appointment, nil)

	body, _ := json.Marshal(dto.CancelAppointmentRequest{UserID: userID})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/appointments/"+appointmentID+"/cancel", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.AppointmentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.CanceledAt)
}

func TestHandler_CancelAppointment_InvalidID(t *testing.T) {
	_, _, r := setupRouter(t)

	body := []byte(`{"user_id":"` + uuid.New().String() + `"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/appointments/bad-id/cancel", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CancelAppointment_TooLate(t *testing.T) {
	appointmentSvc, _, r := setupRouter(t)

	appointmentID := uuid.New().String()
	userID := uuid.New().String()

	appointmentSvc.EXPECT().Cancel(mock.Anything, userID, appointmentID).
		Return(nil, domain.ErrTooLateToCancel)

	body, _ := json.Marshal(dto.CancelAppointmentRequest{UserID: userID})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/appointments/"+appointmentID+"/cancel", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CancelAppointment_NotOwner(t *testing.T) {
	appointmentSvc, _, r := setupRouter(t)

	appointmentID := uuid.New().String()
	userID := uuid.New().String()

	appointmentSvc.EXPECT().Cancel(mock.Anything, userID, appointmentID).
		Return(nil, domain.ErrNotOwner)

	body, _ := json.Marshal(dto.CancelAppointmentRequest{UserID: userID})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/appointments/"+appointmentID+"/cancel", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_GetUserAppointments_Success(t *testing.T) {
	appointmentSvc, _, r := setupRouter(t)

	userID := uuid.New().String()
	appointments := []*domain.Appointment{
		{ID: "a1", RequesterID: userID, ProviderID: "p1", ScheduledAt: time.Now().UTC(), CreatedAt: time.Now().UTC()},
	}

	appointmentSvc.EXPECT().ListByRequester(mock.Anything, userID, 2).Return(appointments, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/"+userID+"/appointments?page=2", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.AppointmentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestHandler_GetUserAppointments_InvalidPage(t *testing.T) {
	_, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/"+uuid.New().String()+"/appointments?page=zero", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetProviderSchedule_Success(t *testing.T) {
	appointmentSvc, _, r := setupRouter(t)

	providerID := uuid.New().String()
	appointments := []*domain.Appointment{
		{ID: "a1", RequesterID: "u1", ProviderID: providerID, ScheduledAt: time.Now().UTC(), CreatedAt: time.Now().UTC()},
		{ID: "a2", RequesterID: "u2", ProviderID: providerID, ScheduledAt: time.Now().UTC(), CreatedAt: time.Now().UTC()},
	}

	appointmentSvc.EXPECT().ProviderSchedule(mock.Anything, providerID).Return(appointments, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/providers/"+providerID+"/schedule", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.AppointmentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestHandler_GetProviderSchedule_NotAProvider(t *testing.T) {
	appointmentSvc, _, r := setupRouter(t)

	providerID := uuid.New().String()
	appointmentSvc.EXPECT().ProviderSchedule(mock.Anything, providerID).
		Return(nil, domain.ErrNotAProvider)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/providers/"+providerID+"/schedule", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Users ---

func TestHandler_CreateUser_Success(t *testing.T) {
	_, userSvc, r := setupRouter(t)

	user := &domain.User{
		ID:        uuid.New().String(),
		Name:      "Alice",
		Email:     "alice@example.com",
		CreatedAt: time.Now().UTC(),
	}
	userSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(user, nil)

	body, _ := json.Marshal(dto.CreateUserRequest{Name: "Alice", Email: "alice@example.com"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Alice", resp.Name)
}

func TestHandler_CreateUser_BadRequest(t *testing.T) {
	_, _, r := setupRouter(t)

	body := []byte(`{"name":"Alice"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateUser_EmailTaken(t *testing.T) {
	_, userSvc, r := setupRouter(t)

	userSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrEmailTaken)

	body, _ := json.Marshal(dto.CreateUserRequest{Name: "Alice", Email: "taken@example.com"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListUsers_Success(t *testing.T) {
	_, userSvc, r := setupRouter(t)

	users := []*domain.User{
		{ID: "u1", Name: "Alice", Email: "alice@example.com", CreatedAt: time.Now().UTC()},
	}
	userSvc.EXPECT().List(mock.Anything).Return(users, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestHandler_HandleError_InternalError(t *testing.T) {
	appointmentSvc, _, r := setupRouter(t)

	providerID := uuid.New().String()
	appointmentSvc.EXPECT().ProviderSchedule(mock.Anything, providerID).Return(nil, assert.AnError)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/providers/"+providerID+"/schedule", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
