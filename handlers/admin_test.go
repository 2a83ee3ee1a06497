package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"neatspin/handlers"
	"neatspin/models"
	"neatspin/services/user"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBookingStore struct {
	bookings     []models.Booking
	listErr      error
	listedStatus string

	updatedID     string
	updatedStatus string
	updateErr     error
}

func (f *fakeBookingStore) Create(ctx context.Context, booking models.Booking) (string, error) {
	return "", nil
}

func (f *fakeBookingStore) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			return &f.bookings[i], nil
		}
	}
	return nil, nil
}

func (f *fakeBookingStore) List(ctx context.Context, statusFilter string) ([]models.Booking, error) {
	f.listedStatus = statusFilter
	return f.bookings, f.listErr
}

func (f *fakeBookingStore) UpdateStatus(ctx context.Context, id, status string) error {
	f.updatedID = id
	f.updatedStatus = status
	return f.updateErr
}

type fakeUserService struct {
	promotedEmail string
	promoteErr    error
}

func (f *fakeUserService) Register(email, name, password string) (*user.AuthResponse, error) {
	return nil, nil
}

func (f *fakeUserService) Authenticate(email, password string) (*user.AuthResponse, error) {
	return nil, nil
}

func (f *fakeUserService) PromoteToAdmin(email string) error {
	f.promotedEmail = email
	return f.promoteErr
}

func newAdminRouter(store *fakeBookingStore, us *fakeUserService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ah := handlers.NewAdminHandler(store, us)

	r := gin.New()
	r.GET("/api/admin/bookings", ah.ListBookingsHandler)
	r.GET("/api/admin/bookings/:id", ah.GetBookingHandler)
	r.PATCH("/api/admin/bookings/:id/status", ah.UpdateBookingStatusHandler)
	r.POST("/api/admin/promote", ah.PromoteToAdminHandler)
	return r
}

func TestListBookings(t *testing.T) {
	store := &fakeBookingStore{bookings: []models.Booking{
		{ID: "b1", Service: "basic", Status: models.StatusPending},
		{ID: "b2", Service: "family", Status: models.StatusPending},
	}}
	router := newAdminRouter(store, &fakeUserService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/bookings?status=pending", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pending", store.listedStatus)

	var got []models.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got, 2)
}

func TestListBookingsRejectsUnknownStatus(t *testing.T) {
	store := &fakeBookingStore{}
	router := newAdminRouter(store, &fakeUserService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/bookings?status=archived", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListBookingsEmptyIsJSONArray(t *testing.T) {
	router := newAdminRouter(&fakeBookingStore{}, &fakeUserService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/bookings", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}

func TestGetBooking(t *testing.T) {
	store := &fakeBookingStore{bookings: []models.Booking{
		{ID: "b1", Service: "premium", Status: models.StatusPending},
	}}
	router := newAdminRouter(store, &fakeUserService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/bookings/b1", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var got models.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "b1", got.ID)
	assert.Equal(t, "premium", got.Service)
}

func TestGetBookingNotFound(t *testing.T) {
	router := newAdminRouter(&fakeBookingStore{}, &fakeUserService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/bookings/ghost", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateBookingStatus(t *testing.T) {
	store := &fakeBookingStore{}
	router := newAdminRouter(store, &fakeUserService{})

	body := strings.NewReader(`{"status":"completed"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/admin/bookings/b1/status", body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "b1", store.updatedID)
	assert.Equal(t, models.StatusCompleted, store.updatedStatus)
}

func TestUpdateBookingStatusRejectsUnknownValue(t *testing.T) {
	store := &fakeBookingStore{}
	router := newAdminRouter(store, &fakeUserService{})

	body := strings.NewReader(`{"status":"archived"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/admin/bookings/b1/status", body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, store.updatedID)
}

func TestPromoteToAdmin(t *testing.T) {
	us := &fakeUserService{}
	router := newAdminRouter(&fakeBookingStore{}, us)

	body := strings.NewReader(`{"email":"ops@example.com"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/promote", body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ops@example.com", us.promotedEmail)
}

func TestPromoteToAdminUnknownUser(t *testing.T) {
	us := &fakeUserService{promoteErr: errors.New("user not found")}
	router := newAdminRouter(&fakeBookingStore{}, us)

	body := strings.NewReader(`{"email":"ghost@example.com"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/promote", body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPromoteToAdminRequiresEmail(t *testing.T) {
	router := newAdminRouter(&fakeBookingStore{}, &fakeUserService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/promote", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
