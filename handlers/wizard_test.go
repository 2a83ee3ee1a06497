package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"neatspin/handlers"
	"neatspin/models"
	"neatspin/services/wizard"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeWizardService struct {
	session *models.WizardSession
	err     error

	cancelCalled   bool
	rescheduleTime string
}

func (f *fakeWizardService) Start(userEmail string) (*models.WizardSession, error) {
	return f.session, f.err
}

func (f *fakeWizardService) Get(sessionID string) (*models.WizardSession, error) {
	return f.session, f.err
}

func (f *fakeWizardService) UpdateDraft(sessionID string, draft models.DraftBooking) (*models.WizardSession, error) {
	return f.session, f.err
}

func (f *fakeWizardService) Advance(sessionID string) (*models.WizardSession, error) {
	return f.session, f.err
}

func (f *fakeWizardService) Back(sessionID string) (*models.WizardSession, error) {
	return f.session, f.err
}

func (f *fakeWizardService) Submit(sessionID string) (*models.SubmitResult, error) {
	return nil, f.err
}

func (f *fakeWizardService) RescheduleEmail(sessionID, scheduleTime string) (*models.EmailUpdateResult, error) {
	f.rescheduleTime = scheduleTime
	if f.err != nil {
		return nil, f.err
	}
	return &models.EmailUpdateResult{Action: models.EmailActionUpdated, EmailID: "m1"}, nil
}

func (f *fakeWizardService) CancelEmail(sessionID string) (*models.EmailUpdateResult, error) {
	f.cancelCalled = true
	if f.err != nil {
		return nil, f.err
	}
	return &models.EmailUpdateResult{Action: models.EmailActionCancelled, EmailID: "m1"}, nil
}

func newWizardRouter(svc wizard.WizardService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handlers.NewWizardHandler(svc, zap.NewNop())

	r := gin.New()
	r.POST("/api/wizard/session/:sessionID/email", h.UpdateEmail)
	r.POST("/api/wizard/session/:sessionID/submit", h.Submit)
	r.GET("/api/wizard/session/:sessionID", h.GetSession)
	return r
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestUpdateEmailCancel(t *testing.T) {
	svc := &fakeWizardService{}
	router := newWizardRouter(svc)

	w := postJSON(router, "/api/wizard/session/s1/email", `{"cancel":true}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, svc.cancelCalled)
}

func TestUpdateEmailReschedule(t *testing.T) {
	svc := &fakeWizardService{}
	router := newWizardRouter(svc)

	at := time.Now().Add(time.Hour).UTC().Format(time.RFC3339)
	w := postJSON(router, "/api/wizard/session/s1/email", `{"scheduleTime":"`+at+`"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, at, svc.rescheduleTime)
}

func TestUpdateEmailRequiresAction(t *testing.T) {
	svc := &fakeWizardService{}
	router := newWizardRouter(svc)

	w := postJSON(router, "/api/wizard/session/s1/email", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "scheduleTime")
	assert.False(t, svc.cancelCalled)
}

func TestWizardErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"session not found", wizard.ErrSessionNotFound, http.StatusNotFound},
		{"step incomplete", wizard.ErrStepIncomplete, http.StatusBadRequest},
		{"already submitting", wizard.ErrAlreadySubmitting, http.StatusConflict},
		{"no email id", wizard.ErrNoEmailID, http.StatusBadRequest},
		{"bad schedule time", wizard.ErrBadScheduleTime, http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := newWizardRouter(&fakeWizardService{err: tc.err})

			w := postJSON(router, "/api/wizard/session/s1/submit", ``)
			assert.Equal(t, tc.want, w.Code)
		})
	}
}

func TestGetSessionNotFound(t *testing.T) {
	router := newWizardRouter(&fakeWizardService{err: wizard.ErrSessionNotFound})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/wizard/session/expired", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
