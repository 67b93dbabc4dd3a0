package v1_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	v1 "go-booking-backend/internal/delivery/http/v1"
	"go-booking-backend/internal/domain"
	"go-booking-backend/internal/repository/sqlite"
	"go-booking-backend/internal/usecase"
	"go-booking-backend/pkg/auth"
	"go-booking-backend/pkg/email"
	"go-booking-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

type stubNotifier struct {
	mu    sync.Mutex
	calls []domain.Notification
	err   error
}

func (s *stubNotifier) Notify(_ context.Context, n domain.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, n)
	return s.err
}

func (s *stubNotifier) IsConfigured() bool { return true }

func (s *stubNotifier) Calls() []domain.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Notification(nil), s.calls...)
}

type testServer struct {
	router     *gin.Engine
	store      *sqlite.Store
	pipeline   *stubNotifier
	endpoint   *stubNotifier
	dispatcher *usecase.NotifyDispatcher
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st, err := sqlite.Open(filepath.Join(t.TempDir(), "booking.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.Roles().GrantRole(context.Background(), "admin-1", domain.RoleAdmin))

	pipeline, endpoint := &stubNotifier{}, &stubNotifier{}
	dispatcher := usecase.NewNotifyDispatcher(pipeline, time.Second)
	t.Cleanup(func() { _ = dispatcher.Close(context.Background()) })

	validate := validation.New()
	router := v1.NewRouter(v1.RouterDeps{
		SubmissionUC: usecase.NewSubmissionUsecase(st.Appointments(), st.Contacts(), validate, dispatcher),
		ReviewUC:     usecase.NewReviewUsecase(st.Appointments(), st.Contacts()),
		HealthUC:     usecase.NewHealthUsecase(st, pipeline),
		Notifier:     endpoint,
		Roles:        st.Roles(),
		Verifier:     auth.NewVerifier(testSecret, nil),
		Validator:    validate,
	})

	return &testServer{router: router, store: st, pipeline: pipeline, endpoint: endpoint, dispatcher: dispatcher}
}

func tokenFor(t *testing.T, sub string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, auth.Claims{
		Email: sub + "@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func anonKey(t *testing.T) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": "anon",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func (s *testServer) do(method, path string, body any, token string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Fields  map[string]string `json:"fields"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return env
}

func scenarioBooking() map[string]any {
	return map[string]any{
		"name":    "A",
		"email":   "a@x.com",
		"phone":   "9825014775",
		"service": "HT/LT Installation",
		"date":    "2025-01-10",
		"time":    "09:00 AM - 10:00 AM",
	}
}

func TestBookAppointment(t *testing.T) {
	t.Run("Should store the booking as pending and notify once", func(t *testing.T) {
		srv := newTestServer(t)

		w := srv.do(http.MethodPost, "/v1/appointments", scenarioBooking(), "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var created domain.SubmissionCreated
		require.NoError(t, json.Unmarshal(decode(t, w).Data, &created))
		assert.NotEmpty(t, created.ID)
		assert.NotEmpty(t, w.Header().Get("X-Request-Id"))

		require.NoError(t, srv.dispatcher.Close(context.Background()))
		calls := srv.pipeline.Calls()
		require.Len(t, calls, 1)
		assert.Equal(t, domain.KindAppointment, calls[0].Kind)
		assert.Equal(t, "09:00 AM - 10:00 AM", calls[0].Data.PreferredTime)

		items, err := srv.store.Appointments().ListRecent(context.Background(), domain.ListOptions{})
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, created.ID, items[0].ID)
		assert.Equal(t, domain.AppointmentPending, items[0].Status)
	})

	t.Run("Should succeed when the notification fails", func(t *testing.T) {
		srv := newTestServer(t)
		srv.pipeline.err = email.ErrDeliveryFailed

		w := srv.do(http.MethodPost, "/v1/appointments", scenarioBooking(), "")
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Should return field errors and store nothing", func(t *testing.T) {
		srv := newTestServer(t)
		body := scenarioBooking()
		body["email"] = "not-an-email"
		body["time"] = "08:00 AM - 09:00 AM"

		w := srv.do(http.MethodPost, "/v1/appointments", body, "")
		require.Equal(t, http.StatusBadRequest, w.Code)
		env := decode(t, w)
		assert.False(t, env.Success)
		assert.Equal(t, "Invalid email address", env.Fields["email"])
		assert.Contains(t, env.Fields, "preferred_time")

		require.NoError(t, srv.dispatcher.Close(context.Background()))
		assert.Empty(t, srv.pipeline.Calls())
		items, err := srv.store.Appointments().ListRecent(context.Background(), domain.ListOptions{})
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("Should reject a malformed body", func(t *testing.T) {
		srv := newTestServer(t)
		req := httptest.NewRequest(http.MethodPost, "/v1/appointments", strings.NewReader("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestBookingOptions(t *testing.T) {
	srv := newTestServer(t)
	w := srv.do(http.MethodGet, "/v1/appointments/options", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var opts domain.BookingOptions
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &opts))
	assert.Equal(t, domain.TimeSlots, opts.TimeSlots)
	assert.Contains(t, opts.Services, "HT/LT Installation")
}

func TestSubmitContact(t *testing.T) {
	t.Run("Should flag only the overlong message", func(t *testing.T) {
		srv := newTestServer(t)
		w := srv.do(http.MethodPost, "/v1/contact", map[string]any{
			"name":    "Ravi",
			"email":   "ravi@example.com",
			"subject": "Quote",
			"message": strings.Repeat("m", 1001),
		}, "")
		require.Equal(t, http.StatusBadRequest, w.Code)
		fields := decode(t, w).Fields
		assert.Len(t, fields, 1)
		assert.Contains(t, fields, "message")
	})

	t.Run("Should store a valid message", func(t *testing.T) {
		srv := newTestServer(t)
		w := srv.do(http.MethodPost, "/v1/contact", map[string]any{
			"name": "Ravi", "email": "ravi@example.com", "subject": "Quote", "message": "Hello",
		}, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		items, err := srv.store.Contacts().ListRecent(context.Background(), domain.ListOptions{})
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, domain.ContactNew, items[0].Status)
	})
}

func TestCORS(t *testing.T) {
	srv := newTestServer(t)

	t.Run("Should answer preflight with an empty 200", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/v1/notifications/send", nil)
		req.Header.Set("Origin", "https://example.com")
		req.Header.Set("Access-Control-Request-Method", "POST")
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Body.String())
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		allowed := w.Header().Get("Access-Control-Allow-Headers")
		for _, h := range []string{"authorization", "x-client-info", "apikey", "content-type"} {
			assert.Contains(t, allowed, h)
		}
	})

	t.Run("Should add headers to normal responses", func(t *testing.T) {
		w := srv.do(http.MethodGet, "/v1/health", nil, "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestSendNotification(t *testing.T) {
	body := map[string]any{
		"type": "contact",
		"data": map[string]any{"name": "Ravi", "email": "ravi@example.com", "subject": "Quote", "message": "Hello"},
	}

	t.Run("Should require a project key", func(t *testing.T) {
		srv := newTestServer(t)
		w := srv.do(http.MethodPost, "/v1/notifications/send", body, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"Missing authorization header"}`, w.Body.String())
		assert.Empty(t, srv.endpoint.Calls())
	})

	t.Run("Should reject a key signed elsewhere", func(t *testing.T) {
		srv := newTestServer(t)
		forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"role": "anon",
			"exp":  time.Now().Add(time.Hour).Unix(),
		}).SignedString([]byte("another-project"))
		require.NoError(t, err)

		w := srv.do(http.MethodPost, "/v1/notifications/send", body, forged)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Empty(t, srv.endpoint.Calls())
	})

	t.Run("Should accept the anon key in the apikey header", func(t *testing.T) {
		srv := newTestServer(t)
		raw, _ := json.Marshal(body)
		req := httptest.NewRequest(http.MethodPost, "/v1/notifications/send", bytes.NewReader(raw))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("apikey", anonKey(t))
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, srv.endpoint.Calls(), 1)
	})

	t.Run("Should reply success", func(t *testing.T) {
		srv := newTestServer(t)
		w := srv.do(http.MethodPost, "/v1/notifications/send", body, anonKey(t))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success":true}`, w.Body.String())
		require.Len(t, srv.endpoint.Calls(), 1)
		assert.Equal(t, "Quote", srv.endpoint.Calls()[0].Data.Subject)
	})

	t.Run("Should reply 500 when unconfigured", func(t *testing.T) {
		srv := newTestServer(t)
		srv.endpoint.err = email.ErrUnconfigured
		w := srv.do(http.MethodPost, "/v1/notifications/send", body, anonKey(t))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"Email service not configured"}`, w.Body.String())
	})

	t.Run("Should reply 400 for an unknown type", func(t *testing.T) {
		srv := newTestServer(t)
		srv.endpoint.err = domain.ErrUnknownKind
		w := srv.do(http.MethodPost, "/v1/notifications/send", map[string]any{"type": "quote", "data": map[string]any{}}, anonKey(t))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Invalid email type"}`, w.Body.String())
	})

	t.Run("Should reply 500 when a send fails", func(t *testing.T) {
		srv := newTestServer(t)
		srv.endpoint.err = &email.DeliveryError{To: []string{"ravi@example.com"}, Err: errors.New("bad gateway")}
		w := srv.do(http.MethodPost, "/v1/notifications/send", body, anonKey(t))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"Failed to send email"}`, w.Body.String())
	})
}

func TestAdminRoutes(t *testing.T) {
	t.Run("Should require a token", func(t *testing.T) {
		srv := newTestServer(t)
		w := srv.do(http.MethodGet, "/v1/admin/appointments", nil, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Should reject an invalid token", func(t *testing.T) {
		srv := newTestServer(t)
		w := srv.do(http.MethodGet, "/v1/admin/appointments", nil, "garbage")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Should forbid non-admin users", func(t *testing.T) {
		srv := newTestServer(t)
		w := srv.do(http.MethodGet, "/v1/admin/contacts", nil, tokenFor(t, "user-9"))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Should list and update appointments", func(t *testing.T) {
		srv := newTestServer(t)
		token := tokenFor(t, "admin-1")
		require.Equal(t, http.StatusCreated, srv.do(http.MethodPost, "/v1/appointments", scenarioBooking(), "").Code)

		w := srv.do(http.MethodGet, "/v1/admin/appointments?status=pending", nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var items []domain.Appointment
		require.NoError(t, json.Unmarshal(decode(t, w).Data, &items))
		require.Len(t, items, 1)

		w = srv.do(http.MethodPatch, "/v1/admin/appointments/"+items[0].ID+"/status", map[string]string{"status": "confirmed"}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var updated domain.Appointment
		require.NoError(t, json.Unmarshal(decode(t, w).Data, &updated))
		assert.Equal(t, domain.AppointmentConfirmed, updated.Status)
	})

	t.Run("Should return 404 for a missing record and change nothing", func(t *testing.T) {
		srv := newTestServer(t)
		token := tokenFor(t, "admin-1")
		require.Equal(t, http.StatusCreated, srv.do(http.MethodPost, "/v1/appointments", scenarioBooking(), "").Code)

		w := srv.do(http.MethodPatch, "/v1/admin/appointments/does-not-exist/status", map[string]string{"status": "cancelled"}, token)
		assert.Equal(t, http.StatusNotFound, w.Code)

		items, err := srv.store.Appointments().ListRecent(context.Background(), domain.ListOptions{})
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, domain.AppointmentPending, items[0].Status)
	})

	t.Run("Should reject an unknown status label", func(t *testing.T) {
		srv := newTestServer(t)
		w := srv.do(http.MethodPatch, "/v1/admin/contacts/any/status", map[string]string{"status": "done"}, tokenFor(t, "admin-1"))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Should require a status in the body", func(t *testing.T) {
		srv := newTestServer(t)
		w := srv.do(http.MethodPatch, "/v1/admin/contacts/any/status", map[string]string{}, tokenFor(t, "admin-1"))
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decode(t, w).Fields, "status")
	})

	t.Run("Should reject an out-of-range limit", func(t *testing.T) {
		srv := newTestServer(t)
		w := srv.do(http.MethodGet, "/v1/admin/contacts?limit=1000", nil, tokenFor(t, "admin-1"))
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decode(t, w).Fields, "limit")
	})

	t.Run("Should report a non-numeric limit on its field", func(t *testing.T) {
		srv := newTestServer(t)
		w := srv.do(http.MethodGet, "/v1/admin/appointments?limit=abc&offset=x", nil, tokenFor(t, "admin-1"))
		require.Equal(t, http.StatusBadRequest, w.Code)
		env := decode(t, w)
		assert.Equal(t, map[string]string{
			"limit":  "Limit must be a number",
			"offset": "Offset must be a number",
		}, env.Fields)
		assert.NotContains(t, w.Body.String(), "strconv")
	})

	t.Run("Should summarize the dashboard", func(t *testing.T) {
		srv := newTestServer(t)
		require.Equal(t, http.StatusCreated, srv.do(http.MethodPost, "/v1/appointments", scenarioBooking(), "").Code)

		w := srv.do(http.MethodGet, "/v1/admin/overview", nil, tokenFor(t, "admin-1"))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var overview domain.Overview
		require.NoError(t, json.Unmarshal(decode(t, w).Data, &overview))
		assert.Equal(t, 1, overview.AppointmentsByStatus["pending"])
		assert.Equal(t, 0, overview.ContactsByStatus["new"])
	})
}

func TestAuthRoutes(t *testing.T) {
	t.Run("Should report mismatched passwords on confirm_password", func(t *testing.T) {
		srv := newTestServer(t)
		w := srv.do(http.MethodPost, "/v1/auth/signup/validate", map[string]any{
			"full_name": "Asha Patel", "email": "asha@example.com", "password": "secret1", "confirm_password": "secret2",
		}, "")
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, map[string]string{"confirm_password": "Passwords don't match"}, decode(t, w).Fields)
	})

	t.Run("Should resolve the admin role for the caller", func(t *testing.T) {
		srv := newTestServer(t)
		w := srv.do(http.MethodGet, "/v1/auth/me", nil, tokenFor(t, "admin-1"))
		require.Equal(t, http.StatusOK, w.Code)
		var user domain.User
		require.NoError(t, json.Unmarshal(decode(t, w).Data, &user))
		assert.Equal(t, "admin-1", user.ID)
		assert.Equal(t, domain.RoleAdmin, user.Role)
	})
}
