package transport

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"room-booking-frontend/config"
	"room-booking-frontend/internal/backend"
	"room-booking-frontend/internal/entity"
	"room-booking-frontend/internal/service"
	"room-booking-frontend/internal/session"
)

func newApp(t *testing.T, backendURL string) (*gin.Engine, *session.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Server:  config.ServerConfig{Timeout: 5 * time.Second},
		Backend: config.BackendConfig{BaseURL: backendURL, Timeout: 5 * time.Second},
		Session: config.SessionConfig{CookieName: "user", MaxAge: time.Hour},
		Cors:    config.CorsConfig{Origins: []string{"*"}},
		Web: config.WebConfig{
			TemplatesGlob: "../../web/templates/*.html",
			StaticDir:     "../../web/static",
		},
	}

	store := session.NewStore(&cfg.Session)
	client := backend.NewClient(&cfg.Backend)

	authService := service.NewAuthService(client)
	roomService := service.NewRoomService(client)
	bookingService := service.NewBookingService(client)

	router := InitRoutes(cfg, store,
		NewAuthHandler(authService, store),
		NewRoomHandler(roomService),
		NewBookingHandler(bookingService, roomService, store),
		NewAdminHandler(bookingService, roomService, store),
	)
	return router, store
}

func sessionCookie(t *testing.T, sess *entity.Session) *http.Cookie {
	t.Helper()
	encoded, err := session.Encode(sess)
	require.NoError(t, err)
	return &http.Cookie{Name: "user", Value: encoded}
}

func ownerSession() *entity.Session {
	return &entity.Session{ID: "u1", Email: "u@e.com", Role: entity.RoleUser, Token: "tok"}
}

func adminSession() *entity.Session {
	return &entity.Session{ID: "a1", Email: "a@e.com", Role: entity.RoleAdmin, Token: "tok"}
}

func get(router *gin.Engine, path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func postForm(router *gin.Engine, path string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHomeRendersRoomEntry(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/rooms", r.URL.Path)
		json.NewEncoder(w).Encode([]map[string]interface{}{
			{"id": "r1", "name": "Suite", "price": 100, "isActive": true, "images": []string{}},
		})
	}))
	defer srv.Close()

	router, _ := newApp(t, srv.URL)
	w := get(router, "/", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Suite")
	assert.Contains(t, body, "$100")
	assert.Contains(t, body, "Available")
	assert.Contains(t, body, "No images available")
	assert.Contains(t, body, "/book/r1")
}

func TestHomeEmptyState(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]map[string]interface{}{})
	}))
	defer srv.Close()

	router, _ := newApp(t, srv.URL)
	w := get(router, "/", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "No rooms available.")
}

// A failed fetch surfaces the backend's message verbatim, and nothing else.
func TestHomeSurfacesBackendMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"message": "room storage offline"})
	}))
	defer srv.Close()

	router, _ := newApp(t, srv.URL)
	w := get(router, "/", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "room storage offline")
	assert.NotContains(t, body, "No rooms available.")
}

func TestRouteGuards(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]map[string]interface{}{})
	}))
	defer srv.Close()
	router, _ := newApp(t, srv.URL)

	// anonymous -> login
	w := get(router, "/my-bookings", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	w = get(router, "/admin", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	// plain user on an admin page -> home
	w = get(router, "/admin", sessionCookie(t, ownerSession()))
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	// admin passes
	w = get(router, "/admin", sessionCookie(t, adminSession()))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMyBookingsEmptyState(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/bookings/user", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode([]map[string]interface{}{})
	}))
	defer srv.Close()

	router, _ := newApp(t, srv.URL)
	w := get(router, "/my-bookings", sessionCookie(t, ownerSession()))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "No bookings yet.")
}

func bookingPayload(id string, status entity.BookingStatus, roomName string) map[string]interface{} {
	return map[string]interface{}{
		"id":           id,
		"room":         map[string]string{"id": "r1", "name": roomName},
		"user":         map[string]string{"id": "u1", "email": "u@e.com"},
		"checkInDate":  "2026-09-01T00:00:00Z",
		"checkOutDate": "2026-09-03T00:00:00Z",
		"guests":       2,
		"totalPrice":   200,
		"status":       string(status),
		"createdAt":    "2026-08-20T12:00:00Z",
	}
}

// TestCancelFlow submits the cancel action; the follow-up fetch returns the
// booking already cancelled, so the cancel control disappears.
func TestCancelFlow(t *testing.T) {
	status := entity.BookingStatusPending
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPut && r.URL.Path == "/api/bookings/cancel/b1":
			status = entity.BookingStatusCancelled
			json.NewEncoder(w).Encode(map[string]string{"message": "cancelled"})
		case r.URL.Path == "/api/bookings/user":
			json.NewEncoder(w).Encode([]map[string]interface{}{bookingPayload("b1", status, "Suite")})
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	router, _ := newApp(t, srv.URL)
	cookie := sessionCookie(t, ownerSession())

	// control present while pending
	w := get(router, "/my-bookings", cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), ">Cancel</button>")

	// the re-fetch is the redirect, issued only after the response arrived
	w = postForm(router, "/my-bookings/b1/cancel", url.Values{}, cookie)
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/my-bookings", w.Header().Get("Location"))

	w = get(router, "/my-bookings", cookie)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Status: cancelled")
	assert.NotContains(t, body, ">Cancel</button>")
}

func TestCancelFailureSurfacesInlineError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPut && r.URL.Path == "/api/bookings/cancel/b1":
			w.WriteHeader(http.StatusConflict)
			json.NewEncoder(w).Encode(map[string]string{"message": "booking already cancelled"})
		case r.URL.Path == "/api/bookings/user":
			json.NewEncoder(w).Encode([]map[string]interface{}{bookingPayload("b1", entity.BookingStatusPending, "Suite")})
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	router, _ := newApp(t, srv.URL)
	w := postForm(router, "/my-bookings/b1/cancel", url.Values{}, sessionCookie(t, ownerSession()))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "booking already cancelled")
	// the list stays on screen with its control restored
	assert.Contains(t, body, ">Cancel</button>")
}

func TestLoginIssuesSessionCookie(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/login", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id": "u1", "email": "u@e.com", "isAdmin": false, "token": "fresh-token",
		})
	}))
	defer srv.Close()

	router, _ := newApp(t, srv.URL)
	w := postForm(router, "/login", url.Values{"email": {"u@e.com"}, "password": {"pw"}}, nil)

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	restored := session.Decode(cookies[0].Value)
	require.NotNil(t, restored)
	assert.Equal(t, "fresh-token", restored.Token)
	assert.Equal(t, entity.RoleUser, restored.Role)
}

func TestLoginFailureShowsBackendMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "Invalid credentials"})
	}))
	defer srv.Close()

	router, _ := newApp(t, srv.URL)
	w := postForm(router, "/login", url.Values{"email": {"u@e.com"}, "password": {"bad"}}, nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")
	assert.Empty(t, w.Result().Cookies())
}

// An expired token reported by the backend destroys the persisted session.
func TestExpiredTokenClearsSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "token expired"})
	}))
	defer srv.Close()

	router, _ := newApp(t, srv.URL)
	w := get(router, "/my-bookings", sessionCookie(t, ownerSession()))

	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.True(t, cookies[0].MaxAge < 0)
}

func TestAdminDashboardFiltersFetchedCollection(t *testing.T) {
	fetches := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/bookings/all", r.URL.Path)
		fetches++
		json.NewEncoder(w).Encode([]map[string]interface{}{
			bookingPayload("b1", entity.BookingStatusPending, "PendingRoom"),
			bookingPayload("b2", entity.BookingStatusConfirmed, "ConfirmedRoom"),
		})
	}))
	defer srv.Close()

	router, _ := newApp(t, srv.URL)
	cookie := sessionCookie(t, adminSession())

	w := get(router, "/admin?tab=bookings&status=pending", cookie)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "PendingRoom")
	assert.NotContains(t, body, "ConfirmedRoom")
	assert.Equal(t, 1, fetches)
}

func TestAdminApproveTransition(t *testing.T) {
	var requested map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPut && r.URL.Path == "/api/bookings/b1/status":
			require.NoError(t, json.NewDecoder(r.Body).Decode(&requested))
			json.NewEncoder(w).Encode(map[string]string{"message": "updated"})
		case r.URL.Path == "/api/bookings/all":
			json.NewEncoder(w).Encode([]map[string]interface{}{})
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	router, _ := newApp(t, srv.URL)
	w := postForm(router, "/admin/bookings/b1/status", url.Values{"status": {"confirmed"}}, sessionCookie(t, adminSession()))

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, map[string]string{"status": "confirmed"}, requested)
}

func TestAdminRoomFormValidation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("validation failure must not reach the backend")
	}))
	defer srv.Close()

	router, _ := newApp(t, srv.URL)
	w := postForm(router, "/admin/rooms", url.Values{"name": {""}, "price": {"100"}}, sessionCookie(t, adminSession()))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "room name and a positive price are required")
}

func TestAdminRoomsTabListsRooms(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/rooms", r.URL.Path)
		json.NewEncoder(w).Encode([]map[string]interface{}{
			{"id": "r1", "name": "Suite", "price": 100, "capacity": 2, "isActive": false, "images": []string{}},
		})
	}))
	defer srv.Close()

	router, _ := newApp(t, srv.URL)
	w := get(router, "/admin?tab=rooms", sessionCookie(t, adminSession()))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Suite")
	assert.Contains(t, body, "Currently unavailable")
	assert.Contains(t, body, "/admin/rooms/r1/edit")
}

func TestUnknownRoomAndUserDegrade(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/bookings/user", r.URL.Path)
		json.NewEncoder(w).Encode([]map[string]interface{}{
			{
				"id":           "b1",
				"checkInDate":  "2026-09-01T00:00:00Z",
				"checkOutDate": "2026-09-03T00:00:00Z",
				"guests":       1,
				"totalPrice":   50,
				"status":       "pending",
				"createdAt":    "2026-08-20T12:00:00Z",
			},
		})
	}))
	defer srv.Close()

	router, _ := newApp(t, srv.URL)
	w := get(router, "/my-bookings", sessionCookie(t, ownerSession()))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Unknown Room")
	assert.Contains(t, body, "Unknown User")
}
