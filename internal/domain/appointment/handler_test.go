package appointment

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/RafaelPrado409/Marletplace-Tatuagem/internal/middleware"
)

func TestParseListFilterDateExpandsToUTCDay(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/appointments?date=2026-09-01", nil)

	filter, errMsg := parseListFilter(r)
	if errMsg != "" {
		t.Fatalf("unexpected error: %s", errMsg)
	}

	wantFrom := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	wantTo := time.Date(2026, 9, 1, 23, 59, 59, 999000000, time.UTC)
	if !filter.From.Equal(wantFrom) {
		t.Errorf("from = %s, want %s", filter.From, wantFrom)
	}
	if !filter.To.Equal(wantTo) {
		t.Errorf("to = %s, want %s", filter.To, wantTo)
	}
}

func TestParseListFilterRejectsDateWithRange(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet,
		"/appointments?date=2026-09-01&from=2026-09-01T00:00:00Z", nil)

	if _, errMsg := parseListFilter(r); errMsg == "" {
		t.Fatal("expected an error when date is combined with from")
	}
}

func TestParseListFilterRange(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet,
		"/appointments?from=2026-09-01T08:00:00Z&to=2026-09-02T18:00:00Z&status=PENDING", nil)

	filter, errMsg := parseListFilter(r)
	if errMsg != "" {
		t.Fatalf("unexpected error: %s", errMsg)
	}
	if filter.Status != StatusPending {
		t.Errorf("status = %s", filter.Status)
	}
	if filter.From == nil || filter.To == nil {
		t.Fatal("expected both bounds to be set")
	}
}

func TestParseListFilterRejectsBadStatus(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/appointments?status=LATER", nil)

	if _, errMsg := parseListFilter(r); errMsg == "" {
		t.Fatal("expected an error for an unknown status")
	}
}

// withUser fakes the auth middleware for handler tests.
func withUser(userID uuid.UUID, role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), middleware.UserIDKey, userID)
			ctx = context.WithValue(ctx, middleware.RoleKey, role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func TestCreateEndpoint(t *testing.T) {
	fx := newFixture(t)
	handler := NewHandler(fx.svc)

	router := chi.NewRouter()
	router.Mount("/appointments", handler.Routes(withUser(fx.clientID, "CLIENT")))

	post := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/appointments", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	body := fmt.Sprintf(`{"artistId":%q,"startsAt":"2026-09-01T10:00:00Z","endsAt":"2026-09-01T12:00:00Z"}`, fx.artistID)

	rec := post(body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var created struct {
		Success bool `json:"success"`
		Data    struct {
			Status Status `json:"status"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !created.Success || created.Data.Status != StatusPending {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}

	// Same slot again collides.
	if rec := post(body); rec.Code != http.StatusConflict {
		t.Fatalf("overlap status = %d, want 409", rec.Code)
	}

	// Adjacent slot is fine.
	adjacent := fmt.Sprintf(`{"artistId":%q,"startsAt":"2026-09-01T12:00:00Z","endsAt":"2026-09-01T13:00:00Z"}`, fx.artistID)
	if rec := post(adjacent); rec.Code != http.StatusCreated {
		t.Fatalf("adjacent status = %d, want 201", rec.Code)
	}

	// Inverted range is a validation error.
	inverted := fmt.Sprintf(`{"artistId":%q,"startsAt":"2026-09-01T15:00:00Z","endsAt":"2026-09-01T14:00:00Z"}`, fx.artistID)
	if rec := post(inverted); rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("inverted status = %d, want 422", rec.Code)
	}

	// Unknown artist is 404.
	unknown := fmt.Sprintf(`{"artistId":%q,"startsAt":"2026-09-02T10:00:00Z","endsAt":"2026-09-02T11:00:00Z"}`, uuid.New())
	if rec := post(unknown); rec.Code != http.StatusNotFound {
		t.Fatalf("unknown artist status = %d, want 404", rec.Code)
	}
}

func TestUpdateStatusEndpoint(t *testing.T) {
	fx := newFixture(t)
	handler := NewHandler(fx.svc)

	appt := fx.book(t, at(10, 0), at(11, 0))

	router := chi.NewRouter()
	router.Mount("/appointments", handler.Routes(withUser(fx.clientID, "CLIENT")))

	patch := func(id uuid.UUID, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPatch, "/appointments/"+id.String()+"/status", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	// The client may not confirm their own booking.
	if rec := patch(appt.ID, `{"status":"CONFIRMED"}`); rec.Code != http.StatusForbidden {
		t.Fatalf("confirm status = %d, want 403", rec.Code)
	}

	// Canceling is allowed.
	if rec := patch(appt.ID, `{"status":"CANCELED"}`); rec.Code != http.StatusOK {
		t.Fatalf("cancel status = %d, body = %s", rec.Code, rec.Body.String())
	}

	// CANCELED is terminal.
	if rec := patch(appt.ID, `{"status":"CANCELED"}`); rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("second cancel status = %d, want 422", rec.Code)
	}

	// Unknown status never reaches the service.
	if rec := patch(appt.ID, `{"status":"LATER"}`); rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("bad status = %d, want 422", rec.Code)
	}

	if rec := patch(uuid.New(), `{"status":"CANCELED"}`); rec.Code != http.StatusNotFound {
		t.Fatalf("missing appointment status = %d, want 404", rec.Code)
	}
}
