package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/passtrack/passboard/internal/domain/errors"
	"github.com/passtrack/passboard/internal/domain/model"
	"github.com/passtrack/passboard/internal/domain/repository"
	"github.com/passtrack/passboard/internal/server/http/dto"
	testhelpers "github.com/passtrack/passboard/internal/test"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(t *testing.T, method, path string, handler gin.HandlerFunc, body []byte, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.Handle(method, strings.SplitN(path, "?", 2)[0], handler)

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, resp *httptest.ResponseRecorder, target any) {
	t.Helper()
	if err := json.Unmarshal(resp.Body.Bytes(), target); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func TestAuthHandlerLogin(t *testing.T) {
	handler := NewAuthHandler(testhelpers.AuthFacadeStub{LoginFn: func(username, password string) (string, error) {
		if username != "admin" || password != "s3cret" {
			t.Fatalf("unexpected credentials %q %q", username, password)
		}
		return "session-token", nil
	}}, 3600)

	body, _ := json.Marshal(dto.LoginRequest{Username: "admin", Password: "s3cret"})
	resp := performRequest(t, http.MethodPost, "/login", handler.Login, body, map[string]string{"Content-Type": "application/json"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var payload dto.LoginResponse
	decodeJSON(t, resp, &payload)
	if !payload.Success {
		t.Fatal("expected success response")
	}

	cookies := resp.Result().Cookies()
	var found bool
	for _, cookie := range cookies {
		if cookie.Name == "passboard_session" && cookie.Value == "session-token" {
			found = true
			if !cookie.HttpOnly {
				t.Fatal("expected http-only session cookie")
			}
		}
	}
	if !found {
		t.Fatalf("session cookie not set, got %v", cookies)
	}
}

func TestAuthHandlerLoginFailures(t *testing.T) {
	t.Run("malformed body", func(t *testing.T) {
		handler := NewAuthHandler(testhelpers.AuthFacadeStub{}, 3600)
		resp := performRequest(t, http.MethodPost, "/login", handler.Login, []byte("{"), nil)
		if resp.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d", resp.Code)
		}
	})

	t.Run("invalid credentials", func(t *testing.T) {
		handler := NewAuthHandler(testhelpers.AuthFacadeStub{LoginFn: func(string, string) (string, error) {
			return "", domainErrors.ErrInvalidCredentials
		}}, 3600)
		body, _ := json.Marshal(dto.LoginRequest{Username: "admin", Password: "wrong"})
		resp := performRequest(t, http.MethodPost, "/login", handler.Login, body, nil)
		if resp.Code != http.StatusUnauthorized {
			t.Fatalf("expected status 401, got %d", resp.Code)
		}
		var payload dto.LoginResponse
		decodeJSON(t, resp, &payload)
		if payload.Success || payload.Message != "Invalid credentials" {
			t.Fatalf("unexpected payload %+v", payload)
		}
	})

	t.Run("internal error", func(t *testing.T) {
		handler := NewAuthHandler(testhelpers.AuthFacadeStub{LoginFn: func(string, string) (string, error) {
			return "", errors.New("boom")
		}}, 3600)
		body, _ := json.Marshal(dto.LoginRequest{Username: "admin", Password: "s3cret"})
		resp := performRequest(t, http.MethodPost, "/login", handler.Login, body, nil)
		if resp.Code != http.StatusInternalServerError {
			t.Fatalf("expected status 500, got %d", resp.Code)
		}
	})
}

func TestAuthHandlerLogout(t *testing.T) {
	handler := NewAuthHandler(testhelpers.AuthFacadeStub{}, 3600)
	resp := performRequest(t, http.MethodPost, "/logout", handler.Logout, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var cleared bool
	for _, cookie := range resp.Result().Cookies() {
		if cookie.Name == "passboard_session" && cookie.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatal("expected session cookie to be cleared")
	}
}

func TestOrdersHandlerList(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	handler := NewOrdersHandler(testhelpers.OrderFacadeStub{
		OrdersFn: func(_ context.Context, f repository.Filter, page repository.Page) ([]model.Order, int64, error) {
			if f.Username != "alice" || f.Search != "TR" {
				t.Fatalf("unexpected filter %+v", f)
			}
			if page.Number != 2 || page.Size != 5 {
				t.Fatalf("unexpected page %+v", page)
			}
			return []model.Order{{
				ID:            7,
				FullName:      "Abebe Bikila",
				TraceNumber:   "TR-7",
				CreatedAt:     now,
				PaymentStatus: model.PaymentStatusPaid,
				Username:      "alice",
			}}, 11, nil
		},
	})

	resp := performRequest(t, http.MethodGet, "/orders?username=alice&search=TR&page=2&pageSize=5", handler.List, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var payload dto.OrdersResponse
	decodeJSON(t, resp, &payload)
	if len(payload.Orders) != 1 || payload.Orders[0].TraceNumber != "TR-7" {
		t.Fatalf("unexpected orders %+v", payload.Orders)
	}
	if payload.Pagination.Page != 2 || payload.Pagination.TotalCount != 11 || payload.Pagination.TotalPages != 3 {
		t.Fatalf("unexpected pagination %+v", payload.Pagination)
	}
}

func TestOrdersHandlerListFailures(t *testing.T) {
	t.Run("bad date filter", func(t *testing.T) {
		handler := NewOrdersHandler(testhelpers.OrderFacadeStub{})
		resp := performRequest(t, http.MethodGet, "/orders?singleDate=not-a-date", handler.List, nil, nil)
		if resp.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d", resp.Code)
		}
	})

	t.Run("facade error", func(t *testing.T) {
		handler := NewOrdersHandler(testhelpers.OrderFacadeStub{
			OrdersFn: func(context.Context, repository.Filter, repository.Page) ([]model.Order, int64, error) {
				return nil, 0, errors.New("boom")
			},
		})
		resp := performRequest(t, http.MethodGet, "/orders", handler.List, nil, nil)
		if resp.Code != http.StatusInternalServerError {
			t.Fatalf("expected status 500, got %d", resp.Code)
		}
	})
}

func TestStatsHandlerSummary(t *testing.T) {
	handler := NewStatsHandler(testhelpers.StatsFacadeStub{
		StatsFn: func(_ context.Context, f repository.Filter) (*model.StatsSummary, error) {
			if f.From == nil || f.To == nil {
				t.Fatal("expected date range in filter")
			}
			return &model.StatsSummary{
				AppointmentsCount:  12,
				OrdersCount:        8,
				FailedAppointments: 4,
				PaidOrders:         5,
				FailedOrders:       3,
			}, nil
		},
	})

	resp := performRequest(t, http.MethodGet, "/stats?startDate=2026-01-01&endDate=2026-01-31", handler.Summary, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var payload dto.StatsResponse
	decodeJSON(t, resp, &payload)
	if payload.AppointmentsCount != 12 || payload.SuccessfulOrdersCount != 8 {
		t.Fatalf("unexpected base counts %+v", payload)
	}
	if payload.FailedAppointmentsCount != 4 || payload.PaidOrdersCount != 5 || payload.FailedOrdersCount != 3 {
		t.Fatalf("unexpected breakdown %+v", payload)
	}
}

func TestStatsHandlerSummaryFailure(t *testing.T) {
	handler := NewStatsHandler(testhelpers.StatsFacadeStub{
		StatsFn: func(context.Context, repository.Filter) (*model.StatsSummary, error) {
			return nil, errors.New("boom")
		},
	})
	resp := performRequest(t, http.MethodGet, "/stats", handler.Summary, nil, nil)
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", resp.Code)
	}
}

func TestChartsHandlerAppointmentsByOffice(t *testing.T) {
	handler := NewChartsHandler(testhelpers.ChartsFacadeStub{
		ByOfficeFn: func(context.Context, repository.Filter) ([]model.OfficeCount, error) {
			return []model.OfficeCount{{OfficeName: "Bole", Count: 9}}, nil
		},
	})
	resp := performRequest(t, http.MethodGet, "/charts", handler.AppointmentsByOffice, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var payload []dto.OfficeCountResponse
	decodeJSON(t, resp, &payload)
	if len(payload) != 1 || payload[0].OfficeName != "Bole" || payload[0].Count != 9 {
		t.Fatalf("unexpected payload %+v", payload)
	}
}

func TestChartsHandlerOrdersByUsername(t *testing.T) {
	var gotFilter repository.Filter
	handler := NewChartsHandler(testhelpers.ChartsFacadeStub{
		ByUsernameFn: func(_ context.Context, f repository.Filter) ([]model.UsernameCount, error) {
			gotFilter = f
			return []model.UsernameCount{{Username: "alice", Count: 5}}, nil
		},
	})
	resp := performRequest(t, http.MethodGet, "/charts?username=alice", handler.OrdersByUsername, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if gotFilter.Username != "alice" {
		t.Fatalf("expected username filter, got %+v", gotFilter)
	}

	var payload []dto.UsernameCountResponse
	decodeJSON(t, resp, &payload)
	if len(payload) != 1 || payload[0].Username != "alice" {
		t.Fatalf("unexpected payload %+v", payload)
	}
}

func TestChartsHandlerUsernamesIgnoresFilter(t *testing.T) {
	handler := NewChartsHandler(testhelpers.ChartsFacadeStub{
		ByUsernameFn: func(_ context.Context, f repository.Filter) ([]model.UsernameCount, error) {
			if f.Username != "" || f.From != nil {
				t.Fatalf("expected empty filter, got %+v", f)
			}
			return []model.UsernameCount{{Username: "alice", Count: 5}, {Username: "bob", Count: 2}}, nil
		},
	})
	resp := performRequest(t, http.MethodGet, "/usernames?username=alice&singleDate=2026-01-01", handler.Usernames, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var payload []dto.UsernameCountResponse
	decodeJSON(t, resp, &payload)
	if len(payload) != 2 {
		t.Fatalf("unexpected payload %+v", payload)
	}
}

func TestChartsHandlerFailures(t *testing.T) {
	handler := NewChartsHandler(testhelpers.ChartsFacadeStub{
		ByOfficeFn: func(context.Context, repository.Filter) ([]model.OfficeCount, error) {
			return nil, errors.New("boom")
		},
		ByUsernameFn: func(context.Context, repository.Filter) ([]model.UsernameCount, error) {
			return nil, errors.New("boom")
		},
	})

	if resp := performRequest(t, http.MethodGet, "/charts", handler.AppointmentsByOffice, nil, nil); resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", resp.Code)
	}
	if resp := performRequest(t, http.MethodGet, "/charts", handler.OrdersByUsername, nil, nil); resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", resp.Code)
	}
}

func TestUpdatesHandlerPoll(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	stub := &testhelpers.UpdatesFacadeStub{
		PollFn: func(context.Context) (*model.UpdateReport, error) {
			return &model.UpdateReport{
				HasUpdates:        true,
				AppointmentsCount: 6,
				OrdersCount:       4,
				LatestAppointment: &model.Appointment{ID: 9, OfficeName: "Bole", CreatedAt: now},
				LatestOrder:       &model.Order{ID: 3, TraceNumber: "TR-3", CreatedAt: now, PaymentStatus: model.PaymentStatusPending},
			}, nil
		},
	}
	handler := NewUpdatesHandler(stub)

	resp := performRequest(t, http.MethodGet, "/updates", handler.Poll, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var payload dto.UpdatesResponse
	decodeJSON(t, resp, &payload)
	if !payload.HasUpdates || payload.AppointmentsCount != 6 || payload.OrdersCount != 4 {
		t.Fatalf("unexpected payload %+v", payload)
	}
	if payload.LatestAppointment == nil || payload.LatestAppointment.ID != 9 {
		t.Fatalf("expected latest appointment, got %+v", payload.LatestAppointment)
	}
	if payload.LatestOrder == nil || payload.LatestOrder.TraceNumber != "TR-3" {
		t.Fatalf("expected latest order, got %+v", payload.LatestOrder)
	}
}

func TestUpdatesHandlerPollNoUpdates(t *testing.T) {
	stub := &testhelpers.UpdatesFacadeStub{
		PollFn: func(context.Context) (*model.UpdateReport, error) {
			return &model.UpdateReport{AppointmentsCount: 6, OrdersCount: 4}, nil
		},
	}
	resp := performRequest(t, http.MethodGet, "/updates", NewUpdatesHandler(stub).Poll, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var payload dto.UpdatesResponse
	decodeJSON(t, resp, &payload)
	if payload.HasUpdates || payload.LatestAppointment != nil || payload.LatestOrder != nil {
		t.Fatalf("expected quiet payload, got %+v", payload)
	}
}

func TestUpdatesHandlerPollFailure(t *testing.T) {
	stub := &testhelpers.UpdatesFacadeStub{
		PollFn: func(context.Context) (*model.UpdateReport, error) {
			return nil, errors.New("oracle down")
		},
	}
	resp := performRequest(t, http.MethodGet, "/updates", NewUpdatesHandler(stub).Poll, nil, nil)
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", resp.Code)
	}

	var payload map[string]string
	decodeJSON(t, resp, &payload)
	if payload["error"] != "Failed to check for updates" {
		t.Fatalf("unexpected error payload %v", payload)
	}
}

func TestParseFilterSingleDate(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/?singleDate=2026-03-15", nil)

	f, err := parseFilter(c)
	if err != nil {
		t.Fatalf("parse filter: %v", err)
	}
	if f.From == nil || f.To == nil {
		t.Fatal("expected bounded range")
	}
	if !f.From.Equal(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected from %v", f.From)
	}
	if !f.To.After(*f.From) || f.To.Sub(*f.From) >= 24*time.Hour {
		t.Fatalf("expected range to span the day, got %v", f.To.Sub(*f.From))
	}
}

func TestParseFilterRangeErrors(t *testing.T) {
	for _, query := range []string{
		"?startDate=bad&endDate=2026-01-31",
		"?startDate=2026-01-01&endDate=bad",
	} {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/"+query, nil)
		if _, err := parseFilter(c); err == nil {
			t.Fatalf("expected error for %q", query)
		}
	}
}
