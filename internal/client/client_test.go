package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hymavathi2704/thekatha-server/internal/app/models/dto"
	"github.com/hymavathi2704/thekatha-server/internal/pkg/validation"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *Client) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server, New(server.URL + "/api/v1")
}

func writeEnvelope(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(dto.NewAPIResponse(data))
}

func writeError(w http.ResponseWriter, status int, code dto.ErrorCode, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(dto.NewErrorResponse(dto.NewErrorDetail(code, message)))
}

func TestClientLoginStoresToken(t *testing.T) {
	_, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/auth/login" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var req dto.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode login request: %v", err)
		}
		if req.Email != "coach@example.com" {
			t.Errorf("email = %q, want %q", req.Email, "coach@example.com")
		}
		writeEnvelope(w, http.StatusOK, dto.AuthResponse{
			Token: dto.TokenResponse{AccessToken: "token-123", TokenType: "Bearer"},
			User:  dto.UserResponse{ID: 1, Email: req.Email, Role: "COACH"},
		})
	})

	resp, err := c.Login(context.Background(), "coach@example.com", "secret123")
	if err != nil {
		t.Fatalf("Login() failed: %v", err)
	}
	if resp.Token.AccessToken != "token-123" {
		t.Errorf("AccessToken = %q, want %q", resp.Token.AccessToken, "token-123")
	}
	if c.token != "token-123" {
		t.Errorf("client token = %q, want %q", c.token, "token-123")
	}
}

func TestClientCreateOfferingSendsBearerToken(t *testing.T) {
	_, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer token-123" {
			t.Errorf("Authorization = %q, want %q", got, "Bearer token-123")
		}
		var req dto.OfferingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode offering request: %v", err)
		}
		offering := req.ToModel(1)
		offering.ID = 7
		writeEnvelope(w, http.StatusCreated, offering)
	})
	c.SetToken("token-123")

	created, err := c.CreateOffering(context.Background(), &dto.OfferingRequest{
		Title:    "Career Coaching",
		Duration: 60,
		Price:    100,
	})
	if err != nil {
		t.Fatalf("CreateOffering() failed: %v", err)
	}
	if created.ID != 7 {
		t.Errorf("ID = %d, want 7", created.ID)
	}
}

func TestClientSurfacesRuleMessage(t *testing.T) {
	_, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusBadRequest, dto.ErrorCodeValidationFailed, validation.MsgOfferingPriceRule)
	})
	c.SetToken("token-123")

	_, err := c.CreateOffering(context.Background(), &dto.OfferingRequest{
		Title:    "Career Coaching",
		Duration: 60,
		Price:    95,
	})
	if err == nil {
		t.Fatal("CreateOffering() expected error, got nil")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusBadRequest {
		t.Errorf("StatusCode = %d, want %d", apiErr.StatusCode, http.StatusBadRequest)
	}
	if apiErr.Message != validation.MsgOfferingPriceRule {
		t.Errorf("Message = %q, want %q", apiErr.Message, validation.MsgOfferingPriceRule)
	}
	if err.Error() != validation.MsgOfferingPriceRule {
		t.Errorf("Error() = %q, want the rule message", err.Error())
	}
}

func TestClientRetriesTransientGetFailures(t *testing.T) {
	attempts := 0
	_, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			writeError(w, http.StatusServiceUnavailable, dto.ErrorCodeInternalServer, "temporarily unavailable")
			return
		}
		writeEnvelope(w, http.StatusOK, map[string]interface{}{"id": 1})
	})

	if _, err := c.FetchMyProfile(context.Background()); err != nil {
		t.Fatalf("FetchMyProfile() failed after retries: %v", err)
	}
	if attempts != 3 {
		t.Errorf("attempts = %d, want 3", attempts)
	}
}

func TestClientDoesNotRetryClientErrors(t *testing.T) {
	attempts := 0
	_, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		attempts++
		writeError(w, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Coach not found")
	})

	_, err := c.GetCoach(context.Background(), 99)
	if err == nil {
		t.Fatal("GetCoach() expected error, got nil")
	}
	if attempts != 1 {
		t.Errorf("attempts = %d, want 1", attempts)
	}
}

func TestClientDeleteOffering(t *testing.T) {
	_, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("method = %s, want DELETE", r.Method)
		}
		if r.URL.Path != "/api/v1/sessions/5" {
			t.Errorf("path = %s, want /api/v1/sessions/5", r.URL.Path)
		}
		writeEnvelope(w, http.StatusOK, dto.SuccessResponse{Message: "Session offering deleted"})
	})
	c.SetToken("token-123")

	if err := c.DeleteOffering(context.Background(), 5); err != nil {
		t.Fatalf("DeleteOffering() failed: %v", err)
	}
}

func TestClientListCoachesQuery(t *testing.T) {
	_, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("page"); got != "2" {
			t.Errorf("page = %q, want %q", got, "2")
		}
		if got := r.URL.Query().Get("size"); got != "5" {
			t.Errorf("size = %q, want %q", got, "5")
		}
		writeEnvelope(w, http.StatusOK, dto.PaginatedResponse{
			Items: []*dto.CoachSummary{{ID: 1, FirstName: "Maya", LastName: "Rao", OfferingCount: 2}},
			Pagination: dto.PaginationInfo{
				CurrentPage: 2, TotalPages: 3, PageSize: 5, TotalItems: 11,
			},
		})
	})

	coaches, err := c.ListCoaches(context.Background(), 2, 5)
	if err != nil {
		t.Fatalf("ListCoaches() failed: %v", err)
	}
	if len(coaches) != 1 || coaches[0].FirstName != "Maya" {
		t.Errorf("unexpected coaches: %+v", coaches)
	}
}

func TestClientTimeoutIsRetryable(t *testing.T) {
	// Exercises the transient classification path used by doWithRetry
	if isRetryable(context.DeadlineExceeded) != true {
		t.Error("deadline exceeded should be retryable")
	}
	if isRetryable(&APIError{StatusCode: http.StatusBadRequest}) {
		t.Error("client errors should not be retryable")
	}
	if !isRetryable(&APIError{StatusCode: http.StatusTooManyRequests}) {
		t.Error("429 should be retryable")
	}
}
