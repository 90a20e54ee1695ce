package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response body: %v", err)
	}
	return resp
}

func TestSuccess(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, http.StatusCreated, "Created", map[string]string{"id": "1"})

	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusCreated)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}

	resp := decode(t, rec)
	if !resp.Success {
		t.Error("Success = false, want true")
	}
	if resp.Message != "Created" {
		t.Errorf("Message = %q, want Created", resp.Message)
	}
	if resp.Data == nil {
		t.Error("Data is nil, want payload")
	}
}

func TestErrorHelpers(t *testing.T) {
	tests := []struct {
		name        string
		fn          func(w http.ResponseWriter, message string)
		wantStatus  int
		wantDefault string
	}{
		{"Unauthorized", Unauthorized, http.StatusUnauthorized, "Unauthorized"},
		{"Forbidden", Forbidden, http.StatusForbidden, "Forbidden"},
		{"NotFound", NotFound, http.StatusNotFound, "Resource not found"},
		{"InternalServerError", InternalServerError, http.StatusInternalServerError, "Internal server error"},
		{"ServiceUnavailable", ServiceUnavailable, http.StatusServiceUnavailable, "Service temporarily unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.fn(rec, "")

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			resp := decode(t, rec)
			if resp.Success {
				t.Error("Success = true, want false")
			}
			if resp.Message != tt.wantDefault {
				t.Errorf("Message = %q, want %q", resp.Message, tt.wantDefault)
			}
		})
	}
}

func TestValidationError(t *testing.T) {
	rec := httptest.NewRecorder()
	ValidationError(rec, map[string]string{"email": "email must be a valid email address"})

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	resp := decode(t, rec)
	if resp.Message != "Validation failed" {
		t.Errorf("Message = %q, want Validation failed", resp.Message)
	}
	if resp.Error == nil {
		t.Error("Error is nil, want field map")
	}
}
