package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestTokensListHandler(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest("GET", "/v1/tokens", nil)
	rr := httptest.NewRecorder()

	app.TokensList(rr, req)

	if rr.Code != 200 {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	var payload struct {
		Groups map[string][]struct {
			Key string `json:"key"`
		} `json:"groups"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	for _, group := range []string{"personal", "company", "system"} {
		if len(payload.Groups[group]) == 0 {
			t.Fatalf("group %q is empty", group)
		}
	}
}

func TestTokenValidateHandler(t *testing.T) {
	app := newTestApp(t)

	body := `{"key":"EMAIL","value":"not-an-email"}`
	req := httptest.NewRequest("POST", "/v1/tokens/validate", strings.NewReader(body))
	rr := httptest.NewRecorder()

	app.TokenValidate(rr, req)

	if rr.Code != 200 {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	var payload struct {
		Known  bool     `json:"known"`
		Valid  bool     `json:"valid"`
		Errors []string `json:"errors"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !payload.Known {
		t.Fatalf("EMAIL should be a known token")
	}
	if payload.Valid || len(payload.Errors) == 0 {
		t.Fatalf("valid = %t errors = %v, want a format violation", payload.Valid, payload.Errors)
	}
}

func TestTokenValidateHandlerUnknownKeyWarns(t *testing.T) {
	app := newTestApp(t)

	body := `{"key":"GADGET","value":"raygun"}`
	req := httptest.NewRequest("POST", "/v1/tokens/validate", strings.NewReader(body))
	rr := httptest.NewRecorder()

	app.TokenValidate(rr, req)

	var payload struct {
		Known   bool   `json:"known"`
		Valid   bool   `json:"valid"`
		Warning string `json:"warning"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Known {
		t.Fatalf("GADGET should be unknown")
	}
	if !payload.Valid {
		t.Fatalf("unknown keys are advisory: valid should stay true")
	}
	if payload.Warning == "" {
		t.Fatalf("want a warning for the unknown key")
	}
}
