package session

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"

	"github.com/helloviza/frontend-hrms-sub002/internal/access"
	"github.com/helloviza/frontend-hrms-sub002/internal/shared/config"
)

const testSecret = "test-secret"

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}
	return s
}

func recordCapture(t *testing.T, req *http.Request) access.Record {
	t.Helper()

	var captured access.Record
	handler := Middleware(config.AuthConfig{JWTSecret: testSecret})(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			captured = FromContext(r.Context())
			w.WriteHeader(http.StatusOK)
		}),
	)

	handler.ServeHTTP(httptest.NewRecorder(), req)
	return captured
}

func TestMiddlewareValidToken(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{
		"sub":            "user-1",
		"hrmsAccessRole": "HR",
		"roles":          []any{"Requester"},
	})

	req := httptest.NewRequest("GET", "/api/v1/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	record := recordCapture(t, req)
	if record == nil {
		t.Fatal("expected record on context for a valid token")
	}
	if access.Classify(record) != access.PersonaStaff {
		t.Errorf("persona = %s, want STAFF", access.Classify(record))
	}
	if !access.CollectRoleTokens(record).Has("HR") {
		t.Error("expected HR token from claims")
	}
}

func TestMiddlewareNoToken(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/v1/me", nil)

	if record := recordCapture(t, req); record != nil {
		t.Errorf("expected nil record without a token, got %v", record)
	}
}

func TestMiddlewareInvalidToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"garbage token", "Bearer not.a.token"},
		{"wrong scheme", "Basic dXNlcjpwYXNz"},
		{"wrong secret", "Bearer " + func() string {
			token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "x"})
			s, _ := token.SignedString([]byte("other-secret"))
			return s
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/v1/me", nil)
			req.Header.Set("Authorization", tt.header)

			if record := recordCapture(t, req); record != nil {
				t.Errorf("expected nil record, got %v", record)
			}
		})
	}
}

func guardedRequest(t *testing.T, req access.Requirement, token string) *httptest.ResponseRecorder {
	t.Helper()

	handler := Middleware(config.AuthConfig{JWTSecret: testSecret})(
		Require(req, "/sign-in")(
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}),
		),
	)

	r := httptest.NewRequest("GET", "/api/v1/admin/policies", nil)
	if token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, r)
	return rec
}

func TestRequireAllows(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"hrmsAccessRole": "HR"})

	rec := guardedRequest(t, access.Requirement{Predicate: access.CanManagePolicies}, token)
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestRequireDeniesInPlace(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"roles": []any{"Requester"}})

	rec := guardedRequest(t, access.Requirement{Predicate: access.CanManagePolicies}, token)
	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body["error"] != "no access" {
		t.Errorf("error = %q, want 'no access'", body["error"])
	}
}

func TestRequireRedirectsUnauthenticated(t *testing.T) {
	rec := guardedRequest(t, access.Requirement{Predicate: access.CanManagePolicies}, "")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body["signIn"] != "/sign-in" {
		t.Errorf("signIn = %q, want /sign-in", body["signIn"])
	}
}

func TestRequireRoleWhitelist(t *testing.T) {
	approver := signedToken(t, jwt.MapClaims{"roles": []any{"travel-approver"}})
	requester := signedToken(t, jwt.MapClaims{"roles": []any{"Requester"}})

	req := access.Requirement{AnyToken: access.ApproverTokens}

	if rec := guardedRequest(t, req, approver); rec.Code != http.StatusOK {
		t.Errorf("approver status = %d, want 200", rec.Code)
	}
	if rec := guardedRequest(t, req, requester); rec.Code != http.StatusForbidden {
		t.Errorf("requester status = %d, want 403", rec.Code)
	}
}
