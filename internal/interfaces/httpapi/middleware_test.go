package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kazfoot/kpl-fantasy/internal/domain/user"
	"github.com/kazfoot/kpl-fantasy/internal/usecase"
)

type stubVerifier struct {
	principal user.Principal
	err       error
	gotToken  string
}

func (v *stubVerifier) VerifyAccessToken(_ context.Context, token string) (user.Principal, error) {
	v.gotToken = token
	if v.err != nil {
		return user.Principal{}, v.err
	}
	return v.principal, nil
}

func TestRequireAuth_InjectsPrincipal(t *testing.T) {
	verifier := &stubVerifier{principal: user.Principal{UserID: "user-7", DisplayName: "Dana"}}

	var seen user.Principal
	var seenOK bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, seenOK = principalFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/fantasy/teams/me", nil)
	req.Header.Set("Authorization", "Bearer token-xyz")
	rec := httptest.NewRecorder()

	RequireAuth(verifier, next).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if verifier.gotToken != "token-xyz" {
		t.Fatalf("verifier got token %q", verifier.gotToken)
	}
	if !seenOK || seen.UserID != "user-7" {
		t.Fatalf("principal not propagated: %+v ok=%v", seen, seenOK)
	}
}

func TestRequireAuth_RejectsMissingOrMalformedHeader(t *testing.T) {
	verifier := &stubVerifier{principal: user.Principal{UserID: "user-7"}}
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Fatal("next handler must not run")
	})

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "not bearer", header: "Basic dXNlcjpwYXNz"},
		{name: "empty token", header: "Bearer   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/fantasy/teams/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			RequireAuth(verifier, next).ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected status 401, got %d", rec.Code)
			}
		})
	}
}

func TestRequireAuth_PropagatesVerifierError(t *testing.T) {
	verifier := &stubVerifier{err: fmt.Errorf("%w: inactive token", usecase.ErrUnauthorized)}
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Fatal("next handler must not run")
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/fantasy/teams/me", nil)
	req.Header.Set("Authorization", "Bearer expired")
	rec := httptest.NewRecorder()

	RequireAuth(verifier, next).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}

func TestRequireInternalJobToken(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("accepts matching token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/internal/jobs/score", nil)
		req.Header.Set("X-Internal-Job-Token", "job-secret")
		rec := httptest.NewRecorder()

		RequireInternalJobToken("job-secret", next).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}
	})

	t.Run("rejects wrong token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/internal/jobs/score", nil)
		req.Header.Set("X-Internal-Job-Token", "nope")
		rec := httptest.NewRecorder()

		RequireInternalJobToken("job-secret", next).ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected status 401, got %d", rec.Code)
		}
	})

	t.Run("unconfigured token disables route", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/internal/jobs/score", nil)
		req.Header.Set("X-Internal-Job-Token", "anything")
		rec := httptest.NewRecorder()

		RequireInternalJobToken("", next).ServeHTTP(rec, req)

		if rec.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected status 503, got %d", rec.Code)
		}
	})
}
