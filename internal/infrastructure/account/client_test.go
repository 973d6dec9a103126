package account

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/kazfoot/kpl-fantasy/internal/usecase"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestClientVerifyAccessToken_ParsesActiveResponse(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("unexpected method: %s", r.Method)
		}
		if r.URL.Path != "/v1/auth/introspect" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			t.Fatalf("read request body: %v", err)
		}
		var req map[string]string
		if err := sonic.Unmarshal(body, &req); err != nil {
			t.Fatalf("decode request body: %v", err)
		}
		if req["token"] != "token-abc" {
			t.Fatalf("unexpected token value: %s", req["token"])
		}

		w.Header().Set("Content-Type", "application/json")
		encoded, _ := sonic.Marshal(map[string]any{
			"active":       true,
			"user_id":      "user-123",
			"display_name": "Aibek",
		})
		_, _ = w.Write(encoded)
	}))
	defer srv.Close()

	client := NewClient(srv.Client(), srv.URL, "/v1/auth/introspect", discardLogger())

	principal, err := client.VerifyAccessToken(context.Background(), "token-abc")
	if err != nil {
		t.Fatalf("verify token failed: %v", err)
	}

	if principal.UserID != "user-123" {
		t.Fatalf("unexpected user id: %s", principal.UserID)
	}
	if principal.DisplayName != "Aibek" {
		t.Fatalf("unexpected display name: %s", principal.DisplayName)
	}
}

func TestClientVerifyAccessToken_InactiveToken(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"active":false}`))
	}))
	defer srv.Close()

	client := NewClient(srv.Client(), srv.URL, "/v1/auth/introspect", discardLogger())

	_, err := client.VerifyAccessToken(context.Background(), "stale-token")
	if !errors.Is(err, usecase.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestClientVerifyAccessToken_DeniedStatuses(t *testing.T) {
	t.Parallel()

	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			_, _ = w.Write([]byte(`{"error":"denied"}`))
		}))

		_, err := NewClient(srv.Client(), srv.URL, "/v1/auth/introspect", discardLogger()).
			VerifyAccessToken(context.Background(), "token-abc")
		srv.Close()

		if !errors.Is(err, usecase.ErrUnauthorized) {
			t.Fatalf("status %d: expected ErrUnauthorized, got %v", status, err)
		}
	}
}

func TestClientVerifyAccessToken_EmptyToken(t *testing.T) {
	t.Parallel()

	client := NewClient(nil, "http://account.invalid", "/v1/auth/introspect", discardLogger())

	_, err := client.VerifyAccessToken(context.Background(), "   ")
	if !errors.Is(err, usecase.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for blank token, got %v", err)
	}
}

func TestClientVerifyAccessToken_MissingUserID(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"active":true,"user_id":"  "}`))
	}))
	defer srv.Close()

	client := NewClient(srv.Client(), srv.URL, "/v1/auth/introspect", discardLogger())

	_, err := client.VerifyAccessToken(context.Background(), "token-abc")
	if err == nil {
		t.Fatal("expected error for empty user_id")
	}
	if errors.Is(err, usecase.ErrUnauthorized) {
		t.Fatalf("empty user_id is a malformed response, not an auth failure: %v", err)
	}
}

func TestBuildURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		base string
		path string
		want string
	}{
		{name: "joins with slash", base: "http://account:9000/", path: "v1/auth/introspect", want: "http://account:9000/v1/auth/introspect"},
		{name: "keeps absolute path", base: "http://account:9000", path: "https://other/introspect", want: "https://other/introspect"},
		{name: "empty path returns base", base: "http://account:9000/", path: "", want: "http://account:9000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := buildURL(tt.base, tt.path); got != tt.want {
				t.Fatalf("buildURL(%q, %q) = %q, want %q", tt.base, tt.path, got, tt.want)
			}
		})
	}
}
