package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/kazfoot/kpl-fantasy/internal/domain/fantasy"
	"github.com/kazfoot/kpl-fantasy/internal/usecase"
)

func TestWriteSuccess_GoogleEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeSuccess(context.Background(), rec, http.StatusOK, map[string]string{"status": "ok"})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}

	if got, _ := body["apiVersion"].(string); got != "2.0" {
		t.Fatalf("expected apiVersion=2.0, got %v", body["apiVersion"])
	}
	if _, ok := body["data"]; !ok {
		t.Fatalf("expected data key in success response")
	}
	if _, ok := body["error"]; ok {
		t.Fatalf("did not expect error key in success response")
	}
}

func TestWriteError_GoogleEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, fmt.Errorf("%w: round must be positive", usecase.ErrValidationFailed))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}

	if got, _ := body["apiVersion"].(string); got != "2.0" {
		t.Fatalf("expected apiVersion=2.0, got %v", body["apiVersion"])
	}
	errorObj, ok := body["error"].(map[string]any)
	if !ok {
		t.Fatalf("expected error object in response")
	}
	if got, _ := errorObj["status"].(string); got != "INVALID_ARGUMENT" {
		t.Fatalf("expected error status INVALID_ARGUMENT, got %v", errorObj["status"])
	}
}

func TestMapError_StatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantReason string
	}{
		{name: "validation", err: usecase.ErrValidationFailed, wantStatus: http.StatusBadRequest, wantReason: "invalidInput"},
		{name: "not found", err: usecase.ErrNotFound, wantStatus: http.StatusNotFound, wantReason: "notFound"},
		{name: "unauthorized", err: usecase.ErrUnauthorized, wantStatus: http.StatusUnauthorized, wantReason: "unauthorized"},
		{name: "forbidden", err: usecase.ErrForbidden, wantStatus: http.StatusForbidden, wantReason: "forbidden"},
		{name: "conflict", err: usecase.ErrConflict, wantStatus: http.StatusConflict, wantReason: "conflict"},
		{name: "dependency unavailable", err: usecase.ErrDependencyUnavailable, wantStatus: http.StatusServiceUnavailable, wantReason: "dependencyUnavailable"},
		{name: "unknown", err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantReason: "internalError"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapped := mapError(context.Background(), tt.err)
			if mapped.HTTPStatus != tt.wantStatus {
				t.Fatalf("status = %d, want %d", mapped.HTTPStatus, tt.wantStatus)
			}
			if mapped.Reason != tt.wantReason {
				t.Fatalf("reason = %s, want %s", mapped.Reason, tt.wantReason)
			}
		})
	}
}

func TestMapError_SquadRuleViolations(t *testing.T) {
	ruleErrs := []error{
		fantasy.ErrInvalidSquadSize,
		fantasy.ErrDuplicatePlayerInSquad,
		fantasy.ErrUnknownPlayer,
		fantasy.ErrPositionCountMismatch,
		fantasy.ErrExceededTeamLimit,
		fantasy.ErrExceededBudget,
		fantasy.ErrCaptainSelection,
	}

	for _, ruleErr := range ruleErrs {
		mapped := mapError(context.Background(), fmt.Errorf("save picks: %w", ruleErr))
		if mapped.HTTPStatus != http.StatusBadRequest {
			t.Fatalf("%v: status = %d, want 400", ruleErr, mapped.HTTPStatus)
		}
		if mapped.Reason != "invalidSquad" {
			t.Fatalf("%v: reason = %s, want invalidSquad", ruleErr, mapped.Reason)
		}

		// Pick validation wraps the rule sentinel in ErrValidationFailed;
		// the specific reason must still win over invalidInput.
		wrapped := fmt.Errorf("%w: %w", usecase.ErrValidationFailed, ruleErr)
		if mapped := mapError(context.Background(), wrapped); mapped.Reason != "invalidSquad" {
			t.Fatalf("%v: wrapped reason = %s, want invalidSquad", ruleErr, mapped.Reason)
		}
	}
}

func TestWriteInternalError_HidesDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	writeInternalError(context.Background(), rec)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	errorObj, ok := body["error"].(map[string]any)
	if !ok {
		t.Fatalf("expected error object in response")
	}
	if got, _ := errorObj["message"].(string); got != "internal server error" {
		t.Fatalf("unexpected message: %q", got)
	}
}
