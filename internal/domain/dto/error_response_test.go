package dto

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestErrorResponse_Error(t *testing.T) {
	e := ErrorResponse{Message: "symbol is required"}
	if e.Error() != "symbol is required" {
		t.Fatalf("got %q", e.Error())
	}
	e2 := ErrorResponse{Message: "failed to fetch OHLC data", ErrorDetails: "connection refused"}
	if e2.Error() != "failed to fetch OHLC data: connection refused" {
		t.Fatalf("got %q", e2.Error())
	}
}

func TestNewErrorResponse(t *testing.T) {
	e := NewErrorResponse("invalid interval", nil)
	if e.Message != "invalid interval" || e.ErrorDetails != "" {
		t.Fatalf("unexpected %+v", e)
	}
	if e.Timestamp.IsZero() || time.Since(e.Timestamp) > time.Second {
		t.Fatalf("timestamp not set")
	}

	e2 := NewErrorResponse("invalid interval", errors.New("interval out of range"))
	if e2.ErrorDetails != "interval out of range" || e2.Message != "invalid interval" {
		t.Fatalf("unexpected %+v", e2)
	}
}

// The inner error field must be omitted from the JSON body when empty.
func TestErrorResponse_JSONOmitsEmptyDetails(t *testing.T) {
	b, err := json.Marshal(NewErrorResponse("symbol is required", nil))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(b), `"error"`) {
		t.Fatalf("empty details not omitted: %s", b)
	}
	if !strings.Contains(string(b), `"message":"symbol is required"`) {
		t.Fatalf("message missing: %s", b)
	}
}
