package audit

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/Voctor98/TechSolutionsApp/domain"
)

func captureLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewJSONHandler(&buf, nil)), &buf
}

func TestSlogAuditLogger_SuccessEvent(t *testing.T) {
	logger, buf := captureLogger()
	audit := NewSlogAuditLogger(logger)

	audit.LogEvent(context.Background(), domain.NewAuditEvent(domain.UserLoginEvent, 12).WithEmail("u@test.com"))

	var record map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("expected JSON log line, got %q: %v", buf.String(), err)
	}

	if record["level"] != "INFO" {
		t.Errorf("expected INFO level, got %v", record["level"])
	}
	if record["event_type"] != string(domain.UserLoginEvent) {
		t.Errorf("unexpected event_type %v", record["event_type"])
	}
	if record["user_id"].(float64) != 12 {
		t.Errorf("unexpected user_id %v", record["user_id"])
	}
	if record["email"] != "u@test.com" {
		t.Errorf("unexpected email %v", record["email"])
	}
}

func TestSlogAuditLogger_FailureEvent(t *testing.T) {
	logger, buf := captureLogger()
	audit := NewSlogAuditLogger(logger)

	ev := domain.NewAuditEvent(domain.UserLoginFailureEvent, 0).
		WithEmail("u@test.com").
		WithError(errors.New("invalid credentials"))
	audit.LogEvent(context.Background(), ev)

	var record map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("expected JSON log line, got %q: %v", buf.String(), err)
	}

	if record["level"] != "WARN" {
		t.Errorf("expected WARN level for failures, got %v", record["level"])
	}
	if record["error"] != "invalid credentials" {
		t.Errorf("unexpected error field %v", record["error"])
	}
	if _, present := record["user_id"]; present {
		t.Error("zero user_id must be omitted")
	}
}
