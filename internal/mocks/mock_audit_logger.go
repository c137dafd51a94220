package mocks

import (
	"context"
	"sync"

	"github.com/Voctor98/TechSolutionsApp/domain"
)

// MockAuditLogger implements domain.AuditLogger interface for testing
type MockAuditLogger struct {
	mu     sync.Mutex
	Events []*domain.AuditEvent
}

// NewMockAuditLogger creates a new MockAuditLogger
func NewMockAuditLogger() *MockAuditLogger {
	return &MockAuditLogger{}
}

// LogEvent records the event for later inspection
func (m *MockAuditLogger) LogEvent(ctx context.Context, event *domain.AuditEvent) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Events = append(m.Events, event)
}

// EventsOfType returns the recorded events with the given type
func (m *MockAuditLogger) EventsOfType(eventType domain.AuditEventType) []*domain.AuditEvent {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []*domain.AuditEvent
	for _, ev := range m.Events {
		if ev.EventType == eventType {
			out = append(out, ev)
		}
	}
	return out
}
