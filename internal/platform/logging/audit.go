package logging

import (
	"context"

	"go.uber.org/zap"
)

// AuditEvent describes a state change worth keeping in the audit trail.
type AuditEvent struct {
	Action       string // "create", "update", "reseed", ...
	ResourceType string // "wardrobe_item", "fashion_preferences", ...
	ResourceID   string
	Result       string // "success" or "failure"
	Details      map[string]any
}

// LogAuditEvent logs a structured audit event.
func LogAuditEvent(ctx context.Context, ev AuditEvent) {
	LoggerFromContext(ctx).Info("Audit event",
		zap.String("audit.action", ev.Action),
		zap.String("audit.resource_type", ev.ResourceType),
		zap.String("audit.resource_id", ev.ResourceID),
		zap.String("audit.result", ev.Result),
		zap.Any("audit.details", ev.Details),
	)
}
